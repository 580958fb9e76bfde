package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Authentication ────────────────────────────────────────────────
	ErrInvalidCredentials ErrCode = "INVALID_CREDENTIALS"
	ErrTokenRequired      ErrCode = "TOKEN_REQUIRED"
	ErrTokenInvalid       ErrCode = "TOKEN_INVALID"

	// ─── Authorization ─────────────────────────────────────────────────
	ErrForbidden       ErrCode = "FORBIDDEN"
	ErrAdminAccessOnly ErrCode = "ADMIN_ACCESS_ONLY"

	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation        ErrCode = "VALIDATION_ERROR"
	ErrInvalidID         ErrCode = "INVALID_ID"
	ErrInvalidDate       ErrCode = "INVALID_DATE"
	ErrNoUpdateFields    ErrCode = "NO_UPDATE_FIELDS"
	ErrClassIDRequired   ErrCode = "CLASS_ID_REQUIRED"
	ErrStudentNotInClass ErrCode = "STUDENT_NOT_IN_CLASS"
	ErrInvalidStatus     ErrCode = "INVALID_STATUS"

	// ─── Resources ─────────────────────────────────────────────────────
	ErrNotFound ErrCode = "NOT_FOUND"
	ErrConflict ErrCode = "CONFLICT"

	// ─── Server ────────────────────────────────────────────────────────
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	case ErrInvalidCredentials:
		return "Invalid credentials."
	case ErrTokenRequired:
		return "Authentication token is required."
	case ErrTokenInvalid:
		return "Authentication token is invalid or expired."
	case ErrForbidden:
		return "You do not have permission to access this resource."
	case ErrAdminAccessOnly:
		return "This resource is restricted to administrators."
	case ErrValidation:
		return "Validation failed. Please check your input."
	case ErrInvalidID:
		return "Invalid ID format."
	case ErrInvalidDate:
		return "Invalid date format, expected YYYY-MM-DD."
	case ErrNoUpdateFields:
		return "No update fields provided."
	case ErrClassIDRequired:
		return "classId is required."
	case ErrStudentNotInClass:
		return "One or more students do not belong to this class."
	case ErrInvalidStatus:
		return "Invalid attendance status."
	case ErrNotFound:
		return "Resource not found."
	case ErrConflict:
		return "Resource already exists."
	case ErrInternal:
		return "An internal server error occurred."
	default:
		return "An unexpected error occurred."
	}
}
