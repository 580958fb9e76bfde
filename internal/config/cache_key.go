package config

import (
	"fmt"
	"time"
)

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// WeeklyStatsKey returns the cache key for a class's weekly statistics
// report starting at the given date.
func (r *CacheKeyStruct) WeeklyStatsKey(classID int, startDate time.Time) string {
	return fmt.Sprintf("stats:weekly:%d:%s", classID, startDate.Format("2006-01-02"))
}

var CacheKey = NewCacheKeyStruct()
