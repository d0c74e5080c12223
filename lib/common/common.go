package common

import (
	"fmt"
	"time"
)

func FormatDateRange(start time.Time, end time.Time) string {
	return fmt.Sprintf("%s to %s", FormatDate(start), FormatDate(end))
}

func FormatDate(value time.Time) string {
	return value.UTC().Format("2006-01-02T15:04:05")
}

// FormatSeconds renders an elapsed duration the way the runtime log stores
// it, with four decimal places.
func FormatSeconds(d time.Duration) string {
	return fmt.Sprintf("%.4fs", d.Seconds())
}
