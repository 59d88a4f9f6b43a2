package lib

import "time"

// FormatLocal renders t in the local time zone for display. Only
// notifications use this; expiration comparisons keep full precision.
func FormatLocal(t time.Time) string {
	return t.Local().Format("2006-01-02 15:04:05")
}
