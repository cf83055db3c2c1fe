package utils

import "time"

// Trips are stamped in epoch milliseconds so newest-first ordering
// survives rapid consecutive saves.
func NowUnixMillis() int64 { return time.Now().UnixMilli() }

// FromUnixMillis returns zero time if ms<=0 to let callers decide how to render.
func FromUnixMillis(ms int64) time.Time {
	if ms <= 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms).UTC()
}
