package profiler

import "time"

// TimestampLayout is how capture times are rendered in the dashboard and the
// CSV export: second precision, local time zone.
const TimestampLayout = "2006-01-02 15:04:05"

// Entry is one completed (or failed) request's measurement. TotalTimeMs and
// CPUTimeMs are non-negative and rounded to 3 decimal places by the producer;
// CPUTimeMs is 0.0 when CPU sampling was inactive for the request. A zero
// StatusCode means the request never produced a status.
type Entry struct {
	Timestamp   time.Time
	Path        string
	Method      string
	StatusCode  int
	TotalTimeMs float64
	CPUTimeMs   float64
}
