// Monotonic clock helpers for per-frame instrumentation.
package timing

import "time"

// Timestamp is an instant from the monotonic clock. It is only meaningful
// as an operand to Sub/Since within the same process; never persist one.
type Timestamp struct {
	t time.Time
}

func Now() Timestamp {
	return Timestamp{t: time.Now()}
}

// Sub returns the elapsed time between two captures.
func (ts Timestamp) Sub(earlier Timestamp) time.Duration {
	return ts.t.Sub(earlier.t)
}

// Since returns the time elapsed since an earlier capture.
func Since(earlier Timestamp) time.Duration {
	return time.Since(earlier.t)
}
