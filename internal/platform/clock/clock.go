package clock

import "time"

// Clock abstracts time to keep services deterministic in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock keeps the monotonic reading; frame pacing depends on it.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}
