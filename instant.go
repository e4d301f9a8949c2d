package timeconv

import (
	"time"
)

const nanosPerMilli = int64(time.Millisecond)

// InstantLayout is used by Instant.String
const InstantLayout = "2006-01-02T15:04:05.000Z07:00"

// Instant represents a point on the timeline with millisecond precision, independent of any zone
type Instant struct {
	ms int64
}

// InstantOf returns the instant of t, truncating anything finer than a millisecond.
// t must lie within about 292 million years of 1970 (the int64 millisecond range), beyond
// that the result overflows.
func InstantOf(t time.Time) Instant {
	return Instant{ms: t.Unix()*1000 + int64(t.Nanosecond())/nanosPerMilli}
}

// UnixMilli returns the instant ms milliseconds after the Unix epoch
func UnixMilli(ms int64) Instant {
	return Instant{ms: ms}
}

// Now returns the current instant
func Now() Instant {
	return InstantOf(time.Now())
}

// UnixMilli returns milliseconds elapsed since the Unix epoch
func (i Instant) UnixMilli() int64 {
	return i.ms
}

// Time returns the instant as UTC time
func (i Instant) Time() time.Time {
	return time.UnixMilli(i.ms).UTC()
}

// In returns the instant in loc, nil loc stands for UTC
func (i Instant) In(loc *time.Location) time.Time {
	if loc == nil {
		return i.Time()
	}
	return time.UnixMilli(i.ms).In(loc)
}

// Before reports whether i is before other
func (i Instant) Before(other Instant) bool {
	return i.ms < other.ms
}

// After reports whether i is after other
func (i Instant) After(other Instant) bool {
	return i.ms > other.ms
}

func (i Instant) String() string {
	return i.Time().Format(InstantLayout)
}
