package timeconv

import (
	"time"

	"cloud.google.com/go/civil"
)

// InstantToDate returns the calendar date of i in zone, nil zone uses time.Local
func InstantToDate(i Instant, zone *time.Location) civil.Date {
	return civil.DateOf(zoned(i, zone))
}

// InstantToTime returns the time of day of i in zone, nil zone uses time.Local
func InstantToTime(i Instant, zone *time.Location) civil.Time {
	return civil.TimeOf(zoned(i, zone))
}

// InstantToDateTime returns the wall clock reading of i in zone, nil zone uses time.Local
func InstantToDateTime(i Instant, zone *time.Location) civil.DateTime {
	return civil.DateTimeOf(zoned(i, zone))
}

// DateToInstant returns the first instant of date d in zone, nil zone uses time.Local
func DateToInstant(d civil.Date, zone *time.Location) Instant {
	return InstantOf(resolve(civil.DateTime{Date: d}, localOr(zone)))
}

// DateTimeToInstant returns the instant at which the clocks of zone read dt, nil zone uses time.Local.
//
// The conversion is lossy: dt.Time.Nanosecond is truncated to whole milliseconds.
func DateTimeToInstant(dt civil.DateTime, zone *time.Location) Instant {
	return InstantOf(resolve(dt, localOr(zone)))
}

func zoned(i Instant, zone *time.Location) time.Time {
	return i.In(localOr(zone))
}

func localOr(zone *time.Location) *time.Location {
	if zone == nil {
		return time.Local
	}
	return zone
}
