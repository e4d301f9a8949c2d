package timeconv

import (
	"time"

	"cloud.google.com/go/civil"
)

// Converter converts with a default zone fixed at construction
type Converter struct {
	zone *time.Location
}

// NewConverter creates a converter, without WithZone the current time.Local is captured
func NewConverter(opts ...Option) *Converter {
	ret := &Converter{}
	Options(opts).Apply(ret)
	if ret.zone == nil {
		ret.zone = time.Local
	}
	return ret
}

// Zone returns the default zone
func (c *Converter) Zone() *time.Location {
	return c.zone
}

// InstantToDate returns the calendar date of i in zone, nil zone uses the converter zone
func (c *Converter) InstantToDate(i Instant, zone *time.Location) civil.Date {
	return InstantToDate(i, c.zoneOr(zone))
}

// InstantToTime returns the time of day of i in zone, nil zone uses the converter zone
func (c *Converter) InstantToTime(i Instant, zone *time.Location) civil.Time {
	return InstantToTime(i, c.zoneOr(zone))
}

// InstantToDateTime returns the wall clock reading of i in zone, nil zone uses the converter zone
func (c *Converter) InstantToDateTime(i Instant, zone *time.Location) civil.DateTime {
	return InstantToDateTime(i, c.zoneOr(zone))
}

// DateToInstant returns the first instant of d in zone, nil zone uses the converter zone
func (c *Converter) DateToInstant(d civil.Date, zone *time.Location) Instant {
	return DateToInstant(d, c.zoneOr(zone))
}

// DateTimeToInstant returns the instant of wall clock reading dt in zone, truncated to milliseconds,
// nil zone uses the converter zone
func (c *Converter) DateTimeToInstant(dt civil.DateTime, zone *time.Location) Instant {
	return DateTimeToInstant(dt, c.zoneOr(zone))
}

func (c *Converter) zoneOr(zone *time.Location) *time.Location {
	if zone == nil {
		return c.zone
	}
	return zone
}
