// Package pbtime converts timeconv instants and civil values to and from
// google.protobuf.Timestamp and the google.type Date, TimeOfDay and DateTime messages.
package pbtime

import (
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/civil"
	"github.com/viant/timeconv"
	"google.golang.org/genproto/googleapis/type/date"
	"google.golang.org/genproto/googleapis/type/datetime"
	"google.golang.org/genproto/googleapis/type/timeofday"
	"google.golang.org/protobuf/types/known/durationpb"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// FromInstant returns timestamp message for the instant
func FromInstant(instant timeconv.Instant) *timestamppb.Timestamp {
	return timestamppb.New(instant.Time())
}

// ToInstant returns the instant of a timestamp message, truncated to milliseconds
func ToInstant(ts *timestamppb.Timestamp) (timeconv.Instant, error) {
	if err := ts.CheckValid(); err != nil {
		return timeconv.Instant{}, fmt.Errorf("invalid timestamp: %w", err)
	}
	return timeconv.InstantOf(ts.AsTime()), nil
}

// FromDate returns date message
func FromDate(d civil.Date) *date.Date {
	return &date.Date{Year: int32(d.Year), Month: int32(d.Month), Day: int32(d.Day)}
}

// ToDate returns calendar date of a date message.
// A message without day or month (a month or year only) maps to its first day.
func ToDate(m *date.Date) (civil.Date, error) {
	if m == nil {
		return civil.Date{}, errors.New("date was nil")
	}
	day, month := m.GetDay(), m.GetMonth()
	if day == 0 {
		day = 1
		if month == 0 {
			month = 1
		}
	}
	ret := civil.Date{Year: int(m.GetYear()), Month: time.Month(month), Day: int(day)}
	if !ret.IsValid() {
		return civil.Date{}, fmt.Errorf("invalid date: %v", ret)
	}
	return ret, nil
}

// FromTime returns time of day message
func FromTime(t civil.Time) *timeofday.TimeOfDay {
	return &timeofday.TimeOfDay{
		Hours:   int32(t.Hour),
		Minutes: int32(t.Minute),
		Seconds: int32(t.Second),
		Nanos:   int32(t.Nanosecond),
	}
}

// ToTime returns time of day of a message, 24:00 closing time is rejected
func ToTime(m *timeofday.TimeOfDay) (civil.Time, error) {
	if m == nil {
		return civil.Time{}, errors.New("time of day was nil")
	}
	ret := civil.Time{Hour: int(m.GetHours()), Minute: int(m.GetMinutes()), Second: int(m.GetSeconds()), Nanosecond: int(m.GetNanos())}
	if !ret.IsValid() {
		return civil.Time{}, fmt.Errorf("invalid time of day: %02d:%02d:%02d.%09d", ret.Hour, ret.Minute, ret.Second, ret.Nanosecond)
	}
	return ret, nil
}

// FromDateTime returns date time message, non nil zone is recorded as a time zone id when it
// is an IANA location, otherwise (fixed or unnamed zones) as the utc offset in force at dt
func FromDateTime(dt civil.DateTime, zone *time.Location) *datetime.DateTime {
	ret := &datetime.DateTime{
		Year:    int32(dt.Date.Year),
		Month:   int32(dt.Date.Month),
		Day:     int32(dt.Date.Day),
		Hours:   int32(dt.Time.Hour),
		Minutes: int32(dt.Time.Minute),
		Seconds: int32(dt.Time.Second),
		Nanos:   int32(dt.Time.Nanosecond),
	}
	if zone == nil {
		return ret
	}
	if id, ok := ianaID(dt, zone); ok {
		ret.TimeOffset = &datetime.DateTime_TimeZone{TimeZone: &datetime.TimeZone{Id: id}}
		return ret
	}
	_, offset := timeconv.DateTimeToInstant(dt, zone).In(zone).Zone()
	ret.TimeOffset = &datetime.DateTime_UtcOffset{UtcOffset: durationpb.New(time.Duration(offset) * time.Second)}
	return ret
}

// ianaID returns the zone name when loading it from the tz database yields the same
// offsets around dt; a fixed zone named after an abbreviation (CET, EST) does not
func ianaID(dt civil.DateTime, zone *time.Location) (string, bool) {
	id := zone.String()
	if id == "" || id == "Local" {
		return "", false
	}
	loaded, err := time.LoadLocation(id)
	if err != nil {
		return "", false
	}
	at := dt.In(time.UTC)
	for _, t := range []time.Time{at, at.AddDate(0, -6, 0), at.AddDate(0, 6, 0)} {
		_, expect := t.In(zone).Zone()
		_, actual := t.In(loaded).Zone()
		if expect != actual {
			return "", false
		}
	}
	return id, true
}

// ToDateTime returns wall clock reading of a date time message, the message offset is ignored
func ToDateTime(m *datetime.DateTime) (civil.DateTime, error) {
	if m == nil {
		return civil.DateTime{}, errors.New("date time was nil")
	}
	ret := civil.DateTime{
		Date: civil.Date{Year: int(m.GetYear()), Month: time.Month(m.GetMonth()), Day: int(m.GetDay())},
		Time: civil.Time{Hour: int(m.GetHours()), Minute: int(m.GetMinutes()), Second: int(m.GetSeconds()), Nanosecond: int(m.GetNanos())},
	}
	if !ret.IsValid() {
		return civil.DateTime{}, fmt.Errorf("invalid date time: %v", ret)
	}
	return ret, nil
}

// Zone returns the zone of a date time message, fallback when the message has no offset
func Zone(m *datetime.DateTime, fallback *time.Location) (*time.Location, error) {
	switch offset := m.GetTimeOffset().(type) {
	case *datetime.DateTime_UtcOffset:
		if err := offset.UtcOffset.CheckValid(); err != nil {
			return nil, fmt.Errorf("invalid utc offset: %w", err)
		}
		duration := offset.UtcOffset.AsDuration()
		if duration%time.Second != 0 {
			return nil, fmt.Errorf("utc offset %v is not whole seconds", duration)
		}
		return time.FixedZone("", int(duration/time.Second)), nil
	case *datetime.DateTime_TimeZone:
		if id := offset.TimeZone.GetId(); id != "" {
			return timeconv.LoadZone(id)
		}
	}
	return fallback, nil
}

// DateTimeToInstant returns the instant of a date time message in its own zone, fallback is
// used for messages without an offset (nil fallback means time.Local)
func DateTimeToInstant(m *datetime.DateTime, fallback *time.Location) (timeconv.Instant, error) {
	dt, err := ToDateTime(m)
	if err != nil {
		return timeconv.Instant{}, err
	}
	zone, err := Zone(m, fallback)
	if err != nil {
		return timeconv.Instant{}, err
	}
	return timeconv.DateTimeToInstant(dt, zone), nil
}
