package time

import (
	"time"

	"cloud.google.com/go/civil"
	ftime "github.com/viant/tagly/format/time"
	"github.com/viant/timeconv"
)

// Default layouts used when no date format is supplied
const (
	InstantLayout  = "2006-01-02T15:04:05.000Z07:00"
	DateLayout     = "2006-01-02"
	TimeLayout     = "15:04:05.000"
	DateTimeLayout = "2006-01-02T15:04:05.000"
)

// DateFormatToTimeLayout converts ISO 2022-07-15 date format (i.e. YYYY-MM-DD hh:mm:ss) to time layout
func DateFormatToTimeLayout(dateFormat string) string {
	return ftime.DateFormatToTimeLayout(dateFormat)
}

// FormatInstant formats instant as seen in zone, nil zone uses time.Local like timeconv conversions
func FormatInstant(instant timeconv.Instant, zone *time.Location, dateFormat string) string {
	if zone == nil {
		zone = time.Local
	}
	return instant.In(zone).Format(layout(dateFormat, InstantLayout))
}

// FormatDate formats a calendar date
func FormatDate(date civil.Date, dateFormat string) string {
	return date.In(time.UTC).Format(layout(dateFormat, DateLayout))
}

// FormatTime formats a time of day, date tokens render as January 1st of year 0
func FormatTime(t civil.Time, dateFormat string) string {
	return civil.DateTime{Date: civil.Date{Year: 0, Month: time.January, Day: 1}, Time: t}.
		In(time.UTC).Format(layout(dateFormat, TimeLayout))
}

// FormatDateTime formats a wall clock reading, zone tokens render as UTC
func FormatDateTime(dateTime civil.DateTime, dateFormat string) string {
	return dateTime.In(time.UTC).Format(layout(dateFormat, DateTimeLayout))
}

func layout(dateFormat, defaultLayout string) string {
	if dateFormat == "" {
		return defaultLayout
	}
	return DateFormatToTimeLayout(dateFormat)
}
