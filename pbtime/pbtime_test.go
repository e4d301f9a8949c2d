package pbtime

import (
	"testing"
	"time"
	_ "time/tzdata"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/viant/timeconv"
	"google.golang.org/genproto/googleapis/type/date"
	"google.golang.org/genproto/googleapis/type/datetime"
	"google.golang.org/genproto/googleapis/type/timeofday"
	"google.golang.org/protobuf/types/known/durationpb"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func TestInstant(t *testing.T) {
	instant := timeconv.UnixMilli(1_704_151_800_123)
	ts := FromInstant(instant)
	assert.EqualValues(t, 1_704_151_800, ts.GetSeconds())
	assert.EqualValues(t, 123_000_000, ts.GetNanos())

	actual, err := ToInstant(ts)
	assert.Nil(t, err)
	assert.Equal(t, instant, actual)

	actual, err = ToInstant(&timestamppb.Timestamp{Seconds: 1_704_151_800, Nanos: 123_999_999})
	assert.Nil(t, err)
	assert.Equal(t, instant, actual)

	_, err = ToInstant(nil)
	assert.NotNil(t, err)
	_, err = ToInstant(&timestamppb.Timestamp{Nanos: -1})
	assert.NotNil(t, err)
}

func TestToDate(t *testing.T) {
	var testCases = []struct {
		description string
		message     *date.Date
		expect      civil.Date
		expectErr   bool
	}{
		{description: "full date", message: &date.Date{Year: 2024, Month: 2, Day: 29}, expect: civil.Date{Year: 2024, Month: 2, Day: 29}},
		{description: "month only", message: &date.Date{Year: 2024, Month: 7}, expect: civil.Date{Year: 2024, Month: 7, Day: 1}},
		{description: "year only", message: &date.Date{Year: 2024}, expect: civil.Date{Year: 2024, Month: 1, Day: 1}},
		{description: "invalid day", message: &date.Date{Year: 2023, Month: 2, Day: 29}, expectErr: true},
		{description: "nil", expectErr: true},
	}

	for _, testCase := range testCases {
		actual, err := ToDate(testCase.message)
		if testCase.expectErr {
			assert.NotNil(t, err, testCase.description)
			continue
		}
		assert.Nil(t, err, testCase.description)
		assert.Equal(t, testCase.expect, actual, testCase.description)
		assert.Equal(t, testCase.expect, mustDate(t, FromDate(actual)), testCase.description)
	}
}

func mustDate(t *testing.T, m *date.Date) civil.Date {
	ret, err := ToDate(m)
	assert.Nil(t, err)
	return ret
}

func TestTime(t *testing.T) {
	clock := civil.Time{Hour: 23, Minute: 59, Second: 58, Nanosecond: 123_456_789}
	actual, err := ToTime(FromTime(clock))
	assert.Nil(t, err)
	assert.Equal(t, clock, actual)

	_, err = ToTime(&timeofday.TimeOfDay{Hours: 24})
	assert.NotNil(t, err)
	_, err = ToTime(nil)
	assert.NotNil(t, err)
}

func TestFromDateTime(t *testing.T) {
	dateTime := civil.DateTime{
		Date: civil.Date{Year: 2024, Month: 7, Day: 1},
		Time: civil.Time{Hour: 10, Minute: 11, Second: 12, Nanosecond: 13},
	}
	berlin, err := timeconv.LoadZone("Europe/Berlin")
	assert.Nil(t, err)

	m := FromDateTime(dateTime, berlin)
	assert.Equal(t, "Europe/Berlin", m.GetTimeZone().GetId())
	assert.EqualValues(t, 13, m.GetNanos())

	m = FromDateTime(dateTime, time.FixedZone("custom", -90*60))
	assert.Equal(t, -90*time.Minute, m.GetUtcOffset().AsDuration())

	m = FromDateTime(dateTime, nil)
	assert.Nil(t, m.GetTimeOffset())

	actual, err := ToDateTime(m)
	assert.Nil(t, err)
	assert.Equal(t, dateTime, actual)
}

func TestDateTimeToInstant(t *testing.T) {
	utcPlus2 := time.FixedZone("UTC+02:00", 2*3600)
	var testCases = []struct {
		description string
		message     *datetime.DateTime
		fallback    *time.Location
		expect      time.Time
		expectErr   bool
	}{
		{
			description: "utc offset",
			message: &datetime.DateTime{Year: 2024, Month: 1, Day: 2, Hours: 1, Minutes: 30,
				TimeOffset: &datetime.DateTime_UtcOffset{UtcOffset: durationpb.New(2 * time.Hour)}},
			expect: time.Date(2024, 1, 1, 23, 30, 0, 0, time.UTC),
		},
		{
			description: "time zone id",
			message: &datetime.DateTime{Year: 2024, Month: 1, Day: 1, Hours: 18, Minutes: 30,
				TimeOffset: &datetime.DateTime_TimeZone{TimeZone: &datetime.TimeZone{Id: "America/New_York"}}},
			expect: time.Date(2024, 1, 1, 23, 30, 0, 0, time.UTC),
		},
		{
			description: "fallback zone",
			message:     &datetime.DateTime{Year: 2024, Month: 1, Day: 2, Hours: 1, Minutes: 30, Nanos: 999_999},
			fallback:    utcPlus2,
			expect:      time.Date(2024, 1, 1, 23, 30, 0, 0, time.UTC),
		},
		{
			description: "unknown zone id",
			message: &datetime.DateTime{Year: 2024, Month: 1, Day: 1,
				TimeOffset: &datetime.DateTime_TimeZone{TimeZone: &datetime.TimeZone{Id: "Nowhere/Special"}}},
			expectErr: true,
		},
		{
			description: "fractional offset",
			message: &datetime.DateTime{Year: 2024, Month: 1, Day: 1,
				TimeOffset: &datetime.DateTime_UtcOffset{UtcOffset: durationpb.New(time.Hour + time.Millisecond)}},
			expectErr: true,
		},
		{
			description: "invalid date",
			message:     &datetime.DateTime{Year: 2024, Month: 13, Day: 1},
			expectErr:   true,
		},
	}

	for _, testCase := range testCases {
		actual, err := DateTimeToInstant(testCase.message, testCase.fallback)
		if testCase.expectErr {
			assert.NotNil(t, err, testCase.description)
			continue
		}
		assert.Nil(t, err, testCase.description)
		assert.Equal(t, timeconv.InstantOf(testCase.expect), actual, testCase.description)
	}
}

func TestDateTimeRoundTrip(t *testing.T) {
	instant := timeconv.UnixMilli(1_719_821_472_345)
	for _, id := range []string{"UTC", "UTC+05:30", "Europe/Berlin", "Pacific/Chatham"} {
		zone, err := timeconv.LoadZone(id)
		assert.Nil(t, err, id)
		m := FromDateTime(timeconv.InstantToDateTime(instant, zone), zone)
		actual, err := DateTimeToInstant(m, nil)
		assert.Nil(t, err, id)
		assert.Equal(t, instant, actual, id)
	}
}

func TestDateTimeRoundTrip_FixedZones(t *testing.T) {
	saved := time.Local
	defer func() { time.Local = saved }()
	time.Local = time.UTC

	unnamed, err := Zone(&datetime.DateTime{TimeOffset: &datetime.DateTime_UtcOffset{UtcOffset: durationpb.New(2 * time.Hour)}}, nil)
	assert.Nil(t, err)
	berlin, err := timeconv.LoadZone("Europe/Berlin")
	assert.Nil(t, err)

	var testCases = []struct {
		description  string
		zone         *time.Location
		dateTime     civil.DateTime
		expect       time.Time
		expectZoneID string
	}{
		{
			description: "unnamed offset zone",
			zone:        unnamed,
			dateTime:    civil.DateTime{Date: civil.Date{Year: 2024, Month: 1, Day: 2}, Time: civil.Time{Hour: 1, Minute: 30}},
			expect:      time.Date(2024, 1, 1, 23, 30, 0, 0, time.UTC),
		},
		{
			description: "fixed zone named like an abbreviation",
			zone:        time.FixedZone("CET", 3600),
			dateTime:    civil.DateTime{Date: civil.Date{Year: 2024, Month: 7, Day: 1}, Time: civil.Time{Hour: 12}},
			expect:      time.Date(2024, 7, 1, 11, 0, 0, 0, time.UTC),
		},
		{
			description: "fixed offset id",
			zone:        time.FixedZone("UTC+02:00", 2*3600),
			dateTime:    civil.DateTime{Date: civil.Date{Year: 2024, Month: 7, Day: 1}, Time: civil.Time{Hour: 12}},
			expect:      time.Date(2024, 7, 1, 10, 0, 0, 0, time.UTC),
		},
		{
			description:  "iana location keeps its id",
			zone:         berlin,
			dateTime:     civil.DateTime{Date: civil.Date{Year: 2024, Month: 7, Day: 1}, Time: civil.Time{Hour: 12}},
			expect:       time.Date(2024, 7, 1, 10, 0, 0, 0, time.UTC),
			expectZoneID: "Europe/Berlin",
		},
	}

	for _, testCase := range testCases {
		m := FromDateTime(testCase.dateTime, testCase.zone)
		if testCase.expectZoneID == "" {
			assert.Nil(t, m.GetTimeZone(), testCase.description)
			assert.NotNil(t, m.GetUtcOffset(), testCase.description)
		} else {
			assert.Equal(t, testCase.expectZoneID, m.GetTimeZone().GetId(), testCase.description)
		}
		actual, err := DateTimeToInstant(m, nil)
		assert.Nil(t, err, testCase.description)
		assert.Equal(t, timeconv.InstantOf(testCase.expect), actual, testCase.description)
	}
}
