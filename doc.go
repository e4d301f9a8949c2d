// Package timeconv converts between a millisecond Instant and civil calendar values
// (civil.Date, civil.Time, civil.DateTime).
//
// Every conversion takes a zone. Package-level functions treat a nil zone as time.Local,
// read at call time; a Converter treats it as the zone captured when it was created.
//
// Civil values carry nanoseconds while an Instant carries milliseconds, so
// DateTimeToInstant is lossy: the nano-of-second field is truncated (integer division by
// 1e6), never rounded. Instant to civil and back is lossless.
//
// Wall clock readings that do not exist in a zone (a daylight saving gap) are shifted
// forward by the length of the gap; readings that occur twice (an overlap) resolve to the
// earlier offset, that is the earlier instant.
package timeconv
