package timeconv

import (
	"time"

	"cloud.google.com/go/civil"
)

// transitionWindow must exceed the largest UTC offset so that offsets sampled on either
// side of a wall clock reading fall before and after any transition affecting it.
// Two transitions within the window that cancel out take the before == after path.
const transitionWindow = 24 * time.Hour

// resolve places a wall clock reading of loc on the timeline.
// A reading inside a gap is shifted forward by the gap length, a reading inside an
// overlap takes the earlier offset.
func resolve(dt civil.DateTime, loc *time.Location) time.Time {
	wall := dt.In(time.UTC)
	before := offsetAt(wall.Add(-transitionWindow), loc)
	after := offsetAt(wall.Add(transitionWindow), loc)
	earlier := wall.Add(-offsetDuration(before))
	if before == after {
		return earlier.In(loc)
	}
	if offsetAt(earlier, loc) == before {
		return earlier.In(loc)
	}
	later := wall.Add(-offsetDuration(after))
	if offsetAt(later, loc) == after {
		return later.In(loc)
	}
	//gap: the offset in force before the transition pushes the reading past it
	return earlier.In(loc)
}

func offsetAt(t time.Time, loc *time.Location) int {
	_, offset := t.In(loc).Zone()
	return offset
}

func offsetDuration(offset int) time.Duration {
	return time.Duration(offset) * time.Second
}
