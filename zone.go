package timeconv

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidZone is returned for zone ids that are neither an offset nor a known location
var ErrInvalidZone = errors.New("invalid zone id")

const maxOffset = 18 * 60 * 60

// LoadZone returns the location for a zone id.
//
// Supported ids: "" and "Local" (time.Local), "UTC", "GMT", "UT", "Z" (time.UTC),
// fixed offsets such as "+2", "-05:00", "+0530", "UTC+02:00", "GMT-3", and IANA names.
func LoadZone(id string) (*time.Location, error) {
	switch id {
	case "", "Local":
		return time.Local, nil
	case "UTC", "GMT", "UT", "Z":
		return time.UTC, nil
	}
	prefix := ""
	for _, candidate := range []string{"UTC", "GMT", "UT"} {
		if strings.HasPrefix(id, candidate) {
			prefix = candidate
			break
		}
	}
	offset := id[len(prefix):]
	if strings.HasPrefix(offset, "+") || strings.HasPrefix(offset, "-") {
		seconds, err := parseOffset(offset)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %v", ErrInvalidZone, id, err)
		}
		return time.FixedZone(prefix+formatOffset(seconds), seconds), nil
	}
	loc, err := time.LoadLocation(id)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidZone, id, err)
	}
	return loc, nil
}

// parseOffset parses ±h, ±hh, ±hhmm, ±hh:mm and ±hh:mm:ss
func parseOffset(value string) (int, error) {
	sign := 1
	if value[0] == '-' {
		sign = -1
	}
	body := value[1:]
	var parts []string
	switch {
	case strings.Contains(body, ":"):
		parts = strings.Split(body, ":")
		if len(parts) > 3 {
			return 0, fmt.Errorf("too many offset fields")
		}
		for _, part := range parts[1:] {
			if len(part) != 2 {
				return 0, fmt.Errorf("offset field %q must have two digits", part)
			}
		}
	case len(body) == 1 || len(body) == 2:
		parts = []string{body}
	case len(body) == 4:
		parts = []string{body[:2], body[2:]}
	default:
		return 0, fmt.Errorf("unsupported offset format")
	}
	if len(parts[0]) == 0 || len(parts[0]) > 2 {
		return 0, fmt.Errorf("invalid offset hours %q", parts[0])
	}
	seconds := 0
	for i, part := range parts {
		v, err := strconv.Atoi(part)
		if err != nil || strings.ContainsAny(part, "+-") {
			return 0, fmt.Errorf("invalid offset field %q", part)
		}
		if i > 0 && v > 59 {
			return 0, fmt.Errorf("offset field %q out of range", part)
		}
		seconds = seconds*60 + v
	}
	for i := len(parts); i < 3; i++ {
		seconds *= 60
	}
	if seconds > maxOffset {
		return 0, fmt.Errorf("offset %s exceeds 18:00", value)
	}
	return sign * seconds, nil
}

func formatOffset(seconds int) string {
	sign := '+'
	if seconds < 0 {
		sign = '-'
		seconds = -seconds
	}
	ret := fmt.Sprintf("%c%02d:%02d", sign, seconds/3600, seconds/60%60)
	if s := seconds % 60; s != 0 {
		ret += fmt.Sprintf(":%02d", s)
	}
	return ret
}
