package libbbb

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/pkg/errors"
)

// UnixMillisecond returns a unix timestamp in milliseconds.
func UnixMillisecond(t time.Time) int64 {
	return t.UnixNano() / int64(time.Millisecond)
}

// FromUnixMillisecond returns a time based on the given unix timestamp in milliseconds.
// A zero timestamp returns the zero time.
func FromUnixMillisecond(t int64) time.Time {
	if t == 0 {
		return time.Time{}
	}
	return time.Unix(0, t*int64(time.Millisecond))
}

// ParseDate parses the human readable dates sent by the server (e.g. `Wed Jan 04 10:22:47 UTC 2017').
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}

	t, err := dateparse.ParseAny(s)
	return t, errors.Wrapf(err, "could not parse date %q", s)
}

// ParseDateAt parses a human readable date written in the server's time zone.
// Zone abbreviations (e.g. `CET', `EST') are ambiguous and the unknown ones read as UTC,
// so the offset is computed from ref, the same instant as epoch milliseconds.
// A zero ref falls back to ParseDate.
func ParseDateAt(s string, ref int64) (time.Time, error) {
	t, err := ParseDate(s)
	if err != nil || t.IsZero() || ref == 0 {
		return t, err
	}

	wall := time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
	offset := wall.Sub(FromUnixMillisecond(ref)).Round(time.Minute)
	if offset < -14*time.Hour || offset > 14*time.Hour {
		return t, errors.Errorf("date %q does not match timestamp %d", s, ref)
	}

	name, _ := t.Zone()
	zone := time.FixedZone(name, int(offset/time.Second))
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), zone), nil
}
