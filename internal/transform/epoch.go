package transform

import (
	"fmt"
	"strconv"
	"time"
)

// TimeLayout is the YYYY-MM-DD HH:MM:SS layout used for every formatted instant.
const TimeLayout = "2006-01-02 15:04:05"

// Dates are kept to four-digit years so the layout stays fixed-width.
var (
	minEpoch = time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC).Unix()
	maxEpoch = time.Date(9999, time.December, 31, 23, 59, 59, 0, time.UTC).Unix()
)

// EpochTimes holds the two renderings of a Unix timestamp.
type EpochTimes struct {
	UTC   string
	Local string
}

// ParseEpoch parses s as signed epoch seconds.
func ParseEpoch(s string) (int64, error) {
	ts, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidEpoch, s)
	}
	if ts < minEpoch || ts > maxEpoch {
		return 0, fmt.Errorf("%w: %d", ErrEpochOutOfRange, ts)
	}
	return ts, nil
}

// FormatEpoch converts epoch seconds in s to UTC and to loc.
// A nil loc means time.Local.
func FormatEpoch(s string, loc *time.Location) (EpochTimes, error) {
	ts, err := ParseEpoch(s)
	if err != nil {
		return EpochTimes{}, err
	}
	instant := time.Unix(ts, 0)
	return EpochTimes{
		UTC:   FormatTime(instant, time.UTC),
		Local: FormatTime(instant, loc),
	}, nil
}

// FormatTime renders t in loc using TimeLayout.
func FormatTime(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format(TimeLayout)
}
