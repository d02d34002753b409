package quotes

import (
	"errors"
	"regexp"
	"strconv"
	"time"
)

var ErrTimestampAbsent = errors.New("no 13-digit epoch millisecond run")

var epochMillisPattern = regexp.MustCompile(`\d{13}`)

// DecodeEmbeddedTimestamp reads the first 13-digit run in s, e.g. the
// "/Date(1700000000000+0000)/" wrapper, as Unix milliseconds in UTC.
//
// When s holds several runs the first one wins.
func DecodeEmbeddedTimestamp(s string) (time.Time, error) {
	run := epochMillisPattern.FindString(s)
	if run == "" {
		return time.Time{}, ErrTimestampAbsent
	}
	ms, err := strconv.ParseInt(run, 10, 64)
	if err != nil {
		return time.Time{}, err
	}
	return time.UnixMilli(ms).UTC(), nil
}

// TimestampRuns counts the non-overlapping 13-digit runs in s.
func TimestampRuns(s string) int {
	return len(epochMillisPattern.FindAllString(s, -1))
}
