package entry

import (
	"strconv"
	"strings"
	"time"

	"github.com/indaco/entryline/internal/semver"
)

// TimestampLayout is the layout of the timestamp segment. Timestamps carry
// no zone and are interpreted as UTC.
const TimestampLayout = "2006-01-02 15:04"

// Segment names, in the order they appear on a line.
const (
	FieldTimestamp = "timestamp"
	FieldVersion   = "version"
	FieldMax       = "max"
	FieldValues    = "values"
)

// separators are the interchangeable top-level segment separators.
// "," is reserved for the values list.
const separators = "|:"

// Entry is one parsed line: timestamp, version, max and values.
type Entry struct {
	Timestamp time.Time
	Version   semver.Version
	Max       int32
	Values    []int32
}

// Parse parses a line of the form
//
//	YYYY-MM-DD HH:MM|MAJOR.MINOR.PATCH[-EXT]|MAX:V1,V2,...,VN
//
// where "|" and ":" are interchangeable as the three top-level separators.
// Stages run in order and the first failure is returned; no partial Entry is
// ever returned alongside an error.
func Parse(s string) (Entry, error) {
	// Only the empty line is a missing timestamp. Any other first segment,
	// even " " or an empty one before "|" or ":", is an invalid timestamp.
	if s == "" {
		return Entry{}, &MissingFieldError{Field: FieldTimestamp}
	}
	sc := segmenter{rest: s}

	tsText, _ := sc.timestamp()
	ts, err := time.ParseInLocation(TimestampLayout, tsText, time.UTC)
	if err != nil {
		return Entry{}, &InvalidTimestampError{Err: err}
	}

	versionText, ok := sc.next()
	if !ok {
		return Entry{}, &MissingFieldError{Field: FieldVersion}
	}
	version, err := semver.Parse(versionText)
	if err != nil {
		return Entry{}, &InvalidVersionError{Err: err}
	}

	maxText, ok := sc.next()
	if !ok {
		return Entry{}, &MissingFieldError{Field: FieldMax}
	}
	maxValue, err := parseInt32(maxText)
	if err != nil {
		return Entry{}, &InvalidIntegerError{Field: FieldMax, Err: err}
	}

	valuesText, ok := sc.remainder()
	if !ok {
		return Entry{}, &MissingFieldError{Field: FieldValues}
	}
	values, err := parseValues(valuesText)
	if err != nil {
		return Entry{}, &InvalidIntegerError{Field: FieldValues, Err: err}
	}

	return Entry{
		Timestamp: ts,
		Version:   version,
		Max:       maxValue,
		Values:    values,
	}, nil
}

// String renders the entry in canonical form, "|" between timestamp, version
// and max and ":" before the values. Parsing the result yields an equal Entry.
func (e Entry) String() string {
	var sb strings.Builder
	sb.WriteString(e.Timestamp.UTC().Format(TimestampLayout))
	sb.WriteByte('|')
	sb.WriteString(e.Version.String())
	sb.WriteByte('|')
	sb.WriteString(strconv.FormatInt(int64(e.Max), 10))
	sb.WriteByte(':')
	for i, v := range e.Values {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatInt(int64(v), 10))
	}
	return sb.String()
}

// Equal reports whether e and other hold the same fields.
func (e Entry) Equal(other Entry) bool {
	if !e.Timestamp.Equal(other.Timestamp) || e.Version != other.Version || e.Max != other.Max {
		return false
	}
	if len(e.Values) != len(other.Values) {
		return false
	}
	for i := range e.Values {
		if e.Values[i] != other.Values[i] {
			return false
		}
	}
	return true
}

func parseInt32(s string) (int32, error) {
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return int32(n), nil
}

// parseValues parses a comma-separated list, stopping at the first bad token.
func parseValues(s string) ([]int32, error) {
	tokens := strings.Split(s, ",")
	values := make([]int32, 0, len(tokens))
	for _, tok := range tokens {
		v, err := parseInt32(tok)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

// segmenter walks a line one top-level segment at a time.
type segmenter struct {
	rest string
	done bool
}

// next returns the text up to the next separator.
func (s *segmenter) next() (string, bool) {
	segment, _, ok := s.nextWithSep()
	return segment, ok
}

func (s *segmenter) nextWithSep() (string, byte, bool) {
	if s.done {
		return "", 0, false
	}
	i := strings.IndexAny(s.rest, separators)
	if i < 0 {
		segment := s.rest
		s.rest, s.done = "", true
		return segment, 0, true
	}
	segment, sep := s.rest[:i], s.rest[i]
	s.rest = s.rest[i+1:]
	return segment, sep, true
}

// timestamp returns the timestamp segment. The HH:MM colon is also a
// separator, so a first segment holding the date and hour that is followed
// by ":" gets the minutes segment joined back on.
func (s *segmenter) timestamp() (string, bool) {
	segment, sep, ok := s.nextWithSep()
	if !ok || sep != ':' || !strings.Contains(segment, " ") {
		return segment, ok
	}
	minutes, ok := s.next()
	if !ok {
		return segment, true
	}
	return segment + ":" + minutes, true
}

// remainder returns everything that has not been consumed yet.
func (s *segmenter) remainder() (string, bool) {
	if s.done {
		return "", false
	}
	rest := s.rest
	s.rest, s.done = "", true
	return rest, true
}
