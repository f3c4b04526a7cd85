package semver

import (
	"strconv"
	"strings"
)

// Version represents a semantic version (major.minor.patch[-extension]).
//
// Version is comparable: two values are equal when all numeric components
// and the extension match, which makes it usable as a map key when grouping
// entries. HasExtension distinguishes "1.2.3" from "1.2.3-".
type Version struct {
	Major        uint16
	Minor        uint16
	Patch        uint16
	Extension    string
	HasExtension bool
}

// versionSeparators are the characters that split version segments.
// Both are treated the same way; "-" does not by itself mark the extension.
const versionSeparators = ".-"

// New returns a Version without extension.
func New(major, minor, patch uint16) Version {
	return Version{Major: major, Minor: minor, Patch: patch}
}

// WithExtension returns a copy of v carrying the given extension.
func (v Version) WithExtension(ext string) Version {
	v.Extension = ext
	v.HasExtension = true
	return v
}

// String returns the string representation of the version.
func (v Version) String() string {
	var sb strings.Builder
	sb.Grow(16 + len(v.Extension))
	sb.WriteString(strconv.FormatUint(uint64(v.Major), 10))
	sb.WriteByte('.')
	sb.WriteString(strconv.FormatUint(uint64(v.Minor), 10))
	sb.WriteByte('.')
	sb.WriteString(strconv.FormatUint(uint64(v.Patch), 10))
	if v.HasExtension {
		sb.WriteByte('-')
		sb.WriteString(v.Extension)
	}
	return sb.String()
}

// Parse parses a version string and returns a Version.
//
// Supported formats:
//   - "1.2.3"
//   - "1.2.3-beta"
//   - "1-2-3" (dots and hyphens are interchangeable)
//   - "1.2.3-rc.1" (everything after the third separator is the extension)
//
// Returns *MissingFieldError when fewer than three segments are present and
// *InvalidIntegerError when a segment is not an unsigned 16-bit integer.
func Parse(s string) (Version, error) {
	rest := s
	exhausted := false

	readInt := func(field string) (uint16, error) {
		if exhausted {
			return 0, &MissingFieldError{Field: field}
		}
		segment := rest
		if i := strings.IndexAny(rest, versionSeparators); i >= 0 {
			segment, rest = rest[:i], rest[i+1:]
		} else {
			rest, exhausted = "", true
		}
		n, err := strconv.ParseUint(segment, 10, 16)
		if err != nil {
			return 0, &InvalidIntegerError{Err: err}
		}
		return uint16(n), nil
	}

	var v Version
	var err error
	if v.Major, err = readInt("major"); err != nil {
		return Version{}, err
	}
	if v.Minor, err = readInt("minor"); err != nil {
		return Version{}, err
	}
	if v.Patch, err = readInt("patch"); err != nil {
		return Version{}, err
	}
	if !exhausted {
		v = v.WithExtension(rest)
	}
	return v, nil
}

// MustParse is like Parse but panics on error. Intended for tests and
// package-level literals.
func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic("semver: Parse(" + strconv.Quote(s) + "): " + err.Error())
	}
	return v
}

// Compare compares two versions.
// It returns -1 if v < other, 0 if v == other, and +1 if v > other.
// A version with an extension has lower precedence than the same triple
// without one (1.0.0-beta < 1.0.0). Extensions compare identifier by
// identifier, numeric identifiers numerically.
func (v Version) Compare(other Version) int {
	if c := compareUint(v.Major, other.Major); c != 0 {
		return c
	}
	if c := compareUint(v.Minor, other.Minor); c != 0 {
		return c
	}
	if c := compareUint(v.Patch, other.Patch); c != 0 {
		return c
	}

	switch {
	case !v.HasExtension && !other.HasExtension:
		return 0
	case !v.HasExtension:
		return 1
	case !other.HasExtension:
		return -1
	default:
		return compareExtension(v.Extension, other.Extension)
	}
}

func compareUint(a, b uint16) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareExtension(a, b string) int {
	aIDs := strings.Split(a, ".")
	bIDs := strings.Split(b, ".")

	n := min(len(aIDs), len(bIDs))
	for i := range n {
		if c := compareIdentifier(aIDs[i], bIDs[i]); c != 0 {
			return c
		}
	}

	// Equal so far: the shorter list has lower precedence.
	switch {
	case len(aIDs) < len(bIDs):
		return -1
	case len(aIDs) > len(bIDs):
		return 1
	default:
		return 0
	}
}

func compareIdentifier(a, b string) int {
	aNum, aIsNum := parseNumericIdentifier(a)
	bNum, bIsNum := parseNumericIdentifier(b)

	switch {
	case aIsNum && bIsNum:
		switch {
		case aNum < bNum:
			return -1
		case aNum > bNum:
			return 1
		default:
			return 0
		}
	case aIsNum:
		return -1 // numeric < non-numeric
	case bIsNum:
		return 1
	default:
		return strings.Compare(a, b)
	}
}

// Numeric identifiers: only digits, no leading zeros unless exactly "0".
func parseNumericIdentifier(s string) (uint64, bool) {
	if s == "" || (len(s) > 1 && s[0] == '0') {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
