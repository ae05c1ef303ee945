package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Version identifies a provider release. Minor is -1 when only a major
// version was specified.
type Version struct {
	Major int
	Minor int
}

// ParseVersion parses "major" or "major.minor". Trailing garbage is
// rejected; both parts must be plain decimal numbers.
func ParseVersion(s string) (Version, error) {
	var bad = Version{Major: -1, Minor: -1}

	majorStr, minorStr, hasMinor := strings.Cut(s, ".")
	major, err := strconv.Atoi(majorStr)
	if err != nil {
		return bad, fmt.Errorf("error parsing version %q: %w", s, err)
	}
	if !hasMinor {
		return Version{Major: major, Minor: -1}, nil
	}
	minor, err := strconv.Atoi(minorStr)
	if err != nil {
		return bad, fmt.Errorf("error parsing version %q: %w", s, err)
	}
	return Version{Major: major, Minor: minor}, nil
}

func (v Version) String() string {
	if v.Minor < 0 {
		return strconv.Itoa(v.Major)
	}
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}
