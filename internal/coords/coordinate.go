package coords

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// nullField is rendered in place of a field that is absent on both a
// descriptor and its parent.
const nullField = "null"

var (
	// coordinateRegex matches a full group:artifact:version coordinate,
	// with optional surrounding whitespace. The version must start with a digit.
	coordinateRegex = regexp.MustCompile(`^\s*([\w\-_.]+):([\w\-_.]+):(\d[\w\-_.]*)\s*$`)

	// ErrInvalidCoordinate is returned when a coordinate reference cannot be parsed.
	ErrInvalidCoordinate = errors.New("invalid coordinate")

	// ErrUnresolvedField is returned by ResolveGAV when a field is absent on
	// both the descriptor and its parent.
	ErrUnresolvedField = errors.New("unresolved coordinate field")
)

// Coordinate is a parsed group:artifact:version triple.
type Coordinate struct {
	GroupID    string
	ArtifactID string
	Version    string
}

// String returns the coordinate as "group:artifact:version".
func (c Coordinate) String() string {
	return FormatGAV(c.GroupID, c.ArtifactID, c.Version)
}

// GA returns the coordinate as "group:artifact".
func (c Coordinate) GA() string {
	return FormatGA(c.GroupID, c.ArtifactID)
}

// IsValid reports whether text is a well-formed group:artifact:version
// coordinate. Leading and trailing whitespace is allowed.
func IsValid(text string) bool {
	return coordinateRegex.MatchString(text)
}

// Parse strictly parses a single coordinate reference.
//
// The trimmed text must consist of exactly three non-empty parts separated
// by ':' and none of them may contain whitespace. Parse does not require
// the version to start with a digit; use IsValid for that.
func Parse(text string) (Coordinate, error) {
	trimmed := strings.TrimSpace(text)
	parts := strings.Split(trimmed, ":")
	if len(parts) != 3 {
		return Coordinate{}, fmt.Errorf("%w: %q: expected group:artifact:version", ErrInvalidCoordinate, text)
	}

	names := [3]string{"group", "artifact", "version"}
	for i, p := range parts {
		if p == "" {
			return Coordinate{}, fmt.Errorf("%w: %q: empty %s", ErrInvalidCoordinate, text, names[i])
		}
		if strings.ContainsFunc(p, isSpace) {
			return Coordinate{}, fmt.Errorf("%w: %q: whitespace in %s", ErrInvalidCoordinate, text, names[i])
		}
	}

	return Coordinate{GroupID: parts[0], ArtifactID: parts[1], Version: parts[2]}, nil
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}
