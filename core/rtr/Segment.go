package rtr

import (
	"strings"

	"github.com/patrin-io/patrin/consts"
)

// SegmentKind discriminates the two segment variants of a pattern.
type SegmentKind uint8

const (
	// SegmentLiteral matches its text exactly.
	SegmentLiteral SegmentKind = iota

	// SegmentVariable matches any single non-empty path segment and binds it
	// under the segment's name.
	SegmentVariable
)

// Segment is one /-delimited unit of a registered pattern.
// For SegmentLiteral, Value is the literal text (possibly empty, as in a
// trailing slash). For SegmentVariable, Value is the variable name.
type Segment struct {
	Kind  SegmentKind
	Value string
}

// ParsePattern splits a pattern on "/" and classifies each piece.
// A piece wrapped in braces, e.g. {id}, becomes a variable segment named by
// the text between the braces. Everything else is a literal.
//
// Patterns must be rooted. Variable names must be non-empty and unique
// within one pattern. Violations return an *InvalidPatternError.
func ParsePattern(pattern string) ([]Segment, error) {
	if pattern == "" || pattern[0] != consts.RuneFwdSlash {
		return nil, &InvalidPatternError{Pattern: pattern, Reason: "pattern must begin with '/'"}
	}

	pieces := strings.Split(pattern, "/")
	segments := make([]Segment, 0, len(pieces))
	var seen []string // variable names, in order

	for _, piece := range pieces {
		if len(piece) >= 2 && piece[0] == consts.RuneLBrace && piece[len(piece)-1] == consts.RuneRBrace {
			name := piece[1 : len(piece)-1]
			if name == "" {
				return nil, &InvalidPatternError{Pattern: pattern, Reason: "variable segment has no name"}
			}
			for _, prior := range seen {
				if prior == name {
					return nil, &InvalidPatternError{
						Pattern: pattern,
						Reason:  "variable name '" + name + "' appears more than once",
					}
				}
			}
			seen = append(seen, name)
			segments = append(segments, Segment{Kind: SegmentVariable, Value: name})
			continue
		}

		segments = append(segments, Segment{Kind: SegmentLiteral, Value: piece})
	}

	return segments, nil
}

// VariableCount reports how many variable segments the pattern declares.
func VariableCount(segments []Segment) int {
	n := 0
	for _, seg := range segments {
		if seg.Kind == SegmentVariable {
			n++
		}
	}
	return n
}
