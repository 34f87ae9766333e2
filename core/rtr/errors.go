package rtr

import (
	"errors"
	"strings"
)

// ErrNotFound is returned by Lookup when no registered pattern of any method
// matches the requested path.
var ErrNotFound = errors.New("no route matches the requested path")

// DuplicateRouteError is returned by Add when a (method, pattern) pair is
// registered twice. The first registration stays active; callers should treat
// this as fatal at startup rather than silently overwriting.
type DuplicateRouteError struct {
	Method  string
	Pattern string
}

func (e *DuplicateRouteError) Error() string {
	return "route already registered: " + e.Method + " " + e.Pattern
}

// InvalidPatternError is returned by Add when a pattern cannot be parsed.
type InvalidPatternError struct {
	Pattern string
	Reason  string
}

func (e *InvalidPatternError) Error() string {
	return "invalid pattern " + e.Pattern + ": " + e.Reason
}

// MethodNotAllowedError is returned by Lookup when the path matches at least
// one pattern, but none registered under the requested method.
// Allowed holds the matching methods, sorted and deduplicated.
type MethodNotAllowedError struct {
	Method  string
	Path    string
	Allowed []string
}

func (e *MethodNotAllowedError) Error() string {
	return "method " + e.Method + " not allowed for " + e.Path +
		" (allowed: " + strings.Join(e.Allowed, ", ") + ")"
}
