package rtr

import (
	"sort"
	"strings"

	"github.com/patrin-io/patrin/consts"
)

// Router matches method+path pairs against an ordered list of registered
// patterns. Literal segments must match exactly; variable segments bind any
// single non-empty path segment. Among patterns that both match, the one
// registered first wins - the router performs no most-specific-first
// reordering, so /users/me must be registered before /users/{id} if it is to
// take precedence.
//
// Registration happens once at startup. After the last Add, the Router is
// immutable and safe for concurrent Lookup calls without locking.
type Router[T any] struct {
	routes []route[T]

	// trimTrailingSlash folds /a/ and /a together by trimming one trailing
	// slash from both patterns and lookup paths. Off by default: a trailing
	// slash is a distinct empty final segment.
	trimTrailingSlash bool
}

// route is a single registered (method, pattern, handler) entry.
type route[T any] struct {
	method   string
	pattern  string
	segments []Segment
	handler  T
}

// New creates an empty router.
func New[T any]() *Router[T] {
	return &Router[T]{}
}

// TrimTrailingSlash controls trailing-slash folding. It applies symmetrically
// to registration and lookup, so it must be set before the first Add.
func (router *Router[T]) TrimTrailingSlash(on bool) {
	router.trimTrailingSlash = on
}

// Add registers a new handler for the given method and pattern.
// It returns an *InvalidPatternError if the pattern cannot be parsed and a
// *DuplicateRouteError if the (method, pattern) pair already exists, in which
// case the earlier registration stays active.
func (router *Router[T]) Add(method string, pattern string, handler T) error {
	if method == "" {
		return &InvalidPatternError{Pattern: pattern, Reason: "method must not be empty"}
	}

	pattern = router.normalize(pattern)

	segments, err := ParsePattern(pattern)
	if err != nil {
		return err
	}

	for _, existing := range router.routes {
		if existing.method == method && existing.pattern == pattern {
			return &DuplicateRouteError{Method: method, Pattern: pattern}
		}
	}

	router.routes = append(router.routes, route[T]{
		method:   method,
		pattern:  pattern,
		segments: segments,
		handler:  handler,
	})
	return nil
}

// Lookup finds the handler and bound parameters for the given method and path.
//
// Matching is positional: the path's segment count must equal the pattern's,
// every literal segment must match exactly, and every variable segment binds
// the corresponding non-empty path segment under its name, in declaration
// order. The first registered pattern that matches wins.
//
// Lookup returns ErrNotFound when no pattern matches the path, and a
// *MethodNotAllowedError when patterns match only under other methods.
func (router *Router[T]) Lookup(method string, path string) (T, []Parameter, error) {
	var empty T

	pieces := strings.Split(router.normalize(path), "/")

	var allowed []string
	for i := range router.routes {
		rt := &router.routes[i]

		if !segmentsMatch(rt.segments, pieces) {
			continue
		}

		if rt.method != method {
			allowed = append(allowed, rt.method)
			continue
		}

		var params []Parameter
		for j, seg := range rt.segments {
			if seg.Kind == SegmentVariable {
				params = append(params, Parameter{Key: seg.Value, Value: pieces[j]})
			}
		}
		return rt.handler, params, nil
	}

	if len(allowed) > 0 {
		return empty, nil, &MethodNotAllowedError{
			Method:  method,
			Path:    path,
			Allowed: dedupeSorted(allowed),
		}
	}

	return empty, nil, ErrNotFound
}

// ListRoutes exposes the route table in registration order, primarily for
// debugging and startup logging.
func (router *Router[T]) ListRoutes() (routes []RouteList) {
	for _, rt := range router.routes {
		routes = append(routes, RouteList{
			Method:  rt.method,
			Pattern: rt.pattern,
			Params:  VariableCount(rt.segments),
		})
	}
	return
}

// normalize applies the trailing-slash policy. "/" is left alone so the root
// pattern stays addressable.
func (router *Router[T]) normalize(s string) string {
	if router.trimTrailingSlash && len(s) > 1 && s[len(s)-1] == consts.RuneFwdSlash {
		return s[:len(s)-1]
	}
	return s
}

// segmentsMatch aligns a parsed pattern against the split pieces of a path.
func segmentsMatch(segments []Segment, pieces []string) bool {
	if len(segments) != len(pieces) {
		return false
	}

	for i, seg := range segments {
		switch seg.Kind {
		case SegmentLiteral:
			if seg.Value != pieces[i] {
				return false
			}
		case SegmentVariable:
			if pieces[i] == "" {
				return false
			}
		}
	}

	return true
}

func dedupeSorted(methods []string) []string {
	sort.Strings(methods)
	out := methods[:0]
	for i, m := range methods {
		if i == 0 || methods[i-1] != m {
			out = append(out, m)
		}
	}
	return out
}
