package rtr_test

import (
	"errors"
	"testing"

	"github.com/rohanthewiz/assert"

	"github.com/patrin-io/patrin/consts"
	"github.com/patrin-io/patrin/core/rtr"
)

func TestStatic(t *testing.T) {
	r := rtr.New[string]()
	assert.Nil(t, r.Add(consts.MethodGet, "/hello", "Hello"))
	assert.Nil(t, r.Add(consts.MethodGet, "/world", "World"))

	data, params, err := r.Lookup(consts.MethodGet, "/hello")
	assert.Nil(t, err)
	assert.Equal(t, len(params), 0)
	assert.Equal(t, data, "Hello")

	data, params, err = r.Lookup(consts.MethodGet, "/world")
	assert.Nil(t, err)
	assert.Equal(t, len(params), 0)
	assert.Equal(t, data, "World")
}

func TestParameterBinding(t *testing.T) {
	r := rtr.New[string]()
	assert.Nil(t, r.Add(consts.MethodGet, "/blog/{post}", "Blog post"))
	assert.Nil(t, r.Add(consts.MethodGet, "/blog/{post}/comments/{id}", "Comment"))

	data, params, err := r.Lookup(consts.MethodGet, "/blog/hello-world")
	assert.Nil(t, err)
	assert.Equal(t, len(params), 1)
	assert.Equal(t, params[0].Key, "post")
	assert.Equal(t, params[0].Value, "hello-world")
	assert.Equal(t, data, "Blog post")

	data, params, err = r.Lookup(consts.MethodGet, "/blog/hello-world/comments/123")
	assert.Nil(t, err)
	assert.Equal(t, len(params), 2)
	assert.Equal(t, params[0].Key, "post")
	assert.Equal(t, params[0].Value, "hello-world")
	assert.Equal(t, params[1].Key, "id")
	assert.Equal(t, params[1].Value, "123")
	assert.Equal(t, data, "Comment")
}

// The documented scenario: two variables surrounding a literal tail.
func TestIndexHTMLScenario(t *testing.T) {
	r := rtr.New[string]()
	assert.Nil(t, r.Add(consts.MethodGet, "/{id}/{name}/index.html", "Profile"))

	data, params, err := r.Lookup(consts.MethodGet, "/42/alice/index.html")
	assert.Nil(t, err)
	assert.Equal(t, data, "Profile")
	assert.Equal(t, len(params), 2)
	assert.Equal(t, params[0].Key, "id")
	assert.Equal(t, params[0].Value, "42")
	assert.Equal(t, params[1].Key, "name")
	assert.Equal(t, params[1].Value, "alice")

	// Same shape, different literal tail.
	_, _, err = r.Lookup(consts.MethodGet, "/42/alice/profile.html")
	assert.True(t, errors.Is(err, rtr.ErrNotFound))
}

func TestEmptyRouterNotFound(t *testing.T) {
	r := rtr.New[string]()

	_, _, err := r.Lookup(consts.MethodGet, "/42/alice/index.html")
	assert.True(t, errors.Is(err, rtr.ErrNotFound))
}

func TestSegmentCountMismatch(t *testing.T) {
	r := rtr.New[string]()
	assert.Nil(t, r.Add(consts.MethodGet, "/a/{b}/c", "abc"))

	for _, path := range []string{"/a", "/a/x", "/a/x/c/d", ""} {
		_, _, err := r.Lookup(consts.MethodGet, path)
		assert.True(t, errors.Is(err, rtr.ErrNotFound))
	}
}

// Variables bind non-empty segments only; an empty segment in variable
// position is no match.
func TestVariableRequiresNonEmptySegment(t *testing.T) {
	r := rtr.New[string]()
	assert.Nil(t, r.Add(consts.MethodGet, "/a/{b}/c", "abc"))

	_, _, err := r.Lookup(consts.MethodGet, "/a//c")
	assert.True(t, errors.Is(err, rtr.ErrNotFound))
}

// First-registered-wins among equally applicable patterns. The router does
// not prefer more-literal patterns; registration order is the tie-break.
func TestFirstRegisteredWins(t *testing.T) {
	r := rtr.New[string]()
	assert.Nil(t, r.Add(consts.MethodGet, "/users/{id}", "variable"))
	assert.Nil(t, r.Add(consts.MethodGet, "/users/me", "literal"))

	// The variable pattern was registered first, so it shadows /users/me.
	data, params, err := r.Lookup(consts.MethodGet, "/users/me")
	assert.Nil(t, err)
	assert.Equal(t, data, "variable")
	assert.Equal(t, len(params), 1)
	assert.Equal(t, params[0].Value, "me")

	// Registered the other way around, the literal wins.
	r2 := rtr.New[string]()
	assert.Nil(t, r2.Add(consts.MethodGet, "/users/me", "literal"))
	assert.Nil(t, r2.Add(consts.MethodGet, "/users/{id}", "variable"))

	data, params, err = r2.Lookup(consts.MethodGet, "/users/me")
	assert.Nil(t, err)
	assert.Equal(t, data, "literal")
	assert.Equal(t, len(params), 0)
}

func TestDuplicateRoute(t *testing.T) {
	r := rtr.New[string]()
	assert.Nil(t, r.Add(consts.MethodGet, "/blog/{post}", "first"))

	err := r.Add(consts.MethodGet, "/blog/{post}", "second")
	var dup *rtr.DuplicateRouteError
	assert.True(t, errors.As(err, &dup))
	assert.Equal(t, dup.Method, consts.MethodGet)
	assert.Equal(t, dup.Pattern, "/blog/{post}")

	// The first registration stays active.
	data, _, err := r.Lookup(consts.MethodGet, "/blog/x")
	assert.Nil(t, err)
	assert.Equal(t, data, "first")

	// Same pattern under another method is fine.
	assert.Nil(t, r.Add(consts.MethodPost, "/blog/{post}", "post handler"))

	// Differently named variables are distinct patterns; the earlier route
	// shadows the later one at lookup.
	assert.Nil(t, r.Add(consts.MethodGet, "/blog/{slug}", "shadowed"))
	data, _, _ = r.Lookup(consts.MethodGet, "/blog/x")
	assert.Equal(t, data, "first")
}

func TestMethodNotAllowed(t *testing.T) {
	r := rtr.New[string]()
	assert.Nil(t, r.Add(consts.MethodGet, "/{id}/{name}/index.html", "Profile"))
	assert.Nil(t, r.Add(consts.MethodDelete, "/{id}/{name}/index.html", "Remove"))

	_, _, err := r.Lookup(consts.MethodPost, "/42/alice/index.html")
	var notAllowed *rtr.MethodNotAllowedError
	assert.True(t, errors.As(err, &notAllowed))
	assert.Equal(t, notAllowed.Method, consts.MethodPost)
	assert.Equal(t, notAllowed.Path, "/42/alice/index.html")
	assert.Equal(t, len(notAllowed.Allowed), 2)
	assert.Equal(t, notAllowed.Allowed[0], consts.MethodDelete)
	assert.Equal(t, notAllowed.Allowed[1], consts.MethodGet)

	// A path no pattern matches is NotFound, not MethodNotAllowed.
	_, _, err = r.Lookup(consts.MethodPost, "/nope")
	assert.True(t, errors.Is(err, rtr.ErrNotFound))
}

// A trailing slash is a distinct empty final segment by default.
func TestTrailingSlashDistinct(t *testing.T) {
	r := rtr.New[string]()
	assert.Nil(t, r.Add(consts.MethodGet, "/a", "no slash"))

	_, _, err := r.Lookup(consts.MethodGet, "/a/")
	assert.True(t, errors.Is(err, rtr.ErrNotFound))

	assert.Nil(t, r.Add(consts.MethodGet, "/a/", "with slash"))

	data, _, err := r.Lookup(consts.MethodGet, "/a/")
	assert.Nil(t, err)
	assert.Equal(t, data, "with slash")
}

// TrimTrailingSlash folds the two spellings, symmetrically for registration
// and lookup.
func TestTrimTrailingSlash(t *testing.T) {
	r := rtr.New[string]()
	r.TrimTrailingSlash(true)
	assert.Nil(t, r.Add(consts.MethodGet, "/a/", "a"))

	data, _, err := r.Lookup(consts.MethodGet, "/a")
	assert.Nil(t, err)
	assert.Equal(t, data, "a")

	data, _, err = r.Lookup(consts.MethodGet, "/a/")
	assert.Nil(t, err)
	assert.Equal(t, data, "a")

	// "/a" is now a duplicate of the trimmed "/a/".
	err = r.Add(consts.MethodGet, "/a", "dup")
	var dup *rtr.DuplicateRouteError
	assert.True(t, errors.As(err, &dup))

	// The root path is never trimmed away.
	assert.Nil(t, r.Add(consts.MethodGet, "/", "root"))
	data, _, err = r.Lookup(consts.MethodGet, "/")
	assert.Nil(t, err)
	assert.Equal(t, data, "root")
}

func TestListRoutes(t *testing.T) {
	r := rtr.New[string]()
	assert.Nil(t, r.Add(consts.MethodGet, "/", "home"))
	assert.Nil(t, r.Add(consts.MethodPost, "/blog/{post}", "create"))

	routes := r.ListRoutes()
	assert.Equal(t, len(routes), 2)
	assert.Equal(t, routes[0].Method, consts.MethodGet)
	assert.Equal(t, routes[0].Pattern, "/")
	assert.Equal(t, routes[0].Params, 0)
	assert.Equal(t, routes[1].Method, consts.MethodPost)
	assert.Equal(t, routes[1].Pattern, "/blog/{post}")
	assert.Equal(t, routes[1].Params, 1)
}

func BenchmarkLookup(b *testing.B) {
	r := rtr.New[string]()
	_ = r.Add(consts.MethodGet, "/", "home")
	_ = r.Add(consts.MethodGet, "/users/{id}", "user")
	_ = r.Add(consts.MethodGet, "/users/{id}/posts/{postId}", "post")
	_ = r.Add(consts.MethodGet, "/{id}/{name}/index.html", "profile")

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _, _ = r.Lookup(consts.MethodGet, "/42/alice/index.html")
	}
}
