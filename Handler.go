package patrin

import (
	"github.com/patrin-io/patrin/extract"
)

// Handler is the capability a route is registered with: accept the variables
// bound by the router, produce a response. Concrete variants are built with
// H0 through H4, which bind each variable to a typed argument in
// pattern-declaration order. No reflection is involved; the adapters carry
// their types statically.
type Handler interface {
	invoke(req *Request) (Response, error)
}

// H0 adapts a handler for a pattern with no variable segments.
func H0(fn func(*Request) Response) Handler {
	return handler0{fn}
}

// H1 adapts a handler taking one typed path variable.
func H1[A extract.Scalar](fn func(*Request, A) Response) Handler {
	return handler1[A]{fn}
}

// H2 adapts a handler taking two typed path variables.
func H2[A, B extract.Scalar](fn func(*Request, A, B) Response) Handler {
	return handler2[A, B]{fn}
}

// H3 adapts a handler taking three typed path variables.
func H3[A, B, C extract.Scalar](fn func(*Request, A, B, C) Response) Handler {
	return handler3[A, B, C]{fn}
}

// H4 adapts a handler taking four typed path variables.
func H4[A, B, C, D extract.Scalar](fn func(*Request, A, B, C, D) Response) Handler {
	return handler4[A, B, C, D]{fn}
}

type handler0 struct {
	fn func(*Request) Response
}

func (h handler0) invoke(req *Request) (Response, error) {
	if err := extract.CheckArity(0, len(req.params)); err != nil {
		return Response{}, err
	}

	return h.fn(req), nil
}

type handler1[A extract.Scalar] struct {
	fn func(*Request, A) Response
}

func (h handler1[A]) invoke(req *Request) (Response, error) {
	if err := extract.CheckArity(1, len(req.params)); err != nil {
		return Response{}, err
	}

	a, err := extract.Value[A](req.params[0].Key, req.params[0].Value)
	if err != nil {
		return Response{}, err
	}

	return h.fn(req, a), nil
}

type handler2[A, B extract.Scalar] struct {
	fn func(*Request, A, B) Response
}

func (h handler2[A, B]) invoke(req *Request) (Response, error) {
	if err := extract.CheckArity(2, len(req.params)); err != nil {
		return Response{}, err
	}

	a, err := extract.Value[A](req.params[0].Key, req.params[0].Value)
	if err != nil {
		return Response{}, err
	}

	b, err := extract.Value[B](req.params[1].Key, req.params[1].Value)
	if err != nil {
		return Response{}, err
	}

	return h.fn(req, a, b), nil
}

type handler3[A, B, C extract.Scalar] struct {
	fn func(*Request, A, B, C) Response
}

func (h handler3[A, B, C]) invoke(req *Request) (Response, error) {
	if err := extract.CheckArity(3, len(req.params)); err != nil {
		return Response{}, err
	}

	a, err := extract.Value[A](req.params[0].Key, req.params[0].Value)
	if err != nil {
		return Response{}, err
	}

	b, err := extract.Value[B](req.params[1].Key, req.params[1].Value)
	if err != nil {
		return Response{}, err
	}

	c, err := extract.Value[C](req.params[2].Key, req.params[2].Value)
	if err != nil {
		return Response{}, err
	}

	return h.fn(req, a, b, c), nil
}

type handler4[A, B, C, D extract.Scalar] struct {
	fn func(*Request, A, B, C, D) Response
}

func (h handler4[A, B, C, D]) invoke(req *Request) (Response, error) {
	if err := extract.CheckArity(4, len(req.params)); err != nil {
		return Response{}, err
	}

	a, err := extract.Value[A](req.params[0].Key, req.params[0].Value)
	if err != nil {
		return Response{}, err
	}

	b, err := extract.Value[B](req.params[1].Key, req.params[1].Value)
	if err != nil {
		return Response{}, err
	}

	c, err := extract.Value[C](req.params[2].Key, req.params[2].Value)
	if err != nil {
		return Response{}, err
	}

	d, err := extract.Value[D](req.params[3].Key, req.params[3].Value)
	if err != nil {
		return Response{}, err
	}

	return h.fn(req, a, b, c, d), nil
}
