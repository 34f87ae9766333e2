package patrin

import (
	"github.com/google/uuid"

	"github.com/patrin-io/patrin/core/rtr"
)

// Request carries one dispatched request through matching, extraction and the
// handler. It is created per dispatch and discarded afterwards; handlers must
// not retain it.
type Request struct {
	id     uuid.UUID
	method string
	path   string
	body   []byte
	params []rtr.Parameter
}

// ID returns the request's correlation ID, generated at dispatch time.
func (req *Request) ID() uuid.UUID {
	return req.id
}

// Method returns the request method.
func (req *Request) Method() string {
	return req.method
}

// Path returns the requested path.
func (req *Request) Path() string {
	return req.path
}

// Body returns the raw request body as supplied by the caller.
func (req *Request) Body() []byte {
	return req.body
}

// Param returns the bound value for the named path variable,
// or "" if the matched pattern has no such variable.
func (req *Request) Param(name string) string {
	for _, p := range req.params {
		if p.Key == name {
			return p.Value
		}
	}

	return ""
}

// Params returns all bound path variables in pattern-declaration order.
func (req *Request) Params() []rtr.Parameter {
	return req.params
}
