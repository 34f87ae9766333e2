package patrin

import (
	"encoding/json"

	"github.com/patrin-io/patrin/consts"
)

// Header is a key-value pair attached to a response.
type Header struct {
	Key   string
	Value string
}

// Response is the opaque value a handler returns. The dispatch layer passes
// it back to the caller unmodified apart from the Request-ID header.
type Response struct {
	Status  int
	Headers []Header
	Body    []byte
}

// Header returns the first header value for the given key, or "".
func (res Response) Header(key string) string {
	for _, h := range res.Headers {
		if h.Key == key {
			return h.Value
		}
	}

	return ""
}

// Text builds a plain-text response.
func Text(status int, body string) Response {
	return Response{
		Status:  status,
		Headers: []Header{{consts.HeaderContentType, consts.ContentTypeText}},
		Body:    []byte(body),
	}
}

// HTML builds an HTML response.
func HTML(status int, body string) Response {
	return Response{
		Status:  status,
		Headers: []Header{{consts.HeaderContentType, consts.ContentTypeHTML}},
		Body:    []byte(body),
	}
}

// JSON builds a JSON response from the given model. If the model cannot be
// serialized the response degrades to a 500 with a problem-details body.
func JSON(status int, model any) Response {
	raw, err := json.Marshal(model)
	if err != nil {
		return Response{
			Status:  consts.StatusInternalServerError,
			Headers: []Header{{consts.HeaderContentType, consts.ContentTypeJSON}},
			Body:    rawSerializationProblem(err),
		}
	}

	return Response{
		Status:  status,
		Headers: []Header{{consts.HeaderContentType, consts.ContentTypeJSON}},
		Body:    raw,
	}
}
