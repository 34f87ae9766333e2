package patrin

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/ljpx/problem"

	"github.com/patrin-io/patrin/consts"
	"github.com/patrin-io/patrin/core/rtr"
	"github.com/patrin-io/patrin/extract"
)

// problemResponse maps a router or extractor error onto a status code and an
// RFC 7807 problem-details body. The taxonomy is fixed:
//
//	rtr.ErrNotFound              -> 404
//	rtr.MethodNotAllowedError    -> 405 (with Allow header)
//	extract.TypeMismatchError    -> 400
//	extract.ArityMismatchError   -> 400
//	anything else                -> 500
func (app *App) problemResponse(req *Request, err error) Response {
	prefix := app.config.ProblemTypePrefix

	var notAllowed *rtr.MethodNotAllowedError
	var typeMismatch *extract.TypeMismatchError
	var arityMismatch *extract.ArityMismatchError

	switch {
	case errors.Is(err, rtr.ErrNotFound):
		return problemJSON(consts.StatusNotFound, &problem.Details{
			Type:   fmt.Sprintf("%v/http/not-found", prefix),
			Title:  "Not Found",
			Detail: fmt.Sprintf("The path '%v' was not found.", req.path),
			Specifics: map[string]interface{}{
				"path": req.path,
			},
		})

	case errors.As(err, &notAllowed):
		res := problemJSON(consts.StatusMethodNotAllowed, &problem.Details{
			Type:   fmt.Sprintf("%v/http/method-not-allowed", prefix),
			Title:  "Method Not Allowed",
			Detail: fmt.Sprintf("The path '%v' does not allow use of the '%v' method.", req.path, req.method),
			Specifics: map[string]interface{}{
				"methodUsed":     req.method,
				"allowedMethods": notAllowed.Allowed,
			},
		})
		res.Headers = append(res.Headers, Header{consts.HeaderAllow, strings.Join(notAllowed.Allowed, ", ")})
		return res

	case errors.As(err, &typeMismatch):
		return problemJSON(consts.StatusBadRequest, &problem.Details{
			Type:   fmt.Sprintf("%v/extract/type-mismatch", prefix),
			Title:  "Type Mismatch",
			Detail: fmt.Sprintf("The path variable '%v' could not be parsed as %v.", typeMismatch.Name, typeMismatch.Want),
			Specifics: map[string]interface{}{
				"parameter": typeMismatch.Name,
				"value":     typeMismatch.Raw,
				"wantType":  typeMismatch.Want,
			},
		})

	case errors.As(err, &arityMismatch):
		return problemJSON(consts.StatusBadRequest, &problem.Details{
			Type:   fmt.Sprintf("%v/extract/arity-mismatch", prefix),
			Title:  "Arity Mismatch",
			Detail: "The handler's declared argument count does not match the matched pattern.",
			Specifics: map[string]interface{}{
				"declaredArity":  arityMismatch.Want,
				"boundVariables": arityMismatch.Got,
			},
		})

	default:
		details := &problem.Details{
			Type:   fmt.Sprintf("%v/http/internal-server-error", prefix),
			Title:  "Internal Server Error",
			Detail: "An internal error prevented the request from completing.",
		}
		if app.config.Debug {
			details.AttachError(err)
		}
		return problemJSON(consts.StatusInternalServerError, details)
	}
}

func problemJSON(status int, details *problem.Details) Response {
	raw, err := json.Marshal(details)
	if err != nil {
		raw = rawSerializationProblem(err)
		status = consts.StatusInternalServerError
	}

	return Response{
		Status:  status,
		Headers: []Header{{consts.HeaderContentType, consts.ContentTypeJSON}},
		Body:    raw,
	}
}

// rawSerializationProblem is the fallback body for when the problem details
// themselves fail to serialize. Hand-built so it cannot fail in turn.
func rawSerializationProblem(err error) []byte {
	raw := fmt.Sprintf(
		`{"type":"/http/internal-server-error","title":"Internal Server Error","detail":"Serialization of the response model failed.","error":%q}`,
		err.Error(),
	)
	return []byte(raw)
}
