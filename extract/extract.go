// Package extract converts the raw string values bound by the router into
// typed handler arguments.
//
// Conversion uses each type's canonical textual parse rule (strconv). A value
// that does not parse yields a *TypeMismatchError; a handler whose declared
// arity differs from the number of variables in the matched pattern yields an
// *ArityMismatchError. Both are recoverable: callers map them to a
// 400-equivalent signal.
package extract

import (
	"strconv"
)

// Scalar lists the types a path variable can bind to.
// All conversions follow strconv parse rules; integers are base 10.
type Scalar interface {
	string | bool |
		int | int32 | int64 |
		uint | uint32 | uint64 |
		float32 | float64
}

// Value parses raw into the requested scalar type. The name is the variable
// name from the matched pattern and is carried into the error for reporting.
func Value[T Scalar](name string, raw string) (T, error) {
	var v T
	var err error

	switch p := any(&v).(type) {
	case *string:
		*p = raw
	case *bool:
		*p, err = strconv.ParseBool(raw)
	case *int:
		var n int64
		n, err = strconv.ParseInt(raw, 10, 0)
		*p = int(n)
	case *int32:
		var n int64
		n, err = strconv.ParseInt(raw, 10, 32)
		*p = int32(n)
	case *int64:
		*p, err = strconv.ParseInt(raw, 10, 64)
	case *uint:
		var n uint64
		n, err = strconv.ParseUint(raw, 10, 0)
		*p = uint(n)
	case *uint32:
		var n uint64
		n, err = strconv.ParseUint(raw, 10, 32)
		*p = uint32(n)
	case *uint64:
		*p, err = strconv.ParseUint(raw, 10, 64)
	case *float32:
		var f float64
		f, err = strconv.ParseFloat(raw, 32)
		*p = float32(f)
	case *float64:
		*p, err = strconv.ParseFloat(raw, 64)
	}

	if err != nil {
		return v, &TypeMismatchError{Name: name, Raw: raw, Want: typeName(v), cause: err}
	}
	return v, nil
}

// CheckArity verifies that a handler declaring want typed arguments can be
// bound against got matched variables.
func CheckArity(want, got int) error {
	if want != got {
		return &ArityMismatchError{Want: want, Got: got}
	}
	return nil
}

func typeName(v any) string {
	switch v.(type) {
	case string:
		return "string"
	case bool:
		return "bool"
	case int:
		return "int"
	case int32:
		return "int32"
	case int64:
		return "int64"
	case uint:
		return "uint"
	case uint32:
		return "uint32"
	case uint64:
		return "uint64"
	case float32:
		return "float32"
	case float64:
		return "float64"
	default:
		return "unknown"
	}
}
