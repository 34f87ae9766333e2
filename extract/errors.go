package extract

import "strconv"

// TypeMismatchError reports a bound value that does not parse as the type the
// handler declared for its position.
type TypeMismatchError struct {
	Name  string // variable name from the pattern
	Raw   string // the bound substring
	Want  string // target type name
	cause error
}

func (e *TypeMismatchError) Error() string {
	return "path variable '" + e.Name + "': cannot parse " + strconv.Quote(e.Raw) + " as " + e.Want
}

func (e *TypeMismatchError) Unwrap() error {
	return e.cause
}

// ArityMismatchError reports a handler whose declared argument count differs
// from the number of variable segments in the matched pattern.
type ArityMismatchError struct {
	Want int // arguments the handler declares
	Got  int // variables the pattern bound
}

func (e *ArityMismatchError) Error() string {
	return "handler declares " + strconv.Itoa(e.Want) + " typed argument(s) but the pattern bound " +
		strconv.Itoa(e.Got) + " variable(s)"
}
