// Package gqerrors defines error types that carry two renderings of the same
// failure: a friendly message suitable for showing at the console and a
// technical one for logs and wrapping.
package gqerrors

import (
	"errors"
	"fmt"
)

// authorError is a content-authoring defect found while loading or
// validating world data. It keeps the friendly phrasing separate from the
// technical detail so the CLI can show the former without losing the latter.
type authorError struct {
	msg   string
	human string
	wrap  error
}

func (e *authorError) Error() string {
	return e.msg
}

// HumanMessage is the message suitable for direct display.
func (e *authorError) HumanMessage() string {
	return e.human
}

// Unwrap gives the wrapped error, if any.
func (e *authorError) Unwrap() error {
	return e.wrap
}

// Author returns a new content-authoring error with both a display message
// and a technical description. If technical is empty one is generated.
func Author(human, technical string) error {
	if technical == "" {
		technical = fmt.Sprintf("got AuthorError(%q)", human)
	}
	return &authorError{msg: technical, human: human}
}

// Authorf returns a new content-authoring error from a format string; the
// formatted message serves as the display message.
func Authorf(format string, a ...interface{}) error {
	return Author(fmt.Sprintf(format, a...), "")
}

// WrapAuthorf is Authorf but additionally wraps err for errors.Is/As.
func WrapAuthorf(err error, format string, a ...interface{}) error {
	human := fmt.Sprintf(format, a...)
	return &authorError{
		msg:   fmt.Sprintf("%s: %v", human, err),
		human: human,
		wrap:  err,
	}
}

// HumanMessage gets the display message for the given error: the friendly
// rendering when err carries one, err.Error() otherwise.
func HumanMessage(err error) string {
	var ae *authorError
	if errors.As(err, &ae) {
		return ae.HumanMessage()
	}
	return err.Error()
}
