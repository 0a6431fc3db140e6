package model

import (
	"fmt"

	"github.com/foomo/motionmodel/element"
)

type ErrorKind string

const (
	// ErrorKindUnexpectedType a model was built from something else than an object
	ErrorKindUnexpectedType ErrorKind = "unexpected-type"
	// ErrorKindTypeMismatch a recognized key holds a value of the wrong kind
	ErrorKindTypeMismatch ErrorKind = "type-mismatch"
)

var (
	ErrUnexpectedType = &ParseError{Kind: ErrorKindUnexpectedType}
	ErrTypeMismatch   = &ParseError{Kind: ErrorKindTypeMismatch}
)

// ParseError tells where and why a model could not be built
type ParseError struct {
	Kind ErrorKind
	// Path of the offending node, i.e. Header.name
	Path     string
	Key      string
	Expected element.Kind
	Found    element.Kind
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case ErrorKindTypeMismatch:
		return fmt.Sprint(e.Kind, " at ", e.Path, ": key \"", e.Key, "\" expected ", e.Expected, " found ", e.Found)
	default:
		return fmt.Sprint(e.Kind, " at ", e.Path, ": expected ", e.Expected, " found ", e.Found)
	}
}

// Is matches any ParseError of the same kind, so errors.Is(err, ErrTypeMismatch) works
func (e *ParseError) Is(target error) bool {
	t, ok := target.(*ParseError)
	return ok && t.Kind == e.Kind
}

func newUnexpectedType(path string, expected element.Kind, found element.Element) *ParseError {
	return &ParseError{
		Kind:     ErrorKindUnexpectedType,
		Path:     path,
		Expected: expected,
		Found:    element.KindOf(found),
	}
}

func newTypeMismatch(path, key string, expected element.Kind, found element.Element) *ParseError {
	return &ParseError{
		Kind:     ErrorKindTypeMismatch,
		Path:     join(path, key),
		Key:      key,
		Expected: expected,
		Found:    element.KindOf(found),
	}
}

func join(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}
