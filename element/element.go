// Package element holds the generic tree a motion document is parsed into
// before any model is built from it.
package element

import (
	"errors"
	"strconv"
	"strings"
)

// MaxDepth is the deepest nesting the parsers accept
const MaxDepth = 64

var ErrTooDeep = errors.New("nesting too deep")

type Kind string

const (
	KindObject Kind = "object"
	KindArray  Kind = "array"
	KindString Kind = "string"
	KindNumber Kind = "number"
	KindBool   Kind = "bool"
	KindNull   Kind = "null"
)

// Element is a node of a parsed document. Trees are built once by a parser
// and must not be modified afterwards.
type Element interface {
	Kind() Kind
	// Content is the text of a scalar, or a compact rendering for
	// objects and arrays.
	Content() string
}

// Key is a named value inside an Object
type Key struct {
	Name  string
	Value Element
}

// Object keeps its keys in document order, duplicates included
type Object struct {
	Keys []*Key
}

type Array []Element

type String string

// Number keeps the literal as it was written
type Number string

type Bool bool

type Null struct{}

func (*Object) Kind() Kind { return KindObject }
func (Array) Kind() Kind   { return KindArray }
func (String) Kind() Kind  { return KindString }
func (Number) Kind() Kind  { return KindNumber }
func (Bool) Kind() Kind    { return KindBool }
func (Null) Kind() Kind    { return KindNull }

func (s String) Content() string { return string(s) }
func (n Number) Content() string { return string(n) }
func (b Bool) Content() string   { return strconv.FormatBool(bool(b)) }
func (Null) Content() string     { return "null" }

func (a Array) Content() string {
	parts := make([]string, len(a))
	for i, el := range a {
		parts[i] = quote(el)
	}
	return "[" + strings.Join(parts, ",") + "]"
}

func (o *Object) Content() string {
	parts := make([]string, len(o.Keys))
	for i, k := range o.Keys {
		parts[i] = strconv.Quote(k.Name) + ":" + quote(k.Value)
	}
	return "{" + strings.Join(parts, ",") + "}"
}

func quote(el Element) string {
	if s, ok := el.(String); ok {
		return strconv.Quote(string(s))
	}
	return el.Content()
}

// Float parses the literal
func (n Number) Float() (float64, error) {
	return strconv.ParseFloat(string(n), 64)
}

// Len number of keys
func (o *Object) Len() int {
	return len(o.Keys)
}

// Add appends a key, earlier keys with the same name are kept
func (o *Object) Add(name string, value Element) *Object {
	o.Keys = append(o.Keys, &Key{Name: name, Value: value})
	return o
}

// Get returns the value of the last key with the given name
func (o *Object) Get(name string) (value Element, ok bool) {
	for i := len(o.Keys) - 1; i >= 0; i-- {
		if o.Keys[i].Name == name {
			return o.Keys[i].Value, true
		}
	}
	return nil, false
}

// Names of all keys in document order
func (o *Object) Names() []string {
	names := make([]string, len(o.Keys))
	for i, k := range o.Keys {
		names[i] = k.Name
	}
	return names
}

// KindOf is nil safe
func KindOf(el Element) Kind {
	if el == nil {
		return KindNull
	}
	return el.Kind()
}

// IsScalar is true for strings, numbers, booleans and null
func IsScalar(el Element) bool {
	switch el.(type) {
	case String, Number, Bool, Null:
		return true
	}
	return false
}
