// Package model builds typed motion scene models from parsed element trees.
package model

import (
	"github.com/foomo/motionmodel/element"
)

// Model is implemented by every record that can be built from a section of
// a motion scene
type Model interface {
	Kind() string
}

// Constructor builds a model from the node found under its section name,
// path is used as error context
type Constructor func(path string, node element.Element) (Model, error)

var constructors = map[string]Constructor{
	KindHeader: func(path string, node element.Element) (Model, error) {
		h, err := parseHeader(path, node)
		if err != nil {
			return nil, err
		}
		return h, nil
	},
}

// Kinds of models this package can build
func Kinds() []string {
	return []string{KindHeader}
}

// Document is a parsed motion scene
type Document struct {
	// Models in document order, a section given twice is kept once
	// at the position of its last occurrence
	Models []Model
	// Skipped section names this package has no model for
	Skipped []string
}

// ParseDocument builds all known models from the sections of root
func ParseDocument(root element.Element) (*Document, error) {
	obj, ok := root.(*element.Object)
	if !ok || obj == nil {
		return nil, newUnexpectedType("", element.KindObject, root)
	}
	doc := &Document{
		Models:  []Model{},
		Skipped: []string{},
	}
	for _, section := range obj.Keys {
		construct, known := constructors[section.Name]
		if !known {
			doc.Skipped = append(doc.Skipped, section.Name)
			continue
		}
		m, errConstruct := construct(section.Name, section.Value)
		if errConstruct != nil {
			return nil, errConstruct
		}
		doc.remove(m.Kind())
		doc.Models = append(doc.Models, m)
	}
	return doc, nil
}

func (d *Document) remove(kind string) {
	models := d.Models[:0]
	for _, m := range d.Models {
		if m.Kind() != kind {
			models = append(models, m)
		}
	}
	d.Models = models
}

// Get a model by kind
func (d *Document) Get(kind string) Model {
	for _, m := range d.Models {
		if m.Kind() == kind {
			return m
		}
	}
	return nil
}

// Header of the document or nil
func (d *Document) Header() *Header {
	h, _ := d.Get(KindHeader).(*Header)
	return h
}
