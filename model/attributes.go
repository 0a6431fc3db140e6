package model

import (
	"github.com/foomo/motionmodel/element"
)

// attribute maps one recognized key onto a field of a model
type attribute struct {
	kind element.Kind
	set  func(value element.Element)
}

type attributes map[string]attribute

func stringAttribute(dst **string) attribute {
	return attribute{
		kind: element.KindString,
		set: func(value element.Element) {
			s := value.Content()
			*dst = &s
		},
	}
}

// extract walks the keys of node from left to right. Unknown keys are
// skipped without looking at their values, a recognized key overwrites
// whatever an earlier key with the same name set. The first value of a
// wrong kind ends the walk.
func extract(path string, node element.Element, attrs attributes) error {
	obj, ok := node.(*element.Object)
	if !ok || obj == nil {
		return newUnexpectedType(path, element.KindObject, node)
	}
	for _, key := range obj.Keys {
		attr, known := attrs[key.Name]
		if !known {
			continue
		}
		if element.KindOf(key.Value) != attr.kind {
			return newTypeMismatch(path, key.Name, attr.kind, key.Value)
		}
		attr.set(key.Value)
	}
	return nil
}
