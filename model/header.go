package model

import (
	"github.com/foomo/motionmodel/element"
)

const KindHeader = "Header"

// Header of a motion scene
type Header struct {
	// Name is nil when the header has no name key
	Name *string
}

// ParseHeader reads a header from an object node
func ParseHeader(node element.Element) (*Header, error) {
	return parseHeader(KindHeader, node)
}

func parseHeader(path string, node element.Element) (*Header, error) {
	h := &Header{}
	errExtract := extract(path, node, attributes{
		"name": stringAttribute(&h.Name),
	})
	if errExtract != nil {
		return nil, errExtract
	}
	return h, nil
}

func (h *Header) Kind() string {
	return KindHeader
}

// GetName returns an empty string for headers without a name
func (h *Header) GetName() string {
	if h == nil || h.Name == nil {
		return ""
	}
	return *h.Name
}
