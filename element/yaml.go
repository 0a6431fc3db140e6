package element

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// yamlNodeBudget is added to the input length to get the number of
// elements a yaml document may expand to. Aliases are expanded on every
// use, the budget stops documents that grow exponentially through them.
const yamlNodeBudget = 10000

var ErrTooManyNodes = errors.New("yaml document expands to too many nodes")

type yamlDecoder struct {
	nodes    int
	maxNodes int
}

// ParseYAML parses the first yaml document, mappings keep their key order
func ParseYAML(data []byte) (Element, error) {
	doc := &yaml.Node{}
	errUnmarshal := yaml.Unmarshal(data, doc)
	if errUnmarshal != nil {
		return nil, fmt.Errorf("invalid yaml: %w", errUnmarshal)
	}
	if doc.Kind == 0 || (doc.Kind == yaml.DocumentNode && len(doc.Content) == 0) {
		return nil, ErrEmptyDocument
	}
	d := &yamlDecoder{maxNodes: len(data) + yamlNodeBudget}
	return d.decode(doc, 0)
}

func (d *yamlDecoder) decode(n *yaml.Node, depth int) (Element, error) {
	if depth > MaxDepth {
		return nil, ErrTooDeep
	}
	d.nodes++
	if d.nodes > d.maxNodes {
		return nil, ErrTooManyNodes
	}
	switch n.Kind {
	case yaml.DocumentNode:
		return d.decode(n.Content[0], depth)
	case yaml.AliasNode:
		return d.decode(n.Alias, depth)
	case yaml.MappingNode:
		obj := &Object{Keys: []*Key{}}
		for i := 0; i+1 < len(n.Content); i += 2 {
			keyNode, valueNode := n.Content[i], n.Content[i+1]
			if keyNode.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: mapping keys must be scalars", keyNode.Line)
			}
			value, errValue := d.decode(valueNode, depth+1)
			if errValue != nil {
				return nil, fmt.Errorf("%s: %w", keyNode.Value, errValue)
			}
			obj.Add(keyNode.Value, value)
		}
		return obj, nil
	case yaml.SequenceNode:
		arr := make(Array, 0, len(n.Content))
		for i, item := range n.Content {
			el, errEl := d.decode(item, depth+1)
			if errEl != nil {
				return nil, fmt.Errorf("[%d]: %w", i, errEl)
			}
			arr = append(arr, el)
		}
		return arr, nil
	case yaml.ScalarNode:
		switch n.ShortTag() {
		case "!!null":
			return Null{}, nil
		case "!!bool":
			var b bool
			if errDecode := n.Decode(&b); errDecode != nil {
				return nil, errDecode
			}
			return Bool(b), nil
		case "!!int", "!!float":
			return Number(n.Value), nil
		default:
			return String(n.Value), nil
		}
	}
	return nil, fmt.Errorf("line %d: unsupported yaml node", n.Line)
}
