package element

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"

	"github.com/buger/jsonparser"
	"github.com/kaptinlin/jsonrepair"
)

var (
	ErrEmptyDocument = errors.New("empty document")
	ErrTrailingData  = errors.New("trailing data")
)

var jsonNumber = regexp.MustCompile(`^-?(0|[1-9][0-9]*)(\.[0-9]+)?([eE][+-]?[0-9]+)?$`)

// ParseJSON parses strict json into a tree, keeping the key order of objects
func ParseJSON(data []byte) (Element, error) {
	value, dataType, end, errGet := jsonparser.Get(data)
	if errGet != nil {
		if dataType == jsonparser.NotExist {
			return nil, ErrEmptyDocument
		}
		return nil, fmt.Errorf("invalid json: %w", errGet)
	}
	if len(bytes.TrimSpace(data[end:])) > 0 {
		return nil, fmt.Errorf("invalid json: %w", ErrTrailingData)
	}
	return fromJSON(value, dataType, 0)
}

// ParseLenient accepts json5 style input like unquoted keys, single quotes,
// comments and trailing commas by repairing it before parsing
func ParseLenient(data []byte) (Element, error) {
	repaired, errRepair := jsonrepair.JSONRepair(string(data))
	if errRepair != nil {
		return nil, fmt.Errorf("could not repair json: %w", errRepair)
	}
	return ParseJSON([]byte(repaired))
}

func fromJSON(value []byte, dataType jsonparser.ValueType, depth int) (Element, error) {
	if depth > MaxDepth {
		return nil, ErrTooDeep
	}
	switch dataType {
	case jsonparser.Object:
		obj := &Object{Keys: []*Key{}}
		errEach := jsonparser.ObjectEach(value, func(key []byte, v []byte, vType jsonparser.ValueType, offset int) error {
			el, errEl := fromJSON(v, vType, depth+1)
			if errEl != nil {
				return fmt.Errorf("%s: %w", string(key), errEl)
			}
			obj.Add(string(key), el)
			return nil
		})
		if errEach != nil {
			return nil, errEach
		}
		return obj, nil
	case jsonparser.Array:
		arr := Array{}
		var errItem error
		_, errEach := jsonparser.ArrayEach(value, func(v []byte, vType jsonparser.ValueType, offset int, err error) {
			if errItem != nil {
				return
			}
			if err != nil {
				errItem = err
				return
			}
			el, errEl := fromJSON(v, vType, depth+1)
			if errEl != nil {
				errItem = fmt.Errorf("[%d]: %w", len(arr), errEl)
				return
			}
			arr = append(arr, el)
		})
		if errItem != nil {
			return nil, errItem
		}
		if errEach != nil {
			return nil, errEach
		}
		return arr, nil
	case jsonparser.String:
		s, errString := jsonparser.ParseString(value)
		if errString != nil {
			return nil, errString
		}
		return String(s), nil
	case jsonparser.Number:
		// the literal is kept as is, numbers beyond float64 are still valid json
		if !jsonNumber.Match(value) {
			return nil, fmt.Errorf("invalid number %q", string(value))
		}
		return Number(value), nil
	case jsonparser.Boolean:
		b, errBool := jsonparser.ParseBoolean(value)
		if errBool != nil {
			return nil, errBool
		}
		return Bool(b), nil
	case jsonparser.Null:
		if string(value) != "null" {
			return nil, fmt.Errorf("invalid literal %q", string(value))
		}
		return Null{}, nil
	default:
		return nil, fmt.Errorf("unexpected json value %q", string(value))
	}
}
