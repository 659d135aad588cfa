package webrows

import (
	"encoding/json"
	"strings"
)

// ParamKind identifies the shape a positional parameter is coerced to.
type ParamKind int

// Parameter kinds.
const (
	ParamString ParamKind = iota
	ParamStringList
)

// ParamField describes one positional parameter: its name, shape, whether it
// must be present, and the value used when it is absent.
type ParamField struct {
	Name     string
	Kind     ParamKind
	Required bool

	// Default applies when the parameter is absent and not required.
	// For ParamStringList a string default is coerced like any other value.
	Default any
}

// ParamSchema maps a positional JSON array payload to named parameters.
// The element at position i binds to the i-th field; extra trailing elements
// are ignored.
type ParamSchema struct {
	fields []ParamField
}

// NewParamSchema creates a schema from an ordered field list.
func NewParamSchema(fields ...ParamField) *ParamSchema {
	return &ParamSchema{fields: fields}
}

// Params holds parsed parameter values keyed by field name. Values are
// string or []string according to the field's kind.
type Params map[string]any

// String returns the named string parameter, or "" if unset.
func (p Params) String(name string) string {
	s, _ := p[name].(string)
	return s
}

// StringList returns the named list parameter, or nil if unset.
func (p Params) StringList(name string) []string {
	l, _ := p[name].([]string)
	return l
}

// Parse decodes payload as a top-level JSON array and maps its elements
// positionally onto the schema. It returns EINVALID if the payload is not an
// array, a required field is absent, or a value cannot be coerced to its
// field's kind.
func (s *ParamSchema) Parse(payload []byte) (Params, error) {
	var elems []any
	if err := json.Unmarshal(payload, &elems); err != nil {
		return nil, Errorf(EINVALID, "input must be a JSON array")
	}

	params := make(Params, len(s.fields))
	for i, field := range s.fields {
		var value any
		if i < len(elems) {
			value = elems[i]
		} else if field.Required {
			return nil, Errorf(EINVALID, "missing required parameter %q", field.Name)
		} else if field.Default != nil {
			value = field.Default
		} else {
			continue
		}

		coerced, err := coerceParam(value, field)
		if err != nil {
			return nil, err
		}
		params[field.Name] = coerced
	}

	return params, nil
}

func coerceParam(value any, field ParamField) (any, error) {
	switch field.Kind {
	case ParamString:
		s, ok := value.(string)
		if !ok {
			return nil, Errorf(EINVALID, "parameter %q must be a string", field.Name)
		}
		return s, nil
	case ParamStringList:
		return coerceStringList(value, field.Name)
	}
	return nil, Errorf(EINVALID, "parameter %q has unknown kind", field.Name)
}

// coerceStringList accepts a comma-delimited string or a list of strings.
// A list containing nested lists is flattened one level.
func coerceStringList(value any, name string) ([]string, error) {
	switch v := value.(type) {
	case string:
		return strings.Split(v, ","), nil
	case []string:
		return v, nil
	case []any:
		var out []string
		for _, item := range v {
			switch it := item.(type) {
			case string:
				out = append(out, it)
			case []any:
				for _, nested := range it {
					s, ok := nested.(string)
					if !ok {
						return nil, Errorf(EINVALID, "parameter %q must be a list with only string values", name)
					}
					out = append(out, s)
				}
			default:
				return nil, Errorf(EINVALID, "parameter %q must be a list with only string values", name)
			}
		}
		return out, nil
	}
	return nil, Errorf(EINVALID, "parameter %q must be a string or a list of strings", name)
}
