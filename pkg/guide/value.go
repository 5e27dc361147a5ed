package guide

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ValueKind tags the shape of a loosely-typed answer or condition value.
type ValueKind int

const (
	ValueNull ValueKind = iota
	ValueBool
	ValueNumber
	ValueString
	ValueList
)

// Value is a tagged variant for the heterogeneous values that flow through
// a form submission: text, numbers, booleans, lists of selected options, or
// nothing at all. The zero value is null.
type Value struct {
	Kind   ValueKind
	Bool   bool
	Number float64
	Text   string
	List   []Value
}

func Null() Value { return Value{} }

func BoolValue(b bool) Value { return Value{Kind: ValueBool, Bool: b} }

func NumberValue(n float64) Value { return Value{Kind: ValueNumber, Number: n} }

func StringValue(s string) Value { return Value{Kind: ValueString, Text: s} }

func ListValue(items ...Value) Value {
	return Value{Kind: ValueList, List: items}
}

// StringList builds a list value from plain strings, the common shape for
// multi-select answers.
func StringList(items ...string) Value {
	list := make([]Value, len(items))
	for i, s := range items {
		list[i] = StringValue(s)
	}
	return Value{Kind: ValueList, List: list}
}

// IsNull reports whether the value is absent. Missing data means "rule does
// not apply", never an error.
func (v Value) IsNull() bool {
	return v.Kind == ValueNull
}

// Pair extracts a [low, high] bound pair from a two-element list value, as
// required by the between operator. ok is false for any other shape.
func (v Value) Pair() (low, high Value, ok bool) {
	if v.Kind != ValueList || len(v.List) != 2 {
		return Value{}, Value{}, false
	}
	return v.List[0], v.List[1], true
}

// MarshalJSON emits the value in its native JSON shape.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.native())
}

func (v Value) native() interface{} {
	switch v.Kind {
	case ValueBool:
		return v.Bool
	case ValueNumber:
		return v.Number
	case ValueString:
		return v.Text
	case ValueList:
		items := make([]interface{}, len(v.List))
		for i, item := range v.List {
			items[i] = item.native()
		}
		return items
	default:
		return nil
	}
}

// UnmarshalJSON accepts any JSON scalar or array. Objects are rejected:
// answers and condition values are never structured records.
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := valueFromNative(raw)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

func valueFromNative(raw interface{}) (Value, error) {
	switch t := raw.(type) {
	case nil:
		return Null(), nil
	case bool:
		return BoolValue(t), nil
	case float64:
		return NumberValue(t), nil
	case int:
		return NumberValue(float64(t)), nil
	case int64:
		return NumberValue(float64(t)), nil
	case uint64:
		return NumberValue(float64(t)), nil
	case string:
		return StringValue(t), nil
	case []interface{}:
		items := make([]Value, len(t))
		for i, item := range t {
			parsed, err := valueFromNative(item)
			if err != nil {
				return Value{}, err
			}
			items[i] = parsed
		}
		return Value{Kind: ValueList, List: items}, nil
	default:
		return Value{}, fmt.Errorf("unsupported value shape %T", raw)
	}
}

// MarshalYAML mirrors the JSON representation for YAML-authored guides.
func (v Value) MarshalYAML() (interface{}, error) {
	return v.native(), nil
}

// UnmarshalYAML decodes YAML scalars and sequences into the tagged variant.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	var raw interface{}
	if err := node.Decode(&raw); err != nil {
		return err
	}
	parsed, err := valueFromNative(raw)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
