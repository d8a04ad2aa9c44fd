package multiselect

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrMissingDisplayField is returned when a keyed option is built from a
// record that has no value under its display field.
var ErrMissingDisplayField = errors.New("record has no display field")

// Kind tells primitive options apart from keyed ones.
type Kind int

const (
	KindPrimitive Kind = iota
	KindKeyed
)

// Option is one selectable entry. It is either a primitive string or a
// keyed record whose label is read from a display field.
type Option struct {
	kind   Kind
	text   string
	field  string
	record map[string]any
}

// Primitive wraps a plain string value.
func Primitive(text string) Option {
	return Option{kind: KindPrimitive, text: text}
}

// Strings converts values into primitive options.
func Strings(values ...string) []Option {
	out := make([]Option, 0, len(values))
	for _, v := range values {
		out = append(out, Primitive(v))
	}
	return out
}

// NewKeyed builds a keyed option. The record must hold a value under field.
func NewKeyed(field string, record map[string]any) (Option, error) {
	if field == "" {
		return Option{}, fmt.Errorf("%w: empty field name", ErrMissingDisplayField)
	}
	if _, ok := record[field]; !ok {
		return Option{}, fmt.Errorf("%w: %q", ErrMissingDisplayField, field)
	}
	return Option{kind: KindKeyed, field: field, record: record}, nil
}

// MustKeyed is like NewKeyed but panics on a malformed record.
func MustKeyed(field string, record map[string]any) Option {
	o, err := NewKeyed(field, record)
	if err != nil {
		panic(err)
	}
	return o
}

// Records converts records into keyed options sharing one display field.
func Records(field string, records ...map[string]any) ([]Option, error) {
	out := make([]Option, 0, len(records))
	for i, r := range records {
		o, err := NewKeyed(field, r)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		out = append(out, o)
	}
	return out, nil
}

// Kind reports the option's variant.
func (o Option) Kind() Kind {
	return o.kind
}

// DisplayField is the record key a keyed option reads its label from.
// Primitive options return "".
func (o Option) DisplayField() string {
	return o.field
}

// Value returns the string for primitive options and the record for keyed
// ones.
func (o Option) Value() any {
	if o.kind == KindKeyed {
		return o.record
	}
	return o.text
}

// Label is the display text. A keyed record that lost its display field
// after construction panics here.
func (o Option) Label() string {
	if o.kind == KindPrimitive {
		return o.text
	}
	v, ok := o.record[o.field]
	if !ok {
		panic(fmt.Sprintf("multiselect: option record has no display field %q", o.field))
	}
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// Equal compares primitives by value and keyed options by the raw value of
// their display fields, so 1 and "1" differ. Options of different kinds are
// never equal.
func (o Option) Equal(other Option) bool {
	if o.kind != other.kind {
		return false
	}
	if o.kind == KindPrimitive {
		return o.text == other.text
	}
	return sameValue(o.record[o.field], other.record[other.field])
}

// sameValue is == for comparable values and DeepEqual for the rest, so a
// map or slice under the display field does not panic.
func sameValue(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}
	if ta.Comparable() {
		return a == b
	}
	return reflect.DeepEqual(a, b)
}

func (o Option) String() string {
	return o.Label()
}

// Labels returns the display text of each option, in order.
func Labels(options []Option) []string {
	out := make([]string, len(options))
	for i, o := range options {
		out[i] = o.Label()
	}
	return out
}

func indexOf(options []Option, target Option) int {
	for i, o := range options {
		if o.Equal(target) {
			return i
		}
	}
	return -1
}
