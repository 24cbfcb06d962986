package record

import (
	"slices"
	"strconv"
)

// Kind identifies the dynamic type of a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindObject
	KindArray
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	default:
		return "unknown"
	}
}

// Value is a single JSON value held by a Record.
// The zero Value is null.
type Value struct {
	kind Kind
	text string // string contents, or the number literal
	b    bool
	obj  Record
	arr  []Value
}

// Null returns the null value.
func Null() Value { return Value{} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Number returns a number value for the given JSON literal.
func Number(literal string) Value { return Value{kind: KindNumber, text: literal} }

// String returns a string value.
func String(s string) Value { return Value{kind: KindString, text: s} }

// Object returns a nested mapping value.
func Object(r Record) Value { return Value{kind: KindObject, obj: r} }

// Array returns a sequence value.
func Array(values ...Value) Value {
	return Value{kind: KindArray, arr: slices.Clone(values)}
}

// Kind reports the dynamic type of v.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is JSON null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Str returns the string contents when v is a string.
func (v Value) Str() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.text, true
}

// Bool returns the boolean when v is true or false.
func (v Value) Bool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.b, true
}

// Literal returns the number literal exactly as it appeared in the input.
func (v Value) Literal() (string, bool) {
	if v.kind != KindNumber {
		return "", false
	}
	return v.text, true
}

// Float returns the number as a float64.
func (v Value) Float() (float64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	f, err := strconv.ParseFloat(v.text, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Int returns the number as an int64 when it is an integer literal in range.
func (v Value) Int() (int64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	n, err := strconv.ParseInt(v.text, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Object returns the nested mapping when v is an object.
func (v Value) Object() (Record, bool) {
	if v.kind != KindObject {
		return Record{}, false
	}
	return v.obj, true
}

// Array returns a copy of the elements when v is an array.
func (v Value) Array() ([]Value, bool) {
	if v.kind != KindArray {
		return nil, false
	}
	return slices.Clone(v.arr), true
}

// Text renders v for display: strings are returned bare, everything else as
// compact JSON.
func (v Value) Text() string {
	if v.kind == KindString {
		return v.text
	}
	return string(EncodeValue(v, false))
}
