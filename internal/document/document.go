// Package document provides an order-preserving representation of parsed JSON configuration documents
package document

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Kind identifies the JSON kind of a Value
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// String returns the JSON name of the kind
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Member is a single key/value pair of a JSON object
type Member struct {
	Key   string
	Value Value
}

// Value is a closed tagged variant over the six JSON kinds. Object members
// keep the encounter order of the source document, and numbers keep their
// raw source text so they can be re-rendered verbatim.
type Value struct {
	kind    Kind
	boolVal bool
	numVal  json.Number
	strVal  string
	arrVal  []Value
	objVal  []Member
}

// Constructors

func Null() Value                { return Value{kind: KindNull} }
func Bool(b bool) Value          { return Value{kind: KindBool, boolVal: b} }
func Number(n json.Number) Value { return Value{kind: KindNumber, numVal: n} }
func String(s string) Value      { return Value{kind: KindString, strVal: s} }
func Array(items ...Value) Value { return Value{kind: KindArray, arrVal: items} }
func Object(ms ...Member) Value  { return Value{kind: KindObject, objVal: ms} }

// Kind returns the JSON kind of the value
func (v Value) Kind() Kind { return v.kind }

// IsObject reports whether the value is a JSON object
func (v Value) IsObject() bool { return v.kind == KindObject }

// Members returns the object members in encounter order. It returns nil for
// non-object values.
func (v Value) Members() []Member {
	if v.kind != KindObject {
		return nil
	}
	return v.objVal
}

// Lookup returns the member value for key and whether it exists. Only
// meaningful for object values.
func (v Value) Lookup(key string) (Value, bool) {
	for _, m := range v.objVal {
		if m.Key == key {
			return m.Value, true
		}
	}
	return Value{}, false
}

// Bool returns the boolean payload
func (v Value) Bool() bool { return v.boolVal }

// Number returns the raw number payload
func (v Value) Number() json.Number { return v.numVal }

// Str returns the string payload
func (v Value) Str() string { return v.strVal }

// Items returns the array items. It returns nil for non-array values.
func (v Value) Items() []Value {
	if v.kind != KindArray {
		return nil
	}
	return v.arrVal
}

// Equal reports JSON semantic equality of two values. Objects are equal iff
// they have the same key set and recursively equal values, regardless of
// member order. Arrays are equal iff same length and element-wise equal.
// Numbers are compared numerically, so 1 and 1.0 are equal.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}

	switch a.kind {
	case KindNull:
		return true
	case KindBool:
		return a.boolVal == b.boolVal
	case KindNumber:
		return numberEqual(a.numVal, b.numVal)
	case KindString:
		return a.strVal == b.strVal
	case KindArray:
		if len(a.arrVal) != len(b.arrVal) {
			return false
		}
		for i := range a.arrVal {
			if !Equal(a.arrVal[i], b.arrVal[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(a.objVal) != len(b.objVal) {
			return false
		}
		for _, m := range a.objVal {
			other, ok := b.Lookup(m.Key)
			if !ok || !Equal(m.Value, other) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// numberEqual compares two JSON numbers by numeric value. Numbers that do
// not fit a float64 fall back to raw-text comparison.
func numberEqual(a, b json.Number) bool {
	if a.String() == b.String() {
		return true
	}
	af, aerr := a.Float64()
	bf, berr := b.Float64()
	if aerr != nil || berr != nil {
		return false
	}
	return af == bf
}

// JSON renders the value as compact JSON, preserving object member order
// and raw number text.
func (v Value) JSON() string {
	var sb strings.Builder
	v.encode(&sb)
	return sb.String()
}

func (v Value) encode(sb *strings.Builder) {
	switch v.kind {
	case KindNull:
		sb.WriteString("null")
	case KindBool:
		sb.WriteString(strconv.FormatBool(v.boolVal))
	case KindNumber:
		sb.WriteString(v.numVal.String())
	case KindString:
		encoded, err := json.Marshal(v.strVal)
		if err != nil {
			// Marshal of a string cannot fail; keep the branch total anyway.
			sb.WriteString(`""`)
			return
		}
		sb.Write(encoded)
	case KindArray:
		sb.WriteByte('[')
		for i, item := range v.arrVal {
			if i > 0 {
				sb.WriteByte(',')
			}
			item.encode(sb)
		}
		sb.WriteByte(']')
	case KindObject:
		sb.WriteByte('{')
		for i, m := range v.objVal {
			if i > 0 {
				sb.WriteByte(',')
			}
			key, _ := json.Marshal(m.Key)
			sb.Write(key)
			sb.WriteByte(':')
			m.Value.encode(sb)
		}
		sb.WriteByte('}')
	}
}

// MarshalJSON makes Value usable directly with encoding/json encoders
func (v Value) MarshalJSON() ([]byte, error) {
	return []byte(v.JSON()), nil
}
