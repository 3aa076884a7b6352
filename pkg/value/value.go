// Package value provides Value, the immutable primitive carried by static
// and function-call attributes.
//
// A Value is always textualizable: String renders it the way it appears in
// markup (booleans as "true"/"false", integers in base 10, floats in their
// shortest exact form). Non-finite floats use the JavaScript spellings NaN,
// Infinity and -Infinity, which the browser parses back to the same number.
package value

import (
	"fmt"
	"math"
	"strconv"
)

// Kind is the primitive type held by a Value.
type Kind uint8

const (
	KindString Kind = iota // Plain text
	KindBool               // true / false
	KindInt                // Signed integer
	KindFloat              // 64-bit float
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "String"
	case KindBool:
		return "Bool"
	case KindInt:
		return "Int"
	case KindFloat:
		return "Float"
	default:
		return "Unknown"
	}
}

// Value is an immutable primitive. The zero Value is the empty string.
type Value struct {
	kind Kind
	s    string
	i    int64
	f    float64
	b    bool
}

// String creates a string Value.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Bool creates a boolean Value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int creates an integer Value.
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Float creates a float Value.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// From converts a Go primitive to a Value.
// Values of any other type are stored as their fmt.Sprint text.
func From(v any) Value {
	switch val := v.(type) {
	case Value:
		return val
	case string:
		return String(val)
	case bool:
		return Bool(val)
	case int:
		return Int(int64(val))
	case int8:
		return Int(int64(val))
	case int16:
		return Int(int64(val))
	case int32:
		return Int(int64(val))
	case int64:
		return Int(val)
	case uint8:
		return Int(int64(val))
	case uint16:
		return Int(int64(val))
	case uint32:
		return Int(int64(val))
	case uint:
		if uint64(val) > 1<<63-1 {
			return String(strconv.FormatUint(uint64(val), 10))
		}
		return Int(int64(val))
	case uint64:
		if val > 1<<63-1 {
			return String(strconv.FormatUint(val, 10))
		}
		return Int(int64(val))
	case float32:
		return Float(float64(val))
	case float64:
		return Float(val)
	case nil:
		return Value{}
	default:
		return String(fmt.Sprint(v))
	}
}

// Kind returns the primitive type of v.
func (v Value) Kind() Kind { return v.kind }

// String renders v as text.
func (v Value) String() string {
	switch v.kind {
	case KindBool:
		if v.b {
			return "true"
		}
		return "false"
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		switch {
		case math.IsNaN(v.f):
			return "NaN"
		case math.IsInf(v.f, 1):
			return "Infinity"
		case math.IsInf(v.f, -1):
			return "-Infinity"
		}
		return strconv.FormatFloat(v.f, 'f', -1, 64)
	default:
		return v.s
	}
}

// Equal reports whether v and other hold the same kind and payload.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindBool:
		return v.b == other.b
	case KindInt:
		return v.i == other.i
	case KindFloat:
		// NaN equals NaN so an unchanged value never produces a patch.
		return v.f == other.f || (math.IsNaN(v.f) && math.IsNaN(other.f))
	default:
		return v.s == other.s
	}
}

// AsString returns the string payload.
func (v Value) AsString() (string, bool) {
	return v.s, v.kind == KindString
}

// AsBool returns the boolean payload.
func (v Value) AsBool() (bool, bool) {
	return v.b, v.kind == KindBool
}

// AsInt returns the integer payload.
func (v Value) AsInt() (int64, bool) {
	return v.i, v.kind == KindInt
}

// AsFloat returns the float payload.
func (v Value) AsFloat() (float64, bool) {
	return v.f, v.kind == KindFloat
}

// Truthy reports whether v should be treated as present for boolean
// attributes: true, or any non-empty value that is not the string "false".
func (v Value) Truthy() bool {
	switch v.kind {
	case KindBool:
		return v.b
	case KindString:
		return v.s != "" && v.s != "false"
	default:
		return true
	}
}
