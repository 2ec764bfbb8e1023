// Package bingo scores API error responses against a fixed catalogue of
// well-known error shape conventions. Collect enough patterns and you win
// absolutely nothing.
package bingo

import "encoding/json"

// Kind identifies the runtime kind of a response value.
type Kind int

const (
	KindString Kind = iota
	KindNumber
	KindBool
	KindNull
	KindObject
	KindArray
)

// String returns a human-readable name for the kind
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindNull:
		return "null"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	}
	return "unknown"
}

// kindOf classifies a response value. It covers everything encoding/json
// produces plus the Go-native numeric types, so hand-built responses
// behave the same as decoded ones. The second return is false for values
// with no JSON kind; those never match any shape.
func kindOf(v any) (Kind, bool) {
	switch v.(type) {
	case nil:
		return KindNull, true
	case bool:
		return KindBool, true
	case string:
		return KindString, true
	case float64, float32,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		json.Number:
		return KindNumber, true
	case map[string]any:
		return KindObject, true
	case []any:
		return KindArray, true
	}
	return 0, false
}

// numberOf converts a numeric response value to float64 for comparison.
func numberOf(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}

// Shape describes the check a catalogue pattern performs on the value
// found at its key. The set of shapes is closed: TypeShape, LiteralShape
// and NestedFaultShape are the only implementations.
type Shape interface {
	// matches reports whether the value satisfies the shape.
	matches(v any) bool
}

// TypeShape matches when the value is of a given kind.
type TypeShape struct {
	Kind Kind
}

var _ Shape = TypeShape{}

func (s TypeShape) matches(v any) bool {
	k, ok := kindOf(v)
	return ok && k == s.Kind
}

// LiteralShape matches when the value equals a fixed literal. Equality is
// kind-aware: false does not equal 0, and "500" does not equal 500.
type LiteralShape struct {
	Value any // one of string, bool, float64 or nil
}

var _ Shape = LiteralShape{}

func (s LiteralShape) matches(v any) bool {
	k, ok := kindOf(v)
	if !ok {
		return false
	}

	switch lit := s.Value.(type) {
	case nil:
		return k == KindNull
	case bool:
		return k == KindBool && v.(bool) == lit
	case string:
		return k == KindString && v.(string) == lit
	case float64:
		if k != KindNumber {
			return false
		}
		n, ok := numberOf(v)
		return ok && n == lit
	}
	return false
}

// NestedFaultShape matches a SOAP-style fault: an object containing a
// faultstring key. The faultstring value itself is not inspected.
type NestedFaultShape struct{}

var _ Shape = NestedFaultShape{}

func (NestedFaultShape) matches(v any) bool {
	obj, ok := v.(map[string]any)
	if !ok {
		return false
	}
	_, ok = obj["faultstring"]
	return ok
}
