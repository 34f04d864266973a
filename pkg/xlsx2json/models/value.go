// Package models defines data structures for workbook conversion.
package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Kind identifies which variant a Value holds.
type Kind uint8

const (
	// KindAbsent marks an empty or not-a-value cell. It encodes as null.
	KindAbsent Kind = iota
	// KindText is a string cell.
	KindText
	// KindNumber is an integer or floating-point cell.
	KindNumber
	// KindBool is a boolean cell.
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindText:
		return "text"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Value is a single cell value. The zero Value is Absent.
type Value struct {
	kind  Kind
	text  string
	num   float64
	integ int64
	isInt bool
	b     bool
}

// Absent returns the absent-value marker.
func Absent() Value { return Value{} }

// Text returns a text value. The empty string is normalized to Absent.
func Text(s string) Value {
	if s == "" {
		return Absent()
	}
	return Value{kind: KindText, text: s}
}

// Int returns an integer number value.
func Int(i int64) Value {
	return Value{kind: KindNumber, integ: i, num: float64(i), isInt: true}
}

// Float returns a floating-point number value.
// NaN and infinities have no JSON form and are normalized to Absent.
func Float(f float64) Value {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Absent()
	}
	return Value{kind: KindNumber, num: f}
}

// Bool returns a boolean value.
func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// Kind returns the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// IsAbsent reports whether v is the absent-value marker.
func (v Value) IsAbsent() bool { return v.kind == KindAbsent }

// IsInt reports whether v is a number stored as an integer.
func (v Value) IsInt() bool { return v.kind == KindNumber && v.isInt }

// Str returns the text of a Text value.
func (v Value) Str() string { return v.text }

// Float64 returns the numeric value of a Number value.
func (v Value) Float64() float64 { return v.num }

// Int64 returns the integer value of an integral Number value.
func (v Value) Int64() int64 { return v.integ }

// Truth returns the value of a Bool value.
func (v Value) Truth() bool { return v.b }

// Interface returns v as a plain Go value: nil, string, int64, float64 or bool.
func (v Value) Interface() interface{} {
	switch v.kind {
	case KindText:
		return v.Str()
	case KindNumber:
		if v.isInt {
			return v.Int64()
		}
		return v.Float64()
	case KindBool:
		return v.Truth()
	}
	return nil
}

// String renders v the way a header label would show it.
func (v Value) String() string {
	switch v.kind {
	case KindText:
		return v.Str()
	case KindNumber:
		if v.isInt {
			return strconv.FormatInt(v.Int64(), 10)
		}
		return strconv.FormatFloat(v.Float64(), 'f', -1, 64)
	case KindBool:
		if v.Truth() {
			return "TRUE"
		}
		return "FALSE"
	}
	return ""
}

// Round returns v rounded to the nearest integer, with halves rounded up.
// Values other than numbers are returned unchanged.
func (v Value) Round() Value {
	if v.kind != KindNumber || v.isInt {
		return v
	}
	r := math.Floor(v.num + 0.5)
	if r < math.MinInt64 || r >= math.MaxInt64 {
		return Float(r)
	}
	return Int(int64(r))
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindText:
		return marshalNoEscape(v.text)
	case KindNumber:
		if v.isInt {
			return strconv.AppendInt(nil, v.integ, 10), nil
		}
		return json.Marshal(v.num)
	case KindBool:
		return strconv.AppendBool(nil, v.b), nil
	}
	return []byte("null"), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *Value) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw interface{}
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	switch x := raw.(type) {
	case nil:
		*v = Absent()
	case string:
		*v = Text(x)
	case bool:
		*v = Bool(x)
	case json.Number:
		*v = ParseNumber(x.String())
	default:
		return fmt.Errorf("unsupported cell value %s", data)
	}
	return nil
}

// ParseNumber parses s as an integer when it is integral text and as a
// float otherwise. Text that is not a number is returned as a Text value.
func ParseNumber(s string) Value {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Int(i)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return Float(f)
	}
	return Text(s)
}
