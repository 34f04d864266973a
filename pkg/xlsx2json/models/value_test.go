package models

import (
	"encoding/json"
	"math"
	"testing"
)

func TestValueMarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		value    Value
		expected string
	}{
		{"absent", Absent(), "null"},
		{"empty text", Text(""), "null"},
		{"text", Text("Alice"), `"Alice"`},
		{"korean", Text("황금경로"), `"황금경로"`},
		{"html", Text("a<b & c>d"), `"a<b & c>d"`},
		{"int", Int(42), "42"},
		{"negative int", Int(-7), "-7"},
		{"float", Float(3.14), "3.14"},
		{"nan", Float(math.NaN()), "null"},
		{"inf", Float(math.Inf(1)), "null"},
		{"true", Bool(true), "true"},
		{"false", Bool(false), "false"},
	}

	for _, tt := range tests {
		got, err := tt.value.MarshalJSON()
		if err != nil {
			t.Fatalf("%s: Marshal failed: %v", tt.name, err)
		}
		if string(got) != tt.expected {
			t.Errorf("%s: got %s, expected %s", tt.name, got, tt.expected)
		}
	}
}

func TestValueUnmarshalJSON(t *testing.T) {
	tests := []struct {
		input string
		kind  Kind
		iface interface{}
	}{
		{"null", KindAbsent, nil},
		{`"x"`, KindText, "x"},
		{`""`, KindAbsent, nil},
		{"12", KindNumber, int64(12)},
		{"1.5", KindNumber, 1.5},
		{"true", KindBool, true},
	}

	for _, tt := range tests {
		var v Value
		if err := json.Unmarshal([]byte(tt.input), &v); err != nil {
			t.Fatalf("Unmarshal(%s) failed: %v", tt.input, err)
		}
		if v.Kind() != tt.kind {
			t.Errorf("Unmarshal(%s) kind = %v, expected %v", tt.input, v.Kind(), tt.kind)
		}
		if v.Interface() != tt.iface {
			t.Errorf("Unmarshal(%s) = %v (%T), expected %v (%T)",
				tt.input, v.Interface(), v.Interface(), tt.iface, tt.iface)
		}
	}
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		input    string
		expected interface{}
	}{
		{"123", int64(123)},
		{"-100", int64(-100)},
		{"123.45", 123.45},
		{"1E-3", 0.001},
		{"hello", "hello"},
		{"", nil},
	}

	for _, tt := range tests {
		got := ParseNumber(tt.input).Interface()
		if got != tt.expected {
			t.Errorf("ParseNumber(%q) = %v (%T), expected %v (%T)",
				tt.input, got, got, tt.expected, tt.expected)
		}
	}
}

func TestValueRound(t *testing.T) {
	tests := []struct {
		input    Value
		expected interface{}
	}{
		{Float(2.4), int64(2)},
		{Float(2.5), int64(3)},
		{Float(-2.5), int64(-2)},
		{Float(-2.6), int64(-3)},
		{Int(9), int64(9)},
		{Text("1.5"), "1.5"},
		{Absent(), nil},
	}

	for _, tt := range tests {
		got := tt.input.Round().Interface()
		if got != tt.expected {
			t.Errorf("Round(%v) = %v (%T), expected %v", tt.input, got, got, tt.expected)
		}
	}
}

func TestValueString(t *testing.T) {
	tests := []struct {
		value    Value
		expected string
	}{
		{Text("id"), "id"},
		{Int(2024), "2024"},
		{Float(0.5), "0.5"},
		{Bool(true), "TRUE"},
		{Absent(), ""},
	}

	for _, tt := range tests {
		if got := tt.value.String(); got != tt.expected {
			t.Errorf("String() = %q, expected %q", got, tt.expected)
		}
	}
}
