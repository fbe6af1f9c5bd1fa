package types

import (
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestToInt64_IntTypes(t *testing.T) {
	tests := []struct {
		name     string
		input    interface{}
		expected int64
	}{
		{
			name:     "int64",
			input:    int64(42),
			expected: 42,
		},
		{
			name:     "int",
			input:    int(100),
			expected: 100,
		},
		{
			name:     "int32",
			input:    int32(200),
			expected: 200,
		},
		{
			name:     "int16",
			input:    int16(300),
			expected: 300,
		},
		{
			name:     "int8",
			input:    int8(127),
			expected: 127,
		},
		{
			name:     "uint",
			input:    uint(500),
			expected: 500,
		},
		{
			name:     "uint64",
			input:    uint64(1000),
			expected: 1000,
		},
		{
			name:     "uint32",
			input:    uint32(2000),
			expected: 2000,
		},
		{
			name:     "uint16",
			input:    uint16(3000),
			expected: 3000,
		},
		{
			name:     "uint8",
			input:    uint8(255),
			expected: 255,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ToInt64(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestToInt64_FloatTypes(t *testing.T) {
	tests := []struct {
		name     string
		input    interface{}
		expected int64
	}{
		{
			name:     "float64 integer value",
			input:    float64(42.0),
			expected: 42,
		},
		{
			name:     "float64 with decimals truncates",
			input:    float64(42.9),
			expected: 42,
		},
		{
			name:     "float32 integer value",
			input:    float32(100.0),
			expected: 100,
		},
		{
			name:     "float32 with decimals truncates",
			input:    float32(99.7),
			expected: 99,
		},
		{
			name:     "float64 large value",
			input:    float64(999999.0),
			expected: 999999,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ToInt64(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestToInt64_NegativeValues(t *testing.T) {
	tests := []struct {
		name     string
		input    interface{}
		expected int64
	}{
		{
			name:     "Negative int64",
			input:    int64(-42),
			expected: -42,
		},
		{
			name:     "Negative int",
			input:    int(-100),
			expected: -100,
		},
		{
			name:     "Negative int8",
			input:    int8(-128),
			expected: -128,
		},
		{
			name:     "Negative float64",
			input:    float64(-50.5),
			expected: -50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ToInt64(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestToInt64_ZeroValues(t *testing.T) {
	tests := []struct {
		name     string
		input    interface{}
		expected int64
	}{
		{
			name:     "Zero int64",
			input:    int64(0),
			expected: 0,
		},
		{
			name:     "Zero int",
			input:    int(0),
			expected: 0,
		},
		{
			name:     "Zero float64",
			input:    float64(0.0),
			expected: 0,
		},
		{
			name:     "Zero uint64",
			input:    uint64(0),
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ToInt64(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestToInt64_UnsupportedTypes(t *testing.T) {
	tests := []struct {
		name  string
		input interface{}
	}{
		{
			name:  "nil",
			input: nil,
		},
		{
			name:  "non-numeric string",
			input: "forty-two",
		},
		{
			name:  "bool",
			input: true,
		},
		{
			name:  "slice",
			input: []int{1, 2, 3},
		},
		{
			name:  "map",
			input: map[string]int{"key": 42},
		},
		{
			name:  "struct",
			input: struct{ Value int }{Value: 42},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ToInt64(tt.input)
			assert.Equal(t, int64(0), result, "Unsupported types should return 0")
		})
	}
}

func TestToInt64_TextAndRat(t *testing.T) {
	tests := []struct {
		name     string
		input    interface{}
		expected int64
	}{
		{name: "string", input: "42", expected: 42},
		{name: "bytes", input: []byte("1000"), expected: 1000},
		{name: "decimal text", input: "12.75", expected: 12},
		{name: "padded text", input: " 7 ", expected: 7},
		{name: "big.Rat", input: big.NewRat(9, 2), expected: 4},
		{name: "nil big.Rat", input: (*big.Rat)(nil), expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ToInt64(tt.input))
		})
	}
}

func TestToFloat64(t *testing.T) {
	tests := []struct {
		name     string
		input    interface{}
		expected float64
		ok       bool
	}{
		{name: "float64", input: 10.25, expected: 10.25, ok: true},
		{name: "float32", input: float32(0.5), expected: 0.5, ok: true},
		{name: "int64", input: int64(-3), expected: -3, ok: true},
		{name: "uint8", input: uint8(9), expected: 9, ok: true},
		{name: "big.Rat", input: big.NewRat(1, 4), expected: 0.25, ok: true},
		{name: "mysql decimal bytes", input: []byte("100.0000"), expected: 100, ok: true},
		{name: "postgres numeric text", input: "33.3333333333333333", expected: 33.3333333333333333, ok: true},
		{name: "nil", input: nil, expected: 0, ok: false},
		{name: "nil big.Rat", input: (*big.Rat)(nil), expected: 0, ok: false},
		{name: "text", input: "abc", expected: 0, ok: false},
		{name: "bool", input: true, expected: 0, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ToFloat64(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.InDelta(t, tt.expected, got, 1e-9)
		})
	}
}

func TestToString(t *testing.T) {
	ts := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		input    interface{}
		expected string
	}{
		{name: "nil", input: nil, expected: "NULL"},
		{name: "string", input: "a", expected: "a"},
		{name: "bytes", input: []byte("b"), expected: "b"},
		{name: "int64", input: int64(12), expected: "12"},
		{name: "float64", input: 1.5, expected: "1.5"},
		{name: "bool", input: true, expected: "true"},
		{name: "time", input: ts, expected: "2024-03-01T12:30:00Z"},
		{name: "big.Rat", input: big.NewRat(3, 2), expected: "1.500000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ToString(tt.input))
		})
	}
}
