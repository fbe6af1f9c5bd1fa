// Package types converts the loosely typed values returned by warehouse
// drivers into Go scalars.
package types

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"
)

// ToInt64 converts an interface{} to int64.
// Supports the signed and unsigned integer kinds, float32/float64 (truncated),
// *big.Rat and numeric text ([]byte or string). Anything else yields 0.
func ToInt64(v interface{}) int64 {
	switch i := v.(type) {
	case int64:
		return i
	case int:
		return int64(i)
	case int32:
		return int64(i)
	case int16:
		return int64(i)
	case int8:
		return int64(i)
	case uint:
		return int64(i)
	case uint64:
		return int64(i)
	case uint32:
		return int64(i)
	case uint16:
		return int64(i)
	case uint8:
		return int64(i)
	case float64:
		return int64(i)
	case float32:
		return int64(i)
	case *big.Rat:
		if i == nil {
			return 0
		}
		f, _ := i.Float64()
		return int64(f)
	case []byte:
		return parseInt(string(i))
	case string:
		return parseInt(i)
	default:
		return 0
	}
}

func parseInt(s string) int64 {
	s = strings.TrimSpace(s)
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int64(f)
	}
	return 0
}

// ToFloat64 converts a numeric driver value to float64. The boolean result is
// false for nil (SQL NULL) and for values that are not numeric.
func ToFloat64(v interface{}) (float64, bool) {
	switch f := v.(type) {
	case nil:
		return 0, false
	case float64:
		return f, true
	case float32:
		return float64(f), true
	case int64, int, int32, int16, int8, uint, uint64, uint32, uint16, uint8:
		return float64(ToInt64(f)), true
	case *big.Rat:
		if f == nil {
			return 0, false
		}
		out, _ := f.Float64()
		return out, true
	case []byte:
		return parseFloat(string(f))
	case string:
		return parseFloat(f)
	default:
		return 0, false
	}
}

func parseFloat(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// ToString renders a driver value as display text. nil renders as "NULL".
func ToString(v interface{}) string {
	switch s := v.(type) {
	case nil:
		return "NULL"
	case string:
		return s
	case []byte:
		return string(s)
	case time.Time:
		return s.Format(time.RFC3339Nano)
	case *big.Rat:
		if s == nil {
			return "NULL"
		}
		return s.FloatString(9)
	case float64:
		return strconv.FormatFloat(s, 'g', -1, 64)
	case fmt.Stringer:
		return s.String()
	default:
		return fmt.Sprint(v)
	}
}
