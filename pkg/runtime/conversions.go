package runtime

import (
	"math"
	"strconv"
	"strings"
)

// Abstract coercion operations shared by the built-in methods. Ordering
// matters: callers rely on coercion faults surfacing before any other work
// happens on the coerced value.

// ToBoolean applies standard truthiness. It is total.
func ToBoolean(v Value) bool {
	switch val := v.(type) {
	case UndefinedValue, NullValue:
		return false
	case BoolValue:
		return val.Val
	case NumberValue:
		return val.Val != 0 && !math.IsNaN(val.Val)
	case BigIntValue:
		return val.Val != nil && val.Val.Sign() != 0
	case StringValue:
		return val.Val != ""
	default:
		return true
	}
}

// ToNumber coerces a value to a double. Undefined becomes NaN, null becomes
// 0, booleans become 0/1 and strings parse with numeric-literal rules
// (leading/trailing whitespace stripped, empty string is 0, hex/octal/binary
// prefixes honoured). Values without a numeric interpretation fault.
func ToNumber(v Value) (float64, error) {
	switch val := v.(type) {
	case UndefinedValue:
		return math.NaN(), nil
	case NullValue:
		return 0, nil
	case BoolValue:
		if val.Val {
			return 1, nil
		}
		return 0, nil
	case NumberValue:
		return val.Val, nil
	case StringValue:
		return stringToNumber(val.Val), nil
	case BigIntValue:
		return 0, NewTypeError("cannot convert a bigint to a number")
	default:
		return 0, NewTypeError("cannot convert %s to a number", v.Kind())
	}
}

func stringToNumber(s string) float64 {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0
	}
	switch trimmed {
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}
	if len(trimmed) > 2 && trimmed[0] == '0' {
		var base int
		switch trimmed[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			n, err := strconv.ParseUint(trimmed[2:], base, 64)
			if err != nil {
				return math.NaN()
			}
			return float64(n)
		}
	}
	n, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return math.NaN()
	}
	return n
}

// ToNumeric coerces to either a number or a bigint. Bigints pass through
// unchanged so callers can decide whether arbitrary precision is supported;
// everything else goes through ToNumber.
func ToNumeric(v Value) (Value, error) {
	if b, ok := v.(BigIntValue); ok {
		return b, nil
	}
	n, err := ToNumber(v)
	if err != nil {
		return nil, err
	}
	return NumberValue{Val: n}, nil
}

// ToIntegerOrInfinity coerces to an integral double. NaN maps to 0, the
// infinities are preserved and finite values truncate toward zero.
func ToIntegerOrInfinity(v Value) (float64, error) {
	n, err := ToNumber(v)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(n) {
		return 0, nil
	}
	if math.IsInf(n, 0) {
		return n, nil
	}
	n = math.Trunc(n)
	if n == 0 {
		return 0, nil // normalise -0
	}
	return n, nil
}
