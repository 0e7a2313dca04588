package iso8583

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"
)

// ValueKind tells which representation a Value holds.
type ValueKind int

const (
	ValueNull   ValueKind = iota // Zero-length numeric field
	ValueInt                     // Numeric content
	ValueString                  // Text content, including track data
	ValueHex                     // Binary content as upper-case hex
)

// Value is the decoded content of a data element.
type Value struct {
	kind ValueKind
	num  *big.Int
	text string
}

// Null returns the value of a zero-length numeric field.
func Null() Value { return Value{kind: ValueNull} }

// Int returns a numeric value.
func Int(n int64) Value { return Value{kind: ValueInt, num: big.NewInt(n)} }

// BigInt returns a numeric value of arbitrary size. n is copied.
func BigInt(n *big.Int) Value { return Value{kind: ValueInt, num: new(big.Int).Set(n)} }

// String returns a text value.
func String(s string) Value { return Value{kind: ValueString, text: s} }

// Hex returns a binary value given as hex digits. The digits are upper-cased.
func Hex(s string) Value { return Value{kind: ValueHex, text: strings.ToUpper(s)} }

// Bytes returns a binary value.
func Bytes(b []byte) Value {
	out := make([]byte, len(b)*2)
	encodeHexUpper(out, b)
	return Value{kind: ValueHex, text: string(out)}
}

// Kind returns the representation held by v.
func (v Value) Kind() ValueKind { return v.kind }

// IsNull reports whether v is the null value.
func (v Value) IsNull() bool { return v.kind == ValueNull }

// Int64 returns a numeric value as int64.
func (v Value) Int64() (int64, error) {
	if v.kind != ValueInt {
		return 0, fmt.Errorf("value is not numeric")
	}
	if !v.num.IsInt64() {
		return 0, fmt.Errorf("value %s overflows int64", v.num)
	}
	return v.num.Int64(), nil
}

// BigInt returns a copy of a numeric value, or nil.
func (v Value) BigInt() *big.Int {
	if v.kind != ValueInt {
		return nil
	}
	return new(big.Int).Set(v.num)
}

// Bytes decodes a binary value.
func (v Value) Bytes() ([]byte, error) {
	if v.kind != ValueHex {
		return nil, fmt.Errorf("value is not binary")
	}
	return hex.DecodeString(v.text)
}

// String renders the value as text: decimal digits for numbers, the text
// itself otherwise, and "" for null.
func (v Value) String() string {
	switch v.kind {
	case ValueInt:
		return v.num.String()
	case ValueString, ValueHex:
		return v.text
	default:
		return ""
	}
}

// Equal reports whether both values have the same kind and content.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	if v.kind == ValueInt {
		return v.num.Cmp(o.num) == 0
	}
	return v.text == o.text
}

// valueOf normalizes the Go types accepted by SetFieldData. Values for
// binary content are stored as hex whatever their Go type.
func valueOf(v any, ct ContentType) (Value, error) {
	var val Value
	switch x := v.(type) {
	case Value:
		val = x
	case nil:
		val = Null()
	case int:
		val = Int(int64(x))
	case int32:
		val = Int(int64(x))
	case int64:
		val = Int(x)
	case uint:
		val = BigInt(new(big.Int).SetUint64(uint64(x)))
	case uint32:
		val = Int(int64(x))
	case uint64:
		val = BigInt(new(big.Int).SetUint64(x))
	case *big.Int:
		if x == nil {
			val = Null()
		} else {
			val = BigInt(x)
		}
	case string:
		val = String(x)
	case []byte:
		val = Bytes(x)
	default:
		return Value{}, fmt.Errorf("%w: unsupported value type %T", ErrInvalidArgument, v)
	}

	if val.kind == ValueInt && val.num.Sign() < 0 {
		return Value{}, fmt.Errorf("%w: negative value %s", ErrInvalidArgument, val.num)
	}
	if ct == ContentB && (val.kind == ValueString || val.kind == ValueInt) {
		val = Hex(val.String())
	}
	return val, nil
}
