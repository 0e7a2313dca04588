package iso8583

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"
)

// packBCD packs a string of nibbles two per byte. Odd-length input gets a
// leading zero nibble.
func packBCD(digits string) ([]byte, error) {
	if len(digits)%2 == 1 {
		digits = "0" + digits
	}
	out := make([]byte, len(digits)/2)
	if _, err := hex.Decode(out, []byte(digits)); err != nil {
		return nil, fmt.Errorf("cannot pack %q as BCD: %w", digits, err)
	}
	return out, nil
}

// unpackBCD returns the nibbles of b as an upper-case string.
func unpackBCD(b []byte) string {
	out := make([]byte, len(b)*2)
	encodeHexUpper(out, b)
	return string(out)
}

// bcdToInt converts the last digits nibbles of b to an integer. A leading
// padding nibble is dropped whatever its value.
func bcdToInt(b []byte, digits int) (*big.Int, error) {
	nibbles := unpackBCD(b)
	if digits < 0 || digits > len(nibbles) {
		return nil, fmt.Errorf("cannot read %d digits from %d packed bytes", digits, len(b))
	}
	return parseDecimal(nibbles[len(nibbles)-digits:])
}

// parseDecimal parses a string of decimal digits. Signs, spaces and hex
// letters are rejected.
func parseDecimal(s string) (*big.Int, error) {
	if s == "" || strings.IndexFunc(s, func(r rune) bool { return r < '0' || r > '9' }) >= 0 {
		return nil, fmt.Errorf("invalid decimal digits %q", s)
	}
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("invalid decimal digits %q", s)
	}
	return n, nil
}

// readUint reads an unsigned big-endian integer of up to 8 bytes.
func readUint(b []byte) uint64 {
	var buf [8]byte
	copy(buf[8-len(b):], b)
	return binary.BigEndian.Uint64(buf[:])
}

// appendUint appends v as an unsigned big-endian integer of size bytes.
func appendUint(dst []byte, v uint64, size int) ([]byte, error) {
	if size < 8 && v>>(8*uint(size)) != 0 {
		return dst, fmt.Errorf("%d does not fit in %d bytes", v, size)
	}
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)
	return append(dst, buf[8-size:]...), nil
}
