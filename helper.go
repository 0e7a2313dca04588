package iso8583

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

const hexTableUpper = "0123456789ABCDEF"

// encodeHexUpper converts src to uppercase hex and writes it to dst.
func encodeHexUpper(dst, src []byte) {
	for i, v := range src {
		dst[i*2] = hexTableUpper[v>>4]
		dst[i*2+1] = hexTableUpper[v&0x0f]
	}
}

// decodeText turns single-byte ISO-8859-1 wire text into a Go string.
func decodeText(b []byte) (string, error) {
	s, err := charmap.ISO8859_1.NewDecoder().Bytes(b)
	if err != nil {
		return "", err
	}
	return string(s), nil
}

// encodeText turns a Go string into single-byte ISO-8859-1 wire text.
func encodeText(s string) ([]byte, error) {
	b, err := charmap.ISO8859_1.NewEncoder().String(s)
	if err != nil {
		return nil, fmt.Errorf("%q is not representable as ISO-8859-1: %w", s, err)
	}
	return []byte(b), nil
}

// textLen is the number of characters s occupies on the wire.
func textLen(s string) int {
	return utf8.RuneCountInString(s)
}
