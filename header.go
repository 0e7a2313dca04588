package iso8583

import (
	"encoding/binary"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// HeaderType defines how the transport length prefix in front of a message
// is encoded. Framing sits outside the codec: BuildWire and ParseMessage
// never see it.
type HeaderType int

const (
	HeaderNone   HeaderType = iota
	HeaderBinary            // 2-byte big-endian length
	HeaderASCII             // 4-digit ASCII decimal length, e.g. "0048"
	HeaderHex               // 4-char ASCII hex length, e.g. "0030"
)

func (h HeaderType) String() string {
	switch h {
	case HeaderNone:
		return "none"
	case HeaderBinary:
		return "binary"
	case HeaderASCII:
		return "ascii"
	case HeaderHex:
		return "hex"
	default:
		return fmt.Sprintf("HeaderType(%d)", int(h))
	}
}

// ParseHeaderType resolves a header type from its configuration name.
func ParseHeaderType(name string) (HeaderType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return HeaderNone, nil
	case "binary":
		return HeaderBinary, nil
	case "ascii":
		return HeaderASCII, nil
	case "hex":
		return HeaderHex, nil
	default:
		return HeaderNone, fmt.Errorf("%w: unknown header type %q", ErrInvalidArgument, name)
	}
}

// Size returns the number of bytes the length prefix occupies.
func (h HeaderType) Size() int {
	switch h {
	case HeaderBinary:
		return 2
	case HeaderASCII, HeaderHex:
		return 4
	default:
		return 0
	}
}

// Frame prepends the length prefix to payload.
func Frame(payload []byte, h HeaderType) ([]byte, error) {
	out := make([]byte, 0, h.Size()+len(payload))
	out, err := appendHeader(out, len(payload), h)
	if err != nil {
		return nil, err
	}
	return append(out, payload...), nil
}

// Unframe strips the length prefix and returns exactly the announced payload.
// Bytes past the announced length are ignored.
func Unframe(data []byte, h HeaderType) ([]byte, error) {
	n, err := readHeader(data, h)
	if err != nil {
		return nil, err
	}
	if h == HeaderNone {
		return data, nil
	}
	size := h.Size()
	if len(data) < size+n {
		return nil, fmt.Errorf("%w: frame announces %d bytes, have %d", ErrInsufficientData, n, len(data)-size)
	}
	return data[size : size+n], nil
}

// ReadFrame reads one framed message from r. With HeaderNone the whole
// stream is returned.
func ReadFrame(r io.Reader, h HeaderType) ([]byte, error) {
	if h == HeaderNone {
		return io.ReadAll(r)
	}
	head := make([]byte, h.Size())
	if _, err := io.ReadFull(r, head); err != nil {
		return nil, err
	}
	n, err := readHeader(head, h)
	if err != nil {
		return nil, err
	}
	payload := make([]byte, n)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, fmt.Errorf("reading %d byte payload: %w", n, err)
	}
	return payload, nil
}

// WriteFrame writes payload to w behind its length prefix.
func WriteFrame(w io.Writer, payload []byte, h HeaderType) error {
	framed, err := Frame(payload, h)
	if err != nil {
		return err
	}
	_, err = w.Write(framed)
	return err
}

func appendHeader(dst []byte, msgLen int, h HeaderType) ([]byte, error) {
	switch h {
	case HeaderNone:
		return dst, nil
	case HeaderBinary:
		if msgLen > 0xFFFF {
			return dst, fmt.Errorf("%w: message length %d exceeds 2-byte maximum", ErrInvalidLength, msgLen)
		}
		return binary.BigEndian.AppendUint16(dst, uint16(msgLen)), nil
	case HeaderASCII:
		if msgLen > 9999 {
			return dst, fmt.Errorf("%w: message length %d exceeds 4-digit maximum", ErrInvalidLength, msgLen)
		}
		return fmt.Appendf(dst, "%04d", msgLen), nil
	case HeaderHex:
		if msgLen > 0xFFFF {
			return dst, fmt.Errorf("%w: message length %d exceeds 4-char hex maximum", ErrInvalidLength, msgLen)
		}
		return fmt.Appendf(dst, "%04X", msgLen), nil
	default:
		return dst, fmt.Errorf("%w: unknown header type %s", ErrInvalidArgument, h)
	}
}

func readHeader(buf []byte, h HeaderType) (int, error) {
	if len(buf) < h.Size() {
		return 0, fmt.Errorf("%w: header needs %d bytes", ErrInsufficientData, h.Size())
	}
	switch h {
	case HeaderNone:
		return len(buf), nil
	case HeaderBinary:
		return int(binary.BigEndian.Uint16(buf)), nil
	case HeaderASCII:
		n, err := parseDecimal(string(buf[:4]))
		if err != nil {
			return 0, fmt.Errorf("%w: %w", ErrInvalidLength, err)
		}
		return int(n.Int64()), nil
	case HeaderHex:
		n, err := strconv.ParseUint(string(buf[:4]), 16, 16)
		if err != nil {
			return 0, fmt.Errorf("%w: %w", ErrInvalidLength, err)
		}
		return int(n), nil
	default:
		return 0, fmt.Errorf("%w: unknown header type %s", ErrInvalidArgument, h)
	}
}

// SplitFrames cuts a stream of back-to-back framed messages into one slice
// per message, each still carrying its length prefix. With HeaderNone the
// whole input is a single message.
func SplitFrames(data []byte, h HeaderType) ([][]byte, error) {
	if h == HeaderNone {
		return [][]byte{data}, nil
	}
	var frames [][]byte
	for pos := 0; pos < len(data); {
		n, err := readHeader(data[pos:], h)
		if err != nil {
			return frames, fmt.Errorf("frame at offset %d: %w", pos, err)
		}
		end := pos + h.Size() + n
		if end > len(data) {
			return frames, fmt.Errorf("frame at offset %d: %w: announces %d bytes, have %d",
				pos, ErrInsufficientData, n, len(data)-pos-h.Size())
		}
		frames = append(frames, data[pos:end])
		pos = end
	}
	return frames, nil
}
