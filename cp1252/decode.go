package cp1252

import "strings"

// ErrorMode selects how a conversion handles input without a Windows-1252
// mapping.
//
// The WHATWG Encoding Standard decodes lossily and encodes strictly, so the
// conventional pairing is Replacement for Decode and Fatal for Encode.
type ErrorMode uint8

const (
	// Replacement substitutes U+FFFD (decoding) or '?' (encoding) for each
	// invalid input unit and continues.
	Replacement ErrorMode = iota
	// Fatal aborts the whole call on the first invalid input unit. No
	// partial result is returned.
	Fatal
)

const (
	replacementRune = '�'
	replacementByte = '?'
)

// Decode converts a Windows-1252 byte sequence to Unicode code points.
//
// The input is a sequence of integers rather than a byte slice so that
// elements straying outside [0, 255] are seen and reported instead of being
// truncated by the container. In Fatal mode such an element fails the call
// with *InvalidByteValueError, and an unassigned byte in 0x80-0x9F fails it
// with *UndefinedByteError. In Replacement mode Decode never fails and
// returns exactly one code point per input element.
func Decode(src []int, mode ErrorMode) ([]rune, error) {
	dst := make([]rune, 0, len(src))
	for _, v := range src {
		switch {
		case v < 0 || v > 0xFF:
			if mode == Fatal {
				return nil, &InvalidByteValueError{Value: v}
			}
			dst = append(dst, replacementRune)
		case v < 0x80 || v >= 0xA0:
			// ASCII and the Latin-1 supplement decode to the identical
			// code point.
			dst = append(dst, rune(v))
		default:
			r := decodeTable[v-0x80]
			if r < 0 {
				if mode == Fatal {
					return nil, &UndefinedByteError{Byte: byte(v)}
				}
				r = replacementRune
			}
			dst = append(dst, r)
		}
	}
	return dst, nil
}

// DecodeBytes converts a Windows-1252 byte slice to a UTF-8 string. The
// error behavior matches Decode, except that out-of-range values cannot
// occur.
func DecodeBytes(src []byte, mode ErrorMode) (string, error) {
	var b strings.Builder
	b.Grow(len(src) * 3) // no Windows-1252 character is longer than 3 bytes in UTF-8
	for _, c := range src {
		r := rune(c)
		if c >= 0x80 && c < 0xA0 {
			if r = decodeTable[c-0x80]; r < 0 {
				if mode == Fatal {
					return "", &UndefinedByteError{Byte: c}
				}
				r = replacementRune
			}
		}
		b.WriteRune(r)
	}
	return b.String(), nil
}
