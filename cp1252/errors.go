package cp1252

import "fmt"

// InvalidByteValueError reports a decode input element outside the byte
// range [0, 255].
type InvalidByteValueError struct {
	Value int
}

func (e *InvalidByteValueError) Error() string {
	return fmt.Sprintf("cp1252: invalid byte value %d, must be in range 0-255", e.Value)
}

// UndefinedByteError reports a byte in 0x80-0x9F with no character assigned
// in Windows-1252.
type UndefinedByteError struct {
	Byte byte
}

func (e *UndefinedByteError) Error() string {
	return fmt.Sprintf("cp1252: byte 0x%02X has no character assigned in Windows-1252", e.Byte)
}

// UnencodableRuneError reports a code point with no Windows-1252 byte.
type UnencodableRuneError struct {
	Rune rune
}

func (e *UnencodableRuneError) Error() string {
	return fmt.Sprintf("cp1252: character %q (U+%04X) cannot be encoded in Windows-1252", e.Rune, e.Rune)
}

// Replacement returns the substitution byte, which lets
// encoding.ReplaceUnsupported recognize the error when the x/text encoder
// is wrapped for lossy output.
func (e *UnencodableRuneError) Replacement() byte { return replacementByte }
