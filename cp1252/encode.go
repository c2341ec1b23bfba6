package cp1252

// encodeByte returns the Windows-1252 byte for r. The second result is
// false when the code point has no encoding, which includes the C1 control
// range 0x80-0x9F, any unmapped code point at or above 0x100, and surrogate
// code points.
func encodeByte(r rune) (byte, bool) {
	if r >= 0 && r < 0x80 || r >= 0xA0 && r <= 0xFF {
		return byte(r), true
	}
	for lo, hi := 0, len(encodeTable); lo < hi; {
		mid := (lo + hi) / 2
		got := encodeTable[mid]
		gotRune := rune(got & (1<<24 - 1))
		switch {
		case gotRune < r:
			lo = mid + 1
		case gotRune > r:
			hi = mid
		default:
			return byte(got >> 24), true
		}
	}
	return 0, false
}

// Encode converts text to Windows-1252 bytes, iterating the string by code
// point. In Fatal mode the first unencodable code point fails the call with
// *UnencodableRuneError; in Replacement mode it is written as '?' and the
// output holds exactly one byte per code point.
func Encode(text string, mode ErrorMode) ([]byte, error) {
	dst := make([]byte, 0, len(text))
	for _, r := range text {
		b, ok := encodeByte(r)
		if !ok {
			if mode == Fatal {
				return nil, &UnencodableRuneError{Rune: r}
			}
			b = replacementByte
		}
		dst = append(dst, b)
	}
	return dst, nil
}

// EncodeRunes is Encode for a code-point slice. Unlike a string, a []rune
// can carry lone surrogates; each one is a single unencodable code point.
func EncodeRunes(text []rune, mode ErrorMode) ([]byte, error) {
	dst := make([]byte, 0, len(text))
	for _, r := range text {
		b, ok := encodeByte(r)
		if !ok {
			if mode == Fatal {
				return nil, &UnencodableRuneError{Rune: r}
			}
			b = replacementByte
		}
		dst = append(dst, b)
	}
	return dst, nil
}

// EncodeUTF16 converts UTF-16 code units to Windows-1252 bytes. A high
// surrogate directly followed by a low surrogate is consumed as one code
// point; a lone surrogate is one unencodable code point, producing one
// error or one '?', never silently dropped.
func EncodeUTF16(units []uint16, mode ErrorMode) ([]byte, error) {
	return EncodeRunes(runesFromUTF16(units), mode)
}
