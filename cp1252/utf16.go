package cp1252

import "unicode/utf16"

const (
	surrHigh = 0xD800
	surrLow  = 0xDC00
	surrEnd  = 0xE000
)

// runesFromUTF16 expands UTF-16 code units into code points. A high
// surrogate followed by a low surrogate combines into one supplementary
// code point and consumes both units; any other unit, including a lone
// surrogate, stands for itself. The stdlib utf16.Decode is not used because
// it folds lone surrogates to U+FFFD, and the encoder needs to report them
// under their own code point.
func runesFromUTF16(units []uint16) []rune {
	dst := make([]rune, 0, len(units))
	for i := 0; i < len(units); i++ {
		u := rune(units[i])
		if u >= surrHigh && u < surrLow && i+1 < len(units) {
			if next := rune(units[i+1]); next >= surrLow && next < surrEnd {
				dst = append(dst, utf16.DecodeRune(u, next))
				i++
				continue
			}
		}
		dst = append(dst, u)
	}
	return dst
}
