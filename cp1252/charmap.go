package cp1252

import (
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// CP1252 is the Windows-1252 encoding for the golang.org/x/text machinery,
// for plugging the codec into transform-based readers and writers. Its
// decoder substitutes U+FFFD for the five unassigned bytes; its encoder
// fails with *UnencodableRuneError on the first unrepresentable rune, and
// composes with encoding.ReplaceUnsupported for lossy output.
var CP1252 = &Charmap{}

// Charmap adapts the Windows-1252 tables to encoding.Encoding.
type Charmap struct{}

func (*Charmap) NewDecoder() *encoding.Decoder {
	return &encoding.Decoder{Transformer: charmapDecoder{}}
}

func (*Charmap) NewEncoder() *encoding.Encoder {
	return &encoding.Encoder{Transformer: charmapEncoder{}}
}

func (*Charmap) String() string { return "windows-1252" }

// utf8Enc holds a rune's UTF-8 encoding in data[:len].
type utf8Enc struct {
	len  uint8
	data [3]byte
}

// xcodeTable maps every byte value to its UTF-8 form, with the unassigned
// bytes already resolved to U+FFFD. Populated once at init from the zone
// logic; read-only afterwards.
var xcodeTable [256]utf8Enc

func init() {
	for i := range xcodeTable {
		r := rune(i)
		if i >= 0x80 && i < 0xA0 {
			if r = decodeTable[i-0x80]; r < 0 {
				r = replacementRune
			}
		}
		n := utf8.EncodeRune(xcodeTable[i].data[:], r)
		xcodeTable[i].len = uint8(n)
	}
}

type charmapDecoder struct {
	transform.NopResetter
}

func (charmapDecoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for i, c := range src {
		if c < utf8.RuneSelf {
			if nDst >= len(dst) {
				err = transform.ErrShortDst
				break
			}
			dst[nDst] = c
			nDst++
			nSrc = i + 1
			continue
		}

		enc := &xcodeTable[c]
		n := int(enc.len)
		if nDst+n > len(dst) {
			err = transform.ErrShortDst
			break
		}
		for j := 0; j < n; j++ {
			dst[nDst] = enc.data[j]
			nDst++
		}
		nSrc = i + 1
	}
	return nDst, nSrc, err
}

type charmapEncoder struct {
	transform.NopResetter
}

func (charmapEncoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		if nDst >= len(dst) {
			err = transform.ErrShortDst
			break
		}

		r, size := rune(src[nSrc]), 1
		if r >= utf8.RuneSelf {
			r, size = utf8.DecodeRune(src[nSrc:])
			if size == 1 {
				// All valid single-byte runes were handled above, so this
				// is invalid UTF-8 or a truncated rune at the buffer end.
				if !atEOF && !utf8.FullRune(src[nSrc:]) {
					err = transform.ErrShortSrc
				} else {
					err = encoding.ErrInvalidUTF8
				}
				break
			}
		}

		b, ok := encodeByte(r)
		if !ok {
			err = &UnencodableRuneError{Rune: r}
			break
		}
		dst[nDst] = b
		nDst++
		nSrc += size
	}
	return nDst, nSrc, err
}
