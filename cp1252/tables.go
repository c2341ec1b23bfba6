package cp1252

// decodeTable maps the 0x80-0x9F zone to code points, indexed by byte-0x80.
// The five bytes with no assigned character hold -1.
var decodeTable = [32]rune{
	0x20AC, // 0x80 EURO SIGN
	-1,     // 0x81
	0x201A, // 0x82 SINGLE LOW-9 QUOTATION MARK
	0x0192, // 0x83 LATIN SMALL LETTER F WITH HOOK
	0x201E, // 0x84 DOUBLE LOW-9 QUOTATION MARK
	0x2026, // 0x85 HORIZONTAL ELLIPSIS
	0x2020, // 0x86 DAGGER
	0x2021, // 0x87 DOUBLE DAGGER
	0x02C6, // 0x88 MODIFIER LETTER CIRCUMFLEX ACCENT
	0x2030, // 0x89 PER MILLE SIGN
	0x0160, // 0x8A LATIN CAPITAL LETTER S WITH CARON
	0x2039, // 0x8B SINGLE LEFT-POINTING ANGLE QUOTATION MARK
	0x0152, // 0x8C LATIN CAPITAL LIGATURE OE
	-1,     // 0x8D
	0x017D, // 0x8E LATIN CAPITAL LETTER Z WITH CARON
	-1,     // 0x8F
	-1,     // 0x90
	0x2018, // 0x91 LEFT SINGLE QUOTATION MARK
	0x2019, // 0x92 RIGHT SINGLE QUOTATION MARK
	0x201C, // 0x93 LEFT DOUBLE QUOTATION MARK
	0x201D, // 0x94 RIGHT DOUBLE QUOTATION MARK
	0x2022, // 0x95 BULLET
	0x2013, // 0x96 EN DASH
	0x2014, // 0x97 EM DASH
	0x02DC, // 0x98 SMALL TILDE
	0x2122, // 0x99 TRADE MARK SIGN
	0x0161, // 0x9A LATIN SMALL LETTER S WITH CARON
	0x203A, // 0x9B SINGLE RIGHT-POINTING ANGLE QUOTATION MARK
	0x0153, // 0x9C LATIN SMALL LIGATURE OE
	-1,     // 0x9D
	0x017E, // 0x9E LATIN SMALL LETTER Z WITH CARON
	0x0178, // 0x9F LATIN CAPITAL LETTER Y WITH DIAERESIS
}

// encodeTable is the inverse of decodeTable. The high 8 bits of each entry
// are the encoded byte and the low 24 bits are the code point; entries are
// sorted by code point for binary search.
var encodeTable = [27]uint32{
	0x8C<<24 | 0x0152, // Œ
	0x9C<<24 | 0x0153, // œ
	0x8A<<24 | 0x0160, // Š
	0x9A<<24 | 0x0161, // š
	0x9F<<24 | 0x0178, // Ÿ
	0x8E<<24 | 0x017D, // Ž
	0x9E<<24 | 0x017E, // ž
	0x83<<24 | 0x0192, // ƒ
	0x88<<24 | 0x02C6, // ˆ
	0x98<<24 | 0x02DC, // ˜
	0x96<<24 | 0x2013, // –
	0x97<<24 | 0x2014, // —
	0x91<<24 | 0x2018, // ‘
	0x92<<24 | 0x2019, // ’
	0x82<<24 | 0x201A, // ‚
	0x93<<24 | 0x201C, // “
	0x94<<24 | 0x201D, // ”
	0x84<<24 | 0x201E, // „
	0x86<<24 | 0x2020, // †
	0x87<<24 | 0x2021, // ‡
	0x95<<24 | 0x2022, // •
	0x85<<24 | 0x2026, // …
	0x89<<24 | 0x2030, // ‰
	0x8B<<24 | 0x2039, // ‹
	0x9B<<24 | 0x203A, // ›
	0x80<<24 | 0x20AC, // €
	0x99<<24 | 0x2122, // ™
}
