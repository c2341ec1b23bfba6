// Package cp1252 converts between Windows-1252 byte sequences and Unicode
// code points.
//
// Windows-1252 is a single-byte encoding with three zones:
//
//	0x00-0x7F  ASCII, code point equals byte value
//	0x80-0x9F  27 assigned characters (€ ‚ ƒ „ … † ‡ ˆ ‰ Š ‹ Œ Ž ‘ ’ “ ” •
//	           – — ˜ ™ š › œ ž Ÿ); the bytes 0x81, 0x8D, 0x8F, 0x90 and
//	           0x9D are unassigned
//	0xA0-0xFF  identical to the Unicode Latin-1 supplement
//
// # Error modes
//
// Every conversion takes an ErrorMode. Fatal aborts the whole call on the
// first input unit without a mapping and returns a typed error naming it;
// Replacement substitutes U+FFFD (decoding) or '?' (encoding) and keeps
// going. The WHATWG Encoding Standard pairs lossy decoding with strict
// encoding; callers wanting that behavior pass Replacement to Decode and
// Fatal to Encode.
//
// # Whole-buffer API and the x/text adapter
//
// Decode, DecodeBytes, Encode, EncodeRunes and EncodeUTF16 convert complete
// buffers in one call. CP1252 exposes the same tables as a
// golang.org/x/text/encoding.Encoding for use with transform-based readers
// and writers.
//
// All conversions are pure functions over two immutable tables; concurrent
// use needs no locking.
package cp1252
