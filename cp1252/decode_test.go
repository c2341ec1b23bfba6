package cp1252

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var undefinedBytes = []byte{0x81, 0x8D, 0x8F, 0x90, 0x9D}

func isUndefined(b byte) bool {
	for _, u := range undefinedBytes {
		if b == u {
			return true
		}
	}
	return false
}

func TestDecodeASCII(t *testing.T) {
	got, err := Decode([]int{0x48, 0x65, 0x6C, 0x6C, 0x6F}, Fatal)
	require.NoError(t, err)
	assert.Equal(t, "Hello", string(got))
}

func TestDecodeZoneIdentity(t *testing.T) {
	for b := 0; b <= 0xFF; b++ {
		if b >= 0x80 && b < 0xA0 {
			continue
		}
		got, err := Decode([]int{b}, Fatal)
		require.NoError(t, err)
		require.Equal(t, []rune{rune(b)}, got, "byte 0x%02X", b)
	}
}

func TestDecodeSpecialZone(t *testing.T) {
	tests := []struct {
		b    byte
		want rune
	}{
		{0x80, '€'},
		{0x82, '‚'},
		{0x85, '…'},
		{0x8C, 'Œ'},
		{0x91, '‘'},
		{0x94, '”'},
		{0x99, '™'},
		{0x9F, 'Ÿ'},
	}
	for _, tt := range tests {
		got, err := Decode([]int{int(tt.b)}, Fatal)
		require.NoError(t, err)
		assert.Equal(t, []rune{tt.want}, got, "byte 0x%02X", tt.b)
	}
}

func TestDecodeReplacementTotalCoverage(t *testing.T) {
	for b := 0; b <= 0xFF; b++ {
		got, err := Decode([]int{b}, Replacement)
		require.NoError(t, err, "byte 0x%02X", b)
		require.Len(t, got, 1, "byte 0x%02X", b)
	}
}

func TestDecodeUndefinedBytes(t *testing.T) {
	for b := 0x80; b <= 0x9F; b++ {
		got, err := Decode([]int{b}, Fatal)
		if isUndefined(byte(b)) {
			require.Error(t, err, "byte 0x%02X", b)
			assert.Nil(t, got)

			var undefErr *UndefinedByteError
			require.ErrorAs(t, err, &undefErr)
			assert.Equal(t, byte(b), undefErr.Byte)
		} else {
			require.NoError(t, err, "byte 0x%02X", b)
			require.Len(t, got, 1)
		}
	}
}

func TestDecodeUndefinedByteMessage(t *testing.T) {
	_, err := Decode([]int{0x81}, Fatal)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "0x81")
}

func TestDecodeUndefinedByteReplacement(t *testing.T) {
	got, err := Decode([]int{0x81}, Replacement)
	require.NoError(t, err)
	assert.Equal(t, []rune{'�'}, got)
}

func TestDecodeOutOfRange(t *testing.T) {
	for _, v := range []int{-1, -1000, 256, 1 << 20} {
		_, err := Decode([]int{v}, Fatal)
		require.Error(t, err, "value %d", v)

		var invErr *InvalidByteValueError
		require.ErrorAs(t, err, &invErr)
		assert.Equal(t, v, invErr.Value)
		assert.Contains(t, err.Error(), "0-255")

		got, err := Decode([]int{v}, Replacement)
		require.NoError(t, err)
		assert.Equal(t, []rune{'�'}, got)
	}
}

func TestDecodeFatalIsAtomic(t *testing.T) {
	// A valid prefix must not leak out when a later byte fails.
	got, err := Decode([]int{0x48, 0x65, 0x81, 0x6C}, Fatal)
	require.Error(t, err)
	assert.Nil(t, got)
}

func TestDecodeReplacementLength(t *testing.T) {
	src := []int{0x48, 0x81, -7, 0x80, 300, 0xFF, 0x00}
	got, err := Decode(src, Replacement)
	require.NoError(t, err)
	assert.Len(t, got, len(src))
}

func TestDecodeEmpty(t *testing.T) {
	for _, mode := range []ErrorMode{Replacement, Fatal} {
		got, err := Decode([]int{}, mode)
		require.NoError(t, err)
		assert.Empty(t, got)
	}
}

func TestDecodeDoesNotMutateInput(t *testing.T) {
	src := []int{0x81, 0x48, 400}
	_, err := Decode(src, Replacement)
	require.NoError(t, err)
	assert.Equal(t, []int{0x81, 0x48, 400}, src)
}

func TestDecodeBytes(t *testing.T) {
	got, err := DecodeBytes([]byte{0x80}, Fatal)
	require.NoError(t, err)
	assert.Equal(t, "€", got)

	got, err = DecodeBytes([]byte("Hello"), Fatal)
	require.NoError(t, err)
	assert.Equal(t, "Hello", got)

	_, err = DecodeBytes([]byte{0x48, 0x9D}, Fatal)
	var undefErr *UndefinedByteError
	require.ErrorAs(t, err, &undefErr)
	assert.Equal(t, byte(0x9D), undefErr.Byte)

	got, err = DecodeBytes([]byte{0x48, 0x9D}, Replacement)
	require.NoError(t, err)
	assert.Equal(t, "H�", got)
}

func TestDecodeInjectivity(t *testing.T) {
	seen := map[rune]byte{}
	for b := 0x80; b < 0xA0; b++ {
		if isUndefined(byte(b)) {
			continue
		}
		got, err := Decode([]int{b}, Fatal)
		require.NoError(t, err)
		r := got[0]
		if prev, dup := seen[r]; dup {
			t.Fatalf("bytes 0x%02X and 0x%02X both decode to %U", prev, b, r)
		}
		seen[r] = byte(b)
	}
	assert.Len(t, seen, 27)
}

func BenchmarkDecodeBytes(b *testing.B) {
	src := make([]byte, 4096)
	for i := range src {
		src[i] = byte(i)
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := DecodeBytes(src, Replacement); err != nil {
			b.Fatal(err)
		}
	}
}
