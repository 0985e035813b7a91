package ctcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestEncodePrefixShortOnlyTransition(t *testing.T) {
	shortOnly := false
	var lengths []int
	for i := 0; i < 3; i++ {
		p, wasLong, err := encodePrefix(128, shortOnly, DefaultKey)
		require.NoError(t, err)
		lengths = append(lengths, len(p))
		if wasLong {
			shortOnly = true
		}
	}
	assert.Equal(t, []int{6, 3, 3}, lengths)
}

func TestPrefixRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		key := rapid.Uint32().Draw(t, "key")
		l := rapid.IntRange(1, int(base94Modulus)-1).Draw(t, "length")
		shortOnly := rapid.Bool().Draw(t, "shortOnly")

		encoded, wasLong, err := encodePrefix(l, shortOnly, key)
		require.NoError(t, err)
		assert.Equal(t, !shortOnly, wasLong)

		gotLen, consumed, gotWasLong, err := decodePrefix(encoded, shortOnly, key)
		require.NoError(t, err)
		assert.Equal(t, l, gotLen)
		assert.Equal(t, len(encoded), consumed)
		assert.Equal(t, wasLong, gotWasLong)
	})
}

func TestEncodePrefixRejectsZeroLength(t *testing.T) {
	_, _, err := encodePrefix(0, false, DefaultKey)
	require.ErrorIs(t, err, ErrPayloadEmpty)
}

func TestEncodePrefixRejectsTooLong(t *testing.T) {
	_, _, err := encodePrefix(int(base94Modulus), false, DefaultKey)
	require.Error(t, err)
	var tooLong PayloadTooLongError
	require.ErrorAs(t, err, &tooLong)
}

func TestDecodePrefixShortReadFails(t *testing.T) {
	_, _, _, err := decodePrefix([]byte{0x20, 0x20}, false, DefaultKey)
	require.Error(t, err)
}

func TestDecodePrefixBadChecksum(t *testing.T) {
	encoded, _, err := encodePrefix(128, false, DefaultKey)
	require.NoError(t, err)
	tampered := append([]byte(nil), encoded...)
	tampered[5] ^= 0x01
	if tampered[5] < 0x20 || tampered[5] > 0x7e {
		tampered[5] = 0x21
	}
	_, _, _, err = decodePrefix(tampered, false, DefaultKey)
	require.Error(t, err)
}
