package container

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	salt := bytes.Repeat([]byte{0xA5}, SaltSize)
	ciphertext := []byte("not really ciphertext, but opaque bytes")

	raw, err := Encode(salt, FlagDirectory|FlagCompressed, ciphertext)
	require.NoError(t, err)
	assert.Len(t, raw, HeaderSize+len(ciphertext))

	gotSalt, gotFlags, gotCT, err := Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, salt, gotSalt)
	assert.Equal(t, ciphertext, gotCT)
	assert.True(t, gotFlags.IsDirectory())
	assert.True(t, gotFlags.IsCompressed())
}

func TestEncode_RejectsBadSalt(t *testing.T) {
	_, err := Encode([]byte{0x01}, 0, []byte("ct"))
	require.Error(t, err)
}

func TestDecode_EmptyCiphertextAllowed(t *testing.T) {
	// A header with no ciphertext decodes; the marker check downstream is
	// what rejects it.
	salt := bytes.Repeat([]byte{0x01}, SaltSize)
	raw, err := Encode(salt, 0, nil)
	require.NoError(t, err)

	_, flags, ct, err := Decode(raw)
	require.NoError(t, err)
	assert.Empty(t, ct)
	assert.False(t, flags.IsDirectory())
	assert.False(t, flags.IsCompressed())
}

func TestDecode_TooShortIsMalformed(t *testing.T) {
	for size := 0; size < HeaderSize; size++ {
		_, _, _, err := Decode(bytes.Repeat([]byte{0x00}, size))
		assert.ErrorIs(t, err, ErrMalformedContainer, "size %d", size)
	}
}

func TestWrapUnwrapPayload_RoundTrip(t *testing.T) {
	payload := []byte("directory bytes or file bytes")

	plain := WrapPayload(payload)
	assert.Len(t, plain, MarkerSize+len(payload))

	got, err := UnwrapPayload(plain)
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestUnwrapPayload_EmptyPayload(t *testing.T) {
	got, err := UnwrapPayload(WrapPayload(nil))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestUnwrapPayload_BadMarker(t *testing.T) {
	cases := [][]byte{
		nil,
		[]byte("short"),
		[]byte("WRONGMK\npayload"),
		bytes.Repeat([]byte{0x00}, MarkerSize),
	}

	for _, plain := range cases {
		_, err := UnwrapPayload(plain)
		assert.ErrorIs(t, err, ErrAuthenticationFailed)
	}
}

func TestFlags_Bits(t *testing.T) {
	var f Flags
	assert.False(t, f.IsDirectory())
	assert.False(t, f.IsCompressed())

	f = FlagDirectory
	assert.True(t, f.IsDirectory())
	assert.False(t, f.IsCompressed())

	f = FlagCompressed
	assert.False(t, f.IsDirectory())
	assert.True(t, f.IsCompressed())
}
