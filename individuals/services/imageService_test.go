package services

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeImageData(t *testing.T) {
	raw := []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a}
	encoded := base64.StdEncoding.EncodeToString(raw)

	t.Run("data URI", func(t *testing.T) {
		decoded, err := DecodeImageData("data:image/png;base64," + encoded)
		require.NoError(t, err)
		assert.Equal(t, raw, decoded)
	})

	t.Run("bare base64", func(t *testing.T) {
		decoded, err := DecodeImageData(encoded)
		require.NoError(t, err)
		assert.Equal(t, raw, decoded)
	})

	t.Run("empty means absent", func(t *testing.T) {
		decoded, err := DecodeImageData("")
		require.NoError(t, err)
		assert.Nil(t, decoded)
	})

	t.Run("malformed base64 is an error", func(t *testing.T) {
		_, err := DecodeImageData("data:image/png;base64,!!!not-base64!!!")
		assert.Error(t, err)
	})

	t.Run("data URI without base64 marker is an error", func(t *testing.T) {
		_, err := DecodeImageData("data:image/png," + encoded)
		assert.Error(t, err)
	})

	t.Run("data URI without payload is an error", func(t *testing.T) {
		_, err := DecodeImageData("data:image/png;base64")
		assert.Error(t, err)
	})
}

func TestEncodeImageData(t *testing.T) {
	assert.Equal(t, "", EncodeImageData(nil))

	raw := []byte{1, 2, 3}
	uri := EncodeImageData(raw)
	decoded, err := DecodeImageData(uri)
	require.NoError(t, err)
	assert.Equal(t, raw, decoded)
}
