package compress

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func repeatingPayload(n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = byte(i % 7)
	}
	return out
}

func TestCompressBlockRoundTrip(t *testing.T) {
	data := repeatingPayload(4096)
	compressed, used, err := CompressBlock(data)
	require.NoError(t, err)
	require.True(t, used)

	plain, err := DecompressBlock(compressed, len(data))
	require.NoError(t, err)
	assert.True(t, bytes.Equal(data, plain))
}

func TestCompressBlockTinyInputStaysRaw(t *testing.T) {
	data := []byte{1, 2, 3}
	_, used, err := CompressBlock(data)
	require.NoError(t, err)
	assert.False(t, used)
}

func TestCompressAllDecompressAllRoundTrip(t *testing.T) {
	payload := repeatingPayload(4096 * 5)
	blocks, err := CompressAll(context.Background(), payload, 4096, 4)
	require.NoError(t, err)
	require.Len(t, blocks, 5)

	out, err := DecompressAll(context.Background(), blocks, 4096, len(payload), 4)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(payload, out))
}
