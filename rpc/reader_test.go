package rpc

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameReaderReadAdvancesAndConcatenates(t *testing.T) {
	fr := newFrameReader(bytes.NewReader([]byte("hello world")))

	first, err := fr.read(5)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), first)

	second, err := fr.read(6)
	require.NoError(t, err)
	assert.Equal(t, []byte(" world"), second)
}

func TestFrameReaderRewindReplaysSuffix(t *testing.T) {
	fr := newFrameReader(bytes.NewReader([]byte("abcdef")))

	probe, err := fr.read(4)
	require.NoError(t, err)
	assert.Equal(t, []byte("abcd"), probe)

	fr.rewind(2)
	replay, err := fr.read(2)
	require.NoError(t, err)
	assert.Equal(t, []byte("cd"), replay)
}

func TestFrameReaderResetClearsBuffer(t *testing.T) {
	fr := newFrameReader(bytes.NewReader([]byte("abcdefgh")))

	_, err := fr.read(4)
	require.NoError(t, err)

	fr.reset()
	next, err := fr.read(4)
	require.NoError(t, err)
	assert.Equal(t, []byte("efgh"), next)
}

// zeroProgressReader always returns (0, nil), simulating a misbehaving
// socket that never errors and never makes progress (spec §9 note c).
type zeroProgressReader struct{}

func (zeroProgressReader) Read(p []byte) (int, error) { return 0, nil }

func TestFrameReaderBoundsZeroProgressReads(t *testing.T) {
	fr := newFrameReader(zeroProgressReader{})

	_, err := fr.read(1)
	require.Error(t, err)
	var transportErr *TransportError
	assert.ErrorAs(t, err, &transportErr)
}
