package rpc

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snakebite-go/hdfs/internal/proto/hadoopcommon"
)

func TestReadUvarintRoundTripsSmallAndLargeValues(t *testing.T) {
	for _, want := range []uint64{0, 1, 127, 128, 300, 1 << 20} {
		var buf [binary.MaxVarintLen64]byte
		n := binary.PutUvarint(buf[:], want)
		// Trailing garbage proves readUvarint consumes exactly the n
		// varint bytes and leaves what follows unread.
		tail := []byte{0xAA, 0xBB, 0xCC}
		fr := newFrameReader(bytes.NewReader(append(buf[:n:n], tail...)))

		got, err := readUvarint(fr)
		require.NoError(t, err)
		assert.Equal(t, want, got)

		rest, err := fr.read(len(tail))
		require.NoError(t, err)
		assert.Equal(t, tail, rest)
	}
}

func TestAppendAndReadDelimitedMessageRoundTrip(t *testing.T) {
	callID := int32(42)
	retry := int32(-1)
	original := &hadoopcommon.RpcRequestHeaderProto{
		CallId:     &callID,
		ClientId:   []byte("0123456789abcdef"),
		RetryCount: &retry,
	}

	buf, err := appendDelimitedMessage(nil, original)
	require.NoError(t, err)

	fr := newFrameReader(bytes.NewReader(buf))
	var decoded hadoopcommon.RpcRequestHeaderProto
	require.NoError(t, readDelimitedMessage(fr, &decoded))

	assert.Equal(t, original.GetCallId(), decoded.GetCallId())
	assert.Equal(t, original.GetClientId(), decoded.GetClientId())
	assert.Equal(t, original.GetRetryCount(), decoded.GetRetryCount())
}
