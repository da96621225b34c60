package rpc

import (
	"hash/crc32"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerifyChunkAcceptsMatchingCRC32C(t *testing.T) {
	chunk := []byte("the quick brown fox jumps over the lazy dog")
	want := crc32.Checksum(chunk, castagnoliTable)

	assert.True(t, verifyChunk(castagnoliTable, chunk, want))
}

func TestVerifyChunkRejectsMismatch(t *testing.T) {
	chunk := []byte("the quick brown fox jumps over the lazy dog")
	want := crc32.Checksum(chunk, castagnoliTable)

	assert.False(t, verifyChunk(castagnoliTable, chunk, want+1))
}

func TestVerifyChunkDistinguishesCRC32FromCRC32C(t *testing.T) {
	chunk := []byte("payload bytes under test")
	ieee := crc32.Checksum(chunk, crc32.IEEETable)
	castagnoli := crc32.Checksum(chunk, castagnoliTable)

	assert.NotEqual(t, ieee, castagnoli, "test fixture needs a chunk whose IEEE/Castagnoli CRCs differ")
	assert.True(t, verifyChunk(crc32.IEEETable, chunk, ieee))
	assert.False(t, verifyChunk(crc32.IEEETable, chunk, castagnoli))
}
