package rpc

import (
	"encoding/binary"
	"hash/crc32"
	"io"
	"net"
	"testing"

	proto "github.com/golang/protobuf/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snakebite-go/hdfs/internal/proto/hadoophdfs"
)

// writeFakeDatanodePacketCorrupt writes one packet a fake DataNode sends back, chunked at
// chunkSize bytes per the negotiated ChecksumProto (spec §4.G step 3).
// corruptByte, if >= 0, is a byte offset into data that is flipped on the
// wire after checksums are computed over the original bytes, simulating
// transit corruption a checksum-verifying reader must catch.
func writeFakeDatanodePacketCorrupt(t *testing.T, conn net.Conn, offsetInBlock int64, seqno int64, last bool, data []byte, chunkSize int, table *crc32.Table, corruptByte int) {
	t.Helper()

	numChunks := 0
	if chunkSize > 0 && len(data) > 0 {
		numChunks = (len(data) + chunkSize - 1) / chunkSize
	}

	checksums := make([]byte, numChunks*4)
	for i := 0; i < numChunks; i++ {
		start := i * chunkSize
		end := start + chunkSize
		if end > len(data) {
			end = len(data)
		}
		sum := crc32.Checksum(data[start:end], table)
		binary.BigEndian.PutUint32(checksums[i*4:i*4+4], sum)
	}

	wireData := data
	if corruptByte >= 0 {
		wireData = append([]byte{}, data...)
		wireData[corruptByte] ^= 0xFF
	}

	offset := offsetInBlock
	seq := seqno
	lastFlag := last
	dataLen := int32(len(data))
	header := &hadoophdfs.PacketHeaderProto{
		OffsetInBlock:     &offset,
		Seqno:             &seq,
		LastPacketInBlock: &lastFlag,
		DataLen:           &dataLen,
	}
	hdrBytes, err := protoMarshalForTest(header)
	require.NoError(t, err)

	packetLen := 4 + len(checksums) + len(wireData)

	frame := make([]byte, 0, 4+2+len(hdrBytes)+len(checksums)+len(wireData))
	lenBuf := make([]byte, 4)
	binary.BigEndian.PutUint32(lenBuf, uint32(packetLen))
	frame = append(frame, lenBuf...)

	hdrSizeBuf := make([]byte, 2)
	binary.BigEndian.PutUint16(hdrSizeBuf, uint16(len(hdrBytes)))
	frame = append(frame, hdrSizeBuf...)

	frame = append(frame, hdrBytes...)
	frame = append(frame, checksums...)
	frame = append(frame, wireData...)

	_, err = conn.Write(frame)
	require.NoError(t, err)
}

func writeFakeDatanodePacket(t *testing.T, conn net.Conn, offsetInBlock int64, seqno int64, last bool, data []byte, chunkSize int, table *crc32.Table) {
	t.Helper()
	writeFakeDatanodePacketCorrupt(t, conn, offsetInBlock, seqno, last, data, chunkSize, table, -1)
}

// listenFakeDatanode opens a real TCP listener and serves exactly one
// OP_READ_BLOCK request, replying with the checksum info and packets
// produced by writePackets (spec §4.G).
func listenFakeDatanode(t *testing.T, writePackets func(conn net.Conn, chunkSize int, table *crc32.Table)) net.Conn {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { ln.Close() })

	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()

		prologue := make([]byte, 3)
		if _, err := io.ReadFull(conn, prologue); err != nil {
			return
		}
		fr := newFrameReader(conn)
		req := &hadoophdfs.OpReadBlockProto{}
		if err := readDelimitedMessage(fr, req); err != nil {
			return
		}

		status := hadoophdfs.Status_SUCCESS
		checksumType := hadoophdfs.ChecksumTypeProto_CHECKSUM_CRC32C
		bytesPerChecksum := uint32(512)
		chunkOffset := uint64(0)
		resp := &hadoophdfs.BlockOpResponseProto{
			Status: &status,
			ReadOpChecksumInfo: &hadoophdfs.ReadOpChecksumInfoProto{
				Checksum: &hadoophdfs.ChecksumProto{
					Type:             &checksumType,
					BytesPerChecksum: &bytesPerChecksum,
				},
				ChunkOffset: &chunkOffset,
			},
		}
		body, err := appendDelimitedMessage(nil, resp)
		if err != nil {
			return
		}
		if _, err := conn.Write(body); err != nil {
			return
		}

		writePackets(conn, int(bytesPerChecksum), castagnoliTable)
	}()

	client, err := net.Dial("tcp", ln.Addr().String())
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })
	return client
}

// protoMarshalForTest marshals a packet header with no varint length
// prefix: on the wire its only framing is the 2-byte header size written
// ahead of it (spec §4.G step 3).
func protoMarshalForTest(header *hadoophdfs.PacketHeaderProto) ([]byte, error) {
	return proto.Marshal(header)
}

func testBlock(blockID uint64, numBytes uint64) *hadoophdfs.LocatedBlockProto {
	poolID := "pool-0"
	genStamp := uint64(1)
	return &hadoophdfs.LocatedBlockProto{
		B: &hadoophdfs.ExtendedBlockProto{
			PoolId:          &poolID,
			BlockId:         &blockID,
			GenerationStamp: &genStamp,
			NumBytes:        &numBytes,
		},
	}
}

func TestDialDatanodeBlockStreamReadsExactWindowWithChecksums(t *testing.T) {
	want := []byte("the quick brown fox jumps over the lazy dog")
	conn := listenFakeDatanode(t, func(c net.Conn, chunkSize int, table *crc32.Table) {
		writeFakeDatanodePacket(t, c, 0, 0, false, want, chunkSize, table)
		writeFakeDatanodePacket(t, c, int64(len(want)), 1, true, nil, chunkSize, table)
	})

	stream, err := DialDatanodeBlockStream(conn, testBlock(1, uint64(len(want))), 0, uint64(len(want)), true, defaultMetrics)
	require.NoError(t, err)

	got, err := io.ReadAll(stream)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestDialDatanodeBlockStreamDetectsChecksumMismatch(t *testing.T) {
	data := []byte("this payload will be corrupted in transit")
	conn := listenFakeDatanode(t, func(c net.Conn, chunkSize int, table *crc32.Table) {
		writeFakeDatanodePacketCorrupt(t, c, 0, 0, true, data, chunkSize, table, 3)
	})

	stream, err := DialDatanodeBlockStream(conn, testBlock(1, uint64(len(data))), 0, uint64(len(data)), true, defaultMetrics)
	require.NoError(t, err)

	_, err = io.ReadAll(stream)
	require.Error(t, err)

	var checksumErr *ChecksumError
	assert.ErrorAs(t, err, &checksumErr)
	assert.Equal(t, uint64(1), checksumErr.BlockID)
}

func TestDialDatanodeBlockStreamDiscardsChunkAlignmentPadding(t *testing.T) {
	chunkSize := 512
	padding := make([]byte, chunkSize)
	for i := range padding {
		padding[i] = 'p'
	}
	want := []byte("wanted bytes after the padding")
	full := append(append([]byte{}, padding...), want...)

	conn := listenFakeDatanode(t, func(c net.Conn, cs int, table *crc32.Table) {
		writeFakeDatanodePacket(t, c, 0, 0, true, full, cs, table)
	})

	stream, err := DialDatanodeBlockStream(conn, testBlock(1, uint64(len(full))), uint64(len(padding)), uint64(len(want)), true, defaultMetrics)
	require.NoError(t, err)

	got, err := io.ReadAll(stream)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
