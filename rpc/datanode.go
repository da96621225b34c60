package rpc

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"io"
	"net"

	proto "github.com/golang/protobuf/proto"

	"github.com/snakebite-go/hdfs/internal/proto/hadoophdfs"
)

// Data Transfer protocol constants (spec §4.G step 1).
const (
	dataTransferVersion uint16 = 28
	opReadBlock         byte   = 81
)

// DatanodeBlockStream is a single DataNode block read pipeline: one TCP
// connection, opened against one replica, delivering exactly the bytes of
// one [offset, offset+length) window of one block (spec §4.G).
//
// It owns packet parsing and per-chunk checksum verification; it does not
// own replica selection or retry across replicas, which is
// rpc/block_reader.go's job (spec §4.H).
type DatanodeBlockStream struct {
	conn net.Conn
	fr   *frameReader

	chunkSize int
	checkCRC  bool
	crcTable  *crc32.Table

	blockID   uint64
	remaining int64 // bytes still owed to the caller

	packetBuf []byte // undelivered, checksum-verified bytes of the current packet

	metrics *Metrics
}

// DialDatanodeBlockStream opens conn to a DataNode replica, issues
// OP_READ_BLOCK for [offset, offset+length) of block, and returns a stream
// positioned to deliver exactly those bytes, having silently discarded
// whatever chunk-alignment padding the DataNode sent ahead of offset.
//
// conn is not closed on error; the caller owns it (the block-read
// coordinator dials into a fresh connection per replica attempt).
func DialDatanodeBlockStream(conn net.Conn, block *hadoophdfs.LocatedBlockProto, offset, length uint64, checkCRC bool, metrics *Metrics) (*DatanodeBlockStream, error) {
	if err := sendReadBlockRequest(conn, block, offset, length); err != nil {
		return nil, err
	}

	fr := newFrameReader(conn)
	resp := &hadoophdfs.BlockOpResponseProto{}
	if err := readDelimitedMessage(fr, resp); err != nil {
		return nil, &ConnectionFailureError{Addr: conn.RemoteAddr().String(), Err: err}
	}

	if resp.GetStatus() != hadoophdfs.Status_SUCCESS {
		return nil, &ConnectionFailureError{
			Addr: conn.RemoteAddr().String(),
			Err:  fmt.Errorf("datanode rejected read: %s: %s", resp.GetStatus(), resp.GetMessage()),
		}
	}

	readInfo := resp.GetReadOpChecksumInfo()
	checksumInfo := readInfo.GetChecksum()

	var crcTable *crc32.Table
	switch checksumInfo.GetType() {
	case hadoophdfs.ChecksumTypeProto_CHECKSUM_CRC32:
		crcTable = crc32.IEEETable
	case hadoophdfs.ChecksumTypeProto_CHECKSUM_CRC32C:
		crcTable = castagnoliTable
	case hadoophdfs.ChecksumTypeProto_CHECKSUM_NULL:
		if checkCRC {
			return nil, &ConnectionFailureError{
				Addr: conn.RemoteAddr().String(),
				Err:  fmt.Errorf("datanode offered no checksums but verification was requested"),
			}
		}
	default:
		return nil, &ConnectionFailureError{
			Addr: conn.RemoteAddr().String(),
			Err:  fmt.Errorf("unsupported checksum type: %s", checksumInfo.GetType()),
		}
	}

	s := &DatanodeBlockStream{
		conn:      conn,
		fr:        fr,
		chunkSize: int(checksumInfo.GetBytesPerChecksum()),
		checkCRC:  checkCRC && checksumInfo.GetType() != hadoophdfs.ChecksumTypeProto_CHECKSUM_NULL,
		crcTable:  crcTable,
		blockID:   block.GetB().GetBlockId(),
		remaining: int64(length),
		metrics:   metrics,
	}

	discard := int64(offset) - int64(readInfo.GetChunkOffset())
	if discard > 0 {
		if err := s.discard(discard); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// sendReadBlockRequest writes the fixed 3-byte prologue and the
// varint-delimited OpReadBlockProto (spec §4.G step 1).
func sendReadBlockRequest(w io.Writer, block *hadoophdfs.LocatedBlockProto, offset, length uint64) error {
	prologue := make([]byte, 3)
	binary.BigEndian.PutUint16(prologue, dataTransferVersion)
	prologue[2] = opReadBlock

	clientName := ClientName
	op := &hadoophdfs.OpReadBlockProto{
		Header: &hadoophdfs.ClientOperationHeaderProto{
			BaseHeader: &hadoophdfs.BaseHeaderProto{
				Block: block.GetB(),
				Token: block.GetBlockToken(),
			},
			ClientName: &clientName,
		},
		Offset: &offset,
		Len:    &length,
	}

	body, err := appendDelimitedMessage(nil, op)
	if err != nil {
		return fmt.Errorf("rpc: marshal OpReadBlockProto: %w", err)
	}

	if _, err := w.Write(append(prologue, body...)); err != nil {
		return &TransportError{Op: "write read block request", Err: err}
	}
	return nil
}

// Read implements io.Reader, delivering exactly the [offset, offset+length)
// window requested at Dial time.
func (s *DatanodeBlockStream) Read(p []byte) (int, error) {
	for len(s.packetBuf) == 0 {
		if s.remaining <= 0 {
			s.finish()
			return 0, io.EOF
		}
		payload, err := s.nextPacket()
		if err != nil {
			return 0, err
		}
		s.packetBuf = payload
	}

	n := copy(p, s.packetBuf)
	if int64(n) > s.remaining {
		n = int(s.remaining)
	}
	s.packetBuf = s.packetBuf[n:]
	s.remaining -= int64(n)
	s.metrics.addBytesRead(n)
	return n, nil
}

// discard reads and drops n bytes ahead of the requested window, to skip
// the chunk-alignment padding a DataNode sends before the first byte
// actually asked for.
func (s *DatanodeBlockStream) discard(n int64) error {
	for n > 0 {
		payload, err := s.nextPacket()
		if err != nil {
			return err
		}
		if int64(len(payload)) > n {
			s.packetBuf = payload[n:]
			return nil
		}
		n -= int64(len(payload))
	}
	return nil
}

// nextPacket reads and checksum-verifies one packet off the wire, per the
// layout in spec §4.G step 3.
func (s *DatanodeBlockStream) nextPacket() ([]byte, error) {
	lenBuf, err := s.fr.read(4)
	if err != nil {
		return nil, &TransportError{Op: "read packet length", Err: err}
	}
	packetLen := int(binary.BigEndian.Uint32(lenBuf))

	hdrSizeBuf, err := s.fr.read(2)
	if err != nil {
		return nil, &TransportError{Op: "read packet header size", Err: err}
	}
	hdrSize := int(binary.BigEndian.Uint16(hdrSizeBuf))

	hdrBuf, err := s.fr.read(hdrSize)
	if err != nil {
		return nil, &TransportError{Op: "read packet header", Err: err}
	}
	header := &hadoophdfs.PacketHeaderProto{}
	if err := proto.Unmarshal(hdrBuf, header); err != nil {
		return nil, fmt.Errorf("rpc: unmarshal PacketHeaderProto: %w", err)
	}

	dataLen := int(header.GetDataLen())
	numChunks := 0
	if s.chunkSize > 0 {
		numChunks = (dataLen + s.chunkSize - 1) / s.chunkSize
	}

	checksumBuf, err := s.fr.read(numChunks * 4)
	if err != nil {
		return nil, &TransportError{Op: "read packet checksums", Err: err}
	}

	payloadLen := packetLen - 4 - numChunks*4
	if payloadLen < 0 {
		return nil, fmt.Errorf("rpc: malformed packet: negative payload length")
	}
	payload, err := s.fr.read(payloadLen)
	if err != nil {
		return nil, &TransportError{Op: "read packet payload", Err: err}
	}

	if s.checkCRC {
		for i := 0; i < numChunks; i++ {
			start := i * s.chunkSize
			end := start + s.chunkSize
			if end > len(payload) {
				end = len(payload)
			}
			want := binary.BigEndian.Uint32(checksumBuf[i*4 : i*4+4])
			if !verifyChunk(s.crcTable, payload[start:end], want) {
				s.metrics.incChecksumErrors()
				return nil, &ChecksumError{BlockID: s.blockID, ChunkOff: header.GetOffsetInBlock() + int64(start)}
			}
		}
	}

	s.fr.reset()
	return payload, nil
}

// finish sends the terminal ClientReadStatusProto (spec §4.G step 4). It
// does not close the connection; the caller owns that.
func (s *DatanodeBlockStream) finish() error {
	status := hadoophdfs.Status_SUCCESS
	msg := &hadoophdfs.ClientReadStatusProto{Status: &status}
	body, err := appendDelimitedMessage(nil, msg)
	if err != nil {
		return err
	}
	_, err = s.conn.Write(body)
	return err
}
