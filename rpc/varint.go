package rpc

import (
	"encoding/binary"
	"fmt"

	proto "github.com/golang/protobuf/proto"
)

// maxVarintBytes bounds a 32-bit protobuf varint: at most 5 bytes, matching
// encoding/binary.MaxVarintLen32.
const maxVarintBytes = binary.MaxVarintLen32

// readUvarint decodes a varint-prefixed length off r one byte at a time,
// stopping at the first byte without the continuation bit, so it never
// reads past the varint itself: a short message at the end of a frame is
// decoded without waiting for bytes the peer will not send (spec §4.B).
func readUvarint(r *frameReader) (uint64, error) {
	var value uint64
	for i := 0; i < maxVarintBytes; i++ {
		b, err := r.read(1)
		if err != nil {
			return 0, err
		}
		value |= uint64(b[0]&0x7f) << (7 * uint(i))
		if b[0] < 0x80 {
			return value, nil
		}
	}
	return 0, fmt.Errorf("rpc: malformed varint")
}

// readDelimitedMessage reads a varint(len) || msg frame off r and unmarshals
// msg into m.
func readDelimitedMessage(r *frameReader, m proto.Message) error {
	length, err := readUvarint(r)
	if err != nil {
		return err
	}

	raw, err := r.read(int(length))
	if err != nil {
		return err
	}

	return proto.Unmarshal(raw, m)
}

// appendDelimitedMessage marshals m and appends varint(len(m)) || m to buf.
func appendDelimitedMessage(buf []byte, m proto.Message) ([]byte, error) {
	raw, err := proto.Marshal(m)
	if err != nil {
		return nil, err
	}

	var lenBuf [maxVarintBytes]byte
	n := binary.PutUvarint(lenBuf[:], uint64(len(raw)))
	buf = append(buf, lenBuf[:n]...)
	buf = append(buf, raw...)
	return buf, nil
}
