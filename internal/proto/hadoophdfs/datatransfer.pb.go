package hadoophdfs

import (
	fmt "fmt"

	proto "github.com/golang/protobuf/proto"

	"github.com/snakebite-go/hdfs/internal/proto/hadoopcommon"
)

// Status enumerates a DataNode's per-op and per-packet-ack outcome.
type Status int32

const (
	Status_SUCCESS            Status = 0
	Status_ERROR              Status = 1
	Status_ERROR_CHECKSUM     Status = 2
	Status_ERROR_INVALID      Status = 3
	Status_ERROR_EXISTS       Status = 4
	Status_ERROR_ACCESS_TOKEN Status = 5
	Status_CHECKSUM_OK        Status = 6
)

func (x Status) String() string {
	switch x {
	case Status_SUCCESS:
		return "SUCCESS"
	case Status_ERROR:
		return "ERROR"
	case Status_ERROR_CHECKSUM:
		return "ERROR_CHECKSUM"
	case Status_ERROR_INVALID:
		return "ERROR_INVALID"
	case Status_ERROR_EXISTS:
		return "ERROR_EXISTS"
	case Status_ERROR_ACCESS_TOKEN:
		return "ERROR_ACCESS_TOKEN"
	case Status_CHECKSUM_OK:
		return "CHECKSUM_OK"
	}
	return fmt.Sprintf("Status(%d)", int32(x))
}

// BaseHeaderProto identifies the block and presents its access token.
type BaseHeaderProto struct {
	Block                *ExtendedBlockProto      `protobuf:"bytes,1,req,name=block" json:"block,omitempty"`
	Token                *hadoopcommon.TokenProto `protobuf:"bytes,2,opt,name=token" json:"token,omitempty"`
	XXX_NoUnkeyedLiteral struct{}                 `json:"-"`
}

func (m *BaseHeaderProto) Reset()         { *m = BaseHeaderProto{} }
func (m *BaseHeaderProto) String() string { return proto.CompactTextString(m) }
func (*BaseHeaderProto) ProtoMessage()    {}

func (m *BaseHeaderProto) GetBlock() *ExtendedBlockProto {
	if m != nil {
		return m.Block
	}
	return nil
}

func (m *BaseHeaderProto) GetToken() *hadoopcommon.TokenProto {
	if m != nil {
		return m.Token
	}
	return nil
}

// ClientOperationHeaderProto adds the issuing client's name to the base
// header; every DataNode op that originates from a client carries one.
type ClientOperationHeaderProto struct {
	BaseHeader           *BaseHeaderProto `protobuf:"bytes,1,req,name=baseHeader" json:"baseHeader,omitempty"`
	ClientName           *string          `protobuf:"bytes,2,req,name=clientName" json:"clientName,omitempty"`
	XXX_NoUnkeyedLiteral struct{}         `json:"-"`
}

func (m *ClientOperationHeaderProto) Reset()         { *m = ClientOperationHeaderProto{} }
func (m *ClientOperationHeaderProto) String() string { return proto.CompactTextString(m) }
func (*ClientOperationHeaderProto) ProtoMessage()    {}

func (m *ClientOperationHeaderProto) GetBaseHeader() *BaseHeaderProto {
	if m != nil {
		return m.BaseHeader
	}
	return nil
}

// OpReadBlockProto is the op-specific payload sent after the 2-byte version
// and 1-byte opcode (spec §4.G step 1 / §6.2).
type OpReadBlockProto struct {
	Header               *ClientOperationHeaderProto `protobuf:"bytes,1,req,name=header" json:"header,omitempty"`
	Offset               *uint64                     `protobuf:"varint,2,req,name=offset" json:"offset,omitempty"`
	Len                  *uint64                     `protobuf:"varint,3,req,name=len" json:"len,omitempty"`
	SendChecksums        *bool                       `protobuf:"varint,4,opt,name=sendChecksums,def=1" json:"sendChecksums,omitempty"`
	XXX_NoUnkeyedLiteral struct{}                    `json:"-"`
}

func (m *OpReadBlockProto) Reset()         { *m = OpReadBlockProto{} }
func (m *OpReadBlockProto) String() string { return proto.CompactTextString(m) }
func (*OpReadBlockProto) ProtoMessage()    {}

// ChecksumProto describes the per-chunk checksum algorithm and chunk size
// in force for a block transfer.
type ChecksumProto struct {
	Type                 *ChecksumTypeProto `protobuf:"varint,1,req,name=type,enum=hadoop.hdfs.ChecksumTypeProto" json:"type,omitempty"`
	BytesPerChecksum     *uint32            `protobuf:"varint,2,req,name=bytesPerChecksum" json:"bytesPerChecksum,omitempty"`
	XXX_NoUnkeyedLiteral struct{}           `json:"-"`
}

func (m *ChecksumProto) Reset()         { *m = ChecksumProto{} }
func (m *ChecksumProto) String() string { return proto.CompactTextString(m) }
func (*ChecksumProto) ProtoMessage()    {}

func (m *ChecksumProto) GetType() ChecksumTypeProto {
	if m != nil && m.Type != nil {
		return *m.Type
	}
	return ChecksumTypeProto_CHECKSUM_NULL
}

func (m *ChecksumProto) GetBytesPerChecksum() uint32 {
	if m != nil && m.BytesPerChecksum != nil {
		return *m.BytesPerChecksum
	}
	return 0
}

// ReadOpChecksumInfoProto tells the reader where the stream's first chunk
// actually starts (it is always chunk-aligned, which may be before the
// requested offset).
type ReadOpChecksumInfoProto struct {
	Checksum             *ChecksumProto `protobuf:"bytes,1,req,name=checksum" json:"checksum,omitempty"`
	ChunkOffset          *uint64        `protobuf:"varint,2,req,name=chunkOffset" json:"chunkOffset,omitempty"`
	XXX_NoUnkeyedLiteral struct{}       `json:"-"`
}

func (m *ReadOpChecksumInfoProto) Reset()         { *m = ReadOpChecksumInfoProto{} }
func (m *ReadOpChecksumInfoProto) String() string { return proto.CompactTextString(m) }
func (*ReadOpChecksumInfoProto) ProtoMessage()    {}

func (m *ReadOpChecksumInfoProto) GetChecksum() *ChecksumProto {
	if m != nil {
		return m.Checksum
	}
	return nil
}

func (m *ReadOpChecksumInfoProto) GetChunkOffset() uint64 {
	if m != nil && m.ChunkOffset != nil {
		return *m.ChunkOffset
	}
	return 0
}

// BlockOpResponseProto is the DataNode's reply to any op request.
type BlockOpResponseProto struct {
	Status               *Status                  `protobuf:"varint,1,req,name=status,enum=hadoop.hdfs.Status" json:"status,omitempty"`
	ReadOpChecksumInfo   *ReadOpChecksumInfoProto `protobuf:"bytes,4,opt,name=readOpChecksumInfo" json:"readOpChecksumInfo,omitempty"`
	Message              *string                  `protobuf:"bytes,5,opt,name=message" json:"message,omitempty"`
	XXX_NoUnkeyedLiteral struct{}                 `json:"-"`
}

func (m *BlockOpResponseProto) Reset()         { *m = BlockOpResponseProto{} }
func (m *BlockOpResponseProto) String() string { return proto.CompactTextString(m) }
func (*BlockOpResponseProto) ProtoMessage()    {}

func (m *BlockOpResponseProto) GetStatus() Status {
	if m != nil && m.Status != nil {
		return *m.Status
	}
	return Status_SUCCESS
}

func (m *BlockOpResponseProto) GetReadOpChecksumInfo() *ReadOpChecksumInfoProto {
	if m != nil {
		return m.ReadOpChecksumInfo
	}
	return nil
}

func (m *BlockOpResponseProto) GetMessage() string {
	if m != nil && m.Message != nil {
		return *m.Message
	}
	return ""
}

// PacketHeaderProto precedes every data packet in the stream (spec §6.2).
type PacketHeaderProto struct {
	OffsetInBlock        *int64   `protobuf:"varint,1,req,name=offsetInBlock" json:"offsetInBlock,omitempty"`
	Seqno                *int64   `protobuf:"varint,2,req,name=seqno" json:"seqno,omitempty"`
	LastPacketInBlock    *bool    `protobuf:"varint,3,req,name=lastPacketInBlock" json:"lastPacketInBlock,omitempty"`
	DataLen              *int32   `protobuf:"varint,4,req,name=dataLen" json:"dataLen,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
}

func (m *PacketHeaderProto) Reset()         { *m = PacketHeaderProto{} }
func (m *PacketHeaderProto) String() string { return proto.CompactTextString(m) }
func (*PacketHeaderProto) ProtoMessage()    {}

func (m *PacketHeaderProto) GetOffsetInBlock() int64 {
	if m != nil && m.OffsetInBlock != nil {
		return *m.OffsetInBlock
	}
	return 0
}

func (m *PacketHeaderProto) GetSeqno() int64 {
	if m != nil && m.Seqno != nil {
		return *m.Seqno
	}
	return 0
}

func (m *PacketHeaderProto) GetLastPacketInBlock() bool {
	if m != nil && m.LastPacketInBlock != nil {
		return *m.LastPacketInBlock
	}
	return false
}

func (m *PacketHeaderProto) GetDataLen() int32 {
	if m != nil && m.DataLen != nil {
		return *m.DataLen
	}
	return 0
}

// ClientReadStatusProto is sent once the client has consumed len() bytes,
// to let the DataNode tear down the pipeline (spec §4.G step 4).
type ClientReadStatusProto struct {
	Status               *Status  `protobuf:"varint,1,req,name=status,enum=hadoop.hdfs.Status" json:"status,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
}

func (m *ClientReadStatusProto) Reset()         { *m = ClientReadStatusProto{} }
func (m *ClientReadStatusProto) String() string { return proto.CompactTextString(m) }
func (*ClientReadStatusProto) ProtoMessage()    {}
