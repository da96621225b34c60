// Package hadoophdfs holds hand-maintained protoc-gen-go v1-shaped bindings
// for the subset of hdfs.proto / ClientNamenodeProtocol.proto /
// datatransfer.proto that the filesystem-operation layer and the block
// read pipeline exercise. As with hadoopcommon, the schemas are an
// external fixed contract (spec §1); only the messages actually put on
// the wire by this client are reproduced here.
package hadoophdfs

import (
	fmt "fmt"

	proto "github.com/golang/protobuf/proto"

	"github.com/snakebite-go/hdfs/internal/proto/hadoopcommon"
)

// HdfsFileStatusProto_FileType distinguishes directories, files and
// symlinks in a status response.
type HdfsFileStatusProto_FileType int32

const (
	HdfsFileStatusProto_IS_DIR     HdfsFileStatusProto_FileType = 1
	HdfsFileStatusProto_IS_FILE    HdfsFileStatusProto_FileType = 2
	HdfsFileStatusProto_IS_SYMLINK HdfsFileStatusProto_FileType = 3
)

func (x HdfsFileStatusProto_FileType) String() string {
	switch x {
	case HdfsFileStatusProto_IS_DIR:
		return "IS_DIR"
	case HdfsFileStatusProto_IS_FILE:
		return "IS_FILE"
	case HdfsFileStatusProto_IS_SYMLINK:
		return "IS_SYMLINK"
	}
	return fmt.Sprintf("FileType(%d)", int32(x))
}

// ChecksumTypeProto enumerates the block checksum algorithms a DataNode may
// report; see spec §4.G step 2.
type ChecksumTypeProto int32

const (
	ChecksumTypeProto_CHECKSUM_NULL   ChecksumTypeProto = 0
	ChecksumTypeProto_CHECKSUM_CRC32  ChecksumTypeProto = 1
	ChecksumTypeProto_CHECKSUM_CRC32C ChecksumTypeProto = 2
)

func (x ChecksumTypeProto) String() string {
	switch x {
	case ChecksumTypeProto_CHECKSUM_NULL:
		return "CHECKSUM_NULL"
	case ChecksumTypeProto_CHECKSUM_CRC32:
		return "CHECKSUM_CRC32"
	case ChecksumTypeProto_CHECKSUM_CRC32C:
		return "CHECKSUM_CRC32C"
	}
	return fmt.Sprintf("ChecksumTypeProto(%d)", int32(x))
}

// FsPermissionProto wraps the 16-bit POSIX-style permission word.
type FsPermissionProto struct {
	Perm                 *uint32  `protobuf:"varint,1,req,name=perm" json:"perm,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
}

func (m *FsPermissionProto) Reset()         { *m = FsPermissionProto{} }
func (m *FsPermissionProto) String() string { return proto.CompactTextString(m) }
func (*FsPermissionProto) ProtoMessage()    {}

func (m *FsPermissionProto) GetPerm() uint32 {
	if m != nil && m.Perm != nil {
		return *m.Perm
	}
	return 0
}

// ExtendedBlockProto identifies one block: which pool, which block id, and
// at which generation stamp.
type ExtendedBlockProto struct {
	PoolId               *string  `protobuf:"bytes,1,req,name=poolId" json:"poolId,omitempty"`
	BlockId              *uint64  `protobuf:"varint,2,req,name=blockId" json:"blockId,omitempty"`
	GenerationStamp      *uint64  `protobuf:"varint,3,req,name=generationStamp" json:"generationStamp,omitempty"`
	NumBytes             *uint64  `protobuf:"varint,4,opt,name=numBytes,def=0" json:"numBytes,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
}

func (m *ExtendedBlockProto) Reset()         { *m = ExtendedBlockProto{} }
func (m *ExtendedBlockProto) String() string { return proto.CompactTextString(m) }
func (*ExtendedBlockProto) ProtoMessage()    {}

func (m *ExtendedBlockProto) GetPoolId() string {
	if m != nil && m.PoolId != nil {
		return *m.PoolId
	}
	return ""
}

func (m *ExtendedBlockProto) GetBlockId() uint64 {
	if m != nil && m.BlockId != nil {
		return *m.BlockId
	}
	return 0
}

func (m *ExtendedBlockProto) GetGenerationStamp() uint64 {
	if m != nil && m.GenerationStamp != nil {
		return *m.GenerationStamp
	}
	return 0
}

func (m *ExtendedBlockProto) GetNumBytes() uint64 {
	if m != nil && m.NumBytes != nil {
		return *m.NumBytes
	}
	return 0
}

// DatanodeIDProto identifies one DataNode's network endpoints.
type DatanodeIDProto struct {
	IpAddr               *string  `protobuf:"bytes,1,req,name=ipAddr" json:"ipAddr,omitempty"`
	HostName             *string  `protobuf:"bytes,2,req,name=hostName" json:"hostName,omitempty"`
	DatanodeUuid         *string  `protobuf:"bytes,3,req,name=datanodeUuid" json:"datanodeUuid,omitempty"`
	XferPort             *uint32  `protobuf:"varint,4,req,name=xferPort" json:"xferPort,omitempty"`
	InfoPort             *uint32  `protobuf:"varint,5,req,name=infoPort" json:"infoPort,omitempty"`
	IpcPort              *uint32  `protobuf:"varint,6,req,name=ipcPort" json:"ipcPort,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
}

func (m *DatanodeIDProto) Reset()         { *m = DatanodeIDProto{} }
func (m *DatanodeIDProto) String() string { return proto.CompactTextString(m) }
func (*DatanodeIDProto) ProtoMessage()    {}

func (m *DatanodeIDProto) GetIpAddr() string {
	if m != nil && m.IpAddr != nil {
		return *m.IpAddr
	}
	return ""
}

func (m *DatanodeIDProto) GetHostName() string {
	if m != nil && m.HostName != nil {
		return *m.HostName
	}
	return ""
}

func (m *DatanodeIDProto) GetDatanodeUuid() string {
	if m != nil && m.DatanodeUuid != nil {
		return *m.DatanodeUuid
	}
	return ""
}

func (m *DatanodeIDProto) GetXferPort() uint32 {
	if m != nil && m.XferPort != nil {
		return *m.XferPort
	}
	return 0
}

// DatanodeInfoProto is a DatanodeIDProto plus the storage-health fields the
// NameNode reports; only the identity is needed by the read pipeline.
type DatanodeInfoProto struct {
	Id                   *DatanodeIDProto `protobuf:"bytes,1,req,name=id" json:"id,omitempty"`
	XXX_NoUnkeyedLiteral struct{}         `json:"-"`
}

func (m *DatanodeInfoProto) Reset()         { *m = DatanodeInfoProto{} }
func (m *DatanodeInfoProto) String() string { return proto.CompactTextString(m) }
func (*DatanodeInfoProto) ProtoMessage()    {}

func (m *DatanodeInfoProto) GetId() *DatanodeIDProto {
	if m != nil {
		return m.Id
	}
	return nil
}

// LocatedBlockProto is one block plus its token and the ordered replica
// list returned by getBlockLocations.
type LocatedBlockProto struct {
	B                    *ExtendedBlockProto       `protobuf:"bytes,1,req,name=b" json:"b,omitempty"`
	Offset               *uint64                   `protobuf:"varint,2,req,name=offset" json:"offset,omitempty"`
	Locs                 []*DatanodeInfoProto      `protobuf:"bytes,3,rep,name=locs" json:"locs,omitempty"`
	Corrupt              *bool                     `protobuf:"varint,4,req,name=corrupt" json:"corrupt,omitempty"`
	BlockToken           *hadoopcommon.TokenProto  `protobuf:"bytes,5,req,name=blockToken" json:"blockToken,omitempty"`
	XXX_NoUnkeyedLiteral struct{}                  `json:"-"`
}

func (m *LocatedBlockProto) Reset()         { *m = LocatedBlockProto{} }
func (m *LocatedBlockProto) String() string { return proto.CompactTextString(m) }
func (*LocatedBlockProto) ProtoMessage()    {}

func (m *LocatedBlockProto) GetB() *ExtendedBlockProto {
	if m != nil {
		return m.B
	}
	return nil
}

func (m *LocatedBlockProto) GetOffset() uint64 {
	if m != nil && m.Offset != nil {
		return *m.Offset
	}
	return 0
}

func (m *LocatedBlockProto) GetLocs() []*DatanodeInfoProto {
	if m != nil {
		return m.Locs
	}
	return nil
}

func (m *LocatedBlockProto) GetBlockToken() *hadoopcommon.TokenProto {
	if m != nil {
		return m.BlockToken
	}
	return nil
}

// LocatedBlocksProto is the full block map of a file, as returned by
// getBlockLocations.
type LocatedBlocksProto struct {
	FileLength           *uint64              `protobuf:"varint,1,req,name=fileLength" json:"fileLength,omitempty"`
	Blocks               []*LocatedBlockProto `protobuf:"bytes,2,rep,name=blocks" json:"blocks,omitempty"`
	UnderConstruction    *bool                `protobuf:"varint,3,req,name=underConstruction" json:"underConstruction,omitempty"`
	LastBlock            *LocatedBlockProto   `protobuf:"bytes,4,opt,name=lastBlock" json:"lastBlock,omitempty"`
	IsLastBlockComplete  *bool                `protobuf:"varint,5,req,name=isLastBlockComplete" json:"isLastBlockComplete,omitempty"`
	XXX_NoUnkeyedLiteral struct{}             `json:"-"`
}

func (m *LocatedBlocksProto) Reset()         { *m = LocatedBlocksProto{} }
func (m *LocatedBlocksProto) String() string { return proto.CompactTextString(m) }
func (*LocatedBlocksProto) ProtoMessage()    {}

func (m *LocatedBlocksProto) GetFileLength() uint64 {
	if m != nil && m.FileLength != nil {
		return *m.FileLength
	}
	return 0
}

func (m *LocatedBlocksProto) GetBlocks() []*LocatedBlockProto {
	if m != nil {
		return m.Blocks
	}
	return nil
}

func (m *LocatedBlocksProto) GetLastBlock() *LocatedBlockProto {
	if m != nil {
		return m.LastBlock
	}
	return nil
}

// HdfsFileStatusProto mirrors the wire shape of a single inode's metadata.
type HdfsFileStatusProto struct {
	FileType             *HdfsFileStatusProto_FileType `protobuf:"varint,1,req,name=fileType,enum=hadoop.hdfs.HdfsFileStatusProto_FileType" json:"fileType,omitempty"`
	Path                 []byte                        `protobuf:"bytes,2,req,name=path" json:"path,omitempty"`
	Length               *uint64                       `protobuf:"varint,3,req,name=length" json:"length,omitempty"`
	Permission           *FsPermissionProto            `protobuf:"bytes,4,req,name=permission" json:"permission,omitempty"`
	Owner                *string                       `protobuf:"bytes,5,req,name=owner" json:"owner,omitempty"`
	Group                *string                       `protobuf:"bytes,6,req,name=group" json:"group,omitempty"`
	ModificationTime     *uint64                       `protobuf:"varint,7,req,name=modification_time" json:"modification_time,omitempty"`
	AccessTime           *uint64                       `protobuf:"varint,8,req,name=access_time" json:"access_time,omitempty"`
	Symlink              []byte                        `protobuf:"bytes,9,opt,name=symlink" json:"symlink,omitempty"`
	BlockReplication     *uint32                       `protobuf:"varint,10,opt,name=block_replication,def=0" json:"block_replication,omitempty"`
	Blocksize            *uint64                       `protobuf:"varint,11,opt,name=blocksize,def=0" json:"blocksize,omitempty"`
	FileId               *uint64                       `protobuf:"varint,13,opt,name=fileId,def=0" json:"fileId,omitempty"`
	ChildrenNum          *int32                        `protobuf:"varint,14,opt,name=childrenNum,def=-1" json:"childrenNum,omitempty"`
	Locations            *LocatedBlocksProto           `protobuf:"bytes,12,opt,name=locations" json:"locations,omitempty"`
	XXX_NoUnkeyedLiteral struct{}                      `json:"-"`
}

func (m *HdfsFileStatusProto) Reset()         { *m = HdfsFileStatusProto{} }
func (m *HdfsFileStatusProto) String() string { return proto.CompactTextString(m) }
func (*HdfsFileStatusProto) ProtoMessage()    {}

func (m *HdfsFileStatusProto) GetFileType() HdfsFileStatusProto_FileType {
	if m != nil && m.FileType != nil {
		return *m.FileType
	}
	return HdfsFileStatusProto_IS_FILE
}

func (m *HdfsFileStatusProto) GetPath() []byte {
	if m != nil {
		return m.Path
	}
	return nil
}

func (m *HdfsFileStatusProto) GetLength() uint64 {
	if m != nil && m.Length != nil {
		return *m.Length
	}
	return 0
}

func (m *HdfsFileStatusProto) GetPermission() *FsPermissionProto {
	if m != nil {
		return m.Permission
	}
	return nil
}

func (m *HdfsFileStatusProto) GetOwner() string {
	if m != nil && m.Owner != nil {
		return *m.Owner
	}
	return ""
}

func (m *HdfsFileStatusProto) GetGroup() string {
	if m != nil && m.Group != nil {
		return *m.Group
	}
	return ""
}

func (m *HdfsFileStatusProto) GetModificationTime() uint64 {
	if m != nil && m.ModificationTime != nil {
		return *m.ModificationTime
	}
	return 0
}

func (m *HdfsFileStatusProto) GetAccessTime() uint64 {
	if m != nil && m.AccessTime != nil {
		return *m.AccessTime
	}
	return 0
}

func (m *HdfsFileStatusProto) GetSymlink() []byte {
	if m != nil {
		return m.Symlink
	}
	return nil
}

func (m *HdfsFileStatusProto) GetBlockReplication() uint32 {
	if m != nil && m.BlockReplication != nil {
		return *m.BlockReplication
	}
	return 0
}

func (m *HdfsFileStatusProto) GetBlocksize() uint64 {
	if m != nil && m.Blocksize != nil {
		return *m.Blocksize
	}
	return 0
}

// DirectoryListingProto is one page of a getListing response.
type DirectoryListingProto struct {
	PartialListing       []*HdfsFileStatusProto `protobuf:"bytes,1,rep,name=partialListing" json:"partialListing,omitempty"`
	RemainingEntries     *uint32                `protobuf:"varint,2,req,name=remainingEntries" json:"remainingEntries,omitempty"`
	XXX_NoUnkeyedLiteral struct{}               `json:"-"`
}

func (m *DirectoryListingProto) Reset()         { *m = DirectoryListingProto{} }
func (m *DirectoryListingProto) String() string { return proto.CompactTextString(m) }
func (*DirectoryListingProto) ProtoMessage()    {}

func (m *DirectoryListingProto) GetPartialListing() []*HdfsFileStatusProto {
	if m != nil {
		return m.PartialListing
	}
	return nil
}

func (m *DirectoryListingProto) GetRemainingEntries() uint32 {
	if m != nil && m.RemainingEntries != nil {
		return *m.RemainingEntries
	}
	return 0
}

// ContentSummaryProto backs both `du` and `count`.
type ContentSummaryProto struct {
	Length               *uint64  `protobuf:"varint,1,req,name=length" json:"length,omitempty"`
	FileCount            *uint64  `protobuf:"varint,2,req,name=fileCount" json:"fileCount,omitempty"`
	DirectoryCount       *uint64  `protobuf:"varint,3,req,name=directoryCount" json:"directoryCount,omitempty"`
	Quota                *uint64  `protobuf:"varint,4,req,name=quota" json:"quota,omitempty"`
	SpaceConsumed        *uint64  `protobuf:"varint,5,req,name=spaceConsumed" json:"spaceConsumed,omitempty"`
	SpaceQuota           *uint64  `protobuf:"varint,6,req,name=spaceQuota" json:"spaceQuota,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
}

func (m *ContentSummaryProto) Reset()         { *m = ContentSummaryProto{} }
func (m *ContentSummaryProto) String() string { return proto.CompactTextString(m) }
func (*ContentSummaryProto) ProtoMessage()    {}

func (m *ContentSummaryProto) GetLength() uint64 {
	if m != nil && m.Length != nil {
		return *m.Length
	}
	return 0
}

func (m *ContentSummaryProto) GetFileCount() uint64 {
	if m != nil && m.FileCount != nil {
		return *m.FileCount
	}
	return 0
}

func (m *ContentSummaryProto) GetDirectoryCount() uint64 {
	if m != nil && m.DirectoryCount != nil {
		return *m.DirectoryCount
	}
	return 0
}

func (m *ContentSummaryProto) GetQuota() uint64 {
	if m != nil && m.Quota != nil {
		return *m.Quota
	}
	return 0
}

func (m *ContentSummaryProto) GetSpaceConsumed() uint64 {
	if m != nil && m.SpaceConsumed != nil {
		return *m.SpaceConsumed
	}
	return 0
}

func (m *ContentSummaryProto) GetSpaceQuota() uint64 {
	if m != nil && m.SpaceQuota != nil {
		return *m.SpaceQuota
	}
	return 0
}

// FsServerDefaultsProto is cached by the client after the first call; see
// spec §4.I "serverdefaults".
type FsServerDefaultsProto struct {
	BlockSize            *uint64            `protobuf:"varint,1,req,name=blockSize" json:"blockSize,omitempty"`
	BytesPerChecksum     *uint32            `protobuf:"varint,2,req,name=bytesPerChecksum" json:"bytesPerChecksum,omitempty"`
	WritePacketSize      *uint32            `protobuf:"varint,3,req,name=writePacketSize" json:"writePacketSize,omitempty"`
	Replication          *uint32            `protobuf:"varint,4,req,name=replication" json:"replication,omitempty"`
	FileBufferSize       *uint32            `protobuf:"varint,5,req,name=fileBufferSize" json:"fileBufferSize,omitempty"`
	ChecksumType         *ChecksumTypeProto `protobuf:"varint,7,opt,name=checksumType,enum=hadoop.hdfs.ChecksumTypeProto" json:"checksumType,omitempty"`
	XXX_NoUnkeyedLiteral struct{}           `json:"-"`
}

func (m *FsServerDefaultsProto) Reset()         { *m = FsServerDefaultsProto{} }
func (m *FsServerDefaultsProto) String() string { return proto.CompactTextString(m) }
func (*FsServerDefaultsProto) ProtoMessage()    {}

func (m *FsServerDefaultsProto) GetBlockSize() uint64 {
	if m != nil && m.BlockSize != nil {
		return *m.BlockSize
	}
	return 0
}

func (m *FsServerDefaultsProto) GetBytesPerChecksum() uint32 {
	if m != nil && m.BytesPerChecksum != nil {
		return *m.BytesPerChecksum
	}
	return 0
}

func (m *FsServerDefaultsProto) GetWritePacketSize() uint32 {
	if m != nil && m.WritePacketSize != nil {
		return *m.WritePacketSize
	}
	return 0
}

func (m *FsServerDefaultsProto) GetReplication() uint32 {
	if m != nil && m.Replication != nil {
		return *m.Replication
	}
	return 0
}

func (m *FsServerDefaultsProto) GetFileBufferSize() uint32 {
	if m != nil && m.FileBufferSize != nil {
		return *m.FileBufferSize
	}
	return 0
}
