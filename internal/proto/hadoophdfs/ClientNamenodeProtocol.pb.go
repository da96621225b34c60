package hadoophdfs

import proto "github.com/golang/protobuf/proto"

// GetFileInfoRequestProto / GetFileInfoResponseProto back stat/ls-toplevel.
type GetFileInfoRequestProto struct {
	Src                  *string  `protobuf:"bytes,1,req,name=src" json:"src,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
}

func (m *GetFileInfoRequestProto) Reset()         { *m = GetFileInfoRequestProto{} }
func (m *GetFileInfoRequestProto) String() string { return proto.CompactTextString(m) }
func (*GetFileInfoRequestProto) ProtoMessage()    {}

type GetFileInfoResponseProto struct {
	Fs                   *HdfsFileStatusProto `protobuf:"bytes,1,opt,name=fs" json:"fs,omitempty"`
	XXX_NoUnkeyedLiteral struct{}             `json:"-"`
}

func (m *GetFileInfoResponseProto) Reset()         { *m = GetFileInfoResponseProto{} }
func (m *GetFileInfoResponseProto) String() string { return proto.CompactTextString(m) }
func (*GetFileInfoResponseProto) ProtoMessage()    {}

func (m *GetFileInfoResponseProto) GetFs() *HdfsFileStatusProto {
	if m != nil {
		return m.Fs
	}
	return nil
}

// GetListingRequestProto / GetListingResponseProto page a directory.
type GetListingRequestProto struct {
	Src                  *string  `protobuf:"bytes,1,req,name=src" json:"src,omitempty"`
	StartAfter           []byte   `protobuf:"bytes,2,req,name=startAfter" json:"startAfter,omitempty"`
	NeedLocation         *bool    `protobuf:"varint,3,req,name=needLocation" json:"needLocation,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
}

func (m *GetListingRequestProto) Reset()         { *m = GetListingRequestProto{} }
func (m *GetListingRequestProto) String() string { return proto.CompactTextString(m) }
func (*GetListingRequestProto) ProtoMessage()    {}

type GetListingResponseProto struct {
	DirList              *DirectoryListingProto `protobuf:"bytes,1,opt,name=dirList" json:"dirList,omitempty"`
	XXX_NoUnkeyedLiteral struct{}               `json:"-"`
}

func (m *GetListingResponseProto) Reset()         { *m = GetListingResponseProto{} }
func (m *GetListingResponseProto) String() string { return proto.CompactTextString(m) }
func (*GetListingResponseProto) ProtoMessage()    {}

func (m *GetListingResponseProto) GetDirList() *DirectoryListingProto {
	if m != nil {
		return m.DirList
	}
	return nil
}

// GetBlockLocationsRequestProto / GetBlockLocationsResponseProto back the
// block-read coordinator (spec §4.H step 1).
type GetBlockLocationsRequestProto struct {
	Src                  *string  `protobuf:"bytes,1,req,name=src" json:"src,omitempty"`
	Offset               *uint64  `protobuf:"varint,2,req,name=offset" json:"offset,omitempty"`
	Length               *uint64  `protobuf:"varint,3,req,name=length" json:"length,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
}

func (m *GetBlockLocationsRequestProto) Reset()         { *m = GetBlockLocationsRequestProto{} }
func (m *GetBlockLocationsRequestProto) String() string { return proto.CompactTextString(m) }
func (*GetBlockLocationsRequestProto) ProtoMessage()    {}

type GetBlockLocationsResponseProto struct {
	Locations            *LocatedBlocksProto `protobuf:"bytes,1,opt,name=locations" json:"locations,omitempty"`
	XXX_NoUnkeyedLiteral struct{}            `json:"-"`
}

func (m *GetBlockLocationsResponseProto) Reset()         { *m = GetBlockLocationsResponseProto{} }
func (m *GetBlockLocationsResponseProto) String() string { return proto.CompactTextString(m) }
func (*GetBlockLocationsResponseProto) ProtoMessage()    {}

func (m *GetBlockLocationsResponseProto) GetLocations() *LocatedBlocksProto {
	if m != nil {
		return m.Locations
	}
	return nil
}

// RenameRequestProto / RenameResponseProto back the legacy single-result
// rename RPC.
type RenameRequestProto struct {
	Src                  *string  `protobuf:"bytes,1,req,name=src" json:"src,omitempty"`
	Dst                  *string  `protobuf:"bytes,2,req,name=dst" json:"dst,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
}

func (m *RenameRequestProto) Reset()         { *m = RenameRequestProto{} }
func (m *RenameRequestProto) String() string { return proto.CompactTextString(m) }
func (*RenameRequestProto) ProtoMessage()    {}

type RenameResponseProto struct {
	Result               *bool    `protobuf:"varint,1,req,name=result" json:"result,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
}

func (m *RenameResponseProto) Reset()         { *m = RenameResponseProto{} }
func (m *RenameResponseProto) String() string { return proto.CompactTextString(m) }
func (*RenameResponseProto) ProtoMessage()    {}

func (m *RenameResponseProto) GetResult() bool {
	if m != nil && m.Result != nil {
		return *m.Result
	}
	return false
}

// Rename2RequestProto / Rename2ResponseProto back the overwrite-aware
// rename RPC (spec §4.I "rename2").
type Rename2RequestProto struct {
	Src                  *string  `protobuf:"bytes,1,req,name=src" json:"src,omitempty"`
	Dst                  *string  `protobuf:"bytes,2,req,name=dst" json:"dst,omitempty"`
	OverwriteDest        *bool    `protobuf:"varint,3,req,name=overwriteDest" json:"overwriteDest,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
}

func (m *Rename2RequestProto) Reset()         { *m = Rename2RequestProto{} }
func (m *Rename2RequestProto) String() string { return proto.CompactTextString(m) }
func (*Rename2RequestProto) ProtoMessage()    {}

type Rename2ResponseProto struct {
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
}

func (m *Rename2ResponseProto) Reset()         { *m = Rename2ResponseProto{} }
func (m *Rename2ResponseProto) String() string { return proto.CompactTextString(m) }
func (*Rename2ResponseProto) ProtoMessage()    {}

// DeleteRequestProto / DeleteResponseProto.
type DeleteRequestProto struct {
	Src                  *string  `protobuf:"bytes,1,req,name=src" json:"src,omitempty"`
	Recursive            *bool    `protobuf:"varint,2,req,name=recursive,def=1" json:"recursive,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
}

func (m *DeleteRequestProto) Reset()         { *m = DeleteRequestProto{} }
func (m *DeleteRequestProto) String() string { return proto.CompactTextString(m) }
func (*DeleteRequestProto) ProtoMessage()    {}

type DeleteResponseProto struct {
	Result               *bool    `protobuf:"varint,1,req,name=result" json:"result,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
}

func (m *DeleteResponseProto) Reset()         { *m = DeleteResponseProto{} }
func (m *DeleteResponseProto) String() string { return proto.CompactTextString(m) }
func (*DeleteResponseProto) ProtoMessage()    {}

func (m *DeleteResponseProto) GetResult() bool {
	if m != nil && m.Result != nil {
		return *m.Result
	}
	return false
}

// MkdirsRequestProto / MkdirsResponseProto.
type MkdirsRequestProto struct {
	Src                  *string             `protobuf:"bytes,1,req,name=src" json:"src,omitempty"`
	Masked               *FsPermissionProto  `protobuf:"bytes,2,req,name=masked" json:"masked,omitempty"`
	CreateParent         *bool               `protobuf:"varint,3,req,name=createParent" json:"createParent,omitempty"`
	XXX_NoUnkeyedLiteral struct{}            `json:"-"`
}

func (m *MkdirsRequestProto) Reset()         { *m = MkdirsRequestProto{} }
func (m *MkdirsRequestProto) String() string { return proto.CompactTextString(m) }
func (*MkdirsRequestProto) ProtoMessage()    {}

type MkdirsResponseProto struct {
	Result               *bool    `protobuf:"varint,1,req,name=result" json:"result,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
}

func (m *MkdirsResponseProto) Reset()         { *m = MkdirsResponseProto{} }
func (m *MkdirsResponseProto) String() string { return proto.CompactTextString(m) }
func (*MkdirsResponseProto) ProtoMessage()    {}

func (m *MkdirsResponseProto) GetResult() bool {
	if m != nil && m.Result != nil {
		return *m.Result
	}
	return false
}

// SetPermissionRequestProto / SetPermissionResponseProto.
type SetPermissionRequestProto struct {
	Src                  *string            `protobuf:"bytes,1,req,name=src" json:"src,omitempty"`
	Permission           *FsPermissionProto `protobuf:"bytes,2,req,name=permission" json:"permission,omitempty"`
	XXX_NoUnkeyedLiteral struct{}           `json:"-"`
}

func (m *SetPermissionRequestProto) Reset()         { *m = SetPermissionRequestProto{} }
func (m *SetPermissionRequestProto) String() string { return proto.CompactTextString(m) }
func (*SetPermissionRequestProto) ProtoMessage()    {}

type SetPermissionResponseProto struct {
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
}

func (m *SetPermissionResponseProto) Reset()         { *m = SetPermissionResponseProto{} }
func (m *SetPermissionResponseProto) String() string { return proto.CompactTextString(m) }
func (*SetPermissionResponseProto) ProtoMessage()    {}

// SetOwnerRequestProto / SetOwnerResponseProto back chown/chgrp.
type SetOwnerRequestProto struct {
	Src                  *string  `protobuf:"bytes,1,req,name=src" json:"src,omitempty"`
	Username             *string  `protobuf:"bytes,2,opt,name=username" json:"username,omitempty"`
	Groupname            *string  `protobuf:"bytes,3,opt,name=groupname" json:"groupname,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
}

func (m *SetOwnerRequestProto) Reset()         { *m = SetOwnerRequestProto{} }
func (m *SetOwnerRequestProto) String() string { return proto.CompactTextString(m) }
func (*SetOwnerRequestProto) ProtoMessage()    {}

type SetOwnerResponseProto struct {
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
}

func (m *SetOwnerResponseProto) Reset()         { *m = SetOwnerResponseProto{} }
func (m *SetOwnerResponseProto) String() string { return proto.CompactTextString(m) }
func (*SetOwnerResponseProto) ProtoMessage()    {}

// SetReplicationRequestProto / SetReplicationResponseProto.
type SetReplicationRequestProto struct {
	Src                  *string  `protobuf:"bytes,1,req,name=src" json:"src,omitempty"`
	Replication          *uint32  `protobuf:"varint,2,req,name=replication" json:"replication,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
}

func (m *SetReplicationRequestProto) Reset()         { *m = SetReplicationRequestProto{} }
func (m *SetReplicationRequestProto) String() string { return proto.CompactTextString(m) }
func (*SetReplicationRequestProto) ProtoMessage()    {}

type SetReplicationResponseProto struct {
	Result               *bool    `protobuf:"varint,1,req,name=result" json:"result,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
}

func (m *SetReplicationResponseProto) Reset()         { *m = SetReplicationResponseProto{} }
func (m *SetReplicationResponseProto) String() string { return proto.CompactTextString(m) }
func (*SetReplicationResponseProto) ProtoMessage()    {}

func (m *SetReplicationResponseProto) GetResult() bool {
	if m != nil && m.Result != nil {
		return *m.Result
	}
	return false
}

// CreateFlagProto mirrors org.apache.hadoop.fs.CreateFlag's wire encoding:
// a bitmask, OVERWRITE=2 on top of the implicit CREATE=1.
type CreateFlagProto int32

const (
	CreateFlagProto_CREATE    CreateFlagProto = 0x01
	CreateFlagProto_OVERWRITE CreateFlagProto = 0x02
)

// CreateRequestProto / CreateResponseProto back touchz (spec §4.I).
type CreateRequestProto struct {
	Src                  *string            `protobuf:"bytes,1,req,name=src" json:"src,omitempty"`
	Masked               *FsPermissionProto `protobuf:"bytes,2,req,name=masked" json:"masked,omitempty"`
	ClientName           *string            `protobuf:"bytes,3,req,name=clientName" json:"clientName,omitempty"`
	CreateFlag           *uint32            `protobuf:"varint,4,req,name=createFlag" json:"createFlag,omitempty"`
	CreateParent         *bool              `protobuf:"varint,5,req,name=createParent" json:"createParent,omitempty"`
	Replication          *uint32            `protobuf:"varint,6,req,name=replication,def=3" json:"replication,omitempty"`
	BlockSize            *uint64            `protobuf:"varint,7,req,name=blockSize" json:"blockSize,omitempty"`
	XXX_NoUnkeyedLiteral struct{}           `json:"-"`
}

func (m *CreateRequestProto) Reset()         { *m = CreateRequestProto{} }
func (m *CreateRequestProto) String() string { return proto.CompactTextString(m) }
func (*CreateRequestProto) ProtoMessage()    {}

type CreateResponseProto struct {
	Fs                   *HdfsFileStatusProto `protobuf:"bytes,1,opt,name=fs" json:"fs,omitempty"`
	XXX_NoUnkeyedLiteral struct{}             `json:"-"`
}

func (m *CreateResponseProto) Reset()         { *m = CreateResponseProto{} }
func (m *CreateResponseProto) String() string { return proto.CompactTextString(m) }
func (*CreateResponseProto) ProtoMessage()    {}

// CompleteRequestProto / CompleteResponseProto finalize a create() call.
type CompleteRequestProto struct {
	Src                  *string             `protobuf:"bytes,1,req,name=src" json:"src,omitempty"`
	ClientName           *string             `protobuf:"bytes,2,req,name=clientName" json:"clientName,omitempty"`
	Last                 *ExtendedBlockProto `protobuf:"bytes,3,opt,name=last" json:"last,omitempty"`
	FileId               *uint64             `protobuf:"varint,4,opt,name=fileId,def=0" json:"fileId,omitempty"`
	XXX_NoUnkeyedLiteral struct{}            `json:"-"`
}

func (m *CompleteRequestProto) Reset()         { *m = CompleteRequestProto{} }
func (m *CompleteRequestProto) String() string { return proto.CompactTextString(m) }
func (*CompleteRequestProto) ProtoMessage()    {}

type CompleteResponseProto struct {
	Result               *bool    `protobuf:"varint,1,req,name=result" json:"result,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
}

func (m *CompleteResponseProto) Reset()         { *m = CompleteResponseProto{} }
func (m *CompleteResponseProto) String() string { return proto.CompactTextString(m) }
func (*CompleteResponseProto) ProtoMessage()    {}

func (m *CompleteResponseProto) GetResult() bool {
	if m != nil && m.Result != nil {
		return *m.Result
	}
	return false
}

// GetServerDefaultsRequestProto / GetServerDefaultsResponseProto.
type GetServerDefaultsRequestProto struct {
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
}

func (m *GetServerDefaultsRequestProto) Reset()         { *m = GetServerDefaultsRequestProto{} }
func (m *GetServerDefaultsRequestProto) String() string { return proto.CompactTextString(m) }
func (*GetServerDefaultsRequestProto) ProtoMessage()    {}

type GetServerDefaultsResponseProto struct {
	ServerDefaults       *FsServerDefaultsProto `protobuf:"bytes,1,req,name=serverDefaults" json:"serverDefaults,omitempty"`
	XXX_NoUnkeyedLiteral struct{}               `json:"-"`
}

func (m *GetServerDefaultsResponseProto) Reset()         { *m = GetServerDefaultsResponseProto{} }
func (m *GetServerDefaultsResponseProto) String() string { return proto.CompactTextString(m) }
func (*GetServerDefaultsResponseProto) ProtoMessage()    {}

func (m *GetServerDefaultsResponseProto) GetServerDefaults() *FsServerDefaultsProto {
	if m != nil {
		return m.ServerDefaults
	}
	return nil
}

// GetContentSummaryRequestProto / GetContentSummaryResponseProto back both
// `du` and `count` (spec §4.I).
type GetContentSummaryRequestProto struct {
	Path                 *string  `protobuf:"bytes,1,req,name=path" json:"path,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
}

func (m *GetContentSummaryRequestProto) Reset()         { *m = GetContentSummaryRequestProto{} }
func (m *GetContentSummaryRequestProto) String() string { return proto.CompactTextString(m) }
func (*GetContentSummaryRequestProto) ProtoMessage()    {}

type GetContentSummaryResponseProto struct {
	Summary              *ContentSummaryProto `protobuf:"bytes,1,req,name=summary" json:"summary,omitempty"`
	XXX_NoUnkeyedLiteral struct{}             `json:"-"`
}

func (m *GetContentSummaryResponseProto) Reset()         { *m = GetContentSummaryResponseProto{} }
func (m *GetContentSummaryResponseProto) String() string { return proto.CompactTextString(m) }
func (*GetContentSummaryResponseProto) ProtoMessage()    {}

func (m *GetContentSummaryResponseProto) GetSummary() *ContentSummaryProto {
	if m != nil {
		return m.Summary
	}
	return nil
}

// GetFsStatusRequestProto / GetFsStatsResponseProto back `df`.
type GetFsStatusRequestProto struct {
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
}

func (m *GetFsStatusRequestProto) Reset()         { *m = GetFsStatusRequestProto{} }
func (m *GetFsStatusRequestProto) String() string { return proto.CompactTextString(m) }
func (*GetFsStatusRequestProto) ProtoMessage()    {}

type GetFsStatsResponseProto struct {
	Capacity             *uint64  `protobuf:"varint,1,req,name=capacity" json:"capacity,omitempty"`
	Used                 *uint64  `protobuf:"varint,2,req,name=used" json:"used,omitempty"`
	Remaining            *uint64  `protobuf:"varint,3,req,name=remaining" json:"remaining,omitempty"`
	UnderReplicated      *uint64  `protobuf:"varint,4,req,name=under_replicated" json:"under_replicated,omitempty"`
	CorruptBlocks        *uint64  `protobuf:"varint,5,req,name=corrupt_blocks" json:"corrupt_blocks,omitempty"`
	MissingBlocks        *uint64  `protobuf:"varint,6,req,name=missing_blocks" json:"missing_blocks,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
}

func (m *GetFsStatsResponseProto) Reset()         { *m = GetFsStatsResponseProto{} }
func (m *GetFsStatsResponseProto) String() string { return proto.CompactTextString(m) }
func (*GetFsStatsResponseProto) ProtoMessage()    {}

func (m *GetFsStatsResponseProto) GetCapacity() uint64 {
	if m != nil && m.Capacity != nil {
		return *m.Capacity
	}
	return 0
}

func (m *GetFsStatsResponseProto) GetUsed() uint64 {
	if m != nil && m.Used != nil {
		return *m.Used
	}
	return 0
}

func (m *GetFsStatsResponseProto) GetRemaining() uint64 {
	if m != nil && m.Remaining != nil {
		return *m.Remaining
	}
	return 0
}

func (m *GetFsStatsResponseProto) GetUnderReplicated() uint64 {
	if m != nil && m.UnderReplicated != nil {
		return *m.UnderReplicated
	}
	return 0
}

func (m *GetFsStatsResponseProto) GetCorruptBlocks() uint64 {
	if m != nil && m.CorruptBlocks != nil {
		return *m.CorruptBlocks
	}
	return 0
}

func (m *GetFsStatsResponseProto) GetMissingBlocks() uint64 {
	if m != nil && m.MissingBlocks != nil {
		return *m.MissingBlocks
	}
	return 0
}
