package hadoopcommon

import proto "github.com/golang/protobuf/proto"

// UserInformationProto identifies the caller presenting the connection.
type UserInformationProto struct {
	EffectiveUser        *string  `protobuf:"bytes,1,opt,name=effectiveUser" json:"effectiveUser,omitempty"`
	RealUser             *string  `protobuf:"bytes,2,opt,name=realUser" json:"realUser,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
}

func (m *UserInformationProto) Reset()         { *m = UserInformationProto{} }
func (m *UserInformationProto) String() string { return proto.CompactTextString(m) }
func (*UserInformationProto) ProtoMessage()    {}

func (m *UserInformationProto) GetEffectiveUser() string {
	if m != nil && m.EffectiveUser != nil {
		return *m.EffectiveUser
	}
	return ""
}

// IpcConnectionContextProto is sent once, immediately after the handshake
// prologue, ahead of the first real call.
type IpcConnectionContextProto struct {
	UserInfo             *UserInformationProto `protobuf:"bytes,2,opt,name=userInfo" json:"userInfo,omitempty"`
	Protocol             *string               `protobuf:"bytes,3,opt,name=protocol" json:"protocol,omitempty"`
	XXX_NoUnkeyedLiteral struct{}              `json:"-"`
}

func (m *IpcConnectionContextProto) Reset()         { *m = IpcConnectionContextProto{} }
func (m *IpcConnectionContextProto) String() string { return proto.CompactTextString(m) }
func (*IpcConnectionContextProto) ProtoMessage()    {}

func (m *IpcConnectionContextProto) GetUserInfo() *UserInformationProto {
	if m != nil {
		return m.UserInfo
	}
	return nil
}

func (m *IpcConnectionContextProto) GetProtocol() string {
	if m != nil && m.Protocol != nil {
		return *m.Protocol
	}
	return ""
}
