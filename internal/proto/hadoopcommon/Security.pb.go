package hadoopcommon

import proto "github.com/golang/protobuf/proto"

// TokenProto is a serialized delegation/block-access token, opaque to the
// transport layer.
type TokenProto struct {
	Identifier           []byte   `protobuf:"bytes,1,req,name=identifier" json:"identifier,omitempty"`
	Password             []byte   `protobuf:"bytes,2,req,name=password" json:"password,omitempty"`
	Kind                 *string  `protobuf:"bytes,3,req,name=kind" json:"kind,omitempty"`
	Service              *string  `protobuf:"bytes,4,req,name=service" json:"service,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
}

func (m *TokenProto) Reset()         { *m = TokenProto{} }
func (m *TokenProto) String() string { return proto.CompactTextString(m) }
func (*TokenProto) ProtoMessage()    {}

func (m *TokenProto) GetIdentifier() []byte {
	if m != nil {
		return m.Identifier
	}
	return nil
}

func (m *TokenProto) GetPassword() []byte {
	if m != nil {
		return m.Password
	}
	return nil
}

// RpcSaslProto_SaslState enumerates the GSSAPI/SASL negotiation phases
// exchanged during handshake when auth protocol = SASL (0xDF).
type RpcSaslProto_SaslState int32

const (
	RpcSaslProto_SUCCESS   RpcSaslProto_SaslState = 0
	RpcSaslProto_NEGOTIATE RpcSaslProto_SaslState = 1
	RpcSaslProto_INITIATE  RpcSaslProto_SaslState = 2
	RpcSaslProto_CHALLENGE RpcSaslProto_SaslState = 3
	RpcSaslProto_RESPONSE  RpcSaslProto_SaslState = 4
	RpcSaslProto_WRAP      RpcSaslProto_SaslState = 5
)

// RpcSaslProto_SaslAuth advertises one mechanism the server is willing to
// negotiate (e.g. "GSSAPI").
type RpcSaslProto_SaslAuth struct {
	Method               *string  `protobuf:"bytes,1,req,name=method" json:"method,omitempty"`
	Mechanism            *string  `protobuf:"bytes,2,req,name=mechanism" json:"mechanism,omitempty"`
	Protocol             *string  `protobuf:"bytes,3,opt,name=protocol" json:"protocol,omitempty"`
	ServerId             *string  `protobuf:"bytes,4,opt,name=serverId" json:"serverId,omitempty"`
	Challenge            []byte   `protobuf:"bytes,5,opt,name=challenge" json:"challenge,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
}

func (m *RpcSaslProto_SaslAuth) Reset()         { *m = RpcSaslProto_SaslAuth{} }
func (m *RpcSaslProto_SaslAuth) String() string { return proto.CompactTextString(m) }
func (*RpcSaslProto_SaslAuth) ProtoMessage()    {}

func (m *RpcSaslProto_SaslAuth) GetMechanism() string {
	if m != nil && m.Mechanism != nil {
		return *m.Mechanism
	}
	return ""
}

// RpcSaslProto drives the SASL/GSSAPI exchange itself, framed like any
// other call but on the reserved call-id -33.
type RpcSaslProto struct {
	Version              *int32                   `protobuf:"varint,1,opt,name=version" json:"version,omitempty"`
	State                *RpcSaslProto_SaslState  `protobuf:"varint,2,req,name=state,enum=hadoop.common.RpcSaslProto_SaslState" json:"state,omitempty"`
	Token                []byte                   `protobuf:"bytes,3,opt,name=token" json:"token,omitempty"`
	Auths                []*RpcSaslProto_SaslAuth `protobuf:"bytes,4,rep,name=auths" json:"auths,omitempty"`
	XXX_NoUnkeyedLiteral struct{}                 `json:"-"`
}

func (m *RpcSaslProto) Reset()         { *m = RpcSaslProto{} }
func (m *RpcSaslProto) String() string { return proto.CompactTextString(m) }
func (*RpcSaslProto) ProtoMessage()    {}

func (m *RpcSaslProto) GetState() RpcSaslProto_SaslState {
	if m != nil && m.State != nil {
		return *m.State
	}
	return RpcSaslProto_SUCCESS
}

func (m *RpcSaslProto) GetToken() []byte {
	if m != nil {
		return m.Token
	}
	return nil
}

func (m *RpcSaslProto) GetAuths() []*RpcSaslProto_SaslAuth {
	if m != nil {
		return m.Auths
	}
	return nil
}
