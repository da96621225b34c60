package hadoopcommon

import proto "github.com/golang/protobuf/proto"

// RequestHeaderProto carries the method name dispatched by ProtobufRpcEngine,
// sent as the second varint-delimited message of every request frame.
type RequestHeaderProto struct {
	MethodName                 *string  `protobuf:"bytes,1,req,name=methodName" json:"methodName,omitempty"`
	DeclaringClassProtocolName *string  `protobuf:"bytes,2,req,name=declaringClassProtocolName" json:"declaringClassProtocolName,omitempty"`
	ClientProtocolVersion      *uint64  `protobuf:"varint,3,req,name=clientProtocolVersion" json:"clientProtocolVersion,omitempty"`
	XXX_NoUnkeyedLiteral       struct{} `json:"-"`
}

func (m *RequestHeaderProto) Reset()         { *m = RequestHeaderProto{} }
func (m *RequestHeaderProto) String() string { return proto.CompactTextString(m) }
func (*RequestHeaderProto) ProtoMessage()    {}

func (m *RequestHeaderProto) GetMethodName() string {
	if m != nil && m.MethodName != nil {
		return *m.MethodName
	}
	return ""
}

func (m *RequestHeaderProto) GetDeclaringClassProtocolName() string {
	if m != nil && m.DeclaringClassProtocolName != nil {
		return *m.DeclaringClassProtocolName
	}
	return ""
}

func (m *RequestHeaderProto) GetClientProtocolVersion() uint64 {
	if m != nil && m.ClientProtocolVersion != nil {
		return *m.ClientProtocolVersion
	}
	return 0
}
