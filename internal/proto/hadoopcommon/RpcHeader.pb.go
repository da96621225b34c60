// Package hadoopcommon holds hand-maintained protoc-gen-go v1-shaped
// bindings for the subset of Hadoop's common IPC proto schemas
// (RpcHeader.proto, ProtobufRpcEngine.proto, IpcConnectionContext.proto,
// Security.proto) that the NameNode RPC channel exercises. The schemas
// themselves are an external, fixed contract (see package doc in
// ../doc.go); this file reproduces only the messages used on the wire.
package hadoopcommon

import (
	fmt "fmt"

	proto "github.com/golang/protobuf/proto"
)

// RpcKindProto enumerates the serialization used for the request payload.
type RpcKindProto int32

const (
	RpcKindProto_RPC_BUILTIN         RpcKindProto = 0
	RpcKindProto_RPC_WRITABLE        RpcKindProto = 1
	RpcKindProto_RPC_PROTOCOL_BUFFER RpcKindProto = 2
)

func (x RpcKindProto) String() string {
	switch x {
	case RpcKindProto_RPC_BUILTIN:
		return "RPC_BUILTIN"
	case RpcKindProto_RPC_WRITABLE:
		return "RPC_WRITABLE"
	case RpcKindProto_RPC_PROTOCOL_BUFFER:
		return "RPC_PROTOCOL_BUFFER"
	}
	return fmt.Sprintf("RpcKindProto(%d)", int32(x))
}

// RpcRequestHeaderProto_OperationProto is the per-call operation code.
type RpcRequestHeaderProto_OperationProto int32

const (
	RpcRequestHeaderProto_RPC_FINAL_PACKET        RpcRequestHeaderProto_OperationProto = 0
	RpcRequestHeaderProto_RPC_CONTINUATION_PACKET RpcRequestHeaderProto_OperationProto = 1
	RpcRequestHeaderProto_RPC_CLOSE_CONNECTION    RpcRequestHeaderProto_OperationProto = 2
)

// RpcResponseHeaderProto_RpcStatusProto is the per-call response status.
type RpcResponseHeaderProto_RpcStatusProto int32

const (
	RpcResponseHeaderProto_SUCCESS RpcResponseHeaderProto_RpcStatusProto = 0
	RpcResponseHeaderProto_ERROR   RpcResponseHeaderProto_RpcStatusProto = 1
	RpcResponseHeaderProto_FATAL   RpcResponseHeaderProto_RpcStatusProto = 2
)

func (x RpcResponseHeaderProto_RpcStatusProto) String() string {
	switch x {
	case RpcResponseHeaderProto_SUCCESS:
		return "SUCCESS"
	case RpcResponseHeaderProto_ERROR:
		return "ERROR"
	case RpcResponseHeaderProto_FATAL:
		return "FATAL"
	}
	return fmt.Sprintf("RpcStatusProto(%d)", int32(x))
}

// RpcRequestHeaderProto is sent ahead of every request body (and the
// connection-context on handshake) to carry the call id and client id.
type RpcRequestHeaderProto struct {
	RpcKind              *RpcKindProto                         `protobuf:"varint,1,opt,name=rpcKind,enum=hadoop.common.RpcKindProto" json:"rpcKind,omitempty"`
	RpcOp                *RpcRequestHeaderProto_OperationProto `protobuf:"varint,2,opt,name=rpcOp,enum=hadoop.common.RpcRequestHeaderProto_OperationProto" json:"rpcOp,omitempty"`
	CallId               *int32                                `protobuf:"varint,3,req,name=callId" json:"callId,omitempty"`
	ClientId             []byte                                `protobuf:"bytes,4,req,name=clientId" json:"clientId,omitempty"`
	RetryCount           *int32                                `protobuf:"varint,5,opt,name=retryCount,def=-1" json:"retryCount,omitempty"`
	XXX_NoUnkeyedLiteral struct{}                               `json:"-"`
}

func (m *RpcRequestHeaderProto) Reset()         { *m = RpcRequestHeaderProto{} }
func (m *RpcRequestHeaderProto) String() string { return proto.CompactTextString(m) }
func (*RpcRequestHeaderProto) ProtoMessage()    {}

func (m *RpcRequestHeaderProto) GetRpcKind() RpcKindProto {
	if m != nil && m.RpcKind != nil {
		return *m.RpcKind
	}
	return RpcKindProto_RPC_BUILTIN
}

func (m *RpcRequestHeaderProto) GetRpcOp() RpcRequestHeaderProto_OperationProto {
	if m != nil && m.RpcOp != nil {
		return *m.RpcOp
	}
	return RpcRequestHeaderProto_RPC_FINAL_PACKET
}

func (m *RpcRequestHeaderProto) GetCallId() int32 {
	if m != nil && m.CallId != nil {
		return *m.CallId
	}
	return 0
}

func (m *RpcRequestHeaderProto) GetClientId() []byte {
	if m != nil {
		return m.ClientId
	}
	return nil
}

func (m *RpcRequestHeaderProto) GetRetryCount() int32 {
	if m != nil && m.RetryCount != nil {
		return *m.RetryCount
	}
	return -1
}

// RpcResponseHeaderProto precedes every response (and the payload, on
// success).
type RpcResponseHeaderProto struct {
	CallId               *uint32                                 `protobuf:"varint,1,req,name=callId" json:"callId,omitempty"`
	Status               *RpcResponseHeaderProto_RpcStatusProto   `protobuf:"varint,2,req,name=status,enum=hadoop.common.RpcResponseHeaderProto_RpcStatusProto" json:"status,omitempty"`
	ServerIpcVersionNum  *uint32                                 `protobuf:"varint,3,opt,name=serverIpcVersionNum" json:"serverIpcVersionNum,omitempty"`
	ExceptionClassName   *string                                 `protobuf:"bytes,4,opt,name=exceptionClassName" json:"exceptionClassName,omitempty"`
	ErrorMsg             *string                                 `protobuf:"bytes,5,opt,name=errorMsg" json:"errorMsg,omitempty"`
	ClientId             []byte                                  `protobuf:"bytes,7,opt,name=clientId" json:"clientId,omitempty"`
	RetryCount           *int32                                  `protobuf:"varint,8,opt,name=retryCount,def=-1" json:"retryCount,omitempty"`
	XXX_NoUnkeyedLiteral struct{}                                `json:"-"`
}

func (m *RpcResponseHeaderProto) Reset()         { *m = RpcResponseHeaderProto{} }
func (m *RpcResponseHeaderProto) String() string { return proto.CompactTextString(m) }
func (*RpcResponseHeaderProto) ProtoMessage()    {}

func (m *RpcResponseHeaderProto) GetCallId() uint32 {
	if m != nil && m.CallId != nil {
		return *m.CallId
	}
	return 0
}

func (m *RpcResponseHeaderProto) GetStatus() RpcResponseHeaderProto_RpcStatusProto {
	if m != nil && m.Status != nil {
		return *m.Status
	}
	return RpcResponseHeaderProto_SUCCESS
}

func (m *RpcResponseHeaderProto) GetExceptionClassName() string {
	if m != nil && m.ExceptionClassName != nil {
		return *m.ExceptionClassName
	}
	return ""
}

func (m *RpcResponseHeaderProto) GetErrorMsg() string {
	if m != nil && m.ErrorMsg != nil {
		return *m.ErrorMsg
	}
	return ""
}
