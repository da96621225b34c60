package rpc

import (
	"io"
	"net"
	"strconv"
	"testing"

	proto "github.com/golang/protobuf/proto"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snakebite-go/hdfs/internal/proto/hadoopcommon"
	"github.com/snakebite-go/hdfs/internal/proto/hadoophdfs"
)

// fakeNamenodeHandler answers one call frame by method name, returning
// either a response message or a server-side exception (exceptionClass
// non-empty).
type fakeNamenodeHandler func(method string) (resp proto.Message, exceptionClass, errMsg string)

// listenFakeNamenode opens a real TCP listener on 127.0.0.1:0 and serves
// exactly one connection through handle, speaking the same framed
// prologue/connection-context/call protocol as a real NameNode (spec
// §4.D, §6.1), so NamenodeConnection.Call is exercised end to end rather
// than mocked above the wire.
func listenFakeNamenode(t *testing.T, handle fakeNamenodeHandler) NamenodeInfo {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { ln.Close() })

	go serveFakeNamenode(ln, handle)

	host, portStr, err := net.SplitHostPort(ln.Addr().String())
	require.NoError(t, err)
	port, err := strconv.ParseUint(portStr, 10, 16)
	require.NoError(t, err)
	return NamenodeInfo{Host: host, Port: uint16(port)}
}

func serveFakeNamenode(ln net.Listener, handle fakeNamenodeHandler) {
	conn, err := ln.Accept()
	if err != nil {
		return
	}
	defer conn.Close()

	prologue := make([]byte, 7)
	if _, err := io.ReadFull(conn, prologue); err != nil {
		return
	}

	ctxFrame := newFrameReader(conn)
	if _, err := readFrameLength(ctxFrame); err != nil {
		return
	}
	ctxRPCHeader := &hadoopcommon.RpcRequestHeaderProto{}
	if err := readDelimitedMessage(ctxFrame, ctxRPCHeader); err != nil {
		return
	}
	connCtx := &hadoopcommon.IpcConnectionContextProto{}
	if err := readDelimitedMessage(ctxFrame, connCtx); err != nil {
		return
	}

	for {
		fr := newFrameReader(conn)
		if _, err := readFrameLength(fr); err != nil {
			return
		}
		rpcHeader := &hadoopcommon.RpcRequestHeaderProto{}
		if err := readDelimitedMessage(fr, rpcHeader); err != nil {
			return
		}
		reqHeader := &hadoopcommon.RequestHeaderProto{}
		if err := readDelimitedMessage(fr, reqHeader); err != nil {
			return
		}
		if _, err := readDelimitedRaw(fr); err != nil {
			return
		}

		resp, exceptionClass, errMsg := handle(reqHeader.GetMethodName())

		status := hadoopcommon.RpcResponseHeaderProto_SUCCESS
		if exceptionClass != "" {
			status = hadoopcommon.RpcResponseHeaderProto_ERROR
		}
		callID := uint32(rpcHeader.GetCallId())
		respHeader := &hadoopcommon.RpcResponseHeaderProto{CallId: &callID, Status: &status}
		if exceptionClass != "" {
			respHeader.ExceptionClassName = &exceptionClass
			respHeader.ErrorMsg = &errMsg
		}

		var body []byte
		body, err = appendDelimitedMessage(body, respHeader)
		if err != nil {
			return
		}
		if resp != nil {
			body, err = appendDelimitedMessage(body, resp)
			if err != nil {
				return
			}
		}
		if err := writeFrame(conn, body); err != nil {
			return
		}
	}
}

// readDelimitedRaw reads and discards one varint-prefixed submessage
// without unmarshaling it into a concrete type, since the fake server
// only needs the method name from reqHeader to pick a response.
func readDelimitedRaw(fr *frameReader) ([]byte, error) {
	length, err := readUvarint(fr)
	if err != nil {
		return nil, err
	}
	return fr.read(int(length))
}

// fsStatsWithCapacity builds a getFsStats response with every required
// field set, reporting capacity and zero for the other counters.
func fsStatsWithCapacity(capacity uint64) *hadoophdfs.GetFsStatsResponseProto {
	var zero uint64
	return &hadoophdfs.GetFsStatsResponseProto{
		Capacity:        &capacity,
		Used:            &zero,
		Remaining:       &zero,
		UnderReplicated: &zero,
		CorruptBlocks:   &zero,
		MissingBlocks:   &zero,
	}
}

func TestNamenodeConnectionCallRoundTripsOverRealSocket(t *testing.T) {
	capacity := uint64(1024)
	info := listenFakeNamenode(t, func(method string) (proto.Message, string, string) {
		assert.Equal(t, "getFsStats", method)
		return fsStatsWithCapacity(capacity), "", ""
	})

	conn := NewNamenodeConnection(info, SimpleAuth{}, "alice", logrus.NewEntry(logrus.New()))
	req := &hadoophdfs.GetFsStatusRequestProto{}
	resp := &hadoophdfs.GetFsStatsResponseProto{}

	err := conn.Call("getFsStats", req, resp)
	require.NoError(t, err)
	assert.Equal(t, capacity, resp.GetCapacity())
}

func TestNamenodeConnectionCallSurfacesServerException(t *testing.T) {
	info := listenFakeNamenode(t, func(method string) (proto.Message, string, string) {
		return nil, "org.apache.hadoop.fs.FileNotFoundException", "no such file"
	})

	conn := NewNamenodeConnection(info, SimpleAuth{}, "alice", logrus.NewEntry(logrus.New()))
	src := "/missing"
	req := &hadoophdfs.GetFileInfoRequestProto{Src: &src}
	resp := &hadoophdfs.GetFileInfoResponseProto{}

	err := conn.Call("getFileInfo", req, resp)
	require.Error(t, err)

	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, "org.apache.hadoop.fs.FileNotFoundException", reqErr.ExceptionClass)
}

func TestNamenodeConnectionReusesSocketAcrossCalls(t *testing.T) {
	var calls int
	capacity := uint64(2048)
	info := listenFakeNamenode(t, func(method string) (proto.Message, string, string) {
		calls++
		return fsStatsWithCapacity(capacity), "", ""
	})

	conn := NewNamenodeConnection(info, SimpleAuth{}, "alice", logrus.NewEntry(logrus.New()))
	for i := 0; i < 3; i++ {
		resp := &hadoophdfs.GetFsStatsResponseProto{}
		require.NoError(t, conn.Call("getFsStats", &hadoophdfs.GetFsStatusRequestProto{}, resp))
		assert.Equal(t, capacity, resp.GetCapacity())
	}
	assert.Equal(t, 3, calls)
}

func TestClientCallFailsOverToSecondNamenodeOnStandbyException(t *testing.T) {
	capacity := uint64(4096)
	standby := listenFakeNamenode(t, func(method string) (proto.Message, string, string) {
		return nil, "org.apache.hadoop.ipc.StandbyException", "not active"
	})
	active := listenFakeNamenode(t, func(method string) (proto.Message, string, string) {
		return fsStatsWithCapacity(capacity), "", ""
	})

	log := logrus.NewEntry(logrus.New())
	conns := []*NamenodeConnection{
		NewNamenodeConnection(standby, SimpleAuth{}, "alice", log),
		NewNamenodeConnection(active, SimpleAuth{}, "alice", log),
	}
	client := NewClient(conns, log)

	resp := &hadoophdfs.GetFsStatsResponseProto{}
	err := client.Call("getFsStats", &hadoophdfs.GetFsStatusRequestProto{}, resp)
	require.NoError(t, err)
	assert.Equal(t, capacity, resp.GetCapacity())
	assert.Equal(t, active.Addr(), client.ActiveAddr())
}
