package hdfs

import "github.com/snakebite-go/hdfs/internal/proto/hadoophdfs"

// ServerDefaults is the memoised, defensively-copied projection of the
// NameNode's configured defaults (spec §4.I "serverdefaults").
type ServerDefaults struct {
	BlockSize        uint64
	BytesPerChecksum uint32
	WritePacketSize  uint32
	Replication      uint32
	FileBufferSize   uint32
}

// ServerDefaults returns the NameNode's configured defaults, fetching and
// caching them on first use. Callers receive a copy; mutating it has no
// effect on the client's cache.
func (c *Client) ServerDefaults() (ServerDefaults, error) {
	proto, err := c.serverDefaultsProto()
	if err != nil {
		return ServerDefaults{}, err
	}
	return ServerDefaults{
		BlockSize:        proto.GetBlockSize(),
		BytesPerChecksum: proto.GetBytesPerChecksum(),
		WritePacketSize:  proto.GetWritePacketSize(),
		Replication:      proto.GetReplication(),
		FileBufferSize:   proto.GetFileBufferSize(),
	}, nil
}

// serverDefaultsProto returns the cached FsServerDefaultsProto, populating
// the cache with one getServerDefaults RPC on first call.
func (c *Client) serverDefaultsProto() (*hadoophdfs.FsServerDefaultsProto, error) {
	c.defaultsMu.Lock()
	defer c.defaultsMu.Unlock()

	if c.defaults != nil {
		return c.defaults, nil
	}

	req := &hadoophdfs.GetServerDefaultsRequestProto{}
	resp := &hadoophdfs.GetServerDefaultsResponseProto{}
	if err := c.nn.Call("getServerDefaults", req, resp); err != nil {
		return nil, err
	}
	c.defaults = resp.GetServerDefaults()
	return c.defaults, nil
}
