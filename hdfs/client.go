// Package hdfs implements the path-operation surface of an HDFS client:
// ls, stat, rename, delete, mkdir, chmod/chown/chgrp, setrep, touchz, cat,
// copyToLocal, getmerge, tail, df/du/count/serverdefaults, test, and glob
// expansion, all built on the NameNode/DataNode wire protocol in the rpc
// package.
package hdfs

import (
	"fmt"
	"io"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/snakebite-go/hdfs/confload"
	"github.com/snakebite-go/hdfs/internal/proto/hadoophdfs"
	"github.com/snakebite-go/hdfs/rpc"
)

// Client is the top-level collaborator: one HA-dispatched NameNode channel
// set, the effective user it acts as, and a memoised server-defaults
// cache (spec §4.I touchz / serverdefaults).
type Client struct {
	nn            *rpc.Client
	effectiveUser string
	useTrash      bool
	log           *logrus.Entry
	metrics       *rpc.Metrics

	defaultsMu sync.Mutex
	defaults   *hadoophdfs.FsServerDefaultsProto
}

// New builds a Client from a resolved configuration record using plain IPC
// (spec §4.E "none"). It does not open any socket; NameNode connections
// are opened lazily on first use (spec §4.D "lazy connection").
//
// If cfg.UseSASL is true, use NewWithAuth instead: ticket-cache discovery
// and keytab loading for a real Kerberos deployment are the embedding
// application's job (spec §4.E, SPEC_FULL "supplemented features"), so
// this constructor can't build a working rpc.KerberosAuth on its own.
func New(cfg confload.Config, log *logrus.Entry) (*Client, error) {
	if cfg.UseSASL {
		return nil, fmt.Errorf("hdfs: use_sasl is set; use NewWithAuth with a SASL AuthMethod")
	}
	return NewWithAuth(cfg, log, rpc.SimpleAuth{})
}

// NewWithAuth is New, but with the handshake's AuthMethod hook supplied by
// the caller. Pass a *rpc.KerberosAuth built from an already-initialized
// krb5 client when cfg.UseSASL is true.
func NewWithAuth(cfg confload.Config, log *logrus.Entry, auth rpc.AuthMethod) (*Client, error) {
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("hdfs: invalid configuration: %w", err)
	}
	if cfg.UseSASL && auth == nil {
		return nil, fmt.Errorf("hdfs: use_sasl is set but no AuthMethod was supplied")
	}
	if auth == nil {
		auth = rpc.SimpleAuth{}
	}

	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = logrus.NewEntry(l)
	}

	conns := make([]*rpc.NamenodeConnection, len(cfg.Namenodes))
	for i, nn := range cfg.Namenodes {
		conn := rpc.NewNamenodeConnection(rpc.NamenodeInfo{
			Host:            nn.Host,
			Port:            nn.Port,
			ProtocolVersion: nn.Version,
		}, auth, cfg.EffectiveUser, log)
		conn.ConnectTimeout = cfg.SocketTimeout()
		conn.RequestTimeout = cfg.SocketTimeout()
		conns[i] = conn
	}

	client := rpc.NewClient(conns, log)
	client.MaxFailovers = cfg.FailoverBudget()
	client.MaxRetries = cfg.RetryBudget()

	return &Client{
		nn:            client,
		effectiveUser: cfg.EffectiveUser,
		useTrash:      cfg.UseTrash,
		log:           log,
		metrics:       rpc.DefaultMetrics(),
	}, nil
}

// Close tears down every NameNode connection.
func (c *Client) Close() error {
	return c.nn.Close()
}

// resolve normalizes p relative to the client's effective user.
func (c *Client) resolve(p string) (string, error) {
	return normalizePath(p, c.effectiveUser)
}

func (c *Client) getFileInfo(path string) (*hadoophdfs.HdfsFileStatusProto, error) {
	req := &hadoophdfs.GetFileInfoRequestProto{Src: &path}
	resp := &hadoophdfs.GetFileInfoResponseProto{}
	if err := c.nn.Call("getFileInfo", req, resp); err != nil {
		return nil, err
	}
	return resp.GetFs(), nil
}
