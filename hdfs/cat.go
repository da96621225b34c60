package hdfs

import (
	"io"

	"github.com/snakebite-go/hdfs/internal/proto/hadoophdfs"
	"github.com/snakebite-go/hdfs/rpc"
)

// LoadStream is a pull-style iterator over one file's bytes, backed by the
// block-read coordinator (spec §4.H / §5 "lazy sequence"). The first
// NameNode RPC isn't issued until the first NextLoad call.
type LoadStream struct {
	c        *Client
	path     string
	checkCRC bool
	opts     rpc.BlockReadOptions
	reader   *rpc.BlockReader
}

// NextLoad returns the stream's next chunk of bytes, or io.EOF once the
// file has been fully delivered.
func (s *LoadStream) NextLoad() ([]byte, error) {
	if s.reader == nil {
		fs, err := s.c.getFileInfo(s.path)
		if err != nil {
			return nil, err
		}
		if fs == nil {
			return nil, &FileNotFoundError{Path: s.path}
		}
		if fs.GetFileType() == hadoophdfs.HdfsFileStatusProto_IS_DIR {
			return nil, &DirectoryError{Path: s.path}
		}

		opts := s.opts
		opts.CheckCRC = s.checkCRC
		reader := rpc.NewBlockReader(s.c.nn, s.path, int64(fs.GetLength()), opts, s.c.metrics, s.c.log)
		if err := reader.Open(); err != nil {
			return nil, err
		}
		s.reader = reader
	}
	return s.reader.NextLoad()
}

// Close releases any open DataNode socket (spec §5 "cancellation").
func (s *LoadStream) Close() error {
	if s.reader == nil {
		return nil
	}
	return s.reader.Close()
}

// Cat opens a lazy byte stream over one validated, non-directory path
// (spec §4.I "cat").
func (c *Client) Cat(p string, checkCRC bool) (*LoadStream, error) {
	resolved, err := c.resolve(p)
	if err != nil {
		return nil, err
	}
	return &LoadStream{c: c, path: resolved, checkCRC: checkCRC}, nil
}

// WriteTo drains the stream into w, returning the number of bytes copied.
// It is a convenience wrapper for callers that don't need per-chunk
// control over the pull loop.
func (s *LoadStream) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for {
		chunk, err := s.NextLoad()
		if len(chunk) > 0 {
			n, werr := w.Write(chunk)
			total += int64(n)
			if werr != nil {
				return total, werr
			}
		}
		if err == io.EOF {
			return total, nil
		}
		if err != nil {
			return total, err
		}
	}
}

// Tail opens a lazy byte stream over the last tailLength bytes of path
// (spec §4.I "tail"). tailLength must be positive and at most the
// cluster's configured block size.
func (c *Client) Tail(p string, tailLength int64, checkCRC bool) (*LoadStream, error) {
	if tailLength <= 0 {
		return nil, &InvalidInputError{Arg: "tailLength", Message: "must be positive"}
	}
	defaults, err := c.serverDefaultsProto()
	if err != nil {
		return nil, err
	}
	if uint64(tailLength) > defaults.GetBlockSize() {
		return nil, &InvalidInputError{Arg: "tailLength", Message: "must not exceed the cluster block size"}
	}

	resolved, err := c.resolve(p)
	if err != nil {
		return nil, err
	}
	return &LoadStream{
		c:        c,
		path:     resolved,
		checkCRC: checkCRC,
		opts:     rpc.BlockReadOptions{TailOnly: true, TailLength: tailLength},
	}, nil
}
