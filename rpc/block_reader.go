package rpc

import (
	"errors"
	"fmt"
	"io"
	"net"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/snakebite-go/hdfs/internal/proto/hadoophdfs"
)

// maxLoadBytes bounds one output chunk of the block-read coordinator (spec
// §4.H "internal chunking").
const maxLoadBytes = 16000

// defaultTailLength is the default window size for tail-only reads (spec
// §4.H inputs).
const defaultTailLength int64 = 1024

// BlockReadOptions configures one file's block-read coordinator run.
type BlockReadOptions struct {
	TailOnly       bool
	TailLength     int64
	CheckCRC       bool
	ConnectTimeout time.Duration
}

func (o BlockReadOptions) withDefaults() BlockReadOptions {
	if o.TailLength <= 0 {
		o.TailLength = defaultTailLength
	}
	if o.ConnectTimeout <= 0 {
		o.ConnectTimeout = 10 * time.Second
	}
	return o
}

// blockPlan is one block's resolved read window plus its replica candidates
// and read progress, tracked across replica failover within that block.
type blockPlan struct {
	block         *hadoophdfs.LocatedBlockProto
	offsetInBlock int64
	length        int64
	delivered     int64
	replicas      []*hadoophdfs.DatanodeInfoProto
	replicaIdx    int
}

// BlockReader is the per-file block-read coordinator of spec §4.H: it
// fetches block locations once, then hands out successive "loads" (byte
// chunks capped at maxLoadBytes and rounded down to a whole number of
// checksum chunks) by streaming from one replica per block, failing over
// to the next replica on any read or connect error.
//
// Per spec §5/§7, a BlockReader must not be silently restarted once it has
// produced output: callers construct it via Open, which performs the
// first RPC, and from the first successful NextLoad on must surface rather
// than retry errors across NameNode calls (that's §4.F's job one level up).
type BlockReader struct {
	nn   *Client
	path string
	opts BlockReadOptions

	metrics *Metrics
	log     *logrus.Entry

	plans     []*blockPlan
	planIdx   int
	cur       net.Conn
	curStream *DatanodeBlockStream

	fileLength     int64
	failedStorages map[string]bool
	started        bool
}

// NewBlockReader builds a coordinator for one file. fileLength is the
// length reported by the NameNode's file status for this path.
func NewBlockReader(nn *Client, path string, fileLength int64, opts BlockReadOptions, metrics *Metrics, log *logrus.Entry) *BlockReader {
	return &BlockReader{
		nn:             nn,
		path:           path,
		fileLength:     fileLength,
		opts:           opts.withDefaults(),
		metrics:        metrics,
		log:            log,
		failedStorages: make(map[string]bool),
	}
}

// Open performs the getBlockLocations call and computes each block's read
// window. It must be called exactly once, before the first NextLoad.
func (r *BlockReader) Open() error {
	fileLength := r.fileLength
	start := int64(0)
	if r.opts.TailOnly {
		start = fileLength - r.opts.TailLength
		if start < 0 {
			start = 0
		}
	}

	req := &hadoophdfs.GetBlockLocationsRequestProto{
		Src:    &r.path,
		Offset: uint64Ptr(uint64(start)),
		Length: uint64Ptr(uint64(fileLength)),
	}
	resp := &hadoophdfs.GetBlockLocationsResponseProto{}
	if err := r.nn.Call("getBlockLocations", req, resp); err != nil {
		return err
	}

	locations := resp.GetLocations()
	if locations == nil || fileLength == 0 {
		r.plans = nil
		return nil
	}

	end := fileLength
	for _, block := range locations.GetBlocks() {
		blockStart := int64(block.GetOffset())
		blockEnd := blockStart + int64(block.GetB().GetNumBytes())

		effStart := maxInt64(start, blockStart)
		effEnd := minInt64(end, blockEnd)
		if effEnd <= effStart {
			continue
		}

		r.plans = append(r.plans, &blockPlan{
			block:         block,
			offsetInBlock: effStart - blockStart,
			length:        effEnd - effStart,
			replicas:      prioritizeReplicas(block.GetLocs(), r.failedStorages),
		})
	}

	return nil
}

// NextLoad returns the next chunk of data, at most maxLoadBytes rounded
// down to the current block's checksum chunk size, or io.EOF once every
// block's window has been fully delivered.
func (r *BlockReader) NextLoad() ([]byte, error) {
	for {
		if r.curStream == nil {
			if r.planIdx >= len(r.plans) {
				return nil, io.EOF
			}
			if err := r.openReplica(r.plans[r.planIdx]); err != nil {
				return nil, err
			}
		}

		plan := r.plans[r.planIdx]
		remaining := plan.length - plan.delivered
		if remaining <= 0 {
			r.closeCurrent()
			r.planIdx++
			continue
		}

		want := maxLoadBytes
		if r.curStream.chunkSize > 0 {
			want = (maxLoadBytes / r.curStream.chunkSize) * r.curStream.chunkSize
			if want == 0 {
				want = r.curStream.chunkSize
			}
		}
		if int64(want) > remaining {
			want = int(remaining)
		}

		buf := make([]byte, want)
		n, err := io.ReadFull(r.curStream, buf)
		r.started = true
		if n > 0 {
			plan.delivered += int64(n)
		}

		if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
			r.markCurrentReplicaFailed(err)
			r.closeCurrent()
			if openErr := r.openReplica(plan); openErr != nil {
				return nil, openErr
			}
			if n > 0 {
				return buf[:n], nil
			}
			continue
		}

		return buf[:n], nil
	}
}

// openReplica opens a connection to one of plan's replicas, routing the
// attempt through r.nn.CallBlockRead so that exhausting every known
// replica (a BlockReadError) refreshes the block's locations from the
// NameNode and retries, instead of surfacing directly to the caller.
func (r *BlockReader) openReplica(plan *blockPlan) error {
	return r.nn.CallBlockRead(func() error {
		err := r.tryOpenReplicas(plan)
		if err == nil {
			return nil
		}
		var blockErr *BlockReadError
		if errors.As(err, &blockErr) {
			if refreshErr := r.refreshBlockLocations(plan); refreshErr != nil {
				return refreshErr
			}
		}
		return err
	})
}

// refreshBlockLocations re-fetches locations for plan's block alone and
// rebuilds its replica priority list, resuming the replica cursor from the
// start of the refreshed set (spec §4.H step 3a's failed-storage
// deprioritization still applies via r.failedStorages).
func (r *BlockReader) refreshBlockLocations(plan *blockPlan) error {
	req := &hadoophdfs.GetBlockLocationsRequestProto{
		Src:    &r.path,
		Offset: uint64Ptr(uint64(plan.block.GetOffset())),
		Length: uint64Ptr(uint64(plan.block.GetB().GetNumBytes())),
	}
	resp := &hadoophdfs.GetBlockLocationsResponseProto{}
	if err := r.nn.Call("getBlockLocations", req, resp); err != nil {
		return err
	}

	locations := resp.GetLocations()
	if locations != nil {
		for _, block := range locations.GetBlocks() {
			if block.GetB().GetBlockId() != plan.block.GetB().GetBlockId() {
				continue
			}
			plan.block = block
			plan.replicas = prioritizeReplicas(block.GetLocs(), r.failedStorages)
			plan.replicaIdx = 0
			return nil
		}
	}

	return &BlockReadError{BlockID: plan.block.GetB().GetBlockId()}
}

// tryOpenReplicas pops replicas off plan's priority-ordered list until one
// connects and completes the OP_READ_BLOCK handshake, resuming from
// plan.delivered so a mid-block failover never duplicates or skips bytes.
func (r *BlockReader) tryOpenReplicas(plan *blockPlan) error {
	var lastErr error
	for plan.replicaIdx < len(plan.replicas) {
		dn := plan.replicas[plan.replicaIdx]
		plan.replicaIdx++

		addr := fmt.Sprintf("%s:%d", dn.GetId().GetIpAddr(), dn.GetId().GetXferPort())
		conn, err := net.DialTimeout("tcp", addr, r.opts.ConnectTimeout)
		if err != nil {
			lastErr = &ConnectionFailureError{Addr: addr, Err: err}
			r.failedStorages[dn.GetId().GetDatanodeUuid()] = true
			r.metrics.incReplicasSkipped()
			continue
		}

		stream, err := DialDatanodeBlockStream(
			conn,
			plan.block,
			uint64(plan.offsetInBlock+plan.delivered),
			uint64(plan.length-plan.delivered),
			r.opts.CheckCRC,
			r.metrics,
		)
		if err != nil {
			conn.Close()
			lastErr = err
			r.failedStorages[dn.GetId().GetDatanodeUuid()] = true
			r.metrics.incReplicasSkipped()
			continue
		}

		r.cur = conn
		r.curStream = stream
		return nil
	}

	return &BlockReadError{BlockID: plan.block.GetB().GetBlockId(), Last: lastErr}
}

func (r *BlockReader) markCurrentReplicaFailed(err error) {
	if r.log != nil {
		r.log.WithError(err).Warn("rpc: replica read failed, trying next")
	}
	plan := r.plans[r.planIdx]
	if plan.replicaIdx > 0 && plan.replicaIdx <= len(plan.replicas) {
		dn := plan.replicas[plan.replicaIdx-1]
		r.failedStorages[dn.GetId().GetDatanodeUuid()] = true
	}
}

func (r *BlockReader) closeCurrent() {
	if r.cur != nil {
		r.cur.Close()
	}
	r.cur = nil
	r.curStream = nil
}

// Close tears down any in-flight replica connection.
func (r *BlockReader) Close() error {
	r.closeCurrent()
	return nil
}

// prioritizeReplicas orders a block's replicas so that storages previously
// marked failed for this file are served last (spec §4.H step 3a), while
// preserving the NameNode's original relative order within each group.
func prioritizeReplicas(locs []*hadoophdfs.DatanodeInfoProto, failed map[string]bool) []*hadoophdfs.DatanodeInfoProto {
	out := make([]*hadoophdfs.DatanodeInfoProto, 0, len(locs))
	var deprioritized []*hadoophdfs.DatanodeInfoProto
	for _, dn := range locs {
		if failed[dn.GetId().GetDatanodeUuid()] {
			deprioritized = append(deprioritized, dn)
		} else {
			out = append(out, dn)
		}
	}
	return append(out, deprioritized...)
}

func uint64Ptr(v uint64) *uint64 { return &v }

func maxInt64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

func minInt64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
