package rpc

import (
	"errors"
	"net"
	"sync"
	"syscall"

	proto "github.com/golang/protobuf/proto"
	"github.com/sirupsen/logrus"
)

// DefaultMaxFailovers and DefaultMaxRetries are the bounded-retry budgets
// of spec §4.F step 4.
const (
	DefaultMaxFailovers = 15
	DefaultMaxRetries   = 10
)

// failoverDecision is the outcome of classify for one failed call.
type failoverDecision int

const (
	decisionPropagate failoverDecision = iota
	decisionFailover
	decisionRetry
)

// classify maps a call error to a failover decision per spec §4.F step 2.
func classify(err error) failoverDecision {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		switch {
		case reqErr.IsStandbyException():
			return decisionFailover
		case reqErr.IsRetriableException():
			return decisionRetry
		default:
			return decisionPropagate
		}
	}

	var blockErr *BlockReadError
	if errors.As(err, &blockErr) {
		return decisionRetry
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return decisionFailover
	}

	var errno syscall.Errno
	if errors.As(err, &errno) {
		if errno == syscall.ECONNREFUSED || errno == syscall.EHOSTUNREACH {
			return decisionFailover
		}
	}

	return decisionPropagate
}

// Client is the HA dispatcher of spec §4.F: it round-robins RPC calls
// across a fixed set of candidate NameNode channels, failing over on
// standby indication and on timeouts, refused connections and unreachable
// hosts (other transport errors propagate), retrying in place on retriable
// indication, bounded by MaxFailovers/MaxRetries before raising
// OutOfNNError.
type Client struct {
	conns []*NamenodeConnection

	MaxFailovers int
	MaxRetries   int
	Log          *logrus.Entry
	Metrics      *Metrics

	mu     sync.Mutex
	active int
}

// NewClient wraps a non-empty, ordered list of candidate NameNode channels.
// The first channel is tried first.
func NewClient(conns []*NamenodeConnection, log *logrus.Entry) *Client {
	return &Client{
		conns:        conns,
		MaxFailovers: DefaultMaxFailovers,
		MaxRetries:   DefaultMaxRetries,
		Log:          log,
		Metrics:      defaultMetrics,
	}
}

// Close closes every underlying channel.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	var first error
	for _, conn := range c.conns {
		if err := conn.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// ActiveAddr reports the address of the channel currently believed active,
// mainly for logging and tests.
func (c *Client) ActiveAddr() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conns[c.active].Addr()
}

// Call dispatches method across the channel set per spec §4.F. It is safe
// for concurrent use; concurrent callers share the same "active" channel
// index and failover/retry budget, matching a single logical client.
func (c *Client) Call(method string, req, resp proto.Message) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	reasons := make([]NamenodeFailure, len(c.conns))
	for i, conn := range c.conns {
		reasons[i] = NamenodeFailure{Address: conn.Addr()}
	}

	failovers, retries := 0, 0

	for {
		conn := c.conns[c.active]
		err := conn.Call(method, req, resp)
		if err == nil {
			if failovers > 0 || retries > 0 {
				if c.Log != nil {
					c.Log.WithFields(logrus.Fields{
						"method":    method,
						"failovers": failovers,
						"retries":   retries,
					}).Debug("rpc: call recovered")
				}
			}
			return nil
		}

		reasons[c.active].Reason = err

		switch classify(err) {
		case decisionFailover:
			failovers++
			c.Metrics.incFailovers()
			if failovers > c.MaxFailovers {
				return &OutOfNNError{Reasons: reasons}
			}
			c.active = (c.active + 1) % len(c.conns)
			if c.Log != nil {
				c.Log.WithFields(logrus.Fields{
					"method": method,
					"next":   c.conns[c.active].Addr(),
				}).Warn("rpc: failing over")
			}

		case decisionRetry:
			retries++
			c.Metrics.incRetries()
			if retries > c.MaxRetries {
				return &OutOfNNError{Reasons: reasons}
			}

		default:
			return err
		}
	}
}

// CallBlockRead executes fn, one attempt at reading a block from a
// DataNode replica set, through the same classification as Call (spec
// §4.F step 2). A BlockReadError — every known replica for that block
// exhausted — is classified decisionRetry, same as a NameNode retriable
// exception: fn is expected to refresh the block's locations (itself a
// Call through this same dispatcher, so it benefits from any NameNode
// failover that happened since the block was first opened) before trying
// again, bounded by MaxRetries. Any other error, or a decisionFailover/
// decisionPropagate classification, is returned immediately — a
// DataNode-side read failure has nowhere else to fail over to but the
// fresh locations fn already asked for.
func (c *Client) CallBlockRead(fn func() error) error {
	retries := 0
	for {
		err := fn()
		if err == nil {
			return nil
		}
		if classify(err) != decisionRetry {
			return err
		}

		retries++
		c.Metrics.incRetries()
		if retries > c.MaxRetries {
			return err
		}
		if c.Log != nil {
			c.Log.WithError(err).Warn("rpc: block read exhausted replicas, refreshing locations")
		}
	}
}
