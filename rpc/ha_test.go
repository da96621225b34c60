package rpc

import (
	"errors"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyStandbyExceptionFailsOver(t *testing.T) {
	err := &RequestError{ExceptionClass: "org.apache.hadoop.ipc.StandbyException", Message: "not active"}
	assert.Equal(t, decisionFailover, classify(err))
}

func TestClassifyRetriableExceptionRetries(t *testing.T) {
	err := &RequestError{ExceptionClass: "org.apache.hadoop.ipc.RetriableException", Message: "try again"}
	assert.Equal(t, decisionRetry, classify(err))
}

func TestClassifyOtherRequestErrorPropagates(t *testing.T) {
	err := &RequestError{ExceptionClass: "org.apache.hadoop.fs.FileNotFoundException", Message: "no such file"}
	assert.Equal(t, decisionPropagate, classify(err))
}

func TestClassifyBlockReadErrorRetries(t *testing.T) {
	err := &BlockReadError{BlockID: 1, Last: errors.New("boom")}
	assert.Equal(t, decisionRetry, classify(err))
}

func TestClassifyConnectionRefusedFailsOver(t *testing.T) {
	err := &ConnectionFailureError{Addr: "dn1:50010", Err: syscall.ECONNREFUSED}
	assert.Equal(t, decisionFailover, classify(err))
}

func TestClassifyHostUnreachableFailsOver(t *testing.T) {
	err := &TransportError{Op: "dial", Err: syscall.EHOSTUNREACH}
	assert.Equal(t, decisionFailover, classify(err))
}

func TestClassifyUnknownErrorPropagates(t *testing.T) {
	assert.Equal(t, decisionPropagate, classify(errors.New("mystery failure")))
}

func TestCallBlockReadRetriesOnBlockReadErrorUntilSuccess(t *testing.T) {
	c := &Client{MaxRetries: DefaultMaxRetries, Metrics: defaultMetrics}
	attempts := 0
	err := c.CallBlockRead(func() error {
		attempts++
		if attempts < 3 {
			return &BlockReadError{BlockID: 1, Last: errors.New("no reachable replica")}
		}
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

func TestCallBlockReadGivesUpAfterMaxRetries(t *testing.T) {
	c := &Client{MaxRetries: 2, Metrics: defaultMetrics}
	attempts := 0
	err := c.CallBlockRead(func() error {
		attempts++
		return &BlockReadError{BlockID: 1, Last: errors.New("no reachable replica")}
	})
	var blockErr *BlockReadError
	assert.ErrorAs(t, err, &blockErr)
	assert.Equal(t, 3, attempts)
}

func TestCallBlockReadPropagatesNonRetriableErrorImmediately(t *testing.T) {
	c := &Client{MaxRetries: DefaultMaxRetries, Metrics: defaultMetrics}
	attempts := 0
	sentinel := errors.New("disk full")
	err := c.CallBlockRead(func() error {
		attempts++
		return sentinel
	})
	assert.Same(t, sentinel, err)
	assert.Equal(t, 1, attempts)
}
