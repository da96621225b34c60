// Package confload models the resolved configuration record the hdfs
// client is constructed from (spec §6.3). It validates and defaults an
// already-resolved record; reading Hadoop XML or environment variables is
// the embedding application's job, not this package's.
package confload

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// Namenode is one candidate NameNode endpoint (spec §6.3 "namenodes").
type Namenode struct {
	Host    string `validate:"required"`
	Port    uint16 `validate:"required"`
	Version uint16
}

// Config is the resolved configuration record of spec §6.3.
type Config struct {
	Namenodes []Namenode `validate:"required,min=1,dive"`

	UseTrash bool
	UseSASL  bool

	EffectiveUser          string `validate:"required"`
	HDFSNamenodePrincipal  string

	ClientRetries          int `validate:"gte=0"`
	ClientSleepBaseMillis  int `validate:"gte=0"`
	ClientSleepMaxMillis   int `validate:"gte=0"`
	FailoverMaxAttempts    int `validate:"gte=0"`
	SocketTimeoutMillis    int `validate:"gte=0"`

	UseDatanodeHostname bool
}

const (
	defaultClientRetries       = 10
	defaultClientSleepBase     = 500
	defaultClientSleepMax      = 15000
	defaultFailoverMaxAttempts = 15
	defaultSocketTimeoutMillis = 10000
)

var validate = validator.New()

// WithDefaults returns a copy of c with zero-valued tunables set to the
// package's defaults (spec §4.F's 15/10 failover/retry budget, a 10s
// socket timeout). It does not mutate c.
func (c Config) WithDefaults() Config {
	if c.ClientRetries == 0 {
		c.ClientRetries = defaultClientRetries
	}
	if c.ClientSleepBaseMillis == 0 {
		c.ClientSleepBaseMillis = defaultClientSleepBase
	}
	if c.ClientSleepMaxMillis == 0 {
		c.ClientSleepMaxMillis = defaultClientSleepMax
	}
	if c.FailoverMaxAttempts == 0 {
		c.FailoverMaxAttempts = defaultFailoverMaxAttempts
	}
	if c.SocketTimeoutMillis == 0 {
		c.SocketTimeoutMillis = defaultSocketTimeoutMillis
	}
	return c
}

// Validate checks the record's structural invariants: at least one
// namenode, a non-empty effective user, non-negative tunables. It does
// not reach out to the network.
func (c Config) Validate() error {
	return validate.Struct(c)
}

// SocketTimeout and FailoverBudget convert the millisecond/int tunables
// into the types rpc.NamenodeConnection and rpc.Client actually take.
func (c Config) SocketTimeout() time.Duration {
	return time.Duration(c.SocketTimeoutMillis) * time.Millisecond
}

func (c Config) FailoverBudget() int {
	return c.FailoverMaxAttempts
}

func (c Config) RetryBudget() int {
	return c.ClientRetries
}
