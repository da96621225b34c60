package confload

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{
		Namenodes:     []Namenode{{Host: "nn1", Port: 8020}},
		EffectiveUser: "alice",
	}
}

func TestWithDefaultsFillsZeroValuedTunables(t *testing.T) {
	cfg := validConfig().WithDefaults()

	assert.Equal(t, defaultClientRetries, cfg.ClientRetries)
	assert.Equal(t, defaultClientSleepBase, cfg.ClientSleepBaseMillis)
	assert.Equal(t, defaultClientSleepMax, cfg.ClientSleepMaxMillis)
	assert.Equal(t, defaultFailoverMaxAttempts, cfg.FailoverMaxAttempts)
	assert.Equal(t, defaultSocketTimeoutMillis, cfg.SocketTimeoutMillis)
}

func TestWithDefaultsDoesNotOverrideExplicitValues(t *testing.T) {
	cfg := validConfig()
	cfg.ClientRetries = 3
	cfg = cfg.WithDefaults()

	assert.Equal(t, 3, cfg.ClientRetries)
}

func TestWithDefaultsDoesNotMutateReceiver(t *testing.T) {
	cfg := validConfig()
	_ = cfg.WithDefaults()

	assert.Equal(t, 0, cfg.ClientRetries)
}

func TestValidateRejectsEmptyNamenodes(t *testing.T) {
	cfg := validConfig()
	cfg.Namenodes = nil

	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsMissingEffectiveUser(t *testing.T) {
	cfg := validConfig()
	cfg.EffectiveUser = ""

	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsNamenodeWithoutPort(t *testing.T) {
	cfg := validConfig()
	cfg.Namenodes = []Namenode{{Host: "nn1"}}

	assert.Error(t, cfg.Validate())
}

func TestValidateAcceptsDefaultedConfig(t *testing.T) {
	cfg := validConfig().WithDefaults()
	require.NoError(t, cfg.Validate())
}

func TestSocketTimeoutConvertsMillis(t *testing.T) {
	cfg := Config{SocketTimeoutMillis: 2500}
	assert.Equal(t, 2500*time.Millisecond, cfg.SocketTimeout())
}

func TestFailoverAndRetryBudgets(t *testing.T) {
	cfg := Config{FailoverMaxAttempts: 7, ClientRetries: 4}
	assert.Equal(t, 7, cfg.FailoverBudget())
	assert.Equal(t, 4, cfg.RetryBudget())
}
