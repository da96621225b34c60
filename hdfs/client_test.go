package hdfs

import (
	"bytes"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/snakebite-go/hdfs/confload"
)

func minimalConfig() confload.Config {
	return confload.Config{
		Namenodes:     []confload.Namenode{{Host: "nn1", Port: 8020}},
		EffectiveUser: "alice",
	}
}

func TestNewDefaultsToADiscardingLogger(t *testing.T) {
	c, err := New(minimalConfig(), nil)
	assert.NoError(t, err)
	assert.Equal(t, io.Discard, c.log.Logger.Out)
}

func TestNewKeepsCallerSuppliedLogger(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	entry := logrus.NewEntry(logger)

	c, err := New(minimalConfig(), entry)
	assert.NoError(t, err)
	assert.Same(t, entry, c.log)
}

func TestNewRejectsSASLWithoutAuthMethod(t *testing.T) {
	cfg := minimalConfig()
	cfg.UseSASL = true
	_, err := NewWithAuth(cfg, nil, nil)
	assert.Error(t, err)
}
