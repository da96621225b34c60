package hdfs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrashRootAndCurrentPaths(t *testing.T) {
	assert.Equal(t, "/user/alice/.Trash", trashRoot("alice"))
	assert.Equal(t, "/user/alice/.Trash/Current", trashCurrent("alice"))
}

func TestTrashCandidateFirstAttemptIsBareTarget(t *testing.T) {
	assert.Equal(t, "/user/alice/.Trash/Current/x", trashCandidate("/user/alice/.Trash/Current/x", 0))
}

func TestTrashCandidateRetryAppendsTimestampWithNoSeparator(t *testing.T) {
	orig := trashNowMillis
	defer func() { trashNowMillis = orig }()
	trashNowMillis = func() int64 { return 1234567890123 }

	got := trashCandidate("/user/alice/.Trash/Current/x", 1)
	assert.Equal(t, "/user/alice/.Trash/Current/x1234567890123", got)
}
