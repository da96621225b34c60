package hdfs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOkResultIsSuccessful(t *testing.T) {
	r := okResult("/a")
	assert.Equal(t, OperationResult{Path: "/a", Result: true}, r)
}

func TestErrResultCarriesMessage(t *testing.T) {
	r := errResult("/a", errors.New("boom"))
	assert.Equal(t, OperationResult{Path: "/a", Result: false, Error: "boom"}, r)
}

func TestFileNotFoundErrorMessage(t *testing.T) {
	err := &FileNotFoundError{Path: "/missing"}
	assert.Contains(t, err.Error(), "/missing")
}

func TestDirectoryErrorMessage(t *testing.T) {
	err := &DirectoryError{Path: "/adir"}
	assert.Contains(t, err.Error(), "is a directory")
}
