package hdfs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePathPrependsHomeForRelativePaths(t *testing.T) {
	got, err := normalizePath("foo/bar", "alice")
	assert.NoError(t, err)
	assert.Equal(t, "/user/alice/foo/bar", got)
}

func TestNormalizePathCollapsesDuplicateSlashesAndDotDot(t *testing.T) {
	got, err := normalizePath("/a//b/../c/", "alice")
	assert.NoError(t, err)
	assert.Equal(t, "/a/c", got)
}

func TestNormalizePathRootStaysRoot(t *testing.T) {
	got, err := normalizePath("/", "alice")
	assert.NoError(t, err)
	assert.Equal(t, "/", got)
}

func TestNormalizePathRejectsEmpty(t *testing.T) {
	_, err := normalizePath("", "alice")
	assert.Error(t, err)
}

func TestUserHome(t *testing.T) {
	assert.Equal(t, "/user/bob", userHome("bob"))
}

func TestJoinPath(t *testing.T) {
	assert.Equal(t, "/a/b/c", joinPath("/a/b", "c"))
}

func TestBasenameAndDirname(t *testing.T) {
	assert.Equal(t, "c", basename("/a/b/c"))
	assert.Equal(t, "/a/b", dirname("/a/b/c"))
}
