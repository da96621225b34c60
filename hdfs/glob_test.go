package hdfs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasGlobMetaDetectsEachMetacharacter(t *testing.T) {
	for _, p := range []string{"/a*", "/a?", "/a[bc]", "/a{b,c}", "/a}"} {
		assert.True(t, hasGlobMeta(p), p)
	}
	assert.False(t, hasGlobMeta("/a/plain/path"))
}

func TestExpandBracesSingleGroup(t *testing.T) {
	got := expandBraces("/data/{a,b,c}/file")
	assert.Equal(t, []string{"/data/a/file", "/data/b/file", "/data/c/file"}, got)
}

func TestExpandBracesLeftToRightRecursion(t *testing.T) {
	got := expandBraces("/{a,b}/{x,y}")
	assert.Equal(t, []string{"/a/x", "/a/y", "/b/x", "/b/y"}, got)
}

func TestExpandBracesAllowsEmptyAlternative(t *testing.T) {
	got := expandBraces("/data/{,.bak}/file")
	assert.Equal(t, []string{"/data//file", "/data/.bak/file"}, got)
}

func TestExpandBracesNoBracesIsIdentity(t *testing.T) {
	got := expandBraces("/plain/path")
	assert.Equal(t, []string{"/plain/path"}, got)
}

func TestExpandBracesRespectsNesting(t *testing.T) {
	got := expandBraces("/{a,b{c,d}}/file")
	assert.Equal(t, []string{"/a/file", "/bc/file", "/bd/file"}, got)
}
