package hdfs

import (
	"fmt"
	"strings"
	"time"
)

func defaultTrashNowMillis() int64 {
	return time.Now().UnixMilli()
}

// trashRoot and trashCurrent return the per-user trash directories (spec
// §4.L).
func trashRoot(effectiveUser string) string {
	return userHome(effectiveUser) + "/.Trash"
}

func trashCurrent(effectiveUser string) string {
	return trashRoot(effectiveUser) + "/Current"
}

// trashNowMillis is overridden in tests; production callers get the wall
// clock. It is a var, not a direct time.Now call, so collision-retry tests
// can force a deterministic sequence.
var trashNowMillis = defaultTrashNowMillis

// trashCandidate is target on the first attempt (no collision yet), or
// target with the current millisecond timestamp appended directly, no
// separator, on a retry (spec §4.L "append unix-millisecond timestamp
// suffix"; spec.md's worked example renders this as "…/x<13-digit-
// timestamp>").
func trashCandidate(target string, attempt int) string {
	if attempt == 0 {
		return target
	}
	return fmt.Sprintf("%s%d", target, trashNowMillis())
}

// moveToTrash attempts to move path into the client's trash directory,
// per spec §4.L's enablement and collision-resolution rules. It reports
// moved=false when trash doesn't apply to this path, in which case the
// caller should fall back to a plain delete.
func (c *Client) moveToTrash(path string) (moved bool, err error) {
	root := trashRoot(c.effectiveUser)
	current := trashCurrent(c.effectiveUser)

	if path == root || strings.HasPrefix(path, root+"/") {
		return false, nil
	}
	if root == path || strings.HasPrefix(root, path+"/") {
		return false, fmt.Errorf("hdfs: cannot move trash ancestor %s into trash", path)
	}

	suffix := strings.TrimPrefix(path, "/")
	target := current + "/" + suffix

	for attempt := 0; attempt < 3; attempt++ {
		candidate := trashCandidate(target, attempt)

		exists, err := c.exists(candidate)
		if err != nil {
			return false, err
		}
		if exists {
			continue
		}

		parent := dirname(candidate)
		if _, err := c.Mkdir([]string{parent}, true, 0755); err != nil {
			return false, err
		}

		if err := c.Rename2(path, candidate, false); err != nil {
			if attempt < 2 {
				continue
			}
			return false, err
		}
		return true, nil
	}

	return false, fmt.Errorf("hdfs: could not find a free trash slot for %s after retries", path)
}

func (c *Client) exists(path string) (bool, error) {
	fs, err := c.getFileInfo(path)
	if err != nil {
		return false, err
	}
	return fs != nil, nil
}
