package hdfs

import "github.com/snakebite-go/hdfs/internal/proto/hadoophdfs"

// FileStatus is the client-facing projection of one inode's metadata
// (spec §4.I ls/stat).
type FileStatus struct {
	Path             string
	IsDir            bool
	IsSymlink        bool
	Length           uint64
	Permission       uint32
	Owner            string
	Group            string
	ModificationTime uint64
	AccessTime       uint64
	Replication      uint32
	BlockSize        uint64
}

func newFileStatus(path string, fs *hadoophdfs.HdfsFileStatusProto) FileStatus {
	return FileStatus{
		Path:             path,
		IsDir:            fs.GetFileType() == hadoophdfs.HdfsFileStatusProto_IS_DIR,
		IsSymlink:        fs.GetFileType() == hadoophdfs.HdfsFileStatusProto_IS_SYMLINK,
		Length:           fs.GetLength(),
		Permission:       fs.GetPermission().GetPerm(),
		Owner:            fs.GetOwner(),
		Group:            fs.GetGroup(),
		ModificationTime: fs.GetModificationTime(),
		AccessTime:       fs.GetAccessTime(),
		Replication:      fs.GetBlockReplication(),
		BlockSize:        fs.GetBlocksize(),
	}
}

// Stat returns the first resolved path's status as a one-element slice
// (spec §4.I "stat"), raising FileNotFoundError if the NameNode reports no
// inode there. Later resolved paths are not looked up.
func (c *Client) Stat(paths []string) ([]FileStatus, error) {
	expanded, err := c.expandAll(paths, true)
	if err != nil {
		return nil, err
	}

	out := make([]FileStatus, 0, len(expanded))
	for _, resolved := range expanded {
		fs, err := c.getFileInfo(resolved)
		if err != nil {
			return nil, err
		}
		if fs == nil {
			return nil, &FileNotFoundError{Path: resolved}
		}
		return append(out, newFileStatus(resolved, fs)), nil
	}
	return out, nil
}

// Test reports the boolean predicate named by exists/directory/zeroLength
// (spec §4.I "test"). A missing path returns false for any requested
// predicate rather than raising.
func (c *Client) Test(path string, exists, directory, zeroLength bool) (bool, error) {
	resolved, err := c.resolve(path)
	if err != nil {
		return false, err
	}
	fs, err := c.getFileInfo(resolved)
	if err != nil {
		return false, err
	}
	if fs == nil {
		return false, nil
	}
	if directory && fs.GetFileType() != hadoophdfs.HdfsFileStatusProto_IS_DIR {
		return false, nil
	}
	if zeroLength && fs.GetLength() != 0 {
		return false, nil
	}
	return true, nil
}
