package hdfs

import "github.com/snakebite-go/hdfs/internal/proto/hadoophdfs"

// Ls lists each resolved path (spec §4.I "ls"): a plain file is emitted
// when found or when includeToplevel is set; a directory's children are
// paged through getListing when includeChildren is set, descending into
// child directories when recurse is set.
func (c *Client) Ls(paths []string, recurse, includeToplevel, includeChildren bool) ([]FileStatus, error) {
	expanded, err := c.expandAll(paths, includeToplevel)
	if err != nil {
		return nil, err
	}

	var out []FileStatus
	for _, resolved := range expanded {
		fs, err := c.getFileInfo(resolved)
		if err != nil {
			return nil, err
		}
		if fs == nil {
			return nil, &FileNotFoundError{Path: resolved}
		}

		isDir := fs.GetFileType() == hadoophdfs.HdfsFileStatusProto_IS_DIR
		if !isDir || includeToplevel {
			out = append(out, newFileStatus(resolved, fs))
		}
		if isDir && includeChildren {
			children, err := c.lsChildren(resolved, recurse)
			if err != nil {
				return nil, err
			}
			out = append(out, children...)
		}
	}
	return out, nil
}

// lsChildren pages through one directory's getListing, recursing into
// child directories when recurse is set.
func (c *Client) lsChildren(dir string, recurse bool) ([]FileStatus, error) {
	var out []FileStatus
	startAfter := []byte{}
	for {
		req := &hadoophdfs.GetListingRequestProto{
			Src:          &dir,
			StartAfter:   startAfter,
			NeedLocation: boolPtr(false),
		}
		resp := &hadoophdfs.GetListingResponseProto{}
		if err := c.nn.Call("getListing", req, resp); err != nil {
			return nil, err
		}
		listing := resp.GetDirList()
		if listing == nil {
			return out, nil
		}

		entries := listing.GetPartialListing()
		for _, entry := range entries {
			childPath := joinPath(dir, string(entry.GetPath()))
			out = append(out, newFileStatus(childPath, entry))
			if recurse && entry.GetFileType() == hadoophdfs.HdfsFileStatusProto_IS_DIR {
				grandchildren, err := c.lsChildren(childPath, recurse)
				if err != nil {
					return nil, err
				}
				out = append(out, grandchildren...)
			}
		}

		if listing.GetRemainingEntries() == 0 || len(entries) == 0 {
			return out, nil
		}
		startAfter = entries[len(entries)-1].GetPath()
	}
}

func boolPtr(v bool) *bool { return &v }
