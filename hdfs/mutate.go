package hdfs

import (
	"strings"

	"github.com/snakebite-go/hdfs/internal/proto/hadoophdfs"
)

// Rename performs the legacy single-result rename RPC for each src, joining
// dst against the effective user's home when it isn't already absolute
// (spec §4.I "rename").
func (c *Client) Rename(srcs []string, dst string) ([]OperationResult, error) {
	dstResolved, err := c.resolve(dst)
	if err != nil {
		return nil, err
	}

	expanded, err := c.expandAll(srcs, true)
	if err != nil {
		return nil, err
	}

	out := make([]OperationResult, 0, len(expanded))
	for _, srcResolved := range expanded {
		req := &hadoophdfs.RenameRequestProto{Src: &srcResolved, Dst: &dstResolved}
		resp := &hadoophdfs.RenameResponseProto{}
		if err := c.nn.Call("rename", req, resp); err != nil {
			out = append(out, errResult(srcResolved, err))
			continue
		}
		if !resp.GetResult() {
			out = append(out, errResult(srcResolved, &FileNotFoundError{Path: srcResolved}))
			continue
		}
		out = append(out, okResult(srcResolved))
	}
	return out, nil
}

// Rename2 performs the overwrite-aware rename RPC for a single src (spec
// §4.I "rename2"), translating the NameNode's exception text into
// FileAlreadyExistsError.
func (c *Client) Rename2(src, dst string, overwriteDest bool) error {
	srcResolved, err := c.resolve(src)
	if err != nil {
		return err
	}
	dstResolved, err := c.resolve(dst)
	if err != nil {
		return err
	}

	req := &hadoophdfs.Rename2RequestProto{
		Src:           &srcResolved,
		Dst:           &dstResolved,
		OverwriteDest: &overwriteDest,
	}
	resp := &hadoophdfs.Rename2ResponseProto{}
	if err := c.nn.Call("rename2", req, resp); err != nil {
		if isFileAlreadyExists(err) {
			return &FileAlreadyExistsError{Path: dstResolved}
		}
		return err
	}
	return nil
}

func isFileAlreadyExists(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "FileAlreadyExistsException") ||
		strings.Contains(msg, "rename destination directory is not empty")
}

// rawDelete issues the delete RPC directly, bypassing trash policy; used by
// Delete once it has decided trash doesn't apply, and by Rmdir.
func (c *Client) rawDelete(path string, recursive bool) error {
	req := &hadoophdfs.DeleteRequestProto{Src: &path, Recursive: &recursive}
	resp := &hadoophdfs.DeleteResponseProto{}
	if err := c.nn.Call("delete", req, resp); err != nil {
		return err
	}
	if !resp.GetResult() {
		return &FileNotFoundError{Path: path}
	}
	return nil
}

// Delete removes each resolved path (spec §4.I "delete" / §4.L). A
// directory target with recurse=false raises DirectoryError. When trash is
// enabled and applicable, the path is moved into trash instead of deleted.
func (c *Client) Delete(paths []string, recurse bool) ([]OperationResult, error) {
	expanded, err := c.expandAll(paths, true)
	if err != nil {
		return nil, err
	}

	out := make([]OperationResult, 0, len(expanded))
	for _, resolved := range expanded {
		fs, err := c.getFileInfo(resolved)
		if err != nil {
			out = append(out, errResult(resolved, err))
			continue
		}
		if fs != nil && fs.GetFileType() == hadoophdfs.HdfsFileStatusProto_IS_DIR && !recurse {
			out = append(out, errResult(resolved, &DirectoryError{Path: resolved}))
			continue
		}

		if c.useTrash {
			moved, err := c.moveToTrash(resolved)
			if err != nil {
				out = append(out, errResult(resolved, err))
				continue
			}
			if moved {
				out = append(out, okResult(resolved))
				continue
			}
		}

		if err := c.rawDelete(resolved, recurse); err != nil {
			out = append(out, errResult(resolved, err))
			continue
		}
		out = append(out, okResult(resolved))
	}
	return out, nil
}

// Rmdir removes each resolved path after confirming it is an empty
// directory (spec §4.I "rmdir").
func (c *Client) Rmdir(paths []string) ([]OperationResult, error) {
	expanded, err := c.expandAll(paths, true)
	if err != nil {
		return nil, err
	}

	out := make([]OperationResult, 0, len(expanded))
	for _, resolved := range expanded {
		fs, err := c.getFileInfo(resolved)
		if err != nil {
			out = append(out, errResult(resolved, err))
			continue
		}
		if fs == nil {
			out = append(out, errResult(resolved, &FileNotFoundError{Path: resolved}))
			continue
		}
		if fs.GetFileType() != hadoophdfs.HdfsFileStatusProto_IS_DIR {
			out = append(out, errResult(resolved, &DirectoryError{Path: resolved}))
			continue
		}

		children, err := c.lsChildren(resolved, false)
		if err != nil {
			out = append(out, errResult(resolved, err))
			continue
		}
		if len(children) > 0 {
			out = append(out, errResult(resolved, &DirectoryError{Path: resolved}))
			continue
		}

		if err := c.rawDelete(resolved, true); err != nil {
			out = append(out, errResult(resolved, err))
			continue
		}
		out = append(out, okResult(resolved))
	}
	return out, nil
}

// Mkdir creates each resolved path (spec §4.I "mkdir"). An existing path is
// reported as a soft failure rather than aborting the batch.
func (c *Client) Mkdir(paths []string, createParent bool, mode uint32) ([]OperationResult, error) {
	out := make([]OperationResult, 0, len(paths))
	for _, p := range paths {
		resolved, err := c.resolve(p)
		if err != nil {
			return nil, err
		}

		req := &hadoophdfs.MkdirsRequestProto{
			Src:          &resolved,
			Masked:       &hadoophdfs.FsPermissionProto{Perm: &mode},
			CreateParent: &createParent,
		}
		resp := &hadoophdfs.MkdirsResponseProto{}
		if err := c.nn.Call("mkdirs", req, resp); err != nil {
			out = append(out, errResult(resolved, err))
			continue
		}
		if !resp.GetResult() {
			out = append(out, errResult(resolved, &FileAlreadyExistsError{Path: resolved}))
			continue
		}
		out = append(out, okResult(resolved))
	}
	return out, nil
}

// Setrep sets the replication factor on each file among paths, skipping
// directories when recurse descends into them instead of erroring (spec
// §4.I "setrep").
func (c *Client) Setrep(paths []string, replication uint32, recurse bool) ([]OperationResult, error) {
	expanded, err := c.expandAll(paths, true)
	if err != nil {
		return nil, err
	}

	var out []OperationResult
	for _, resolved := range expanded {
		results, err := c.setrepOne(resolved, replication, recurse)
		if err != nil {
			return nil, err
		}
		out = append(out, results...)
	}
	return out, nil
}

func (c *Client) setrepOne(path string, replication uint32, recurse bool) ([]OperationResult, error) {
	fs, err := c.getFileInfo(path)
	if err != nil {
		return nil, err
	}
	if fs == nil {
		return []OperationResult{errResult(path, &FileNotFoundError{Path: path})}, nil
	}

	if fs.GetFileType() == hadoophdfs.HdfsFileStatusProto_IS_DIR {
		if !recurse {
			return nil, nil
		}
		children, err := c.lsChildren(path, false)
		if err != nil {
			return nil, err
		}
		var out []OperationResult
		for _, child := range children {
			results, err := c.setrepOne(child.Path, replication, recurse)
			if err != nil {
				return nil, err
			}
			out = append(out, results...)
		}
		return out, nil
	}

	req := &hadoophdfs.SetReplicationRequestProto{Src: &path, Replication: &replication}
	resp := &hadoophdfs.SetReplicationResponseProto{}
	if err := c.nn.Call("setReplication", req, resp); err != nil {
		return []OperationResult{errResult(path, err)}, nil
	}
	if !resp.GetResult() {
		return []OperationResult{errResult(path, &FileNotFoundError{Path: path})}, nil
	}
	return []OperationResult{okResult(path)}, nil
}

// Chmod sets a POSIX-style permission mask on each resolved path (spec
// §4.I "chmod"); recurse includes the top-level path in the descent.
func (c *Client) Chmod(paths []string, mode uint32, recurse bool) ([]OperationResult, error) {
	return c.forEachResolved(paths, recurse, func(path string) error {
		req := &hadoophdfs.SetPermissionRequestProto{
			Src:        &path,
			Permission: &hadoophdfs.FsPermissionProto{Perm: &mode},
		}
		return c.nn.Call("setPermission", req, &hadoophdfs.SetPermissionResponseProto{})
	})
}

// Chown sets the owner on each resolved path (spec §4.I "chmod/chown/chgrp").
func (c *Client) Chown(paths []string, owner string, recurse bool) ([]OperationResult, error) {
	return c.forEachResolved(paths, recurse, func(path string) error {
		req := &hadoophdfs.SetOwnerRequestProto{Src: &path, Username: &owner}
		return c.nn.Call("setOwner", req, &hadoophdfs.SetOwnerResponseProto{})
	})
}

// Chgrp sets the group on each resolved path; a thin alias over the same
// setOwner RPC as Chown with only Groupname populated (SPEC_FULL
// "supplemented features").
func (c *Client) Chgrp(paths []string, group string, recurse bool) ([]OperationResult, error) {
	return c.forEachResolved(paths, recurse, func(path string) error {
		req := &hadoophdfs.SetOwnerRequestProto{Src: &path, Groupname: &group}
		return c.nn.Call("setOwner", req, &hadoophdfs.SetOwnerResponseProto{})
	})
}

// forEachResolved resolves every path, optionally recurses into
// directories, and applies fn to each, collecting one OperationResult per
// visited path.
func (c *Client) forEachResolved(paths []string, recurse bool, fn func(path string) error) ([]OperationResult, error) {
	expanded, err := c.expandAll(paths, true)
	if err != nil {
		return nil, err
	}

	var out []OperationResult
	for _, resolved := range expanded {
		results, err := c.applyRecursive(resolved, recurse, fn)
		if err != nil {
			return nil, err
		}
		out = append(out, results...)
	}
	return out, nil
}

func (c *Client) applyRecursive(path string, recurse bool, fn func(path string) error) ([]OperationResult, error) {
	var out []OperationResult
	if err := fn(path); err != nil {
		out = append(out, errResult(path, err))
	} else {
		out = append(out, okResult(path))
	}

	if !recurse {
		return out, nil
	}
	fs, err := c.getFileInfo(path)
	if err != nil || fs == nil || fs.GetFileType() != hadoophdfs.HdfsFileStatusProto_IS_DIR {
		return out, nil
	}
	children, err := c.lsChildren(path, false)
	if err != nil {
		return nil, err
	}
	for _, child := range children {
		results, err := c.applyRecursive(child.Path, recurse, fn)
		if err != nil {
			return nil, err
		}
		out = append(out, results...)
	}
	return out, nil
}
