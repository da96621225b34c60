package hdfs

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/snakebite-go/hdfs/internal/proto/hadoophdfs"
)

// copyingSuffix marks a local file as an in-progress download, mirroring
// hadoop's own convention for partially-written output (spec §4.I
// "copyToLocal").
const copyingSuffix = "._COPYING_"

// CopyToLocal streams each resolved path to dst on the local filesystem
// (spec §4.I "copyToLocal"). When dst is an existing local directory, the
// base source is the dirname of the first resolved path; otherwise the
// base source is the first resolved path itself, however many paths are
// given.
func (c *Client) CopyToLocal(paths []string, dst string, checkCRC bool) ([]OperationResult, error) {
	if len(paths) == 0 {
		return nil, &InvalidInputError{Arg: "paths", Message: "must not be empty"}
	}

	resolved, err := c.expandAll(paths, true)
	if err != nil {
		return nil, err
	}

	dstIsDir := false
	if info, err := os.Stat(dst); err == nil {
		dstIsDir = info.IsDir()
	}

	base := resolved[0]
	if dstIsDir {
		base = dirname(resolved[0])
	}

	out := make([]OperationResult, 0, len(resolved))
	for _, p := range resolved {
		if err := c.copyOneToLocal(p, base, dst, checkCRC); err != nil {
			out = append(out, errResult(p, err))
			continue
		}
		out = append(out, okResult(p))
	}
	return out, nil
}

func (c *Client) copyOneToLocal(srcPath, base, dst string, checkCRC bool) error {
	fs, err := c.getFileInfo(srcPath)
	if err != nil {
		return err
	}
	if fs == nil {
		return &FileNotFoundError{Path: srcPath}
	}

	relPath := strings.TrimPrefix(strings.TrimPrefix(srcPath, base), "/")
	target := dst
	if relPath != "" {
		target = filepath.Join(dst, filepath.FromSlash(relPath))
	}

	if _, err := os.Stat(target); err == nil {
		return &FileError{Path: target, Message: "local target already exists"}
	}

	if fs.GetFileType() == hadoophdfs.HdfsFileStatusProto_IS_DIR {
		return os.MkdirAll(target, os.FileMode(fs.GetPermission().GetPerm()))
	}

	return c.streamToLocalFile(srcPath, target, checkCRC)
}

func (c *Client) streamToLocalFile(srcPath, target string, checkCRC bool) error {
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return err
	}

	partial := target + copyingSuffix
	f, err := os.Create(partial)
	if err != nil {
		return err
	}

	stream, err := c.Cat(srcPath, checkCRC)
	if err != nil {
		f.Close()
		os.Remove(partial)
		return err
	}

	_, copyErr := stream.WriteTo(f)
	closeErr := stream.Close()
	if ferr := f.Close(); ferr != nil && copyErr == nil {
		copyErr = ferr
	}
	if copyErr == nil {
		copyErr = closeErr
	}
	if copyErr != nil {
		os.Remove(partial)
		return copyErr
	}

	return os.Rename(partial, target)
}
