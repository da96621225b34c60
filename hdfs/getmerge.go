package hdfs

import "os"

// GetMerge concatenates the non-recursive children of path into a single
// local file at dst (spec §4.I "getmerge"), optionally appending a
// newline after each child's bytes.
func (c *Client) GetMerge(path, dst string, newline, checkCRC bool) error {
	resolved, err := c.resolve(path)
	if err != nil {
		return err
	}

	children, err := c.lsChildren(resolved, false)
	if err != nil {
		return err
	}

	partial := dst + copyingSuffix
	f, err := os.Create(partial)
	if err != nil {
		return err
	}

	if mergeErr := c.mergeInto(f, children, newline, checkCRC); mergeErr != nil {
		f.Close()
		os.Remove(partial)
		return mergeErr
	}

	if err := f.Close(); err != nil {
		os.Remove(partial)
		return err
	}
	return os.Rename(partial, dst)
}

func (c *Client) mergeInto(f *os.File, children []FileStatus, newline, checkCRC bool) error {
	for _, child := range children {
		if child.IsDir {
			continue
		}
		stream, err := c.Cat(child.Path, checkCRC)
		if err != nil {
			return err
		}
		_, err = stream.WriteTo(f)
		closeErr := stream.Close()
		if err != nil {
			return err
		}
		if closeErr != nil {
			return closeErr
		}
		if newline {
			if _, err := f.Write([]byte{'\n'}); err != nil {
				return err
			}
		}
	}
	return nil
}
