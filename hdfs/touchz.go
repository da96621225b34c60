package hdfs

import "github.com/snakebite-go/hdfs/internal/proto/hadoophdfs"

const touchzClientName = "snakebite"

// Touchz creates each resolved path as a new empty file (spec §4.I
// "touchz"). An existing non-empty file raises FileError; an existing
// directory raises DirectoryError. replication and blockSize of zero fall
// back to the cached server defaults.
func (c *Client) Touchz(paths []string, replication uint32, blockSize uint64) ([]OperationResult, error) {
	out := make([]OperationResult, 0, len(paths))
	for _, p := range paths {
		resolved, err := c.resolve(p)
		if err != nil {
			return nil, err
		}
		if err := c.touchzOne(resolved, replication, blockSize); err != nil {
			out = append(out, errResult(resolved, err))
			continue
		}
		out = append(out, okResult(resolved))
	}
	return out, nil
}

func (c *Client) touchzOne(path string, replication uint32, blockSize uint64) error {
	fs, err := c.getFileInfo(path)
	if err != nil {
		return err
	}
	if fs != nil {
		if fs.GetFileType() == hadoophdfs.HdfsFileStatusProto_IS_DIR {
			return &DirectoryError{Path: path}
		}
		if fs.GetLength() != 0 {
			return &FileError{Path: path, Message: "file exists and is non-empty"}
		}
	}

	if replication == 0 || blockSize == 0 {
		defaults, err := c.serverDefaultsProto()
		if err != nil {
			return err
		}
		if replication == 0 {
			replication = defaults.GetReplication()
		}
		if blockSize == 0 {
			blockSize = defaults.GetBlockSize()
		}
	}

	overwrite := fs != nil
	createFlag := uint32(hadoophdfs.CreateFlagProto_CREATE)
	if overwrite {
		createFlag = uint32(hadoophdfs.CreateFlagProto_OVERWRITE)
	}
	mode := uint32(0644)
	clientName := touchzClientName
	createParent := false

	createReq := &hadoophdfs.CreateRequestProto{
		Src:          &path,
		Masked:       &hadoophdfs.FsPermissionProto{Perm: &mode},
		ClientName:   &clientName,
		CreateFlag:   &createFlag,
		CreateParent: &createParent,
		Replication:  &replication,
		BlockSize:    &blockSize,
	}
	if err := c.nn.Call("create", createReq, &hadoophdfs.CreateResponseProto{}); err != nil {
		return err
	}

	completeReq := &hadoophdfs.CompleteRequestProto{Src: &path, ClientName: &clientName}
	completeResp := &hadoophdfs.CompleteResponseProto{}
	if err := c.nn.Call("complete", completeReq, completeResp); err != nil {
		return err
	}
	if !completeResp.GetResult() {
		return &FileError{Path: path, Message: "complete() did not confirm the file"}
	}
	return nil
}
