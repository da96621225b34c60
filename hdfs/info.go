package hdfs

import "github.com/snakebite-go/hdfs/internal/proto/hadoophdfs"

// FsStatus is the cluster-wide capacity report returned by df (spec §4.I
// "df").
type FsStatus struct {
	Capacity        uint64
	Used            uint64
	Remaining       uint64
	UnderReplicated uint64
	CorruptBlocks   uint64
	MissingBlocks   uint64
}

// Df reports overall cluster capacity (spec §4.I "df").
func (c *Client) Df() (FsStatus, error) {
	req := &hadoophdfs.GetFsStatusRequestProto{}
	resp := &hadoophdfs.GetFsStatsResponseProto{}
	if err := c.nn.Call("getFsStats", req, resp); err != nil {
		return FsStatus{}, err
	}
	return FsStatus{
		Capacity:        resp.GetCapacity(),
		Used:            resp.GetUsed(),
		Remaining:       resp.GetRemaining(),
		UnderReplicated: resp.GetUnderReplicated(),
		CorruptBlocks:   resp.GetCorruptBlocks(),
		MissingBlocks:   resp.GetMissingBlocks(),
	}, nil
}

// ContentSummary is the per-path usage report backing both du and count
// (spec §4.I "du(), count()").
type ContentSummary struct {
	Path           string
	Length         uint64
	FileCount      uint64
	DirectoryCount uint64
	Quota          uint64
	SpaceConsumed  uint64
	SpaceQuota     uint64
}

// Du reports per-path space usage (spec §4.I "du"), one RPC per path.
func (c *Client) Du(paths []string) ([]ContentSummary, error) {
	return c.contentSummaries(paths)
}

// Count reports per-path file/directory/space usage (spec §4.I "count").
// It is the same underlying RPC as Du; the two are kept as distinct
// methods because callers format their output differently.
func (c *Client) Count(paths []string) ([]ContentSummary, error) {
	return c.contentSummaries(paths)
}

func (c *Client) contentSummaries(paths []string) ([]ContentSummary, error) {
	expanded, err := c.expandAll(paths, true)
	if err != nil {
		return nil, err
	}

	out := make([]ContentSummary, 0, len(expanded))
	for _, resolved := range expanded {
		req := &hadoophdfs.GetContentSummaryRequestProto{Path: &resolved}
		resp := &hadoophdfs.GetContentSummaryResponseProto{}
		if err := c.nn.Call("getContentSummary", req, resp); err != nil {
			return nil, err
		}
		summary := resp.GetSummary()
		out = append(out, ContentSummary{
			Path:           resolved,
			Length:         summary.GetLength(),
			FileCount:      summary.GetFileCount(),
			DirectoryCount: summary.GetDirectoryCount(),
			Quota:          summary.GetQuota(),
			SpaceConsumed:  summary.GetSpaceConsumed(),
			SpaceQuota:     summary.GetSpaceQuota(),
		})
	}
	return out, nil
}
