package rpc

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/snakebite-go/hdfs/internal/proto/hadoophdfs"
)

func datanodeWithUUID(uuid string) *hadoophdfs.DatanodeInfoProto {
	return &hadoophdfs.DatanodeInfoProto{
		Id: &hadoophdfs.DatanodeIDProto{DatanodeUuid: &uuid},
	}
}

func TestPrioritizeReplicasPreservesOrderWhenNoneFailed(t *testing.T) {
	locs := []*hadoophdfs.DatanodeInfoProto{
		datanodeWithUUID("a"), datanodeWithUUID("b"), datanodeWithUUID("c"),
	}

	out := prioritizeReplicas(locs, map[string]bool{})

	assert.Equal(t, []string{"a", "b", "c"}, uuids(out))
}

func TestPrioritizeReplicasDeprioritizesFailedStoragesButKeepsRelativeOrder(t *testing.T) {
	locs := []*hadoophdfs.DatanodeInfoProto{
		datanodeWithUUID("a"), datanodeWithUUID("b"), datanodeWithUUID("c"), datanodeWithUUID("d"),
	}
	failed := map[string]bool{"b": true, "d": true}

	out := prioritizeReplicas(locs, failed)

	assert.Equal(t, []string{"a", "c", "b", "d"}, uuids(out))
}

func uuids(locs []*hadoophdfs.DatanodeInfoProto) []string {
	out := make([]string, len(locs))
	for i, l := range locs {
		out[i] = l.GetId().GetDatanodeUuid()
	}
	return out
}

func TestMaxMinInt64(t *testing.T) {
	assert.Equal(t, int64(5), maxInt64(5, 3))
	assert.Equal(t, int64(5), maxInt64(3, 5))
	assert.Equal(t, int64(3), minInt64(5, 3))
	assert.Equal(t, int64(3), minInt64(3, 5))
}
