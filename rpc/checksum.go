package rpc

import "hash/crc32"

var castagnoliTable = crc32.MakeTable(crc32.Castagnoli)

// verifyChunk checks a chunk's checksum against the wire value using
// whichever table the DataNode negotiated for this block (spec §4.C).
// NULL checksums never reach here: the caller only invokes verifyChunk when
// check_crc is requested and the negotiated type isn't NULL (see
// rpc/datanode.go and spec §9 open question (a)).
func verifyChunk(table *crc32.Table, chunk []byte, want uint32) bool {
	return crc32.Checksum(chunk, table) == want
}
