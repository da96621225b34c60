package hdfs

// OperationResult is one path's outcome from a multi-path operation (spec
// §4.I "yield result records"). Result is true on success; Error carries
// the reason otherwise, including soft failures like mkdir-on-existing
// that the source reports as a result record rather than aborting the
// whole batch.
type OperationResult struct {
	Path   string
	Result bool
	Error  string
}

func okResult(path string) OperationResult {
	return OperationResult{Path: path, Result: true}
}

func errResult(path string, err error) OperationResult {
	return OperationResult{Path: path, Result: false, Error: err.Error()}
}
