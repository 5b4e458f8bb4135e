package mediacsv

// FileStatus is the outcome of processing one input file.
type FileStatus string

// FileStatus constants.
const (
	StatusSucceeded FileStatus = "succeeded"
	StatusFailed    FileStatus = "failed"
	StatusSkipped   FileStatus = "skipped"
)

// FileResult is the outcome of processing one input file. Err is set for
// skipped and failed files; Output and Count are set for successful ones.
type FileResult struct {
	Input  string
	Output string
	Count  int
	Status FileStatus
	Err    error
	// Unexpected marks a failure that was not reported as an error value,
	// such as a recovered panic.
	Unexpected bool
}

// BatchResult collects the per-file results of a batch run in input order.
type BatchResult struct {
	Files []*FileResult
}

// Succeeded returns the number of files converted successfully.
func (r *BatchResult) Succeeded() int { return r.count(StatusSucceeded) }

// Failed returns the number of files that could not be converted.
func (r *BatchResult) Failed() int { return r.count(StatusFailed) }

// Skipped returns the number of input files that were not found.
func (r *BatchResult) Skipped() int { return r.count(StatusSkipped) }

// Records returns the total number of records written across all files.
func (r *BatchResult) Records() int {
	var n int
	for _, f := range r.Files {
		n += f.Count
	}
	return n
}

func (r *BatchResult) count(status FileStatus) int {
	var n int
	for _, f := range r.Files {
		if f.Status == status {
			n++
		}
	}
	return n
}
