package pipeline

// Logger is the minimal logging interface the pipeline needs. Defined here
// (rather than importing the logging package) so runners are testable with a
// capturing logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(string, ...interface{})
}

// RunStats tracks aggregate counters across one run.
type RunStats struct {
	Total      int   // Planned operations.
	Completed  int   // Successful moves.
	Failed     int   // 0 or 1; the run halts on the first failure.
	Renamed    int   // Operations given a collision-avoidance suffix.
	Bins       int   // Split workflow: number of planned bins.
	TotalBytes int64 // Bytes moved successfully.
}

// plural returns "s" for counts other than one, for message formatting.
func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
