package solr

// Op constants name backend calls for error context.
const (
	OpGet    = "get"
	OpSelect = "select"
	OpPing   = "ping"
)

// Error wraps an underlying error with the call and core for diagnostics.
type Error struct {
	Op   string
	Core string
	Err  error
}

func (e *Error) Error() string { return e.Op + " " + e.Core + ": " + e.Err.Error() }
func (e *Error) Unwrap() error { return e.Err }
