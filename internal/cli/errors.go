package cli

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Exit codes.
const (
	exitFailure = 1 // the manifests were read but cannot be resolved
	exitUsage   = 2 // bad flags, arguments, or configuration
)

func usageError(err error) *ExitError {
	return &ExitError{Code: exitUsage, Message: err.Error()}
}
