// Package errors provides error handling conventions for the radar2mdx CLI.
//
// It re-exports the wrapping helpers of github.com/cockroachdb/errors so the
// rest of the module has a single import for building error chains, and
// defines an ExitError type carrying the process exit code.
//
// # Exit Codes
//
//   - ExitSuccess (0): command completed successfully
//   - ExitUser (1): bad invocation or configuration
//   - ExitSystem (2): I/O failure while converting
//
// # ExitError
//
// [ExitError] wraps an underlying error with an exit code and an optional
// suggestion printed after the error message:
//
//	err := errors.NewUserError(errors.ErrMissingArgument, "Pass both --src and --out")
//	var exitErr *errors.ExitError
//	if errors.As(err, &exitErr) {
//	    os.Exit(exitErr.Code)
//	}
package errors
