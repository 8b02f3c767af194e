// Package logging provides structured logging for radar2mdx using slog.
//
// Two output formats are supported: a compact colorized text format for
// terminals and slog's JSON format for machines. Verbosity flags map to
// levels through [LevelFromVerbosity], and the configured logger is carried
// through command contexts with [NewContext] and [FromContext].
//
// For tests, [ForTest] routes log output through t.Log:
//
//	func TestSomething(t *testing.T) {
//		logger := logging.ForTest(t)
//		// logs appear in test output on failure
//	}
package logging
