package flags

// Package flags defines canonical CLI flag names shared across the CLI and
// engine. Keeping these as constants avoids drift between Cobra flag wiring
// and other code paths that reference flags by name.
// IMPORTANT: These are flag *names* without leading dashes.
const (
	// Check
	FlagFix = "fix"

	// Output
	FlagConsoleFormat       = "console-format"
	FlagConsoleFilterStatus = "console-filter-status"
	FlagOut                 = "out"
	FlagOutFormat           = "out-format"
	FlagEmit                = "emit"
	FlagNoConsole           = "no-console"

	// Runtime
	FlagVerbose = "verbose"
)
