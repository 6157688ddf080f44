package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"headercheck/internal/config"
	"headercheck/internal/engine"
	"headercheck/internal/flags"
	"headercheck/internal/logging"
)

var (
	buildVersion = "dev"
	buildCommit  = "unknown"
	buildDate    = "unknown"
)

var cfg = config.New()

var rootCmd = &cobra.Command{
	Use:   "headercheck [flags] FILE...",
	Short: "Verify (and optionally insert) the canonical copyright header in source files",
	Long: `Headercheck verifies that each given file starts with the canonical
copyright/license header, and reports the files that do not.

Headercheck is audit-first: a file that needed fixing still fails the run,
even when --fix corrected it, so CI trips on any non-conformant file.

Rules per file:
  - header present and byte-exact: conformant
  - no copyright marker anywhere: missing; inserted when --fix is on,
    directly after a shebang line if the file has one
  - a copyright marker exists but the block is not exact: incorrect;
    never auto-fixed, never modified
  - empty files are skipped and never affect the exit code

Output:
	Console output is controlled by --console-format (default: text).
	Structured outputs can be written via:
	- --out / --out-format: write an aggregate JSON array or NDJSON stream to a file
	- --emit: write an additional structured stream to stdout (json or ndjson)
	- --no-console: suppress the console sink (use with --emit/--out for machine output)

	NDJSON mode emits one JSON object per line. Objects are lifecycle Events with a
	"type" field (run.started, file.result, run.finished). File results are
	represented as an Event with type "file.result" carrying the result fields
	(path, status, outcome, message, diff).

Exit codes:
	0 = every file already conformant
	1 = violations found (missing or incorrect headers, whether or not --fix corrected them)
	2 = partial failure (some paths could not be read)
	3 = fatal error (check did not run)

Examples:
  # Check files explicitly, as a CI step does
  headercheck improver/cli/*.py

  # Insert the header into files that have none
  headercheck --fix new_module.py

  # Show the diff for files whose header is present but wrong
  headercheck --verbose suspicious.py

  # AI Agent: stream machine-readable events to stdout
  headercheck --no-console --emit ndjson improver/*.py
`,
	Args: cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 && cmd.Flags().NFlag() == 0 {
			_ = cmd.Help()
			return
		}

		if len(args) == 0 {
			fmt.Fprintln(os.Stderr, "Error: at least one file path must be provided")
			os.Exit(3)
		}

		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(3)
		}

		log := logging.New(os.Stdout, cfg.Runtime.Verbose)
		eng := engine.New(log)
		os.Exit(eng.Run(cfg, args))
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&cfg.Runtime.Verbose, flags.FlagVerbose, "v", false, "Print per-file progress, confirm correct headers, and show a diff on mismatch")

	// Check
	rootCmd.Flags().BoolVarP(&cfg.Check.Fix, flags.FlagFix, "f", false, "Insert the canonical header into files that are missing one")

	// Output
	rootCmd.Flags().StringVar(&cfg.Output.ConsoleFormat, flags.FlagConsoleFormat, "text", "Console output format: text|json|ndjson (default: text)")
	rootCmd.Flags().StringSliceVar(&cfg.Output.ConsoleFilterStatus, flags.FlagConsoleFilterStatus, nil, "Filter console output by status (PASS, FAIL, FIXED, SKIPPED, ERROR). Comma-separated.")
	rootCmd.Flags().StringVar(&cfg.Output.Out, flags.FlagOut, "", "Write structured output to this path")
	rootCmd.Flags().StringVar(&cfg.Output.OutFormat, flags.FlagOutFormat, "", "Structured output format for --out: json|ndjson (default: inferred from file extension)")
	rootCmd.Flags().StringSliceVar(&cfg.Output.Emit, flags.FlagEmit, nil, "Emit additional structured stream to stdout: json|ndjson (repeatable; comma-separated accepted)")
	rootCmd.Flags().BoolVar(&cfg.Output.NoConsole, flags.FlagNoConsole, false, "Suppress console output (use with --emit/--out)")
}

func SetBuildInfo(version, commit, date string) {
	if version != "" {
		buildVersion = version
	}
	if commit != "" {
		buildCommit = commit
	}
	if date != "" {
		buildDate = date
	}

	rootCmd.Version = fmt.Sprintf("%s (%s) %s", buildVersion, buildCommit, buildDate)
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

func BuildInfo() (version, commit, date string) {
	return buildVersion, buildCommit, buildDate
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
