package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"

	"headercheck/internal/header"
)

// ConsoleSink renders results for humans. Text mode writes violations to
// errOut and progress/fix notices to out, matching the audit contract of
// the tool; json and ndjson modes write structured data to out only.
type ConsoleSink struct {
	out             io.Writer
	errOut          io.Writer
	format          string // "text", "json", "ndjson"
	verbose         bool
	mu              sync.Mutex
	results         []header.Result // For JSON array output
	allowedStatuses map[string]bool
}

func NewConsoleSink(out, errOut io.Writer, format string, verbose bool, filterStatuses []string) *ConsoleSink {
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	if format == "" {
		format = "text"
	}

	s := &ConsoleSink{
		out:     out,
		errOut:  errOut,
		format:  format,
		verbose: verbose,
	}

	if len(filterStatuses) > 0 {
		s.allowedStatuses = make(map[string]bool)
		for _, st := range filterStatuses {
			s.allowedStatuses[strings.ToUpper(st)] = true
		}
	}

	return s
}

func (s *ConsoleSink) Write(v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeLocked(v)
}

func (s *ConsoleSink) writeLocked(v any) error {
	// Apply filtering if configured
	if len(s.allowedStatuses) > 0 {
		if r, ok := v.(header.Result); ok {
			if !s.allowedStatuses[string(r.Status)] {
				return nil
			}
		}
	}

	switch s.format {
	case "json":
		r, ok := v.(header.Result)
		if !ok {
			// Ignore lifecycle events in JSON console mode.
			return nil
		}
		s.results = append(s.results, r)
		return nil
	case "ndjson":
		encoder := json.NewEncoder(s.out)
		switch t := v.(type) {
		case Event:
			if err := encoder.Encode(t); err != nil {
				return err
			}
			return flushIfPossible(s.out)
		case header.Result:
			if err := encoder.Encode(eventFromResult(t)); err != nil {
				return err
			}
			return flushIfPossible(s.out)
		default:
			return nil
		}
	case "text":
		r, ok := v.(header.Result)
		if !ok {
			// Ignore events in text mode.
			return nil
		}
		if err := s.writeText(r); err != nil {
			return err
		}
		return flushIfPossible(s.out)
	default:
		return fmt.Errorf("unsupported console format: %s", s.format)
	}
}

func (s *ConsoleSink) writeText(r header.Result) error {
	red := color.New(color.FgRed)
	green := color.New(color.FgGreen)

	switch r.Outcome {
	case header.OutcomeCorrect:
		if !s.verbose {
			return nil
		}
		_, err := green.Fprintf(s.out, "Copyright header in '%s' is correct.\n", r.Path)
		return err
	case header.OutcomeSkippedEmpty:
		if !s.verbose {
			return nil
		}
		_, err := fmt.Fprintf(s.out, "Skipping empty file '%s'.\n", r.Path)
		return err
	case header.OutcomeFixed:
		_, err := fmt.Fprintf(s.out, "Adding missing Copyright to '%s'\n", r.Path)
		return err
	case header.OutcomeMissing:
		_, err := red.Fprintf(s.errOut, "File '%s' is missing a copyright header.\n", r.Path)
		return err
	case header.OutcomeIncorrect:
		if _, err := red.Fprintf(s.errOut, "Incorrect Copyright header in '%s'\n", r.Path); err != nil {
			return err
		}
		if !s.verbose {
			return nil
		}
		for _, line := range r.Diff {
			if _, err := fmt.Fprintf(s.errOut, "  %s\n", line); err != nil {
				return err
			}
		}
		return nil
	default:
		_, err := red.Fprintf(s.errOut, "Error checking '%s': %s\n", r.Path, r.Message)
		return err
	}
}

func (s *ConsoleSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.format == "json" {
		encoder := json.NewEncoder(s.out)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(s.results); err != nil {
			return err
		}
		return flushIfPossible(s.out)
	}
	if s.format != "text" && s.format != "ndjson" {
		return fmt.Errorf("unsupported console format: %s", s.format)
	}
	return nil
}
