package header

import (
	"bytes"
	"fmt"
	"os"
	"strings"
)

// Checker verifies file headers against the canonical Block and, in fix
// mode, inserts the block into files that have no header at all.
type Checker struct {
	Fix bool
}

// Check classifies a single file. In fix mode a missing header is inserted
// and the result reports OutcomeFixed; a present-but-wrong header is never
// touched, in any mode.
func (c *Checker) Check(path string) Result {
	content, err := os.ReadFile(path)
	if err != nil {
		return NewResult(path, OutcomeIOError, fmt.Sprintf("cannot read file: %v", err))
	}

	switch outcome := Classify(content); outcome {
	case OutcomeCorrect:
		return NewResult(path, OutcomeCorrect, "header present and exact")
	case OutcomeSkippedEmpty:
		return NewResult(path, OutcomeSkippedEmpty, "empty file")
	case OutcomeIncorrect:
		res := NewResult(path, OutcomeIncorrect, "header present but does not match the canonical block")
		res.Diff = Diff(Lines(), markerWindow(content))
		return res
	default:
		if !c.Fix {
			return NewResult(path, OutcomeMissing, "no copyright header found")
		}
		if err := Insert(path, content); err != nil {
			return NewResult(path, OutcomeIOError, fmt.Sprintf("cannot insert header: %v", err))
		}
		return NewResult(path, OutcomeFixed, "header inserted")
	}
}

// Classify applies the header tests to raw file content. The full-block
// match is deliberately not anchored to line 1: the block may appear
// anywhere in the content, so a shebang followed by the header still
// verifies as correct. This preserves the behavior of the grep-based
// checker this tool replaced.
func Classify(content []byte) Outcome {
	if len(content) == 0 {
		return OutcomeSkippedEmpty
	}
	if bytes.Contains(content, []byte(Block)) {
		return OutcomeCorrect
	}
	for _, line := range strings.Split(string(content), "\n") {
		if isMarkerLine(line) {
			return OutcomeIncorrect
		}
	}
	return OutcomeMissing
}

// markerWindow returns the lines of content starting at the first marker
// line, at most as many as the template has. This is the window the
// expected block is diffed against when a header is present but wrong.
func markerWindow(content []byte) []string {
	lines := strings.Split(strings.TrimSuffix(string(content), "\n"), "\n")
	for i, line := range lines {
		if !isMarkerLine(line) {
			continue
		}
		end := i + len(Lines())
		if end > len(lines) {
			end = len(lines)
		}
		return lines[i:end]
	}
	return nil
}
