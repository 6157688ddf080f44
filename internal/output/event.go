package output

import "headercheck/internal/header"

// Event is a lifecycle record for NDJSON streaming output.
//
// In NDJSON mode, sinks emit Events (one JSON object per line), including:
// - run.started
// - file.result
// - run.finished
//
// JSON mode remains an aggregate of header.Result values.
type Event struct {
	Type string `json:"type"`
	Path string `json:"path,omitempty"`
	*header.Result
	Files    int `json:"files,omitempty"`
	ExitCode int `json:"exit_code,omitempty"`
}

func eventFromResult(r header.Result) Event {
	return Event{Type: "file.result", Path: r.Path, Result: &r}
}
