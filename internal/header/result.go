package header

type Status string

const (
	StatusPass    Status = "PASS"
	StatusFail    Status = "FAIL"
	StatusFixed   Status = "FIXED"
	StatusSkipped Status = "SKIPPED"
	StatusError   Status = "ERROR"
)

// Outcome is the fine-grained classification of a single file check.
// Status is derived from it and is what the exit code aggregation and
// console filtering operate on.
type Outcome string

const (
	OutcomeCorrect      Outcome = "correct"
	OutcomeFixed        Outcome = "fixed"
	OutcomeMissing      Outcome = "missing"
	OutcomeIncorrect    Outcome = "incorrect"
	OutcomeSkippedEmpty Outcome = "skipped-empty"
	OutcomeIOError      Outcome = "io-error"
)

type Result struct {
	Path    string  `json:"path"`
	Status  Status  `json:"status"`
	Outcome Outcome `json:"outcome"`
	Message string  `json:"message,omitempty"`
	// Diff holds the expected/found comparison lines for incorrect headers.
	// The text console renders it in verbose mode; structured sinks carry it
	// as-is.
	Diff []string `json:"diff,omitempty"`
}

func statusFor(o Outcome) Status {
	switch o {
	case OutcomeCorrect:
		return StatusPass
	case OutcomeFixed:
		return StatusFixed
	case OutcomeMissing, OutcomeIncorrect:
		return StatusFail
	case OutcomeSkippedEmpty:
		return StatusSkipped
	default:
		return StatusError
	}
}

func NewResult(path string, outcome Outcome, message string) Result {
	res := Result{
		Path:    path,
		Status:  statusFor(outcome),
		Outcome: outcome,
	}
	if message != "" {
		res.Message = message
	}
	return res
}
