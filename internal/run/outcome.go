package run

import "time"

// Status classifies a single step outcome.
type Status string

const (
	StatusPass Status = "PASS"
	StatusFail Status = "FAIL"
	StatusWarn Status = "WARN"
	StatusSkip Status = "SKIP"
)

// Glyph returns the one-character stdout marker for the status.
func (s Status) Glyph() string {
	switch s {
	case StatusPass:
		return "✅"
	case StatusFail:
		return "❌"
	case StatusWarn:
		return "⚠️"
	case StatusSkip:
		return "⏭️"
	default:
		return "?"
	}
}

// Outcome is one immutable entry in the run's result log.
// Exactly one Outcome is recorded per executed step.
type Outcome struct {
	StepName  string    `json:"step_name"`
	Status    Status    `json:"status"`
	Message   string    `json:"message"`
	Detail    any       `json:"detail,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
