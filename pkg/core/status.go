package core

// Status represents the reported outcome of a test, step, or suite entry.
//
// Statuses arrive as free-form strings in runner payloads. Anything outside
// the five defined values is bucketed as StatusUnknown at render time rather
// than rejected.
type Status string

// Status values.
const (
	StatusPassed  Status = "passed"
	StatusFailed  Status = "failed"
	StatusSkipped Status = "skipped"
	StatusPending Status = "pending"
	StatusUnknown Status = "unknown"
)

// Normalize maps an arbitrary status string onto one of the defined values.
// Unrecognized or empty values map to StatusUnknown.
func (s Status) Normalize() Status {
	switch s {
	case StatusPassed, StatusFailed, StatusSkipped, StatusPending:
		return s
	default:
		return StatusUnknown
	}
}

// IsPassed returns true if the status indicates success.
func (s Status) IsPassed() bool {
	return s == StatusPassed
}

// IsFailed returns true if the status indicates failure.
func (s Status) IsFailed() bool {
	return s == StatusFailed
}

// String returns the string representation of the status.
func (s Status) String() string {
	return string(s)
}
