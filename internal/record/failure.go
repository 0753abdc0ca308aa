// Package record owns the persisted fuzzing artifacts: the append-only
// failure log and the end-of-run summary. Field names match the artifact
// schema consumed by the CI tooling downstream.
package record

import "time"

// Failure is the structured capture of one caught target failure. Immutable
// once created; appended to both the log file and the in-memory list, never
// mutated or deleted within a run.
type Failure struct {
	Iteration int       `json:"iteration"`
	Time      time.Time `json:"time"`
	Module    string    `json:"module"`
	Function  string    `json:"function"`
	Args      []string  `json:"args"`
	Error     string    `json:"error"`
	Traceback string    `json:"traceback"`
}

// Summary is the single end-of-run aggregate artifact, written only when at
// least one failure occurred.
type Summary struct {
	Timestamp    time.Time `json:"timestamp"`
	Iterations   int       `json:"iterations"`
	Failures     int       `json:"failures"`
	FirstFailure *Failure  `json:"first_failure"`
}
