package models

import "time"

// RunReport summarizes one preparation run. It is written next to the
// generated inputs so a run can be audited afterwards.
type RunReport struct {
	RunID      string       `json:"runId"`
	ConfigPath string       `json:"configPath"`
	StartedAt  time.Time    `json:"startedAt"`
	FinishedAt time.Time    `json:"finishedAt"`
	TreeCount  int          `json:"treeCount"`
	Steps      []StepResult `json:"steps"`
	Artifacts  []Artifact   `json:"artifacts"`
}

// StepResult records the outcome of a single pipeline step.
type StepResult struct {
	Name     string        `json:"name"`
	Status   string        `json:"status"` // "ok", "failed", "skipped"
	Error    string        `json:"error,omitempty"`
	Duration time.Duration `json:"durationNs"`
}

// Artifact is a file produced by a run.
type Artifact struct {
	Path string `json:"path"`
	Size int64  `json:"size"`
}
