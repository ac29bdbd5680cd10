package jobe

type runRequest struct {
	RunSpec runSpec `json:"run_spec"`
}

type runSpec struct {
	LanguageID string        `json:"language_id"`
	SourceCode string        `json:"sourcecode"`
	Input      string        `json:"input"`
	Parameters runParameters `json:"parameters"`
}

type runParameters struct {
	CPUTime     int `json:"cputime"`
	MemoryLimit int `json:"memorylimit"`
}

// runResponse holds the fields of a run result this service reads
type runResponse struct {
	RunID   *string `json:"run_id"`
	Outcome int     `json:"outcome"`
	CmpInfo string  `json:"cmpinfo"`
	Stdout  string  `json:"stdout"`
	Stderr  string  `json:"stderr"`
}
