package domain

// CodeRange is an inclusive start/end pair, either lines or columns.
type CodeRange struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// ReviewItem is one itemized finding of the review service.
type ReviewItem struct {
	Line          CodeRange `json:"line"`
	Column        CodeRange `json:"column"`
	CodeSnippet   string    `json:"code_snippet"`
	Type          string    `json:"type"`
	Issue         string    `json:"issue"`
	FixSuggestion string    `json:"fix_suggestion"`
}

// ReviewVerdict is the review service's structured feedback. Its schema is
// owned by the review service; it is relayed without modification.
type ReviewVerdict struct {
	Summary     string       `json:"summary"`
	Detail      string       `json:"detail"`
	ReviewItems []ReviewItem `json:"review_items"`
}

// ReviewPayload is the body posted to the review service.
type ReviewPayload struct {
	Assignment        *Assignment        `json:"assignment"`
	StudentSubmission *StudentSubmission `json:"student_submission"`
	TestResults       []TestcaseResult   `json:"test_results"`
}
