package domain

// Assignment describes the exercise a submission answers. Language selects
// the source template and is sent to the sandbox as its language id.
type Assignment struct {
	Content          string   `json:"content"`
	Language         string   `json:"language"`
	ExpectedConcepts []string `json:"expected_concepts,omitempty"`
}

// StudentSubmission is the code fragment a student wrote for an assignment.
type StudentSubmission struct {
	StudentID string `json:"student_id,omitempty"`
	Code      string `json:"code"`
}
