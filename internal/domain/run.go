package domain

// RunRequest is the input of both the run and the review operations.
type RunRequest struct {
	Assignment *Assignment
	Submission *StudentSubmission
	Testcases  []Testcase
	Limits     ResourceLimits
}

// LanguageID returns the assignment language, or "" when there is none.
func (r *RunRequest) LanguageID() string {
	if r.Assignment == nil {
		return ""
	}
	return r.Assignment.Language
}

// StudentCode returns the submitted code, or "" when there is none.
func (r *RunRequest) StudentCode() string {
	if r.Submission == nil {
		return ""
	}
	return r.Submission.Code
}
