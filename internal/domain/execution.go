package domain

// ExecutionRequest is one sandbox run: a composed source unit, the stdin
// for one testcase and the limits to run it under.
type ExecutionRequest struct {
	LanguageID string
	SourceCode string
	Input      string
	Limits     ResourceLimits
}

// ExecutionOutcome is what the sandbox reported for one run. Warning is set
// when the sandbox answered with a null or unreadable body and the empty
// values were substituted.
type ExecutionOutcome struct {
	Stdout      string
	CompileInfo string
	Warning     error
}

// LanguageList is the sandbox's language listing, relayed verbatim.
type LanguageList struct {
	ContentType string
	Body        []byte
}
