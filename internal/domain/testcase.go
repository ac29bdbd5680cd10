package domain

// Testcase is a named input and expected output pair.
type Testcase struct {
	Name   string `json:"name"`
	Input  string `json:"input"`
	Expect string `json:"expect"`
}
