package run_test

import (
	"context"
	"sync"

	"gitlab.com/code-review-relay.net/internal/domain"
)

type fakeResolver struct {
	text  string
	calls int
}

func (f *fakeResolver) Resolve(_ context.Context, languageID string) *domain.Template {
	f.calls++
	name, known := domain.TemplateFor(languageID)
	return &domain.Template{Name: name, Text: f.text, Fallback: !known}
}

type fakeResponse struct {
	outcome *domain.ExecutionOutcome
	err     error
}

// fakeExecutor answers by testcase input and records every request
type fakeExecutor struct {
	mu        sync.Mutex
	responses map[string]fakeResponse
	requests  []domain.ExecutionRequest
	languages *domain.LanguageList
	langErr   error
}

func (f *fakeExecutor) Execute(_ context.Context, req domain.ExecutionRequest) (*domain.ExecutionOutcome, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, req)
	resp, ok := f.responses[req.Input]
	if !ok {
		return &domain.ExecutionOutcome{}, nil
	}
	return resp.outcome, resp.err
}

func (f *fakeExecutor) Languages(context.Context) (*domain.LanguageList, error) {
	return f.languages, f.langErr
}
