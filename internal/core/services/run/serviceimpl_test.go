package run_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"gitlab.com/code-review-relay.net/internal/adapter/logging"
	"gitlab.com/code-review-relay.net/internal/core/services/run"
	"gitlab.com/code-review-relay.net/internal/domain"
	"gitlab.com/code-review-relay.net/internal/static/errs"
)

func newRequest(testcases ...domain.Testcase) *domain.RunRequest {
	return &domain.RunRequest{
		Assignment: &domain.Assignment{Content: "sum", Language: "cpp"},
		Submission: &domain.StudentSubmission{Code: "return a + b;"},
		Testcases:  testcases,
		Limits:     domain.DefaultResourceLimits(),
	}
}

func TestRunEmptyTestcases(t *testing.T) {
	resolver := &fakeResolver{}
	executor := &fakeExecutor{}
	svc := run.NewRunService(resolver, executor, logging.NewNopLogger())

	for _, tcs := range [][]domain.Testcase{nil, {}} {
		report, err := svc.Run(context.Background(), newRequest(tcs...))
		if err != nil {
			t.Fatalf("run failed: %v", err)
		}
		if report.TestcaseResults == nil || len(report.TestcaseResults) != 0 {
			t.Fatalf("expected empty result slice, got %#v", report.TestcaseResults)
		}
		if report.ErrorMessage != "" {
			t.Fatalf("unexpected error message: %q", report.ErrorMessage)
		}
	}
	if len(executor.requests) != 0 {
		t.Fatalf("sandbox was called %d times", len(executor.requests))
	}
	if resolver.calls != 0 {
		t.Fatalf("template resolved %d times", resolver.calls)
	}
}

func TestRunSinglePassingTestcase(t *testing.T) {
	executor := &fakeExecutor{responses: map[string]fakeResponse{
		"": {outcome: &domain.ExecutionOutcome{Stdout: "5"}},
	}}
	svc := run.NewRunService(&fakeResolver{text: "int f(){ // STUDENT_CODE_HERE }"}, executor, logging.NewNopLogger())

	report, err := svc.Run(context.Background(), newRequest(domain.Testcase{Name: "t1", Input: "", Expect: "5"}))
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if len(report.TestcaseResults) != 1 {
		t.Fatalf("unexpected result count: %d", len(report.TestcaseResults))
	}
	res := report.TestcaseResults[0]
	if res.Name != "t1" || res.Status != domain.TestcasePassed || res.Actual != "5" {
		t.Fatalf("unexpected result: %#v", res)
	}
}

func TestRunComposesOnceAndSendsRequestFields(t *testing.T) {
	resolver := &fakeResolver{text: "head\n// STUDENT_CODE_HERE\ntail"}
	executor := &fakeExecutor{}
	svc := run.NewRunService(resolver, executor, logging.NewNopLogger())

	req := newRequest(
		domain.Testcase{Name: "a", Input: "1 2"},
		domain.Testcase{Name: "b", Input: "3 4"},
	)
	if _, err := svc.Run(context.Background(), req); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if resolver.calls != 1 {
		t.Fatalf("template resolved %d times", resolver.calls)
	}
	if len(executor.requests) != 2 {
		t.Fatalf("unexpected sandbox calls: %d", len(executor.requests))
	}
	for i, sent := range executor.requests {
		if sent.SourceCode != "head\nreturn a + b;\ntail" {
			t.Fatalf("unexpected source: %q", sent.SourceCode)
		}
		if sent.LanguageID != "cpp" {
			t.Fatalf("unexpected language: %q", sent.LanguageID)
		}
		if sent.Input != req.Testcases[i].Input {
			t.Fatalf("request %d carried input %q", i, sent.Input)
		}
		if cpu, mem := sent.Limits.Resolve(); cpu != 10 || mem != 2000000 {
			t.Fatalf("unexpected limits: %d %d", cpu, mem)
		}
	}
}

func TestRunPreservesOrder(t *testing.T) {
	responses := map[string]fakeResponse{}
	var testcases []domain.Testcase
	for i := 0; i < 20; i++ {
		in := fmt.Sprintf("in-%02d", i)
		responses[in] = fakeResponse{outcome: &domain.ExecutionOutcome{Stdout: strings.ToUpper(in)}}
		expect := strings.ToUpper(in)
		if i%3 == 0 {
			expect = "nope"
		}
		testcases = append(testcases, domain.Testcase{Name: fmt.Sprintf("t%02d", i), Input: in, Expect: expect})
	}
	svc := run.NewRunService(&fakeResolver{}, &fakeExecutor{responses: responses}, logging.NewNopLogger())

	report, err := svc.Run(context.Background(), newRequest(testcases...))
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	for i, res := range report.TestcaseResults {
		if res.Name != testcases[i].Name {
			t.Fatalf("position %d holds %s", i, res.Name)
		}
		want := domain.TestcasePassed
		if i%3 == 0 {
			want = domain.TestcaseFailed
		}
		if res.Status != want {
			t.Fatalf("%s: status %s, want %s", res.Name, res.Status, want)
		}
	}
}

func TestRunKeepsRawActualAndExpect(t *testing.T) {
	executor := &fakeExecutor{responses: map[string]fakeResponse{
		"x": {outcome: &domain.ExecutionOutcome{Stdout: "  Hello world\r\n"}},
	}}
	svc := run.NewRunService(&fakeResolver{}, executor, logging.NewNopLogger())

	report, err := svc.Run(context.Background(), newRequest(domain.Testcase{Name: "t", Input: "x", Expect: "Hello world "}))
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	res := report.TestcaseResults[0]
	if res.Status != domain.TestcasePassed {
		t.Fatalf("expected pass, got %s", res.Status)
	}
	if res.Actual != "  Hello world\r\n" || res.Expect != "Hello world " {
		t.Fatalf("values were normalized: %#v", res)
	}
}

func TestRunErrorMessageIsLastWrite(t *testing.T) {
	executor := &fakeExecutor{responses: map[string]fakeResponse{
		"1": {outcome: &domain.ExecutionOutcome{CompileInfo: "error: expected ';'"}},
		"2": {outcome: &domain.ExecutionOutcome{Stdout: "ok"}},
	}}
	svc := run.NewRunService(&fakeResolver{}, executor, logging.NewNopLogger())

	report, err := svc.Run(context.Background(), newRequest(
		domain.Testcase{Name: "first", Input: "1", Expect: "ok"},
		domain.Testcase{Name: "second", Input: "2", Expect: "ok"},
	))
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if report.ErrorMessage != "" {
		t.Fatalf("error message should follow the last testcase, got %q", report.ErrorMessage)
	}
	if report.Diagnostics["first"] != "error: expected ';'" {
		t.Fatalf("diagnostics lost: %#v", report.Diagnostics)
	}
	if report.TestcaseResults[0].CompileInfo != "error: expected ';'" {
		t.Fatalf("per testcase compile info lost: %#v", report.TestcaseResults[0])
	}
	if _, ok := report.Diagnostics["second"]; ok {
		t.Fatalf("clean testcase recorded diagnostics")
	}
}

func TestRunContinuesAfterTransportError(t *testing.T) {
	executor := &fakeExecutor{responses: map[string]fakeResponse{
		"1": {err: fmt.Errorf("%w: connection refused", errs.ErrTransport)},
		"2": {outcome: &domain.ExecutionOutcome{Stdout: "ok", CompileInfo: "warning: unused"}},
		"3": {err: fmt.Errorf("%w: timeout", errs.ErrTransport)},
	}}
	svc := run.NewRunService(&fakeResolver{}, executor, logging.NewNopLogger())

	report, err := svc.Run(context.Background(), newRequest(
		domain.Testcase{Name: "a", Input: "1", Expect: "ok"},
		domain.Testcase{Name: "b", Input: "2", Expect: "ok"},
		domain.Testcase{Name: "c", Input: "3", Expect: "ok"},
	))
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if len(report.TestcaseResults) != 3 {
		t.Fatalf("unexpected result count: %d", len(report.TestcaseResults))
	}
	if res := report.TestcaseResults[0]; res.Status != domain.TestcaseFailed || !strings.Contains(res.Error, "connection refused") || res.Actual != "" {
		t.Fatalf("unexpected failed result: %#v", res)
	}
	if report.TestcaseResults[1].Status != domain.TestcasePassed {
		t.Fatalf("second testcase should pass")
	}
	if report.ErrorMessage != "warning: unused" {
		t.Fatalf("transport failure overwrote error message: %q", report.ErrorMessage)
	}
}

func TestRunMalformedOutcomeFails(t *testing.T) {
	executor := &fakeExecutor{responses: map[string]fakeResponse{
		"x": {outcome: &domain.ExecutionOutcome{Warning: errs.ErrMalformedResponse}},
	}}
	svc := run.NewRunService(&fakeResolver{}, executor, logging.NewNopLogger())

	report, err := svc.Run(context.Background(), newRequest(domain.Testcase{Name: "t", Input: "x", Expect: "1"}))
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if res := report.TestcaseResults[0]; res.Status != domain.TestcaseFailed || res.Actual != "" {
		t.Fatalf("unexpected result: %#v", res)
	}
}

func TestRunCancelled(t *testing.T) {
	svc := run.NewRunService(&fakeResolver{}, &fakeExecutor{}, logging.NewNopLogger())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Run(ctx, newRequest(domain.Testcase{Name: "t"}))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected cancellation, got %v", err)
	}
}

func TestRunWithoutAssignmentOrSubmission(t *testing.T) {
	executor := &fakeExecutor{}
	svc := run.NewRunService(&fakeResolver{text: "// STUDENT_CODE_HERE"}, executor, logging.NewNopLogger())

	report, err := svc.Run(context.Background(), &domain.RunRequest{Testcases: []domain.Testcase{{Name: "t"}}})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if len(report.TestcaseResults) != 1 || executor.requests[0].SourceCode != "" || executor.requests[0].LanguageID != "" {
		t.Fatalf("unexpected run: %#v %#v", report, executor.requests)
	}
}

func TestLanguages(t *testing.T) {
	list := &domain.LanguageList{ContentType: "application/json", Body: []byte(`[["c","9.4"]]`)}
	svc := run.NewRunService(&fakeResolver{}, &fakeExecutor{languages: list}, logging.NewNopLogger())

	got, err := svc.Languages(context.Background())
	if err != nil || got != list {
		t.Fatalf("unexpected languages: %v %v", got, err)
	}

	svc = run.NewRunService(&fakeResolver{}, &fakeExecutor{langErr: errs.ErrTransport}, logging.NewNopLogger())
	if _, err := svc.Languages(context.Background()); !errors.Is(err, errs.ErrTransport) {
		t.Fatalf("expected transport error, got %v", err)
	}
}
