package run

import (
	"context"
	"fmt"

	"gitlab.com/code-review-relay.net/internal/core/ports/primary"
	"gitlab.com/code-review-relay.net/internal/core/ports/secondary"
	"gitlab.com/code-review-relay.net/internal/core/services/template"
	"gitlab.com/code-review-relay.net/internal/domain"
)

var _ IRunService = (*RunService)(nil)

// RunService implements the IRunService interface
type RunService struct {
	templates template.ITemplateResolver
	executor  secondary.CodeExecutor
	logger    primary.Logger
}

// NewRunService creates a new run service
func NewRunService(
	templates template.ITemplateResolver,
	executor secondary.CodeExecutor,
	logger primary.Logger,
) *RunService {
	return &RunService{
		templates: templates,
		executor:  executor,
		logger:    logger,
	}
}

// Run resolves and composes the source once, then runs the testcases one
// after another in the order given.
//
// A transport failure on one testcase marks it FAILED and the run goes on.
// ErrorMessage follows the last executed testcase's compile diagnostics.
func (s *RunService) Run(ctx context.Context, req *domain.RunRequest) (*domain.RunReport, error) {
	report := domain.NewRunReport(req.Assignment, req.Submission)
	if len(req.Testcases) == 0 {
		return report, nil
	}

	logger := s.logger.With("runId", report.RunID)
	languageID := req.LanguageID()

	tpl := s.templates.Resolve(ctx, languageID)
	if tpl.Warning != nil {
		logger.Warn("Composing with empty template", "template", tpl.Name, "error", tpl.Warning)
	}
	source := domain.Compose(tpl.Text, req.StudentCode())

	logger.Info("Running submission",
		"language", languageID,
		"template", tpl.Name,
		"testcases", len(req.Testcases))

	for _, tc := range req.Testcases {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("run cancelled: %w", err)
		}

		outcome, err := s.executor.Execute(ctx, domain.ExecutionRequest{
			LanguageID: languageID,
			SourceCode: source,
			Input:      tc.Input,
			Limits:     req.Limits,
		})
		if err != nil {
			logger.Error("Failed to execute testcase", "testcase", tc.Name, "error", err)
			report.TestcaseResults = append(report.TestcaseResults, domain.TestcaseResult{
				Name:   tc.Name,
				Status: domain.TestcaseFailed,
				Input:  tc.Input,
				Expect: tc.Expect,
				Error:  err.Error(),
			})
			continue
		}
		if outcome.Warning != nil {
			logger.Warn("Sandbox answered without a usable body", "testcase", tc.Name, "error", outcome.Warning)
		}

		report.ErrorMessage = outcome.CompileInfo
		if outcome.CompileInfo != "" {
			if report.Diagnostics == nil {
				report.Diagnostics = make(map[string]string)
			}
			report.Diagnostics[tc.Name] = outcome.CompileInfo
		}

		status := Judge(outcome.Stdout, tc.Expect)
		logger.Debug("Testcase judged", "testcase", tc.Name, "status", status)

		report.TestcaseResults = append(report.TestcaseResults, domain.TestcaseResult{
			Name:        tc.Name,
			Status:      status,
			Input:       tc.Input,
			Expect:      tc.Expect,
			Actual:      outcome.Stdout,
			CompileInfo: outcome.CompileInfo,
		})
	}

	logger.Info("Run completed",
		"passed", report.Passed(),
		"total", len(report.TestcaseResults))

	return report, nil
}

// Languages relays the sandbox's language listing
func (s *RunService) Languages(ctx context.Context) (*domain.LanguageList, error) {
	list, err := s.executor.Languages(ctx)
	if err != nil {
		s.logger.Error("Failed to get languages", "error", err)
		return nil, fmt.Errorf("failed to get languages: %w", err)
	}
	return list, nil
}
