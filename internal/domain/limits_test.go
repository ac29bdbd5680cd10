package domain_test

import (
	"testing"

	"gitlab.com/code-review-relay.net/internal/domain"
)

func TestDefaultResourceLimits(t *testing.T) {
	cpu, mem := domain.DefaultResourceLimits().Resolve()
	if cpu != 10 || mem != 2000000 {
		t.Fatalf("unexpected defaults: %d %d", cpu, mem)
	}
}

func TestResolveFallsBackPerField(t *testing.T) {
	cpu, mem := domain.ResourceLimits{}.Resolve()
	if cpu != 2 || mem != 500000 {
		t.Fatalf("unexpected fallback: %d %d", cpu, mem)
	}

	five := 5
	cpu, mem = domain.ResourceLimits{CPUTimeSeconds: &five}.Resolve()
	if cpu != 5 || mem != 500000 {
		t.Fatalf("unexpected mixed limits: %d %d", cpu, mem)
	}
}
