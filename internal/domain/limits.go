package domain

// Request level defaults, used when a run request omits its limits.
const (
	DefaultCPUTimeSeconds = 10
	DefaultMemoryLimit    = 2000000
)

// Per call fallbacks, used by the execution client when a limit is nil.
const (
	FallbackCPUTimeSeconds = 2
	FallbackMemoryLimit    = 500000
)

// ResourceLimits bounds one sandbox run. A nil field means the caller
// explicitly cleared it.
type ResourceLimits struct {
	CPUTimeSeconds *int `json:"cputime"`
	MemoryLimit    *int `json:"memorylimit"`
}

// DefaultResourceLimits returns the request level defaults.
func DefaultResourceLimits() ResourceLimits {
	cpu, mem := DefaultCPUTimeSeconds, DefaultMemoryLimit
	return ResourceLimits{
		CPUTimeSeconds: &cpu,
		MemoryLimit:    &mem,
	}
}

// Resolve returns concrete limits, falling back to the per call values for
// any nil field.
func (l ResourceLimits) Resolve() (cpuTime int, memoryLimit int) {
	cpuTime, memoryLimit = FallbackCPUTimeSeconds, FallbackMemoryLimit
	if l.CPUTimeSeconds != nil {
		cpuTime = *l.CPUTimeSeconds
	}
	if l.MemoryLimit != nil {
		memoryLimit = *l.MemoryLimit
	}
	return cpuTime, memoryLimit
}
