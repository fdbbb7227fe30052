package service

const (
	defaultWorkerCount = 8
)

// AssemblerConfig tunes per-block transaction lookups.
type AssemblerConfig struct {
	// Workers bounds concurrent receipt/trace lookups within one block.
	Workers int
	// IncludeTraces enables trace lookups; when false every traces list is empty.
	IncludeTraces bool
}

// DefaultAssemblerConfig returns the configuration used when none is supplied.
func DefaultAssemblerConfig() AssemblerConfig {
	return AssemblerConfig{
		Workers:       defaultWorkerCount,
		IncludeTraces: true,
	}
}
