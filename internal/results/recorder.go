// Package results records pass/fail outcomes of named test scenarios.
package results

import "os"

const (
	Success = "Success"
	Failed  = "Failed"
)

// Recorder stores the outcome of a scenario under its name.
type Recorder interface {
	Record(scenario string, passed bool) error
}

// Outcome returns the text stored for a scenario result.
func Outcome(passed bool) string {
	if passed {
		return Success
	}
	return Failed
}

// Nop discards every outcome.
type Nop struct{}

func (Nop) Record(string, bool) error { return nil }

// FromEnv picks a recorder from PRODUCT_RESULTS_REDIS or PRODUCT_RESULTS_FILE,
// in that order. Without either it returns Nop.
func FromEnv() Recorder {
	if addr := os.Getenv("PRODUCT_RESULTS_REDIS"); addr != "" {
		return NewRedisRecorder(newRedisClient(addr), DefaultRedisKey)
	}
	if path := os.Getenv("PRODUCT_RESULTS_FILE"); path != "" {
		return NewFileRecorder(path)
	}
	return Nop{}
}
