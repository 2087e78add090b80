// Package dedup wires record -> blockpipeline -> workpool into the
// end-to-end deduplication engine: config-driven construction, a
// cluster output returned as one slice once every block has finished
// (not a lazy stream), and error kinds split between fail-fast
// configuration errors and isolated per-block runtime errors. It does
// not compute metrics; the metrics package is called separately.
package dedup

import "errors"

// ConfigError wraps a configuration problem detected at construction
// time: unknown aggregation, empty comparators, missing both
// blocking_attributes and blocking_rule, or an unknown encoder.
type ConfigError struct {
	Reason string
	Err    error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return "dedup: config error: " + e.Reason + ": " + e.Err.Error()
	}

	return "dedup: config error: " + e.Reason
}

func (e *ConfigError) Unwrap() error { return e.Err }

// ErrEmptyInput indicates zero records were passed to Engine.Run.
var ErrEmptyInput = errors.New("dedup: zero records")

// BackendUnavailable indicates a pluggable encoder or comparator
// depends on an optional backend that isn't wired in. install names a
// hint for what to provide.
type BackendUnavailable struct {
	Backend string
	Install string
}

func (e *BackendUnavailable) Error() string {
	return "dedup: backend unavailable: " + e.Backend + " (hint: " + e.Install + ")"
}
