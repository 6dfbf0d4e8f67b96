package mirror

import "fmt"

// ConfigError is a fatal pre-flight configuration problem. Nothing is
// fetched or written when one is raised.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "sync configuration: " + e.Reason
}

// WriteError is a failed local store write. Fatal to the run; the
// offending path is carried for the operator.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
