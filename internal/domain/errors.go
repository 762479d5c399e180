package domain

import (
	"fmt"
	"strings"
)

// ConfigError is fatal: required configuration is missing and no reminder
// work is possible. The process should exit non-zero before any network call.
type ConfigError struct {
	Missing []string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("missing required configuration: %s", strings.Join(e.Missing, ", "))
}

// UpstreamError is a non-success response from the scheduling or chat API.
// It is recoverable: callers log it and continue with an empty or partial
// result rather than aborting the run.
type UpstreamError struct {
	Op     string
	Status int
	Detail string
}

func (e *UpstreamError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: status %d: %s", e.Op, e.Status, e.Detail)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Detail)
}
