package mcp

import (
	"errors"
	"fmt"

	"github.com/ganot/statuswatch/internal/domain/monitor"
	"github.com/ganot/statuswatch/internal/repository"
)

// APIError represents an MCP error response.
type APIError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	RecoveryHint string `json:"recovery_hint,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// mapError maps domain errors to MCP error codes. Unmapped errors pass
// through unchanged so storage failures reach the caller unmodified.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, monitor.ErrNoHistory):
		return &APIError{Code: "NO_HISTORY", Message: "project has no stored snapshots", RecoveryHint: "Call observe_status first"}
	case errors.Is(err, repository.ErrMalformedRecord):
		return &APIError{Code: "MALFORMED_RECORD", Message: "a stored snapshot could not be decoded"}
	case errors.Is(err, repository.ErrDuplicateSnapshot):
		return &APIError{Code: "DUPLICATE_SNAPSHOT", Message: "a snapshot already exists for this project and observation time"}
	default:
		return err
	}
}
