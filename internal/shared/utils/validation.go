package utils

import (
	"fmt"
	"regexp"
)

// Request payload limits (in bytes)
const (
	MaxParamsSize = 1 * 1024 * 1024 // 1MB - maximum params payload size
	MaxToolIDLen  = 128
	MaxIntentLen  = 512
)

// ToolIDPattern allows alphanumeric, hyphens, underscores, and dots
// (for the service.tool format)
var ToolIDPattern = regexp.MustCompile(`^[a-zA-Z0-9._-]+$`)

// ValidateToolID checks tool ID length and character set
func ValidateToolID(toolID string) error {
	if toolID == "" {
		return fmt.Errorf("tool ID cannot be empty")
	}
	if len(toolID) > MaxToolIDLen {
		return fmt.Errorf("tool ID exceeds maximum length %d", MaxToolIDLen)
	}
	if !ToolIDPattern.MatchString(toolID) {
		return fmt.Errorf("tool ID contains invalid characters: %s", toolID)
	}
	return nil
}

// ValidateIntent checks discovery intent length
func ValidateIntent(intent string) error {
	if intent == "" {
		return fmt.Errorf("intent cannot be empty")
	}
	if len(intent) > MaxIntentLen {
		return fmt.Errorf("intent exceeds maximum length %d", MaxIntentLen)
	}
	return nil
}
