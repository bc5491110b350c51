package encoding

import (
	"strconv"
	"strings"
)

// DefaultFPS is used when the entered frame rate is empty or not a positive integer.
const DefaultFPS = 24

// ParseFPS resolves a frame rate answer, falling back to DefaultFPS.
func ParseFPS(value string) int {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return DefaultFPS
	}
	// ParseInt takes one optional sign, so "+30" is 30 and "-5" falls back.
	parsed, err := strconv.ParseInt(trimmed, 10, 32)
	if err != nil || parsed <= 0 {
		return DefaultFPS
	}
	return int(parsed)
}

// ParseCropValue resolves a single crop component, returning fallback when
// the value is not a 32-bit integer.
func ParseCropValue(value string, fallback int) int {
	parsed, err := strconv.ParseInt(strings.TrimSpace(value), 10, 32)
	if err != nil {
		return fallback
	}
	return int(parsed)
}
