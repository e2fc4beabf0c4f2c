package config

import "strings"

const (
	// DebugEnvVar enables diagnostic mode when set to a truthy value.
	DebugEnvVar = "ANANSI_DEBUG"

	// ConfigEnvVar names a YAML configuration file.
	ConfigEnvVar = "ANANSI_CONFIG"

	// ColorEnvVar forces colored status output on or off.
	ColorEnvVar = "ANANSI_COLOR"
)

// IsTruthy returns true for "1", "true", "yes" and "on" (case-insensitive).
func IsTruthy(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

// IsFalsy returns true for "0", "false", "no" and "off" (case-insensitive).
func IsFalsy(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "0", "false", "no", "off":
		return true
	default:
		return false
	}
}
