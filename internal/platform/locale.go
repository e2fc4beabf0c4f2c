package platform

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoLocale is returned when no locale variable names a codeset.
var ErrNoLocale = errors.New("no locale codeset configured")

// localeVars are consulted in POSIX precedence order.
var localeVars = []string{"LC_ALL", "LC_CTYPE", "LANG"}

// CodesetFromEnv extracts the codeset of the effective POSIX locale,
// e.g. "UTF-8" from LANG=en_US.UTF-8@euro.
func CodesetFromEnv(getenv func(string) string) (string, error) {
	if getenv == nil {
		return "", ErrNoLocale
	}
	for _, name := range localeVars {
		value := strings.TrimSpace(getenv(name))
		if value == "" {
			continue
		}
		// The first non-empty variable decides, even without a codeset.
		return parseCodeset(name, value)
	}
	return "", ErrNoLocale
}

func parseCodeset(name, value string) (string, error) {
	switch value {
	case "C", "POSIX":
		return "", fmt.Errorf("%s=%s: %w", name, value, ErrNoLocale)
	}
	if at := strings.IndexByte(value, '@'); at >= 0 {
		value = value[:at]
	}
	dot := strings.IndexByte(value, '.')
	if dot < 0 || dot == len(value)-1 {
		return "", fmt.Errorf("%s=%s: %w", name, value, ErrNoLocale)
	}
	return value[dot+1:], nil
}
