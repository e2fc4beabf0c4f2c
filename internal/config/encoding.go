package config

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding/htmlindex"
)

// DefaultEncoding is used whenever the locale cannot supply a usable encoding.
const DefaultEncoding = "utf-8"

// NormalizeEncoding maps an encoding label ("UTF-8", "latin1", "cp1252") to
// its canonical WHATWG name. Unknown labels are an error.
func NormalizeEncoding(label string) (string, error) {
	label = strings.TrimSpace(label)
	switch strings.ToLower(label) {
	case "":
		return "", fmt.Errorf("empty encoding name")
	case "utf8", "cp65001":
		return DefaultEncoding, nil
	}
	enc, err := htmlindex.Get(label)
	if err != nil {
		return "", fmt.Errorf("unknown encoding %q: %w", label, err)
	}
	name, err := htmlindex.Name(enc)
	if err != nil {
		return "", fmt.Errorf("unnamed encoding %q: %w", label, err)
	}
	return name, nil
}

// resolveEncoding tries an explicit option first, then the host locale,
// then DefaultEncoding. Only an explicit option naming an unknown encoding
// is an error; locale problems fall back silently.
func resolveEncoding(env Environment, explicit string) (name, source string, err error) {
	if strings.TrimSpace(explicit) != "" {
		n, err := NormalizeEncoding(explicit)
		if err != nil {
			return "", "", err
		}
		return n, EncodingFromOption, nil
	}
	if env.Locale != nil {
		if raw, err := env.Locale.LocaleEncoding(env.Getenv); err == nil {
			if n, err := NormalizeEncoding(raw); err == nil {
				return n, EncodingFromLocale, nil
			}
		}
	}
	return DefaultEncoding, EncodingFromFallback, nil
}
