package capture

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/htmlindex"
)

// ErrInvalidUTF8 is returned when UTF-8 output contains invalid byte sequences.
var ErrInvalidUTF8 = errors.New("output is not valid UTF-8")

// ErrInvalidEncoding is returned when output contains bytes the named
// encoding cannot represent.
var ErrInvalidEncoding = errors.New("output is not valid in the resolved encoding")

// Decode converts raw command output to text using the named encoding.
// Decoding is strict: x/text decoders substitute U+FFFD for invalid input,
// so the result must encode back to exactly raw.
func Decode(raw []byte, encodingName string) (string, error) {
	name := strings.ToLower(strings.TrimSpace(encodingName))
	if name == "" || name == "utf-8" || name == "utf8" {
		if !utf8.Valid(raw) {
			return "", ErrInvalidUTF8
		}
		return string(raw), nil
	}

	enc, err := htmlindex.Get(name)
	if err != nil {
		return "", fmt.Errorf("unknown encoding %q: %w", encodingName, err)
	}
	out, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", encodingName, err)
	}
	back, err := enc.NewEncoder().Bytes(out)
	if err != nil || !bytes.Equal(back, raw) {
		return "", fmt.Errorf("decode %s: %w", encodingName, ErrInvalidEncoding)
	}
	return string(out), nil
}
