package diag

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/anansi-cli/anansi/internal/config"
	"gopkg.in/yaml.v3"
)

// Format selects the diagnostic rendering.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a user-supplied format name. Empty means text.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML:
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("invalid format %q: valid values are text, json, yaml", s)
	}
}

// Render writes rep to w in the given format. width frames the text format.
func Render(w io.Writer, f Format, rep *Report, width int) error {
	switch f {
	case "", FormatText:
		return FormatTextReport(w, rep, width)
	case FormatJSON:
		return FormatJSONReport(w, rep)
	case FormatYAML:
		return FormatYAMLReport(w, rep)
	default:
		return fmt.Errorf("invalid format %q", f)
	}
}

// RenderHandle writes only the handle section in the given format.
func RenderHandle(w io.Writer, f Format, h *HandleInfo, width int) error {
	switch f {
	case "", FormatText:
		return FormatTextHandle(w, h, width)
	case FormatJSON:
		return writeJSON(w, h)
	case FormatYAML:
		return writeYAML(w, h)
	default:
		return fmt.Errorf("invalid format %q", f)
	}
}

// FormatJSONReport writes rep as compact JSON.
func FormatJSONReport(w io.Writer, rep *Report) error {
	return writeJSON(w, rep)
}

// FormatYAMLReport writes rep as a YAML document.
func FormatYAMLReport(w io.Writer, rep *Report) error {
	return writeYAML(w, rep)
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

func writeYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// FormatTextReport writes rep as human-readable lines framed by rules of
// width dashes. The layout is not a stable contract.
func FormatTextReport(w io.Writer, rep *Report, width int) error {
	rule := ruleOf(width)

	var sb strings.Builder
	sb.WriteString("\nDebug Info:\n")
	sb.WriteString(rule + "\n")

	row := func(key string, value interface{}) { writeRow(&sb, key, value) }
	row("platform", rep.Platform)
	row("windows_like", rep.WindowsLike)
	row("go", fmt.Sprintf("%s %s/%s", rep.GoVersion, rep.GOOS, rep.GOARCH))
	row("display_width", rep.DisplayWidth)
	row("output_filename", rep.OutputFilename)
	row("encoding", fmt.Sprintf("%s (%s)", rep.Encoding, rep.EncodingSource))
	row("debug", rep.Debug)
	row("command", strings.Join(rep.Command, " "))
	row("timeout", rep.Timeout)
	row("quiet", rep.Options.Quiet)
	row("verbose", rep.Options.Verbose)
	row("recursive", rep.Options.Recursive)
	row("zero", rep.Options.Zero)
	if rep.Options.Pattern != "" {
		row("pattern", rep.Options.Pattern)
	}
	fmt.Fprintf(&sb, "\noutput_path = %s\n", rep.OutputPath)

	if h := rep.Handle; h != nil {
		sb.WriteString("\n")
		writeHandleRows(&sb, h)
	}

	sb.WriteString(rule + "\n\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

// FormatTextHandle writes the handle section on its own, framed by rules of
// width dashes.
func FormatTextHandle(w io.Writer, h *HandleInfo, width int) error {
	rule := ruleOf(width)

	var sb strings.Builder
	sb.WriteString("\n" + rule + "\n")
	writeHandleRows(&sb, h)
	sb.WriteString(rule + "\n\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

func writeHandleRows(sb *strings.Builder, h *HandleInfo) {
	sb.WriteString("Output file handle:\n")
	writeRow(sb, "name", h.Name)
	writeRow(sb, "descriptor", h.Descriptor)
	writeRow(sb, "byte_order", h.ByteOrder)
	writeRow(sb, "is_tty", h.IsTTY)
	writeRow(sb, "seekable", h.Seekable)
	writeRow(sb, "writable", h.Writable)
}

func writeRow(sb *strings.Builder, key string, value interface{}) {
	fmt.Fprintf(sb, "   %-16.16s = %v\n", key, value)
}

func ruleOf(width int) string {
	if width <= 0 {
		width = config.DefaultDisplayWidth
	}
	return strings.Repeat("-", width)
}
