package config

import (
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// File is the on-disk YAML configuration. Every field is optional.
//
//	output_filename: capture.txt
//	display_width: 72
//	debug: true
//	encoding: utf-8
//	timeout: 30s
//	command: [git, status, --short]
type File struct {
	OutputFilename string   `yaml:"output_filename,omitempty"`
	DisplayWidth   int      `yaml:"display_width,omitempty"`
	Debug          bool     `yaml:"debug,omitempty"`
	Encoding       string   `yaml:"encoding,omitempty"`
	Timeout        string   `yaml:"timeout,omitempty"`
	Command        []string `yaml:"command,omitempty"`
}

// Load parses a configuration file from r with strict field validation.
// Unknown fields cause an error. An empty document yields an empty File.
func Load(r io.Reader) (*File, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var f File
	if err := decoder.Decode(&f); err != nil {
		if err == io.EOF {
			return &f, nil
		}
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &f, nil
}

// LoadFile loads a configuration file from path.
func LoadFile(path string) (*File, error) {
	fh, err := os.Open(path) //nolint:gosec // config path comes from the user
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer func() { _ = fh.Close() }()

	return Load(fh)
}

// Validate checks field values.
func (f *File) Validate() error {
	if f.DisplayWidth < 0 {
		return fmt.Errorf("display_width must be >= 0, got %d", f.DisplayWidth)
	}
	if f.OutputFilename != "" {
		if err := validateFilename(f.OutputFilename); err != nil {
			return err
		}
	}
	if _, err := f.timeout(); err != nil {
		return err
	}
	if len(f.Command) > 0 && f.Command[0] == "" {
		return fmt.Errorf("command[0] must be non-empty")
	}
	return nil
}

func (f *File) timeout() (time.Duration, error) {
	if f.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(f.Timeout)
	if err != nil {
		return 0, fmt.Errorf("invalid timeout %q: %w", f.Timeout, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("timeout must be >= 0, got %s", d)
	}
	return d, nil
}

// Merge returns opts with unset fields filled from the file.
// Values already present in opts take precedence.
func (f *File) Merge(opts Options) Options {
	if f == nil {
		return opts
	}
	if opts.OutputFilename == "" {
		opts.OutputFilename = f.OutputFilename
	}
	if opts.DisplayWidth == 0 {
		opts.DisplayWidth = f.DisplayWidth
	}
	if opts.Encoding == "" {
		opts.Encoding = f.Encoding
	}
	if len(opts.Command) == 0 && len(f.Command) > 0 {
		opts.Command = append([]string(nil), f.Command...)
	}
	if opts.Timeout == 0 {
		if d, err := f.timeout(); err == nil {
			opts.Timeout = d
		}
	}
	opts.Debug = opts.Debug || f.Debug
	return opts
}
