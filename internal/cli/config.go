package cli

import "fmt"

// Config holds all configuration for a grusp run.
type Config struct {
	Pattern string
	Queries []string // path/glob queries; empty means read stdin

	IgnoreCase    bool
	CaseSensitive bool
	PCRE          bool

	Unthreaded bool
	Workers    int // 0 = NumCPU

	CountOnly           bool
	Invert              bool
	FilesWithMatches    bool
	FilesWithoutMatches bool

	MaxDepth int // -1 = unlimited
	NoIgnore bool
	Hidden   bool
	NoColor  bool
}

// Validate checks that the config is consistent.
func (c *Config) Validate() error {
	if c.Pattern == "" {
		return fmt.Errorf("no pattern specified")
	}
	if c.IgnoreCase && c.CaseSensitive {
		return fmt.Errorf("cannot use -i (ignore-case) and -s (case-sensitive) together")
	}
	if c.FilesWithMatches && c.FilesWithoutMatches {
		return fmt.Errorf("cannot use -l (files-with-matches) and -L (files-without-matches) together")
	}
	if c.CountOnly && (c.FilesWithMatches || c.FilesWithoutMatches) {
		return fmt.Errorf("cannot use -c (count) with a file-names-only mode")
	}
	if c.MaxDepth < -1 {
		return fmt.Errorf("invalid max depth: %d", c.MaxDepth)
	}
	if c.Workers < 0 {
		return fmt.Errorf("invalid worker count: %d", c.Workers)
	}
	return nil
}
