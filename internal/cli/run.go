package cli

import (
	"errors"
	"os"

	"github.com/charmbracelet/log"

	"github.com/kc/grusp/internal/collector"
	"github.com/kc/grusp/internal/display"
	"github.com/kc/grusp/internal/input"
	"github.com/kc/grusp/internal/matcher"
	"github.com/kc/grusp/internal/pattern"
	"github.com/kc/grusp/internal/scheduler"
)

// Run executes a search with the given config.
// Exit codes: 0 = match found, 1 = no match, 2 = error.
func Run(cfg Config) int {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level: log.WarnLevel,
	})

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "err", err)
		return 2
	}

	pat, err := pattern.Compile(cfg.Pattern, pattern.Opts{
		IgnoreCase: cfg.IgnoreCase && !cfg.CaseSensitive,
		PCRE:       cfg.PCRE,
	})
	if err != nil {
		if errors.Is(err, pattern.ErrTooLarge) {
			logger.Error("pattern too large", "err", err)
		} else {
			logger.Error("invalid pattern", "err", err)
		}
		return 2
	}

	filesOnly := cfg.FilesWithMatches || cfg.FilesWithoutMatches
	opts := matcher.DefaultOptions().InvertMatch(cfg.Invert)
	if cfg.CountOnly || filesOnly {
		// Nothing renders line detail; skip materializing it.
		opts = opts.KeepLines(false)
	}

	styles := display.NoStyles()
	if !cfg.NoColor && display.StdoutIsTerminal() {
		styles = display.NewStyles()
	}
	disp := display.New(styles, cfg.CountOnly, filesOnly)
	w := display.NewWriter()
	stats := matcher.NewStats()

	if len(cfg.Queries) == 0 {
		return runStdin(pat, opts, disp, w, stats, logger)
	}
	return runFiles(cfg, pat, opts, disp, w, stats, logger)
}

// runStdin scans standard input as a single anonymous stream. A stream has
// no file identity, so line numbers are off and no path is attached.
func runStdin(pat pattern.Pattern, opts matcher.Options, disp *display.Display, w *display.Writer, stats *matcher.Stats, logger *log.Logger) int {
	m, err := matcher.New(pat, opts.WithLineNumbers(false)).Collect(input.Stdin())
	if err != nil {
		logger.Error("read stdin", "err", err)
		return 2
	}
	stats.Add(m)

	if !m.HasMatches() {
		return 1
	}
	if err := w.Write(disp.Render(nil, m)); err != nil {
		logger.Error("write output", "err", err)
		return 2
	}
	return 0
}

func runFiles(cfg Config, pat pattern.Pattern, opts matcher.Options, disp *display.Display, w *display.Writer, stats *matcher.Stats, logger *log.Logger) int {
	files, err := collector.New(cfg.Queries).
		MaxDepth(cfg.MaxDepth).
		IncludeHidden(cfg.Hidden).
		NoIgnore(cfg.NoIgnore).
		Collect()
	if err != nil {
		logger.Warn("collecting files", "err", err)
	}
	if len(files) == 0 {
		logger.Error("no files to search")
		return 2
	}

	workers := cfg.Workers
	if cfg.Unthreaded {
		workers = 1
	}
	sched := scheduler.New(workers, pat, opts, input.FileReader{}, stats)

	failed := false
	var qualifying uint64
	var buf []byte
	scheduler.Drain(sched.Run(files), func(r scheduler.Result) {
		if r.Err != nil {
			failed = true
			logger.Warn("scan failed", "path", r.Path, "err", r.Err)
			return
		}

		show := r.Matches.HasMatches()
		if cfg.FilesWithoutMatches {
			show = !show
			if show {
				qualifying++
			}
		}
		if !show {
			return
		}
		buf = disp.Render(buf[:0], r.Matches)
		if err := w.Write(buf); err != nil {
			logger.Error("write output", "err", err)
			failed = true
		}
	})

	logger.Debug("search complete",
		"files", stats.Total(),
		"lines", stats.Lines(),
		"captures", stats.Captures(),
	)

	found := stats.Total() > 0
	if cfg.FilesWithoutMatches {
		found = qualifying > 0
	}
	switch {
	case found:
		return 0
	case failed:
		return 2
	default:
		return 1
	}
}
