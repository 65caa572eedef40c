// Package scheduler runs scans over a list of inputs, either across a
// worker pool or strictly sequentially, and folds every result into a
// shared Stats.
package scheduler

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/kc/grusp/internal/input"
	"github.com/kc/grusp/internal/matcher"
	"github.com/kc/grusp/internal/pattern"
)

// Result is the outcome of scanning one input. Seq is the input's 1-based
// position in the original list, used to reassemble output order.
type Result struct {
	Seq     int
	Path    string
	Matches *matcher.Matches
	Err     error
}

// Scheduler owns the shared pattern, options, and stats for a run. Each
// scan gets a fresh Matcher and its own open handle; the pattern is shared
// read-only and Stats serializes its own updates.
type Scheduler struct {
	workers int
	pat     pattern.Pattern
	opts    matcher.Options
	reader  input.Reader
	stats   *matcher.Stats
}

// New creates a Scheduler. workers <= 0 sizes the pool to NumCPU;
// workers == 1 gives strictly sequential, input-order execution.
func New(workers int, pat pattern.Pattern, opts matcher.Options, r input.Reader, stats *matcher.Stats) *Scheduler {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Scheduler{
		workers: workers,
		pat:     pat,
		opts:    opts,
		reader:  r,
		stats:   stats,
	}
}

// Run scans every path and returns the results on a channel that closes
// when all scans finish. A failed scan produces a Result with Err set and
// never reaches Stats.
func (s *Scheduler) Run(paths []string) <-chan Result {
	resultCh := make(chan Result, s.workers*2)

	go func() {
		defer close(resultCh)

		var g errgroup.Group
		g.SetLimit(s.workers)
		for i, path := range paths {
			g.Go(func() error {
				resultCh <- s.scan(i+1, path)
				return nil
			})
		}
		g.Wait()
	}()

	return resultCh
}

func (s *Scheduler) scan(seq int, path string) Result {
	result := Result{Seq: seq, Path: path}

	src, err := s.reader.Open(path)
	if err != nil {
		result.Err = err
		return result
	}
	defer src.Close()

	m, err := matcher.New(s.pat, s.opts).Collect(src)
	if err != nil {
		result.Err = err
		return result
	}

	result.Matches = m.AddPath(path)
	s.stats.Add(result.Matches)
	return result
}

// Drain consumes results and calls handle once per result, in Seq order.
// Out-of-order arrivals are buffered until their turn.
func Drain(results <-chan Result, handle func(Result)) {
	next := 1
	pending := make(map[int]Result)

	for r := range results {
		if r.Seq != next {
			pending[r.Seq] = r
			continue
		}
		handle(r)
		next++
		for {
			p, ok := pending[next]
			if !ok {
				break
			}
			handle(p)
			delete(pending, next)
			next++
		}
	}
}
