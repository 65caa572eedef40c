// Package matcher scans line-delimited input against a compiled pattern and
// aggregates results across concurrent scans.
//
// Matching is byte-oriented: each raw line is handed to the pattern engine
// as-is, so input that is not valid UTF-8 never fails a scan, and capture
// offsets are byte offsets.
package matcher

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/kc/grusp/internal/pattern"
)

// ErrConsumed reports a second Collect call on the same Matcher.
var ErrConsumed = errors.New("matcher already consumed")

// Options configures a Matcher. The zero value disables everything; use
// DefaultOptions as the starting point. Options is a value: the With*
// setters return a modified copy, so a built Options can be passed
// immutably into any number of Matchers.
type Options struct {
	LineNumbers bool // attach 1-based line numbers to retained lines
	Retain      bool // materialize matching lines and captures
	Invert      bool // a line matches when the pattern is absent
}

// DefaultOptions returns the defaults: line numbers on, retention on,
// invert off.
func DefaultOptions() Options {
	return Options{LineNumbers: true, Retain: true}
}

// WithLineNumbers toggles line-number tracking. Turn it off when the
// source is not actually a file.
func (o Options) WithLineNumbers(on bool) Options {
	o.LineNumbers = on
	return o
}

// KeepLines toggles whether matching lines and captures are materialized
// at all. When off only the count advances, which avoids allocation in
// count-only and files-with-matches modes.
func (o Options) KeepLines(on bool) Options {
	o.Retain = on
	return o
}

// InvertMatch toggles inverted matching: a line is a hit when the pattern
// does not occur on it. Inverted hits carry no captures.
func (o Options) InvertMatch(on bool) Options {
	o.Invert = on
	return o
}

// Matcher performs one scan of one input under a fixed configuration.
// It is single-use: Collect consumes it.
type Matcher struct {
	pat      pattern.Pattern
	opts     Options
	consumed bool
}

// New binds a Matcher to a shared compiled pattern. The pattern is only
// read, never copied or mutated, so one pattern serves every worker.
func New(p pattern.Pattern, opts Options) *Matcher {
	return &Matcher{pat: p, opts: opts}
}

// Collect reads r line by line until EOF and returns the scan result.
// A read failure discards the partial result and returns the error; no
// partially scanned Matches is ever exposed.
func (m *Matcher) Collect(r io.Reader) (*Matches, error) {
	if m.consumed {
		return nil, ErrConsumed
	}
	m.consumed = true

	br := bufio.NewReader(r)
	out := &Matches{}
	lineNum := 0

	for {
		raw, err := br.ReadBytes('\n')
		if len(raw) > 0 {
			lineNum++
			m.scanLine(raw, lineNum, out)
		}
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read line %d: %w", lineNum+1, err)
		}
	}
}

// scanLine runs the pattern over one raw line and folds the outcome into
// out. The full line, terminator included, is searched; a line is a hit
// iff (occurrences > 0) != invert. A zero-length occurrence still counts
// as one hit for its line, not one per position.
func (m *Matcher) scanLine(raw []byte, num int, out *Matches) {
	locs := m.pat.FindAllIndex(raw)
	if (len(locs) > 0) == m.opts.Invert {
		return
	}
	if !m.opts.Retain {
		out.increment()
		return
	}

	line := Line{Value: string(raw)}
	if m.opts.LineNumbers {
		line.Number = num
	}
	if !m.opts.Invert {
		line.Captures = make([]Capture, len(locs))
		for i, loc := range locs {
			line.Captures[i] = Capture{
				Start: loc[0],
				End:   loc[1],
				Value: string(raw[loc[0]:loc[1]]),
			}
		}
	}
	out.add(line)
}
