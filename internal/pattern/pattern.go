// Package pattern compiles search expressions into immutable Pattern values.
// A compiled Pattern is safe to share across any number of concurrent scans;
// it is never mutated after Compile returns.
package pattern

import (
	"errors"
	"fmt"
	"regexp"
	"regexp/syntax"

	"go.elara.ws/pcre"
)

// ErrTooLarge reports that the expression compiled to a program bigger than
// the engine allows. Callers can distinguish it from a plain syntax error
// with errors.Is.
var ErrTooLarge = errors.New("pattern too large")

// Pattern is a compiled regular expression shared read-only across scans.
type Pattern interface {
	// FindAllIndex returns the byte span of every non-overlapping
	// occurrence in line, in left-to-right order. Spans never overlap.
	FindAllIndex(line []byte) [][]int

	// String returns the source expression.
	String() string
}

// Opts selects how an expression is compiled.
type Opts struct {
	IgnoreCase bool
	PCRE       bool // use the PCRE2 engine instead of RE2
}

// Compile builds a Pattern from expr. Case sensitivity is baked in here;
// scans never re-apply it.
func Compile(expr string, opts Opts) (Pattern, error) {
	if opts.PCRE {
		return compilePCRE(expr, opts.IgnoreCase)
	}
	src := expr
	if opts.IgnoreCase {
		src = "(?i)" + src
	}
	re, err := regexp.Compile(src)
	if err != nil {
		return nil, classify(expr, err)
	}
	return &regexPattern{re: re, expr: expr}, nil
}

// classify maps an engine compile error onto the package taxonomy.
func classify(expr string, err error) error {
	var serr *syntax.Error
	if errors.As(err, &serr) && serr.Code == syntax.ErrLarge {
		return fmt.Errorf("%q: %w", expr, ErrTooLarge)
	}
	return fmt.Errorf("invalid pattern %q: %w", expr, err)
}

// regexPattern is the default engine, Go's RE2 regexp.
type regexPattern struct {
	re   *regexp.Regexp
	expr string
}

func (p *regexPattern) FindAllIndex(line []byte) [][]int {
	return p.re.FindAllIndex(line, -1)
}

func (p *regexPattern) String() string { return p.expr }

// pcrePattern matches with PCRE2 semantics via the pure Go pcre port.
// Supports lookahead, lookbehind, and backreferences.
type pcrePattern struct {
	re   *pcre.Regexp
	expr string
}

func compilePCRE(expr string, ignoreCase bool) (Pattern, error) {
	var copts pcre.CompileOption
	if ignoreCase {
		copts |= pcre.Caseless
	}
	re, err := pcre.CompileOpts(expr, copts)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", expr, err)
	}
	return &pcrePattern{re: re, expr: expr}, nil
}

func (p *pcrePattern) FindAllIndex(line []byte) [][]int {
	return p.re.FindAllIndex(line, -1)
}

func (p *pcrePattern) String() string { return p.expr }
