package matcher

// Capture is one matched occurrence within a line: a byte span and its text.
// Start and End are byte offsets into the raw line; Value is the slice
// between them.
type Capture struct {
	Start int
	End   int
	Value string
}

// Line is one matching line of input.
type Line struct {
	// Number is the 1-based ordinal of the line within the whole input,
	// or 0 when line numbering is disabled.
	Number int
	// Value is the raw line text, trailing terminator included.
	Value string
	// Captures are ordered by ascending start and never overlap.
	// Inverted matches carry none.
	Captures []Capture
}

// Matches is the complete result of scanning one input. It is mutated only
// by the scan that produces it; afterwards it is read-only.
type Matches struct {
	// Path identifies the scanned input. Empty for streams with no identity.
	Path string
	// Count is the number of matching lines, tracked even when line
	// retention is off and Lines stays empty.
	Count uint64
	Lines []Line
}

// HasMatches reports whether any line matched.
func (m *Matches) HasMatches() bool {
	return m.Count > 0
}

// AddPath tags the result with the input's path. Called once after a file
// scan; never called for stdin.
func (m *Matches) AddPath(path string) *Matches {
	m.Path = path
	return m
}

func (m *Matches) add(l Line) {
	m.Count++
	m.Lines = append(m.Lines, l)
}

func (m *Matches) increment() {
	m.Count++
}
