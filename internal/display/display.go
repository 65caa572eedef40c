// Package display renders scan results for humans: a per-input header with
// the match count, then each retained line with its captures highlighted.
package display

import (
	"strconv"
	"strings"

	"github.com/kc/grusp/internal/matcher"
)

// Display formats Matches values. It is configured once and reused for
// every result in a run.
type Display struct {
	styles    Styles
	countOnly bool
	filesOnly bool
}

// New creates a Display. countOnly suppresses line detail; filesOnly
// reduces output to just the path.
func New(styles Styles, countOnly, filesOnly bool) *Display {
	return &Display{styles: styles, countOnly: countOnly, filesOnly: filesOnly}
}

// Render appends the formatted result to buf and returns it. Callers pass
// buf[:0] to reuse the underlying array across results.
func (d *Display) Render(buf []byte, m *matcher.Matches) []byte {
	if d.filesOnly {
		buf = append(buf, d.styles.Path.Render(m.Path)...)
		buf = append(buf, '\n')
		return buf
	}

	if m.Path != "" {
		buf = append(buf, d.styles.Path.Render(m.Path)...)
		buf = append(buf, ' ')
	}
	buf = append(buf, "matched "...)
	buf = append(buf, d.styles.Count.Render(strconv.FormatUint(m.Count, 10))...)
	buf = append(buf, " time"...)
	if m.Count > 1 {
		buf = append(buf, 's')
	}
	buf = append(buf, '\n')

	if d.countOnly {
		return buf
	}
	for i := range m.Lines {
		buf = d.renderLine(buf, &m.Lines[i])
	}
	return buf
}

func (d *Display) renderLine(buf []byte, l *matcher.Line) []byte {
	if l.Number > 0 {
		buf = append(buf, d.styles.LineNum.Render(strconv.Itoa(l.Number))...)
		buf = append(buf, ':')
	}

	value := strings.TrimRight(l.Value, "\r\n")
	if len(l.Captures) == 0 {
		buf = append(buf, value...)
		buf = append(buf, '\n')
		return buf
	}

	prev := 0
	for _, c := range l.Captures {
		start, end := c.Start, c.End
		if start > len(value) {
			break
		}
		if end > len(value) {
			end = len(value)
		}
		buf = append(buf, value[prev:start]...)
		buf = append(buf, d.styles.Capture.Render(value[start:end])...)
		prev = end
	}
	if prev < len(value) {
		buf = append(buf, value[prev:]...)
	}
	buf = append(buf, '\n')
	return buf
}
