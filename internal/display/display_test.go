package display

import (
	"testing"

	"github.com/kc/grusp/internal/matcher"
)

func sampleMatches() *matcher.Matches {
	return &matcher.Matches{
		Path:  "./path/to/something",
		Count: 12,
		Lines: []matcher.Line{
			{
				Number: 23,
				Value:  "some text line\n",
				Captures: []matcher.Capture{
					{Start: 5, End: 9, Value: "text"},
				},
			},
		},
	}
}

func TestRender(t *testing.T) {
	tests := []struct {
		name      string
		countOnly bool
		filesOnly bool
		matches   *matcher.Matches
		want      string
	}{
		{
			name:    "full output",
			matches: sampleMatches(),
			want:    "./path/to/something matched 12 times\n23:some text line\n",
		},
		{
			name:      "count only",
			countOnly: true,
			matches:   sampleMatches(),
			want:      "./path/to/something matched 12 times\n",
		},
		{
			name:      "count only singular",
			countOnly: true,
			matches:   &matcher.Matches{Path: "./path/to/something", Count: 1},
			want:      "./path/to/something matched 1 time\n",
		},
		{
			name:      "count zero is singular",
			countOnly: true,
			matches:   &matcher.Matches{Path: "./path/to/something"},
			want:      "./path/to/something matched 0 time\n",
		},
		{
			name:      "files only",
			filesOnly: true,
			matches:   sampleMatches(),
			want:      "./path/to/something\n",
		},
		{
			name: "no path",
			matches: &matcher.Matches{
				Count: 1,
				Lines: []matcher.Line{{Value: "a test line\n", Captures: []matcher.Capture{
					{Start: 2, End: 6, Value: "test"},
				}}},
			},
			want: "matched 1 time\na test line\n",
		},
		{
			name: "line without number",
			matches: &matcher.Matches{
				Count: 1,
				Lines: []matcher.Line{{Value: "plain\n"}},
			},
			want: "matched 1 time\nplain\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := New(NoStyles(), tt.countOnly, tt.filesOnly)
			got := string(d.Render(nil, tt.matches))
			if got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderHighlightsEveryCapture(t *testing.T) {
	m := &matcher.Matches{
		Count: 1,
		Lines: []matcher.Line{{
			Number: 1,
			Value:  "test a test b test\n",
			Captures: []matcher.Capture{
				{Start: 0, End: 4, Value: "test"},
				{Start: 7, End: 11, Value: "test"},
				{Start: 14, End: 18, Value: "test"},
			},
		}},
	}
	d := New(NoStyles(), false, false)
	got := string(d.Render(nil, m))
	want := "matched 1 time\n1:test a test b test\n"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}
