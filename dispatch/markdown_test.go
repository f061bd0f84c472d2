package dispatch

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStripMarkdown(t *testing.T) {
	tests := []struct {
		description string
		in          string
		want        string
	}{
		{"Plain text passes through", "hello world", "hello world"},
		{"Emphasis markers are dropped", "this is **important** and *subtle*", "this is important and subtle"},
		{"Links keep their label", "see [the docs](https://example.com/docs)", "see the docs"},
		{"Images keep their alt text", "![diagram](https://example.com/d.png)", "diagram"},
		{"Inline code keeps its content", "run `make test` locally", "run make test locally"},
		{"Code fences are removed entirely", "before\n```\ncode here\n```\nafter", "before after"},
		{"Headings lose their markers", "# Title\nbody", "Title body"},
		{"Blockquote markers are dropped", "> quoted line", "quoted line"},
		{"Newlines collapse to spaces", "line one\nline two", "line one line two"},
		{"Whitespace-only input becomes empty", "   \n\t ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			require.Equal(t, tt.want, stripMarkdown(tt.in), tt.description)
		})
	}
}
