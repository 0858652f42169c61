package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		w    int
		want string
	}{
		{"hello", 10, "hello"},
		{"hello", 5, "hello"},
		{"hello world", 6, "hello…"},
		{"hello", 0, ""},
		{"日本語テキスト", 5, "日本…"},
	}
	for _, tt := range tests {
		got := Truncate(tt.in, tt.w)
		assert.Equal(t, tt.want, got, "Truncate(%q, %d)", tt.in, tt.w)
		assert.LessOrEqual(t, VisualWidth(got), max(tt.w, 0))
	}
}

func TestCenter(t *testing.T) {
	assert.Equal(t, "  ab", Center("ab", 6))
	assert.Equal(t, "abc", Center("abc", 3))
	assert.Equal(t, "ab…", Center("abcdef", 3))
}

func TestWrap(t *testing.T) {
	got := Wrap("Get updates on AI insights and projects", 16)
	assert.Equal(t, []string{"Get updates on", "AI insights and", "projects"}, got)
	for _, l := range got {
		assert.LessOrEqual(t, VisualWidth(l), 16)
	}
	assert.Equal(t, []string{"abcd", "efgh"}, Wrap("abcdefgh", 4))
	assert.Nil(t, Wrap("x", 0))
}
