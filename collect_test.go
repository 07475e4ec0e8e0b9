package infra

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCollectCodePoints(t *testing.T) {
	t.Run("collects matching prefix", func(t *testing.T) {
		position := 0
		got := CollectCodePoints("test1", &position, IsASCIIAlpha[rune])
		require.Equal(t, "test", got)
		require.Equal(t, 4, position)
	})

	t.Run("resumes at position", func(t *testing.T) {
		position := 4
		got := CollectCodePoints("test1234", &position, IsASCIIDigit[rune])
		require.Equal(t, "1234", got)
		require.Equal(t, 8, position)
	})

	t.Run("no match collects nothing", func(t *testing.T) {
		position := 0
		got := CollectCodePoints("abc", &position, IsASCIIDigit[rune])
		require.Equal(t, "", got)
		require.Equal(t, 0, position)
	})

	t.Run("position past end", func(t *testing.T) {
		position := 3
		got := CollectCodePoints("abc", &position, IsASCIIAlpha[rune])
		require.Equal(t, "", got)
		require.Equal(t, 3, position)
	})

	t.Run("empty string", func(t *testing.T) {
		position := 0
		require.Equal(t, "", CollectCodePoints("", &position, IsASCIIAlpha[rune]))
		require.Equal(t, 0, position)
	})

	t.Run("multibyte code points advance by size", func(t *testing.T) {
		position := 0
		got := CollectCodePoints("héllo world", &position, func(r rune) bool {
			return !IsASCIIWhitespace(r)
		})
		require.Equal(t, "héllo", got)
		require.Equal(t, len("héllo"), position)
	})
}

func TestSkipASCIIWhitespace(t *testing.T) {
	position := 0
	SkipASCIIWhitespace(" \t\n x", &position)
	require.Equal(t, 4, position)

	SkipASCIIWhitespace(" \t\n x", &position)
	require.Equal(t, 4, position)

	position = 0
	SkipASCIIWhitespace("", &position)
	require.Equal(t, 0, position)
}

func TestStrictlySplit(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		delimiter rune
		want      []string
	}{
		{"empty yields one token", "", ',', []string{""}},
		{"no delimiter", "abc", ',', []string{"abc"}},
		{"simple", "a,b,c", ',', []string{"a", "b", "c"}},
		{"empty tokens kept", "a,,b,", ',', []string{"a", "", "b", ""}},
		{"leading delimiter", ";x", ';', []string{"", "x"}},
		{"multibyte delimiter", "a♦b♦c", '♦', []string{"a", "b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, StrictlySplit(tt.input, tt.delimiter))
		})
	}
}

func TestSplitOnASCIIWhitespace(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", []string{}},
		{"only whitespace", " \t\n ", []string{}},
		{"single token", "abc", []string{"abc"}},
		{"runs collapse", "a  b\t\nc", []string{"a", "b", "c"}},
		{"surrounding whitespace", "  a b  ", []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, SplitOnASCIIWhitespace(tt.input))
		})
	}
}

func TestSplitOnCommas(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty yields one empty token", "", []string{""}},
		{"tokens trimmed", " a , b ,c", []string{"a", "b", "c"}},
		{"empty tokens kept", "a,,b", []string{"a", "", "b"}},
		{"whitespace-only token", "a, \t,b", []string{"a", "", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, SplitOnCommas(tt.input))
		})
	}
}
