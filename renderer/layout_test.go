package renderer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWrapTextTwoLines(t *testing.T) {
	lines := WrapText("aaaa bbbb cccc dddd", 10)
	require.Equal(t, []string{"aaaa bbbb", "cccc dddd"}, lines)

	// Same split when the pair fills the line exactly
	lines = WrapText("aaaa bbbb cccc dddd", 9)
	require.Equal(t, []string{"aaaa bbbb", "cccc dddd"}, lines)
}

func TestWrapTextFitsOneLine(t *testing.T) {
	lines := WrapText("a short thought", 35)
	require.Equal(t, []string{"a short thought"}, lines)
}

func TestWrapTextEmpty(t *testing.T) {
	require.Equal(t, []string{""}, WrapText("", 35))
}

func TestWrapTextExactBoundary(t *testing.T) {
	// "aaaa bbbb" is exactly 9 characters, the next word must not join
	lines := WrapText("aaaa bbbb cc", 9)
	require.Equal(t, []string{"aaaa bbbb", "cc"}, lines)

	// at 8 the first pair no longer fits together
	lines = WrapText("aaaa bbbb cc", 8)
	require.Equal(t, []string{"aaaa", "bbbb cc"}, lines)
}

func TestWrapTextOverlongWord(t *testing.T) {
	lines := WrapText("hi incomprehensibilities yo", 10)
	require.Equal(t, []string{"hi", "incomprehensibilities", "yo"}, lines)
}

func TestWrapTextOverlongWordAlone(t *testing.T) {
	lines := WrapText("incomprehensibilities", 10)
	require.Equal(t, []string{"incomprehensibilities"}, lines)
}

func TestWrapTextPreservesWords(t *testing.T) {
	text := "the quick brown fox jumps over the lazy dog again and again"
	for _, maxChars := range []int{5, 10, 20, 35, 100} {
		lines := WrapText(text, maxChars)
		require.Equal(t, text, strings.Join(lines, " "), "maxChars=%d", maxChars)
	}
}

func TestFirstLineY(t *testing.T) {
	require.Equal(t, 238, FirstLineY(1))
	require.Equal(t, 226, FirstLineY(2))
	require.Equal(t, 214, FirstLineY(3))
}

func TestFirstLineYCentersBlock(t *testing.T) {
	// First baseline plus half the block height lands on the canvas center
	for lineCount := 1; lineCount <= 16; lineCount++ {
		y := FirstLineY(lineCount)
		require.Equal(t, CanvasCenterY, y+lineCount*HalfLineHeight)
	}
}
