package renderer

import "strings"

// Canvas geometry shared with the journal contract. The contract hardcodes
// the same values in its on-chain renderer, so these must never drift.
const (
	CanvasSize     = 500
	CanvasCenterY  = 250
	LineHeight     = 24
	HalfLineHeight = LineHeight / 2
)

// Greedy word wrap, matching the contract's line-breaking byte for byte:
// words split on single spaces, a word is appended to the current line
// while the line plus a separating space stays within maxChars. A single
// word longer than the budget is placed alone on its own line and may
// exceed it; there is no hyphenation or mid-word breaking. Empty input
// yields one empty line, never zero lines.
func WrapText(text string, maxChars int) []string {
	words := strings.Split(text, " ")

	lines := make([]string, 0, 1)
	current := words[0]
	for _, word := range words[1:] {
		if len(current)+1+len(word) <= maxChars {
			current += " " + word
		} else {
			lines = append(lines, current)
			current = word
		}
	}
	return append(lines, current)
}

// Baseline Y coordinate of the first wrapped line. Subsequent lines
// advance by LineHeight. Matches the contract's vertical centering.
func FirstLineY(lineCount int) int {
	return CanvasCenterY - lineCount*HalfLineHeight
}
