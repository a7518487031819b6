// Package textutil provides UTF-8 and display-width safe string helpers.
package textutil

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

const ellipsis = "..."

// Truncate shortens s to at most max bytes, appending "..." when text was
// cut. The cut point always snaps back to a UTF-8 rune boundary, so the
// result is valid UTF-8 and never longer than max bytes.
func Truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max - len(ellipsis)
	if cut <= 0 {
		cut = 0
	}
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + ellipsis
}

// TruncateDisplay shortens s to at most width terminal cells, appending
// "..." when cut. Wide (CJK) runes count as two cells.
func TruncateDisplay(s string, width int) string {
	return runewidth.Truncate(s, width, ellipsis)
}

// DisplayWidth returns the terminal cell width of s.
func DisplayWidth(s string) int {
	return runewidth.StringWidth(s)
}
