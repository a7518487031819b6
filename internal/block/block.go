// Package block splits raw console text into per-error blocks.
//
// A pasted console dump often contains several independent errors back to
// back. The splitter walks the input line by line and starts a new block at
// every line that looks like a fresh top-level error header. Stack-frame
// lines are never treated as headers, even when a quoted message inside a
// frame resembles one.
package block

import (
	"regexp"
	"strings"
)

// Block is a contiguous run of input lines belonging to one error.
type Block struct {
	Lines  []string
	Offset int // line index of the block's first line in the original input
}

// Text returns the block's lines joined back into a single string.
func (b *Block) Text() string {
	return strings.Join(b.Lines, "\n")
}

var (
	// Stack-frame shapes: "at fn (loc)" call frames, "fn @ loc" separator
	// frames, and indented bare file-position lines.
	frameAtRe  = regexp.MustCompile(`^\s*at\s+\S`)
	frameSepRe = regexp.MustCompile(`^\s*\S+\s*@\s*\S+:\d+`)
	frameLocRe = regexp.MustCompile(`^\s+\(?[^\s()]+:\d+(?::\d+)?\)?\s*$`)

	// Error-introduction shapes: a leading error-type keyword or
	// Error:/Warning: prefix, optionally behind a browser console prefix
	// ("file.js:42 TypeError: ...").
	boundaryKeywordRe = regexp.MustCompile(`^(?:Uncaught\s+(?:\(in promise\)\s+)?)?\w*(?:Error|Exception|Warning):`)
	boundaryConsoleRe = regexp.MustCompile(`^\S+:\d+(?::\d+)?\s+(?:Uncaught\s+)?\w*(?:Error|Exception|Warning):`)
)

// IsFrameLine reports whether line is a stack-frame line. Pure predicate;
// the splitter and the noise filter must agree on it.
func IsFrameLine(line string) bool {
	return frameAtRe.MatchString(line) ||
		frameSepRe.MatchString(line) ||
		frameLocRe.MatchString(line)
}

// isBoundary reports whether line looks like the start of a new top-level
// error. Frame lines take precedence: callers must check IsFrameLine first.
func isBoundary(line string) bool {
	return boundaryKeywordRe.MatchString(line) ||
		boundaryConsoleRe.MatchString(line)
}

// Split partitions input into an ordered, non-overlapping sequence of
// blocks. Every non-blank line belongs to exactly one block and block order
// matches line order. Input without any boundary line yields one block
// spanning the whole input. Blank lines are kept inside the current block
// unless they immediately precede a boundary, in which case they act as a
// separator and are dropped.
func Split(input string) []Block {
	lines := strings.Split(input, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1] // trailing newline artifact
	}

	var blocks []Block
	var cur Block
	blanks := 0 // blank lines seen since the last content line

	emit := func() {
		if len(cur.Lines) > 0 {
			blocks = append(blocks, cur)
		}
	}

	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			if len(cur.Lines) > 0 {
				blanks++
			}
			continue
		}

		frame := IsFrameLine(line)
		if !frame && isBoundary(line) && len(cur.Lines) > 0 {
			// Pending blanks were a separator; drop them.
			emit()
			cur = Block{Offset: i}
			blanks = 0
		}

		if len(cur.Lines) == 0 {
			cur.Offset = i
			blanks = 0
		}
		for ; blanks > 0; blanks-- {
			cur.Lines = append(cur.Lines, "")
		}
		cur.Lines = append(cur.Lines, line)
	}
	emit()
	return blocks
}
