package extract

import (
	"regexp"
	"strings"

	"github.com/adrozdenko/toonify/pkg/record"
)

// Frame shapes seen in browser and Node stack traces:
//
//	at FunctionName (file.tsx:42:10)
//	at file.tsx:42:10
//	@ FunctionName (file.tsx:42)
//	FunctionName @ file.tsx:42
var (
	frameAtNameLocRe = regexp.MustCompile(`at\s+([\w$.\[\]<>]+)\s*\(([^)]+)\)`)
	frameAtBareLocRe = regexp.MustCompile(`at\s+(\S+:\d+(?::\d+)?)\s*$`)
	frameSymNameRe   = regexp.MustCompile(`@\s*(\w+)\s*\(([^)]+)\)`)
	frameNameAtRe    = regexp.MustCompile(`(\w+)\s*@\s*(\S+)`)
)

// ParseFrame parses one stack-frame line. Func and Loc stay empty/nil when
// a shape is not recognized; Raw always holds the trimmed line.
func ParseFrame(line string) record.Frame {
	raw := strings.TrimSpace(line)
	f := record.Frame{Raw: raw}

	if m := frameAtNameLocRe.FindStringSubmatch(raw); m != nil {
		f.Func = m[1]
		f.Loc = ParseLocation(m[2])
		return f
	}
	if m := frameAtBareLocRe.FindStringSubmatch(raw); m != nil {
		f.Loc = ParseLocation(m[1])
		return f
	}
	if m := frameSymNameRe.FindStringSubmatch(raw); m != nil {
		f.Func = m[1]
		f.Loc = ParseLocation(m[2])
		return f
	}
	if m := frameNameAtRe.FindStringSubmatch(raw); m != nil {
		f.Func = m[1]
		f.Loc = ParseLocation(m[2])
		return f
	}
	// Indented bare location line ("    App.tsx:18:42")
	if loc := ParseLocation(raw); loc != nil && loc.Line > 0 {
		f.Loc = loc
	}
	return f
}
