package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/adrozdenko/toonify/pkg/record"
)

// SourceExtensions are the file extensions recognized as source references
// by default.
const SourceExtensions = `mdx|tsx|jsx|ts|js|vue|svelte`

// locationPattern compiles the file-reference recognizer for an extension
// alternation.
func locationPattern(exts string) *regexp.Regexp {
	return regexp.MustCompile(`([A-Za-z0-9_.-]+\.(?:` + exts + `)):(\d+)(?::(\d+))?`)
}

var (
	locationRe = locationPattern(SourceExtensions)

	// depPathRe classifies a reference as dependency/build-output code for
	// the location preference. Narrower than noiseRe on purpose: bundler
	// wrappers like webpack-internal:///./src/... still carry user paths.
	depPathRe = regexp.MustCompile(`node_modules|chunk-|storybook_internal|react-dom`)

	// locFileLineRe reduces a full URL/path to file.ext:line[:col].
	locFileLineRe = regexp.MustCompile(`([^/\s]+\.[A-Za-z]+):(\d+)(?::(\d+))?$`)
)

// Location returns the most relevant file position referenced by the
// block's lines, or nil when none parses. User code wins over dependency
// code; within a class the first hit in block order (innermost frame) wins;
// a dependency location is still surfaced when no user code appears.
func (p *Patterns) Location(lines []string) *record.FileLocation {
	var fallback *record.FileLocation
	for _, line := range lines {
		m := p.locationRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		loc := &record.FileLocation{Path: m[1], Line: atoi(m[2]), Column: atoi(m[3])}
		if UserCode(line) && !p.extraNoise(line) {
			return loc
		}
		if fallback == nil {
			fallback = loc
		}
	}
	return fallback
}

// Location scans with the built-in recognizers.
func Location(lines []string) *record.FileLocation {
	return defaultPatterns.Location(lines)
}

// UserCode reports whether a file reference points at user code rather
// than dependency or build-output code. ref may be a bare path or a whole
// frame line; the surrounding text is what carries dependency markers.
func UserCode(ref string) bool {
	return !depPathRe.MatchString(ref)
}

// ParseLocation turns raw frame location text ("http://host/path/to/
// file.tsx:42:10") into a structured location, keeping the raw text as the
// path when no file:line shape is found.
func ParseLocation(raw string) *record.FileLocation {
	raw = strings.TrimSpace(strings.Trim(raw, "()"))
	if raw == "" {
		return nil
	}
	if m := locFileLineRe.FindStringSubmatch(raw); m != nil {
		return &record.FileLocation{Path: m[1], Line: atoi(m[2]), Column: atoi(m[3])}
	}
	if !strings.ContainsRune(raw, ':') {
		return nil // "<anonymous>" and friends carry no position
	}
	return &record.FileLocation{Path: raw}
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
