// Package extract pulls locations, stack frames, and messages out of raw
// error blocks.
package extract

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/adrozdenko/toonify/internal/block"
	"github.com/adrozdenko/toonify/pkg/record"
)

// DefaultMaxFrames caps how many frames survive the noise filter.
const DefaultMaxFrames = 3

// noiseRe matches framework and build-tool internals in frame text:
// dependency directories, bundler chunk/cache naming, framework internal
// modules.
var noiseRe = regexp.MustCompile(`chunk-|node_modules|storybook_internal|webpack|vite|/internal|react-dom`)

// Patterns holds the compiled recognizers used for location and noise
// decisions. The default instance covers the built-in extension set and
// noise keywords; NewPatterns extends both from user configuration.
type Patterns struct {
	locationRe *regexp.Regexp
	noiseRe    *regexp.Regexp
	extraRe    *regexp.Regexp // user-supplied noise, nil when unconfigured
}

var defaultPatterns = &Patterns{locationRe: locationRe, noiseRe: noiseRe}

// DefaultPatterns returns the built-in recognizers.
func DefaultPatterns() *Patterns {
	return defaultPatterns
}

// NewPatterns extends the built-in recognizers with user-supplied noise
// regex patterns and extra source file extensions (given without the dot).
// Empty inputs yield the defaults.
func NewPatterns(noisePatterns, sourceExtensions []string) (*Patterns, error) {
	p := &Patterns{locationRe: locationRe, noiseRe: noiseRe}
	if len(noisePatterns) > 0 {
		for _, pat := range noisePatterns {
			if _, err := regexp.Compile(pat); err != nil {
				return nil, fmt.Errorf("noise pattern %q: %w", pat, err)
			}
		}
		p.extraRe = regexp.MustCompile(strings.Join(noisePatterns, "|"))
	}
	if len(sourceExtensions) > 0 {
		exts := SourceExtensions
		for _, ext := range sourceExtensions {
			exts += "|" + regexp.QuoteMeta(strings.TrimPrefix(ext, "."))
		}
		p.locationRe = locationPattern(exts)
	}
	return p, nil
}

// Frames parses every stack-frame line of a block, in order.
func Frames(lines []string) []record.Frame {
	var frames []record.Frame
	for _, line := range lines {
		if block.IsFrameLine(line) {
			frames = append(frames, ParseFrame(line))
		}
	}
	return frames
}

// FilterNoise returns the frames worth keeping, preserving relative order
// and capping the result at max (DefaultMaxFrames when max <= 0). If
// filtering would drop every frame but the block did carry a usable one,
// the frame closest to loc is retained so a record never reports a
// location without the frame that produced it.
func (p *Patterns) FilterNoise(frames []record.Frame, loc *record.FileLocation, max int) []record.Frame {
	if max <= 0 {
		max = DefaultMaxFrames
	}
	var kept []record.Frame
	for _, f := range frames {
		if p.isNoise(f) {
			continue
		}
		kept = append(kept, f)
		if len(kept) == max {
			break
		}
	}
	if len(kept) == 0 && loc != nil {
		if f := closestFrame(frames, *loc); f != nil {
			kept = append(kept, *f)
		}
	}
	return kept
}

// FilterNoise filters with the built-in recognizers.
func FilterNoise(frames []record.Frame, loc *record.FileLocation, max int) []record.Frame {
	return defaultPatterns.FilterNoise(frames, loc, max)
}

func (p *Patterns) isNoise(f record.Frame) bool {
	if p.noiseRe.MatchString(f.Raw) || p.extraNoise(f.Raw) {
		return true
	}
	return f.Loc == nil && !informativeFunc(f.Func)
}

// extraNoise applies the user-configured noise patterns. Unlike the
// built-in noise keywords these also demote a reference in the location
// preference: the user has declared the code framework-internal.
func (p *Patterns) extraNoise(s string) bool {
	return p.extraRe != nil && p.extraRe.MatchString(s)
}

func informativeFunc(name string) bool {
	switch name {
	case "", "anonymous", "(anonymous)", "<anonymous>", "unknown":
		return false
	}
	return true
}

// closestFrame picks the frame matching loc, preferring an exact path+line
// match, then a path match, then any frame carrying a location.
func closestFrame(frames []record.Frame, loc record.FileLocation) *record.Frame {
	var pathMatch, anyLoc *record.Frame
	for i := range frames {
		f := &frames[i]
		if f.Loc == nil {
			continue
		}
		if f.Loc.Path == loc.Path {
			if loc.Line == 0 || f.Loc.Line == loc.Line {
				return f
			}
			if pathMatch == nil {
				pathMatch = f
			}
		}
		if anyLoc == nil {
			anyLoc = f
		}
	}
	if pathMatch != nil {
		return pathMatch
	}
	return anyLoc
}
