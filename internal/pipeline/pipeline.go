// Package pipeline wires the block splitter, classifier, and extractors
// into the full compression pass.
//
// Processing is a bounded, synchronous transformation: each block is
// handled independently and records come back in original block order.
package pipeline

import (
	"errors"
	"strings"

	"github.com/adrozdenko/toonify/internal/block"
	"github.com/adrozdenko/toonify/internal/classify"
	"github.com/adrozdenko/toonify/internal/extract"
	"github.com/adrozdenko/toonify/pkg/record"
)

// ErrNoInput is returned when the input is empty after trimming.
var ErrNoInput = errors.New("no error text in input")

// Options tunes per-block processing.
type Options struct {
	MaxFrames int               // frames kept per record; <= 0 means extract.DefaultMaxFrames
	Patterns  *extract.Patterns // nil means extract.DefaultPatterns()
}

func (o Options) patterns() *extract.Patterns {
	if o.Patterns != nil {
		return o.Patterns
	}
	return extract.DefaultPatterns()
}

// Process compresses raw console text into one record per detected error.
func Process(input string, table *classify.Table, opts Options) ([]record.ErrorRecord, error) {
	if strings.TrimSpace(input) == "" {
		return nil, ErrNoInput
	}
	blocks := block.Split(input)
	records := make([]record.ErrorRecord, 0, len(blocks))
	for i := range blocks {
		records = append(records, build(&blocks[i], table, opts))
	}
	return records, nil
}

// build assembles one record from one block.
func build(b *block.Block, table *classify.Table, opts Options) record.ErrorRecord {
	text := b.Text()
	pats := opts.patterns()
	typ := table.Classify(classify.HeaderText(b.Lines))
	loc := pats.Location(b.Lines)
	frames := pats.FilterNoise(extract.Frames(b.Lines), loc, opts.MaxFrames)

	rec := record.ErrorRecord{
		Type:          typ,
		Loc:           loc,
		Message:       extract.Message(text, typ),
		Frames:        frames,
		OriginalChars: len(text),
	}
	rec.CompressedChars = len(rec.Compact())
	return rec
}
