package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/adrozdenko/toonify/pkg/record"
)

// TOON renders records in Token-Oriented Object Notation: key:value lines,
// frames as a tabular array ("frames[N]{fn,loc}:"), stats as an inline
// object ("stats{orig,comp,pct}:").
type TOON struct{}

// NewTOON creates a TOON renderer.
func NewTOON() *TOON {
	return &TOON{}
}

// Render formats all records, blank-line separated, with an overall total
// appended when there is more than one record.
func (t *TOON) Render(records []record.ErrorRecord) string {
	var sb strings.Builder
	for i := range records {
		if i > 0 {
			sb.WriteByte('\n')
		}
		t.renderOne(&sb, &records[i])
	}
	if len(records) > 1 {
		s := record.Aggregate(records)
		fmt.Fprintf(&sb, "\ntotal{orig,comp,pct}: %d,%d,%d\n", s.OriginalChars, s.CompressedChars, s.SavingsPct())
	}
	return sb.String()
}

func (t *TOON) renderOne(sb *strings.Builder, r *record.ErrorRecord) {
	sb.WriteString("type: ")
	sb.WriteString(string(r.Type))
	sb.WriteByte('\n')
	if r.Loc != nil {
		sb.WriteString("file: ")
		sb.WriteString(r.Loc.String())
		sb.WriteByte('\n')
	}
	if r.Message != "" {
		sb.WriteString("issue: ")
		sb.WriteString(escapeCommas(r.Message))
		sb.WriteByte('\n')
	}
	if len(r.Frames) > 0 {
		fmt.Fprintf(sb, "frames[%d]{fn,loc}:\n", len(r.Frames))
		for _, f := range r.Frames {
			sb.WriteString("  ")
			sb.WriteString(escapeCommas(frameFn(f)))
			sb.WriteByte(',')
			sb.WriteString(frameLoc(f))
			sb.WriteByte('\n')
		}
	}
	fmt.Fprintf(sb, "stats{orig,comp,pct}: %d,%d,%d\n", r.OriginalChars, r.CompressedChars, r.SavingsPct())
}

// escapeCommas protects field values in TOON's comma-delimited rows.
func escapeCommas(s string) string {
	return strings.ReplaceAll(s, ",", `\,`)
}

func frameFn(f record.Frame) string {
	if f.Func != "" {
		return f.Func
	}
	return "unknown"
}

// frameLoc renders the frame position as file:line, dropping the column
// for compactness.
func frameLoc(f record.Frame) string {
	if f.Loc == nil {
		return ""
	}
	if f.Loc.Line > 0 {
		return f.Loc.Path + ":" + strconv.Itoa(f.Loc.Line)
	}
	return f.Loc.Path
}
