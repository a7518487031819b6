package render

import (
	"strings"

	"github.com/adrozdenko/toonify/pkg/record"
)

// Plain renders records as uncolored key:value text, one record per
// paragraph, with an aggregate compression footer. A single record prints
// exactly its canonical compact form plus the footer.
type Plain struct{}

// NewPlain creates a plain-text renderer.
func NewPlain() *Plain {
	return &Plain{}
}

// Render formats all records.
func (p *Plain) Render(records []record.ErrorRecord) string {
	var sb strings.Builder
	for i := range records {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(records[i].Compact())
	}
	sb.WriteString("\n\n---\n")
	sb.WriteString(record.Aggregate(records).String())
	sb.WriteByte('\n')
	return sb.String()
}
