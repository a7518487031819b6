// Package render provides output renderers for compressed error records.
package render

import "github.com/adrozdenko/toonify/pkg/record"

// Renderer converts records to formatted output.
type Renderer interface {
	Render(records []record.ErrorRecord) string
}
