package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/adrozdenko/toonify/internal/textutil"
	"github.com/adrozdenko/toonify/pkg/record"
)

// boxWidth is the outer width of a record box, border included.
const boxWidth = 43

// Terminal renders each record as a colored, bordered box with the
// category accent color, plus an overall savings line.
type Terminal struct {
	theme Theme
}

// NewTerminal creates a terminal renderer with the given theme.
func NewTerminal(theme Theme) *Terminal {
	return &Terminal{theme: theme}
}

// Render formats all records.
func (t *Terminal) Render(records []record.ErrorRecord) string {
	var sb strings.Builder
	for i := range records {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(t.renderBox(&records[i]))
		sb.WriteByte('\n')
	}
	if len(records) > 1 {
		s := record.Aggregate(records)
		sb.WriteString(t.theme.Stats.Render("📦 total "+s.String()) + "\n")
	}
	return sb.String()
}

func (t *Terminal) renderBox(r *record.ErrorRecord) string {
	accent := t.theme.TypeStyle(r.Type)
	content := boxWidth - 4 // "│ " and " │"

	var lines []string
	lines = append(lines, accent.Inherit(t.theme.Bold).Render(
		textutil.TruncateDisplay(TypeIcon(r.Type)+" "+string(r.Type), content)))
	lines = append(lines, t.theme.Muted.Render(strings.Repeat("─", content)))

	if r.Loc != nil {
		lines = append(lines, textutil.TruncateDisplay(" "+r.Loc.String(), content))
	}
	if r.Message != "" {
		lines = append(lines, t.theme.Message.Render(textutil.TruncateDisplay(" "+r.Message, content)))
	}
	if len(r.Frames) > 0 {
		lines = append(lines, t.theme.Muted.Render("frames:"))
		for _, f := range r.Frames {
			lines = append(lines, t.theme.Frame.Render(textutil.TruncateDisplay("  "+f.Raw, content)))
		}
	}

	lines = append(lines, t.theme.Muted.Render(strings.Repeat("─", content)))
	stats := fmt.Sprintf("📦 %dc → %dc (%d%% saved)", r.OriginalChars, r.CompressedChars, r.SavingsPct())
	lines = append(lines, t.theme.Stats.Render(textutil.TruncateDisplay(stats, content)))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent.GetForeground()).
		Padding(0, 1).
		Width(boxWidth - 2)
	return box.Render(strings.Join(lines, "\n"))
}
