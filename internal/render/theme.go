package render

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/adrozdenko/toonify/pkg/record"
)

// Theme defines colors and icons for terminal rendering.
type Theme struct {
	Name     string
	Error    lipgloss.Style
	Warning  lipgloss.Style
	React    lipgloss.Style
	Build    lipgloss.Style
	Network  lipgloss.Style
	Security lipgloss.Style
	Message  lipgloss.Style
	Frame    lipgloss.Style
	Stats    lipgloss.Style
	Muted    lipgloss.Style
	Bold     lipgloss.Style
}

// DefaultTheme returns the vibrant color theme.
func DefaultTheme() Theme {
	return Theme{
		Name:     "default",
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")), // red
		Warning:  lipgloss.NewStyle().Foreground(lipgloss.Color("220")), // yellow
		React:    lipgloss.NewStyle().Foreground(lipgloss.Color("170")), // magenta
		Build:    lipgloss.NewStyle().Foreground(lipgloss.Color("44")),  // cyan
		Network:  lipgloss.NewStyle().Foreground(lipgloss.Color("39")),  // blue
		Security: lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // bright red
		Message:  lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		Frame:    lipgloss.NewStyle().Foreground(lipgloss.Color("44")),
		Stats:    lipgloss.NewStyle().Foreground(lipgloss.Color("34")), // green
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
		Bold:     lipgloss.NewStyle().Bold(true),
	}
}

// MonoTheme returns a monochrome theme (no colors).
func MonoTheme() Theme {
	return Theme{
		Name: "mono",
		Bold: lipgloss.NewStyle().Bold(true),
	}
}

// ThemeByName returns a theme by name, defaulting to DefaultTheme.
func ThemeByName(name string) Theme {
	switch name {
	case "mono":
		return MonoTheme()
	default:
		return DefaultTheme()
	}
}

// TypeStyle returns the accent style for an error category.
func (t Theme) TypeStyle(typ record.ErrorType) lipgloss.Style {
	switch typ {
	case record.TypeDOMNesting, record.TypeDeprecation, record.TypeReactKey:
		return t.Warning
	case record.TypeHydration, record.TypeReactMinified, record.TypeInvalidHook:
		return t.React
	case record.TypeStorybook, record.TypeNextJS, record.TypeModuleNotFound, record.TypePlaywright:
		return t.Build
	case record.TypeNetwork, record.TypeHTTP, record.TypeWebSocket:
		return t.Network
	case record.TypeCORS, record.TypeCSP, record.TypeSecurity, record.TypeMixedContent:
		return t.Security
	default:
		return t.Error
	}
}

// typeIcons holds the Nerd Font glyph shown next to each category name.
var typeIcons = map[record.ErrorType]string{
	record.TypeDOMNesting:         "󰅖",
	record.TypeHydration:          "󰜈",
	record.TypeReactMinified:      "󰜈",
	record.TypeInvalidHook:        "󰜈",
	record.TypeReactKey:           "󰜈",
	record.TypeStorybook:          "󰂺",
	record.TypeNextJS:             "󰔶",
	record.TypePlaywright:         "󰙨",
	record.TypeCORS:               "󰒃",
	record.TypeCSP:                "󰒃",
	record.TypeSecurity:           "󰒃",
	record.TypeMixedContent:       "󰒃",
	record.TypeNetwork:            "󰖟",
	record.TypeHTTP:               "󰖟",
	record.TypeWebSocket:          "󱄙",
	record.TypeModuleNotFound:     "󰏗",
	record.TypeSystem:             "",
	record.TypeUnhandledRejection: "󰜺",
	record.TypeMedia:              "󰎁",
	record.TypeIndexedDB:          "󰆼",
	record.TypeServiceWorker:      "󰖟",
	record.TypeDeprecation:        "󰀦",
}

// TypeIcon returns the icon for an error category, "" as the generic mark.
func TypeIcon(typ record.ErrorType) string {
	if icon, ok := typeIcons[typ]; ok {
		return icon
	}
	return ""
}
