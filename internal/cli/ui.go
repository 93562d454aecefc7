package cli

import (
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/reqdetect/pkg/requirement"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan  = lipgloss.Color("36")  // Teal - names
	colorBlue  = lipgloss.Color("75")  // Light blue - links
	colorWhite = lipgloss.Color("255") // Bright white - values
	colorGray  = lipgloss.Color("245") // Gray - headers
	colorDim   = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Styles
// =============================================================================

var (
	styleHeader = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	styleName   = lipgloss.NewStyle().Foreground(colorCyan)
	styleValue  = lipgloss.NewStyle().Foreground(colorWhite)
	styleLink   = lipgloss.NewStyle().Foreground(colorBlue).Underline(true)
	styleDim    = lipgloss.NewStyle().Foreground(colorDim)
)

const (
	colName = iota
	colSpecs
	colURL
	colSource
)

// headerRow is the row index StyleFunc receives for the header.
const headerRow = -1

// placeholder fills empty cells.
const placeholder = "—"

// =============================================================================
// Table Output
// =============================================================================

// renderTable lays out reqs as a bordered table of name, version specs, URL
// and the file each was declared in.
func renderTable(reqs []*requirement.DetectedRequirement) string {
	rows := make([][]string, len(reqs))
	for i, r := range reqs {
		rows[i] = []string{
			orPlaceholder(r.Name()),
			orPlaceholder(specsCell(r.VersionSpecs())),
			orPlaceholder(r.URL()),
			orPlaceholder(sourceCell(r.Location())),
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleDim).
		Headers("Name", "Version", "URL", "Source").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			if row == headerRow {
				return base.Inherit(styleHeader)
			}
			switch col {
			case colName:
				return base.Inherit(styleName)
			case colSpecs:
				return base.Inherit(styleValue)
			case colURL:
				return base.Inherit(styleLink)
			}
			return base.Inherit(styleDim)
		})
	return t.Render()
}

func specsCell(specs []requirement.VersionSpec) string {
	parts := make([]string, len(specs))
	for i, s := range specs {
		parts[i] = s.String()
	}
	return strings.Join(parts, ",")
}

func sourceCell(location string) string {
	if location == "" {
		return ""
	}
	return filepath.Base(location)
}

func orPlaceholder(s string) string {
	if s == "" {
		return placeholder
	}
	return s
}
