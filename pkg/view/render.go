package view

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/x/ansi"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	cursorStyle = cellStyle.Foreground(ColorAccent).Bold(true)
	idStyle     = cellStyle.Foreground(ColorID).Bold(true)
	hrefStyle   = cellStyle.Foreground(ColorMuted).Italic(true)
	borderStyle = lipgloss.NewStyle().Foreground(ColorBorder)

	enabledStyle  = lipgloss.NewStyle().Foreground(ColorOK).Bold(true)
	disabledStyle = lipgloss.NewStyle().Foreground(ColorAlert).Bold(true)
)

// column order of the rendered table
var headers = []Cell{"id", CellName, CellLink, CellEnabled, CellTimesUsed}

// View renders the rows as a bordered table no wider than width, with the
// cursor row highlighted. Only the link column is shortened to fit.
func (t *Table) View(width int) string {
	linkWidth := width - 40
	if linkWidth < 20 {
		linkWidth = 20
	}

	data := make([][]string, 0, len(t.rows))
	for _, r := range t.rows {
		data = append(data, []string{
			r.ID.String(),
			r.Name,
			Truncate(r.LinkText, linkWidth),
			EnabledIndicator(r.Enabled),
			strconv.FormatInt(r.TimesUsed, 10),
		})
	}

	names := make([]string, len(headers))
	for i, h := range headers {
		names[i] = columnTitle(h)
	}

	cursor := t.cursor
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers(names...).
		Rows(data...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row == cursor:
				return cursorStyle
			case headers[col] == CellLink:
				return hrefStyle
			case headers[col] == "id":
				return idStyle
			}
			return cellStyle
		}).
		Render()
}

// StyledIndicator is EnabledIndicator in color
func StyledIndicator(enabled bool) string {
	if enabled {
		return enabledStyle.Render(EnabledIndicator(true))
	}
	return disabledStyle.Render(EnabledIndicator(false))
}

func columnTitle(c Cell) string {
	switch c {
	case CellName:
		return "NAME"
	case CellLink:
		return "LINK"
	case CellEnabled:
		return "ENABLED"
	case CellTimesUsed:
		return "USED"
	}
	return "ID"
}

// Truncate shortens s to at most width terminal cells, ending in "...".
// It never splits a multi-byte character.
func Truncate(s string, width int) string {
	return ansi.Truncate(s, width, "...")
}
