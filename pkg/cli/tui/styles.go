package tui

import (
	"strings"

	"link-admin/pkg/view"

	"github.com/charmbracelet/lipgloss"
)

// Panel styles, built on the palette the link table uses.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(view.ColorAccent).
			MarginBottom(1)

	boldStyle  = lipgloss.NewStyle().Bold(true)
	mutedStyle = lipgloss.NewStyle().Foreground(view.ColorMuted)
	helpStyle  = mutedStyle.Italic(true)

	// status line and notifications
	statusStyle       = lipgloss.NewStyle().Foreground(view.ColorOK).Bold(true)
	notificationStyle = lipgloss.NewStyle().Foreground(view.ColorAlert).Bold(true)
	loadingStyle      = lipgloss.NewStyle().Foreground(view.ColorInfo)

	// delete confirmation
	warningStyle = lipgloss.NewStyle().Foreground(view.ColorWarn).Bold(true)

	// details, form and confirm views of a single link
	linkIDStyle     = lipgloss.NewStyle().Foreground(view.ColorID).Bold(true)
	linkTitleStyle  = lipgloss.NewStyle().Foreground(view.ColorText).Bold(true)
	linkURLStyle    = mutedStyle.Italic(true)
	fieldLabelStyle = lipgloss.NewStyle().
			Foreground(view.ColorAccent).
			Bold(true).
			MarginRight(2)

	// focused form field
	selectedStyle       = lipgloss.NewStyle().Foreground(view.ColorAccent).Bold(true)
	selectedMarkerStyle = selectedStyle

	dividerStyle = lipgloss.NewStyle().Foreground(view.ColorBorder)
)

func renderTitle(title string) string {
	return "\n" + titleStyle.Render(title) + "\n"
}

func renderSuccess(msg string) string {
	return statusStyle.Render("✓ " + msg)
}

func renderError(msg string) string {
	return notificationStyle.Render("❌ " + msg)
}

func renderDivider(length int) string {
	return dividerStyle.Render(strings.Repeat("─", length))
}
