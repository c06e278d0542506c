package tui

import (
	"fmt"
	"strings"

	"link-admin/pkg/view"
)

// HelpItem represents a single keyboard shortcut and its description
type HelpItem struct {
	Key         string
	Description string
}

// ManageLinksHelpContent returns help for the link panel
func ManageLinksHelpContent() string {
	items := []HelpItem{
		{"↑ / ↓ / j / k", "Move the selection"},
		{"Enter / v", "View link details"},
		{"a", "Add a link"},
		{"e", "Edit the selected link"},
		{"d", "Delete the selected link"},
		{"r", "Reload links from the server"},
		{"x", "Dismiss the newest notification"},
		{"X", "Dismiss all notifications"},
		{"PgUp / PgDn", "Scroll"},
		{"q / Esc", "Quit"},
		{"?", "Show this help"},
	}
	return renderHelpItems(items) + "\n" + LinkFormHelpContent()
}

// LinkFormHelpContent returns help for the add and edit forms
func LinkFormHelpContent() string {
	items := []HelpItem{
		{"Tab / Shift+Tab", "Move between fields"},
		{"Space / y / n", "Toggle enabled (edit form)"},
		{"Enter", "Next field, or save on the last one"},
		{"Esc", "Cancel"},
	}
	return renderHelpItems(items)
}

// renderHelpItems formats help items into a readable string
func renderHelpItems(items []HelpItem) string {
	var b strings.Builder
	keyStyle := boldStyle.Foreground(view.ColorAccent)
	for _, item := range items {
		b.WriteString(fmt.Sprintf("  %s  %s\n",
			keyStyle.Render(item.Key),
			item.Description))
	}
	return b.String()
}
