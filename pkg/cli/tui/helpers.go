package tui

import (
	"fmt"
	"strings"

	"link-admin/pkg/view"
)

// renderErrorView renders a standard error view
func renderErrorView(err error) string {
	return "\n" + renderError(fmt.Sprintf("Error: %v", err)) + "\n"
}

// renderLoadingState renders a standard loading message
func renderLoadingState(message string) string {
	return "\n" + loadingStyle.Render(message) + "\n"
}

// renderEnabled renders the enabled indicator of a link
func renderEnabled(enabled bool) string {
	return view.StyledIndicator(enabled)
}

// renderNotifications renders the sticky notification stack, oldest first
func renderNotifications(items []view.Notification, maxWidth int) string {
	if len(items) == 0 {
		return ""
	}

	var b strings.Builder
	for _, n := range items {
		b.WriteString(renderError(n.Title) + "\n")
		b.WriteString("   " + wrapText(n.Message, maxWidth-4, ""))
	}
	return b.String()
}

// renderLinkDetails renders every field of a row
func renderLinkDetails(row view.Row) string {
	var b strings.Builder

	b.WriteString(fieldLabelStyle.Render("ID:"))
	b.WriteString(fmt.Sprintf(" %s\n", linkIDStyle.Render(row.ID.String())))

	b.WriteString(fieldLabelStyle.Render("Key:"))
	b.WriteString(fmt.Sprintf(" %s\n", mutedStyle.Render(string(row.Key))))

	b.WriteString(fieldLabelStyle.Render("Name:"))
	b.WriteString(fmt.Sprintf(" %s\n", row.Name))

	b.WriteString(fieldLabelStyle.Render("Link:"))
	b.WriteString(fmt.Sprintf(" %s\n", row.Href))

	b.WriteString(fieldLabelStyle.Render("Enabled:"))
	b.WriteString(fmt.Sprintf(" %s\n", renderEnabled(row.Enabled)))

	b.WriteString(fieldLabelStyle.Render("Times used:"))
	b.WriteString(fmt.Sprintf(" %d\n", row.TimesUsed))

	return b.String()
}

// wrapText wraps text to a specified width, breaking at word boundaries
func wrapText(text string, width int, indent string) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return indent + "\n"
	}
	if width < 20 {
		width = 20
	}

	var b strings.Builder
	line := ""
	for _, word := range words {
		if line != "" && len(line)+len(word)+1 > width {
			b.WriteString(fmt.Sprintf("%s%s\n", indent, line))
			line = word
		} else {
			if line != "" {
				line += " "
			}
			line += word
		}
	}
	if line != "" {
		b.WriteString(fmt.Sprintf("%s%s\n", indent, line))
	}
	return b.String()
}

// handleListNavigation handles common navigation keys for list views (up/down/j/k)
// Returns the new selected index and whether navigation occurred
func handleListNavigation(key string, selected int, total int) (newSelected int, handled bool) {
	switch key {
	case "up", "k":
		if selected > 0 {
			return selected - 1, true
		}
		return selected, true
	case "down", "j":
		if selected < total-1 {
			return selected + 1, true
		}
		return selected, true
	}
	return selected, false
}

// handleQuitKeys checks if a key should quit the current view
func handleQuitKeys(key string) bool {
	switch key {
	case "ctrl+c", "q", "esc":
		return true
	}
	return false
}
