package links

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"link-admin/pkg/models"
	"link-admin/pkg/view"
)

// FormatTableOutput formats links as a table for CLI output
func FormatTableOutput(links []models.Link) string {
	if len(links) == 0 {
		return "No links found.\n"
	}

	var b strings.Builder
	b.WriteString("\n")

	w := tabwriter.NewWriter(&b, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tLINK\tENABLED\tUSED")
	fmt.Fprintln(w, strings.Repeat("─", 4)+"\t"+strings.Repeat("─", 16)+"\t"+strings.Repeat("─", 50)+"\t"+strings.Repeat("─", 7)+"\t"+strings.Repeat("─", 4))

	for _, link := range links {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n",
			link.ID,
			link.Name,
			TruncateURL(link.Link, 50),
			view.EnabledIndicator(link.Enabled),
			link.TimesUsed,
		)
	}

	w.Flush()
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Total: %d link(s)\n", len(links)))

	return b.String()
}

// FormatSuccessMessage formats a confirmed link
func FormatSuccessMessage(message string, link models.Link) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("✓ " + message + "\n")
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  ID:         %s\n", link.ID))
	b.WriteString(fmt.Sprintf("  Name:       %s\n", link.Name))
	b.WriteString(fmt.Sprintf("  Link:       %s\n", link.Link))
	b.WriteString(fmt.Sprintf("  Enabled:    %s\n", view.EnabledIndicator(link.Enabled)))
	b.WriteString(fmt.Sprintf("  Times used: %d\n", link.TimesUsed))
	b.WriteString("\n")

	return b.String()
}

// FormatErrorMessage formats an error message consistently
func FormatErrorMessage(err error) string {
	return fmt.Sprintf("❌ Error: %v\n", err)
}

// TruncateURL truncates a URL to the specified display width
func TruncateURL(url string, maxLen int) string {
	return view.Truncate(url, maxLen)
}
