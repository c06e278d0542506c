package view

import "github.com/charmbracelet/lipgloss"

// Palette shared by the link table and the admin panel.
var (
	ColorAccent = lipgloss.Color("62")  // headers, cursor, titles
	ColorID     = lipgloss.Color("244") // link ids
	ColorOK     = lipgloss.Color("42")  // enabled links, confirmations
	ColorAlert  = lipgloss.Color("196") // disabled links, failure notifications
	ColorWarn   = lipgloss.Color("214") // delete confirmation
	ColorInfo   = lipgloss.Color("39")  // loading
	ColorMuted  = lipgloss.Color("240") // destinations, hints
	ColorBorder = lipgloss.Color("238")
	ColorText   = lipgloss.Color("252")
)
