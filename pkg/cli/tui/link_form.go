package tui

import (
	"fmt"
	"strings"

	"link-admin/pkg/linksync"
	"link-admin/pkg/view"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	fieldName = iota
	fieldLink
	fieldEnabled
)

// linkForm collects the fields of a create or an edit. It is embedded in the
// panel rather than run as its own program.
type linkForm struct {
	editing   bool
	target    view.Row
	nameInput textinput.Model
	linkInput textinput.Model
	enabled   bool
	focus     int
}

func newLinkForm() linkForm {
	nameInput := textinput.New()
	nameInput.Placeholder = "short name"
	nameInput.CharLimit = 255
	nameInput.Width = 40

	linkInput := textinput.New()
	linkInput.Placeholder = "https://example.com"
	linkInput.CharLimit = 2048
	linkInput.Width = 60

	return linkForm{
		nameInput: nameInput,
		linkInput: linkInput,
	}
}

// openCreate resets the form for a new link
func (f *linkForm) openCreate() tea.Cmd {
	f.editing = false
	f.target = view.Row{}
	f.nameInput.Placeholder = "short name"
	f.linkInput.Placeholder = "https://example.com"
	f.enabled = true
	return f.focusField(fieldName)
}

// openEdit resets the form for an edit of row. The current values are only
// shown as placeholders; a field left blank is not sent.
func (f *linkForm) openEdit(row view.Row) tea.Cmd {
	f.editing = true
	f.target = row
	f.nameInput.Placeholder = row.Name
	f.linkInput.Placeholder = row.Href
	f.enabled = row.Enabled
	return f.focusField(fieldName)
}

func (f *linkForm) lastField() int {
	if f.editing {
		return fieldEnabled
	}
	return fieldLink
}

func (f *linkForm) focusField(field int) tea.Cmd {
	f.focus = field
	f.nameInput.Blur()
	f.linkInput.Blur()
	switch field {
	case fieldName:
		f.nameInput.Focus()
		return textinput.Blink
	case fieldLink:
		f.linkInput.Focus()
		return textinput.Blink
	}
	return nil
}

// reset clears the inputs
func (f *linkForm) reset() {
	f.nameInput.Reset()
	f.linkInput.Reset()
	f.nameInput.Blur()
	f.linkInput.Blur()
	f.focus = fieldName
}

func (f *linkForm) createInput() linksync.CreateInput {
	return linksync.CreateInput{
		Name: f.nameInput.Value(),
		Link: f.linkInput.Value(),
	}
}

func (f *linkForm) editInput() linksync.EditInput {
	return linksync.EditInput{
		Name:    f.nameInput.Value(),
		Link:    f.linkInput.Value(),
		Enabled: f.enabled,
	}
}

// formAction is what the panel should do after the form handled a key
type formAction int

const (
	formContinue formAction = iota
	formSubmit
	formCancel
)

func (f *linkForm) update(msg tea.Msg) (formAction, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			return formCancel, nil
		case "tab", "down":
			return formContinue, f.focusField((f.focus + 1) % (f.lastField() + 1))
		case "shift+tab", "up":
			return formContinue, f.focusField((f.focus + f.lastField()) % (f.lastField() + 1))
		case "enter":
			if f.focus == f.lastField() {
				return formSubmit, nil
			}
			return formContinue, f.focusField(f.focus + 1)
		case " ", "y", "n":
			if f.focus == fieldEnabled {
				switch key.String() {
				case "y":
					f.enabled = true
				case "n":
					f.enabled = false
				default:
					f.enabled = !f.enabled
				}
				return formContinue, nil
			}
		}
	}

	var cmd tea.Cmd
	switch f.focus {
	case fieldName:
		f.nameInput, cmd = f.nameInput.Update(msg)
	case fieldLink:
		f.linkInput, cmd = f.linkInput.Update(msg)
	}
	return formContinue, cmd
}

func (f *linkForm) view() string {
	var s strings.Builder
	if f.editing {
		s.WriteString(renderTitle(fmt.Sprintf("Edit Link %s", f.target.ID)))
		s.WriteString(mutedStyle.Render("Leave a field blank to keep its current value.") + "\n\n")
	} else {
		s.WriteString(renderTitle("Add New Link"))
	}

	s.WriteString(f.label(fieldName, "Name:") + "\n")
	s.WriteString(f.nameInput.View() + "\n\n")
	s.WriteString(f.label(fieldLink, "Link:") + "\n")
	s.WriteString(f.linkInput.View() + "\n")

	if f.editing {
		marker := " "
		if f.focus == fieldEnabled {
			marker = selectedMarkerStyle.Render("→")
		}
		s.WriteString("\n" + f.label(fieldEnabled, "Enabled:"))
		s.WriteString(fmt.Sprintf(" %s %s\n", marker, renderEnabled(f.enabled)))
	}

	s.WriteString("\n")
	if f.editing {
		s.WriteString(helpStyle.Render("(Tab to move, Space to toggle enabled, Enter on the last field to save, Esc to cancel)"))
	} else {
		s.WriteString(helpStyle.Render("(Tab to move, Enter on the last field to save, Esc to cancel)"))
	}
	s.WriteString("\n")
	return s.String()
}

func (f *linkForm) label(field int, text string) string {
	if f.focus == field {
		return selectedStyle.Render(text)
	}
	return fieldLabelStyle.Render(text)
}
