package tui

import (
	"context"
	"fmt"
	"strings"

	"link-admin/pkg/cli/logger"
	"link-admin/pkg/cli/tui/managelinks"
	"link-admin/pkg/linksync"
	"link-admin/pkg/models"
	"link-admin/pkg/view"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// manageLinksModel is the link admin panel. It shows the link table and
// drives refresh, create, edit and delete through the sync controller.
//
// Requests run as tea.Cmds; their results come back as ResultMsg and are
// applied in Update, so the store and table are only touched here.
type manageLinksModel struct {
	ctx  context.Context
	ctrl *linksync.Controller

	mode int

	form linkForm

	// For delete confirmation
	confirm       textinput.Model
	deleteTarget  view.Row
	detailsTarget models.LinkID

	status string

	// Viewport dimensions for proper rendering
	width int
}

// NewManageLinksModel creates the link panel over api.
func NewManageLinksModel(ctx context.Context, api linksync.API) tea.Model {
	model := newManageLinksModel(ctx, api)

	// Wrap with viewport (enable scrolling for long lists)
	return NewViewportWrapper(model, ViewportConfig{
		Title:       "Manage Links",
		ShowHeader:  true,
		ShowFooter:  true,
		UseViewport: true,
		EnableHelp:  true,
		HelpContent: ManageLinksHelpContent,
		MinWidth:    60,
		MinHeight:   10,
	})
}

func newManageLinksModel(ctx context.Context, api linksync.API) *manageLinksModel {
	confirm := textinput.New()
	confirm.Placeholder = "y/N"
	confirm.CharLimit = 3
	confirm.Width = 10

	return &manageLinksModel{
		ctx:     ctx,
		ctrl:    linksync.New(api),
		mode:    managelinks.ModeTable,
		form:    newLinkForm(),
		confirm: confirm,
	}
}

func (m *manageLinksModel) Init() tea.Cmd {
	return m.refresh()
}

// refresh, submitCreate, submitEdit and submitDelete move the operation to
// Pending and hand its request phase to the runtime.

func (m *manageLinksModel) refresh() tea.Cmd {
	m.ctrl.Begin(linksync.OpRefresh)
	return func() tea.Msg {
		return managelinks.ResultMsg{Result: m.ctrl.FetchLinks(m.ctx)}
	}
}

func (m *manageLinksModel) submitCreate(in linksync.CreateInput) tea.Cmd {
	m.ctrl.Begin(linksync.OpCreate)
	return func() tea.Msg {
		return managelinks.ResultMsg{Result: m.ctrl.SubmitCreate(m.ctx, in)}
	}
}

func (m *manageLinksModel) submitEdit(id models.LinkID, in linksync.EditInput) tea.Cmd {
	m.ctrl.Begin(linksync.OpEdit)
	return func() tea.Msg {
		return managelinks.ResultMsg{Result: m.ctrl.SubmitEdit(m.ctx, id, in)}
	}
}

func (m *manageLinksModel) submitDelete(id models.LinkID) tea.Cmd {
	m.ctrl.Begin(linksync.OpDelete)
	return func() tea.Msg {
		return managelinks.ResultMsg{Result: m.ctrl.SubmitDelete(m.ctx, id)}
	}
}

func (m *manageLinksModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		if m.width == 0 {
			m.width = managelinks.DefaultWidth
		}
		return m, nil

	case managelinks.ResultMsg:
		out := m.ctrl.Apply(msg.Result)
		logger.Log("manageLinksModel.Update: applied %s result, phase=%s", out.Op, out.Phase)
		m.status = statusFor(out)
		if m.mode == managelinks.ModeDetails {
			if _, ok := m.ctrl.Table().Row(m.detailsTarget); !ok {
				m.mode = managelinks.ModeTable
			}
		}
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case managelinks.ModeTable:
			return m.handleTableKeys(msg)
		case managelinks.ModeDetails:
			return m.handleDetailsKeys(msg)
		case managelinks.ModeCreate, managelinks.ModeEdit:
			return m.handleFormKeys(msg)
		case managelinks.ModeDeleteConfirm:
			return m.handleDeleteConfirmKeys(msg)
		}
	}

	switch m.mode {
	case managelinks.ModeCreate, managelinks.ModeEdit:
		_, cmd := m.form.update(msg)
		return m, cmd
	case managelinks.ModeDeleteConfirm:
		var cmd tea.Cmd
		m.confirm, cmd = m.confirm.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *manageLinksModel) handleTableKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	table := m.ctrl.Table()
	if handleQuitKeys(msg.String()) {
		return m, tea.Quit
	}
	if newSelected, handled := handleListNavigation(msg.String(), table.Cursor(), table.Len()); handled {
		table.MoveCursor(newSelected - table.Cursor())
		return m, nil
	}

	switch msg.String() {
	case "r":
		m.status = ""
		return m, m.refresh()
	case "a":
		m.status = ""
		m.mode = managelinks.ModeCreate
		return m, m.form.openCreate()
	case "e":
		row, ok := table.Selected()
		if !ok {
			return m, nil
		}
		m.status = ""
		m.mode = managelinks.ModeEdit
		return m, m.form.openEdit(row)
	case "d":
		row, ok := table.Selected()
		if !ok {
			return m, nil
		}
		m.status = ""
		m.deleteTarget = row
		m.mode = managelinks.ModeDeleteConfirm
		m.confirm.Reset()
		m.confirm.Focus()
		return m, textinput.Blink
	case "enter", "v":
		row, ok := table.Selected()
		if !ok {
			return m, nil
		}
		m.detailsTarget = row.ID
		m.mode = managelinks.ModeDetails
		return m, nil
	case "x":
		table.Notifications.Dismiss()
		return m, nil
	case "X":
		table.Notifications.Clear()
		return m, nil
	}
	return m, nil
}

func (m *manageLinksModel) handleDetailsKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if handleQuitKeys(msg.String()) {
		return m, tea.Quit
	}
	switch msg.String() {
	case "esc", "b", "enter":
		m.mode = managelinks.ModeTable
	}
	return m, nil
}

func (m *manageLinksModel) handleFormKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, cmd := m.form.update(msg)
	switch action {
	case formCancel:
		m.form.reset()
		m.mode = managelinks.ModeTable
		return m, nil
	case formSubmit:
		// Inputs are cleared before the request goes out.
		editing, target := m.form.editing, m.form.target
		createIn, editIn := m.form.createInput(), m.form.editInput()
		m.form.reset()
		m.mode = managelinks.ModeTable
		if editing {
			return m, m.submitEdit(target.ID, editIn)
		}
		return m, m.submitCreate(createIn)
	}
	return m, cmd
}

func (m *manageLinksModel) handleDeleteConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		m.mode = managelinks.ModeTable
		return m, nil
	case "enter":
		answer := strings.ToLower(strings.TrimSpace(m.confirm.Value()))
		m.confirm.Reset()
		m.mode = managelinks.ModeTable
		if answer == "y" || answer == "yes" {
			return m, m.submitDelete(m.deleteTarget.ID)
		}
		return m, nil
	default:
		var cmd tea.Cmd
		m.confirm, cmd = m.confirm.Update(msg)
		return m, cmd
	}
}

// CapturingInput reports whether keys should go to a text field rather than
// to the wrapper's shortcuts.
func (m *manageLinksModel) CapturingInput() bool {
	switch m.mode {
	case managelinks.ModeCreate, managelinks.ModeEdit, managelinks.ModeDeleteConfirm:
		return true
	}
	return false
}

func (m *manageLinksModel) View() string {
	var b strings.Builder

	b.WriteString(renderNotifications(m.ctrl.Table().Notifications.Items(), m.getMaxWidth()))

	switch m.mode {
	case managelinks.ModeTable:
		b.WriteString(m.renderTable())
	case managelinks.ModeDetails:
		b.WriteString(m.renderDetails())
	case managelinks.ModeCreate, managelinks.ModeEdit:
		b.WriteString(m.form.view())
	case managelinks.ModeDeleteConfirm:
		b.WriteString(m.renderDeleteConfirm())
	}
	return b.String()
}

// getMaxWidth returns the maximum width for rendering, using DefaultWidth as fallback
func (m *manageLinksModel) getMaxWidth() int {
	if m.width > 0 {
		return m.width
	}
	return managelinks.DefaultWidth
}

// GetSelectedIndex implements SelectableModel for automatic viewport scrolling
func (m *manageLinksModel) GetSelectedIndex() int {
	if m.mode == managelinks.ModeTable {
		return m.ctrl.Table().Cursor()
	}
	return -1
}

// GetItemHeight implements SelectableModel
func (m *manageLinksModel) GetItemHeight() int {
	return 1
}

// GetListHeaderHeight implements SelectableModel. Notifications, the status
// line and the table header sit above the first row.
func (m *manageLinksModel) GetListHeaderHeight() int {
	if m.mode != managelinks.ModeTable {
		return 0
	}
	return 2*m.ctrl.Table().Notifications.Len() + 4
}

func (m *manageLinksModel) renderTable() string {
	table := m.ctrl.Table()

	var b strings.Builder
	switch {
	case table.Loading:
		b.WriteString(renderLoadingState("Loading links..."))
	case m.status != "":
		b.WriteString("\n" + renderSuccess(m.status) + "\n")
	default:
		b.WriteString("\n\n")
	}

	if table.Len() == 0 {
		if !table.Loading {
			b.WriteString(mutedStyle.Render("No links found.") + "\n")
		}
	} else {
		b.WriteString(table.View(m.getMaxWidth()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("(↑/↓ move • Enter details • a add • e edit • d delete • r refresh • x dismiss • q quit)") + "\n")
	return b.String()
}

func (m *manageLinksModel) renderDetails() string {
	row, ok := m.ctrl.Table().Row(m.detailsTarget)
	if !ok {
		return renderErrorView(fmt.Errorf("link %s is no longer listed", m.detailsTarget))
	}

	var b strings.Builder
	b.WriteString(renderTitle("Link Details"))
	b.WriteString(renderDivider(m.getMaxWidth()))
	b.WriteString("\n\n")
	b.WriteString(renderLinkDetails(row))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("(Press Enter, 'b' or Esc to go back)") + "\n")
	return b.String()
}

func (m *manageLinksModel) renderDeleteConfirm() string {
	link := m.deleteTarget
	urlTruncateWidth := m.getMaxWidth() - 10
	if urlTruncateWidth < 40 {
		urlTruncateWidth = 40
	}

	var b strings.Builder
	b.WriteString(renderTitle("Delete Link"))
	b.WriteString(warningStyle.Render("⚠️  Confirm Deletion") + "\n\n")

	b.WriteString(boldStyle.Render("Are you sure you want to delete:") + "\n")
	b.WriteString(fmt.Sprintf("  %s\n", linkTitleStyle.Render(link.Name)))
	b.WriteString(fieldLabelStyle.Render("Link:"))
	b.WriteString(fmt.Sprintf(" %s\n\n", linkURLStyle.Render(view.Truncate(link.Href, urlTruncateWidth))))

	b.WriteString(boldStyle.Render("Confirm (y/N):"))
	b.WriteString(" ")
	b.WriteString(m.confirm.View())
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("(Press Enter to confirm, Esc to cancel)") + "\n")
	return b.String()
}

// statusFor returns the success line shown after a confirmed operation
func statusFor(out linksync.Outcome) string {
	if !out.Committed() {
		return ""
	}
	switch out.Op {
	case linksync.OpCreate:
		return "Link added"
	case linksync.OpEdit:
		return "Link updated"
	case linksync.OpDelete:
		return "Link deleted"
	}
	return ""
}
