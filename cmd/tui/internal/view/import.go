package view

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/dmarques/centavo/internal/account"
	"github.com/dmarques/centavo/internal/importer"
)

type importState int

const (
	importStateFilePick importState = iota
	importStateMapping
	importStateAccountPick
	importStateSubmitting
	importStateResult
)

// fieldCycle is the order the enter key cycles a column through.
var fieldCycle = []importer.Field{
	importer.FieldSkip,
	importer.FieldAmount,
	importer.FieldDate,
	importer.FieldPayee,
	importer.FieldNotes,
}

// PromptSelector adapts the huh account picker to the session's
// account selection contract: the choice is staged here before
// Confirm runs.
type PromptSelector struct {
	id     uuid.UUID
	chosen bool
}

func NewPromptSelector() *PromptSelector {
	return &PromptSelector{}
}

func (s *PromptSelector) SelectAccount(_ context.Context) (uuid.UUID, bool, error) {
	return s.id, s.chosen, nil
}

type ImportModel struct {
	CommonModel
	session    *importer.Session
	accService *account.Service
	selector   *PromptSelector

	state      importState
	filePicker filepicker.Model
	colCursor  int

	accounts    []*account.Account
	accountForm *huh.Form
	accountPick string

	status string
	err    error
}

func NewImportModel(session *importer.Session, selector *PromptSelector, accSvc *account.Service) ImportModel {
	fp := filepicker.New()
	fp.CurrentDirectory, _ = os.Getwd()
	fp.ShowHidden = false
	fp.DirAllowed = false
	fp.FileAllowed = true
	fp.SetHeight(15)

	return ImportModel{
		session:    session,
		selector:   selector,
		accService: accSvc,
		filePicker: fp,
	}
}

func (m ImportModel) Title() string { return "Import Statement" }

func (m ImportModel) ShortHelp() string {
	switch m.state {
	case importStateMapping:
		return "←/→: column | Enter: cycle field | c: confirm | Esc: cancel import"
	case importStateAccountPick:
		return "Enter: choose | Esc: dismiss"
	}

	return "Esc: back | Enter: select"
}

func (m ImportModel) Init() tea.Cmd {
	return m.filePicker.Init()
}

func (m ImportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return m.handleEsc()
		}

		switch m.state {
		case importStateMapping:
			return m.updateMapping(msg)
		case importStateAccountPick:
			return m.updateAccountPick(msg)
		}

	case tableLoadedMsg:
		if msg.err != nil {
			m.state = importStateResult
			m.err = msg.err
			m.status = fmt.Sprintf("Error: %v", msg.err)

			return m, nil
		}

		m.session.Begin(msg.table)
		m.colCursor = 0
		m.state = importStateMapping

		return m, nil

	case accountsLoadedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error loading accounts: %v", msg.err)
			m.state = importStateMapping

			return m, nil
		}

		m.accounts = msg.accounts
		m.accountForm = m.newAccountForm()
		m.state = importStateAccountPick

		return m, m.accountForm.Init()

	case importDoneMsg:
		if msg.err != nil {
			// The session stays in its import state; mapping and table
			// are retained for retry.
			if errors.Is(msg.err, importer.ErrNoAccountSelected) {
				m.status = "Please select an account to continue."
				m.state = importStateMapping

				return m, nil
			}

			m.status = fmt.Sprintf("Import failed: %v", msg.err)
			m.state = importStateMapping

			return m, nil
		}

		m.state = importStateResult
		m.err = nil
		m.status = fmt.Sprintf("Imported %d transactions (%d rows skipped).",
			len(msg.result.Created), msg.result.Skipped)

		return m, nil
	}

	if m.state == importStateFilePick {
		var cmd tea.Cmd
		m.filePicker, cmd = m.filePicker.Update(msg)

		if didSelect, path := m.filePicker.DidSelectFile(msg); didSelect {
			m.status = fmt.Sprintf("Reading %s...", path)
			return m, m.readFileCmd(path)
		}

		return m, cmd
	}

	if m.state == importStateAccountPick && m.accountForm != nil {
		form, cmd := m.accountForm.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.accountForm = f
		}

		if m.accountForm.State == huh.StateCompleted {
			m.state = importStateSubmitting
			return m, m.confirmCmd(m.accountPick)
		}

		return m, cmd
	}

	return m, nil
}

func (m ImportModel) handleEsc() (tea.Model, tea.Cmd) {
	switch m.state {
	case importStateMapping:
		m.session.Cancel()
		m.state = importStateFilePick
		m.status = ""

		return m, m.filePicker.Init()
	case importStateAccountPick:
		// Dismissing the picker aborts this confirm attempt but keeps
		// the uploaded table and mapping.
		m.selector.chosen = false
		m.state = importStateMapping
		m.status = "Please select an account to continue."

		return m, nil
	case importStateResult:
		m.state = importStateFilePick
		m.err = nil
		m.status = ""

		return m, m.filePicker.Init()
	}

	return m, Back
}

func (m ImportModel) updateMapping(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	header := m.session.Table().Header

	switch msg.String() {
	case "left":
		if m.colCursor > 0 {
			m.colCursor--
		}
	case "right":
		if m.colCursor < len(header)-1 {
			m.colCursor++
		}
	case "enter", " ":
		next := nextField(m.currentField(m.colCursor))
		if err := m.session.AssignColumn(m.colCursor, next); err != nil {
			m.status = fmt.Sprintf("Error: %v", err)
		}
	case "c":
		if !m.session.CanConfirm() {
			mapped, needed := m.session.Progress()
			m.status = fmt.Sprintf("Map the required columns first (%d / %d).", mapped, needed)

			return m, nil
		}

		m.status = "Loading accounts..."

		return m, m.loadAccountsCmd()
	}

	return m, nil
}

func (m ImportModel) updateAccountPick(_ tea.KeyMsg) (tea.Model, tea.Cmd) {
	return m, nil
}

func (m ImportModel) currentField(col int) importer.Field {
	f, ok := m.session.Field(col)
	if !ok {
		return importer.FieldSkip
	}

	return f
}

func nextField(f importer.Field) importer.Field {
	for i, candidate := range fieldCycle {
		if candidate == f {
			return fieldCycle[(i+1)%len(fieldCycle)]
		}
	}

	return importer.FieldSkip
}

func (m ImportModel) newAccountForm() *huh.Form {
	options := make([]huh.Option[string], len(m.accounts))
	for i, a := range m.accounts {
		options[i] = huh.NewOption(a.Name, a.ID.String())
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Import into account").
				Options(options...).
				Value(&m.accountPick),
		),
	)
}

func (m ImportModel) View() string {
	switch m.state {
	case importStateFilePick:
		return lipgloss.NewStyle().Padding(1).Render(
			"Select statement file to import:\n\n" + m.filePicker.View(),
		)
	case importStateMapping:
		return m.viewMapping()
	case importStateAccountPick:
		if m.accountForm != nil {
			return lipgloss.NewStyle().Padding(1).Render(m.accountForm.View())
		}

		return ""
	case importStateSubmitting:
		return lipgloss.NewStyle().Padding(2).Render("Importing...")
	case importStateResult:
		return m.viewResult()
	}

	return ""
}

func (m ImportModel) viewMapping() string {
	table := m.session.Table()

	var b strings.Builder

	mapped, needed := m.session.Progress()
	ready, skipped := m.session.Preview()

	fmt.Fprintf(&b, "Map columns to fields (%d / %d required)\n", mapped, needed)
	fmt.Fprintf(&b, "%d rows ready, %d will be skipped\n\n", len(ready), skipped)

	selected := lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))

	for col, name := range table.Header {
		assigned := string(m.currentField(col))

		line := fmt.Sprintf("%-24s -> %s", name, assigned)
		if col == m.colCursor {
			line = selected.Render(line)
		}

		b.WriteString(line + "\n")
	}

	if m.status != "" {
		b.WriteString("\n" + m.status)
	}

	return lipgloss.NewStyle().Padding(1).Render(b.String())
}

func (m ImportModel) viewResult() string {
	style := lipgloss.NewStyle().Padding(2)
	if m.err != nil {
		return style.Render(
			lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render(m.status) +
				"\n\n(Esc to go back)",
		)
	}

	return style.Render(
		lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Render(m.status) +
			"\n\n(Esc to go back)",
	)
}

// Messages

type tableLoadedMsg struct {
	table importer.RawTable
	err   error
}

type accountsLoadedMsg struct {
	accounts []*account.Account
	err      error
}

type importDoneMsg struct {
	result *importer.Result
	err    error
}

func (m ImportModel) readFileCmd(path string) tea.Cmd {
	return func() tea.Msg {
		f, err := os.Open(path)
		if err != nil {
			return tableLoadedMsg{err: err}
		}
		defer f.Close()

		table, err := importer.ReadTable(f)

		return tableLoadedMsg{table: table, err: err}
	}
}

func (m ImportModel) loadAccountsCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		accounts, err := m.accService.List(ctx)
		if err == nil && len(accounts) == 0 {
			err = fmt.Errorf("no accounts exist yet, create one first")
		}

		return accountsLoadedMsg{accounts: accounts, err: err}
	}
}

func (m ImportModel) confirmCmd(accountID string) tea.Cmd {
	return func() tea.Msg {
		id, err := uuid.Parse(accountID)
		if err != nil {
			return importDoneMsg{err: err}
		}

		m.selector.id = id
		m.selector.chosen = true

		ctx, cancel := DbCtx()
		defer cancel()

		result, err := m.session.Confirm(ctx)

		return importDoneMsg{result: result, err: err}
	}
}
