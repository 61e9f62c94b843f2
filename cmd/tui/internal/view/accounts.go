package view

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/dmarques/centavo/internal/account"
)

type accountsState int

const (
	accountsStateBrowse accountsState = iota
	accountsStateCreate
)

type AccountsModel struct {
	CommonModel
	accService *account.Service

	state    accountsState
	accounts []*account.Account
	cursor   int
	form     *huh.Form
	formName string

	status string
	err    error
}

func NewAccountsModel(accSvc *account.Service) AccountsModel {
	return AccountsModel{accService: accSvc}
}

func (m AccountsModel) Title() string { return "Accounts" }

func (m AccountsModel) ShortHelp() string {
	if m.state == accountsStateCreate {
		return "Enter: save | Esc: cancel"
	}

	return "Esc: back | n: new account | r: refresh"
}

func (m AccountsModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m AccountsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case accountsListMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.accounts = msg.accounts
		m.err = nil

		return m, nil

	case accountSavedMsg:
		m.state = accountsStateBrowse
		m.form = nil

		if msg.err != nil {
			m.status = fmt.Sprintf("Error saving: %v", msg.err)
			return m, nil
		}

		m.status = ""

		return m, m.loadCmd()
	}

	if m.state == accountsStateCreate && m.form != nil {
		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}

		if m.form.State == huh.StateCompleted {
			return m, m.saveCmd(m.formName)
		}

		if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyEsc {
			m.state = accountsStateBrowse
			m.form = nil

			return m, nil
		}

		return m, cmd
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			return m, Back
		case "n":
			m.formName = ""
			m.form = huh.NewForm(
				huh.NewGroup(
					huh.NewInput().
						Title("Account name").
						Value(&m.formName),
				),
			)
			m.state = accountsStateCreate

			return m, m.form.Init()
		case "r":
			return m, m.loadCmd()
		case "up":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down":
			if m.cursor < len(m.accounts)-1 {
				m.cursor++
			}
		}
	}

	return m, nil
}

func (m AccountsModel) View() string {
	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v\n\n(Esc to go back)", m.err))
	}

	if m.state == accountsStateCreate && m.form != nil {
		return lipgloss.NewStyle().Padding(1).Render(m.form.View())
	}

	var b strings.Builder

	b.WriteString("Accounts:\n\n")

	if len(m.accounts) == 0 {
		b.WriteString("  (none yet, press n to create one)\n")
	}

	for i, a := range m.accounts {
		cursor := " "
		if i == m.cursor {
			cursor = ">"
		}

		fmt.Fprintf(&b, "%s %s\n", cursor, a.Name)
	}

	if m.status != "" {
		b.WriteString("\n" + m.status)
	}

	return lipgloss.NewStyle().Padding(1).Render(b.String())
}

type accountsListMsg struct {
	accounts []*account.Account
	err      error
}

type accountSavedMsg struct {
	err error
}

func (m AccountsModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		accounts, err := m.accService.List(ctx)

		return accountsListMsg{accounts: accounts, err: err}
	}
}

func (m AccountsModel) saveCmd(name string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		_, err := m.accService.Create(ctx, name)

		return accountSavedMsg{err: err}
	}
}
