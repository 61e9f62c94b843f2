package main

import (
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/dmarques/centavo/cmd/tui/internal/view"
	"github.com/dmarques/centavo/internal/account"
	accountStore "github.com/dmarques/centavo/internal/account/store"
	"github.com/dmarques/centavo/internal/config"
	"github.com/dmarques/centavo/internal/database"
	"github.com/dmarques/centavo/internal/importer"
	"github.com/dmarques/centavo/internal/transaction"
	txStore "github.com/dmarques/centavo/internal/transaction/store"
)

type model struct {
	txService  *transaction.Service
	accService *account.Service

	currentView View

	importView       view.ImportModel
	transactionsView view.TransactionsModel
	accountsView     view.AccountsModel
}

type View int

const (
	ViewMenu         View = 0
	ViewImport       View = 1
	ViewTransactions View = 2
	ViewAccounts     View = 3
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	txSvc := transaction.NewService(txStore.New(db))
	accSvc := account.NewService(accountStore.New(db))

	selector := view.NewPromptSelector()
	session := importer.NewSession(txSvc, selector)

	return model{
		txService:        txSvc,
		accService:       accSvc,
		currentView:      ViewMenu,
		importView:       view.NewImportModel(session, selector, accSvc),
		transactionsView: view.NewTransactionsModel(txSvc),
		accountsView:     view.NewAccountsModel(accSvc),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewImport
				return m, m.importView.Init()
			case "2":
				m.currentView = ViewTransactions
				m.transactionsView = view.NewTransactionsModel(m.txService)

				return m, m.transactionsView.Init()
			case "3":
				m.currentView = ViewAccounts
				m.accountsView = view.NewAccountsModel(m.accService)

				return m, m.accountsView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewImport:
		var newModel tea.Model
		newModel, cmd = m.importView.Update(msg)
		m.importView = newModel.(view.ImportModel)
	case ViewTransactions:
		var newModel tea.Model
		newModel, cmd = m.transactionsView.Update(msg)
		m.transactionsView = newModel.(view.TransactionsModel)
	case ViewAccounts:
		var newModel tea.Model
		newModel, cmd = m.accountsView.Update(msg)
		m.accountsView = newModel.(view.AccountsModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"Centavo TUI\n\n" +
				"1. Import Statement\n" +
				"2. Transactions\n" +
				"3. Accounts\n\n" +
				"q. Quit",
		)
	case ViewImport:
		return m.importView.View()
	case ViewTransactions:
		return m.transactionsView.View()
	case ViewAccounts:
		return m.accountsView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
