package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/dmarques/centavo/internal/account"
	accountStore "github.com/dmarques/centavo/internal/account/store"
	"github.com/dmarques/centavo/internal/category"
	categoryStore "github.com/dmarques/centavo/internal/category/store"
	"github.com/dmarques/centavo/internal/config"
	"github.com/dmarques/centavo/internal/database"
	centavoHttp "github.com/dmarques/centavo/internal/http"
	accountHandler "github.com/dmarques/centavo/internal/http/account"
	categoryHandler "github.com/dmarques/centavo/internal/http/category"
	importHandler "github.com/dmarques/centavo/internal/http/importcsv"
	summaryHandler "github.com/dmarques/centavo/internal/http/summary"
	txHandler "github.com/dmarques/centavo/internal/http/transaction"
	"github.com/dmarques/centavo/internal/summary"
	summaryStore "github.com/dmarques/centavo/internal/summary/store"
	"github.com/dmarques/centavo/internal/transaction"
	txStore "github.com/dmarques/centavo/internal/transaction/store"
)

func main() {
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
	defer db.Close()

	var (
		accountService     = account.NewService(accountStore.New(db))
		categoryService    = category.NewService(categoryStore.New(db))
		transactionService = transaction.NewService(txStore.New(db))
		summaryService     = summary.NewService(summaryStore.New(db))
	)

	var (
		accountH  = accountHandler.NewHandler(accountService)
		categoryH = categoryHandler.NewHandler(categoryService)
		txH       = txHandler.NewHandler(transactionService)
		importH   = importHandler.NewHandler(transactionService)
		summaryH  = summaryHandler.NewHandler(summaryService)
	)

	router := centavoHttp.New(accountH, categoryH, txH, importH, summaryH, cfg.Server.AllowedOrigins)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
