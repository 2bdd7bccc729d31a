package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/fkhayef/budgetbook/docs"
	"github.com/fkhayef/budgetbook/internal/budget"
	"github.com/fkhayef/budgetbook/internal/config"
	"github.com/fkhayef/budgetbook/internal/database"
	"github.com/fkhayef/budgetbook/internal/expense"
	expensesplit "github.com/fkhayef/budgetbook/internal/expense/split"
	"github.com/fkhayef/budgetbook/internal/group"
	"github.com/fkhayef/budgetbook/internal/report"
	"github.com/fkhayef/budgetbook/internal/settlement"
	"github.com/fkhayef/budgetbook/internal/snapshot"
	"github.com/fkhayef/budgetbook/internal/transaction"
	"github.com/fkhayef/budgetbook/pkg/logging"
	mw "github.com/fkhayef/budgetbook/pkg/middleware"
)

// @title        BudgetBook API
// @version      1.0
// @description  Personal and shared budget tracking with group expense splitting.
// @BasePath     /api/v1
func main() {
	logging.Setup()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	// Load configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	// Initialize database connection
	db, err := database.NewPostgresConnection(cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	slog.Info("connected to database")

	if err := database.RunMigrations(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Split Strategy Factory (Factory Pattern)
	splitFactory := expensesplit.NewFactory()

	// Transaction feature
	transactionRepo := transaction.NewRepository(db)
	transactionService := transaction.NewService(transactionRepo)
	transactionHandler := transaction.NewHandler(transactionService)

	// Budget feature (spent derived from transactions)
	budgetRepo := budget.NewRepository(db)
	budgetService := budget.NewService(budgetRepo, transactionRepo)
	budgetHandler := budget.NewHandler(budgetService)

	// Expense feature (with split factory injected)
	groupRepo := group.NewRepository(db)
	expenseRepo := expense.NewRepository(db)
	expenseService := expense.NewService(expenseRepo, groupRepo, splitFactory)
	expenseHandler := expense.NewHandler(expenseService)

	// Settlement feature
	settlementRepo := settlement.NewRepository(db)
	settlementService := settlement.NewService(settlementRepo, groupRepo)
	settlementHandler := settlement.NewHandler(settlementService)

	// Group feature (balances fold over expenses and settlements)
	groupService := group.NewService(groupRepo, expenseRepo, settlementRepo)
	groupHandler := group.NewHandler(groupService)

	// Report feature
	reportService := report.NewService(transactionRepo)
	reportHandler := report.NewHandler(reportService)

	// Snapshot feature
	snapshotRepo := snapshot.NewRepository(db)
	snapshotService := snapshot.NewService(snapshotRepo)
	snapshotHandler := snapshot.NewHandler(snapshotService)

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(mw.RequestLogger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Get("/swagger/*", httpSwagger.Handler())

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		// Mount feature routers
		r.Mount("/transactions", transactionHandler.Routes())
		r.Mount("/budgets", budgetHandler.Routes())
		r.Mount("/groups", groupHandler.Routes())
		r.Mount("/expenses", expenseHandler.Routes())
		r.Mount("/settlements", settlementHandler.Routes())
		r.Mount("/reports", reportHandler.Routes())
		r.Mount("/snapshot", snapshotHandler.Routes())
	})

	// Start server
	slog.Info("server starting", "port", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
