// Command ledgerctl prints ledger dashboards and budgets, imports bank
// statements, exports month reports and issues API access tokens.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kingpin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/finance-tracker/ledger/config"
	"github.com/finance-tracker/ledger/internal/application/usecase/budget"
	"github.com/finance-tracker/ledger/internal/application/usecase/dashboard"
	statementuc "github.com/finance-tracker/ledger/internal/application/usecase/statement"
	"github.com/finance-tracker/ledger/internal/application/usecase/transaction"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	"github.com/finance-tracker/ledger/internal/domain/ledger"
	"github.com/finance-tracker/ledger/internal/infra/db"
	"github.com/finance-tracker/ledger/internal/infra/dependency"
	"github.com/finance-tracker/ledger/internal/integration/persistence/model"
)

func main() {
	_ = godotenv.Load()

	app := kingpin.New("ledgerctl", "Ledger dashboards, budgets and statement imports.")
	verbose := app.Flag("verbose", "Log debug output to stderr.").Short('v').Bool()

	cmdSummary := app.Command("summary", "Show the month dashboard.")
	summaryMonth := cmdSummary.Flag("month", "Month as YYYY-MM or 'all' (default: current month).").String()

	cmdBudgets := app.Command("budgets", "Show budget progress for a month.")
	budgetsMonth := cmdBudgets.Flag("month", "Month as YYYY-MM (default: current month).").String()

	cmdList := app.Command("list", "List transactions.")
	listMonth := cmdList.Flag("month", "Month as YYYY-MM or 'all'.").Default("all").String()
	listCategory := cmdList.Flag("category", "Only show this category.").String()
	listOldest := cmdList.Flag("oldest", "Oldest transactions first.").Bool()
	listPage := cmdList.Flag("page", "Page number.").Default("1").Int()

	cmdImport := app.Command("import", "Import a CSV or XLSX bank statement.")
	importFile := cmdImport.Arg("file", "Statement file.").Required().ExistingFile()

	cmdExport := app.Command("export", "Export the month dashboard to an XLSX workbook.")
	exportMonth := cmdExport.Flag("month", "Month as YYYY-MM or 'all' (default: current month).").String()
	exportOut := cmdExport.Flag("out", "Output file (default: the report's own name).").String()

	cmdToken := app.Command("token", "Issue an access token for the HTTP API.")
	tokenSubject := cmdToken.Flag("subject", "Token subject.").Required().String()
	tokenEmail := cmdToken.Flag("email", "Email claim.").String()
	tokenExpiry := cmdToken.Flag("expiry", "Token lifetime (default: JWT_EXPIRY).").Duration()

	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg := config.Load()
	app.FatalIfError(cfg.Validate(), "invalid configuration")

	ctx := context.Background()
	out := os.Stdout

	if command == cmdToken.FullCommand() {
		app.FatalIfError(issueToken(ctx, out, cfg.JWT, *tokenSubject, *tokenEmail, *tokenExpiry), "token")
		return
	}

	services, closeAll, err := open(ctx, cfg)
	app.FatalIfError(err, "failed to initialize")
	defer closeAll()

	now := time.Now()

	switch command {
	case cmdSummary.FullCommand():
		month, err := monthFlag(*summaryMonth, ledger.MonthOf(now))
		app.FatalIfError(err, "summary")
		res, err := services.GetDashboard.Execute(ctx, dashboard.GetDashboardInput{View: entity.ViewConfig{Month: month}})
		app.FatalIfError(err, "summary")
		printDashboard(out, res.Dashboard)

	case cmdBudgets.FullCommand():
		month, err := monthFlag(*budgetsMonth, ledger.MonthOf(now))
		app.FatalIfError(err, "budgets")
		res, err := services.BudgetProgress.Execute(ctx, budget.GetBudgetProgressInput{Month: month})
		app.FatalIfError(err, "budgets")
		printBudgets(out, res.Month, res.Progress)

	case cmdList.FullCommand():
		month, err := monthFlag(*listMonth, entity.AllTime)
		app.FatalIfError(err, "list")
		view := entity.ViewConfig{Month: month, Category: *listCategory, Page: *listPage, PageSize: cfg.Ledger.DefaultPageSize}
		if *listOldest {
			view.Order = entity.SortOrderOldest
		}
		res, err := services.ListTransactions.Execute(ctx, transaction.ListTransactionsInput{View: view})
		app.FatalIfError(err, "list")
		printPage(out, res.View, res.Page)

	case cmdImport.FullCommand():
		payload, err := os.ReadFile(*importFile)
		app.FatalIfError(err, "import")
		res, err := services.ImportStatement.Execute(ctx, statementuc.ImportStatementInput{FileName: *importFile, Payload: payload})
		app.FatalIfError(err, "import")
		fmt.Fprintln(out, res.Message)

	case cmdExport.FullCommand():
		month, err := monthFlag(*exportMonth, ledger.MonthOf(now))
		app.FatalIfError(err, "export")
		res, err := services.ExportDashboard.Execute(ctx, entity.ViewConfig{Month: month})
		app.FatalIfError(err, "export")
		path := *exportOut
		if path == "" {
			path = res.FileName
		}
		app.FatalIfError(os.WriteFile(path, res.Content, 0o644), "export")
		fmt.Fprintf(out, "Wrote %s (%d bytes)\n", path, len(res.Content))
	}
}

// open connects the configured ledger store and wires the use cases.
func open(ctx context.Context, cfg *config.Config) (*dependency.Services, func(), error) {
	var (
		gormDB   *gorm.DB
		database *db.Database
	)
	if cfg.Ledger.Source == config.LedgerSourceDatabase {
		var err error
		database, err = db.NewConnection(&cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		if err := database.AutoMigrate(model.All()...); err != nil {
			_ = database.Close()
			return nil, nil, fmt.Errorf("failed to run database migrations: %w", err)
		}
		gormDB = database.DB()
	}

	services, err := dependency.NewServices(ctx, cfg, gormDB)
	if err != nil {
		if database != nil {
			_ = database.Close()
		}
		return nil, nil, err
	}

	return services, func() {
		if err := services.Close(); err != nil {
			slog.Warn("Failed to close services", "error", err)
		}
		if database != nil {
			if err := database.Close(); err != nil {
				slog.Warn("Failed to close database", "error", err)
			}
		}
	}, nil
}

// monthFlag parses a --month value; empty selects fallback.
func monthFlag(raw string, fallback entity.Month) (entity.Month, error) {
	if raw == "" {
		return fallback, nil
	}
	month, ok := ledger.ParseMonth(raw)
	if !ok {
		return entity.Month{}, fmt.Errorf("invalid month %q, expected YYYY-MM or all", raw)
	}
	return month, nil
}
