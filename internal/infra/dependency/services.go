// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"github.com/finance-tracker/ledger/config"
	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/application/usecase/budget"
	"github.com/finance-tracker/ledger/internal/application/usecase/dashboard"
	"github.com/finance-tracker/ledger/internal/application/usecase/ledgerchange"
	statementuc "github.com/finance-tracker/ledger/internal/application/usecase/statement"
	"github.com/finance-tracker/ledger/internal/application/usecase/transaction"
	"github.com/finance-tracker/ledger/internal/integration/cache"
	"github.com/finance-tracker/ledger/internal/integration/email"
	"github.com/finance-tracker/ledger/internal/integration/email/templates"
	"github.com/finance-tracker/ledger/internal/integration/events"
	"github.com/finance-tracker/ledger/internal/integration/ledgerapi"
	"github.com/finance-tracker/ledger/internal/integration/persistence"
	"github.com/finance-tracker/ledger/internal/integration/report"
	"github.com/finance-tracker/ledger/internal/integration/statement"
)

// maxStatementRows bounds the number of rows accepted from one statement file.
const maxStatementRows = 10000

// ErrNoDatabase is returned when the database ledger source is selected
// without a database connection.
var ErrNoDatabase = errors.New("database ledger source requires a database connection")

// Services holds the use cases shared by the API server and the CLI.
type Services struct {
	Loader *dashboard.SnapshotLoader

	GetDashboard    *dashboard.GetDashboardUseCase
	ExportDashboard *dashboard.ExportDashboardUseCase
	RefreshSnapshot *dashboard.RefreshSnapshotUseCase

	ListTransactions  *transaction.ListTransactionsUseCase
	CreateTransaction *transaction.CreateTransactionUseCase
	DeleteTransaction *transaction.DeleteTransactionUseCase
	ImportStatement   *statementuc.ImportStatementUseCase

	ListBudgetLimits  *budget.ListBudgetLimitsUseCase
	UpsertBudgetLimit *budget.UpsertBudgetLimitUseCase
	BudgetProgress    *budget.GetBudgetProgressUseCase

	CacheEnabled bool
	events       *events.Client
	closers      []func() error
}

// NewServices wires the ledger store, the optional Redis cache, event broker
// and email alerts, and every use case. db may be nil when the ledger is
// served by the remote API. Optional collaborators that fail to connect are
// replaced by no-ops.
func NewServices(ctx context.Context, cfg *config.Config, db *gorm.DB) (*Services, error) {
	repo, err := newLedgerRepository(cfg, db)
	if err != nil {
		return nil, err
	}

	s := &Services{}

	dashboardCache := cache.NewNoopDashboardCache()
	if cfg.Redis.Enabled {
		client, err := cache.NewRedisClient(ctx, cfg.Redis.URL, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			slog.Warn("Redis unavailable, dashboard cache disabled", "error", err)
		} else {
			dashboardCache = cache.NewRedisDashboardCache(client, cfg.Redis.TTL)
			s.CacheEnabled = true
			s.closers = append(s.closers, client.Close)
		}
	}

	publisher := events.NewNoopPublisher()
	if cfg.AMQP.Enabled {
		client, err := events.NewClient(cfg.AMQP.URL, cfg.AMQP.Exchange, cfg.AMQP.RoutingKey)
		if err != nil {
			slog.Warn("Message broker unavailable, ledger events disabled", "error", err)
		} else {
			publisher = client
			s.events = client
			s.closers = append(s.closers, client.Close)
		}
	}

	var notifier adapter.BudgetAlertNotifier
	if cfg.Email.ResendAPIKey != "" && cfg.Email.AlertRecipient != "" {
		renderer, err := templates.NewRenderer()
		if err != nil {
			return nil, fmt.Errorf("failed to load email templates: %w", err)
		}
		sender := email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
		notifier = email.NewBudgetAlertNotifier(sender, renderer)
	}
	alerter := budget.NewOverBudgetAlerter(notifier, cfg.Email.AlertRecipient, cfg.Email.AlertName)

	s.Loader = dashboard.NewSnapshotLoader(repo)
	changes := ledgerchange.NewNotifier(s.Loader, publisher)

	s.GetDashboard = dashboard.NewGetDashboardUseCase(s.Loader, dashboardCache)
	s.ExportDashboard = dashboard.NewExportDashboardUseCase(s.GetDashboard, report.MonthXLSX{})
	s.RefreshSnapshot = dashboard.NewRefreshSnapshotUseCase(s.Loader)

	s.ListTransactions = transaction.NewListTransactionsUseCase(s.Loader)
	s.CreateTransaction = transaction.NewCreateTransactionUseCase(repo, s.Loader, changes, alerter)
	s.DeleteTransaction = transaction.NewDeleteTransactionUseCase(repo, changes)
	s.ImportStatement = statementuc.NewImportStatementUseCase(statement.NewParser(maxStatementRows), repo, changes)

	s.ListBudgetLimits = budget.NewListBudgetLimitsUseCase(repo)
	s.UpsertBudgetLimit = budget.NewUpsertBudgetLimitUseCase(repo, changes)
	s.BudgetProgress = budget.NewGetBudgetProgressUseCase(s.Loader)

	slog.Info("Ledger services initialized",
		"ledger_source", cfg.Ledger.Source,
		"cache", s.CacheEnabled,
		"events", s.events != nil,
		"budget_alerts", alerter.Enabled(),
	)

	return s, nil
}

func newLedgerRepository(cfg *config.Config, db *gorm.DB) (adapter.LedgerRepository, error) {
	switch cfg.Ledger.Source {
	case config.LedgerSourceRemote:
		return ledgerapi.NewClient(cfg.Ledger.RemoteURL, cfg.Ledger.RemoteTimeout), nil
	case config.LedgerSourceDatabase:
		if db == nil {
			return nil, ErrNoDatabase
		}
		return persistence.NewLedgerRepository(db), nil
	default:
		return nil, fmt.Errorf("unknown ledger source %q", cfg.Ledger.Source)
	}
}

// WatchLedgerChanges invalidates the snapshot whenever any process announces a
// ledger change. Each instance consumes its own queue, so every one sees every event. It blocks until ctx is done and returns
// immediately when events are disabled.
func (s *Services) WatchLedgerChanges(ctx context.Context) error {
	if s.events == nil {
		return nil
	}
	return s.events.ConsumeLedgerChanged(ctx, func(ctx context.Context, event adapter.LedgerChangedEvent) error {
		slog.Debug("Ledger change received", "kind", event.Kind, "entity_id", event.EntityID)
		s.Loader.Invalidate()
		return nil
	})
}

// Close releases the optional collaborators.
func (s *Services) Close() error {
	var errs []error
	for _, closeFn := range s.closers {
		if err := closeFn(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
