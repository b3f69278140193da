package dependency

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finance-tracker/ledger/config"
	"github.com/finance-tracker/ledger/internal/infra/db"
	"github.com/finance-tracker/ledger/internal/integration/persistence/model"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Environment:    "test",
			MaxUploadBytes: 1 << 20,
			ImportRateMax:  5,
			ImportRateWin:  time.Minute,
		},
		Ledger: config.LedgerConfig{
			Source:          config.LedgerSourceDatabase,
			DefaultPageSize: 15,
		},
		JWT: config.JWTConfig{
			Secret:            "test-secret",
			AccessTokenExpiry: time.Hour,
		},
	}
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	database, err := db.NewSQLiteConnection(&config.DatabaseConfig{
		Driver: config.DriverSQLite,
		URL:    "file:" + uuid.NewString() + "?mode=memory&cache=shared",
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })
	if err := database.AutoMigrate(model.All()...); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return database.DB()
}

func TestNewServices_LedgerSource(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		withDB  bool
		wantErr error
		anyErr  bool
	}{
		{name: "database", source: config.LedgerSourceDatabase, withDB: true},
		{name: "database without connection", source: config.LedgerSourceDatabase, wantErr: ErrNoDatabase},
		{name: "remote", source: config.LedgerSourceRemote},
		{name: "unknown", source: "spreadsheet", anyErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			cfg.Ledger.Source = tt.source
			cfg.Ledger.RemoteURL = "http://ledger.invalid"

			var gormDB *gorm.DB
			if tt.withDB {
				gormDB = openTestDB(t)
			}

			services, err := NewServices(context.Background(), cfg, gormDB)
			switch {
			case tt.wantErr != nil:
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("NewServices() error = %v, want %v", err, tt.wantErr)
				}
			case tt.anyErr:
				if err == nil {
					t.Fatal("NewServices() error = nil, want error")
				}
			default:
				if err != nil {
					t.Fatalf("NewServices() error = %v", err)
				}
				if services.GetDashboard == nil || services.ImportStatement == nil || services.CacheEnabled {
					t.Errorf("services = %+v", services)
				}
				if err := services.WatchLedgerChanges(context.Background()); err != nil {
					t.Errorf("WatchLedgerChanges() without broker error = %v", err)
				}
				if err := services.Close(); err != nil {
					t.Errorf("Close() error = %v", err)
				}
			}
		})
	}
}

func TestNewServices_RedisCache(t *testing.T) {
	tests := []struct {
		name      string
		url       func(t *testing.T) string
		wantCache bool
	}{
		{
			name: "reachable redis",
			url: func(t *testing.T) string {
				return "redis://" + miniredis.RunT(t).Addr()
			},
			wantCache: true,
		},
		{
			name:      "unreachable redis degrades to no cache",
			url:       func(t *testing.T) string { return "redis://127.0.0.1:1" },
			wantCache: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			cfg.Redis = config.RedisConfig{Enabled: true, URL: tt.url(t), TTL: time.Minute}

			services, err := NewServices(context.Background(), cfg, openTestDB(t))
			if err != nil {
				t.Fatalf("NewServices() error = %v", err)
			}
			defer services.Close()

			if services.CacheEnabled != tt.wantCache {
				t.Errorf("CacheEnabled = %v, want %v", services.CacheEnabled, tt.wantCache)
			}
		})
	}
}

func TestNewInjector_Routes(t *testing.T) {
	tests := []struct {
		name        string
		jwtRequired bool
		wantStatus  int
	}{
		{name: "open api", jwtRequired: false, wantStatus: http.StatusOK},
		{name: "jwt required", jwtRequired: true, wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			cfg.JWT.Required = tt.jwtRequired

			services, err := NewServices(context.Background(), cfg, openTestDB(t))
			if err != nil {
				t.Fatalf("NewServices() error = %v", err)
			}
			engine := NewInjector(cfg, services, func() bool { return true }).Router.Setup(cfg.Server.Environment)

			health := httptest.NewRecorder()
			engine.ServeHTTP(health, httptest.NewRequest(http.MethodGet, "/health", nil))
			if health.Code != http.StatusOK || !strings.Contains(health.Body.String(), `"database":"connected"`) {
				t.Errorf("health = %d %s", health.Code, health.Body.String())
			}

			w := httptest.NewRecorder()
			engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/dashboard?month=2026-02", nil))
			if w.Code != tt.wantStatus {
				t.Errorf("dashboard status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}
