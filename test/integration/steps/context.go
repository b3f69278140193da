// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/ledger/config"
	"github.com/finance-tracker/ledger/internal/infra/dependency"
	"github.com/finance-tracker/ledger/internal/integration/persistence/model"
	"github.com/finance-tracker/ledger/test/integration/mock"
)

// suite holds the resources shared by every scenario.
type suite struct {
	db       *mock.Db
	redis    *miniredis.Miniredis
	services *dependency.Services
	server   *httptest.Server
}

var shared suite

// TestContext holds the state of one scenario.
type TestContext struct {
	client  *http.Client
	headers map[string]string

	status       int
	header       http.Header
	responseBody []byte
	body         any

	transactionID string
}

// InitializeTestSuite starts the ledger API on an in-memory database with a
// miniredis dashboard cache before any scenario runs.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
		_ = os.Setenv("ENV", "test")

		shared.db = mock.NewDb(model.All()...)
		shared.redis = mock.NewRedis()

		cfg := config.Load()
		cfg.Server.Environment = "test"
		cfg.Ledger.Source = config.LedgerSourceDatabase
		cfg.Redis.Enabled = true
		cfg.Redis.URL = mock.RedisURL(shared.redis)
		cfg.AMQP.Enabled = false
		cfg.JWT.Required = false
		cfg.Email.ResendAPIKey = ""

		services, err := dependency.NewServices(context.Background(), cfg, shared.db.DbConn)
		if err != nil {
			panic(fmt.Sprintf("failed to build services: %v", err))
		}
		shared.services = services

		injector := dependency.NewInjector(cfg, services, func() bool {
			return shared.db != nil && shared.db.DbConn != nil
		})
		shared.server = httptest.NewServer(injector.Router.Setup(cfg.Server.Environment))
	})

	ctx.AfterSuite(func() {
		if shared.server != nil {
			shared.server.Close()
		}
		if shared.services != nil {
			_ = shared.services.Close()
		}
		if shared.redis != nil {
			shared.redis.Close()
		}
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := &TestContext{client: &http.Client{Timeout: 10 * time.Second}}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, tc.reset()
	})

	// Background steps
	ctx.Given(`^the ledger API is running$`, tc.theLedgerAPIIsRunning)

	// Seeding steps
	ctx.Given(`^the ledger contains the transactions:$`, tc.theLedgerContainsTheTransactions)
	ctx.Given(`^the budget limit for "([^"]*)" is "([^"]*)"$`, tc.theBudgetLimitForIs)

	// Header steps
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, tc.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, tc.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, tc.iSendARequestToWithBody)
	ctx.When(`^I upload the statement "([^"]*)" with content:$`, tc.iUploadTheStatementWithContent)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, tc.theResponseStatusShouldBe)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, tc.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should have (\d+) items$`, tc.theResponseFieldShouldHaveItems)
	ctx.Then(`^the response header "([^"]*)" should contain "([^"]*)"$`, tc.theResponseHeaderShouldContain)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, tc.theDbShouldContainObjectsInTheTable)
}

func (t *TestContext) reset() error {
	t.headers = make(map[string]string)
	t.status = 0
	t.header = nil
	t.responseBody = nil
	t.body = nil
	t.transactionID = ""

	if err := shared.db.ClearDB(); err != nil {
		return err
	}
	if err := mock.ClearRedis(shared.redis); err != nil {
		return err
	}
	shared.services.Loader.Invalidate()
	return nil
}

func (t *TestContext) theLedgerAPIIsRunning() error {
	resp, err := t.client.Get(shared.server.URL + "/health")
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check returned %d", resp.StatusCode)
	}
	return nil
}
