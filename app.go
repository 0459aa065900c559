// Package foodnow is the entry point for the FoodNow client library. It
// wires configuration, the session store, the API client, the toast
// queue and the restaurant dashboard into one App, and re-exports the
// types most applications need so a single import suffices:
//   - github.com/foodnow/foodnow-go/api - raw endpoint groups
//   - github.com/foodnow/foodnow-go/dashboard - owner live state
//   - github.com/foodnow/foodnow-go/tracking - order countdown
//   - github.com/foodnow/foodnow-go/search - customer list filtering
package foodnow

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/foodnow/foodnow-go/api"
	"github.com/foodnow/foodnow-go/core"
	"github.com/foodnow/foodnow-go/dashboard"
	"github.com/foodnow/foodnow-go/notify"
	"github.com/foodnow/foodnow-go/search"
	"github.com/foodnow/foodnow-go/session"
	"github.com/foodnow/foodnow-go/telemetry"
	"github.com/foodnow/foodnow-go/tracking"
)

// Re-export the types applications touch most
type (
	Config      = core.Config
	Option      = core.Option
	Logger      = core.Logger
	Order       = core.Order
	OrderStatus = core.OrderStatus
	MenuItem    = core.MenuItem
	Restaurant  = core.Restaurant
	Toast       = notify.Toast
	Claims      = session.Claims
	Query       = search.Query
	Match       = search.Match
)

// Re-export constructors and configuration options
var (
	NewConfig     = core.NewConfig
	DefaultConfig = core.DefaultConfig
	LoadEnvFile   = core.LoadEnvFile

	WithBaseURL             = core.WithBaseURL
	WithHTTPTimeout         = core.WithHTTPTimeout
	WithPollInterval        = core.WithPollInterval
	WithDeliverySimDuration = core.WithDeliverySimDuration
	WithToastDuration       = core.WithToastDuration
	WithSessionRedis        = core.WithSessionRedis
	WithLogLevel            = core.WithLogLevel
	WithTelemetry           = core.WithTelemetry
	WithConfigFile          = core.WithConfigFile

	FilterRestaurants = search.Filter
	FilterAndSort     = search.FilterAndSort
)

// App is the wired client stack. Build one per signed-in user.
type App struct {
	Config *core.Config
	Logger core.Logger

	Tokens  session.TokenStore
	Client  *api.Client
	Toasts  *notify.Service
	Store   *dashboard.Store
	Poller  *dashboard.Poller
	Actions *dashboard.Controller

	tracing *telemetry.Provider
}

// AppOption customizes the wiring in New
type AppOption func(*App)

// WithLogger replaces the default JSON logger
func WithLogger(logger core.Logger) AppOption {
	return func(a *App) {
		if logger != nil {
			a.Logger = logger
		}
	}
}

// WithTokenStore replaces the session store chosen from configuration
func WithTokenStore(store session.TokenStore) AppOption {
	return func(a *App) {
		if store != nil {
			a.Tokens = store
		}
	}
}

// New builds the client stack from a Config. A nil cfg loads
// configuration from defaults and the environment.
func New(cfg *core.Config, opts ...AppOption) (*App, error) {
	if cfg == nil {
		loaded, err := core.NewConfig()
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	app := &App{
		Config: cfg,
		Logger: core.NewJSONLoggerWithOptions(os.Stderr, core.ParseLogLevel(cfg.Logging.Level)),
		Toasts: notify.NewService(notify.WithDefaultDuration(cfg.ToastDuration)),
		Store:  dashboard.NewStore(),
	}
	for _, opt := range opts {
		opt(app)
	}

	if app.Tokens == nil {
		if cfg.Session.RedisURL != "" {
			store, err := session.NewRedisTokenStore(cfg.Session.RedisURL, cfg.Session.TTL)
			if err != nil {
				return nil, fmt.Errorf("session store: %w", err)
			}
			app.Tokens = store
		} else {
			app.Tokens = session.NewMemoryTokenStore()
		}
	}

	transport := http.DefaultTransport
	if cfg.Telemetry.Enabled {
		provider, err := telemetry.NewProvider(cfg.Telemetry.ServiceName, cfg.Telemetry.Endpoint)
		if err != nil {
			return nil, fmt.Errorf("telemetry: %w", err)
		}
		app.tracing = provider
		transport = telemetry.NewTransport(transport)
	}

	app.Client = api.NewClient(cfg, app.Tokens,
		api.WithLogger(app.Logger),
		api.WithHTTPClient(&http.Client{
			Timeout:   cfg.HTTPTimeout,
			Transport: transport,
		}),
	)

	app.Poller = dashboard.NewPoller(app.Client.Restaurant(), app.Store, app.Toasts,
		dashboard.WithInterval(cfg.PollInterval),
		dashboard.WithPollerLogger(app.Logger),
	)
	app.Actions = dashboard.NewController(app.Store, app.Client.Restaurant(), app.Client.Orders(), app.Toasts,
		dashboard.WithControllerLogger(app.Logger),
	)
	return app, nil
}

// Login authenticates, persists the access token and returns the
// decoded claims so the caller can route by role.
func (a *App) Login(ctx context.Context, email, password string) (*session.Claims, error) {
	resp, err := a.Client.Auth().Login(ctx, api.Credentials{Email: email, Password: password})
	if err != nil {
		a.Toasts.Error(core.UserMessageOf(err, "Login failed."))
		return nil, err
	}
	if err := a.Tokens.Save(ctx, resp.AccessToken); err != nil {
		return nil, fmt.Errorf("saving session: %w", err)
	}
	claims, err := session.DecodeClaims(resp.AccessToken)
	if err != nil {
		return nil, err
	}
	a.Logger.Info("User logged in", map[string]interface{}{
		"subject": claims.Subject,
		"role":    string(claims.Role),
	})
	return claims, nil
}

// Logout drops the stored session
func (a *App) Logout(ctx context.Context) error {
	return a.Tokens.Clear(ctx)
}

// TrackOrder creates a tracker for one order, wired to this App's API
// client and toast queue. The caller owns Start and Stop.
func (a *App) TrackOrder(orderID int) *tracking.Tracker {
	return tracking.NewTracker(a.Client.Orders(), a.Toasts, orderID,
		tracking.WithLogger(a.Logger),
		tracking.WithSimDuration(a.Config.DeliverySimDuration),
	)
}

// Shutdown stops background work and flushes telemetry
func (a *App) Shutdown(ctx context.Context) error {
	a.Poller.Stop()
	a.Toasts.Clear()
	if closer, ok := a.Tokens.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			a.Logger.Warn("Closing session store failed", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}
	if a.tracing != nil {
		return a.tracing.Shutdown(ctx)
	}
	return nil
}
