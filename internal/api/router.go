package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/proyecto-awi/wallet-dashboard/docs"
	"github.com/proyecto-awi/wallet-dashboard/internal/api/handler"
	"github.com/proyecto-awi/wallet-dashboard/internal/api/middleware"
	"github.com/proyecto-awi/wallet-dashboard/internal/core/ports"
	"github.com/proyecto-awi/wallet-dashboard/internal/infrastructure/http/handlers"
)

// Dependencies is everything the router needs. main wires the concrete
// implementations; tests hand in stubs.
type Dependencies struct {
	Stores     ports.CredentialStoreFactory
	ProfileKey []byte
	// SecureCookies marks the browser-profile cookie Secure (HTTPS only).
	SecureCookies bool

	Validator ports.SessionValidator
	Auth      ports.AuthService
	Trade     ports.TradeService
	Wallet    ports.WalletBackend
	Crypto    ports.CryptoBackend
	Admin     ports.AdminBackend
	Prices    ports.PriceFeed
	AuditLog  ports.AuditReader

	Gate   middleware.GateOptions
	Checks map[string]handlers.Check
	Log    zerolog.Logger
	// Registerer receives the HTTP request metrics. Defaults to the
	// Prometheus default registerer; tests pass a fresh registry.
	Registerer prometheus.Registerer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(d.Log))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:                 "dashboard",
		Registerer:                d.Registerer,
		DoNotUseRequestPathFor404: true,
	}))

	// --- Operational endpoints (no browser profile) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(d.Checks)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Dependencies ---
	authHandler := handler.NewAuthHandler(d.Auth, d.Validator)
	walletHandler := handler.NewWalletHandler(d.Wallet)
	tradeHandler := handler.NewTradeHandler(d.Trade, d.Crypto, d.Prices)
	adminHandler := handler.NewAdminHandler(d.Admin, d.Crypto, d.AuditLog)

	gateOpts := d.Gate
	gateOpts.Log = d.Log.With().Str("component", "gate").Logger()
	requireSession := middleware.RequireSession(d.Validator, gateOpts)
	requireAdmin := middleware.RequireAdmin(d.Validator, gateOpts)

	v1 := e.Group("/api/v1", middleware.BrowserProfile(d.Stores, d.ProfileKey, d.SecureCookies))

	// --- Public routes ---
	v1.POST("/auth/register", authHandler.Register)
	v1.POST("/auth/login", authHandler.Login)
	v1.POST("/auth/logout", authHandler.Logout)
	v1.GET("/session", authHandler.Session)
	v1.GET("/cryptocurrencies", tradeHandler.Cryptocurrencies)
	v1.GET("/market/:symbol", tradeHandler.Market)
	v1.GET("/transactions/latest", walletHandler.Latest)

	// --- Signed-in routes ---
	// The gate is attached per route: a group-level gate on the shared
	// prefix would also catch unknown /api/v1 paths.
	v1.GET("/me", authHandler.Me, requireSession)
	v1.GET("/wallet/balance", walletHandler.Balance, requireSession)
	v1.GET("/wallet/transactions", walletHandler.Transactions, requireSession)
	v1.GET("/wallet/receive", walletHandler.Receive, requireSession)
	v1.POST("/wallet/send", walletHandler.Send, requireSession)
	v1.GET("/trade/quote", tradeHandler.Quote, requireSession)
	v1.POST("/trade/buy", tradeHandler.Buy, requireSession)
	v1.POST("/trade/sell", tradeHandler.Sell, requireSession)

	// --- Administrator routes ---
	admin := v1.Group("/admin", requireAdmin)
	admin.GET("/users", adminHandler.Users)
	admin.GET("/users/blocked", adminHandler.BlockedUsers)
	admin.GET("/users/:id", adminHandler.User)
	admin.POST("/users/block", adminHandler.BlockUser)
	admin.POST("/users/unblock", adminHandler.UnblockUser)
	admin.GET("/wallets", adminHandler.Wallets)
	admin.GET("/wallets/:id", adminHandler.Wallet)
	admin.POST("/wallets/freeze", adminHandler.FreezeWallet)
	admin.POST("/wallets/unfreeze", adminHandler.UnfreezeWallet)
	admin.POST("/cryptocurrencies", adminHandler.CreateCryptocurrency)
	admin.DELETE("/cryptocurrencies/:id", adminHandler.DeleteCryptocurrency)
	admin.GET("/transactions", adminHandler.Transactions)
	admin.GET("/audit", adminHandler.Audit)

	return e
}

// requestLogger writes one zerolog line per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			switch {
			case v.Status >= http.StatusInternalServerError:
				ev = log.Error().Err(v.Error)
			case v.Status >= http.StatusBadRequest:
				ev = log.Warn()
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
