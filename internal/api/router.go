package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/luckyroad/casinohub/internal/api/handler"
	apimiddleware "github.com/luckyroad/casinohub/internal/api/middleware"
	"github.com/luckyroad/casinohub/internal/middleware"
	"github.com/luckyroad/casinohub/internal/services/auth"
	"github.com/luckyroad/casinohub/internal/services/captcha"
	"github.com/luckyroad/casinohub/internal/services/provider"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger          *slog.Logger
	AuthService     *auth.Service
	CaptchaService  *captcha.Service
	ProviderService *provider.Service
	AllowedOrigins  []string
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	authHandler := handler.NewAuthHandler(cfg.AuthService, cfg.CaptchaService)
	gameHandler := handler.NewGameAPIHandler(cfg.ProviderService)

	authMiddleware := apimiddleware.Auth(cfg.AuthService)
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := apimiddleware.Recovery(cfg.Logger)
	corsMiddleware := middleware.CORS(cfg.AllowedOrigins)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)
	api.Use(corsMiddleware)

	// Auth routes
	authRoutes := api.PathPrefix("/auth").Subrouter()
	authRoutes.HandleFunc("/captcha", authHandler.Captcha).Methods(http.MethodPost)
	authRoutes.HandleFunc("/login", authHandler.Login).Methods(http.MethodPost)
	authRoutes.HandleFunc("/register", authHandler.Register).Methods(http.MethodPost)
	authRoutes.HandleFunc("/reset_pass", authHandler.ResetPass).Methods(http.MethodPost)

	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(authMiddleware)
	authProtected.HandleFunc("/me", authHandler.Me).Methods(http.MethodPost)
	authProtected.HandleFunc("/logout", authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/info/update", authHandler.UpdateInfo).Methods(http.MethodPost)

	// Game provider routes. Catalog reads are public; launch and wallet
	// operations require auth.
	game := api.PathPrefix("/game-api").Subrouter()
	game.HandleFunc("/vendors/list", gameHandler.Vendors).Methods(http.MethodGet)
	game.HandleFunc("/games/list", gameHandler.Games).Methods(http.MethodPost)
	game.HandleFunc("/games/mini/list", gameHandler.MiniGames).Methods(http.MethodGet)
	game.HandleFunc("/game/detail", gameHandler.GameDetail).Methods(http.MethodPost)
	game.HandleFunc("/status", gameHandler.Status).Methods(http.MethodGet)

	gameProtected := api.PathPrefix("/game-api").Subrouter()
	gameProtected.Use(authMiddleware)
	gameProtected.HandleFunc("/game/launch-url", gameHandler.LaunchURL).Methods(http.MethodPost)
	gameProtected.HandleFunc("/user/create", gameHandler.UserCreate).Methods(http.MethodPost)
	gameProtected.HandleFunc("/user/balance", gameHandler.UserBalance).Methods(http.MethodPost)
	gameProtected.HandleFunc("/user/deposit", gameHandler.Deposit).Methods(http.MethodPost)
	gameProtected.HandleFunc("/user/withdraw", gameHandler.Withdraw).Methods(http.MethodPost)
	gameProtected.HandleFunc("/user/withdraw-all", gameHandler.WithdrawAll).Methods(http.MethodPost)

	// Health check endpoint (no auth)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
