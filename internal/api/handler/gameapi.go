package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/luckyroad/casinohub/internal/api/apierr"
	"github.com/luckyroad/casinohub/internal/api/request"
	"github.com/luckyroad/casinohub/internal/model"
	"github.com/luckyroad/casinohub/internal/services/provider"
)

// GameAPIHandler handles /api/game-api endpoints
type GameAPIHandler struct {
	providerService *provider.Service
}

// NewGameAPIHandler creates a new game-api handler
func NewGameAPIHandler(providerService *provider.Service) *GameAPIHandler {
	return &GameAPIHandler{
		providerService: providerService,
	}
}

// Vendors handles GET /api/game-api/vendors/list
func (h *GameAPIHandler) Vendors(w http.ResponseWriter, r *http.Request) {
	vendors, err := h.providerService.Vendors(r.Context())
	if err != nil {
		apierr.WriteGameError(w, err)
		return
	}
	apierr.WriteGameSuccess(w, vendors)
}

// Games handles POST /api/game-api/games/list
func (h *GameAPIHandler) Games(w http.ResponseWriter, r *http.Request) {
	var req request.GamesList
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteGameError(w, apierr.NewValidationError("invalid request body"))
		return
	}

	if req.VendorCode == "" {
		req.VendorCode = "PRAGMATIC"
	}

	games, err := h.providerService.Games(r.Context(), req.VendorCode, req.Language)
	if err != nil {
		apierr.WriteGameError(w, err)
		return
	}
	apierr.WriteGameSuccess(w, games)
}

// MiniGames handles GET /api/game-api/games/mini/list
func (h *GameAPIHandler) MiniGames(w http.ResponseWriter, r *http.Request) {
	games, err := h.providerService.MiniGames(r.Context(), r.URL.Query().Get("language"))
	if err != nil {
		apierr.WriteGameError(w, err)
		return
	}
	apierr.WriteGameSuccess(w, games)
}

// GameDetail handles POST /api/game-api/game/detail
func (h *GameAPIHandler) GameDetail(w http.ResponseWriter, r *http.Request) {
	var req request.GameDetail
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteGameError(w, apierr.NewValidationError("invalid request body"))
		return
	}

	detail, err := h.providerService.GameDetail(r.Context(), req.VendorCode, req.GameCode)
	if err != nil {
		apierr.WriteGameError(w, err)
		return
	}
	apierr.WriteGameSuccess(w, detail)
}

// LaunchURL handles POST /api/game-api/game/launch-url
func (h *GameAPIHandler) LaunchURL(w http.ResponseWriter, r *http.Request) {
	var req request.LaunchURL
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteGameError(w, apierr.NewValidationError("invalid request body"))
		return
	}

	if req.VendorCode == "" || req.GameCode == "" || req.UserCode == "" {
		apierr.WriteGameError(w, apierr.NewValidationError("missing required parameters"))
		return
	}

	launchURL, err := h.providerService.LaunchURL(r.Context(), req.VendorCode, req.GameCode, req.UserCode, req.Language, req.LobbyURL)
	if err != nil {
		apierr.WriteGameError(w, apierr.NewGameError(http.StatusInternalServerError, apierr.CodeLaunchFailed, apierr.Messages(apierr.CodeLaunchFailed)))
		return
	}
	apierr.WriteGameSuccess(w, launchURL)
}

// UserCreate handles POST /api/game-api/user/create
func (h *GameAPIHandler) UserCreate(w http.ResponseWriter, r *http.Request) {
	var req request.UserCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteGameError(w, apierr.NewValidationError("invalid request body"))
		return
	}

	if req.UserCode == "" {
		apierr.WriteGameError(w, apierr.NewValidationError("user code is required"))
		return
	}

	err := h.providerService.CreateUser(r.Context(), req.UserCode)
	if errors.Is(err, model.ErrProviderUserExists) {
		apierr.WriteGameExists(w, "user already exists")
		return
	}
	if err != nil {
		apierr.WriteGameError(w, err)
		return
	}
	apierr.WriteGameSuccess(w, "user created")
}

// UserBalance handles POST /api/game-api/user/balance
func (h *GameAPIHandler) UserBalance(w http.ResponseWriter, r *http.Request) {
	var req request.UserBalance
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteGameError(w, apierr.NewValidationError("invalid request body"))
		return
	}

	if req.UserCode == "" {
		apierr.WriteGameError(w, apierr.NewValidationError("user code is required"))
		return
	}

	balance, err := h.providerService.Balance(r.Context(), req.UserCode)
	if err != nil {
		apierr.WriteGameError(w, err)
		return
	}
	apierr.WriteGameSuccess(w, balance)
}

// Deposit handles POST /api/game-api/user/deposit
func (h *GameAPIHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	var req request.WalletTransfer
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteGameError(w, apierr.NewValidationError("invalid request body"))
		return
	}

	if req.UserCode == "" || req.Balance == nil {
		apierr.WriteGameError(w, apierr.NewValidationError("missing required parameters"))
		return
	}

	balance, err := h.providerService.Deposit(r.Context(), req.UserCode, *req.Balance)
	if err != nil {
		apierr.WriteGameError(w, err)
		return
	}
	apierr.WriteGameSuccess(w, fmt.Sprintf("deposit successful, balance: %g", balance))
}

// Withdraw handles POST /api/game-api/user/withdraw
func (h *GameAPIHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	var req request.WalletTransfer
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteGameError(w, apierr.NewValidationError("invalid request body"))
		return
	}

	if req.UserCode == "" || req.Balance == nil {
		apierr.WriteGameError(w, apierr.NewValidationError("missing required parameters"))
		return
	}

	balance, err := h.providerService.Withdraw(r.Context(), req.UserCode, *req.Balance)
	if err != nil {
		apierr.WriteGameError(w, err)
		return
	}
	apierr.WriteGameSuccess(w, fmt.Sprintf("withdrawal successful, balance: %g", balance))
}

// WithdrawAll handles POST /api/game-api/user/withdraw-all
func (h *GameAPIHandler) WithdrawAll(w http.ResponseWriter, r *http.Request) {
	var req request.WithdrawAll
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteGameError(w, apierr.NewValidationError("invalid request body"))
		return
	}

	if req.UserCode == "" {
		apierr.WriteGameError(w, apierr.NewValidationError("user code is required"))
		return
	}

	withdrawn, err := h.providerService.WithdrawAll(r.Context(), req.UserCode)
	if err != nil {
		apierr.WriteGameError(w, err)
		return
	}
	apierr.WriteGameSuccess(w, fmt.Sprintf("withdrew all funds: %g", withdrawn))
}

// Status handles GET /api/game-api/status
func (h *GameAPIHandler) Status(w http.ResponseWriter, r *http.Request) {
	apierr.WriteGameSuccess(w, "API is running")
}
