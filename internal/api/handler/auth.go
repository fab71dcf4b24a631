package handler

import (
	"encoding/json"
	"net/http"

	"github.com/luckyroad/casinohub/internal/api/apierr"
	"github.com/luckyroad/casinohub/internal/api/middleware"
	"github.com/luckyroad/casinohub/internal/api/request"
	"github.com/luckyroad/casinohub/internal/api/response"
	"github.com/luckyroad/casinohub/internal/services/auth"
	"github.com/luckyroad/casinohub/internal/services/captcha"
)

// AuthHandler handles /api/auth endpoints
type AuthHandler struct {
	authService    *auth.Service
	captchaService *captcha.Service
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *auth.Service, captchaService *captcha.Service) *AuthHandler {
	return &AuthHandler{
		authService:    authService,
		captchaService: captchaService,
	}
}

// Captcha handles POST /api/auth/captcha
func (h *AuthHandler) Captcha(w http.ResponseWriter, r *http.Request) {
	challenge := h.captchaService.Create()
	apierr.WriteAuthSuccess(w, response.CaptchaData{
		Key: challenge.Key,
		Img: challenge.Img,
	}, "")
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.Login
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteAuthError(w, apierr.NewAuthError(http.StatusBadRequest, "invalid request body"))
		return
	}

	// Captcha is checked only when the client supplies one
	if req.Key != "" && req.Captcha != "" {
		if err := h.captchaService.Verify(req.Key, req.Captcha); err != nil {
			apierr.WriteAuthError(w, err)
			return
		}
	}

	if req.Name == "" || req.Password == "" {
		apierr.WriteAuthError(w, apierr.NewAuthError(http.StatusBadRequest, "name and password are required"))
		return
	}

	account, token, err := h.authService.Login(r.Context(), req.Name, req.Password)
	if err != nil {
		apierr.WriteAuthError(w, err)
		return
	}

	apierr.WriteAuthSuccess(w, response.NewAuthData(account, token), "login successful")
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.Register
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteAuthError(w, apierr.NewAuthError(http.StatusBadRequest, "invalid request body"))
		return
	}

	if req.Key != "" && req.Captcha != "" {
		if err := h.captchaService.Verify(req.Key, req.Captcha); err != nil {
			apierr.WriteAuthError(w, err)
			return
		}
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		apierr.WriteAuthError(w, apierr.NewAuthError(http.StatusBadRequest, "name, email and password are required"))
		return
	}

	account, token, err := h.authService.Register(r.Context(), req.Name, req.Email, req.Password, req.ConfirmPassword)
	if err != nil {
		apierr.WriteAuthError(w, err)
		return
	}

	apierr.WriteAuthSuccess(w, response.NewAuthData(account, token), "registration successful")
}

// Me handles POST /api/auth/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	account := middleware.MustGetAccount(r.Context())
	apierr.WriteAuthSuccess(w, response.UserFromModel(account), "")
}

// Logout handles POST /api/auth/logout. Tokens are stateless; the client
// discards its copy.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	apierr.WriteAuthSuccess(w, nil, "logout successful")
}

// UpdateInfo handles POST /api/auth/info/update
func (h *AuthHandler) UpdateInfo(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateInfo
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteAuthError(w, apierr.NewAuthError(http.StatusBadRequest, "invalid request body"))
		return
	}

	account := middleware.MustGetAccount(r.Context())
	updated, err := h.authService.UpdateProfile(r.Context(), account.ID, req.Name, req.Email)
	if err != nil {
		apierr.WriteAuthError(w, err)
		return
	}

	apierr.WriteAuthSuccess(w, response.UserFromModel(updated), "update successful")
}

// ResetPass handles POST /api/auth/reset_pass
func (h *AuthHandler) ResetPass(w http.ResponseWriter, r *http.Request) {
	var req request.ResetPass
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteAuthError(w, apierr.NewAuthError(http.StatusBadRequest, "invalid request body"))
		return
	}

	if req.Email == "" {
		apierr.WriteAuthError(w, apierr.NewAuthError(http.StatusBadRequest, "email is required"))
		return
	}

	if err := h.authService.RequestPasswordReset(r.Context(), req.Email); err != nil {
		apierr.WriteAuthError(w, err)
		return
	}

	apierr.WriteAuthSuccess(w, struct{}{}, "a password reset link has been sent to your email")
}
