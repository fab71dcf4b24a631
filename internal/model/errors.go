package model

import "errors"

// Common errors used across the application
var (
	// Account errors
	ErrAccountNotFound = errors.New("account not found")
	ErrAccountExists   = errors.New("account name or email already exists")

	// Captcha errors
	ErrCaptchaNotFound = errors.New("captcha key not found or expired")
	ErrCaptchaMismatch = errors.New("captcha answer does not match")

	// Provider errors
	ErrProviderUserNotFound = errors.New("provider user not found")
	ErrProviderUserExists   = errors.New("provider user already exists")
	ErrVendorNotFound       = errors.New("vendor not found")
	ErrGameNotFound         = errors.New("game not found")

	// Wallet errors
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInvalidAmount       = errors.New("amount must be positive")
)
