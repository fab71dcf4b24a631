package response

import (
	"github.com/luckyroad/casinohub/internal/model"
)

// User represents an account in API responses
type User struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Balance float64 `json:"balance"`
}

// UserFromModel converts a model.Account to a response User
func UserFromModel(a *model.Account) User {
	return User{
		ID:      string(a.ID),
		Name:    a.Name,
		Email:   a.Email,
		Balance: a.Balance,
	}
}

// AuthData is the data payload for login and register responses. Token
// duplicates AccessToken for clients reading either field.
type AuthData struct {
	AccessToken string `json:"access_token"`
	Token       string `json:"token"`
	User        User   `json:"user"`
}

// NewAuthData builds an AuthData from an account and its token
func NewAuthData(a *model.Account, token string) AuthData {
	return AuthData{
		AccessToken: token,
		Token:       token,
		User:        UserFromModel(a),
	}
}

// CaptchaData is the data payload for captcha responses
type CaptchaData struct {
	Key string `json:"key"`
	Img string `json:"img"`
}
