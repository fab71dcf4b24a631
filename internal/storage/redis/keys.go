package redis

import (
	"strings"

	"github.com/luckyroad/casinohub/internal/model"
)

// Key prefixes for Redis storage
const (
	keyPrefix = "casinohub:"
)

func accountKey(id model.AccountID) string {
	return keyPrefix + "account:" + string(id)
}

func nameIndexKey(name string) string {
	return keyPrefix + "account:name:" + strings.ToLower(name)
}

func emailIndexKey(email string) string {
	return keyPrefix + "account:email:" + strings.ToLower(email)
}

func providerUserKey(userCode string) string {
	return keyPrefix + "provider:user:" + userCode
}

func vendorsKey() string {
	return keyPrefix + "provider:vendors"
}

func gamesKey(vendorCode string) string {
	return keyPrefix + "provider:games:" + vendorCode
}
