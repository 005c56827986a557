package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zalando/go-keyring"
)

// KeyringService groups the application's secrets in the OS keychain.
const KeyringService = "vacancy-stats"

// resolveSuperJobKey prefers an explicit key and falls back to the keychain
// when an account is configured.
func resolveSuperJobKey(sj SuperJob) (string, error) {
	if key := strings.TrimSpace(sj.APIKey); key != "" {
		return key, nil
	}

	account := strings.TrimSpace(sj.KeyringAccount)
	if account == "" {
		return "", nil
	}

	key, err := keyring.Get(KeyringService, account)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("%w: keyring lookup for %q: %w", ErrMissingCredential, account, err)
	}
	return strings.TrimSpace(key), nil
}

// StoreSuperJobKey saves key in the OS keychain under account
func StoreSuperJobKey(account, key string) error {
	if strings.TrimSpace(account) == "" {
		return errors.New("keyring account name is empty")
	}
	if strings.TrimSpace(key) == "" {
		return errors.New("api key is empty")
	}
	return keyring.Set(KeyringService, account, key)
}
