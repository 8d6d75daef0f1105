package secrets

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zalando/go-keyring"

	"earn-recycle-engine/internal/config"
)

const (
	// “Service” groups the engine's secrets in the OS keychain.
	KeyringService = "earn-recycle"
)

// ShutdownAccount is the keychain account the desktop shell reads the
// shutdown token from. It is per port so side-by-side engines don't collide.
func ShutdownAccount(cfg config.Config) string {
	return fmt.Sprintf("earn-recycle:shutdown:%d", cfg.App.Port)
}

func SetShutdownToken(account, token string) error {
	if strings.TrimSpace(account) == "" {
		return errors.New("keyring account name is empty")
	}
	if strings.TrimSpace(token) == "" {
		return errors.New("token is empty")
	}
	return keyring.Set(KeyringService, account, token)
}

func GetShutdownToken(account string) (string, error) {
	if strings.TrimSpace(account) == "" {
		return "", errors.New("keyring account name is empty")
	}
	tok, err := keyring.Get(KeyringService, account)
	if err != nil {
		return "", fmt.Errorf("shutdown token not found: %w", err)
	}
	return tok, nil
}

// DeleteShutdownToken removes the token; a missing entry is not an error.
func DeleteShutdownToken(account string) error {
	err := keyring.Delete(KeyringService, account)
	if errors.Is(err, keyring.ErrNotFound) {
		return nil
	}
	return err
}
