package commands

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/JoonHoSon/cryptoutil/internal/domain/crypto"
	"github.com/JoonHoSon/cryptoutil/internal/pkg/config"
	"github.com/JoonHoSon/cryptoutil/internal/pkg/logger"
)

// SecretEnv names the environment variable consulted when --secret is not given.
const SecretEnv = "CRYPTOUTIL_SECRET"

func setupLogger(settings *config.Settings) (logger.Logger, error) {
	if err := logger.InitLogger(&settings.Logger); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

func readInputFile(path string) ([]byte, error) {
	if path == "" {
		return nil, fmt.Errorf("input file is required")
	}
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("unable to read input file: %w", err)
	}
	return data, nil
}

func writeOutputFile(path string, data []byte) error {
	if path == "" {
		return fmt.Errorf("output file is required")
	}
	if err := os.WriteFile(filepath.Clean(path), data, 0600); err != nil {
		return fmt.Errorf("unable to write output file: %w", err)
	}
	return nil
}

// resolveSecret prefers the flag value and falls back to CRYPTOUTIL_SECRET.
func resolveSecret(flagValue string) ([]byte, error) {
	if flagValue != "" {
		return []byte(flagValue), nil
	}
	if env := os.Getenv(SecretEnv); env != "" {
		return []byte(env), nil
	}
	return nil, fmt.Errorf("secret is required: pass --secret or set %s", SecretEnv)
}

// resolveSalt decodes a hex salt or draws a random one when none is given.
func resolveSalt(hexSalt string) ([]byte, error) {
	if hexSalt == "" {
		salt := make([]byte, crypto.SaltSize)
		if _, err := rand.Read(salt); err != nil {
			return nil, fmt.Errorf("failed to generate salt: %w", err)
		}
		return salt, nil
	}

	salt, err := hex.DecodeString(hexSalt)
	if err != nil {
		return nil, fmt.Errorf("salt must be hex encoded: %w", err)
	}
	return salt, nil
}
