// Package main is the entry point for the cryptoutil-cli application.
// It loads settings, registers the hash, AES and RSA sub-commands and
// executes the command-line interface.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"

	commands "github.com/JoonHoSon/cryptoutil/cmd/cryptoutil-cli/internal/commands"
	"github.com/JoonHoSon/cryptoutil/internal/pkg/config"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	// A missing .env is fine; any other read error is not.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	settings, err := config.LoadDefault()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	rootCmd := &cobra.Command{
		Use:   "cryptoutil-cli",
		Short: "Salted hashing, password-based AES and RSA from the command line",
		Long: `cryptoutil-cli is a command-line tool for everyday cryptographic chores.
Supports salted SHA-256/512 digests, AES-128/256 CBC encryption with
OpenSSL-compatible key derivation, and RSA key generation and PKCS#1 v1.5
encryption/decryption.

Settings are read from the YAML file named by CRYPTOUTIL_CONFIG_PATH, or from
CRYPTOUTIL_* environment variables. A .env file in the working directory is
loaded first when present.`,
		SilenceUsage: true,
	}

	if err := commands.InitCommands(rootCmd, settings); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
