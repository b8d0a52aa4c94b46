package commands

import (
	"fmt"

	"github.com/JoonHoSon/cryptoutil/internal/domain/crypto"
	"github.com/JoonHoSon/cryptoutil/internal/infrastructure/cryptography"
	"github.com/JoonHoSon/cryptoutil/internal/pkg/config"
	"github.com/JoonHoSon/cryptoutil/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// HashCommandHandler encapsulates logic for handling salted digests via CLI.
type HashCommandHandler struct {
	hashProcessor crypto.HashProcessor
	settings      *config.CryptoSettings
	logger        logger.Logger
}

// NewHashCommandHandler initializes and returns a HashCommandHandler instance.
func NewHashCommandHandler(settings *config.Settings) (*HashCommandHandler, error) {
	loggerInstance, err := setupLogger(settings)
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	hashProcessor, err := cryptography.NewHashProcessor(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create hash processor: %w", err)
	}

	return &HashCommandHandler{
		hashProcessor: hashProcessor,
		settings:      &settings.Crypto,
		logger:        loggerInstance,
	}, nil
}

// HashCmd prints the lowercase hex digest of --text or --input-file.
func (commandHandler *HashCommandHandler) HashCmd(cmd *cobra.Command, _ []string) error {
	algorithmName, err := cmd.Flags().GetString("algorithm")
	if err != nil {
		return fmt.Errorf("invalid algorithm flag: %w", err)
	}
	if algorithmName == "" {
		algorithmName = commandHandler.settings.DigestAlgorithm
	}
	algorithm, err := crypto.ParseDigestAlgorithm(algorithmName)
	if err != nil {
		return err
	}

	text, err := cmd.Flags().GetString("text")
	if err != nil {
		return fmt.Errorf("invalid text flag: %w", err)
	}
	inputFile, err := cmd.Flags().GetString("input-file")
	if err != nil {
		return fmt.Errorf("invalid input-file flag: %w", err)
	}
	salt, err := cmd.Flags().GetString("salt")
	if err != nil {
		return fmt.Errorf("invalid salt flag: %w", err)
	}

	target := []byte(text)
	if inputFile != "" {
		if target, err = readInputFile(inputFile); err != nil {
			return err
		}
	}

	digest, err := commandHandler.hashProcessor.DigestHex(algorithm, target, []byte(salt))
	if err != nil {
		commandHandler.logger.Error("hash failed:", err)
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), digest)
	return err
}

// InitHashCommands registers hash-related commands
func InitHashCommands(rootCmd *cobra.Command, settings *config.Settings) error {
	handler, err := NewHashCommandHandler(settings)
	if err != nil {
		return fmt.Errorf("failed to create hash command handler: %w", err)
	}

	var hashCmd = &cobra.Command{
		Use:   "hash",
		Short: "Print the salted SHA digest of a text or file",
		RunE:  handler.HashCmd,
	}
	hashCmd.Flags().StringP("algorithm", "a", "", "Digest algorithm: sha256 or sha512 (default from settings)")
	hashCmd.Flags().StringP("text", "t", "", "Text to hash")
	hashCmd.Flags().StringP("input-file", "", "", "Path to a file to hash; cannot be combined with --text")
	hashCmd.Flags().StringP("salt", "s", "", "Salt appended after the target")
	hashCmd.MarkFlagsMutuallyExclusive("text", "input-file")
	rootCmd.AddCommand(hashCmd)

	return nil
}
