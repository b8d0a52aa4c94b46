package commands

import (
	"encoding/json"
	"fmt"

	"github.com/JoonHoSon/cryptoutil/internal/domain/crypto"
	"github.com/JoonHoSon/cryptoutil/internal/infrastructure/cryptography"
	"github.com/JoonHoSon/cryptoutil/internal/pkg/config"
	"github.com/JoonHoSon/cryptoutil/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// EncryptedEnvelope is the file format written by encrypt-aes. It carries
// everything except the secret needed to decrypt.
type EncryptedEnvelope struct {
	Transformation crypto.Transformation `json:"transformation"`
	Strength       string                `json:"strength"`
	Iterations     int                   `json:"iterations"`
	Salt           []byte                `json:"salt"`
	IV             []byte                `json:"iv"`
	Ciphertext     []byte                `json:"ciphertext"`
}

// AESCommandHandler encapsulates logic for handling AES operations via CLI.
type AESCommandHandler struct {
	aesProcessor crypto.AESProcessor
	settings     *config.CryptoSettings
	logger       logger.Logger
}

// NewAESCommandHandler initializes and returns an AESCommandHandler instance with
// configured logger and AES processor.
func NewAESCommandHandler(settings *config.Settings) (*AESCommandHandler, error) {
	loggerInstance, err := setupLogger(settings)
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	aesProcessor, err := cryptography.NewAESProcessor(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES processor: %w", err)
	}

	return &AESCommandHandler{
		aesProcessor: aesProcessor,
		settings:     &settings.Crypto,
		logger:       loggerInstance,
	}, nil
}

func (commandHandler *AESCommandHandler) symmetricOptions(cmd *cobra.Command) (*crypto.SymmetricOptions, error) {
	keySize, err := cmd.Flags().GetInt("key-size")
	if err != nil {
		return nil, fmt.Errorf("invalid key-size flag: %w", err)
	}
	if keySize == 0 {
		keySize = commandHandler.settings.Symmetric.KeySize
	}
	strength, err := crypto.ParseCipherStrength(fmt.Sprint(keySize))
	if err != nil {
		return nil, err
	}

	iterations, err := cmd.Flags().GetInt("iterations")
	if err != nil {
		return nil, fmt.Errorf("invalid iterations flag: %w", err)
	}
	if iterations == 0 {
		iterations = commandHandler.settings.Iterations
	}

	return &crypto.SymmetricOptions{Strength: strength, Iterations: iterations}, nil
}

// EncryptAESCmd encrypts a file with a password-derived AES key and writes a JSON envelope.
func (commandHandler *AESCommandHandler) EncryptAESCmd(cmd *cobra.Command, _ []string) error {
	inputFilePath, err := cmd.Flags().GetString("input-file")
	if err != nil {
		return fmt.Errorf("invalid input-file flag: %w", err)
	}
	outputFilePath, err := cmd.Flags().GetString("output-file")
	if err != nil {
		return fmt.Errorf("invalid output-file flag: %w", err)
	}
	secretFlag, err := cmd.Flags().GetString("secret")
	if err != nil {
		return fmt.Errorf("invalid secret flag: %w", err)
	}
	saltFlag, err := cmd.Flags().GetString("salt")
	if err != nil {
		return fmt.Errorf("invalid salt flag: %w", err)
	}

	options, err := commandHandler.symmetricOptions(cmd)
	if err != nil {
		return err
	}
	if options.Salt, err = resolveSalt(saltFlag); err != nil {
		return err
	}
	if err := options.Validate(); err != nil {
		return err
	}

	secret, err := resolveSecret(secretFlag)
	if err != nil {
		return err
	}
	plainText, err := readInputFile(inputFilePath)
	if err != nil {
		return err
	}

	result, err := commandHandler.aesProcessor.Encrypt(options.Strength, plainText, secret, options.Salt, options.Iterations)
	if err != nil {
		commandHandler.logger.Error("AES encryption failed:", err)
		return err
	}

	envelope, err := json.MarshalIndent(&EncryptedEnvelope{
		Transformation: commandHandler.aesProcessor.Transformation(),
		Strength:       options.Strength.String(),
		Iterations:     options.Iterations,
		Salt:           result.Salt,
		IV:             result.IV,
		Ciphertext:     result.Ciphertext,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode envelope: %w", err)
	}

	if err := writeOutputFile(outputFilePath, envelope); err != nil {
		return err
	}

	commandHandler.logger.Info("Encrypted data saved to", outputFilePath)
	return nil
}

// DecryptAESCmd reads a JSON envelope written by encrypt-aes and writes the recovered plaintext.
func (commandHandler *AESCommandHandler) DecryptAESCmd(cmd *cobra.Command, _ []string) error {
	inputFilePath, err := cmd.Flags().GetString("input-file")
	if err != nil {
		return fmt.Errorf("invalid input-file flag: %w", err)
	}
	outputFilePath, err := cmd.Flags().GetString("output-file")
	if err != nil {
		return fmt.Errorf("invalid output-file flag: %w", err)
	}
	secretFlag, err := cmd.Flags().GetString("secret")
	if err != nil {
		return fmt.Errorf("invalid secret flag: %w", err)
	}

	secret, err := resolveSecret(secretFlag)
	if err != nil {
		return err
	}
	data, err := readInputFile(inputFilePath)
	if err != nil {
		return err
	}

	var envelope EncryptedEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return fmt.Errorf("input file is not an encrypted envelope: %w", err)
	}
	if envelope.Transformation != commandHandler.aesProcessor.Transformation() {
		return fmt.Errorf("unsupported transformation: %q", envelope.Transformation)
	}
	strength, err := crypto.ParseCipherStrength(envelope.Strength)
	if err != nil {
		return err
	}

	plainText, err := commandHandler.aesProcessor.Decrypt(strength, envelope.Ciphertext, secret, envelope.IV, envelope.Salt, envelope.Iterations)
	if err != nil {
		commandHandler.logger.Error("AES decryption failed:", err)
		return err
	}

	if err := writeOutputFile(outputFilePath, plainText); err != nil {
		return err
	}

	commandHandler.logger.Info("Decrypted data saved to", outputFilePath)
	return nil
}

// InitAESCommands registers AES-related commands
func InitAESCommands(rootCmd *cobra.Command, settings *config.Settings) error {
	handler, err := NewAESCommandHandler(settings)
	if err != nil {
		return fmt.Errorf("failed to create AES command handler: %w", err)
	}

	var encryptAESFileCmd = &cobra.Command{
		Use:   "encrypt-aes",
		Short: "Encrypt a file using a password-derived AES key",
		RunE:  handler.EncryptAESCmd,
	}
	encryptAESFileCmd.Flags().StringP("input-file", "", "", "Path to input file that needs to be encrypted")
	encryptAESFileCmd.Flags().StringP("output-file", "", "", "Path to the encrypted JSON envelope")
	encryptAESFileCmd.Flags().StringP("secret", "", "", "Password (falls back to "+SecretEnv+")")
	encryptAESFileCmd.Flags().StringP("salt", "", "", "8 byte salt as 16 hex characters (random when empty)")
	encryptAESFileCmd.Flags().IntP("key-size", "", 0, "AES key size in bits: 128 or 256 (default from settings)")
	encryptAESFileCmd.Flags().IntP("iterations", "", 0, "Key derivation rounds (default from settings)")
	rootCmd.AddCommand(encryptAESFileCmd)

	var decryptAESFileCmd = &cobra.Command{
		Use:   "decrypt-aes",
		Short: "Decrypt a file produced by encrypt-aes",
		RunE:  handler.DecryptAESCmd,
	}
	decryptAESFileCmd.Flags().StringP("input-file", "", "", "Path to the encrypted JSON envelope")
	decryptAESFileCmd.Flags().StringP("output-file", "", "", "Path to decrypted output file")
	decryptAESFileCmd.Flags().StringP("secret", "", "", "Password (falls back to "+SecretEnv+")")
	rootCmd.AddCommand(decryptAESFileCmd)

	return nil
}
