package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/JoonHoSon/cryptoutil/internal/domain/crypto"
	"github.com/JoonHoSon/cryptoutil/internal/infrastructure/cryptography"
	"github.com/JoonHoSon/cryptoutil/internal/pkg/config"
	"github.com/JoonHoSon/cryptoutil/internal/pkg/fsutil"
	"github.com/JoonHoSon/cryptoutil/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// RSACommandHandler encapsulates logic for handling RSA operations via CLI.
type RSACommandHandler struct {
	rsaProcessor crypto.RSAProcessor
	settings     *config.CryptoSettings
	logger       logger.Logger
}

// NewRSACommandHandler initializes a new RSACommandHandler with logging and an RSA processor.
func NewRSACommandHandler(settings *config.Settings) (*RSACommandHandler, error) {
	loggerInstance, err := setupLogger(settings)
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	rsaProcessor, err := cryptography.NewRSAProcessor(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create RSA processor: %w", err)
	}

	return &RSACommandHandler{
		rsaProcessor: rsaProcessor,
		settings:     &settings.Crypto,
		logger:       loggerInstance,
	}, nil
}

func (commandHandler *RSACommandHandler) bitSize(cmd *cobra.Command) (crypto.RSABitSize, error) {
	keySize, err := cmd.Flags().GetInt("key-size")
	if err != nil {
		return 0, fmt.Errorf("invalid key-size flag: %w", err)
	}
	if keySize == 0 {
		keySize = commandHandler.settings.Asymmetric.KeySize
	}

	options := crypto.RSAOptions{BitSize: crypto.RSABitSize(keySize)}
	if err := options.Validate(); err != nil {
		return 0, fmt.Errorf("unsupported RSA key size %d: %w", keySize, err)
	}
	return options.BitSize, nil
}

// keyDirectory resolves --key-dir, creating a date-named subdirectory when --date-dir is set.
func keyDirectory(cmd *cobra.Command) (string, error) {
	keyDir, err := cmd.Flags().GetString("key-dir")
	if err != nil {
		return "", fmt.Errorf("invalid key-dir flag: %w", err)
	}
	dateDir, err := cmd.Flags().GetString("date-dir")
	if err != nil {
		return "", fmt.Errorf("invalid date-dir flag: %w", err)
	}
	if dateDir == "" {
		return keyDir, nil
	}

	dateType, err := fsutil.ParseDirectoryDateType(dateDir)
	if err != nil {
		return "", err
	}
	return fsutil.GeneratePath(keyDir, dateType, "")
}

// saveKeyPair writes <uuid>-private-key.pem and <uuid>-public-key.pem into dir.
func (commandHandler *RSACommandHandler) saveKeyPair(dir string, bundle *crypto.RSAKeyPairBundle) (string, error) {
	uniqueID := uuid.New().String()

	privateKeyFilePath := filepath.Join(dir, fmt.Sprintf("%s-private-key.pem", uniqueID))
	if err := os.WriteFile(privateKeyFilePath, bundle.PrivateKeyPEM, 0600); err != nil {
		return "", fmt.Errorf("failed to write private key: %w", err)
	}

	publicKeyFilePath := filepath.Join(dir, fmt.Sprintf("%s-public-key.pem", uniqueID))
	if err := os.WriteFile(publicKeyFilePath, bundle.PublicKeyPEM, 0600); err != nil {
		return "", fmt.Errorf("failed to write public key: %w", err)
	}

	commandHandler.logger.Info("Saved RSA key pair", privateKeyFilePath, publicKeyFilePath)
	return uniqueID, nil
}

// GenerateRSAKeysCmd generates RSA key pairs and persists those in a selected directory
func (commandHandler *RSACommandHandler) GenerateRSAKeysCmd(cmd *cobra.Command, _ []string) error {
	bitSize, err := commandHandler.bitSize(cmd)
	if err != nil {
		return err
	}
	dir, err := keyDirectory(cmd)
	if err != nil {
		return err
	}

	bundle, err := commandHandler.rsaProcessor.GenerateKeyPair(bitSize)
	if err != nil {
		commandHandler.logger.Error("RSA key generation failed:", err)
		return err
	}

	uniqueID, err := commandHandler.saveKeyPair(dir, bundle)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), uniqueID)
	return err
}

// EncryptRSACmd encrypts a file using an RSA public key
func (commandHandler *RSACommandHandler) EncryptRSACmd(cmd *cobra.Command, _ []string) error {
	inputFile, err := cmd.Flags().GetString("input-file")
	if err != nil {
		return fmt.Errorf("invalid input-file flag: %w", err)
	}
	outputFile, err := cmd.Flags().GetString("output-file")
	if err != nil {
		return fmt.Errorf("invalid output-file flag: %w", err)
	}
	publicKeyPath, err := cmd.Flags().GetString("public-key")
	if err != nil {
		return fmt.Errorf("invalid public-key flag: %w", err)
	}

	publicKeyPEM, err := readInputFile(publicKeyPath)
	if err != nil {
		return err
	}
	plainText, err := readInputFile(inputFile)
	if err != nil {
		return err
	}

	encryptedData, err := commandHandler.rsaProcessor.EncryptWithKey(plainText, publicKeyPEM)
	if err != nil {
		commandHandler.logger.Error("RSA encryption failed:", err)
		return err
	}

	if err := writeOutputFile(outputFile, encryptedData); err != nil {
		return err
	}

	commandHandler.logger.Info("Encrypted data path", outputFile)
	return nil
}

// DecryptRSACmd decrypts a file using an RSA private key
func (commandHandler *RSACommandHandler) DecryptRSACmd(cmd *cobra.Command, _ []string) error {
	inputFile, err := cmd.Flags().GetString("input-file")
	if err != nil {
		return fmt.Errorf("invalid input-file flag: %w", err)
	}
	outputFile, err := cmd.Flags().GetString("output-file")
	if err != nil {
		return fmt.Errorf("invalid output-file flag: %w", err)
	}
	privateKeyPath, err := cmd.Flags().GetString("private-key")
	if err != nil {
		return fmt.Errorf("invalid private-key flag: %w", err)
	}

	privateKeyPEM, err := readInputFile(privateKeyPath)
	if err != nil {
		return err
	}
	encryptedData, err := readInputFile(inputFile)
	if err != nil {
		return err
	}

	decryptedData, err := commandHandler.rsaProcessor.DecryptWithKey(encryptedData, privateKeyPEM)
	if err != nil {
		commandHandler.logger.Error("RSA decryption failed:", err)
		return err
	}

	if err := writeOutputFile(outputFile, decryptedData); err != nil {
		return err
	}

	commandHandler.logger.Info("Decrypted data path", outputFile)
	return nil
}

// EncryptRSAFreshKeyCmd generates a new key pair, encrypts a file with it and stores keys and ciphertext together.
func (commandHandler *RSACommandHandler) EncryptRSAFreshKeyCmd(cmd *cobra.Command, _ []string) error {
	inputFile, err := cmd.Flags().GetString("input-file")
	if err != nil {
		return fmt.Errorf("invalid input-file flag: %w", err)
	}
	bitSize, err := commandHandler.bitSize(cmd)
	if err != nil {
		return err
	}
	dir, err := keyDirectory(cmd)
	if err != nil {
		return err
	}

	plainText, err := readInputFile(inputFile)
	if err != nil {
		return err
	}

	bundle, err := commandHandler.rsaProcessor.EncryptWithFreshKey(plainText, bitSize)
	if err != nil {
		commandHandler.logger.Error("RSA encryption failed:", err)
		return err
	}

	uniqueID, err := commandHandler.saveKeyPair(dir, bundle)
	if err != nil {
		return err
	}

	outputFile := filepath.Join(dir, fmt.Sprintf("%s-ciphertext.bin", uniqueID))
	if err := writeOutputFile(outputFile, bundle.Ciphertext); err != nil {
		return err
	}

	commandHandler.logger.Info("Encrypted data path", outputFile)
	_, err = fmt.Fprintln(cmd.OutOrStdout(), uniqueID)
	return err
}

// InitRSACommands registers RSA-related commands
func InitRSACommands(rootCmd *cobra.Command, settings *config.Settings) error {
	handler, err := NewRSACommandHandler(settings)
	if err != nil {
		return fmt.Errorf("failed to create RSA command handler: %w", err)
	}

	var generateRSAKeysCmd = &cobra.Command{
		Use:   "generate-rsa-keys",
		Short: "Generate RSA keys",
		RunE:  handler.GenerateRSAKeysCmd,
	}
	generateRSAKeysCmd.Flags().IntP("key-size", "", 0, "RSA key size in bits: 1024, 2048, 4096 or 8192 (default from settings)")
	generateRSAKeysCmd.Flags().StringP("key-dir", "", ".", "Directory to store the RSA keys")
	generateRSAKeysCmd.Flags().StringP("date-dir", "", "", "Create a date subdirectory: yyyymmdd, yyyymm or yyyy")
	rootCmd.AddCommand(generateRSAKeysCmd)

	var encryptRSAFileCmd = &cobra.Command{
		Use:   "encrypt-rsa",
		Short: "Encrypt a file using RSA",
		RunE:  handler.EncryptRSACmd,
	}
	encryptRSAFileCmd.Flags().StringP("input-file", "", "", "Path to input file which needs to be encrypted")
	encryptRSAFileCmd.Flags().StringP("output-file", "", "", "Path to encrypted output file")
	encryptRSAFileCmd.Flags().StringP("public-key", "", "", "Path to RSA public key")
	rootCmd.AddCommand(encryptRSAFileCmd)

	var decryptRSAFileCmd = &cobra.Command{
		Use:   "decrypt-rsa",
		Short: "Decrypt a file using RSA",
		RunE:  handler.DecryptRSACmd,
	}
	decryptRSAFileCmd.Flags().StringP("input-file", "", "", "Path to encrypted file")
	decryptRSAFileCmd.Flags().StringP("output-file", "", "", "Path to decrypted output file")
	decryptRSAFileCmd.Flags().StringP("private-key", "", "", "Path to RSA private key")
	rootCmd.AddCommand(decryptRSAFileCmd)

	var encryptRSAFreshKeyCmd = &cobra.Command{
		Use:   "encrypt-rsa-fresh-key",
		Short: "Generate a new RSA key pair and encrypt a file with it",
		RunE:  handler.EncryptRSAFreshKeyCmd,
	}
	encryptRSAFreshKeyCmd.Flags().StringP("input-file", "", "", "Path to input file which needs to be encrypted")
	encryptRSAFreshKeyCmd.Flags().IntP("key-size", "", 0, "RSA key size in bits (default from settings)")
	encryptRSAFreshKeyCmd.Flags().StringP("key-dir", "", ".", "Directory to store keys and ciphertext")
	encryptRSAFreshKeyCmd.Flags().StringP("date-dir", "", "", "Create a date subdirectory: yyyymmdd, yyyymm or yyyy")
	rootCmd.AddCommand(encryptRSAFreshKeyCmd)

	return nil
}
