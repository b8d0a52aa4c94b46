//go:build unit
// +build unit

package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/JoonHoSon/cryptoutil/internal/domain/crypto"
	"github.com/JoonHoSon/cryptoutil/internal/domain/liberr"
	"github.com/JoonHoSon/cryptoutil/internal/pkg/testutil"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// runHandler wires run into a throwaway command configured by register and executes args.
func runHandler(t *testing.T, register func(*cobra.Command), run func(*cobra.Command, []string) error, args ...string) (string, error) {
	t.Helper()

	cmd := &cobra.Command{Use: "test", RunE: run, SilenceUsage: true, SilenceErrors: true}
	register(cmd)

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestHashCommandHandler_UsesSettingsDefaults(t *testing.T) {
	processor := new(MockHashProcessor)
	settings := testSettings()
	settings.Crypto.DigestAlgorithm = "sha512"

	handler := &HashCommandHandler{
		hashProcessor: processor,
		settings:      &settings.Crypto,
		logger:        testutil.SetupTestLogger(t),
	}

	processor.On("DigestHex", crypto.SHA512, []byte("target"), []byte("pepper")).Return("abc123", nil).Once()

	out, err := runHandler(t, func(cmd *cobra.Command) {
		cmd.Flags().StringP("algorithm", "a", "", "")
		cmd.Flags().StringP("text", "t", "", "")
		cmd.Flags().StringP("input-file", "", "", "")
		cmd.Flags().StringP("salt", "s", "", "")
	}, handler.HashCmd, "-t", "target", "-s", "pepper")

	require.NoError(t, err)
	assert.Equal(t, "abc123\n", out)
	processor.AssertExpectations(t)
}

func TestAESCommandHandler_PropagatesProcessorError(t *testing.T) {
	processor := new(MockAESProcessor)
	settings := testSettings()

	handler := &AESCommandHandler{
		aesProcessor: processor,
		settings:     &settings.Crypto,
		logger:       testutil.SetupTestLogger(t),
	}

	inputPath := testutil.CreateTestFile(t, "plain.txt", []byte("payload"))
	outputPath := filepath.Join(t.TempDir(), "out.json")

	processor.On("Encrypt", crypto.AES128, []byte("payload"), []byte("secret"), []byte("saltsalt"), settings.Crypto.Iterations).
		Return(nil, liberr.NewCrypto("boom")).Once()

	_, err := runHandler(t, func(cmd *cobra.Command) {
		cmd.Flags().StringP("input-file", "", "", "")
		cmd.Flags().StringP("output-file", "", "", "")
		cmd.Flags().StringP("secret", "", "", "")
		cmd.Flags().StringP("salt", "", "", "")
		cmd.Flags().IntP("key-size", "", 0, "")
		cmd.Flags().IntP("iterations", "", 0, "")
	}, handler.EncryptAESCmd,
		"--input-file", inputPath,
		"--output-file", outputPath,
		"--secret", "secret",
		"--salt", "73616c7473616c74",
	)

	require.Error(t, err)
	assert.Equal(t, liberr.KindCrypto, liberr.KindOf(err))
	assert.NoFileExists(t, outputPath)
	processor.AssertExpectations(t)
}

func TestRSACommandHandler_GenerateUsesSettingsKeySize(t *testing.T) {
	processor := new(MockRSAProcessor)
	settings := testSettings()
	settings.Crypto.Asymmetric.KeySize = 4096

	handler := &RSACommandHandler{
		rsaProcessor: processor,
		settings:     &settings.Crypto,
		logger:       testutil.SetupTestLogger(t),
	}

	bundle := &crypto.RSAKeyPairBundle{
		PublicKeyPEM:  []byte("public"),
		PrivateKeyPEM: []byte("private"),
	}
	processor.On("GenerateKeyPair", crypto.RSA4096).Return(bundle, nil).Once()

	dir := t.TempDir()
	out, err := runHandler(t, func(cmd *cobra.Command) {
		cmd.Flags().IntP("key-size", "", 0, "")
		cmd.Flags().StringP("key-dir", "", ".", "")
		cmd.Flags().StringP("date-dir", "", "", "")
	}, handler.GenerateRSAKeysCmd, "--key-dir", dir)

	require.NoError(t, err)
	processor.AssertExpectations(t)

	uniqueID := out[:len(out)-1]
	publicKey, err := os.ReadFile(filepath.Join(dir, uniqueID+"-public-key.pem"))
	require.NoError(t, err)
	assert.Equal(t, []byte("public"), publicKey)

	privateKey, err := os.ReadFile(filepath.Join(dir, uniqueID+"-private-key.pem"))
	require.NoError(t, err)
	assert.Equal(t, []byte("private"), privateKey)
}

func TestRSACommandHandler_EncryptRejectsMissingPublicKey(t *testing.T) {
	processor := new(MockRSAProcessor)
	settings := testSettings()

	handler := &RSACommandHandler{
		rsaProcessor: processor,
		settings:     &settings.Crypto,
		logger:       testutil.SetupTestLogger(t),
	}

	inputPath := testutil.CreateTestFile(t, "plain.txt", []byte("payload"))

	_, err := runHandler(t, func(cmd *cobra.Command) {
		cmd.Flags().StringP("input-file", "", "", "")
		cmd.Flags().StringP("output-file", "", "", "")
		cmd.Flags().StringP("public-key", "", "", "")
	}, handler.EncryptRSACmd, "--input-file", inputPath, "--output-file", filepath.Join(t.TempDir(), "out"))

	assert.Error(t, err)
	processor.AssertNotCalled(t, "EncryptWithKey", mock.Anything, mock.Anything)
}
