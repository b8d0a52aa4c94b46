//go:build unit
// +build unit

package cryptography

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/JoonHoSon/cryptoutil/internal/domain/crypto"
	"github.com/JoonHoSon/cryptoutil/internal/domain/liberr"
	"github.com/JoonHoSon/cryptoutil/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret     = "abcdefgh"
	testSalt       = "saltsalt"
	testIterations = 10
	testPlainText  = "This is that"
)

func setupAESProcessor(t *testing.T) crypto.AESProcessor {
	t.Helper()
	logger := testutil.SetupTestLogger(t)
	processor, err := NewAESProcessor(logger)
	require.NoError(t, err)
	return processor
}

func TestAESProcessor(t *testing.T) {
	processor := setupAESProcessor(t)

	t.Run("EncryptDecrypt", func(t *testing.T) {
		result, err := processor.Encrypt(crypto.AES128, []byte(testPlainText), []byte(testSecret), []byte(testSalt), testIterations)
		require.NoError(t, err)
		assert.Equal(t, []byte(testSalt), result.Salt)
		assert.Len(t, result.IV, crypto.IVSize)
		assert.Len(t, result.Ciphertext, crypto.AESBlockSize)

		decrypted, err := processor.Decrypt(crypto.AES128, result.Ciphertext, []byte(testSecret), result.IV, result.Salt, testIterations)
		require.NoError(t, err)
		assert.Equal(t, testPlainText, string(decrypted))
	})

	// Ciphertexts match `openssl enc -aes-{128,256}-cbc -K <key> -iv <iv>` with the derived material.
	t.Run("KnownCiphertext", func(t *testing.T) {
		tests := []struct {
			strength crypto.CipherStrength
			expected string
		}{
			{crypto.AES128, "e9a8c4f5b5219310e84e078a88c70fde"},
			{crypto.AES256, "16e4ad30c0a02101d071dc6bc221124f"},
		}

		for _, tt := range tests {
			result, err := processor.Encrypt(tt.strength, []byte(testPlainText), []byte(testSecret), []byte(testSalt), testIterations)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, hex.EncodeToString(result.Ciphertext), tt.strength.String())
		}
	})

	t.Run("RoundTripLengths", func(t *testing.T) {
		for _, strength := range []crypto.CipherStrength{crypto.AES128, crypto.AES256} {
			for _, size := range []int{1, 15, 16, 17, 32, 1000} {
				plainText := bytes.Repeat([]byte{0x5a}, size)

				result, err := processor.Encrypt(strength, plainText, []byte("passphrase"), []byte("12345678"), 3)
				require.NoError(t, err)
				assert.Equal(t, (size/crypto.AESBlockSize+1)*crypto.AESBlockSize, len(result.Ciphertext))

				decrypted, err := processor.Decrypt(strength, result.Ciphertext, []byte("passphrase"), result.IV, result.Salt, 3)
				require.NoError(t, err)
				assert.Equal(t, plainText, decrypted)
			}
		}
	})

	t.Run("SaltLengthMustBeEight", func(t *testing.T) {
		for _, salt := range [][]byte{nil, []byte("salt"), []byte("saltsaltsalt")} {
			_, err := processor.Encrypt(crypto.AES128, []byte(testPlainText), []byte(testSecret), salt, testIterations)
			assert.True(t, errors.Is(err, liberr.ErrInvalidArgument), "encrypt with salt %q: %v", salt, err)

			_, err = processor.Decrypt(crypto.AES128, make([]byte, 16), []byte(testSecret), make([]byte, 16), salt, testIterations)
			assert.True(t, errors.Is(err, liberr.ErrInvalidArgument), "decrypt with salt %q: %v", salt, err)
		}
	})

	t.Run("EmptyTarget", func(t *testing.T) {
		_, err := processor.Encrypt(crypto.AES128, []byte{}, []byte(testSecret), []byte(testSalt), testIterations)
		assert.True(t, errors.Is(err, liberr.ErrInvalidArgument))

		_, err = processor.Decrypt(crypto.AES128, []byte{}, []byte(testSecret), make([]byte, 16), []byte(testSalt), testIterations)
		assert.True(t, errors.Is(err, liberr.ErrInvalidArgument))
	})

	t.Run("MissingTarget", func(t *testing.T) {
		_, err := processor.Decrypt(crypto.AES128, nil, []byte(testSecret), make([]byte, 16), []byte(testSalt), testIterations)
		assert.True(t, errors.Is(err, liberr.ErrMissingArgument))
	})

	t.Run("InvalidIV", func(t *testing.T) {
		_, err := processor.Decrypt(crypto.AES128, make([]byte, 16), []byte(testSecret), make([]byte, 8), []byte(testSalt), testIterations)
		assert.True(t, errors.Is(err, liberr.ErrInvalidArgument))
	})

	t.Run("TruncatedCiphertext", func(t *testing.T) {
		result, err := processor.Encrypt(crypto.AES256, bytes.Repeat([]byte("x"), 40), []byte(testSecret), []byte(testSalt), testIterations)
		require.NoError(t, err)

		_, err = processor.Decrypt(crypto.AES256, result.Ciphertext[:len(result.Ciphertext)-3], []byte(testSecret), result.IV, result.Salt, testIterations)
		assert.True(t, errors.Is(err, liberr.ErrInvalidArgument))
	})

	t.Run("DecryptWithWrongSecret", func(t *testing.T) {
		result, err := processor.Encrypt(crypto.AES128, []byte(testPlainText), []byte(testSecret), []byte(testSalt), testIterations)
		require.NoError(t, err)

		decrypted, err := processor.Decrypt(crypto.AES128, result.Ciphertext, []byte("wrong-secret"), result.IV, result.Salt, testIterations)
		if err == nil {
			assert.NotEqual(t, []byte(testPlainText), decrypted, "Decryption with wrong secret should not return original message")
		} else {
			assert.True(t, errors.Is(err, liberr.ErrInvalidArgument))
		}
	})

	t.Run("ResultDoesNotAliasSalt", func(t *testing.T) {
		salt := []byte(testSalt)
		result, err := processor.Encrypt(crypto.AES128, []byte(testPlainText), []byte(testSecret), salt, testIterations)
		require.NoError(t, err)

		salt[0] = 'X'
		assert.Equal(t, []byte(testSalt), result.Salt)
	})

	t.Run("Transformation", func(t *testing.T) {
		assert.Equal(t, crypto.TransformationAESCBCPKCS5, processor.Transformation())
	})
}
