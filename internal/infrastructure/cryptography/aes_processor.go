package cryptography

import (
	"crypto/aes"
	"crypto/cipher"
	"errors"

	"github.com/JoonHoSon/cryptoutil/internal/domain/crypto"
	"github.com/JoonHoSon/cryptoutil/internal/domain/liberr"
	"github.com/JoonHoSon/cryptoutil/internal/pkg/logger"
)

// aesProcessor struct that implements the AESProcessor interface
type aesProcessor struct {
	deriver crypto.KeyDeriver
	logger  logger.Logger
}

// NewAESProcessor creates and returns a new instance of aesProcessor
func NewAESProcessor(logger logger.Logger) (crypto.AESProcessor, error) {
	return &aesProcessor{
		deriver: NewKeyDeriver(),
		logger:  logger,
	}, nil
}

// Encrypt derives key and IV from secret and salt and encrypts target with AES-CBC and PKCS#5 padding.
func (a *aesProcessor) Encrypt(strength crypto.CipherStrength, target, secret, salt []byte, iterations int) (*crypto.SymmetricEncryptionResult, error) {
	if len(target) == 0 {
		return nil, liberr.NewInvalidArgument("encryption target is empty")
	}

	key, iv, err := a.deriver.DeriveKeyIV(strength, secret, salt, iterations)
	if err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, liberr.WrapCrypto("failed to initialize AES cipher", err)
	}

	padded := pkcs7Pad(target, aes.BlockSize)
	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, padded)

	a.logger.Info(strength, "encryption succeeded")
	return &crypto.SymmetricEncryptionResult{
		Salt:       append([]byte(nil), salt...),
		IV:         iv,
		Ciphertext: ciphertext,
	}, nil
}

// Decrypt re-derives the key from secret and salt and decrypts target with the given IV.
func (a *aesProcessor) Decrypt(strength crypto.CipherStrength, target, secret, iv, salt []byte, iterations int) ([]byte, error) {
	if target == nil {
		return nil, liberr.NewMissingArgument("decryption target is not specified")
	}
	if len(target) == 0 {
		return nil, liberr.NewInvalidArgument("decryption target is empty")
	}
	if len(iv) != crypto.IVSize {
		return nil, liberr.InvalidArgumentf("IV must be exactly %d bytes, got %d", crypto.IVSize, len(iv))
	}

	key, _, err := a.deriver.DeriveKeyIV(strength, secret, salt, iterations)
	if err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, liberr.WrapCrypto("failed to initialize AES cipher", err)
	}

	if len(target)%aes.BlockSize != 0 {
		return nil, liberr.WrapInvalidArgument("ciphertext is truncated", errInvalidBlockData)
	}

	decrypted := make([]byte, len(target))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(decrypted, target)

	plaintext, err := pkcs7Unpad(decrypted, aes.BlockSize)
	if err != nil {
		if errors.Is(err, errInvalidPadding) {
			return nil, liberr.WrapInvalidArgument("ciphertext rejected: wrong key or corrupted data", err)
		}
		return nil, liberr.WrapInvalidArgument("ciphertext rejected", err)
	}

	a.logger.Info(strength, "decryption succeeded")
	return plaintext, nil
}

// Transformation reports AES/CBC/PKCS5Padding.
func (a *aesProcessor) Transformation() crypto.Transformation {
	return crypto.TransformationAESCBCPKCS5
}
