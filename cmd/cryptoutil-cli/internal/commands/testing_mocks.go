//go:build unit
// +build unit

package commands

import (
	"github.com/JoonHoSon/cryptoutil/internal/domain/crypto"

	"github.com/stretchr/testify/mock"
)

// MockHashProcessor is a mock implementation of crypto.HashProcessor
type MockHashProcessor struct {
	mock.Mock
}

func (m *MockHashProcessor) Digest(algorithm crypto.DigestAlgorithm, target, salt []byte) ([]byte, error) {
	args := m.Called(algorithm, target, salt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockHashProcessor) DigestHex(algorithm crypto.DigestAlgorithm, target, salt []byte) (string, error) {
	args := m.Called(algorithm, target, salt)
	return args.String(0), args.Error(1)
}

func (m *MockHashProcessor) DigestString(algorithm crypto.DigestAlgorithm, target, salt *string) ([]byte, error) {
	args := m.Called(algorithm, target, salt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// MockAESProcessor is a mock implementation of crypto.AESProcessor
type MockAESProcessor struct {
	mock.Mock
}

func (m *MockAESProcessor) Encrypt(strength crypto.CipherStrength, target, secret, salt []byte, iterations int) (*crypto.SymmetricEncryptionResult, error) {
	args := m.Called(strength, target, secret, salt, iterations)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*crypto.SymmetricEncryptionResult), args.Error(1)
}

func (m *MockAESProcessor) Decrypt(strength crypto.CipherStrength, target, secret, iv, salt []byte, iterations int) ([]byte, error) {
	args := m.Called(strength, target, secret, iv, salt, iterations)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockAESProcessor) Transformation() crypto.Transformation {
	return crypto.TransformationAESCBCPKCS5
}

// MockRSAProcessor is a mock implementation of crypto.RSAProcessor
type MockRSAProcessor struct {
	mock.Mock
}

func (m *MockRSAProcessor) GenerateKeyPair(bitSize crypto.RSABitSize) (*crypto.RSAKeyPairBundle, error) {
	args := m.Called(bitSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*crypto.RSAKeyPairBundle), args.Error(1)
}

func (m *MockRSAProcessor) EncryptWithKey(target, publicKeyPEM []byte) ([]byte, error) {
	args := m.Called(target, publicKeyPEM)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockRSAProcessor) DecryptWithKey(target, privateKeyPEM []byte) ([]byte, error) {
	args := m.Called(target, privateKeyPEM)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockRSAProcessor) EncryptWithFreshKey(target []byte, bitSize crypto.RSABitSize) (*crypto.RSAKeyPairBundle, error) {
	args := m.Called(target, bitSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*crypto.RSAKeyPairBundle), args.Error(1)
}

func (m *MockRSAProcessor) Transformation() crypto.Transformation {
	return crypto.TransformationRSAECBPKCS1
}
