package cryptography

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"math/big"

	"github.com/JoonHoSon/cryptoutil/internal/domain/crypto"
	"github.com/JoonHoSon/cryptoutil/internal/domain/liberr"
	"github.com/JoonHoSon/cryptoutil/internal/pkg/logger"
)

// PEM block types written by the processor.
const (
	pemTypeRSAPrivateKey = "RSA PRIVATE KEY"
	pemTypePublicKey     = "PUBLIC KEY"
	pemTypeRSAPublicKey  = "RSA PUBLIC KEY"
)

// rsaProcessor struct that implements the RSAProcessor interface
type rsaProcessor struct {
	logger logger.Logger
}

// NewRSAProcessor creates and returns a new instance of rsaProcessor
func NewRSAProcessor(logger logger.Logger) (crypto.RSAProcessor, error) {
	return &rsaProcessor{
		logger: logger,
	}, nil
}

// GenerateKeyPair generates an RSA key pair and exports it as PKCS#1 private / PKIX public PEM.
func (r *rsaProcessor) GenerateKeyPair(bitSize crypto.RSABitSize) (*crypto.RSAKeyPairBundle, error) {
	if !bitSize.IsValid() {
		return nil, liberr.InvalidArgumentf("unsupported RSA bit size: %d", int(bitSize))
	}

	privateKey, err := rsa.GenerateKey(rand.Reader, int(bitSize))
	if err != nil {
		return nil, liberr.WrapCrypto("failed to generate RSA keys", err)
	}

	bundle, err := newKeyPairBundle(privateKey)
	if err != nil {
		return nil, err
	}

	r.logger.Info("Generated", bitSize, "key pair")
	return bundle, nil
}

// EncryptWithKey encrypts target with a single PKCS#1 v1.5 block.
// The ciphertext is always exactly as long as the modulus.
func (r *rsaProcessor) EncryptWithKey(target, publicKeyPEM []byte) ([]byte, error) {
	if target == nil {
		return nil, liberr.NewMissingArgument("encryption target is not specified")
	}
	if len(publicKeyPEM) == 0 {
		return nil, liberr.NewMissingArgument("public key is not specified")
	}
	if len(target) == 0 {
		return nil, liberr.NewInvalidArgument("encryption target is empty")
	}

	publicKey, err := ParsePublicKeyPEM(publicKeyPEM)
	if err != nil {
		return nil, err
	}

	ciphertext, err := rsa.EncryptPKCS1v15(rand.Reader, publicKey, target)
	if err != nil {
		if errors.Is(err, rsa.ErrMessageTooLong) {
			return nil, liberr.WrapCrypto(
				fmt.Sprintf("plaintext of %d bytes exceeds the %d byte limit", len(target), publicKey.Size()-crypto.PKCS1v15Overhead), err)
		}
		return nil, liberr.WrapCrypto("failed to encrypt data", err)
	}

	r.logger.Info("RSA encryption succeeded")
	return ciphertext, nil
}

// DecryptWithKey decrypts a single PKCS#1 v1.5 block. The result holds only the
// recovered plaintext, never padding or unused buffer space.
func (r *rsaProcessor) DecryptWithKey(target, privateKeyPEM []byte) ([]byte, error) {
	if target == nil {
		return nil, liberr.NewMissingArgument("decryption target is not specified")
	}
	if len(privateKeyPEM) == 0 {
		return nil, liberr.NewMissingArgument("private key is not specified")
	}
	if len(target) == 0 {
		return nil, liberr.NewInvalidArgument("decryption target is empty")
	}

	privateKey, err := ParsePrivateKeyPEM(privateKeyPEM)
	if err != nil {
		return nil, err
	}

	plaintext, err := rsa.DecryptPKCS1v15(rand.Reader, privateKey, target)
	if err != nil {
		return nil, liberr.WrapCrypto("failed to decrypt data", err)
	}

	r.logger.Info("RSA decryption succeeded")
	return plaintext, nil
}

// EncryptWithFreshKey generates a key pair, encrypts target with it and returns both.
func (r *rsaProcessor) EncryptWithFreshKey(target []byte, bitSize crypto.RSABitSize) (*crypto.RSAKeyPairBundle, error) {
	if target == nil {
		return nil, liberr.NewMissingArgument("encryption target is not specified")
	}
	if len(target) == 0 {
		return nil, liberr.NewInvalidArgument("encryption target is empty")
	}

	bundle, err := r.GenerateKeyPair(bitSize)
	if err != nil {
		return nil, err
	}

	ciphertext, err := r.EncryptWithKey(target, bundle.PublicKeyPEM)
	if err != nil {
		return nil, err
	}

	bundle.Ciphertext = ciphertext
	return bundle, nil
}

// Transformation reports RSA/ECB/PKCS1Padding.
func (r *rsaProcessor) Transformation() crypto.Transformation {
	return crypto.TransformationRSAECBPKCS1
}

func newKeyPairBundle(privateKey *rsa.PrivateKey) (*crypto.RSAKeyPairBundle, error) {
	publicKey := &privateKey.PublicKey

	pubKeyBytes, err := x509.MarshalPKIXPublicKey(publicKey)
	if err != nil {
		return nil, liberr.WrapCrypto("failed to marshal public key", err)
	}

	return &crypto.RSAKeyPairBundle{
		PublicKeyPEM: pem.EncodeToMemory(&pem.Block{
			Type:  pemTypePublicKey,
			Bytes: pubKeyBytes,
		}),
		PrivateKeyPEM: pem.EncodeToMemory(&pem.Block{
			Type:  pemTypeRSAPrivateKey,
			Bytes: x509.MarshalPKCS1PrivateKey(privateKey),
		}),
		PublicModulus:   publicKey.N.Bytes(),
		PublicExponent:  big.NewInt(int64(publicKey.E)).Bytes(),
		PrivateModulus:  privateKey.N.Bytes(),
		PrivateExponent: privateKey.D.Bytes(),
	}, nil
}

// ParsePublicKeyPEM reads an RSA public key in PKIX or PKCS#1 form.
func ParsePublicKeyPEM(data []byte) (*rsa.PublicKey, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, liberr.NewCrypto("failed to parse PEM block containing the public key")
	}

	if block.Type == pemTypeRSAPublicKey {
		publicKey, err := x509.ParsePKCS1PublicKey(block.Bytes)
		if err != nil {
			return nil, liberr.WrapCrypto("unable to parse PKCS#1 public key", err)
		}
		return publicKey, nil
	}

	pubKeyInterface, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, liberr.WrapCrypto("unable to parse public key in either PKCS#1 or PKIX format", err)
	}

	publicKey, ok := pubKeyInterface.(*rsa.PublicKey)
	if !ok {
		return nil, liberr.NewCrypto("public key is not of type RSA")
	}

	return publicKey, nil
}

// ParsePrivateKeyPEM reads an RSA private key in PKCS#1 or PKCS#8 form.
func ParsePrivateKeyPEM(data []byte) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, liberr.NewCrypto("failed to parse PEM block containing the private key")
	}

	privateKey, err := x509.ParsePKCS1PrivateKey(block.Bytes)
	if err == nil {
		return privateKey, nil
	}

	privateKeyInterface, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, liberr.WrapCrypto("unable to parse private key in either PKCS#1 or PKCS#8 format", err)
	}

	privateKey, ok := privateKeyInterface.(*rsa.PrivateKey)
	if !ok {
		return nil, liberr.NewCrypto("private key is not of type RSA")
	}

	return privateKey, nil
}
