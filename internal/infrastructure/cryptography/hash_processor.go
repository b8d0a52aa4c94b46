package cryptography

import (
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"hash"

	"github.com/JoonHoSon/cryptoutil/internal/domain/crypto"
	"github.com/JoonHoSon/cryptoutil/internal/domain/liberr"
	"github.com/JoonHoSon/cryptoutil/internal/pkg/logger"
)

// digestConstructors is read-only after package initialization.
var digestConstructors = map[crypto.DigestAlgorithm]func() hash.Hash{
	crypto.SHA256: sha256.New,
	crypto.SHA512: sha512.New,
}

// hashProcessor struct that implements the HashProcessor interface
type hashProcessor struct {
	logger logger.Logger
}

// NewHashProcessor creates and returns a new instance of hashProcessor
func NewHashProcessor(logger logger.Logger) (crypto.HashProcessor, error) {
	return &hashProcessor{
		logger: logger,
	}, nil
}

// Digest hashes target followed by salt in a single pass.
func (h *hashProcessor) Digest(algorithm crypto.DigestAlgorithm, target, salt []byte) ([]byte, error) {
	newHash, ok := digestConstructors[algorithm]
	if !ok {
		return nil, liberr.InvalidArgumentf("unsupported digest algorithm: %s", algorithm)
	}
	if len(target) == 0 {
		return nil, liberr.NewInvalidArgument("hash target is empty")
	}

	d := newHash()
	if _, err := d.Write(target); err != nil {
		return nil, liberr.WrapCrypto("failed to hash target", err)
	}
	if len(salt) > 0 {
		if _, err := d.Write(salt); err != nil {
			return nil, liberr.WrapCrypto("failed to hash salt", err)
		}
	}

	h.logger.Debug("Computed", algorithm, "digest")
	return d.Sum(nil), nil
}

// DigestHex returns the lowercase hex encoding of Digest.
func (h *hashProcessor) DigestHex(algorithm crypto.DigestAlgorithm, target, salt []byte) (string, error) {
	digest, err := h.Digest(algorithm, target, salt)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(digest), nil
}

// DigestString hashes an optional string target with an optional string salt.
func (h *hashProcessor) DigestString(algorithm crypto.DigestAlgorithm, target, salt *string) ([]byte, error) {
	if target == nil {
		return nil, liberr.NewMissingArgument("hash target is not specified")
	}
	if *target == "" {
		return nil, liberr.NewInvalidArgument("hash target is an empty string")
	}

	var saltBytes []byte
	if salt != nil {
		saltBytes = []byte(*salt)
	}
	return h.Digest(algorithm, []byte(*target), saltBytes)
}
