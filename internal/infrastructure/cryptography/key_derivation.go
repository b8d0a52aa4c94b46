package cryptography

import (
	"crypto/md5" // #nosec G501
	"hash"

	"github.com/JoonHoSon/cryptoutil/internal/domain/crypto"
	"github.com/JoonHoSon/cryptoutil/internal/domain/liberr"
)

// bytesToKeyDeriver derives key and IV the way OpenSSL's EVP_BytesToKey does with MD5:
//
//	D_1 = MD5^n(secret || salt)
//	D_i = MD5^n(D_{i-1} || secret || salt)
//
// where MD5^n applies the digest n = iterations times. Blocks are concatenated
// until key length + 16 bytes are available.
type bytesToKeyDeriver struct {
	newHash func() hash.Hash
}

// NewKeyDeriver returns the MD5 based EVP_BytesToKey deriver.
func NewKeyDeriver() crypto.KeyDeriver {
	return &bytesToKeyDeriver{newHash: md5.New}
}

// DeriveKeyIV validates its inputs and derives key and IV.
// iterations is the number of digest rounds applied to each output block,
// not the total number of rounds across all blocks.
func (d *bytesToKeyDeriver) DeriveKeyIV(strength crypto.CipherStrength, secret, salt []byte, iterations int) ([]byte, []byte, error) {
	if err := validateDerivationInput(strength, secret, salt, iterations); err != nil {
		return nil, nil, err
	}

	keyLen := strength.KeySize()
	material, err := d.bytesToKey(secret, salt, iterations, keyLen+crypto.IVSize)
	if err != nil {
		return nil, nil, liberr.WrapCrypto("failed to derive key and IV", err)
	}

	key := material[:keyLen:keyLen]
	iv := material[keyLen : keyLen+crypto.IVSize : keyLen+crypto.IVSize]
	return key, iv, nil
}

func (d *bytesToKeyDeriver) bytesToKey(secret, salt []byte, iterations, size int) ([]byte, error) {
	material := make([]byte, 0, size+md5.Size)
	var prev []byte

	for len(material) < size {
		h := d.newHash()
		for _, part := range [][]byte{prev, secret, salt} {
			if _, err := h.Write(part); err != nil {
				return nil, err
			}
		}
		block := h.Sum(nil)

		for i := 1; i < iterations; i++ {
			h.Reset()
			if _, err := h.Write(block); err != nil {
				return nil, err
			}
			block = h.Sum(block[:0])
		}

		material = append(material, block...)
		prev = block
	}

	return material[:size], nil
}

func validateDerivationInput(strength crypto.CipherStrength, secret, salt []byte, iterations int) error {
	if !strength.IsValid() {
		return liberr.InvalidArgumentf("unsupported cipher strength: %s", strength)
	}
	if len(secret) == 0 {
		return liberr.NewInvalidArgument("secret is empty")
	}
	if len(salt) != crypto.SaltSize {
		return liberr.InvalidArgumentf("salt must be exactly %d bytes, got %d", crypto.SaltSize, len(salt))
	}
	if iterations < 1 {
		return liberr.InvalidArgumentf("iteration count must be positive, got %d", iterations)
	}
	return nil
}
