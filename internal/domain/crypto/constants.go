package crypto

import (
	"fmt"
	"strconv"
	"strings"
)

// DigestAlgorithm selects the digest width used by the hash processor.
type DigestAlgorithm int

const (
	// SHA256 produces 32 byte digests.
	SHA256 DigestAlgorithm = iota + 1
	// SHA512 produces 64 byte digests.
	SHA512
)

var digestAlgorithms = map[DigestAlgorithm]struct {
	name string
	size int
}{
	SHA256: {"SHA-256", 32},
	SHA512: {"SHA-512", 64},
}

// Size returns the digest length in bytes, or 0 for an unknown algorithm.
func (a DigestAlgorithm) Size() int {
	return digestAlgorithms[a].size
}

// IsValid reports whether a is a supported algorithm.
func (a DigestAlgorithm) IsValid() bool {
	_, ok := digestAlgorithms[a]
	return ok
}

func (a DigestAlgorithm) String() string {
	if d, ok := digestAlgorithms[a]; ok {
		return d.name
	}
	return fmt.Sprintf("DigestAlgorithm(%d)", int(a))
}

// ParseDigestAlgorithm accepts "sha256", "SHA-256", "sha512" and "SHA-512".
func ParseDigestAlgorithm(s string) (DigestAlgorithm, error) {
	switch normalize(s) {
	case "sha256":
		return SHA256, nil
	case "sha512":
		return SHA512, nil
	}
	return 0, fmt.Errorf("unsupported digest algorithm: %q", s)
}

// CipherStrength selects the AES key length for CBC mode.
type CipherStrength int

const (
	// AES128 uses a 16 byte key.
	AES128 CipherStrength = iota + 1
	// AES256 uses a 32 byte key.
	AES256
)

// AESKeySize128 is the 128-bit AES key size in bytes
const AESKeySize128 = 16

// AESKeySize256 is the 256-bit AES key size in bytes
const AESKeySize256 = 32

// AESBlockSize is the AES block size in bytes, independent of key size
const AESBlockSize = 16

// IVSize is the CBC initialization vector size in bytes
const IVSize = 16

// SaltSize is the mandatory salt length for key derivation
const SaltSize = 8

// KeySize returns the key length in bytes, or 0 for an unknown strength.
func (s CipherStrength) KeySize() int {
	switch s {
	case AES128:
		return AESKeySize128
	case AES256:
		return AESKeySize256
	}
	return 0
}

// IsValid reports whether s is a supported strength.
func (s CipherStrength) IsValid() bool {
	return s.KeySize() != 0
}

func (s CipherStrength) String() string {
	switch s {
	case AES128:
		return "AES-128"
	case AES256:
		return "AES-256"
	}
	return fmt.Sprintf("CipherStrength(%d)", int(s))
}

// ParseCipherStrength accepts "aes128", "AES-128", "aes256", "AES-256" and the bit sizes "128", "256".
func ParseCipherStrength(s string) (CipherStrength, error) {
	switch strings.TrimPrefix(normalize(s), "aes") {
	case "128":
		return AES128, nil
	case "256":
		return AES256, nil
	}
	return 0, fmt.Errorf("unsupported cipher strength: %q", s)
}

// RSABitSize is the modulus size of generated RSA keys.
type RSABitSize int

const (
	RSA1024 RSABitSize = 1024
	RSA2048 RSABitSize = 2048
	RSA4096 RSABitSize = 4096
	RSA8192 RSABitSize = 8192
)

// rsaCipherLengths maps each modulus size to its PKCS#1 v1.5 ciphertext length.
var rsaCipherLengths = map[RSABitSize]int{
	RSA1024: 128,
	RSA2048: 256,
	RSA4096: 512,
	RSA8192: 1024,
}

// PKCS1v15Overhead is the number of padding bytes PKCS#1 v1.5 encryption reserves.
const PKCS1v15Overhead = 11

// CipherLength returns the ciphertext length produced by a key of this size, or 0 if unsupported.
func (b RSABitSize) CipherLength() int {
	return rsaCipherLengths[b]
}

// MaxPlaintextLength returns the largest plaintext a single PKCS#1 v1.5 block can carry.
func (b RSABitSize) MaxPlaintextLength() int {
	if l := b.CipherLength(); l > 0 {
		return l - PKCS1v15Overhead
	}
	return 0
}

// IsValid reports whether b is a supported size.
func (b RSABitSize) IsValid() bool {
	_, ok := rsaCipherLengths[b]
	return ok
}

func (b RSABitSize) String() string {
	return fmt.Sprintf("RSA-%d", int(b))
}

// ParseRSABitSize accepts "2048", "rsa2048" and "RSA-2048".
func ParseRSABitSize(s string) (RSABitSize, error) {
	bits, err := strconv.Atoi(strings.TrimPrefix(normalize(s), "rsa"))
	if err != nil {
		return 0, fmt.Errorf("unsupported RSA bit size: %q", s)
	}
	size := RSABitSize(bits)
	if !size.IsValid() {
		return 0, fmt.Errorf("unsupported RSA bit size: %q", s)
	}
	return size, nil
}

// Transformation names the cipher/mode/padding triple a processor applies.
type Transformation string

const (
	// TransformationAESCBCPKCS5 is AES in CBC mode with PKCS#5/PKCS#7 padding.
	TransformationAESCBCPKCS5 Transformation = "AES/CBC/PKCS5Padding"
	// TransformationRSAECBPKCS1 is RSA with PKCS#1 v1.5 encryption padding.
	TransformationRSAECBPKCS1 Transformation = "RSA/ECB/PKCS1Padding"
)

func normalize(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "")
}
