package crypto

// HashProcessor computes salted message digests.
// The salt is appended after the target in a single pass; this is neither HMAC nor a double digest.
type HashProcessor interface {
	// Digest hashes target followed by salt. A nil or empty salt is ignored.
	// An empty target fails with an InvalidArgument error.
	Digest(algorithm DigestAlgorithm, target, salt []byte) ([]byte, error)

	// DigestHex returns the lowercase hex encoding of Digest.
	DigestHex(algorithm DigestAlgorithm, target, salt []byte) (string, error)

	// DigestString hashes an optional string target. A nil target fails with a
	// MissingArgument error, an empty one with an InvalidArgument error.
	DigestString(algorithm DigestAlgorithm, target, salt *string) ([]byte, error)
}

// KeyDeriver derives a symmetric key and IV from a secret and an 8 byte salt.
type KeyDeriver interface {
	// DeriveKeyIV returns a key of strength.KeySize() bytes and a 16 byte IV.
	// The result is deterministic for identical inputs.
	DeriveKeyIV(strength CipherStrength, secret, salt []byte, iterations int) (key, iv []byte, err error)
}

// AESProcessor handles password-based AES encryption in CBC mode with PKCS#5 padding.
// It provides confidentiality only; ciphertexts carry no integrity tag.
type AESProcessor interface {
	// Encrypt derives key and IV from secret, salt and iterations and encrypts target.
	// Salt is mandatory and must be exactly 8 bytes.
	Encrypt(strength CipherStrength, target, secret, salt []byte, iterations int) (*SymmetricEncryptionResult, error)

	// Decrypt re-derives the key from secret, salt and iterations and decrypts target with the supplied IV.
	// A nil target fails with a MissingArgument error, an empty one with an InvalidArgument error.
	Decrypt(strength CipherStrength, target, secret, iv, salt []byte, iterations int) ([]byte, error)

	// Transformation reports the cipher/mode/padding triple.
	Transformation() Transformation
}

// RSAProcessor handles RSA key generation and PKCS#1 v1.5 encryption.
// Key generation at 4096 or 8192 bits is CPU bound and may take seconds.
type RSAProcessor interface {
	// GenerateKeyPair generates a fresh key pair and returns it PEM encoded.
	GenerateKeyPair(bitSize RSABitSize) (*RSAKeyPairBundle, error)

	// EncryptWithKey encrypts target with a PEM encoded public key.
	// The ciphertext length always equals the modulus size in bytes.
	EncryptWithKey(target, publicKeyPEM []byte) ([]byte, error)

	// DecryptWithKey decrypts target with a PEM encoded private key and returns
	// exactly the plaintext recovered from the padding.
	DecryptWithKey(target, privateKeyPEM []byte) ([]byte, error)

	// EncryptWithFreshKey generates a new key pair, encrypts target with it and
	// returns the keys together with the ciphertext.
	EncryptWithFreshKey(target []byte, bitSize RSABitSize) (*RSAKeyPairBundle, error)

	// Transformation reports the cipher/mode/padding triple.
	Transformation() Transformation
}
