// Package cryptography implements the processors declared in internal/domain/crypto
// on top of the Go standard library primitives.
//
// Every processor validates its arguments before touching a primitive and
// returns liberr errors: MissingArgument and InvalidArgument for caller misuse,
// CryptoError when the primitive itself fails. Nothing is retried.
package cryptography
