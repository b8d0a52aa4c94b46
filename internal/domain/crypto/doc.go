// Package crypto defines the algorithm selectors, result models and processor contracts
// for salted hashing, password-based AES-CBC encryption and RSA PKCS#1 v1.5 encryption.
package crypto
