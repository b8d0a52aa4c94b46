package crypto

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/JoonHoSon/cryptoutil/internal/pkg/validators"
)

// SymmetricEncryptionResult bundles everything besides the secret and iteration
// count that is needed to decrypt a password-based AES ciphertext later.
type SymmetricEncryptionResult struct {
	Salt       []byte
	IV         []byte
	Ciphertext []byte
}

// RSAKeyPairBundle holds a freshly generated RSA key pair in PEM form together
// with the raw big-endian modulus and exponents. Ciphertext is only set by
// EncryptWithFreshKey.
type RSAKeyPairBundle struct {
	PublicKeyPEM    []byte
	PrivateKeyPEM   []byte
	PublicModulus   []byte
	PublicExponent  []byte
	PrivateModulus  []byte
	PrivateExponent []byte
	Ciphertext      []byte
}

// SymmetricOptions carries the tunable parameters of a password-based AES operation.
type SymmetricOptions struct {
	Strength   CipherStrength `mapstructure:"strength" validate:"validenum"`
	Salt       []byte         `mapstructure:"salt" validate:"len=8"`
	Iterations int            `mapstructure:"iterations" validate:"required,min=1"`
}

// Validate for validating SymmetricOptions struct
func (o *SymmetricOptions) Validate() error {
	return validateStruct(o)
}

// RSAOptions carries the tunable parameters of RSA key generation.
type RSAOptions struct {
	BitSize RSABitSize `mapstructure:"bit_size" validate:"validenum"`
}

// Validate for validating RSAOptions struct
func (o *RSAOptions) Validate() error {
	return validateStruct(o)
}

func validateStruct(s interface{}) error {
	err := newValidator().Struct(s)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}

func newValidator() *validator.Validate {
	validate := validator.New()
	if err := validators.RegisterCustomValidations(validate); err != nil {
		panic(fmt.Sprintf("failed to register custom validations: %v", err))
	}
	return validate
}
