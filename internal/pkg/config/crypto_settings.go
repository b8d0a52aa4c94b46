package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/JoonHoSon/cryptoutil/internal/pkg/validators"
)

// SymmetricSettings selects the default AES key size in bits.
type SymmetricSettings struct {
	Algorithm string `yaml:"algorithm" env:"CRYPTOUTIL_AES_ALGORITHM" env-default:"AES" validate:"required,eq=AES"`
	KeySize   int    `yaml:"key_size" env:"CRYPTOUTIL_AES_KEY_SIZE" env-default:"128" validate:"keySizeValidation"`
}

// AsymmetricSettings selects the default RSA modulus size in bits.
type AsymmetricSettings struct {
	Algorithm string `yaml:"algorithm" env:"CRYPTOUTIL_RSA_ALGORITHM" env-default:"RSA" validate:"required,eq=RSA"`
	KeySize   int    `yaml:"key_size" env:"CRYPTOUTIL_RSA_KEY_SIZE" env-default:"2048" validate:"keySizeValidation"`
}

// CryptoSettings holds the defaults the CLI applies when a flag is not given.
type CryptoSettings struct {
	DigestAlgorithm string             `yaml:"digest_algorithm" env:"CRYPTOUTIL_DIGEST_ALGORITHM" env-default:"sha256" validate:"required,oneof=sha256 sha512"`
	Iterations      int                `yaml:"iterations" env:"CRYPTOUTIL_ITERATIONS" env-default:"1000" validate:"required,min=1"`
	Symmetric       SymmetricSettings  `yaml:"symmetric"`
	Asymmetric      AsymmetricSettings `yaml:"asymmetric"`
}

// Validate checks that all fields in CryptoSettings are valid
func (s *CryptoSettings) Validate() error {
	validate := validator.New()
	if err := validators.RegisterCustomValidations(validate); err != nil {
		return fmt.Errorf("failed to register custom validations: %w", err)
	}

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for CryptoSettings: %w", err)
	}

	return nil
}
