package validators

import (
	"github.com/go-playground/validator/v10"
)

// Enum is implemented by the algorithm selector types.
type Enum interface {
	IsValid() bool
}

// EnumValidation validates that a selector field (digest algorithm, cipher strength, RSA bit size) holds a supported value.
func EnumValidation(fl validator.FieldLevel) bool {
	field := fl.Field()
	if !field.CanInterface() {
		return false
	}
	enum, ok := field.Interface().(Enum)
	if !ok {
		return false
	}
	return enum.IsValid()
}

// KeySizeValidation validates the key size in bits based on the sibling Algorithm field (AES or RSA).
func KeySizeValidation(fl validator.FieldLevel) bool {
	algorithm := fl.Parent().FieldByName("Algorithm").String()
	keySize := fl.Field().Int()

	switch algorithm {
	case "AES":
		return keySize == 128 || keySize == 256
	case "RSA":
		return keySize == 1024 || keySize == 2048 || keySize == 4096 || keySize == 8192
	default:
		return false
	}
}

// RegisterCustomValidations registers the "validenum" and "keySizeValidation" tags.
func RegisterCustomValidations(validate *validator.Validate) error {
	if err := validate.RegisterValidation("validenum", EnumValidation); err != nil {
		return err
	}
	return validate.RegisterValidation("keySizeValidation", KeySizeValidation)
}
