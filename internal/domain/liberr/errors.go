package liberr

import (
	"errors"
	"fmt"
)

// Kind discriminates the error variants.
type Kind string

const (
	// KindUnknown is reported by KindOf for errors that are not LibErrors.
	KindUnknown Kind = ""
	// KindMissingArgument means a required value was not supplied at all.
	KindMissingArgument Kind = "MissingArgument"
	// KindInvalidArgument means a value was supplied but violated a precondition.
	KindInvalidArgument Kind = "InvalidArgument"
	// KindCrypto means the underlying cryptographic primitive failed.
	KindCrypto Kind = "CryptoError"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingArgument matches every error of KindMissingArgument.
	ErrMissingArgument = errors.New("missing argument")

	// ErrInvalidArgument matches every error of KindInvalidArgument.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrCrypto matches every error of KindCrypto.
	ErrCrypto = errors.New("crypto error")
)

const (
	defaultMissingArgumentMessage = "required argument is missing"
	defaultInvalidArgumentMessage = "argument is invalid"
	defaultCryptoMessage          = "cryptographic operation failed"
)

// LibError is implemented by every error the processors return.
type LibError interface {
	error

	// Message returns the human readable message without the kind prefix.
	Message() string

	// KindName returns the stable discriminant of the error kind.
	KindName() string
}

// Error is the single concrete LibError. The kind field selects the variant.
type Error struct {
	kind    Kind
	message string
	cause   error
}

var _ LibError = (*Error)(nil)

func newError(kind Kind, message string, cause error) *Error {
	return &Error{kind: kind, message: message, cause: cause}
}

// NewMissingArgument returns a MissingArgument error with the given message.
func NewMissingArgument(message string) *Error {
	return newError(KindMissingArgument, message, nil)
}

// DefaultMissingArgument returns a MissingArgument error with the canned message.
func DefaultMissingArgument() *Error {
	return NewMissingArgument(defaultMissingArgumentMessage)
}

// NewInvalidArgument returns an InvalidArgument error with the given message.
func NewInvalidArgument(message string) *Error {
	return newError(KindInvalidArgument, message, nil)
}

// DefaultInvalidArgument returns an InvalidArgument error with the canned message.
func DefaultInvalidArgument() *Error {
	return NewInvalidArgument(defaultInvalidArgumentMessage)
}

// InvalidArgumentf formats an InvalidArgument message.
func InvalidArgumentf(format string, args ...interface{}) *Error {
	return NewInvalidArgument(fmt.Sprintf(format, args...))
}

// NewCrypto returns a CryptoError with the given message.
func NewCrypto(message string) *Error {
	return newError(KindCrypto, message, nil)
}

// DefaultCrypto returns a CryptoError with the canned message.
func DefaultCrypto() *Error {
	return NewCrypto(defaultCryptoMessage)
}

// WrapCrypto returns a CryptoError carrying the primitive's error as its cause.
func WrapCrypto(message string, cause error) *Error {
	return newError(KindCrypto, message, cause)
}

// WrapInvalidArgument returns an InvalidArgument error carrying a cause.
func WrapInvalidArgument(message string, cause error) *Error {
	return newError(KindInvalidArgument, message, cause)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.kind, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.kind, e.message)
}

// Message returns the message without the kind prefix or cause.
func (e *Error) Message() string {
	return e.message
}

// KindName returns the kind discriminant as a string.
func (e *Error) KindName() string {
	return string(e.kind)
}

// Kind returns the kind discriminant.
func (e *Error) Kind() Kind {
	return e.kind
}

// Unwrap returns the wrapped primitive error, if any.
func (e *Error) Unwrap() error {
	return e.cause
}

// Is reports whether target is the sentinel for this error's kind.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrMissingArgument:
		return e.kind == KindMissingArgument
	case ErrInvalidArgument:
		return e.kind == KindInvalidArgument
	case ErrCrypto:
		return e.kind == KindCrypto
	}
	return false
}

// KindOf returns the kind of the first LibError in err's chain.
func KindOf(err error) Kind {
	var libErr *Error
	if errors.As(err, &libErr) {
		return libErr.kind
	}
	return KindUnknown
}

// As returns the first LibError in err's chain.
func As(err error) (LibError, bool) {
	var libErr *Error
	if errors.As(err, &libErr) {
		return libErr, true
	}
	return nil, false
}
