//go:build unit
// +build unit

package liberr

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		kind     Kind
		message  string
		sentinel error
	}{
		{"missing argument", NewMissingArgument("target is nil"), KindMissingArgument, "target is nil", ErrMissingArgument},
		{"default missing argument", DefaultMissingArgument(), KindMissingArgument, defaultMissingArgumentMessage, ErrMissingArgument},
		{"invalid argument", NewInvalidArgument("salt must be 8 bytes"), KindInvalidArgument, "salt must be 8 bytes", ErrInvalidArgument},
		{"default invalid argument", DefaultInvalidArgument(), KindInvalidArgument, defaultInvalidArgumentMessage, ErrInvalidArgument},
		{"formatted invalid argument", InvalidArgumentf("got %d bytes", 4), KindInvalidArgument, "got 4 bytes", ErrInvalidArgument},
		{"crypto", NewCrypto("cipher init failed"), KindCrypto, "cipher init failed", ErrCrypto},
		{"default crypto", DefaultCrypto(), KindCrypto, defaultCryptoMessage, ErrCrypto},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.err.Kind())
			assert.Equal(t, string(tt.kind), tt.err.KindName())
			assert.Equal(t, tt.message, tt.err.Message())
			assert.Contains(t, tt.err.Error(), tt.message)
			assert.True(t, errors.Is(tt.err, tt.sentinel))
		})
	}
}

func TestIsDoesNotCrossKinds(t *testing.T) {
	err := NewInvalidArgument("empty target")

	assert.False(t, errors.Is(err, ErrMissingArgument))
	assert.False(t, errors.Is(err, ErrCrypto))
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}

func TestWrapCryptoKeepsCause(t *testing.T) {
	err := WrapCrypto("decryption failed", io.ErrUnexpectedEOF)

	assert.True(t, errors.Is(err, ErrCrypto))
	assert.True(t, errors.Is(err, io.ErrUnexpectedEOF))
	assert.Equal(t, "decryption failed", err.Message())
	assert.Contains(t, err.Error(), io.ErrUnexpectedEOF.Error())
}

func TestKindOf(t *testing.T) {
	wrapped := fmt.Errorf("cli: %w", NewMissingArgument("no input"))

	assert.Equal(t, KindMissingArgument, KindOf(wrapped))
	assert.Equal(t, KindUnknown, KindOf(errors.New("plain")))
	assert.Equal(t, KindUnknown, KindOf(nil))
}

func TestAs(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", WrapInvalidArgument("bad padding", io.EOF))

	libErr, ok := As(wrapped)
	require.True(t, ok)
	assert.Equal(t, "InvalidArgument", libErr.KindName())
	assert.Equal(t, "bad padding", libErr.Message())

	_, ok = As(errors.New("plain"))
	assert.False(t, ok)
}
