package cryptography

import (
	"bytes"
	"errors"
)

var (
	errInvalidPadding   = errors.New("invalid PKCS7 padding")
	errInvalidBlockData = errors.New("data is not a multiple of the block size")
)

// pkcs7Pad always appends between 1 and blockSize bytes.
func pkcs7Pad(data []byte, blockSize int) []byte {
	paddingSize := blockSize - len(data)%blockSize
	padded := make([]byte, len(data), len(data)+paddingSize)
	copy(padded, data)
	return append(padded, bytes.Repeat([]byte{byte(paddingSize)}, paddingSize)...)
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, errInvalidBlockData
	}

	paddingSize := int(data[len(data)-1])
	if paddingSize == 0 || paddingSize > blockSize {
		return nil, errInvalidPadding
	}
	for i := 1; i <= paddingSize; i++ {
		if data[len(data)-i] != byte(paddingSize) {
			return nil, errInvalidPadding
		}
	}
	return data[:len(data)-paddingSize], nil
}
