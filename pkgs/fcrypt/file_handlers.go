package fcrypt

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"filippo.io/age"
)

// Ext is appended to the name of every encrypted file.
const Ext = ".age"

// IsEncrypted reports whether path names an encrypted file.
func IsEncrypted(path string) bool {
	return strings.HasSuffix(path, Ext)
}

// EncryptInPlace encrypts <path> to <path>.age and removes the plaintext.
// It returns the path of the encrypted file.
func EncryptInPlace(path string, recipient age.Recipient) (string, error) {
	if IsEncrypted(path) {
		return "", fmt.Errorf("file %s is already encrypted", path)
	}

	outputPath := path + Ext
	if err := EncryptFile(path, outputPath, recipient); err != nil {
		return "", err
	}

	if err := os.Remove(path); err != nil {
		return "", fmt.Errorf("failed to remove plaintext %s: %w", path, err)
	}

	return outputPath, nil
}

// DecryptInPlace decrypts <name>.age to <name> and removes the encrypted file.
// It returns the path of the decrypted file.
func DecryptInPlace(path string, identity age.Identity) (string, error) {
	if !IsEncrypted(path) {
		return "", fmt.Errorf("file %s does not have %s extension", path, Ext)
	}

	outputPath := strings.TrimSuffix(path, Ext)
	if err := DecryptFile(path, outputPath, identity); err != nil {
		return "", err
	}

	if err := os.Remove(path); err != nil {
		return "", fmt.Errorf("failed to remove encrypted file %s: %w", path, err)
	}

	return outputPath, nil
}

// ReadFile returns the decrypted contents of an encrypted file.
func ReadFile(path string, identity age.Identity) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	var buf bytes.Buffer
	if err := DecryptReader(file, &buf, identity); err != nil {
		return nil, fmt.Errorf("failed to decrypt %s: %w", path, err)
	}

	return buf.Bytes(), nil
}
