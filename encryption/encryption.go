// Package encryption seals small values, such as the visitor id carried in
// the site's cookie, with AES-256-GCM.
package encryption

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"os"
)

const (
	// MinKeyLength is the minimum length of the secret the key is derived from.
	MinKeyLength = 32
	// EnvKeyName is the environment variable NewManager reads the secret from.
	EnvKeyName = "PORTFOLIO_COOKIE_KEY"
)

var (
	ErrInvalidKeyLength  = errors.New("cookie key must be at least 32 bytes")
	ErrKeyNotFound       = errors.New("cookie key not found in environment variable " + EnvKeyName)
	ErrEncryptionFailed  = errors.New("encryption operation failed")
	ErrDecryptionFailed  = errors.New("decryption operation failed")
	ErrInvalidCiphertext = errors.New("invalid ciphertext: too short or malformed")
)

// Manager seals and opens values with a single AES-256-GCM key.
type Manager struct {
	key  []byte
	aead cipher.AEAD
}

// NewManager reads the secret from EnvKeyName.
func NewManager() (*Manager, error) {
	secret := os.Getenv(EnvKeyName)
	if secret == "" {
		return nil, ErrKeyNotFound
	}
	return NewManagerWithKey([]byte(secret))
}

// NewManagerWithKey derives the AES key from secret with SHA-256, so any
// secret of at least MinKeyLength bytes works.
func NewManagerWithKey(secret []byte) (*Manager, error) {
	if len(secret) < MinKeyLength {
		return nil, fmt.Errorf("%w: got %d bytes, need at least %d", ErrInvalidKeyLength, len(secret), MinKeyLength)
	}

	sum := sha256.Sum256(secret)
	block, err := aes.NewCipher(sum[:])
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create cipher: %v", ErrEncryptionFailed, err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create GCM: %v", ErrEncryptionFailed, err)
	}
	return &Manager{key: sum[:], aead: aead}, nil
}

// Seal encrypts plaintext and returns it base64url-encoded (no padding) with
// the nonce prepended, ready to be used as a cookie value.
func (m *Manager) Seal(plaintext string) (string, error) {
	if plaintext == "" {
		return "", nil
	}

	nonce := make([]byte, m.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("%w: failed to generate nonce: %v", ErrEncryptionFailed, err)
	}

	sealed := m.aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.RawURLEncoding.EncodeToString(sealed), nil
}

// Open reverses Seal. Tampered or foreign values fail with ErrDecryptionFailed.
func (m *Manager) Open(encoded string) (string, error) {
	if encoded == "" {
		return "", nil
	}

	sealed, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("%w: invalid base64: %v", ErrDecryptionFailed, err)
	}

	nonceSize := m.aead.NonceSize()
	if len(sealed) < nonceSize {
		return "", ErrInvalidCiphertext
	}

	nonce, ciphertext := sealed[:nonceSize], sealed[nonceSize:]
	plaintext, err := m.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecryptionFailed, err)
	}
	return string(plaintext), nil
}

// ValidateKey checks the environment secret without building a Manager.
func ValidateKey() error {
	secret := os.Getenv(EnvKeyName)
	if secret == "" {
		return ErrKeyNotFound
	}
	if len(secret) < MinKeyLength {
		return fmt.Errorf("%w: got %d bytes, need at least %d", ErrInvalidKeyLength, len(secret), MinKeyLength)
	}
	return nil
}
