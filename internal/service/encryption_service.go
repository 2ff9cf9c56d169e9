package service

import (
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
)

// ErrAuthentication is returned when a sealed value fails its integrity check.
var ErrAuthentication = errors.New("ciphertext failed authentication")

// XChaChaEncryptionService implements ports.EncryptionService using
// XChaCha20-Poly1305 with a process-wide 32-byte key.
type XChaChaEncryptionService struct {
	aead cipher.AEAD
}

// NewXChaChaEncryptionService creates the vault cipher. key must be 32 bytes.
func NewXChaChaEncryptionService(key []byte) (*XChaChaEncryptionService, error) {
	if len(key) != chacha20poly1305.KeySize {
		return nil, fmt.Errorf("vault key must be %d bytes, got %d", chacha20poly1305.KeySize, len(key))
	}
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("creating xchacha20-poly1305: %w", err)
	}
	return &XChaChaEncryptionService{aead: aead}, nil
}

// Encrypt seals plaintext under a fresh random 24-byte nonce.
// Returns base64(nonce ‖ ciphertext+tag).
func (s *XChaChaEncryptionService) Encrypt(plaintext string) (string, error) {
	nonce := make([]byte, s.aead.NonceSize(), s.aead.NonceSize()+len(plaintext)+s.aead.Overhead())
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("generating nonce: %w", err)
	}
	sealed := s.aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Decrypt opens a value produced by Encrypt. Any modification of the input
// yields ErrAuthentication.
func (s *XChaChaEncryptionService) Decrypt(encoded string) (string, error) {
	sealed, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("decoding ciphertext: %w", ErrAuthentication)
	}
	if len(sealed) < s.aead.NonceSize()+s.aead.Overhead() {
		return "", fmt.Errorf("ciphertext too short: %w", ErrAuthentication)
	}

	nonce, ciphertext := sealed[:s.aead.NonceSize()], sealed[s.aead.NonceSize():]
	plaintext, err := s.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", ErrAuthentication
	}
	return string(plaintext), nil
}
