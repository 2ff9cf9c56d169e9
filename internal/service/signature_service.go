package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// SignaturePrefix precedes the hex digest in the processor's signature header.
const SignaturePrefix = "sha256="

// HMACSignatureService implements ports.SignatureService using HMAC-SHA256.
type HMACSignatureService struct{}

// NewHMACSignatureService creates a new HMAC-SHA256 signature service.
func NewHMACSignatureService() *HMACSignatureService {
	return &HMACSignatureService{}
}

// Sign returns "sha256=" + lowercase hex HMAC-SHA256(secret, payload).
func (s *HMACSignatureService) Sign(secret string, payload []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return SignaturePrefix + hex.EncodeToString(mac.Sum(nil))
}

// Verify checks a signature header against payload in constant time.
// The comparison is exact: a header differing in case is rejected.
func (s *HMACSignatureService) Verify(secret string, payload []byte, header string) bool {
	if secret == "" || !strings.HasPrefix(header, SignaturePrefix) {
		return false
	}
	expected := s.Sign(secret, payload)
	return hmac.Equal([]byte(expected[len(SignaturePrefix):]), []byte(header[len(SignaturePrefix):]))
}
