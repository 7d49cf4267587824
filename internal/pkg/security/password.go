// Package security hashes and verifies passwords using PBKDF2-HMAC-SHA256
// with a self-describing digest format: {algorithm}${iterations}${salt}${digest}
// (salt and digest hex-encoded).
//
// Deprecated compatibility path: stored values without a "$" separator are
// compared as plaintext to keep pre-migration accounts working. Scheduled for
// removal once all accounts are rehashed.
package security

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	algorithm  = "pbkdf2"
	iterations = 310_000
	saltBytes  = 16
	keyLength  = 32
)

func derive(password string, salt []byte, iter int) []byte {
	return pbkdf2.Key([]byte(password), salt, iter, keyLength, sha256.New)
}

// Hash generates a fresh random salt and returns the encoded digest.
func Hash(password string) (string, error) {
	salt := make([]byte, saltBytes)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}
	digest := derive(password, salt, iterations)
	return fmt.Sprintf("%s$%d$%s$%s", algorithm, iterations, hex.EncodeToString(salt), hex.EncodeToString(digest)), nil
}

// Verify checks a plaintext password against a stored value. Comparison of
// the derived key is constant-time.
func Verify(password, stored string) bool {
	if stored == "" {
		return false
	}

	if !strings.Contains(stored, "$") {
		// Legacy plaintext account. Deprecated, see package doc.
		return subtle.ConstantTimeCompare([]byte(password), []byte(stored)) == 1
	}

	parts := strings.SplitN(stored, "$", 4)
	if len(parts) != 4 || parts[0] != algorithm {
		return false
	}

	iter, err := strconv.Atoi(parts[1])
	if err != nil || iter <= 0 {
		return false
	}
	salt, err := hex.DecodeString(parts[2])
	if err != nil {
		return false
	}
	expected, err := hex.DecodeString(parts[3])
	if err != nil {
		return false
	}

	candidate := derive(password, salt, iter)
	return hmac.Equal(candidate, expected)
}
