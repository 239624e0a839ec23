package usercenter

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"

	"golang.org/x/crypto/pbkdf2"
)

// HashSecret is the system-wide static salt mixed into every digest.
// It is shared by the whole deployment rather than per-user so the
// digest stays deterministic: verification is re-hash and compare.
// Override it once at startup, before any hash is issued.
var HashSecret = "usercenter"

const (
	hashIterations = 10_000
	hashKeyLength  = 32
)

// HashPassword will generate a password digest. The plaintext is never
// logged or persisted.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", ErrNoEmptyPassword
	}

	key := pbkdf2.Key([]byte(password), []byte(HashSecret), hashIterations, hashKeyLength, sha256.New)
	return hex.EncodeToString(key), nil
}

// ComparePasswordAndHash will validate the given cleartext password
// against the stored digest.
func ComparePasswordAndHash(password, hash string) error {
	digest, err := HashPassword(password)
	if err != nil {
		return err
	}

	if subtle.ConstantTimeCompare([]byte(digest), []byte(hash)) != 1 {
		return ErrInvalidCredentials
	}
	return nil
}
