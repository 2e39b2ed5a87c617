package auth

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashPassword returns the hex-encoded SHA-256 digest of the password.
// The digest is deterministic and unsalted so stored hashes and the
// credential cache file stay stable across runs; do not reuse this store
// outside a single-user desktop deployment without adding per-user salts.
func HashPassword(password string) string {
	h := sha256.Sum256([]byte(password))
	return hex.EncodeToString(h[:])
}

// CheckPassword validates a password against a stored digest.
func CheckPassword(password, stored string) bool {
	return HashPassword(password) == stored
}
