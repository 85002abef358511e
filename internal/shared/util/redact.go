package util

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// EmailFingerprint returns a short stable hash of email for log correlation
// without writing the address itself. Empty input yields "".
func EmailFingerprint(email string) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	if normalized == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(sum[:])[:12]
}
