package detect

import (
	"fmt"

	xxhash "github.com/cespare/xxhash/v2"
)

const maskMarker = "****"

// Mask hides a secret, keeping only its last four characters visible. An
// empty secret maps to the bare mask placeholder.
func Mask(secret string) string {
	if secret == "" {
		return maskMarker
	}
	tail := secret
	if len(secret) > 4 {
		tail = secret[len(secret)-4:]
	}
	return maskMarker + tail
}

// HashSecret returns a stable 16-hex-digit digest of the raw secret. The
// digest lets consumers correlate occurrences of the same value without
// ever carrying the value itself.
func HashSecret(secret string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(secret))
}
