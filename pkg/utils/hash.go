package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Fingerprint returns a sha256 hex digest of the printed values.
// Values need a stable %#v representation (no maps, no pointers).
func Fingerprint(values ...any) string {
	hasher := sha256.New()
	for _, v := range values {
		fmt.Fprintf(hasher, "%#v|", v)
	}
	return hex.EncodeToString(hasher.Sum(nil))
}
