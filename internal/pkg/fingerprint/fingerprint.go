package fingerprint

import (
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// Size is the digest length in bytes
const Size = 16

// Of returns a short unkeyed digest identifying a submission.
// Parts are trimmed, lowercased and joined with a unit separator so
// ("ab", "c") and ("a", "bc") differ.
func Of(parts ...string) string {
	normalized := make([]string, len(parts))
	for i, p := range parts {
		normalized[i] = strings.ToLower(strings.TrimSpace(p))
	}

	h, err := blake2b.New(Size, nil)
	if err != nil {
		// only fails for invalid sizes or keys
		panic(err)
	}
	h.Write([]byte(strings.Join(normalized, "\x1f")))
	return hex.EncodeToString(h.Sum(nil))
}
