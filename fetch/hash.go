package fetch

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// ComputeHash computes a hash of the content using xxhash. Identical bodies
// always produce identical hashes, which makes the hash useful for change
// detection in logs and for idempotence checks in tests.
func ComputeHash(content string) string {
	h := xxhash.Sum64String(content)
	return fmt.Sprintf("%x", h)
}
