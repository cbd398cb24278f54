package generator

import (
	"crypto/sha256"
	"fmt"
	"hash"
)

// ComputeChecksum computes a SHA256 checksum for the given data, formatted the
// same way WriteFile reports the checksum of a file it wrote
func ComputeChecksum(data []byte) string {
	h := sha256.New()
	h.Write(data)
	return hexDigest(h)
}

func hexDigest(h hash.Hash) string {
	return fmt.Sprintf("%x", h.Sum(nil))
}
