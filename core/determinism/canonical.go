// Package determinism provides primitives for deterministic fingerprints:
// canonical serialization and content hashing. Evaluation results must be
// bit-for-bit reproducible, so all map iteration here is key-sorted.
package determinism

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"
)

// ContentHash is a SHA-256 hash for content integrity.
type ContentHash [32]byte

// ComputeHash computes a content hash from bytes.
func ComputeHash(data []byte) ContentHash {
	return sha256.Sum256(data)
}

// Hex returns the hash as a hex string.
func (h ContentHash) Hex() string {
	return hex.EncodeToString(h[:])
}

// String implements Stringer with a shortened form for logs.
func (h ContentHash) String() string {
	return h.Hex()[:16] + "..."
}

// SortedKeys returns a map's string keys in sorted order.
func SortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// CanonicalString serializes a field map as sorted "key=value" lines. Two
// maps with equal content always produce identical output, independent of
// insertion order.
func CanonicalString(fields map[string]string) string {
	var sb strings.Builder
	for _, k := range SortedKeys(fields) {
		sb.WriteString(k)
		sb.WriteByte('=')
		sb.WriteString(fields[k])
		sb.WriteByte('\n')
	}
	return sb.String()
}

// HashFields computes the content hash of a canonicalized field map.
func HashFields(fields map[string]string) ContentHash {
	return ComputeHash([]byte(CanonicalString(fields)))
}
