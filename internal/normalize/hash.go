package normalize

import (
	"crypto/sha256"
	"fmt"
	"io"
	"os"
	"sort"
)

// FileHash computes the hex-encoded SHA-256 of the file at path.
func FileHash(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open file for hash: %w", err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("hash file: %w", err)
	}
	return fmt.Sprintf("%x", h.Sum(nil)), nil
}

// RecordHash computes a stable SHA-256 over a record's content. Fields are
// sorted by name, values rendered as text, and both joined with null
// separators so the hash is independent of map iteration order.
func RecordHash(rec map[string]any) []byte {
	keys := make([]string, 0, len(rec))
	for k := range rec {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	h := sha256.New()
	for _, k := range keys {
		h.Write([]byte(k))
		h.Write([]byte{0})
		fmt.Fprint(h, rec[k])
		h.Write([]byte{0})
	}
	return h.Sum(nil)
}
