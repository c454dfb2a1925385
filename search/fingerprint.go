package search

import (
	"crypto/sha256"
	"encoding/hex"
)

// computeFingerprint generates a stable hash of the document slice.
// The fingerprint changes when document content changes, enabling
// efficient cache invalidation for the full-text index.
func computeFingerprint(docs []Doc) string {
	h := sha256.New()

	for _, doc := range docs {
		h.Write([]byte(doc.ID))
		h.Write([]byte{0}) // separator
		h.Write([]byte(doc.Name))
		h.Write([]byte{0})
		h.Write([]byte(doc.Kind))
		h.Write([]byte{0})
		h.Write([]byte(doc.Parent))
		h.Write([]byte{0})
		h.Write([]byte(doc.Type))
		h.Write([]byte{0})
		h.Write([]byte(doc.Description))
		h.Write([]byte{0})
	}

	return hex.EncodeToString(h.Sum(nil))
}
