package service

import (
	"crypto/rand"
	"fmt"
	"time"
)

// newEntryID returns a fresh 24-hex-char identifier for nested entries
// (experience, education, comments) and new documents. Generated ids never
// collide with owner ids in practice and are distinct per call.
func newEntryID() string {
	b := make([]byte, 12)
	if _, err := rand.Read(b); err != nil {
		// fallback: use current nanoseconds
		return fmt.Sprintf("%024x", time.Now().UnixNano())
	}
	return fmt.Sprintf("%x", b)
}
