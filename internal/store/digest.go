package store

import (
	"crypto/sha256"
	"encoding/hex"

	"golang.org/x/text/unicode/norm"
)

// DomainInput prefixes every input digest. The version suffix allows the
// algorithm to change without colliding with old digests.
const DomainInput = "aoc/input/v1"

// Digest fingerprints puzzle input lines.
// Format: SHA256(domain + 0x00 + NFC(line1) + "\n" + NFC(line2) ...)
//
// Lines are NFC normalized so visually identical inputs saved by different
// editors share a digest.
func Digest(lines []string) string {
	h := sha256.New()
	h.Write([]byte(DomainInput))
	h.Write([]byte{0x00})
	for i, line := range lines {
		if i > 0 {
			h.Write([]byte{'\n'})
		}
		h.Write([]byte(norm.NFC.String(line)))
	}
	return hex.EncodeToString(h.Sum(nil))
}
