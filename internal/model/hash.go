package model

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math/bits"
)

// HashSize is the digest width in bytes.
const HashSize = 32

// Hash is a 256-bit block digest. The zero value is the genesis
// previous-hash sentinel.
type Hash [HashSize]byte

func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

// LeadingZeroBits counts the leading zero bits of the digest, the measure
// the difficulty target is expressed in.
func (h Hash) LeadingZeroBits() int {
	n := 0
	for _, b := range h {
		if b == 0 {
			n += 8
			continue
		}
		n += bits.LeadingZeros8(b)
		break
	}
	return n
}

// MarshalJSON encodes the digest as a 64-character hex string.
func (h Hash) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.String())
}

// UnmarshalJSON decodes the hex string form.
func (h *Hash) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	raw, err := hex.DecodeString(s)
	if err != nil {
		return fmt.Errorf("decode hash: %w", err)
	}
	if len(raw) != HashSize {
		return fmt.Errorf("hash must be %d bytes, got %d", HashSize, len(raw))
	}
	copy(h[:], raw)
	return nil
}
