// Package model defines domain types for the agricultural event ledger.
package model

import (
	"errors"
	"fmt"
	"strings"
)

const (
	addressMinLen = 4
	addressMaxLen = 64
)

// ErrInvalidAddress reports a malformed actor identifier.
var ErrInvalidAddress = errors.New("invalid address")

// Address identifies a supply-chain actor such as a farm, warehouse or
// processing facility. Always stored lowercase, so values compare directly.
type Address string

// ParseAddress normalizes case and validates length and charset.
func ParseAddress(raw string) (Address, error) {
	normalized := strings.ToLower(raw)
	if len(normalized) < addressMinLen || len(normalized) > addressMaxLen {
		return "", fmt.Errorf("%w: length %d outside [%d, %d]", ErrInvalidAddress, len(normalized), addressMinLen, addressMaxLen)
	}
	for _, r := range normalized {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return "", fmt.Errorf("%w: disallowed character %q", ErrInvalidAddress, r)
		}
	}
	return Address(normalized), nil
}

func (a Address) String() string {
	return string(a)
}
