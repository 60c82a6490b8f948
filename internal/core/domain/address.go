package domain

import (
	"regexp"
	"strings"
)

// AddressShape is the surface format an address string looks like. Only the
// shape is checked: no checksum nor script validation happens here.
type AddressShape int

const (
	AddressShapeUnknown AddressShape = iota
	AddressShapeLegacy
	AddressShapeBech32
	AddressShapeBech32Testnet
)

var (
	rxLegacyAddress        = regexp.MustCompile(`^[13][a-km-zA-HJ-NP-Z1-9]{25,34}$`)
	rxBech32Address        = regexp.MustCompile(`(?i)^bc1[a-z0-9]{39,87}$`)
	rxBech32TestnetAddress = regexp.MustCompile(`(?i)^tb1[a-z0-9]{39,87}$`)
)

func (s AddressShape) String() string {
	switch s {
	case AddressShapeLegacy:
		return "Legacy (P2PKH/P2SH)"
	case AddressShapeBech32:
		return "Bech32 SegWit"
	case AddressShapeBech32Testnet:
		return "Testnet Bech32"
	default:
		return "Unknown"
	}
}

// ClassifyAddress returns the shape of the trimmed address.
func ClassifyAddress(addr string) AddressShape {
	addr = strings.TrimSpace(addr)
	switch {
	case rxLegacyAddress.MatchString(addr):
		return AddressShapeLegacy
	case rxBech32Address.MatchString(addr):
		return AddressShapeBech32
	case rxBech32TestnetAddress.MatchString(addr):
		return AddressShapeBech32Testnet
	default:
		return AddressShapeUnknown
	}
}

// IsValidAddress returns whether addr has the shape of a legacy base58 or a
// bech32 mainnet/testnet address.
func IsValidAddress(addr string) bool {
	return ClassifyAddress(addr) != AddressShapeUnknown
}
