package domain

import "strings"

// ExampleDescriptor is a sample single-key native segwit descriptor.
const ExampleDescriptor = "wpkh([d34db33f/84h/0h/0h]xpub6ERApfZwUNrhLCkDtcHTcxd75RbzS1ed54G1LkBUHQVHQKqhMkhgbmJbZRkrgZw4koxb5JaHWkY4ALHY2grBGRjaDMzQLcgJvLJuZZvRcEL/0/*)"

// DescriptorType is the advisory classification of an output descriptor.
type DescriptorType int

const (
	DescriptorUnknown DescriptorType = iota
	DescriptorP2PKH
	DescriptorP2WPKH
	DescriptorP2SHP2WPKH
	DescriptorP2WSH
	DescriptorP2SHP2WSH
	DescriptorP2TR
	DescriptorCombo
	DescriptorMultisig
	DescriptorAddress
	DescriptorRaw
)

var descriptorTypeNames = map[DescriptorType]string{
	DescriptorUnknown:    "Unknown",
	DescriptorP2PKH:      "P2PKH",
	DescriptorP2WPKH:     "P2WPKH",
	DescriptorP2SHP2WPKH: "P2SH-P2WPKH",
	DescriptorP2WSH:      "P2WSH",
	DescriptorP2SHP2WSH:  "P2SH-P2WSH",
	DescriptorP2TR:       "P2TR",
	DescriptorCombo:      "Combo",
	DescriptorMultisig:   "Multisig",
	DescriptorAddress:    "Address",
	DescriptorRaw:        "Raw",
}

var descriptorTypeLabels = map[DescriptorType]string{
	DescriptorUnknown:    "Unknown",
	DescriptorP2PKH:      "Legacy (P2PKH)",
	DescriptorP2WPKH:     "Native SegWit (P2WPKH)",
	DescriptorP2SHP2WPKH: "Nested SegWit (P2SH-P2WPKH)",
	DescriptorP2WSH:      "Native SegWit (P2WSH)",
	DescriptorP2SHP2WSH:  "Nested SegWit (P2SH-P2WSH)",
	DescriptorP2TR:       "Taproot (P2TR)",
	DescriptorCombo:      "Combo",
	DescriptorMultisig:   "Multisig",
	DescriptorAddress:    "Address",
	DescriptorRaw:        "Raw",
}

func (t DescriptorType) String() string {
	return descriptorTypeNames[t]
}

// Label returns a human readable description of the descriptor type.
func (t DescriptorType) Label() string {
	return descriptorTypeLabels[t]
}

// Patterns are checked in order and the first match wins, so nested script
// prefixes must precede any shorter prefix they would also match.
var descriptorPatterns = []struct {
	prefixes []string
	kind     DescriptorType
}{
	{[]string{"pkh("}, DescriptorP2PKH},
	{[]string{"wpkh("}, DescriptorP2WPKH},
	{[]string{"sh(wpkh("}, DescriptorP2SHP2WPKH},
	{[]string{"wsh("}, DescriptorP2WSH},
	{[]string{"sh(wsh("}, DescriptorP2SHP2WSH},
	{[]string{"tr("}, DescriptorP2TR},
	{[]string{"combo("}, DescriptorCombo},
	{[]string{"multi(", "sortedmulti("}, DescriptorMultisig},
	{[]string{"addr("}, DescriptorAddress},
	{[]string{"raw("}, DescriptorRaw},
}

// ClassifyDescriptor returns the type of the first pattern matching the
// trimmed text, ignoring case.
func ClassifyDescriptor(text string) DescriptorType {
	normalized := strings.ToLower(strings.TrimSpace(text))
	for _, p := range descriptorPatterns {
		for _, prefix := range p.prefixes {
			if strings.HasPrefix(normalized, prefix) {
				return p.kind
			}
		}
	}
	return DescriptorUnknown
}

// IsValidDescriptor returns whether the trimmed text is not empty and
// matches any known descriptor pattern.
func IsValidDescriptor(text string) bool {
	if strings.TrimSpace(text) == "" {
		return false
	}
	return ClassifyDescriptor(text) != DescriptorUnknown
}

// Descriptor is the raw text of a wallet output descriptor.
type Descriptor string

func (d Descriptor) Type() DescriptorType {
	return ClassifyDescriptor(string(d))
}

func (d Descriptor) Validate() ValidationResult {
	return NewValidationResult(d.validate())
}

// BuildPayload returns the trimmed descriptor verbatim. Checksums are left
// untouched.
func (d Descriptor) BuildPayload() (string, error) {
	if err := d.validate(); err != nil {
		return "", err
	}
	return strings.TrimSpace(string(d)), nil
}

func (d Descriptor) ErrorCorrection() ErrorCorrectionLevel {
	return ErrorCorrectionHigh
}

func (d Descriptor) Mode() Mode {
	return ModeDescriptor
}

func (d Descriptor) validate() error {
	if strings.TrimSpace(string(d)) == "" {
		return ErrMissingDescriptor
	}
	if !IsValidDescriptor(string(d)) {
		return ErrInvalidDescriptor
	}
	return nil
}
