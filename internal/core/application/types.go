package application

import "github.com/tdex-network/btcqr/internal/core/domain"

// Artifact is a rendered QR code, ready to be exported.
type Artifact struct {
	Seq             uint64
	Mode            domain.Mode
	Filename        string
	Image           []byte
	ErrorCorrection domain.ErrorCorrectionLevel
	PayloadLength   int
	Hint            string
}

// DescriptorInfo is the advisory classification of a descriptor.
type DescriptorInfo struct {
	Type  domain.DescriptorType
	Label string
	Valid bool
}

var modeHints = map[domain.Mode]string{
	domain.ModeSeedPhrase: "Security warning: store this QR code securely. " +
		"Anyone with access to it can access your wallet.",
	domain.ModeDescriptor: "Privacy notice: this descriptor contains extended " +
		"public keys (xpubs) which can reveal all your addresses. Share carefully.",
	domain.ModePaymentURI: "Scan this QR code with a Bitcoin wallet to create a payment.",
	domain.ModePSBT: "This QR code contains transaction data. " +
		"Use a compatible wallet to sign or broadcast.",
	domain.ModeRawTx: "This QR code contains transaction data. " +
		"Use a compatible wallet to sign or broadcast.",
}
