package domain

import "strings"

// Encoder is the contract shared by every payload encoder: validate the
// current input and build the string that ends up in the QR code.
type Encoder interface {
	Validate() ValidationResult
	BuildPayload() (string, error)
	// ErrorCorrection is the level the renderer must use for this payload.
	ErrorCorrection() ErrorCorrectionLevel
	Mode() Mode
}

// Mode identifies the kind of payload being composed.
type Mode string

const (
	ModeSeedPhrase Mode = "seed-phrase"
	ModeDescriptor Mode = "wallet-descriptor"
	ModePaymentURI Mode = "payment-uri"
	ModePSBT       Mode = "psbt"
	ModeRawTx      Mode = "raw"
)

// Filename returns the name of the exported image for the mode.
func (m Mode) Filename() string {
	return string(m) + "-qr.png"
}

// ErrorCorrectionLevel is the QR redundancy level.
type ErrorCorrectionLevel int

const (
	ErrorCorrectionLow ErrorCorrectionLevel = iota
	ErrorCorrectionMedium
	ErrorCorrectionQuartile
	ErrorCorrectionHigh
)

func (l ErrorCorrectionLevel) String() string {
	switch l {
	case ErrorCorrectionLow:
		return "L"
	case ErrorCorrectionMedium:
		return "M"
	case ErrorCorrectionQuartile:
		return "Q"
	case ErrorCorrectionHigh:
		return "H"
	default:
		return "unknown"
	}
}

// ParseErrorCorrectionLevel converts one of L, M, Q, H (case insensitive).
func ParseErrorCorrectionLevel(str string) (ErrorCorrectionLevel, error) {
	switch strings.ToUpper(strings.TrimSpace(str)) {
	case "L":
		return ErrorCorrectionLow, nil
	case "M":
		return ErrorCorrectionMedium, nil
	case "Q":
		return ErrorCorrectionQuartile, nil
	case "H":
		return ErrorCorrectionHigh, nil
	default:
		return -1, ErrInvalidErrorCorrection
	}
}
