package domain

import (
	"encoding/base64"
	"regexp"
	"strings"
)

// TransactionFormat selects how the transaction form is encoded.
type TransactionFormat string

const (
	FormatPaymentURI TransactionFormat = "payment-uri"
	FormatPSBT       TransactionFormat = "psbt"
	FormatRawTx      TransactionFormat = "raw"
)

const (
	examplePSBT = "cHNidP8BAHECAAAAAeVj0LhXaN8SLlGHGcqZpz8pKXVKVlGUCqFALNqC9m2qAAAAAAD/////AkBCDwAAAAAAFgAUxkgHzf0wgZwLmKG3LggTvqo0gR6w4gEAAAAAABYAFPfEVfn7fG74VR/fS1GYfvpRVRcDAAAAAAEBKwDh9QUAAAAAIgAgi9NlGq47iScWGxrKT5Z+6EXJCxwz8+2XWnWw9LxEWW0AAA=="
	exampleRawTx = "0200000001e563d0b8576adf122e51871cea19a73f2929754a56519402a1402cdaa2f66daa0000000000ffffffff0240420f0000000000160014c64807cdfd30819c0b98a1b72e0813bea3348116b0e201000000000016001477c455f9fb7c6ef8551fdf4b51987efc51551703"
)

var (
	rxHex = regexp.MustCompile(`^[0-9a-fA-F]+$`)

	// ExamplePaymentURI is a sample payment request, useful to try things out.
	ExamplePaymentURI = PaymentURI{
		Address: "bc1qxy2kgdygjrsqtzq2n0yrf2493p83kkfjhx0wlh",
		Amount:  "0.001",
		Label:   "Coffee Payment",
		Message: "Thanks for the coffee!",
	}
)

func ParseTransactionFormat(str string) (TransactionFormat, error) {
	switch f := TransactionFormat(strings.ToLower(strings.TrimSpace(str))); f {
	case FormatPaymentURI, FormatPSBT, FormatRawTx:
		return f, nil
	default:
		return "", ErrUnknownTransactionFormat
	}
}

// TransactionForm holds the fields of the transaction composer. Data is
// used by the PSBT and raw formats, the PaymentURI fields by the payment-uri
// one.
type TransactionForm struct {
	PaymentURI
	Data string

	format TransactionFormat
}

func NewTransactionForm(format TransactionFormat) (*TransactionForm, error) {
	f := &TransactionForm{}
	if err := f.SetFormat(format); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *TransactionForm) Format() TransactionFormat {
	return f.format
}

// SetFormat switches format and resets every field of the form.
func (f *TransactionForm) SetFormat(format TransactionFormat) error {
	if _, err := ParseTransactionFormat(string(format)); err != nil {
		return err
	}
	*f = TransactionForm{format: format}
	return nil
}

// Clear resets every field, keeping the format.
func (f *TransactionForm) Clear() {
	*f = TransactionForm{format: f.format}
}

// LoadExample fills the form with sample data for the current format.
func (f *TransactionForm) LoadExample() {
	f.Clear()
	switch f.format {
	case FormatPaymentURI:
		f.PaymentURI = ExamplePaymentURI
	case FormatPSBT:
		f.Data = examplePSBT
	case FormatRawTx:
		f.Data = exampleRawTx
	}
}

func (f *TransactionForm) Validate() ValidationResult {
	return NewValidationResult(f.validate())
}

func (f *TransactionForm) BuildPayload() (string, error) {
	if err := f.validate(); err != nil {
		return "", err
	}
	if f.format == FormatPaymentURI {
		return f.PaymentURI.String(), nil
	}
	return strings.TrimSpace(f.Data), nil
}

// ErrorCorrection is lower for PSBT and raw transactions so that larger
// payloads still fit a QR code.
func (f *TransactionForm) ErrorCorrection() ErrorCorrectionLevel {
	if f.format == FormatPaymentURI {
		return ErrorCorrectionMedium
	}
	return ErrorCorrectionLow
}

func (f *TransactionForm) Mode() Mode {
	switch f.format {
	case FormatPSBT:
		return ModePSBT
	case FormatRawTx:
		return ModeRawTx
	default:
		return ModePaymentURI
	}
}

func (f *TransactionForm) validate() error {
	data := strings.TrimSpace(f.Data)

	switch f.format {
	case FormatPaymentURI:
		return f.PaymentURI.Validate()
	case FormatPSBT:
		if data == "" {
			return ErrMissingPSBT
		}
		if !IsValidBase64(data) {
			return ErrInvalidPSBT
		}
		return nil
	case FormatRawTx:
		if data == "" {
			return ErrMissingRawTx
		}
		if !IsValidHex(data) {
			return ErrInvalidRawTx
		}
		return nil
	default:
		return ErrUnknownTransactionFormat
	}
}

// IsValidBase64 returns whether str decodes as standard base64 and encodes
// back to the exact same string.
func IsValidBase64(str string) bool {
	decoded, err := base64.StdEncoding.DecodeString(str)
	if err != nil {
		return false
	}
	return base64.StdEncoding.EncodeToString(decoded) == str
}

// IsValidHex returns whether str is made of hex chars only. Odd lengths are
// accepted.
func IsValidHex(str string) bool {
	return rxHex.MatchString(str)
}
