package domain

import "errors"

// ErrorKind classifies every expected failure of the payload encoders.
type ErrorKind string

const (
	KindNone              ErrorKind = ""
	KindIncompleteInput   ErrorKind = "IncompleteInput"
	KindWrongWordCount    ErrorKind = "WrongWordCount"
	KindInvalidDescriptor ErrorKind = "InvalidDescriptor"
	KindInvalidAddress    ErrorKind = "InvalidAddress"
	KindInvalidAmount     ErrorKind = "InvalidAmount"
	KindInvalidEncoding   ErrorKind = "InvalidEncoding"
	KindPayloadTooLarge   ErrorKind = "PayloadTooLarge"
	KindInternal          ErrorKind = "Internal"
)

var (
	// ErrIncompletePhrase is returned when encoding a seed phrase with at least
	// one empty slot.
	ErrIncompletePhrase = errors.New("seed phrase is incomplete")
	// ErrWrongWordCount is returned when a bulk paste contains neither 1 nor
	// exactly N words.
	ErrWrongWordCount = errors.New("wrong number of words")
	// ErrInvalidWordCount is returned when the seed phrase length is neither 12
	// nor 24.
	ErrInvalidWordCount = errors.New("seed phrase length must be either 12 or 24 words")
	// ErrSlotOutOfRange ...
	ErrSlotOutOfRange = errors.New("word index out of range")
	// ErrNoSuggestion is returned when committing an empty suggestion list.
	ErrNoSuggestion = errors.New("no suggestion to commit")

	// ErrMissingDescriptor ...
	ErrMissingDescriptor = errors.New("please enter a wallet descriptor")
	// ErrInvalidDescriptor ...
	ErrInvalidDescriptor = errors.New(
		"invalid descriptor format, expected format: pkh(...), wpkh(...), " +
			"sh(wpkh(...)), tr(...), etc.",
	)

	// ErrMissingAddress ...
	ErrMissingAddress = errors.New("please enter a bitcoin address")
	// ErrInvalidAddress ...
	ErrInvalidAddress = errors.New("invalid bitcoin address format")
	// ErrInvalidAmount is returned for amounts that are not finite decimals
	// strictly greater than zero.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrMissingPSBT ...
	ErrMissingPSBT = errors.New("please enter a PSBT")
	// ErrInvalidPSBT ...
	ErrInvalidPSBT = errors.New("invalid PSBT format, expected base64 encoded data")
	// ErrMissingRawTx ...
	ErrMissingRawTx = errors.New("please enter a raw transaction")
	// ErrInvalidRawTx ...
	ErrInvalidRawTx = errors.New(
		"invalid raw transaction format, expected hexadecimal data",
	)
	// ErrUnknownTransactionFormat ...
	ErrUnknownTransactionFormat = errors.New(
		"transaction format must be one of payment-uri, psbt, raw",
	)

	// ErrPayloadTooLarge is returned by renderers when the payload exceeds the
	// capacity of the largest QR version at the requested error correction.
	ErrPayloadTooLarge = errors.New("payload too large for a QR code")
	// ErrInvalidErrorCorrection ...
	ErrInvalidErrorCorrection = errors.New("error correction level must be one of L, M, Q, H")
)

var errorKinds = []struct {
	err  error
	kind ErrorKind
}{
	{ErrIncompletePhrase, KindIncompleteInput},
	{ErrWrongWordCount, KindWrongWordCount},
	{ErrInvalidWordCount, KindWrongWordCount},
	{ErrMissingDescriptor, KindInvalidDescriptor},
	{ErrInvalidDescriptor, KindInvalidDescriptor},
	{ErrMissingAddress, KindInvalidAddress},
	{ErrInvalidAddress, KindInvalidAddress},
	{ErrInvalidAmount, KindInvalidAmount},
	{ErrMissingPSBT, KindInvalidEncoding},
	{ErrInvalidPSBT, KindInvalidEncoding},
	{ErrMissingRawTx, KindInvalidEncoding},
	{ErrInvalidRawTx, KindInvalidEncoding},
	{ErrPayloadTooLarge, KindPayloadTooLarge},
}

// KindOf returns the ErrorKind of the given error, KindNone for a nil error
// and KindInternal for anything that is not part of the taxonomy.
func KindOf(err error) ErrorKind {
	if err == nil {
		return KindNone
	}
	for _, k := range errorKinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}
	return KindInternal
}

// ValidationResult is the outcome of validating the input of an encoder.
// Expected bad input is always reported here, never as a panic.
type ValidationResult struct {
	Ok     bool
	Reason ErrorKind
	Err    error
}

// NewValidationResult builds a result out of the error returned by a
// validation function.
func NewValidationResult(err error) ValidationResult {
	if err == nil {
		return ValidationResult{Ok: true}
	}
	return ValidationResult{Reason: KindOf(err), Err: err}
}
