package application

import (
	"errors"
	"unicode"
	"unicode/utf8"

	"github.com/tdex-network/btcqr/internal/core/domain"
)

var (
	// ErrRenderFailed wraps any error returned by the renderer.
	ErrRenderFailed = errors.New("failed to generate QR code")
	// ErrNothingToExport is returned when exporting without a generated image.
	ErrNothingToExport = errors.New("no QR code generated yet")
	// ErrExportNotSupported ...
	ErrExportNotSupported = errors.New("no exporter configured")
)

// UserMessage turns an error returned by the service into a message meant
// to be shown to the user.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	if errors.Is(err, ErrRenderFailed) {
		if domain.KindOf(err) == domain.KindPayloadTooLarge {
			return "Failed to generate QR code. The data might be too long for a QR code."
		}
		return "Failed to generate QR code."
	}

	msg := err.Error()
	if domain.KindOf(err) == domain.KindInternal {
		return "Unexpected error: " + msg
	}
	return capitalize(msg)
}

func capitalize(msg string) string {
	r, size := utf8.DecodeRuneInString(msg)
	if r == utf8.RuneError {
		return msg
	}
	return string(unicode.ToUpper(r)) + msg[size:]
}
