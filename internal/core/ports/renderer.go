package ports

import (
	"context"

	"github.com/tdex-network/btcqr/internal/core/domain"
)

// RenderOpts are the settings used to rasterize a payload.
type RenderOpts struct {
	WidthPx         int
	MarginModules   int
	Foreground      RGB
	Background      RGB
	ErrorCorrection domain.ErrorCorrectionLevel
}

// Renderer turns a payload into an encoded QR image. Implementations must
// return an error wrapping domain.ErrPayloadTooLarge when the payload does
// not fit the largest QR version at the requested error correction.
type Renderer interface {
	Render(ctx context.Context, payload string, opts RenderOpts) ([]byte, error)
}
