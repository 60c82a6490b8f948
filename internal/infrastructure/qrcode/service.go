package qrcode

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"github.com/skip2/go-qrcode"
	"github.com/tdex-network/btcqr/internal/core/domain"
	"github.com/tdex-network/btcqr/internal/core/ports"
)

// go-qrcode names levels after their recovery capacity: its High (25%) is
// the Q level and Highest (30%) is H.
var recoveryLevels = map[domain.ErrorCorrectionLevel]qrcode.RecoveryLevel{
	domain.ErrorCorrectionLow:      qrcode.Low,
	domain.ErrorCorrectionMedium:   qrcode.Medium,
	domain.ErrorCorrectionQuartile: qrcode.High,
	domain.ErrorCorrectionHigh:     qrcode.Highest,
}

type service struct {
	encoder *png.Encoder
}

// NewService returns a renderer producing square PNG images.
func NewService() ports.Renderer {
	return &service{
		encoder: &png.Encoder{CompressionLevel: png.BestCompression},
	}
}

func (s *service) Render(
	ctx context.Context, payload string, opts ports.RenderOpts,
) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := validateOpts(opts); err != nil {
		return nil, err
	}
	if len(payload) <= 0 {
		return nil, ErrEmptyPayload
	}

	level := recoveryLevels[opts.ErrorCorrection]
	code, err := qrcode.New(payload, level)
	if err != nil {
		// Non empty content is rejected only when it exceeds the capacity
		// of version 40 at the requested level.
		return nil, fmt.Errorf(
			"%w: %d bytes at level %s", domain.ErrPayloadTooLarge,
			len(payload), opts.ErrorCorrection,
		)
	}
	code.DisableBorder = true

	img := rasterize(code.Bitmap(), opts)

	buf := &bytes.Buffer{}
	if err := s.encoder.Encode(buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func validateOpts(opts ports.RenderOpts) error {
	if opts.WidthPx <= 0 {
		return ErrInvalidWidth
	}
	if opts.MarginModules < 0 {
		return ErrInvalidMargin
	}
	if _, ok := recoveryLevels[opts.ErrorCorrection]; !ok {
		return domain.ErrInvalidErrorCorrection
	}
	return nil
}

// rasterize scales the bitmap, surrounded by a quiet zone of
// opts.MarginModules light modules, to a WidthPx x WidthPx image.
// Pixels are mapped to modules by nearest neighbour, so module edges may
// differ by one pixel when WidthPx is not a multiple of the module count.
func rasterize(bitmap [][]bool, opts ports.RenderOpts) image.Image {
	size := len(bitmap)
	total := size + 2*opts.MarginModules
	width := opts.WidthPx

	palette := color.Palette{opts.Background.Color(), opts.Foreground.Color()}
	img := image.NewPaletted(image.Rect(0, 0, width, width), palette)

	modules := make([]int, width)
	for i := range modules {
		modules[i] = i*total/width - opts.MarginModules
	}

	for y := 0; y < width; y++ {
		row := modules[y]
		if row < 0 || row >= size {
			continue
		}
		for x := 0; x < width; x++ {
			col := modules[x]
			if col < 0 || col >= size {
				continue
			}
			if bitmap[row][col] {
				img.SetColorIndex(x, y, 1)
			}
		}
	}
	return img
}
