package qrterminal

import (
	"bytes"
	"context"
	"fmt"

	"github.com/mdp/qrterminal/v3"
	"github.com/tdex-network/btcqr/internal/core/domain"
	"github.com/tdex-network/btcqr/internal/core/ports"
	"rsc.io/qr"
)

var levels = map[domain.ErrorCorrectionLevel]qr.Level{
	domain.ErrorCorrectionLow:      qr.L,
	domain.ErrorCorrectionMedium:   qr.M,
	domain.ErrorCorrectionQuartile: qr.Q,
	domain.ErrorCorrectionHigh:     qr.H,
}

type service struct {
	blackChar string
	whiteChar string
}

// NewService returns a renderer that draws QR codes as ANSI colored text,
// ready to be printed to a terminal.
func NewService() ports.Renderer {
	return &service{
		blackChar: qrterminal.BLACK,
		whiteChar: qrterminal.WHITE,
	}
}

// NewPlainService is like NewService but draws with plain block characters,
// for outputs that do not support ANSI escape codes.
func NewPlainService() ports.Renderer {
	return &service{
		blackChar: "██",
		whiteChar: "  ",
	}
}

// Render ignores opts.WidthPx and the colors, a module is always two
// characters wide.
func (s *service) Render(
	ctx context.Context, payload string, opts ports.RenderOpts,
) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(payload) <= 0 {
		return nil, ErrEmptyPayload
	}
	level, ok := levels[opts.ErrorCorrection]
	if !ok {
		return nil, domain.ErrInvalidErrorCorrection
	}

	// qrterminal does not report encoding errors.
	if _, err := qr.Encode(payload, level); err != nil {
		return nil, fmt.Errorf(
			"%w: %d bytes at level %s", domain.ErrPayloadTooLarge,
			len(payload), opts.ErrorCorrection,
		)
	}

	quietZone := opts.MarginModules
	if quietZone < 1 {
		quietZone = 1
	}

	buf := &bytes.Buffer{}
	qrterminal.GenerateWithConfig(payload, qrterminal.Config{
		Level:     level,
		Writer:    buf,
		BlackChar: s.blackChar,
		WhiteChar: s.whiteChar,
		QuietZone: quietZone,
	})
	return buf.Bytes(), nil
}
