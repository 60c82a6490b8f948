package qrterminal_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tdex-network/btcqr/internal/core/domain"
	"github.com/tdex-network/btcqr/internal/core/ports"
	"github.com/tdex-network/btcqr/internal/infrastructure/qrterminal"
)

func TestRender(t *testing.T) {
	t.Parallel()

	svc := qrterminal.NewPlainService()
	opts := ports.RenderOpts{
		MarginModules:   2,
		ErrorCorrection: domain.ErrorCorrectionLow,
	}

	out, err := svc.Render(context.Background(), "hello", opts)
	require.NoError(t, err)

	require.NotEmpty(t, out)
	require.Contains(t, string(out), "██")
	require.NotContains(t, string(out), "\033[")

	// A larger quiet zone only adds blank lines and columns.
	opts.MarginModules = 4
	wider, err := svc.Render(context.Background(), "hello", opts)
	require.NoError(t, err)
	require.Greater(t, strings.Count(string(wider), "\n"), strings.Count(string(out), "\n"))
	require.Equal(t, strings.Count(string(wider), "█"), strings.Count(string(out), "█"))

	colored, err := qrterminal.NewService().Render(context.Background(), "hello", opts)
	require.NoError(t, err)
	require.Contains(t, string(colored), "\033[")
}

func TestFailingRender(t *testing.T) {
	t.Parallel()

	svc := qrterminal.NewService()
	opts := ports.RenderOpts{ErrorCorrection: domain.ErrorCorrectionHigh}

	_, err := svc.Render(context.Background(), strings.Repeat("a", 2000), opts)
	require.ErrorIs(t, err, domain.ErrPayloadTooLarge)

	_, err = svc.Render(context.Background(), "", opts)
	require.ErrorIs(t, err, qrterminal.ErrEmptyPayload)

	opts.ErrorCorrection = domain.ErrorCorrectionLevel(-1)
	_, err = svc.Render(context.Background(), "hello", opts)
	require.ErrorIs(t, err, domain.ErrInvalidErrorCorrection)
}
