package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tdex-network/btcqr/internal/core/domain"
)

func TestKindOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err      error
		expected domain.ErrorKind
	}{
		{nil, domain.KindNone},
		{domain.ErrIncompletePhrase, domain.KindIncompleteInput},
		{fmt.Errorf("wrapped: %w", domain.ErrWrongWordCount), domain.KindWrongWordCount},
		{domain.ErrInvalidWordCount, domain.KindWrongWordCount},
		{domain.ErrMissingDescriptor, domain.KindInvalidDescriptor},
		{domain.ErrInvalidAddress, domain.KindInvalidAddress},
		{domain.ErrInvalidAmount, domain.KindInvalidAmount},
		{domain.ErrInvalidRawTx, domain.KindInvalidEncoding},
		{fmt.Errorf("render: %w", domain.ErrPayloadTooLarge), domain.KindPayloadTooLarge},
		{errors.New("boom"), domain.KindInternal},
	}

	for _, tt := range tests {
		require.Equal(t, tt.expected, domain.KindOf(tt.err))
	}
}

func TestNewValidationResult(t *testing.T) {
	t.Parallel()

	ok := domain.NewValidationResult(nil)
	require.True(t, ok.Ok)
	require.Equal(t, domain.KindNone, ok.Reason)
	require.NoError(t, ok.Err)

	ko := domain.NewValidationResult(domain.ErrInvalidPSBT)
	require.False(t, ko.Ok)
	require.Equal(t, domain.KindInvalidEncoding, ko.Reason)
	require.ErrorIs(t, ko.Err, domain.ErrInvalidPSBT)
}

func TestParseErrorCorrectionLevel(t *testing.T) {
	t.Parallel()

	for _, lvl := range []domain.ErrorCorrectionLevel{
		domain.ErrorCorrectionLow, domain.ErrorCorrectionMedium,
		domain.ErrorCorrectionQuartile, domain.ErrorCorrectionHigh,
	} {
		parsed, err := domain.ParseErrorCorrectionLevel(lvl.String())
		require.NoError(t, err)
		require.Equal(t, lvl, parsed)
	}

	parsed, err := domain.ParseErrorCorrectionLevel(" h ")
	require.NoError(t, err)
	require.Equal(t, domain.ErrorCorrectionHigh, parsed)

	_, err = domain.ParseErrorCorrectionLevel("X")
	require.ErrorIs(t, err, domain.ErrInvalidErrorCorrection)
}
