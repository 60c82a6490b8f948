package domain_test

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tdex-network/btcqr/internal/core/domain"
)

func TestParseTransactionFormat(t *testing.T) {
	t.Parallel()

	for _, str := range []string{"payment-uri", "PSBT", " raw "} {
		_, err := domain.ParseTransactionFormat(str)
		require.NoError(t, err, str)
	}
	_, err := domain.ParseTransactionFormat("bolt11")
	require.ErrorIs(t, err, domain.ErrUnknownTransactionFormat)

	_, err = domain.NewTransactionForm("bolt11")
	require.ErrorIs(t, err, domain.ErrUnknownTransactionFormat)
}

func TestTransactionFormPaymentURI(t *testing.T) {
	t.Parallel()

	f, err := domain.NewTransactionForm(domain.FormatPaymentURI)
	require.NoError(t, err)

	f.Address = testAddress
	f.Amount = "0.001"
	f.Label = "Coffee"

	payload, err := f.BuildPayload()
	require.NoError(t, err)
	require.Equal(t, "bitcoin:"+testAddress+"?amount=0.001&label=Coffee", payload)
	require.Equal(t, domain.ErrorCorrectionMedium, f.ErrorCorrection())
	require.Equal(t, domain.ModePaymentURI, f.Mode())
	require.Equal(t, "payment-uri-qr.png", f.Mode().Filename())

	f.Amount = "0"
	res := f.Validate()
	require.False(t, res.Ok)
	require.Equal(t, domain.KindInvalidAmount, res.Reason)

	f.Amount = ""
	f.Address = "not-an-address"
	res = f.Validate()
	require.Equal(t, domain.KindInvalidAddress, res.Reason)
	_, err = f.BuildPayload()
	require.ErrorIs(t, err, domain.ErrInvalidAddress)
}

func TestTransactionFormSetFormatResetsFields(t *testing.T) {
	t.Parallel()

	f, err := domain.NewTransactionForm(domain.FormatPaymentURI)
	require.NoError(t, err)
	f.LoadExample()
	f.Data = "deadbeef"
	require.True(t, f.Validate().Ok)

	require.NoError(t, f.SetFormat(domain.FormatRawTx))
	require.Equal(t, domain.FormatRawTx, f.Format())
	require.Empty(t, f.Address)
	require.Empty(t, f.Amount)
	require.Empty(t, f.Label)
	require.Empty(t, f.Message)
	require.Empty(t, f.Data)

	f.Data = "deadbeef"
	require.NoError(t, f.SetFormat(domain.FormatRawTx))
	require.Empty(t, f.Data)

	require.Error(t, f.SetFormat("unknown"))
	require.Equal(t, domain.FormatRawTx, f.Format())
}

func TestTransactionFormPSBT(t *testing.T) {
	t.Parallel()

	f, err := domain.NewTransactionForm(domain.FormatPSBT)
	require.NoError(t, err)
	f.LoadExample()
	example := f.Data

	f.Data = "\n " + example + " \t"
	payload, err := f.BuildPayload()
	require.NoError(t, err)
	require.Equal(t, example, payload)
	require.Equal(t, domain.ErrorCorrectionLow, f.ErrorCorrection())
	require.Equal(t, domain.ModePSBT, f.Mode())

	tests := []struct {
		name          string
		data          string
		expectedError error
	}{
		{"empty", "", domain.ErrMissingPSBT},
		{"blank", "   ", domain.ErrMissingPSBT},
		{"not_base64", "not base64!", domain.ErrInvalidPSBT},
		{"missing_padding", "YQ", domain.ErrInvalidPSBT},
		{"non_canonical_padding_bits", "YR==", domain.ErrInvalidPSBT},
		{"url_alphabet", "-_-_", domain.ErrInvalidPSBT},
	}
	for _, tt := range tests {
		f.Data = tt.data
		res := f.Validate()
		require.False(t, res.Ok, tt.name)
		require.Equal(t, domain.KindInvalidEncoding, res.Reason, tt.name)
		_, err := f.BuildPayload()
		require.ErrorIs(t, err, tt.expectedError, tt.name)
	}

	// Any base64 data is accepted, the psbt magic bytes are not required.
	f.Data = base64.StdEncoding.EncodeToString([]byte("hello"))
	require.True(t, f.Validate().Ok)
}

func TestIsValidBase64RoundTrip(t *testing.T) {
	t.Parallel()

	candidates := []string{
		"", "YQ==", "YQ", "YR==", "aGVsbG8=", "aGVsbG8", "aGVs bG8=",
		"aGVs\nbG8=", "====", "A", "AA==", "AAA=", "AAAA", "cHNidP8=",
		"cHNidP8BAHECAAAAAQ==", "*&^%", "YWJj\r\n",
	}
	for _, c := range candidates {
		decoded, err := base64.StdEncoding.DecodeString(c)
		roundTrips := err == nil && base64.StdEncoding.EncodeToString(decoded) == c
		require.Equal(t, roundTrips, domain.IsValidBase64(c), c)
	}
}

func TestTransactionFormRawTx(t *testing.T) {
	t.Parallel()

	f, err := domain.NewTransactionForm(domain.FormatRawTx)
	require.NoError(t, err)
	f.LoadExample()
	require.True(t, f.Validate().Ok)
	require.Equal(t, domain.ModeRawTx, f.Mode())
	require.Equal(t, domain.ErrorCorrectionLow, f.ErrorCorrection())

	for _, data := range []string{"abc", "ABCDEF0123456789", " 00 "} {
		f.Data = data
		require.True(t, f.Validate().Ok, data)
	}

	tests := []struct {
		name          string
		data          string
		expectedError error
	}{
		{"empty", "", domain.ErrMissingRawTx},
		{"not_hex", "xyz", domain.ErrInvalidRawTx},
		{"hex_prefix", "0x00", domain.ErrInvalidRawTx},
		{"inner_space", "00 11", domain.ErrInvalidRawTx},
	}
	for _, tt := range tests {
		f.Data = tt.data
		_, err := f.BuildPayload()
		require.ErrorIs(t, err, tt.expectedError, tt.name)
		require.Equal(t, domain.KindInvalidEncoding, domain.KindOf(err), tt.name)
	}
}
