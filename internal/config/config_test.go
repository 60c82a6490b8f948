package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/tdex-network/btcqr/internal/config"
	"github.com/tdex-network/btcqr/internal/core/ports"
)

// Tests in this file share the package level config and the process env,
// hence they must not run in parallel.

func TestInitConfig(t *testing.T) {
	datadir := filepath.Join(t.TempDir(), "btcqr")
	t.Setenv("BTCQR_DATADIR", datadir)

	require.NoError(t, config.InitConfig())

	require.Equal(t, datadir, config.GetDatadir())
	require.DirExists(t, datadir)
	require.Equal(t, filepath.Join(datadir, "qr"), config.GetExportDir())
	require.Equal(t, "localhost:9050", config.GetString(config.ListeningAddrKey))
	require.Equal(t, 400, config.GetInt(config.QRWidthKey))
	require.Equal(t, 2, config.GetInt(config.QRMarginKey))
	require.Equal(t, ports.RGB{R: 0x1e, G: 0x1e, B: 0x1e}, config.GetRGB(config.QRForegroundKey))
	require.Equal(t, ports.RGB{R: 0xff, G: 0xff, B: 0xff}, config.GetRGB(config.QRBackgroundKey))
	require.Equal(t, 20, config.GetInt(config.RenderRateLimitKey))
	require.True(t, config.GetBool(config.EnableMetricsKey))
	require.Equal(t, 5*time.Second, config.GetDuration(config.ShutdownTimeoutKey))
	require.Equal(t, 4, config.GetInt(config.LogLevelKey))
}

func TestInitConfigOverrides(t *testing.T) {
	datadir := t.TempDir()
	wordlist := filepath.Join(datadir, "words.txt")
	require.NoError(t, os.WriteFile(wordlist, []byte("abandon\n"), 0600))

	t.Setenv("BTCQR_DATADIR", datadir)
	t.Setenv("BTCQR_LISTENING_ADDR", ":18080")
	t.Setenv("BTCQR_QR_WIDTH", "512")
	t.Setenv("BTCQR_QR_MARGIN", "0")
	t.Setenv("BTCQR_QR_FOREGROUND", "#000")
	t.Setenv("BTCQR_WORDLIST_FILE", wordlist)
	t.Setenv("BTCQR_ENABLE_METRICS", "false")

	require.NoError(t, config.InitConfig())
	require.Equal(t, ":18080", config.GetString(config.ListeningAddrKey))
	require.Equal(t, 512, config.GetInt(config.QRWidthKey))
	require.Equal(t, 0, config.GetInt(config.QRMarginKey))
	require.Equal(t, ports.RGB{}, config.GetRGB(config.QRForegroundKey))
	require.Equal(t, wordlist, config.GetString(config.WordlistFileKey))
	require.False(t, config.GetBool(config.EnableMetricsKey))
}

func TestFailingInitConfig(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"privileged_port", "BTCQR_LISTENING_ADDR", "localhost:80"},
		{"port_out_of_range", "BTCQR_LISTENING_ADDR", "localhost:70000"},
		{"missing_port", "BTCQR_LISTENING_ADDR", "localhost"},
		{"zero_width", "BTCQR_QR_WIDTH", "0"},
		{"negative_margin", "BTCQR_QR_MARGIN", "-1"},
		{"invalid_color", "BTCQR_QR_BACKGROUND", "white"},
		{"missing_wordlist", "BTCQR_WORDLIST_FILE", "/not/existing/words.txt"},
		{"zero_rate_limit", "BTCQR_RENDER_RATE_LIMIT", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("BTCQR_DATADIR", t.TempDir())
			t.Setenv(tt.key, tt.val)

			require.Error(t, config.InitConfig())
		})
	}
}
