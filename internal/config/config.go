package config

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/spf13/viper"
	"github.com/tdex-network/btcqr/internal/core/application"
	"github.com/tdex-network/btcqr/internal/core/ports"
)

const (
	// DatadirKey is the local data directory where exported images are stored
	DatadirKey = "DATADIR"
	// LogLevelKey are the different logging levels. For reference on the values https://godoc.org/github.com/sirupsen/logrus#Level
	LogLevelKey = "LOG_LEVEL"
	// ListeningAddrKey is the <host:port> the HTTP interface listens on
	ListeningAddrKey = "LISTENING_ADDR"
	// QRWidthKey is the side of the generated PNG images in pixels
	QRWidthKey = "QR_WIDTH"
	// QRMarginKey is the width of the quiet zone around the symbol, in modules
	QRMarginKey = "QR_MARGIN"
	// QRForegroundKey is the color of dark modules in #rrggbb format
	QRForegroundKey = "QR_FOREGROUND"
	// QRBackgroundKey is the color of light modules in #rrggbb format
	QRBackgroundKey = "QR_BACKGROUND"
	// WordlistFileKey is an optional path to a custom 2048 words list, one per
	// line, used in place of the BIP-39 English one for autocompletion
	WordlistFileKey = "WORDLIST_FILE"
	// RenderRateLimitKey is the max number of renders per second served by the
	// HTTP interface
	RenderRateLimitKey = "RENDER_RATE_LIMIT"
	// EnableMetricsKey exposes prometheus counters at /metrics
	EnableMetricsKey = "ENABLE_METRICS"
	// ShutdownTimeoutKey is the max time given to in-flight requests to
	// complete once the daemon is asked to stop
	ShutdownTimeoutKey = "SHUTDOWN_TIMEOUT"

	ExportLocation = "qr"

	minPort = 1024
)

var vip *viper.Viper
var defaultDatadir = btcutil.AppDataDir("btcqr", false)

func InitConfig() error {
	vip = viper.New()
	vip.SetEnvPrefix("BTCQR")
	vip.AutomaticEnv()

	vip.SetDefault(LogLevelKey, 4)
	vip.SetDefault(DatadirKey, defaultDatadir)
	vip.SetDefault(ListeningAddrKey, "localhost:9050")
	vip.SetDefault(QRWidthKey, application.DefaultWidthPx)
	vip.SetDefault(QRMarginKey, application.DefaultMarginModules)
	vip.SetDefault(QRForegroundKey, application.DefaultForeground.String())
	vip.SetDefault(QRBackgroundKey, application.DefaultBackground.String())
	vip.SetDefault(RenderRateLimitKey, 20)
	vip.SetDefault(EnableMetricsKey, true)
	vip.SetDefault(ShutdownTimeoutKey, 5*time.Second)

	if err := validate(); err != nil {
		return fmt.Errorf("error while validating config: %s", err)
	}

	if err := initDatadir(); err != nil {
		return fmt.Errorf("error while creating datadir: %s", err)
	}

	return nil
}

func GetString(key string) string {
	return vip.GetString(key)
}

func GetInt(key string) int {
	return vip.GetInt(key)
}

func GetDuration(key string) time.Duration {
	return vip.GetDuration(key)
}

func GetBool(key string) bool {
	return vip.GetBool(key)
}

func GetDatadir() string {
	return GetString(DatadirKey)
}

func GetExportDir() string {
	return filepath.Join(GetDatadir(), ExportLocation)
}

// GetRGB returns the color for the given key. Values are checked by
// InitConfig, hence this never fails afterwards.
func GetRGB(key string) ports.RGB {
	c, _ := ports.ParseRGB(GetString(key))
	return c
}

func validate() error {
	datadir := GetString(DatadirKey)
	if len(datadir) <= 0 {
		return fmt.Errorf("missing datadir")
	}

	if err := validateListeningAddr(GetString(ListeningAddrKey)); err != nil {
		return err
	}

	if GetInt(QRWidthKey) <= 0 {
		return fmt.Errorf("%s must be a positive number of pixels", QRWidthKey)
	}
	if GetInt(QRMarginKey) < 0 {
		return fmt.Errorf("%s must not be negative", QRMarginKey)
	}
	for _, key := range []string{QRForegroundKey, QRBackgroundKey} {
		if _, err := ports.ParseRGB(GetString(key)); err != nil {
			return fmt.Errorf("%s: %s", key, err)
		}
	}

	if path := GetString(WordlistFileKey); path != "" {
		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("%s: %s", WordlistFileKey, err)
		}
	}

	if GetInt(RenderRateLimitKey) <= 0 {
		return fmt.Errorf("%s must be greater than zero", RenderRateLimitKey)
	}

	return nil
}

func validateListeningAddr(addr string) error {
	_, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		return fmt.Errorf("invalid listening address %q: %s", addr, err)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil || port <= minPort || port > 65535 {
		return fmt.Errorf(
			"invalid listening port %q, must be in range (%d, 65535]",
			portStr, minPort,
		)
	}
	return nil
}

func initDatadir() error {
	return makeDirectoryIfNotExists(GetDatadir())
}

func makeDirectoryIfNotExists(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return os.MkdirAll(path, os.ModeDir|0755)
	}
	return nil
}
