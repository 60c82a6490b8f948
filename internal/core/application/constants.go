package application

import "github.com/tdex-network/btcqr/internal/core/ports"

// Default render settings.
const (
	DefaultWidthPx       = 400
	DefaultMarginModules = 2
)

var (
	DefaultForeground = ports.MustParseRGB("#1e1e1e")
	DefaultBackground = ports.MustParseRGB("#ffffff")
)
