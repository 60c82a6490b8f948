package application

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/tdex-network/btcqr/internal/core/ports"
)

type Config struct {
	Renderer   ports.Renderer
	Vocabulary ports.Vocabulary
	Exporter   ports.Exporter

	WidthPx       int
	MarginModules int
	Foreground    ports.RGB
	Background    ports.RGB

	// MetricsRegisterer is optional, counters are not exposed if nil.
	MetricsRegisterer prometheus.Registerer

	qr QRService
}

func (c *Config) Validate() error {
	if c.Renderer == nil {
		return fmt.Errorf("missing renderer")
	}
	if c.Vocabulary == nil {
		return fmt.Errorf("missing vocabulary")
	}
	if c.WidthPx < 0 {
		return fmt.Errorf("width must not be negative")
	}
	if c.MarginModules < 0 {
		return fmt.Errorf("margin must not be negative")
	}
	if _, err := c.qrService(); err != nil {
		return err
	}
	return nil
}

func (c *Config) QRService() QRService {
	svc, _ := c.qrService()
	return svc
}

func (c *Config) renderOpts() ports.RenderOpts {
	opts := ports.RenderOpts{
		WidthPx:       c.WidthPx,
		MarginModules: c.MarginModules,
		Foreground:    c.Foreground,
		Background:    c.Background,
	}
	if opts.WidthPx == 0 {
		opts.WidthPx = DefaultWidthPx
	}
	if opts.Foreground == (ports.RGB{}) && opts.Background == (ports.RGB{}) {
		opts.Foreground = DefaultForeground
		opts.Background = DefaultBackground
	}
	return opts
}

func (c *Config) qrService() (QRService, error) {
	if c.qr == nil {
		metrics, err := newMetrics(c.MetricsRegisterer)
		if err != nil {
			return nil, err
		}
		c.qr = newQRService(
			c.Renderer, c.Vocabulary, c.Exporter, c.renderOpts(), metrics,
		)
	}
	return c.qr, nil
}
