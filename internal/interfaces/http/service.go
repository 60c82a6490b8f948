package httpinterface

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"github.com/tdex-network/btcqr/internal/core/application"
	"github.com/tdex-network/btcqr/internal/interfaces"
	"golang.org/x/sync/errgroup"
)

const (
	defaultShutdownTimeout = 5 * time.Second
	readHeaderTimeout      = 10 * time.Second
)

type ServiceOpts struct {
	Address string
	QRSvc   application.QRService

	// RenderRateLimit is the max number of renders per second, 0 means
	// unlimited.
	RenderRateLimit int
	// MetricsGatherer is optional, /metrics is not served if nil.
	MetricsGatherer prometheus.Gatherer
	ShutdownTimeout time.Duration
}

func (o ServiceOpts) validate() error {
	if o.Address == "" {
		return fmt.Errorf("missing listening address")
	}
	if _, _, err := net.SplitHostPort(o.Address); err != nil {
		return fmt.Errorf("invalid listening address: %s", err)
	}
	if o.QRSvc == nil {
		return fmt.Errorf("qr app service must not be null")
	}
	if o.RenderRateLimit < 0 {
		return fmt.Errorf("render rate limit must not be negative")
	}
	return nil
}

func (o ServiceOpts) shutdownTimeout() time.Duration {
	if o.ShutdownTimeout <= 0 {
		return defaultShutdownTimeout
	}
	return o.ShutdownTimeout
}

type service struct {
	opts   ServiceOpts
	server *http.Server
	group  *errgroup.Group
}

func NewService(opts ServiceOpts) (interfaces.Service, error) {
	if err := opts.validate(); err != nil {
		return nil, fmt.Errorf("invalid opts: %s", err)
	}

	return &service{
		opts: opts,
		server: &http.Server{
			Handler:           newHandler(opts),
			ReadHeaderTimeout: readHeaderTimeout,
		},
	}, nil
}

func (s *service) Start() error {
	lis, err := net.Listen("tcp", s.opts.Address)
	if err != nil {
		return err
	}

	s.group = &errgroup.Group{}
	s.group.Go(func() error {
		if err := s.server.Serve(lis); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	log.Infof("http interface is listening on %s", lis.Addr())
	return nil
}

func (s *service) Stop() {
	ctx, cancel := context.WithTimeout(
		context.Background(), s.opts.shutdownTimeout(),
	)
	defer cancel()

	if err := s.server.Shutdown(ctx); err != nil {
		log.WithError(err).Warn("http interface did not shut down gracefully")
	}
	if s.group != nil {
		if err := s.group.Wait(); err != nil {
			log.WithError(err).Warn("http interface stopped with error")
		}
	}
	log.Debug("disabled http interface")
}

// NewHandler returns the router of the HTTP interface without binding it to
// any listener.
func NewHandler(opts ServiceOpts) (http.Handler, error) {
	if opts.QRSvc == nil {
		return nil, fmt.Errorf("qr app service must not be null")
	}
	if opts.RenderRateLimit < 0 {
		return nil, fmt.Errorf("render rate limit must not be negative")
	}
	return newHandler(opts), nil
}
