package application

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/tdex-network/btcqr/internal/core/domain"
	"github.com/tdex-network/btcqr/internal/core/ports"
)

type QRService interface {
	// Generate validates the encoder input, builds its payload and renders
	// it with the error correction level the encoder asks for.
	Generate(ctx context.Context, enc domain.Encoder) (*Artifact, error)
	// Latest returns the artifact of the most recent generate request that
	// completed successfully, or nil.
	Latest() *Artifact
	Export(artifact *Artifact) (string, error)
	Suggest(prefix string) []string
	ClassifyDescriptor(text string) DescriptorInfo
	RenderOpts() ports.RenderOpts
}

type qrService struct {
	renderer   ports.Renderer
	vocabulary ports.Vocabulary
	exporter   ports.Exporter
	opts       ports.RenderOpts
	metrics    *metrics

	results resultSlot
}

func newQRService(
	renderer ports.Renderer,
	vocabulary ports.Vocabulary,
	exporter ports.Exporter,
	opts ports.RenderOpts,
	metrics *metrics,
) *qrService {
	return &qrService{
		renderer:   renderer,
		vocabulary: vocabulary,
		exporter:   exporter,
		opts:       opts,
		metrics:    metrics,
	}
}

func (s *qrService) Generate(
	ctx context.Context, enc domain.Encoder,
) (*Artifact, error) {
	seq := s.results.begin()
	mode := enc.Mode()

	if res := enc.Validate(); !res.Ok {
		s.metrics.incRejected(mode, res.Reason)
		log.Debugf("%s input rejected: %s", mode, res.Reason)
		return nil, res.Err
	}

	payload, err := enc.BuildPayload()
	if err != nil {
		s.metrics.incRejected(mode, domain.KindOf(err))
		return nil, err
	}

	opts := s.opts
	opts.ErrorCorrection = enc.ErrorCorrection()

	img, err := s.renderer.Render(ctx, payload, opts)
	if err != nil {
		kind := domain.KindOf(err)
		s.metrics.incRenderFailure(mode, kind)
		log.WithError(err).Warnf(
			"failed to render %s qr code (%d chars, ec %s)",
			mode, len(payload), opts.ErrorCorrection,
		)
		return nil, fmt.Errorf("%w: %w", ErrRenderFailed, err)
	}

	artifact := &Artifact{
		Seq:             seq,
		Mode:            mode,
		Filename:        mode.Filename(),
		Image:           img,
		ErrorCorrection: opts.ErrorCorrection,
		PayloadLength:   len(payload),
		Hint:            modeHints[mode],
	}
	if !s.results.resolve(seq, artifact) {
		log.Debugf("discarding stale %s qr code #%d", mode, seq)
	}
	s.metrics.incGenerated(mode)

	return artifact, nil
}

func (s *qrService) Latest() *Artifact {
	return s.results.latest()
}

func (s *qrService) Export(artifact *Artifact) (string, error) {
	if s.exporter == nil {
		return "", ErrExportNotSupported
	}
	if artifact == nil || len(artifact.Image) <= 0 {
		return "", ErrNothingToExport
	}

	path, err := s.exporter.Export(artifact.Filename, artifact.Image)
	if err != nil {
		return "", err
	}
	log.Debugf("%s qr code exported to %s", artifact.Mode, path)
	return path, nil
}

func (s *qrService) Suggest(prefix string) []string {
	return domain.Suggest(prefix, s.vocabulary.Words(), domain.SuggestionLimit)
}

func (s *qrService) ClassifyDescriptor(text string) DescriptorInfo {
	kind := domain.ClassifyDescriptor(text)
	return DescriptorInfo{
		Type:  kind,
		Label: kind.Label(),
		Valid: domain.IsValidDescriptor(text),
	}
}

func (s *qrService) RenderOpts() ports.RenderOpts {
	return s.opts
}
