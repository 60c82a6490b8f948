package exporter

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tdex-network/btcqr/internal/core/ports"
)

type service struct {
	dir string
}

// NewService returns an exporter writing files into dir, created on first
// export if missing. Exported files are readable by the owner only since a
// seed phrase QR code grants access to the wallet.
func NewService(dir string) (ports.Exporter, error) {
	if dir == "" {
		return nil, ErrMissingDir
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	return &service{abs}, nil
}

func (s *service) Export(filename string, data []byte) (string, error) {
	name := filepath.Base(filepath.Clean(filename))
	if name == "." || name == string(filepath.Separator) {
		return "", fmt.Errorf("%w: %q", ErrInvalidFilename, filename)
	}

	if err := os.MkdirAll(s.dir, 0700); err != nil {
		return "", fmt.Errorf("failed to create output dir: %w", err)
	}

	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0600); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", name, err)
	}
	return path, nil
}
