package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tdex-network/btcqr/internal/core/application"
	"github.com/tdex-network/btcqr/internal/core/domain"
)

// ReadSeedPhrase runs the seed entry screen until the user either confirms
// a complete phrase or quits. The returned bool is false in the latter case.
func ReadSeedPhrase(
	qrSvc application.QRService, phrase *domain.SeedPhrase,
	opts ...tea.ProgramOption,
) (bool, error) {
	model := NewModel(qrSvc, phrase)
	final, err := tea.NewProgram(model, opts...).Run()
	if err != nil {
		return false, fmt.Errorf("seed entry failed: %w", err)
	}
	return final.(*Model).Confirmed(), nil
}
