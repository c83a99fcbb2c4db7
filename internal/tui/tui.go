package tui

import (
	"context"

	"github.com/MKhiriev/go-pass-fields/internal/config"
	"github.com/MKhiriev/go-pass-fields/internal/logger"
	"github.com/MKhiriev/go-pass-fields/internal/service"
	tea "github.com/charmbracelet/bubbletea"
)

// TUI runs the interactive custom field editor.
type TUI struct {
	service service.FieldService
	cfg     config.UI
	logger  *logger.Logger
}

func New(svc service.FieldService, cfg config.UI, log *logger.Logger) *TUI {
	return &TUI{service: svc, cfg: cfg, logger: log}
}

// Run blocks until the user quits. Edits are applied to the service's working
// collection; saving on exit is the caller's decision.
func (t *TUI) Run(ctx context.Context) error {
	model := NewFieldsModel(ctx, t.service, t.cfg, t.logger)
	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}
