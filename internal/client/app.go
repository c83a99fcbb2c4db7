package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-pass-fields/internal/config"
	"github.com/MKhiriev/go-pass-fields/internal/logger"
	"github.com/MKhiriev/go-pass-fields/internal/service"
	"github.com/MKhiriev/go-pass-fields/internal/store"
)

var _ Client = (*App)(nil)

type App struct {
	service  service.FieldService
	ui       UI
	importer store.FieldStore
	lookup   string
	out      io.Writer
	logger   *logger.Logger
}

// NewApp builds the application. importer may be nil when nothing is
// imported on start.
func NewApp(svc service.FieldService, ui UI, importer store.FieldStore, cfg config.App, log *logger.Logger) (*App, error) {
	if svc == nil {
		return nil, ErrNilService
	}
	if ui == nil && cfg.Lookup == "" {
		return nil, ErrNilUI
	}

	return &App{
		service:  svc,
		ui:       ui,
		importer: importer,
		lookup:   cfg.Lookup,
		out:      os.Stdout,
		logger:   log,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	if err := a.service.Load(ctx); err != nil {
		return err
	}

	if a.importer != nil {
		if err := a.importFields(ctx); err != nil {
			return err
		}
	}

	if a.lookup != "" {
		return a.printField(a.lookup)
	}

	uiErr := a.ui.Run(ctx)

	if a.service.Modified() {
		// the run context is usually cancelled by now
		if err := a.service.Save(context.WithoutCancel(ctx)); err != nil {
			a.logger.Error().Err(err).Msg("error saving custom fields on exit")
			return errors.Join(uiErr, err)
		}
	}

	if uiErr != nil {
		return fmt.Errorf("run ui: %w", uiErr)
	}
	return nil
}

func (a *App) importFields(ctx context.Context) error {
	other, err := a.importer.Load(ctx)
	if err != nil {
		return fmt.Errorf("import custom fields: %w", err)
	}

	a.service.Merge(other)
	a.logger.Info().Int("fields", other.Len()).Msg("custom fields imported")
	return nil
}

func (a *App) printField(name string) error {
	f, ok := a.service.Get(name)
	if !ok {
		return fmt.Errorf("field %q: %w", name, service.ErrFieldNotFound)
	}

	_, err := fmt.Fprintln(a.out, f.GetValue())
	return err
}
