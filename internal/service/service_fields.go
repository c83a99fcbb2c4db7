package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-fields/internal/logger"
	"github.com/MKhiriev/go-pass-fields/internal/store"
	"github.com/MKhiriev/go-pass-fields/models"
)

type fieldService struct {
	store    store.FieldStore
	fields   *models.CustomFields
	modified bool
	logger   *logger.Logger
}

// NewFieldService returns a [FieldService] backed by fieldStore.
// The working collection starts empty until Load is called.
func NewFieldService(fieldStore store.FieldStore, logger *logger.Logger) FieldService {
	return &fieldService{
		store:  fieldStore,
		fields: models.NewCustomFields(),
		logger: logger,
	}
}

func (s *fieldService) Load(ctx context.Context) error {
	fields, err := s.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load custom fields: %w", err)
	}

	s.fields = fields
	s.modified = false
	s.logger.Info().Int("fields", fields.Len()).Msg("custom fields loaded")
	return nil
}

func (s *fieldService) Save(ctx context.Context) error {
	if err := s.store.Save(ctx, s.fields); err != nil {
		return fmt.Errorf("save custom fields: %w", err)
	}

	s.modified = false
	s.logger.Info().Int("fields", s.fields.Len()).Msg("custom fields saved")
	return nil
}

func (s *fieldService) Modified() bool {
	return s.modified
}

func (s *fieldService) MarkModified() {
	s.modified = true
}

func (s *fieldService) Fields() *models.CustomFields {
	return s.fields
}

func (s *fieldService) Get(name string) (*models.CustomField, bool) {
	return s.fields.Find(name)
}

func (s *fieldService) Add(name, value string, maskable bool) (*models.CustomField, error) {
	if _, ok := s.fields.Find(name); ok {
		return nil, fmt.Errorf("add %q: %w", name, ErrFieldExists)
	}

	f := models.NewCustomField(name, value, maskable, maskable)
	s.fields.Append(f)
	s.modified = true
	s.logger.Debug().Str("field", name).Bool("maskable", maskable).Msg("custom field added")
	return f, nil
}

func (s *fieldService) SetValue(name, value string) error {
	f, err := s.find(name)
	if err != nil {
		return err
	}

	f.SetValue(value)
	s.modified = true
	return nil
}

func (s *fieldService) SetMasked(name string, masked bool) error {
	f, err := s.find(name)
	if err != nil {
		return err
	}

	f.SetMasked(masked)
	s.modified = true
	return nil
}

func (s *fieldService) Rename(oldName, newName string) error {
	idx := s.fields.IndexOf(oldName)
	if idx < 0 {
		return fmt.Errorf("rename %q: %w", oldName, ErrFieldNotFound)
	}

	if other := s.fields.IndexOf(newName); other >= 0 && other != idx {
		return fmt.Errorf("rename %q to %q: %w", oldName, newName, ErrFieldExists)
	}

	s.fields.At(idx).SetName(newName)
	s.modified = true
	s.logger.Debug().Str("from", oldName).Str("to", newName).Msg("custom field renamed")
	return nil
}

func (s *fieldService) Delete(name string) error {
	idx := s.fields.IndexOf(name)
	if idx < 0 {
		return fmt.Errorf("delete %q: %w", name, ErrFieldNotFound)
	}

	s.fields.Remove(idx)
	s.modified = true
	s.logger.Debug().Str("field", name).Msg("custom field deleted")
	return nil
}

func (s *fieldService) Merge(other *models.CustomFields) {
	if other == nil || other.Len() == 0 {
		return
	}

	s.fields.Merge(other)
	s.modified = true
	s.logger.Debug().Int("incoming", other.Len()).Int("fields", s.fields.Len()).Msg("custom fields merged")
}

func (s *fieldService) find(name string) (*models.CustomField, error) {
	f, ok := s.fields.Find(name)
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrFieldNotFound)
	}
	return f, nil
}
