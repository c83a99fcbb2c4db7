package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-pass-fields/internal/logger"
	"github.com/MKhiriev/go-pass-fields/models"
)

// fieldDocument is the on-disk layout of a field file.
type fieldDocument struct {
	Fields *models.CustomFields `json:"fields"`
}

// FileFieldStore keeps the custom fields of one record in a JSON document
// on the local filesystem.
type FileFieldStore struct {
	path   string
	logger *logger.Logger
}

// NewFileFieldStore returns a [FileFieldStore] bound to path.
// The file is not touched until Load or Save is called.
func NewFileFieldStore(path string, logger *logger.Logger) *FileFieldStore {
	return &FileFieldStore{
		path:   path,
		logger: logger,
	}
}

// Path returns the document location.
func (s *FileFieldStore) Path() string {
	return s.path
}

// Load reads the field document. A missing file is not an error and yields
// an empty collection.
func (s *FileFieldStore) Load(ctx context.Context) (*models.CustomFields, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.logger.Debug().Str("path", s.path).Msg("field document not found, starting empty")
		return models.NewCustomFields(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadingFields, err)
	}

	var doc fieldDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodingFields, err)
	}
	if doc.Fields == nil {
		doc.Fields = models.NewCustomFields()
	}

	s.logger.Debug().Str("path", s.path).Int("fields", doc.Fields.Len()).Msg("field document loaded")
	return doc.Fields, nil
}

// Save writes fields to a temporary file next to the document and renames it
// over the document, so readers never observe a partial write.
func (s *FileFieldStore) Save(ctx context.Context, fields *models.CustomFields) error {
	if fields == nil {
		return ErrNilFields
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(fieldDocument{Fields: fields}, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWritingFields, err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWritingFields, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %w", ErrWritingFields, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingFields, err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingFields, err)
	}

	s.logger.Debug().Str("path", s.path).Int("fields", fields.Len()).Msg("field document saved")
	return nil
}
