package store

import (
	"context"

	"github.com/MKhiriev/go-pass-fields/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// FieldStore loads and saves the custom fields of a single record.
type FieldStore interface {
	// Load returns the stored fields in their saved order.
	// A missing document yields an empty collection.
	Load(ctx context.Context) (*models.CustomFields, error)
	// Save replaces the stored fields with fields.
	Save(ctx context.Context, fields *models.CustomFields) error
}
