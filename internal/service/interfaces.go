package service

import (
	"context"

	"github.com/MKhiriev/go-pass-fields/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// FieldService manages the custom fields of the record being edited.
// Fields are addressed by name, compared ignoring case; when several fields
// match, the first one in collection order is used.
type FieldService interface {
	// Load replaces the working collection with the stored one.
	Load(ctx context.Context) error
	// Save writes the working collection to the store and clears Modified.
	Save(ctx context.Context) error
	// Modified reports whether the collection changed since Load or Save.
	Modified() bool
	// MarkModified records a change made directly on a field returned by
	// Fields or Get.
	MarkModified()

	// Fields returns the working collection. Callers may mutate the fields
	// in place and must call MarkModified afterwards.
	Fields() *models.CustomFields
	// Get returns the first field matching name. Absence is not an error.
	Get(name string) (*models.CustomField, bool)

	// Add appends a new field. A maskable field starts masked.
	// Returns ErrFieldExists if a field with the same name exists.
	Add(name, value string, maskable bool) (*models.CustomField, error)
	// SetValue replaces the value of the named field.
	SetValue(name, value string) error
	// SetMasked stores the masked flag of the named field.
	SetMasked(name string, masked bool) error
	// Rename changes the name of a field. Returns ErrFieldExists if newName
	// matches another field.
	Rename(oldName, newName string) error
	// Delete removes the named field.
	Delete(name string) error
	// Merge folds other into the working collection, see
	// [models.CustomFields.Merge].
	Merge(other *models.CustomFields)
}
