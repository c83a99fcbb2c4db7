// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CustomField represents a user-defined name/value pair attached to a
// credential record, orthogonal to built-in fields such as username or
// password.
//
// Masked and Maskable are independent flags. Masked only has an effect
// when Maskable is true; use IsHidden to decide whether to hide Value.
// Value is always stored as given, masking never alters it.
type CustomField struct {
	// Name is the user-provided field identifier.
	// Uniqueness is not enforced; duplicates are the owning record's concern.
	Name string `json:"name"`

	// Value is the field content. It may be empty.
	Value string `json:"value"`

	// Masked is the current display state of the value.
	Masked bool `json:"masked"`

	// Maskable reports whether the value is allowed to be masked
	// (e.g. the field is marked as protected).
	Maskable bool `json:"maskable"`
}

// NewCustomField creates a field from the given attributes.
// No validation is performed; empty name and value are allowed.
func NewCustomField(name, value string, maskable, masked bool) *CustomField {
	return &CustomField{
		Name:     name,
		Value:    value,
		Masked:   masked,
		Maskable: maskable,
	}
}

func (f *CustomField) GetName() string { return f.Name }
func (f *CustomField) SetName(name string) { f.Name = name }
func (f *CustomField) GetValue() string { return f.Value }
func (f *CustomField) SetValue(v string) { f.Value = v }
func (f *CustomField) IsMasked() bool { return f.Masked }
func (f *CustomField) SetMasked(masked bool) { f.Masked = masked }
func (f *CustomField) IsMaskable() bool { return f.Maskable }

// SetMaskable changes the masking policy of the field.
// Masked is kept as is, so re-enabling masking restores the previous state.
func (f *CustomField) SetMaskable(maskable bool) { f.Maskable = maskable }

// IsHidden reports whether a renderer must hide the value.
// A non-maskable field is always revealed regardless of Masked.
func (f *CustomField) IsHidden() bool {
	return f.Maskable && f.Masked
}

// DisplayValue returns mask when the field is hidden, otherwise the raw Value.
func (f *CustomField) DisplayValue(mask string) string {
	if f.IsHidden() {
		return mask
	}
	return f.Value
}

// Clone returns an independent copy of the field.
func (f *CustomField) Clone() *CustomField {
	c := *f
	return &c
}
