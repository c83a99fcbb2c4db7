// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"iter"

	"github.com/MKhiriev/go-pass-fields/internal/utils"
)

// CustomFields is the ordered list of custom fields owned by a single
// credential record. Order is the order in which the user added the fields
// and is preserved through JSON encoding.
//
// The zero value is an empty collection ready to use.
type CustomFields struct {
	fields []*CustomField
}

// NewCustomFields creates a collection holding fields in the given order.
func NewCustomFields(fields ...*CustomField) *CustomFields {
	c := &CustomFields{fields: make([]*CustomField, 0, len(fields))}
	c.fields = append(c.fields, fields...)
	return c
}

// Len returns the number of fields.
func (c *CustomFields) Len() int {
	return len(c.fields)
}

// At returns the field at index i, or nil when i is out of range.
func (c *CustomFields) At(i int) *CustomField {
	if i < 0 || i >= len(c.fields) {
		return nil
	}
	return c.fields[i]
}

// Append adds f to the end of the collection.
func (c *CustomFields) Append(f *CustomField) {
	c.fields = append(c.fields, f)
}

// Remove deletes the field at index i. It reports false if i is out of range.
func (c *CustomFields) Remove(i int) bool {
	if i < 0 || i >= len(c.fields) {
		return false
	}
	c.fields = append(c.fields[:i], c.fields[i+1:]...)
	return true
}

// Move relocates the field at index from to index to, shifting the others.
func (c *CustomFields) Move(from, to int) bool {
	if from < 0 || from >= len(c.fields) || to < 0 || to >= len(c.fields) {
		return false
	}
	if from == to {
		return true
	}

	f := c.fields[from]
	c.fields = append(c.fields[:from], c.fields[from+1:]...)
	c.fields = append(c.fields[:to], append([]*CustomField{f}, c.fields[to:]...)...)
	return true
}

// All iterates name -> field in collection order.
func (c *CustomFields) All() iter.Seq2[string, *CustomField] {
	return func(yield func(string, *CustomField) bool) {
		for _, f := range c.fields {
			if !yield(f.Name, f) {
				return
			}
		}
	}
}

// Names returns the field names in collection order.
func (c *CustomFields) Names() []string {
	names := make([]string, 0, len(c.fields))
	for _, f := range c.fields {
		names = append(names, f.Name)
	}
	return names
}

// Find returns the first field whose name matches name ignoring case.
func (c *CustomFields) Find(name string) (*CustomField, bool) {
	return utils.LookupFold(c.All(), name)
}

// IndexOf returns the index of the first field whose name matches name
// ignoring case, or -1.
func (c *CustomFields) IndexOf(name string) int {
	return utils.IndexFold(c.Names(), name)
}

// Merge folds other into c. A field of other whose name matches an existing
// field ignoring case overwrites that field's value and mask flags while the
// existing name casing is kept; unmatched fields are appended as copies.
// Fields of other are processed in order, so a later duplicate in other
// overwrites the result of an earlier one.
func (c *CustomFields) Merge(other *CustomFields) {
	if other == nil {
		return
	}

	for _, incoming := range other.fields {
		if existing, ok := c.Find(incoming.Name); ok {
			existing.Value = incoming.Value
			existing.Maskable = incoming.Maskable
			existing.Masked = incoming.Masked
			continue
		}
		c.fields = append(c.fields, incoming.Clone())
	}
}

// Clone returns a deep copy of the collection.
func (c *CustomFields) Clone() *CustomFields {
	out := &CustomFields{fields: make([]*CustomField, 0, len(c.fields))}
	for _, f := range c.fields {
		out.fields = append(out.fields, f.Clone())
	}
	return out
}

// MarshalJSON encodes the collection as an ordered JSON array.
func (c *CustomFields) MarshalJSON() ([]byte, error) {
	if c.fields == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(c.fields)
}

// UnmarshalJSON decodes an ordered JSON array of fields.
// null entries are skipped.
func (c *CustomFields) UnmarshalJSON(b []byte) error {
	var decoded []*CustomField
	if err := json.Unmarshal(b, &decoded); err != nil {
		return err
	}

	fields := make([]*CustomField, 0, len(decoded))
	for _, f := range decoded {
		if f != nil {
			fields = append(fields, f)
		}
	}
	c.fields = fields
	return nil
}
