// Package tui implements the terminal editor for custom fields on top of
// bubbletea: one [FieldRow] per field hosted by a scrolling [FieldsModel].
package tui
