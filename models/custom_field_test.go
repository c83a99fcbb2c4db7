package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomField_StoresAttributesVerbatim(t *testing.T) {
	f := NewCustomField("PIN", "1234", true, true)

	assert.Equal(t, "PIN", f.GetName())
	assert.Equal(t, "1234", f.GetValue())
	assert.True(t, f.IsMasked())
	assert.True(t, f.IsMaskable())
	assert.True(t, f.IsHidden())
}

func TestNewCustomField_EmptyStringsAllowed(t *testing.T) {
	f := NewCustomField("", "", false, false)

	assert.Empty(t, f.Name)
	assert.Empty(t, f.Value)
	assert.False(t, f.IsHidden())
}

func TestCustomField_DisplayValue(t *testing.T) {
	const mask = "****"

	tests := []struct {
		name     string
		maskable bool
		masked   bool
		want     string
	}{
		{name: "maskable and masked", maskable: true, masked: true, want: mask},
		{name: "maskable and revealed", maskable: true, masked: false, want: "s3cret"},
		{name: "not maskable but masked flag set", maskable: false, masked: true, want: "s3cret"},
		{name: "not maskable and not masked", maskable: false, masked: false, want: "s3cret"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewCustomField("token", "s3cret", tt.maskable, tt.masked)
			assert.Equal(t, tt.want, f.DisplayValue(mask))
			assert.Equal(t, "s3cret", f.Value, "masking must never alter the stored value")
		})
	}
}

func TestCustomField_SetMaskedOnNonMaskable(t *testing.T) {
	f := NewCustomField("note", "visible", false, false)

	f.SetMasked(true)

	assert.True(t, f.IsMasked(), "raw flag is stored faithfully")
	assert.False(t, f.IsHidden())
	assert.Equal(t, "visible", f.DisplayValue("•••"))
}

func TestCustomField_SetMaskableKeepsMaskedState(t *testing.T) {
	f := NewCustomField("otp", "seed", true, true)

	f.SetMaskable(false)
	assert.False(t, f.IsHidden())

	f.SetMaskable(true)
	assert.True(t, f.IsHidden())
}

func TestCustomField_Setters(t *testing.T) {
	f := NewCustomField("a", "b", false, false)

	f.SetName("Account")
	f.SetValue("42")

	assert.Equal(t, "Account", f.GetName())
	assert.Equal(t, "42", f.GetValue())
}

func TestCustomField_Clone(t *testing.T) {
	f := NewCustomField("a", "b", true, true)
	c := f.Clone()
	c.Value = "changed"

	assert.Equal(t, "b", f.Value)
	assert.Equal(t, "changed", c.Value)
}

func TestCustomField_JSON(t *testing.T) {
	f := NewCustomField("PIN", "1234", true, false)

	b, err := json.Marshal(f)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"PIN","value":"1234","masked":false,"maskable":true}`, string(b))
}
