package entity

import (
	"strings"

	"tuition/internal/errors"
)

// FieldType selects the input a field descriptor renders as.
type FieldType string

const (
	FieldTypeText        FieldType = "text"
	FieldTypeTextarea    FieldType = "textarea"
	FieldTypeSelect      FieldType = "select"
	FieldTypeMultiselect FieldType = "multiselect"
	FieldTypeCheckbox    FieldType = "checkbox"
	FieldTypeRadio       FieldType = "radio"
	FieldTypeNumber      FieldType = "number"
	FieldTypeEmail       FieldType = "email"
	FieldTypePhone       FieldType = "phone"
	FieldTypeURL         FieldType = "url"
	FieldTypeDate        FieldType = "date"
	FieldTypeFile        FieldType = "file"
	FieldTypeRating      FieldType = "rating"
)

// IsValid checks if the FieldType is a known value.
func (t FieldType) IsValid() bool {
	switch t {
	case FieldTypeText, FieldTypeTextarea, FieldTypeSelect, FieldTypeMultiselect,
		FieldTypeCheckbox, FieldTypeRadio, FieldTypeNumber, FieldTypeEmail,
		FieldTypePhone, FieldTypeURL, FieldTypeDate, FieldTypeFile, FieldTypeRating:
		return true
	default:
		return false
	}
}

// HasOptions reports whether the type picks from a fixed option list.
func (t FieldType) HasOptions() bool {
	return t == FieldTypeSelect || t == FieldTypeMultiselect || t == FieldTypeRadio
}

// FieldSize is the rendered width of a field.
type FieldSize string

const (
	FieldSizeSmall  FieldSize = "small"
	FieldSizeMedium FieldSize = "medium"
	FieldSizeLarge  FieldSize = "large"
)

// IsValid checks if the FieldSize is a known value.
func (s FieldSize) IsValid() bool {
	switch s {
	case FieldSizeSmall, FieldSizeMedium, FieldSizeLarge:
		return true
	default:
		return false
	}
}

// FieldValidation is the declarative rule set attached to a field.
// Every rule is optional; a nil pointer means the rule is absent.
type FieldValidation struct {
	Required      bool     `json:"required,omitempty"`
	MinLength     *int     `json:"minLength,omitempty"`
	MaxLength     *int     `json:"maxLength,omitempty"`
	Min           *float64 `json:"min,omitempty"`
	Max           *float64 `json:"max,omitempty"`
	Pattern       string   `json:"pattern,omitempty"`
	AllowedValues []string `json:"allowedValues,omitempty"`
}

// FieldOption is one choice of a select, multiselect or radio field.
type FieldOption struct {
	Value       string `json:"value"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
	IsDefault   bool   `json:"isDefault,omitempty"`
}

// FieldDescriptor describes a single form field.
type FieldDescriptor struct {
	ID           string           `json:"id"`
	Type         FieldType        `json:"type"`
	Label        string           `json:"label"`
	Placeholder  string           `json:"placeholder,omitempty"`
	Description  string           `json:"description,omitempty"`
	Visible      bool             `json:"visible"`
	Order        int              `json:"order"`
	Validation   *FieldValidation `json:"validation,omitempty"`
	Options      []FieldOption    `json:"options,omitempty"`
	DefaultValue any              `json:"defaultValue,omitempty"`
	Size         FieldSize        `json:"size"`
	Multiline    bool             `json:"multiline,omitempty"`
	Searchable   bool             `json:"searchable,omitempty"`
}

// Normalize fills defaults that the admin UI may omit.
func (f *FieldDescriptor) Normalize() {
	f.ID = strings.TrimSpace(f.ID)
	if f.Size == "" {
		f.Size = FieldSizeMedium
	}
}

// Validate checks the descriptor's own consistency.
func (f *FieldDescriptor) Validate() error {
	if f.ID == "" {
		return errors.Wrap(ErrInvalidValue, "field id is required")
	}
	if !f.Type.IsValid() {
		return errors.Wrapf(ErrInvalidEnum, "field %q: unknown type %q", f.ID, f.Type)
	}
	if !f.Size.IsValid() {
		return errors.Wrapf(ErrInvalidEnum, "field %q: unknown size %q", f.ID, f.Size)
	}
	if v := f.Validation; v != nil {
		if v.MinLength != nil && *v.MinLength < 0 {
			return errors.Wrapf(ErrInvalidValue, "field %q: minLength must not be negative", f.ID)
		}
		if v.MinLength != nil && v.MaxLength != nil && *v.MinLength > *v.MaxLength {
			return errors.Wrapf(ErrInvalidValue, "field %q: minLength exceeds maxLength", f.ID)
		}
		if v.Min != nil && v.Max != nil && *v.Min > *v.Max {
			return errors.Wrapf(ErrInvalidValue, "field %q: min exceeds max", f.ID)
		}
	}

	seen := make(map[string]struct{}, len(f.Options))
	for _, opt := range f.Options {
		if _, dup := seen[opt.Value]; dup {
			return errors.Wrapf(ErrDuplicateID, "field %q: option %q", f.ID, opt.Value)
		}
		seen[opt.Value] = struct{}{}
	}

	return nil
}
