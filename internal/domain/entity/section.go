package entity

import (
	"cmp"
	"slices"
	"strings"

	"tuition/internal/errors"
)

// SectionType classifies a profile section.
type SectionType string

const (
	SectionTypeBasic        SectionType = "basic"
	SectionTypeEducation    SectionType = "education"
	SectionTypeExperience   SectionType = "experience"
	SectionTypePricing      SectionType = "pricing"
	SectionTypeContact      SectionType = "contact"
	SectionTypeAvailability SectionType = "availability"
	SectionTypeCustom       SectionType = "custom"
)

// IsValid checks if the SectionType is a known value.
func (t SectionType) IsValid() bool {
	switch t {
	case SectionTypeBasic, SectionTypeEducation, SectionTypeExperience, SectionTypePricing,
		SectionTypeContact, SectionTypeAvailability, SectionTypeCustom:
		return true
	default:
		return false
	}
}

// SectionSize is the rendered width of a section.
type SectionSize string

const (
	SectionSizeSmall  SectionSize = "small"
	SectionSizeMedium SectionSize = "medium"
	SectionSizeLarge  SectionSize = "large"
	SectionSizeFull   SectionSize = "full"
)

// IsValid checks if the SectionSize is a known value.
func (s SectionSize) IsValid() bool {
	switch s {
	case SectionSizeSmall, SectionSizeMedium, SectionSizeLarge, SectionSizeFull:
		return true
	default:
		return false
	}
}

// ProfileSection groups field descriptors under a titled, ordered block.
type ProfileSection struct {
	ID          string            `json:"id"`
	Type        SectionType       `json:"type"`
	Title       string            `json:"title"`
	Description string            `json:"description,omitempty"`
	Visible     bool              `json:"visible"`
	Order       int               `json:"order"`
	Required    bool              `json:"required"`
	Size        SectionSize       `json:"size"`
	Fields      []FieldDescriptor `json:"fields"`
	Config      map[string]any    `json:"config,omitempty"`
	Version     int64             `json:"version,omitempty"`
}

// Normalize fills defaults on the section and its fields.
func (s *ProfileSection) Normalize() {
	s.ID = strings.TrimSpace(s.ID)
	if s.Size == "" {
		s.Size = SectionSizeFull
	}
	if s.Fields == nil {
		s.Fields = []FieldDescriptor{}
	}
	for i := range s.Fields {
		s.Fields[i].Normalize()
	}
}

// Validate checks enums and field id uniqueness.
func (s *ProfileSection) Validate() error {
	if s.ID == "" {
		return errors.Wrap(ErrInvalidValue, "section id is required")
	}
	if !s.Type.IsValid() {
		return errors.Wrapf(ErrInvalidEnum, "section %q: unknown type %q", s.ID, s.Type)
	}
	if !s.Size.IsValid() {
		return errors.Wrapf(ErrInvalidEnum, "section %q: unknown size %q", s.ID, s.Size)
	}

	seen := make(map[string]struct{}, len(s.Fields))
	for i := range s.Fields {
		if err := s.Fields[i].Validate(); err != nil {
			return errors.Wrapf(err, "section %q", s.ID)
		}
		if _, dup := seen[s.Fields[i].ID]; dup {
			return errors.Wrapf(ErrDuplicateID, "section %q: field %q", s.ID, s.Fields[i].ID)
		}
		seen[s.Fields[i].ID] = struct{}{}
	}

	return nil
}

// Field returns the field with the given id.
func (s *ProfileSection) Field(id string) (FieldDescriptor, bool) {
	for _, f := range s.Fields {
		if f.ID == id {
			return f, true
		}
	}

	return FieldDescriptor{}, false
}

// VisibleFields returns visible fields in render order. Equal orders keep
// their original relative position.
func (s *ProfileSection) VisibleFields() []FieldDescriptor {
	fields := make([]FieldDescriptor, 0, len(s.Fields))
	for _, f := range s.Fields {
		if f.Visible {
			fields = append(fields, f)
		}
	}
	slices.SortStableFunc(fields, func(a, b FieldDescriptor) int {
		return cmp.Compare(a.Order, b.Order)
	})

	return fields
}

// PublicView returns a copy carrying only visible fields in render order.
func (s ProfileSection) PublicView() ProfileSection {
	s.Fields = s.VisibleFields()

	return s
}

// SortSections orders sections by Order, keeping the relative position of ties.
func SortSections(sections []ProfileSection) {
	slices.SortStableFunc(sections, func(a, b ProfileSection) int {
		return cmp.Compare(a.Order, b.Order)
	})
}

// ValidateSections validates every section and rejects repeated ids.
func ValidateSections(sections []ProfileSection) error {
	seen := make(map[string]struct{}, len(sections))
	for i := range sections {
		if err := sections[i].Validate(); err != nil {
			return err
		}
		if _, dup := seen[sections[i].ID]; dup {
			return errors.Wrapf(ErrDuplicateID, "section %q", sections[i].ID)
		}
		seen[sections[i].ID] = struct{}{}
	}

	return nil
}

// SectionOrder assigns a new order to the section with the given id.
type SectionOrder struct {
	ID    string `json:"id" validate:"required"`
	Order int    `json:"order"`
}
