package entity

import (
	"cmp"
	"slices"
	"strings"

	"tuition/internal/errors"
)

// ProfileTemplate is a named, reusable bundle of sections.
type ProfileTemplate struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	Tags        []string         `json:"tags"`
	Active      bool             `json:"active"`
	Order       int              `json:"order"`
	Sections    []ProfileSection `json:"sections"`
	IsDefault   bool             `json:"isDefault"`
	Version     int64            `json:"version,omitempty"`
}

// Normalize fills defaults on the template and its sections.
func (t *ProfileTemplate) Normalize() {
	t.ID = strings.TrimSpace(t.ID)
	if t.Tags == nil {
		t.Tags = []string{}
	}
	if t.Sections == nil {
		t.Sections = []ProfileSection{}
	}
	for i := range t.Sections {
		t.Sections[i].Normalize()
	}
}

// Validate checks the template's sections.
func (t *ProfileTemplate) Validate() error {
	if t.ID == "" {
		return errors.Wrap(ErrInvalidValue, "template id is required")
	}
	if strings.TrimSpace(t.Name) == "" {
		return errors.Wrapf(ErrInvalidValue, "template %q: name is required", t.ID)
	}
	if err := ValidateSections(t.Sections); err != nil {
		return errors.Wrapf(err, "template %q", t.ID)
	}

	return nil
}

// Layout copies section placement into teacher layout entries. Field
// detail is not carried over.
func (t *ProfileTemplate) Layout() []LayoutEntry {
	sections := slices.Clone(t.Sections)
	SortSections(sections)

	layout := make([]LayoutEntry, 0, len(sections))
	for _, s := range sections {
		layout = append(layout, LayoutEntry{
			ID:      s.ID,
			Type:    s.Type,
			Order:   s.Order,
			Visible: s.Visible,
			Config:  cloneMap(s.Config),
		})
	}

	return layout
}

// PublicView returns a copy with only visible sections and fields.
func (t ProfileTemplate) PublicView() ProfileTemplate {
	sections := make([]ProfileSection, 0, len(t.Sections))
	for _, s := range t.Sections {
		if s.Visible {
			sections = append(sections, s.PublicView())
		}
	}
	SortSections(sections)
	t.Sections = sections

	return t
}

// SortTemplates orders templates by Order, keeping the relative position of ties.
func SortTemplates(templates []ProfileTemplate) {
	slices.SortStableFunc(templates, func(a, b ProfileTemplate) int {
		return cmp.Compare(a.Order, b.Order)
	})
}

func cloneMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}

	return out
}
