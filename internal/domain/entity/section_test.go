package entity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tuition/internal/errors"
)

func intPtr(v int) *int { return &v }

func TestProfileSection_Validate(t *testing.T) {
	tests := []struct {
		name    string
		section ProfileSection
		wantErr error
	}{
		{
			name: "valid",
			section: ProfileSection{ID: "about", Type: SectionTypeBasic, Size: SectionSizeFull, Fields: []FieldDescriptor{
				{ID: "name", Type: FieldTypeText, Size: FieldSizeMedium},
				{ID: "bio", Type: FieldTypeTextarea, Size: FieldSizeLarge},
			}},
		},
		{
			name:    "unknown section type",
			section: ProfileSection{ID: "about", Type: "hero", Size: SectionSizeFull},
			wantErr: ErrInvalidEnum,
		},
		{
			name:    "unknown section size",
			section: ProfileSection{ID: "about", Type: SectionTypeBasic, Size: "huge"},
			wantErr: ErrInvalidEnum,
		},
		{
			name: "unknown field type",
			section: ProfileSection{ID: "about", Type: SectionTypeBasic, Size: SectionSizeFull, Fields: []FieldDescriptor{
				{ID: "name", Type: "slider", Size: FieldSizeMedium},
			}},
			wantErr: ErrInvalidEnum,
		},
		{
			name: "duplicate field id",
			section: ProfileSection{ID: "about", Type: SectionTypeBasic, Size: SectionSizeFull, Fields: []FieldDescriptor{
				{ID: "name", Type: FieldTypeText, Size: FieldSizeMedium},
				{ID: "name", Type: FieldTypeTextarea, Size: FieldSizeMedium},
			}},
			wantErr: ErrDuplicateID,
		},
		{
			name: "min length above max length",
			section: ProfileSection{ID: "about", Type: SectionTypeBasic, Size: SectionSizeFull, Fields: []FieldDescriptor{
				{ID: "name", Type: FieldTypeText, Size: FieldSizeMedium, Validation: &FieldValidation{MinLength: intPtr(5), MaxLength: intPtr(2)}},
			}},
			wantErr: ErrInvalidValue,
		},
		{
			name:    "missing id",
			section: ProfileSection{Type: SectionTypeBasic, Size: SectionSizeFull},
			wantErr: ErrInvalidValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.section.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestProfileSection_Normalize_Defaults(t *testing.T) {
	s := ProfileSection{ID: " about ", Type: SectionTypeBasic, Fields: []FieldDescriptor{{ID: "name", Type: FieldTypeText}}}
	s.Normalize()

	assert.Equal(t, "about", s.ID)
	assert.Equal(t, SectionSizeFull, s.Size)
	assert.Equal(t, FieldSizeMedium, s.Fields[0].Size)
	assert.NoError(t, s.Validate())
}

func TestSortSections_StableOnTies(t *testing.T) {
	sections := []ProfileSection{
		{ID: "c", Order: 2},
		{ID: "a", Order: 1},
		{ID: "d", Order: 2},
		{ID: "b", Order: 1},
	}

	SortSections(sections)

	ids := make([]string, 0, len(sections))
	for _, s := range sections {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []string{"a", "b", "c", "d"}, ids)
}

func TestValidateSections_DuplicateSectionID(t *testing.T) {
	sections := []ProfileSection{
		{ID: "about", Type: SectionTypeBasic, Size: SectionSizeFull},
		{ID: "about", Type: SectionTypeContact, Size: SectionSizeFull},
	}

	err := ValidateSections(sections)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicateID))
}

func TestProfileTemplate_Layout_CopiesPlacementOnly(t *testing.T) {
	tmpl := ProfileTemplate{ID: "tutor", Name: "Tutor", Sections: []ProfileSection{
		{ID: "pricing", Type: SectionTypePricing, Order: 2, Visible: true, Config: map[string]any{"currency": "LKR"}},
		{ID: "about", Type: SectionTypeBasic, Order: 1, Visible: false, Fields: []FieldDescriptor{{ID: "name"}}},
	}}

	layout := tmpl.Layout()

	require.Len(t, layout, 2)
	assert.Equal(t, LayoutEntry{ID: "about", Type: SectionTypeBasic, Order: 1, Visible: false}, layout[0])
	assert.Equal(t, "pricing", layout[1].ID)
	assert.Equal(t, "LKR", layout[1].Config["currency"])

	// Mutating the template afterwards does not reach the copied layout.
	tmpl.Sections[0].Config["currency"] = "USD"
	assert.Equal(t, "LKR", layout[1].Config["currency"])
}

func TestSortByOrder_ExtremeOrders(t *testing.T) {
	orders := []int{math.MaxInt, math.MinInt, 0, -1}
	want := []int{math.MinInt, -1, 0, math.MaxInt}

	t.Run("sections", func(t *testing.T) {
		sections := make([]ProfileSection, 0, len(orders))
		for _, o := range orders {
			sections = append(sections, ProfileSection{Order: o})
		}
		SortSections(sections)

		got := make([]int, 0, len(sections))
		for _, s := range sections {
			got = append(got, s.Order)
		}
		assert.Equal(t, want, got)
	})

	t.Run("templates", func(t *testing.T) {
		templates := make([]ProfileTemplate, 0, len(orders))
		for _, o := range orders {
			templates = append(templates, ProfileTemplate{Order: o})
		}
		SortTemplates(templates)

		got := make([]int, 0, len(templates))
		for _, tpl := range templates {
			got = append(got, tpl.Order)
		}
		assert.Equal(t, want, got)
	})

	t.Run("visible fields", func(t *testing.T) {
		section := ProfileSection{}
		for _, o := range orders {
			section.Fields = append(section.Fields, FieldDescriptor{Visible: true, Order: o})
		}

		got := make([]int, 0, len(orders))
		for _, f := range section.VisibleFields() {
			got = append(got, f.Order)
		}
		assert.Equal(t, want, got)
	})

	t.Run("taxonomy", func(t *testing.T) {
		items := make([]TaxonomyItem, 0, len(orders))
		for _, o := range orders {
			items = append(items, TaxonomyItem{Order: o})
		}
		SortTaxonomy(items)

		got := make([]int, 0, len(items))
		for _, item := range items {
			got = append(got, item.Order)
		}
		assert.Equal(t, want, got)
	})
}
