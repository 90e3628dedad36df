package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_SeedsLevelsSubjectsAndGrades(t *testing.T) {
	cfg := DefaultConfig("default")

	require.Len(t, cfg.EducationLevels, 3)
	assert.Equal(t, "PRIMARY", cfg.EducationLevels[0].Code)
	assert.Equal(t, "OL", cfg.EducationLevels[1].Code)
	assert.Equal(t, "AL", cfg.EducationLevels[2].Code)
	for i, lvl := range cfg.EducationLevels {
		assert.True(t, lvl.Active)
		assert.Equal(t, i+1, lvl.Order)
	}
	assert.Equal(t, 6, cfg.EducationLevels[1].Attributes[AttrMinGrade])
	assert.Equal(t, 11, cfg.EducationLevels[1].Attributes[AttrMaxGrade])

	assert.Len(t, cfg.Subjects, 3)
	require.Len(t, cfg.Grades, 13)
	assert.Equal(t, "G1", cfg.Grades[0].Code)
	assert.Equal(t, "G13", cfg.Grades[12].Code)
	assert.Equal(t, "AL", cfg.Grades[12].Attributes[AttrEducationLevel])

	assert.Empty(t, cfg.ProfileSections)
	assert.Empty(t, cfg.ProfileTemplates)
	assert.Equal(t, DefaultSettings(), cfg.Settings)
}

func TestDynamicConfig_SubjectsForLevel(t *testing.T) {
	cfg := DefaultConfig("default")

	assert.Equal(t, 3, cfg.SubjectsForLevel("PRIMARY"))
	assert.Equal(t, 2, cfg.SubjectsForLevel("AL"))
	assert.Equal(t, 0, cfg.SubjectsForLevel("UNKNOWN"))
}

func TestDynamicConfig_Public_HidesInactiveAndHidden(t *testing.T) {
	cfg := DefaultConfig("default")
	cfg.EducationLevels[1].Active = false
	cfg.Cities = []TaxonomyItem{
		{Code: "B", Name: "Beta", Active: true, Order: 2},
		{Code: "A", Name: "Alpha", Active: true, Order: 1},
		{Code: "Z", Name: "Zeta", Active: false, Order: 0},
	}
	cfg.ProfileSections = []ProfileSection{
		{
			ID: "about", Type: SectionTypeBasic, Visible: true, Order: 2,
			Fields: []FieldDescriptor{
				{ID: "bio", Type: FieldTypeTextarea, Visible: true, Order: 2},
				{ID: "secret", Type: FieldTypeText, Visible: false, Order: 1},
				{ID: "name", Type: FieldTypeText, Visible: true, Order: 1},
			},
		},
		{ID: "hidden", Type: SectionTypeCustom, Visible: false, Order: 1},
		{ID: "pricing", Type: SectionTypePricing, Visible: true, Order: 1},
	}
	cfg.ProfileTemplates = []ProfileTemplate{
		{ID: "off", Name: "Off", Active: false},
		{ID: "on", Name: "On", Active: true, Sections: []ProfileSection{
			{ID: "x", Type: SectionTypeBasic, Visible: false},
			{ID: "y", Type: SectionTypeBasic, Visible: true},
		}},
	}

	pub := cfg.Public()

	require.Len(t, pub.EducationLevels, 2)
	assert.Equal(t, "PRIMARY", pub.EducationLevels[0].Code)
	assert.Equal(t, "AL", pub.EducationLevels[1].Code)

	require.Len(t, pub.Cities, 2)
	assert.Equal(t, "A", pub.Cities[0].Code)
	assert.Equal(t, "B", pub.Cities[1].Code)

	require.Len(t, pub.ProfileSections, 2)
	assert.Equal(t, "pricing", pub.ProfileSections[0].ID)
	assert.Equal(t, "about", pub.ProfileSections[1].ID)
	fields := pub.ProfileSections[1].Fields
	require.Len(t, fields, 2)
	assert.Equal(t, "name", fields[0].ID)
	assert.Equal(t, "bio", fields[1].ID)

	require.Len(t, pub.ProfileTemplates, 1)
	assert.Equal(t, "on", pub.ProfileTemplates[0].ID)
	require.Len(t, pub.ProfileTemplates[0].Sections, 1)
	assert.Equal(t, "y", pub.ProfileTemplates[0].Sections[0].ID)

	// The stored config is untouched by the projection.
	assert.Len(t, cfg.ProfileSections[0].Fields, 3)
}

func TestTaxonomyKindFromPath(t *testing.T) {
	tests := []struct {
		path string
		kind TaxonomyKind
		ok   bool
	}{
		{"education-levels", TaxonomyEducationLevel, true},
		{"subjects", TaxonomySubject, true},
		{"grades", TaxonomyGrade, true},
		{"cities", TaxonomyCity, true},
		{"districts", TaxonomyDistrict, true},
		{"provinces", TaxonomyProvince, true},
		{"profile-sections", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			kind, ok := TaxonomyKindFromPath(tt.path)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.kind, kind)
			if ok {
				assert.Equal(t, tt.path, kind.Path())
			}
		})
	}
}

func TestTaxonomyItem_StringList(t *testing.T) {
	item := TaxonomyItem{Attributes: map[string]any{
		AttrEducationLevels: []any{"OL", 3, "AL"},
		"single":            "PRIMARY",
	}}

	assert.Equal(t, []string{"OL", "AL"}, item.StringList(AttrEducationLevels))
	assert.Equal(t, []string{"PRIMARY"}, item.StringList("single"))
	assert.Nil(t, item.StringList("missing"))
	assert.True(t, item.ReferencesLevel("AL"))
	assert.False(t, item.ReferencesLevel("PRIMARY"))
}
