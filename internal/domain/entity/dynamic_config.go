package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ConfigSettings holds the caps and switches admins tune per config.
// A zero cap disables the corresponding limit.
type ConfigSettings struct {
	MaxEducationLevels  int  `json:"maxEducationLevels" validate:"gte=0"`
	MaxSubjectsPerLevel int  `json:"maxSubjectsPerLevel" validate:"gte=0"`
	MaxCustomFields     int  `json:"maxCustomFields" validate:"gte=0"`
	AllowCustomSections bool `json:"allowCustomSections"`
	RequireApproval     bool `json:"requireApproval"`
}

// DefaultSettings returns the settings a freshly seeded config carries.
func DefaultSettings() ConfigSettings {
	return ConfigSettings{
		MaxEducationLevels:  10,
		MaxSubjectsPerLevel: 50,
		MaxCustomFields:     20,
		AllowCustomSections: true,
		RequireApproval:     true,
	}
}

// DynamicConfig is the full admin-editable catalog stored under one key.
type DynamicConfig struct {
	ID               uuid.UUID         `json:"id"`
	Key              string            `json:"key"`
	Active           bool              `json:"active"`
	EducationLevels  []TaxonomyItem    `json:"educationLevels"`
	Subjects         []TaxonomyItem    `json:"subjects"`
	Grades           []TaxonomyItem    `json:"grades"`
	Cities           []TaxonomyItem    `json:"cities"`
	Districts        []TaxonomyItem    `json:"districts"`
	Provinces        []TaxonomyItem    `json:"provinces"`
	ProfileSections  []ProfileSection  `json:"profileSections"`
	ProfileTemplates []ProfileTemplate `json:"profileTemplates"`
	Settings         ConfigSettings    `json:"settings"`
	GeneralSettings  map[string]any    `json:"generalSettings"`
	BrandingSettings map[string]any    `json:"brandingSettings"`
	Version          int64             `json:"version"`
	CreatedAt        time.Time         `json:"createdAt"`
	UpdatedAt        time.Time         `json:"updatedAt"`
}

// Taxonomy returns the items of the given kind.
func (c *DynamicConfig) Taxonomy(kind TaxonomyKind) []TaxonomyItem {
	switch kind {
	case TaxonomyEducationLevel:
		return c.EducationLevels
	case TaxonomySubject:
		return c.Subjects
	case TaxonomyGrade:
		return c.Grades
	case TaxonomyCity:
		return c.Cities
	case TaxonomyDistrict:
		return c.Districts
	case TaxonomyProvince:
		return c.Provinces
	default:
		return nil
	}
}

// SetTaxonomy replaces the items of the given kind.
func (c *DynamicConfig) SetTaxonomy(kind TaxonomyKind, items []TaxonomyItem) {
	switch kind {
	case TaxonomyEducationLevel:
		c.EducationLevels = items
	case TaxonomySubject:
		c.Subjects = items
	case TaxonomyGrade:
		c.Grades = items
	case TaxonomyCity:
		c.Cities = items
	case TaxonomyDistrict:
		c.Districts = items
	case TaxonomyProvince:
		c.Provinces = items
	}
}

// TaxonomyItem finds an item by kind and code.
func (c *DynamicConfig) TaxonomyItem(kind TaxonomyKind, code string) (TaxonomyItem, bool) {
	for _, item := range c.Taxonomy(kind) {
		if item.Code == code {
			return item, true
		}
	}

	return TaxonomyItem{}, false
}

// Section finds a profile section by id.
func (c *DynamicConfig) Section(id string) (ProfileSection, bool) {
	for _, s := range c.ProfileSections {
		if s.ID == id {
			return s, true
		}
	}

	return ProfileSection{}, false
}

// Template finds a profile template by id.
func (c *DynamicConfig) Template(id string) (ProfileTemplate, bool) {
	for _, t := range c.ProfileTemplates {
		if t.ID == id {
			return t, true
		}
	}

	return ProfileTemplate{}, false
}

// SubjectsForLevel counts subjects offered at the education level.
func (c *DynamicConfig) SubjectsForLevel(level string) int {
	count := 0
	for i := range c.Subjects {
		if c.Subjects[i].ReferencesLevel(level) {
			count++
		}
	}

	return count
}

// Public builds the projection served to unauthenticated clients.
func (c *DynamicConfig) Public() *PublicConfig {
	sections := make([]ProfileSection, 0, len(c.ProfileSections))
	for _, s := range c.ProfileSections {
		if s.Visible {
			sections = append(sections, s.PublicView())
		}
	}
	SortSections(sections)

	templates := make([]ProfileTemplate, 0, len(c.ProfileTemplates))
	for _, t := range c.ProfileTemplates {
		if t.Active {
			templates = append(templates, t.PublicView())
		}
	}
	SortTemplates(templates)

	return &PublicConfig{
		Key:              c.Key,
		EducationLevels:  ActiveTaxonomy(c.EducationLevels),
		Subjects:         ActiveTaxonomy(c.Subjects),
		Grades:           ActiveTaxonomy(c.Grades),
		Cities:           ActiveTaxonomy(c.Cities),
		Districts:        ActiveTaxonomy(c.Districts),
		Provinces:        ActiveTaxonomy(c.Provinces),
		ProfileSections:  sections,
		ProfileTemplates: templates,
		Settings:         c.Settings,
	}
}

// PublicConfig is the active and visible subset of a DynamicConfig.
type PublicConfig struct {
	Key              string            `json:"key"`
	EducationLevels  []TaxonomyItem    `json:"educationLevels"`
	Subjects         []TaxonomyItem    `json:"subjects"`
	Grades           []TaxonomyItem    `json:"grades"`
	Cities           []TaxonomyItem    `json:"cities"`
	Districts        []TaxonomyItem    `json:"districts"`
	Provinces        []TaxonomyItem    `json:"provinces"`
	ProfileSections  []ProfileSection  `json:"profileSections"`
	ProfileTemplates []ProfileTemplate `json:"profileTemplates"`
	Settings         ConfigSettings    `json:"settings"`
}

type levelSeed struct {
	code     string
	name     string
	minGrade int
	maxGrade int
}

var seedLevels = []levelSeed{
	{code: "PRIMARY", name: "Primary", minGrade: 1, maxGrade: 5},
	{code: "OL", name: "Ordinary Level", minGrade: 6, maxGrade: 11},
	{code: "AL", name: "Advanced Level", minGrade: 12, maxGrade: 13},
}

// DefaultConfig returns the catalog persisted when a key is first seeded:
// three education levels, three subjects and thirteen grades, with no
// sections or templates.
func DefaultConfig(key string) *DynamicConfig {
	levels := make([]TaxonomyItem, 0, len(seedLevels))
	var grades []TaxonomyItem
	for i, lvl := range seedLevels {
		levels = append(levels, TaxonomyItem{
			Kind:   TaxonomyEducationLevel,
			Code:   lvl.code,
			Name:   lvl.name,
			Active: true,
			Order:  i + 1,
			Attributes: map[string]any{
				AttrMinGrade: lvl.minGrade,
				AttrMaxGrade: lvl.maxGrade,
			},
		})
		for g := lvl.minGrade; g <= lvl.maxGrade; g++ {
			grades = append(grades, TaxonomyItem{
				Kind:   TaxonomyGrade,
				Code:   fmt.Sprintf("G%d", g),
				Name:   fmt.Sprintf("Grade %d", g),
				Active: true,
				Order:  g,
				Attributes: map[string]any{
					AttrEducationLevel: lvl.code,
					AttrLevel:          g,
				},
			})
		}
	}

	allLevels := []any{"PRIMARY", "OL", "AL"}
	subjects := []TaxonomyItem{
		{
			Kind: TaxonomySubject, Code: "MATH", Name: "Mathematics", Active: true, Order: 1,
			Attributes: map[string]any{AttrEducationLevels: allLevels, AttrCategory: "core"},
		},
		{
			Kind: TaxonomySubject, Code: "SCIENCE", Name: "Science", Active: true, Order: 2,
			Attributes: map[string]any{AttrEducationLevels: []any{"PRIMARY", "OL"}, AttrCategory: "core"},
		},
		{
			Kind: TaxonomySubject, Code: "ENGLISH", Name: "English", Active: true, Order: 3,
			Attributes: map[string]any{AttrEducationLevels: allLevels, AttrCategory: "language"},
		},
	}

	return &DynamicConfig{
		Key:              key,
		Active:           true,
		EducationLevels:  levels,
		Subjects:         subjects,
		Grades:           grades,
		Cities:           []TaxonomyItem{},
		Districts:        []TaxonomyItem{},
		Provinces:        []TaxonomyItem{},
		ProfileSections:  []ProfileSection{},
		ProfileTemplates: []ProfileTemplate{},
		Settings:         DefaultSettings(),
		GeneralSettings:  map[string]any{},
		BrandingSettings: map[string]any{},
	}
}
