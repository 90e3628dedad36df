package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tuition/internal/domain/entity"
	"tuition/internal/errors"
)

func ptr[T any](v T) *T { return &v }

func pricingSection() entity.ProfileSection {
	return entity.ProfileSection{
		ID: "pricing", Type: entity.SectionTypePricing, Title: "Pricing", Visible: true, Order: 2,
		Size: entity.SectionSizeFull,
		Fields: []entity.FieldDescriptor{
			{
				ID: "hourlyRate", Type: entity.FieldTypeNumber, Label: "Hourly rate", Visible: true, Order: 1,
				Validation: &entity.FieldValidation{Required: true, Min: ptr(500.0), Max: ptr(10000.0)},
			},
			{
				ID: "currency", Type: entity.FieldTypeSelect, Label: "Currency", Visible: true, Order: 2,
				Validation: &entity.FieldValidation{AllowedValues: []string{"LKR", "USD"}},
			},
			{ID: "internal", Type: entity.FieldTypeText, Visible: false, Order: 0,
				Validation: &entity.FieldValidation{Required: true}},
		},
	}
}

func contactSection() entity.ProfileSection {
	return entity.ProfileSection{
		ID: "contact", Type: entity.SectionTypeContact, Title: "Contact", Visible: true, Order: 1,
		Size: entity.SectionSizeFull,
		Fields: []entity.FieldDescriptor{
			{ID: "email", Type: entity.FieldTypeEmail, Visible: true, Order: 1,
				Validation: &entity.FieldValidation{Required: true}},
			{ID: "phone", Type: entity.FieldTypePhone, Visible: true, Order: 1},
			{ID: "website", Type: entity.FieldTypeURL, Visible: true, Order: 3},
			{ID: "since", Type: entity.FieldTypeDate, Visible: true, Order: 4},
			{ID: "code", Type: entity.FieldTypeText, Visible: true, Order: 5,
				Validation: &entity.FieldValidation{Pattern: `^[A-Z]{3}$`, MinLength: ptr(3), MaxLength: ptr(3)}},
			{ID: "languages", Type: entity.FieldTypeMultiselect, Visible: true, Order: 6,
				Validation: &entity.FieldValidation{MaxLength: ptr(2), AllowedValues: []string{"si", "ta", "en"}}},
			{ID: "online", Type: entity.FieldTypeCheckbox, Visible: true, Order: 7},
		},
	}
}

func TestBuild_OrdersVisibleSectionsAndFields(t *testing.T) {
	hidden := entity.ProfileSection{ID: "hidden", Type: entity.SectionTypeCustom, Visible: false, Order: 0}

	schema, err := Build([]entity.ProfileSection{pricingSection(), hidden, contactSection()})
	require.NoError(t, err)

	require.Len(t, schema.Sections, 2)
	assert.Equal(t, "contact", schema.Sections[0].ID)
	assert.Equal(t, "pricing", schema.Sections[1].ID)

	_, ok := schema.Section("hidden")
	assert.False(t, ok)

	contact := schema.Sections[0]
	assert.Equal(t, "email", contact.Fields[0].ID)
	assert.Equal(t, "phone", contact.Fields[1].ID, "ties keep input position")

	pricing := schema.Sections[1]
	require.Len(t, pricing.Fields, 2, "hidden fields are dropped")
	assert.Equal(t, ShapeNumber, pricing.Fields[0].Shape)
	assert.Equal(t, ControlNumber, pricing.Fields[0].Control)
	assert.True(t, pricing.Fields[0].Required)
	assert.Equal(t, ControlSelect, pricing.Fields[1].Control)
	assert.False(t, pricing.Fields[1].Required)
}

func TestBuild_InvalidPattern(t *testing.T) {
	section := entity.ProfileSection{ID: "s", Visible: true, Fields: []entity.FieldDescriptor{
		{ID: "f", Type: entity.FieldTypeText, Visible: true, Validation: &entity.FieldValidation{Pattern: "("}},
	}}

	_, err := Build([]entity.ProfileSection{section})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidPattern))
}

func TestShapeAndControlOf(t *testing.T) {
	tests := []struct {
		fieldType entity.FieldType
		shape     Shape
		control   Control
	}{
		{entity.FieldTypeText, ShapeString, ControlText},
		{entity.FieldTypeTextarea, ShapeString, ControlTextarea},
		{entity.FieldTypeEmail, ShapeString, ControlText},
		{entity.FieldTypePhone, ShapeString, ControlText},
		{entity.FieldTypeURL, ShapeString, ControlText},
		{entity.FieldTypeDate, ShapeString, ControlDate},
		{entity.FieldTypeSelect, ShapeString, ControlSelect},
		{entity.FieldTypeRadio, ShapeString, ControlRadio},
		{entity.FieldTypeMultiselect, ShapeArray, ControlMultiselect},
		{entity.FieldTypeCheckbox, ShapeBoolean, ControlCheckbox},
		{entity.FieldTypeNumber, ShapeNumber, ControlNumber},
		{entity.FieldTypeRating, ShapeNumber, ControlNumber},
		{entity.FieldTypeFile, ShapeAny, ControlFile},
	}

	for _, tt := range tests {
		t.Run(string(tt.fieldType), func(t *testing.T) {
			assert.Equal(t, tt.shape, ShapeOf(tt.fieldType))
			assert.Equal(t, tt.control, ControlOf(tt.fieldType))
		})
	}
}

func TestSchema_Validate(t *testing.T) {
	schema, err := Build([]entity.ProfileSection{pricingSection(), contactSection()})
	require.NoError(t, err)

	tests := []struct {
		name    string
		section string
		data    any
		rules   map[string]ConstraintKind
	}{
		{
			name:    "valid pricing",
			section: "pricing",
			data:    map[string]any{"hourlyRate": 2500.0, "currency": "LKR"},
		},
		{
			name:    "missing required field",
			section: "pricing",
			data:    map[string]any{"currency": "LKR"},
			rules:   map[string]ConstraintKind{"hourlyRate": KindRequired},
		},
		{
			name:    "number below min and value not allowed",
			section: "pricing",
			data:    map[string]any{"hourlyRate": 100, "currency": "EUR"},
			rules:   map[string]ConstraintKind{"hourlyRate": KindMin, "currency": KindAllowedValues},
		},
		{
			name:    "number above max",
			section: "pricing",
			data:    map[string]any{"hourlyRate": 20000.0},
			rules:   map[string]ConstraintKind{"hourlyRate": KindMax},
		},
		{
			name:    "wrong shape",
			section: "pricing",
			data:    map[string]any{"hourlyRate": "a lot"},
			rules:   map[string]ConstraintKind{"hourlyRate": KindType},
		},
		{
			name:    "hidden required field is not enforced",
			section: "pricing",
			data:    map[string]any{"hourlyRate": 1000.0},
		},
		{
			name:    "unknown section passes",
			section: "hobbies",
			data:    "anything",
		},
		{
			name:    "valid contact",
			section: "contact",
			data: map[string]any{
				"email":     "ann@example.com",
				"phone":     "+94 77 123 4567",
				"website":   "https://ann.example.com",
				"since":     "2020-01-31",
				"code":      "ABC",
				"languages": []any{"si", "en"},
				"online":    false,
			},
		},
		{
			name:    "format violations",
			section: "contact",
			data: map[string]any{
				"email":   "not-an-email",
				"phone":   "12",
				"website": "nope",
				"since":   "31/01/2020",
			},
			rules: map[string]ConstraintKind{
				"email":   KindFormat,
				"phone":   KindFormat,
				"website": KindFormat,
				"since":   KindFormat,
			},
		},
		{
			name:    "pattern and array rules",
			section: "contact",
			data: map[string]any{
				"email":     "ann@example.com",
				"code":      "abc",
				"languages": []any{"si", "ta", "fr"},
			},
			rules: map[string]ConstraintKind{
				"code":      KindPattern,
				"languages": KindMaxLength,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			violations := schema.Validate(tt.section, tt.data)
			if len(tt.rules) == 0 {
				assert.Empty(t, violations)
				return
			}

			got := map[string]ConstraintKind{}
			for _, v := range violations {
				assert.Equal(t, tt.section, v.Section)
				if _, seen := got[v.Field]; !seen {
					got[v.Field] = v.Rule
				}
			}
			assert.Equal(t, tt.rules, got)
		})
	}
}

func TestSchema_Validate_NonObjectSectionData(t *testing.T) {
	schema, err := Build([]entity.ProfileSection{pricingSection()})
	require.NoError(t, err)

	violations := schema.Validate("pricing", []any{1, 2})
	require.Len(t, violations, 1)
	assert.Equal(t, KindType, violations[0].Rule)
	assert.Empty(t, violations[0].Field)
}

func TestSchema_ValidateAll(t *testing.T) {
	schema, err := Build([]entity.ProfileSection{pricingSection(), contactSection()})
	require.NoError(t, err)

	violations := schema.ValidateAll(map[string]any{
		"pricing": map[string]any{},
		"contact": map[string]any{},
		"extra":   map[string]any{"x": 1},
	})

	require.Len(t, violations, 2)
	assert.Equal(t, "contact", violations[0].Section)
	assert.Equal(t, "pricing", violations[1].Section)
	assert.Equal(t, "contact.email: is required; pricing.hourlyRate: is required", Summary(violations))
}

func TestSchema_Completeness(t *testing.T) {
	schema, err := Build([]entity.ProfileSection{pricingSection(), contactSection()})
	require.NoError(t, err)

	got := schema.Completeness(map[string]any{
		"pricing": map[string]any{"hourlyRate": 1000.0},
	})
	assert.Equal(t, Completeness{Percent: 50, Required: 2, Filled: 1, Missing: []string{"contact.email"}}, got)

	empty, err := Build(nil)
	require.NoError(t, err)
	assert.Equal(t, 100, empty.Completeness(nil).Percent)
}
