// Package form compiles profile section descriptors into a runtime schema
// used to validate submitted section data and to drive client renderers.
package form

import (
	"regexp"

	"tuition/internal/domain/entity"
	"tuition/internal/errors"
)

// ErrInvalidPattern is returned by Build when a field carries a pattern that does not compile.
var ErrInvalidPattern = errors.New("invalid field pattern")

// Shape is the JSON value shape a field accepts.
type Shape string

const (
	ShapeString  Shape = "string"
	ShapeNumber  Shape = "number"
	ShapeBoolean Shape = "boolean"
	ShapeArray   Shape = "array"
	ShapeAny     Shape = "any"
)

// Control is the UI control a client renders for a field.
type Control string

const (
	ControlText        Control = "text"
	ControlTextarea    Control = "textarea"
	ControlNumber      Control = "number"
	ControlSelect      Control = "select"
	ControlMultiselect Control = "multiselect"
	ControlCheckbox    Control = "checkbox"
	ControlRadio       Control = "radio"
	ControlDate        Control = "date"
	ControlFile        Control = "file"
)

// ShapeOf maps a field type to the value shape it accepts.
func ShapeOf(t entity.FieldType) Shape {
	switch t {
	case entity.FieldTypeNumber, entity.FieldTypeRating:
		return ShapeNumber
	case entity.FieldTypeCheckbox:
		return ShapeBoolean
	case entity.FieldTypeMultiselect:
		return ShapeArray
	case entity.FieldTypeFile:
		return ShapeAny
	default:
		return ShapeString
	}
}

// ControlOf maps a field type to its UI control.
func ControlOf(t entity.FieldType) Control {
	switch t {
	case entity.FieldTypeTextarea:
		return ControlTextarea
	case entity.FieldTypeNumber, entity.FieldTypeRating:
		return ControlNumber
	case entity.FieldTypeSelect:
		return ControlSelect
	case entity.FieldTypeMultiselect:
		return ControlMultiselect
	case entity.FieldTypeCheckbox:
		return ControlCheckbox
	case entity.FieldTypeRadio:
		return ControlRadio
	case entity.FieldTypeDate:
		return ControlDate
	case entity.FieldTypeFile:
		return ControlFile
	default:
		return ControlText
	}
}

// Field is a compiled field descriptor.
type Field struct {
	ID           string               `json:"id"`
	Type         entity.FieldType     `json:"type"`
	Label        string               `json:"label"`
	Placeholder  string               `json:"placeholder,omitempty"`
	Description  string               `json:"description,omitempty"`
	Order        int                  `json:"order"`
	Size         entity.FieldSize     `json:"size"`
	Shape        Shape                `json:"shape"`
	Control      Control              `json:"control"`
	Required     bool                 `json:"required"`
	Multiline    bool                 `json:"multiline,omitempty"`
	Searchable   bool                 `json:"searchable,omitempty"`
	Options      []entity.FieldOption `json:"options,omitempty"`
	DefaultValue any                  `json:"defaultValue,omitempty"`
	Constraints  []Constraint         `json:"constraints"`
}

// Section is a compiled, visible profile section.
type Section struct {
	ID       string             `json:"id"`
	Type     entity.SectionType `json:"type"`
	Title    string             `json:"title"`
	Order    int                `json:"order"`
	Size     entity.SectionSize `json:"size"`
	Required bool               `json:"required"`
	Fields   []Field            `json:"fields"`
}

// Schema is the render plan and validator for a list of sections.
type Schema struct {
	Sections []Section `json:"sections"`

	index map[string]int
}

// Build compiles the visible sections and their visible fields, ordered by
// their declared order with ties kept in input position.
func Build(sections []entity.ProfileSection) (*Schema, error) {
	visible := make([]entity.ProfileSection, 0, len(sections))
	for _, s := range sections {
		if s.Visible {
			visible = append(visible, s)
		}
	}
	entity.SortSections(visible)

	schema := &Schema{
		Sections: make([]Section, 0, len(visible)),
		index:    make(map[string]int, len(visible)),
	}
	for _, s := range visible {
		compiled := Section{
			ID:       s.ID,
			Type:     s.Type,
			Title:    s.Title,
			Order:    s.Order,
			Size:     s.Size,
			Required: s.Required,
		}
		fields := s.VisibleFields()
		compiled.Fields = make([]Field, 0, len(fields))
		for _, f := range fields {
			field, err := compileField(f)
			if err != nil {
				return nil, errors.Wrapf(err, "section %q", s.ID)
			}
			compiled.Fields = append(compiled.Fields, field)
		}
		schema.index[s.ID] = len(schema.Sections)
		schema.Sections = append(schema.Sections, compiled)
	}

	return schema, nil
}

// Section returns the compiled section by id.
func (s *Schema) Section(id string) (*Section, bool) {
	i, ok := s.index[id]
	if !ok {
		return nil, false
	}

	return &s.Sections[i], true
}

func compileField(f entity.FieldDescriptor) (Field, error) {
	field := Field{
		ID:           f.ID,
		Type:         f.Type,
		Label:        f.Label,
		Placeholder:  f.Placeholder,
		Description:  f.Description,
		Order:        f.Order,
		Size:         f.Size,
		Shape:        ShapeOf(f.Type),
		Control:      ControlOf(f.Type),
		Multiline:    f.Multiline || f.Type == entity.FieldTypeTextarea,
		Searchable:   f.Searchable,
		Options:      f.Options,
		DefaultValue: f.DefaultValue,
		Constraints:  []Constraint{},
	}

	if format, ok := formatOf(f.Type); ok {
		field.Constraints = append(field.Constraints, Constraint{Kind: KindFormat, Value: format})
	}

	v := f.Validation
	if v == nil {
		return field, nil
	}

	if v.Required {
		field.Required = true
		field.Constraints = append(field.Constraints, Constraint{Kind: KindRequired})
	}
	if v.MinLength != nil {
		field.Constraints = append(field.Constraints, Constraint{Kind: KindMinLength, Value: *v.MinLength})
	}
	if v.MaxLength != nil {
		field.Constraints = append(field.Constraints, Constraint{Kind: KindMaxLength, Value: *v.MaxLength})
	}
	if v.Min != nil {
		field.Constraints = append(field.Constraints, Constraint{Kind: KindMin, Value: *v.Min})
	}
	if v.Max != nil {
		field.Constraints = append(field.Constraints, Constraint{Kind: KindMax, Value: *v.Max})
	}
	if v.Pattern != "" {
		re, err := regexp.Compile(v.Pattern)
		if err != nil {
			return Field{}, errors.Wrapf(ErrInvalidPattern, "field %q: %v", f.ID, err)
		}
		field.Constraints = append(field.Constraints, Constraint{Kind: KindPattern, Value: v.Pattern, re: re})
	}
	if len(v.AllowedValues) > 0 {
		field.Constraints = append(field.Constraints, Constraint{Kind: KindAllowedValues, Value: v.AllowedValues})
	}

	return field, nil
}

func formatOf(t entity.FieldType) (string, bool) {
	switch t {
	case entity.FieldTypeEmail:
		return FormatEmail, true
	case entity.FieldTypeURL:
		return FormatURL, true
	case entity.FieldTypePhone:
		return FormatPhone, true
	case entity.FieldTypeDate:
		return FormatDate, true
	default:
		return "", false
	}
}
