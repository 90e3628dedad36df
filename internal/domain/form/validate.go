package form

import (
	"fmt"
	"slices"
	"strings"
)

// Violation describes one failed rule for a submitted value.
type Violation struct {
	Section string         `json:"section"`
	Field   string         `json:"field,omitempty"`
	Rule    ConstraintKind `json:"rule"`
	Message string         `json:"message"`
}

func (v Violation) String() string {
	if v.Field == "" {
		return fmt.Sprintf("%s: %s", v.Section, v.Message)
	}

	return fmt.Sprintf("%s.%s: %s", v.Section, v.Field, v.Message)
}

// Validate checks the data submitted for one section. Sections the schema
// does not know are accepted as is. Keys that match no field are ignored.
func (s *Schema) Validate(sectionID string, data any) []Violation {
	section, ok := s.Section(sectionID)
	if !ok {
		return nil
	}

	values, ok := data.(map[string]any)
	if !ok {
		if data == nil {
			values = map[string]any{}
		} else {
			return []Violation{{
				Section: sectionID,
				Rule:    KindType,
				Message: "section data must be an object",
			}}
		}
	}

	var violations []Violation
	for _, field := range section.Fields {
		value := values[field.ID]
		if isEmpty(value) {
			if field.Required {
				violations = append(violations, Violation{
					Section: sectionID,
					Field:   field.ID,
					Rule:    KindRequired,
					Message: "is required",
				})
			}
			continue
		}

		if !matchesShape(field.Shape, value) {
			violations = append(violations, Violation{
				Section: sectionID,
				Field:   field.ID,
				Rule:    KindType,
				Message: fmt.Sprintf("must be a %s", field.Shape),
			})
			continue
		}

		for _, c := range field.Constraints {
			if msg := c.check(value); msg != "" {
				violations = append(violations, Violation{
					Section: sectionID,
					Field:   field.ID,
					Rule:    c.Kind,
					Message: msg,
				})
			}
		}
	}

	return violations
}

// ValidateAll checks every submitted section, in section id order.
func (s *Schema) ValidateAll(sectionData map[string]any) []Violation {
	ids := make([]string, 0, len(sectionData))
	for id := range sectionData {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	var violations []Violation
	for _, id := range ids {
		violations = append(violations, s.Validate(id, sectionData[id])...)
	}

	return violations
}

// Completeness summarises how many required fields hold a value.
type Completeness struct {
	Percent  int      `json:"percent"`
	Required int      `json:"required"`
	Filled   int      `json:"filled"`
	Missing  []string `json:"missing"`
}

// Completeness counts required fields across all schema sections. A
// schema without required fields is complete.
func (s *Schema) Completeness(sectionData map[string]any) Completeness {
	result := Completeness{Missing: []string{}}
	for _, section := range s.Sections {
		values, _ := sectionData[section.ID].(map[string]any)
		for _, field := range section.Fields {
			if !field.Required {
				continue
			}
			result.Required++
			if !isEmpty(values[field.ID]) {
				result.Filled++
				continue
			}
			result.Missing = append(result.Missing, section.ID+"."+field.ID)
		}
	}

	result.Percent = 100
	if result.Required > 0 {
		result.Percent = result.Filled * 100 / result.Required
	}

	return result
}

// Summary joins violations into a single message.
func Summary(violations []Violation) string {
	parts := make([]string, 0, len(violations))
	for _, v := range violations {
		parts = append(parts, v.String())
	}

	return strings.Join(parts, "; ")
}
