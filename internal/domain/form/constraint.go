package form

import (
	"encoding/json"
	"fmt"
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// ConstraintKind tags the variant held by a Constraint.
type ConstraintKind string

const (
	KindRequired      ConstraintKind = "required"
	KindMinLength     ConstraintKind = "minLength"
	KindMaxLength     ConstraintKind = "maxLength"
	KindMin           ConstraintKind = "min"
	KindMax           ConstraintKind = "max"
	KindPattern       ConstraintKind = "pattern"
	KindAllowedValues ConstraintKind = "allowedValues"
	KindFormat        ConstraintKind = "format"
	KindType          ConstraintKind = "type"
)

// Formats implied by the field type.
const (
	FormatEmail = "email"
	FormatURL   = "url"
	FormatPhone = "phone"
	FormatDate  = "date"
)

// Constraint is one compiled rule. Value holds the rule argument: an int
// for length rules, a float64 for min and max, the source pattern, the
// allowed value list, or the format name.
type Constraint struct {
	Kind  ConstraintKind `json:"kind"`
	Value any            `json:"value,omitempty"`

	re *regexp.Regexp
}

var formatValidator = validator.New()

var formatTags = map[string]string{
	FormatEmail: "email",
	FormatURL:   "url",
	FormatPhone: "e164|numeric",
	FormatDate:  "datetime=2006-01-02|datetime=2006-01-02T15:04:05Z07:00",
}

var phoneSeparators = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "", ".", "")

// check evaluates a non-empty value of the right shape. It returns an
// empty message when the value satisfies the rule.
func (c Constraint) check(value any) string {
	switch c.Kind {
	case KindMinLength:
		if n, ok := length(value); ok && n < c.Value.(int) {
			return fmt.Sprintf("length must be at least %d", c.Value)
		}
	case KindMaxLength:
		if n, ok := length(value); ok && n > c.Value.(int) {
			return fmt.Sprintf("length must be at most %d", c.Value)
		}
	case KindMin:
		if n, ok := number(value); ok && n < c.Value.(float64) {
			return fmt.Sprintf("must be at least %v", c.Value)
		}
	case KindMax:
		if n, ok := number(value); ok && n > c.Value.(float64) {
			return fmt.Sprintf("must be at most %v", c.Value)
		}
	case KindPattern:
		for _, s := range textValues(value) {
			if !c.re.MatchString(s) {
				return fmt.Sprintf("must match pattern %s", c.Value)
			}
		}
	case KindAllowedValues:
		allowed := c.Value.([]string)
		for _, s := range textValues(value) {
			if !slices.Contains(allowed, s) {
				return fmt.Sprintf("%q is not an allowed value", s)
			}
		}
	case KindFormat:
		s, ok := value.(string)
		if !ok {
			return ""
		}
		format := c.Value.(string)
		if format == FormatPhone {
			s = phoneSeparators.Replace(s)
			if digits := strings.TrimPrefix(s, "+"); len(digits) < 7 || len(digits) > 15 {
				return "must be a valid phone number"
			}
		}
		if err := formatValidator.Var(s, formatTags[format]); err != nil {
			return fmt.Sprintf("must be a valid %s", format)
		}
	}

	return ""
}

// length counts runes of a string or elements of an array.
func length(value any) (int, bool) {
	switch v := value.(type) {
	case string:
		return utf8.RuneCountInString(v), true
	case []any:
		return len(v), true
	case []string:
		return len(v), true
	default:
		return 0, false
	}
}

func number(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

// textValues returns the string values a rule applies to: the value itself,
// or each element of an array. Numbers are formatted so allowed value
// lists can cover numeric choices.
func textValues(value any) []string {
	switch v := value.(type) {
	case string:
		return []string{v}
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, e := range v {
			out = append(out, textValues(e)...)
		}
		return out
	case bool:
		return []string{fmt.Sprint(v)}
	default:
		if n, ok := number(v); ok {
			return []string{fmt.Sprint(n)}
		}
		return nil
	}
}

// matchesShape reports whether a non-empty value has the field's shape.
func matchesShape(shape Shape, value any) bool {
	switch shape {
	case ShapeString:
		_, ok := value.(string)
		return ok
	case ShapeNumber:
		_, ok := number(value)
		return ok
	case ShapeBoolean:
		_, ok := value.(bool)
		return ok
	case ShapeArray:
		switch value.(type) {
		case []any, []string:
			return true
		}
		return false
	default:
		return true
	}
}

// isEmpty treats nil, blank strings and empty arrays as absent. False is
// a value for checkboxes.
func isEmpty(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	case []any:
		return len(v) == 0
	case []string:
		return len(v) == 0
	default:
		return false
	}
}
