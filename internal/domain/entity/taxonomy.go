package entity

import (
	"cmp"
	"slices"
	"strings"

	"tuition/internal/errors"
)

// TaxonomyKind names one of the admin-managed catalogs.
type TaxonomyKind string

const (
	TaxonomyEducationLevel TaxonomyKind = "education_level"
	TaxonomySubject        TaxonomyKind = "subject"
	TaxonomyGrade          TaxonomyKind = "grade"
	TaxonomyCity           TaxonomyKind = "city"
	TaxonomyDistrict       TaxonomyKind = "district"
	TaxonomyProvince       TaxonomyKind = "province"
)

// TaxonomyKinds lists every kind in the order the config exposes them.
var TaxonomyKinds = []TaxonomyKind{
	TaxonomyEducationLevel,
	TaxonomySubject,
	TaxonomyGrade,
	TaxonomyCity,
	TaxonomyDistrict,
	TaxonomyProvince,
}

// IsValid checks if the TaxonomyKind is a known value.
func (k TaxonomyKind) IsValid() bool {
	return slices.Contains(TaxonomyKinds, k)
}

var taxonomyPaths = map[string]TaxonomyKind{
	"education-levels": TaxonomyEducationLevel,
	"subjects":         TaxonomySubject,
	"grades":           TaxonomyGrade,
	"cities":           TaxonomyCity,
	"districts":        TaxonomyDistrict,
	"provinces":        TaxonomyProvince,
}

// TaxonomyKindFromPath resolves the plural URL segment used by admin routes.
func TaxonomyKindFromPath(segment string) (TaxonomyKind, bool) {
	kind, ok := taxonomyPaths[segment]

	return kind, ok
}

// Path returns the plural URL segment for the kind.
func (k TaxonomyKind) Path() string {
	for path, kind := range taxonomyPaths {
		if kind == k {
			return path
		}
	}

	return ""
}

// Attribute keys carried by specific taxonomy kinds.
const (
	AttrMinGrade        = "minGrade"
	AttrMaxGrade        = "maxGrade"
	AttrEducationLevels = "educationLevels"
	AttrEducationLevel  = "educationLevel"
	AttrLevel           = "level"
	AttrParentCode      = "parentCode"
	AttrCategory        = "category"
)

// TaxonomyItem is one entry of a catalog such as a subject or a grade.
// Kind-specific data lives in Attributes.
type TaxonomyItem struct {
	Kind        TaxonomyKind   `json:"-"`
	Code        string         `json:"code"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Active      bool           `json:"active"`
	Order       int            `json:"order"`
	Attributes  map[string]any `json:"attributes,omitempty"`
	Version     int64          `json:"version,omitempty"`
}

// Normalize trims the natural key.
func (i *TaxonomyItem) Normalize() {
	i.Code = strings.TrimSpace(i.Code)
	i.Name = strings.TrimSpace(i.Name)
}

// Validate checks the item's required values.
func (i *TaxonomyItem) Validate() error {
	if i.Code == "" {
		return errors.Wrap(ErrInvalidValue, "code is required")
	}
	if i.Name == "" {
		return errors.Wrapf(ErrInvalidValue, "%s %q: name is required", i.Kind, i.Code)
	}

	return nil
}

// StringList reads a list attribute, accepting both []string and decoded JSON arrays.
func (i *TaxonomyItem) StringList(attr string) []string {
	raw, ok := i.Attributes[attr]
	if !ok {
		return nil
	}
	switch v := raw.(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, e := range v {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}

		return out
	case string:
		return []string{v}
	default:
		return nil
	}
}

// ReferencesLevel reports whether a subject item is offered for the education level.
func (i *TaxonomyItem) ReferencesLevel(level string) bool {
	return slices.Contains(i.StringList(AttrEducationLevels), level)
}

// SortTaxonomy orders items by Order, keeping the relative position of ties.
func SortTaxonomy(items []TaxonomyItem) {
	slices.SortStableFunc(items, func(a, b TaxonomyItem) int {
		return cmp.Compare(a.Order, b.Order)
	})
}

// ActiveTaxonomy returns the active items sorted by Order.
func ActiveTaxonomy(items []TaxonomyItem) []TaxonomyItem {
	out := make([]TaxonomyItem, 0, len(items))
	for _, item := range items {
		if item.Active {
			out = append(out, item)
		}
	}
	SortTaxonomy(out)

	return out
}
