package entity

import (
	"maps"
	"time"

	"github.com/google/uuid"

	"tuition/internal/errors"
)

// ApprovalStatus tracks admin review of a teacher profile.
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

// IsValid checks if the ApprovalStatus is a known value.
func (s ApprovalStatus) IsValid() bool {
	switch s {
	case ApprovalPending, ApprovalApproved, ApprovalRejected:
		return true
	default:
		return false
	}
}

// Section ids of the buckets synthesized from legacy profile fields.
const (
	LegacySectionBasicInfo  = "basic-info"
	LegacySectionEducation  = "education"
	LegacySectionExperience = "experience"
	LegacySectionPricing    = "pricing"
	LegacySectionContact    = "contact"
)

// LayoutEntry is the section placement a teacher keeps in their own layout.
type LayoutEntry struct {
	ID      string         `json:"id" validate:"required"`
	Type    SectionType    `json:"type" validate:"required"`
	Order   int            `json:"order"`
	Visible bool           `json:"visible"`
	Config  map[string]any `json:"config,omitempty"`
}

// ValidateLayout rejects unknown section types and repeated ids.
func ValidateLayout(entries []LayoutEntry) error {
	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		if e.ID == "" {
			return errors.Wrap(ErrInvalidValue, "layout entry id is required")
		}
		if !e.Type.IsValid() {
			return errors.Wrapf(ErrInvalidEnum, "layout entry %q: unknown type %q", e.ID, e.Type)
		}
		if _, dup := seen[e.ID]; dup {
			return errors.Wrapf(ErrDuplicateID, "layout entry %q", e.ID)
		}
		seen[e.ID] = struct{}{}
	}

	return nil
}

// DynamicProfile stores a teacher's values for configurable sections.
type DynamicProfile struct {
	SectionData  map[string]any `json:"sectionData"`
	CustomFields map[string]any `json:"customFields"`
	LastUpdated  time.Time      `json:"lastUpdated"`
	TemplateID   string         `json:"templateId,omitempty"`
}

// TeacherProfile is the per-teacher profile row.
type TeacherProfile struct {
	ID                 uuid.UUID       `json:"id"`
	UserID             uuid.UUID       `json:"userId"`
	DisplayName        string          `json:"displayName"`
	Headline           string          `json:"headline,omitempty"`
	Bio                string          `json:"bio,omitempty"`
	Qualifications     []string        `json:"qualifications"`
	ExperienceYears    int             `json:"experienceYears"`
	HourlyRate         float64         `json:"hourlyRate"`
	Subjects           []string        `json:"subjects"`
	EducationLevels    []string        `json:"educationLevels"`
	Phone              string          `json:"phone,omitempty"`
	City               string          `json:"city,omitempty"`
	District           string          `json:"district,omitempty"`
	Status             ApprovalStatus  `json:"status"`
	RejectionReason    string          `json:"rejectionReason,omitempty"`
	UsesDynamicProfile bool            `json:"usesDynamicProfile"`
	DynamicProfile     *DynamicProfile `json:"dynamicProfile,omitempty"`
	ProfileLayout      []LayoutEntry   `json:"profileLayout"`
	Version            int64           `json:"version"`
	CreatedAt          time.Time       `json:"createdAt"`
	UpdatedAt          time.Time       `json:"updatedAt"`
}

// EnableDynamic switches the profile to dynamic mode, initialising the
// dynamic profile on first use.
func (p *TeacherProfile) EnableDynamic(now time.Time) {
	p.UsesDynamicProfile = true
	if p.DynamicProfile == nil {
		p.DynamicProfile = &DynamicProfile{
			SectionData:  map[string]any{},
			CustomFields: map[string]any{},
			LastUpdated:  now,
		}
	}
	if p.DynamicProfile.SectionData == nil {
		p.DynamicProfile.SectionData = map[string]any{}
	}
	if p.DynamicProfile.CustomFields == nil {
		p.DynamicProfile.CustomFields = map[string]any{}
	}
}

// MergeSectionData replaces the values of the given section keys only.
func (p *TeacherProfile) MergeSectionData(data map[string]any) {
	maps.Copy(p.DynamicProfile.SectionData, data)
}

// MergeCustomFields replaces the values of the given custom field keys only.
func (p *TeacherProfile) MergeCustomFields(fields map[string]any) {
	maps.Copy(p.DynamicProfile.CustomFields, fields)
}

// ApplyTemplate snapshots the template's section placement into the layout.
func (p *TeacherProfile) ApplyTemplate(t *ProfileTemplate, now time.Time) {
	p.EnableDynamic(now)
	p.ProfileLayout = t.Layout()
	p.DynamicProfile.TemplateID = t.ID
	p.DynamicProfile.LastUpdated = now
}

// Approve marks the profile approved and clears any rejection reason.
func (p *TeacherProfile) Approve() {
	p.Status = ApprovalApproved
	p.RejectionReason = ""
}

// Reject marks the profile rejected with the given reason.
func (p *TeacherProfile) Reject(reason string) {
	p.Status = ApprovalRejected
	p.RejectionReason = reason
}

// LegacySectionData synthesizes section buckets from the legacy profile
// fields. Buckets without any value are omitted.
func (p *TeacherProfile) LegacySectionData() map[string]any {
	out := map[string]any{}

	put := func(section string, values map[string]any) {
		for k, v := range values {
			if isEmptyValue(v) {
				delete(values, k)
			}
		}
		if len(values) > 0 {
			out[section] = values
		}
	}

	put(LegacySectionBasicInfo, map[string]any{
		"displayName": p.DisplayName,
		"headline":    p.Headline,
		"bio":         p.Bio,
	})
	put(LegacySectionEducation, map[string]any{
		"qualifications":  p.Qualifications,
		"educationLevels": p.EducationLevels,
		"subjects":        p.Subjects,
	})
	put(LegacySectionExperience, map[string]any{
		"experienceYears": p.ExperienceYears,
	})
	put(LegacySectionPricing, map[string]any{
		"hourlyRate": p.HourlyRate,
	})
	put(LegacySectionContact, map[string]any{
		"phone":    p.Phone,
		"city":     p.City,
		"district": p.District,
	})

	return out
}

// EffectiveSectionData returns stored section data with legacy buckets
// filling the sections that were never written. The stored profile is not
// modified.
func (p *TeacherProfile) EffectiveSectionData() map[string]any {
	out := p.LegacySectionData()
	if p.DynamicProfile != nil {
		maps.Copy(out, p.DynamicProfile.SectionData)
	}

	return out
}

func isEmptyValue(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case []string:
		return len(t) == 0
	case int:
		return t == 0
	case float64:
		return t == 0
	default:
		return false
	}
}
