package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tuition/internal/errors"
)

func TestTeacherProfile_EnableDynamic_InitialisesOnce(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	p := &TeacherProfile{}

	p.EnableDynamic(now)
	require.NotNil(t, p.DynamicProfile)
	assert.True(t, p.UsesDynamicProfile)
	assert.Equal(t, now, p.DynamicProfile.LastUpdated)

	p.DynamicProfile.SectionData["pricing"] = map[string]any{"hourlyRate": 10}
	p.UsesDynamicProfile = false
	p.EnableDynamic(now.Add(time.Hour))

	assert.True(t, p.UsesDynamicProfile)
	assert.Contains(t, p.DynamicProfile.SectionData, "pricing")
}

func TestTeacherProfile_MergeSectionData_KeepsOtherSections(t *testing.T) {
	p := &TeacherProfile{}
	p.EnableDynamic(time.Now())
	p.MergeSectionData(map[string]any{
		"basic-info": map[string]any{"displayName": "Ann"},
		"pricing":    map[string]any{"hourlyRate": 10, "currency": "LKR"},
	})

	p.MergeSectionData(map[string]any{
		"pricing": map[string]any{"hourlyRate": 20},
	})

	assert.Equal(t, map[string]any{"displayName": "Ann"}, p.DynamicProfile.SectionData["basic-info"])
	assert.Equal(t, map[string]any{"hourlyRate": 20}, p.DynamicProfile.SectionData["pricing"])
}

func TestTeacherProfile_EffectiveSectionData_LegacyFallback(t *testing.T) {
	p := &TeacherProfile{
		DisplayName:     "Ann Perera",
		Bio:             "Maths tutor",
		Subjects:        []string{"MATH"},
		ExperienceYears: 7,
		HourlyRate:      2500,
		City:            "Colombo",
	}

	data := p.EffectiveSectionData()
	assert.Equal(t, map[string]any{"displayName": "Ann Perera", "bio": "Maths tutor"}, data[LegacySectionBasicInfo])
	assert.Equal(t, map[string]any{"subjects": []string{"MATH"}}, data[LegacySectionEducation])
	assert.Equal(t, map[string]any{"experienceYears": 7}, data[LegacySectionExperience])
	assert.Equal(t, map[string]any{"hourlyRate": 2500.0}, data[LegacySectionPricing])
	assert.Equal(t, map[string]any{"city": "Colombo"}, data[LegacySectionContact])

	p.EnableDynamic(time.Now())
	p.MergeSectionData(map[string]any{LegacySectionPricing: map[string]any{"hourlyRate": 3000}})

	data = p.EffectiveSectionData()
	assert.Equal(t, map[string]any{"hourlyRate": 3000}, data[LegacySectionPricing])
	assert.Contains(t, data, LegacySectionBasicInfo)
	assert.NotContains(t, p.DynamicProfile.SectionData, LegacySectionBasicInfo)
}

func TestTeacherProfile_LegacySectionData_SkipsEmptyBuckets(t *testing.T) {
	p := &TeacherProfile{DisplayName: "Ann"}

	data := p.LegacySectionData()
	assert.Len(t, data, 1)
	assert.Contains(t, data, LegacySectionBasicInfo)
}

func TestTeacherProfile_ApplyTemplate(t *testing.T) {
	now := time.Now()
	p := &TeacherProfile{}
	tmpl := &ProfileTemplate{ID: "tutor", Sections: []ProfileSection{
		{ID: "about", Type: SectionTypeBasic, Order: 1, Visible: true},
	}}

	p.ApplyTemplate(tmpl, now)

	assert.True(t, p.UsesDynamicProfile)
	assert.Equal(t, "tutor", p.DynamicProfile.TemplateID)
	assert.Equal(t, now, p.DynamicProfile.LastUpdated)
	assert.Equal(t, []LayoutEntry{{ID: "about", Type: SectionTypeBasic, Order: 1, Visible: true}}, p.ProfileLayout)
}

func TestTeacherProfile_ApproveReject(t *testing.T) {
	p := &TeacherProfile{Status: ApprovalPending}

	p.Reject("missing qualifications")
	assert.Equal(t, ApprovalRejected, p.Status)
	assert.Equal(t, "missing qualifications", p.RejectionReason)

	p.Approve()
	assert.Equal(t, ApprovalApproved, p.Status)
	assert.Empty(t, p.RejectionReason)
}

func TestValidateLayout(t *testing.T) {
	assert.NoError(t, ValidateLayout([]LayoutEntry{
		{ID: "a", Type: SectionTypeBasic},
		{ID: "b", Type: SectionTypeCustom},
	}))

	err := ValidateLayout([]LayoutEntry{{ID: "a", Type: "banner"}})
	assert.True(t, errors.Is(err, ErrInvalidEnum))

	err = ValidateLayout([]LayoutEntry{{ID: "a", Type: SectionTypeBasic}, {ID: "a", Type: SectionTypePricing}})
	assert.True(t, errors.Is(err, ErrDuplicateID))
}

func TestListQuery_Normalize(t *testing.T) {
	q := ListQuery{Page: 0, Limit: 500, Order: "ASC", Search: "  ann "}
	q.Normalize()

	assert.Equal(t, 1, q.Page)
	assert.Equal(t, MaxLimit, q.Limit)
	assert.Equal(t, SortAsc, q.Order)
	assert.Equal(t, "ann", q.Search)
	assert.Equal(t, 0, q.Offset())

	q = ListQuery{Page: 3}
	q.Normalize()
	assert.Equal(t, DefaultLimit, q.Limit)
	assert.Equal(t, SortDesc, q.Order)
	assert.Equal(t, 40, q.Offset())

	page := NewPage([]int{1, 2}, q, 41)
	assert.Equal(t, 3, page.TotalPages)
}
