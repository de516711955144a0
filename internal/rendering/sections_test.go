package rendering

import (
	"testing"

	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestBuildView_VisibilityRules(t *testing.T) {
	doc := types.ResumeDocument{
		Summary:        "something",
		Experience:     []types.Experience{{Company: "Acme"}},
		Education:      []types.Education{{}},
		Skills:         []types.Skill{{Name: "Go"}},
		Projects:       []types.Project{},
		Certifications: []types.Certification{{Name: ""}},
		Activities:     []types.Activity{{Title: "Chess"}},
	}

	v := BuildView(doc, types.ColorScheme{})
	assert.True(t, v.ShowSummary)
	assert.True(t, v.ShowExperience)
	assert.False(t, v.ShowEducation, "blank first institution hides the section")
	assert.True(t, v.ShowSkills)
	assert.False(t, v.ShowProjects, "empty list hides the section")
	assert.False(t, v.ShowCertifications, "blank first name hides the section")
	assert.True(t, v.ShowActivities)
}

func TestBuildView_ContactSkipsEmptyFields(t *testing.T) {
	doc := types.ResumeDocument{PersonalDetails: types.PersonalDetails{
		Email:    "a@b.com",
		Location: "NYC",
	}}

	v := BuildView(doc, types.ColorScheme{})
	assert.Equal(t, []string{"a@b.com", "NYC"}, v.Contact)
}

func TestDateRange(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		end     string
		current bool
		want    string
	}{
		{"both dates", "01/2020", "02/2021", false, "01/2020 - 02/2021"},
		{"current", "01/2020", "", true, "01/2020 - Present"},
		{"end date wins over current", "01/2020", "02/2021", true, "01/2020 - 02/2021"},
		{"start only", "01/2020", "", false, "01/2020"},
		{"nothing", "", "", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dateRange(tt.start, tt.end, tt.current))
		})
	}
}

func TestVisibleLabels_CanonicalOrder(t *testing.T) {
	doc := types.ResumeDocument{
		Summary:    "something",
		Experience: []types.Experience{{Company: "Acme"}},
		Skills:     []types.Skill{{Name: "Go"}},
	}

	assert.Equal(t, []string{LabelSummary, LabelExperience, LabelSkills}, VisibleLabels(doc))
}

func TestVisibleLabels_EmptyDocument(t *testing.T) {
	assert.Empty(t, VisibleLabels(types.ResumeDocument{}))
}
