package rendering

import (
	"sort"
	"testing"

	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDocument() types.ResumeDocument {
	return types.ResumeDocument{
		PersonalDetails: types.PersonalDetails{
			Name:     "Ada Lovelace",
			Title:    "Software Engineer",
			Email:    "ada@example.com",
			Phone:    "555-0100",
			Location: "London",
			LinkedIn: "https://linkedin.com/in/ada",
			GitHub:   "https://github.com/ada",
		},
		Summary: "Engineer with a decade of experience building analytical engines and compilers.",
		Experience: []types.Experience{
			{
				Company:     "Analytical Engines Ltd",
				Position:    "Principal Engineer",
				Location:    "London",
				StartDate:   "01/2020",
				Current:     true,
				Description: "Designed the instruction set.\nWrote the first programs.",
				Highlights:  []string{"Shipped v1", "Mentored four engineers"},
			},
		},
		Education: []types.Education{
			{Institution: "University of London", Degree: "BSc", Field: "Mathematics", StartDate: "09/2010", EndDate: "06/2014", GPA: "3.9"},
		},
		Skills: []types.Skill{
			{Name: "Go", Category: types.CategoryLanguage},
			{Name: "Python", Category: types.CategoryLanguage},
			{Name: "Docker", Category: types.CategoryTool},
		},
		Projects: []types.Project{
			{Title: "Difference Engine", Description: "Mechanical computer.", Technologies: "Brass, Steam", Link: "https://example.com/de", StartDate: "2019"},
		},
		Certifications: []types.Certification{
			{Name: "Certified Engineer", Issuer: "Royal Society", Date: "2021"},
		},
		Activities: []types.Activity{
			{Title: "Chess Club", Organization: "London Chess Society", StartDate: "2018"},
		},
	}
}

func TestForTemplate_KnownAndUnknown(t *testing.T) {
	for _, name := range types.Templates {
		layout, err := ForTemplate(name)
		require.NoError(t, err)
		assert.Equal(t, name, layout.Name())
	}

	_, err := ForTemplate(types.Template("vaporwave"))
	var unknownErr *UnknownLayoutError
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, "vaporwave", unknownErr.Name)
}

func TestRender_AllLayoutsSurfaceSameSections(t *testing.T) {
	doc := sampleDocument()
	scheme := types.DefaultColorScheme()

	var labelSets [][]string
	for _, layout := range All() {
		html, err := layout.Render(doc, scheme)
		require.NoError(t, err, "layout %s", layout.Name())

		labels, err := SectionLabels(html)
		require.NoError(t, err)
		sort.Strings(labels)
		labelSets = append(labelSets, labels)
	}

	require.Len(t, labelSets, 3)
	assert.Equal(t, labelSets[0], labelSets[1], "clean-minimalist vs modern-tech")
	assert.Equal(t, labelSets[0], labelSets[2], "clean-minimalist vs academic-focus")

	want := []string{
		LabelActivities, LabelCertifications, LabelEducation, LabelExperience,
		LabelProjects, LabelSkills, LabelSummary,
	}
	sort.Strings(want)
	assert.Equal(t, want, labelSets[0])
}

func TestRender_EmptyFirstEntrySuppressesSection(t *testing.T) {
	doc := sampleDocument()
	// First entry has an empty identifying field: the whole section
	// disappears even though the second entry is populated.
	doc.Experience = []types.Experience{
		{Company: "", Position: "Engineer"},
		{Company: "Acme", Position: "Engineer"},
	}

	for _, layout := range All() {
		html, err := layout.Render(doc, types.DefaultColorScheme())
		require.NoError(t, err)

		names, err := SectionNames(html)
		require.NoError(t, err)
		assert.NotContains(t, names, "experience", "layout %s", layout.Name())
	}
}

func TestRender_EmptyDocumentRendersNoSections(t *testing.T) {
	for _, layout := range All() {
		html, err := layout.Render(types.ResumeDocument{}, types.DefaultColorScheme())
		require.NoError(t, err)

		names, err := SectionNames(html)
		require.NoError(t, err)
		assert.Empty(t, names, "layout %s", layout.Name())
		assert.Contains(t, html, "Your Name", "placeholder header still renders")
	}
}

func TestRender_ContentAppearsInEveryLayout(t *testing.T) {
	doc := sampleDocument()
	for _, layout := range All() {
		html, err := layout.Render(doc, types.DefaultColorScheme())
		require.NoError(t, err)

		for _, fact := range []string{
			"Ada Lovelace", "Analytical Engines Ltd", "Principal Engineer",
			"University of London", "Difference Engine", "Certified Engineer",
			"Chess Club", "01/2020 - Present",
		} {
			assert.Contains(t, html, fact, "layout %s missing %q", layout.Name(), fact)
		}
	}
}

func TestRender_UsesColorScheme(t *testing.T) {
	scheme := types.ColorScheme{
		Primary:    "#112233",
		Secondary:  "#445566",
		Text:       "#000000",
		Background: "#ffffff",
		Accent:     "#778899",
	}
	for _, layout := range All() {
		html, err := layout.Render(sampleDocument(), scheme)
		require.NoError(t, err)
		assert.Contains(t, html, "#112233", "layout %s ignores primary color", layout.Name())
	}
}
