package document

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_InitialDefaults(t *testing.T) {
	m := New()
	doc := m.Document()

	require.Len(t, doc.Experience, 1)
	assert.Empty(t, doc.Experience[0].Company)
	require.Len(t, doc.Education, 1)
	assert.Empty(t, doc.Education[0].Institution)
	assert.Empty(t, doc.Skills)
	assert.Empty(t, doc.Projects)
	assert.Empty(t, doc.Summary)
}

func TestSetSummary_HardCap(t *testing.T) {
	m := New()
	m.SetSummary(strings.Repeat("a", SummaryHardCap+100))

	assert.Len(t, m.Document().Summary, SummaryHardCap)
}

func TestSetSummary_HardCapCountsCharacters(t *testing.T) {
	m := New()
	m.SetSummary(strings.Repeat("世", SummaryHardCap+1))

	got := m.Document().Summary
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, SummaryHardCap, utf8.RuneCountInString(got))
	assert.Equal(t, strings.Repeat("世", SummaryHardCap), got)
}

func TestSetSummary_MultiByteUnderCapKeptWhole(t *testing.T) {
	m := New()
	// 267 three-byte runes: over 800 bytes but under the 800-character cap.
	summary := strings.Repeat("世", 267)
	m.SetSummary(summary)

	assert.Equal(t, summary, m.Document().Summary)
}

func TestSetExperience_CurrentClearsEndDate(t *testing.T) {
	m := New()
	m.SetExperience([]types.Experience{
		{Company: "Acme", Position: "Engineer", EndDate: "12/2023", Current: true},
		{Company: "Initech", Position: "Analyst", EndDate: "06/2020", Current: false},
	})

	doc := m.Document()
	assert.Empty(t, doc.Experience[0].EndDate, "current entry must have end date cleared in the same update")
	assert.Equal(t, "06/2020", doc.Experience[1].EndDate)
}

func TestSetEducation_CurrentClearsEndDate(t *testing.T) {
	m := New()
	m.SetEducation([]types.Education{
		{Institution: "MIT", Degree: "BSc", EndDate: "05/2024", Current: true},
	})

	assert.Empty(t, m.Document().Education[0].EndDate)
}

func TestDocument_ReturnsIndependentCopy(t *testing.T) {
	m := New()
	m.SetSkills([]types.Skill{{Name: "Go", Category: types.CategoryLanguage}})

	doc := m.Document()
	doc.Skills[0].Name = "Rust"
	doc.Experience[0].Highlights = append(doc.Experience[0].Highlights, "mutated")

	fresh := m.Document()
	assert.Equal(t, "Go", fresh.Skills[0].Name, "mutating a returned copy must not alter the model")
	assert.Empty(t, fresh.Experience[0].Highlights)
}

func TestReplace_KeepsOwnCopyAndNormalizes(t *testing.T) {
	m := New()
	doc := types.ResumeDocument{
		Summary:    strings.Repeat("b", SummaryHardCap+1),
		Experience: []types.Experience{{Company: "Acme", Current: true, EndDate: "01/2024"}},
	}
	m.Replace(doc)

	doc.Experience[0].Company = "mutated"

	got := m.Document()
	assert.Equal(t, "Acme", got.Experience[0].Company)
	assert.Empty(t, got.Experience[0].EndDate)
	assert.Len(t, got.Summary, SummaryHardCap)
}

func TestRevision_IncrementsPerMutation(t *testing.T) {
	m := New()
	before := m.Revision()
	m.SetSummary("hello")
	m.SetSkills(nil)

	assert.Equal(t, before+2, m.Revision())
}

func TestHasSkill_CaseInsensitive(t *testing.T) {
	m := New()
	m.SetSkills([]types.Skill{{Name: "TypeScript", Category: types.CategoryLanguage}})

	assert.True(t, m.HasSkill("typescript"))
	assert.True(t, m.HasSkill("TYPESCRIPT"))
	assert.False(t, m.HasSkill("JavaScript"))
}
