package scoring

import (
	"strings"
	"testing"

	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestATSScore_EmptyDocument(t *testing.T) {
	assert.Equal(t, 0, ATSScore(types.ResumeDocument{}))
}

func TestATSScore_ContactFields(t *testing.T) {
	doc := types.ResumeDocument{PersonalDetails: types.PersonalDetails{
		Name:     "A",
		Email:    "a@b.com",
		Phone:    "555",
		Location: "NYC",
		LinkedIn: "linkedin.com/in/a",
		GitHub:   "github.com/a",
	}}
	assert.Equal(t, 30, ATSScore(doc))

	// Title and website carry no weight.
	doc.PersonalDetails.Title = "Engineer"
	doc.PersonalDetails.Website = "https://a.dev"
	assert.Equal(t, 30, ATSScore(doc))
}

func TestATSScore_SummaryThreshold(t *testing.T) {
	// Exactly 50 chars does not qualify; the bonus requires strictly more.
	assert.Equal(t, 0, ATSScore(types.ResumeDocument{Summary: strings.Repeat("x", 50)}))
	assert.Equal(t, 10, ATSScore(types.ResumeDocument{Summary: strings.Repeat("x", 51)}))
}

func TestATSScore_ThresholdsCountCharacters(t *testing.T) {
	// 30 three-byte runes: 90 bytes but only 30 characters, no bonus.
	assert.Equal(t, 0, ATSScore(types.ResumeDocument{Summary: strings.Repeat("世", 30)}))
	assert.Equal(t, 10, ATSScore(types.ResumeDocument{Summary: strings.Repeat("世", 51)}))

	short := types.ResumeDocument{Experience: []types.Experience{
		{Company: "Acme", Position: "Engineer", Description: strings.Repeat("界", 60)},
	}}
	assert.Equal(t, 0, ATSScore(short))

	long := types.ResumeDocument{Experience: []types.Experience{
		{Company: "Acme", Position: "Engineer", Description: strings.Repeat("界", 101)},
	}}
	assert.Equal(t, 10, ATSScore(long))
}

func TestATSScore_ExperienceEntryQualification(t *testing.T) {
	short := types.ResumeDocument{Experience: []types.Experience{
		{Company: "Acme", Position: "Engineer", Description: strings.Repeat("x", 100)},
	}}
	assert.Equal(t, 0, ATSScore(short), "description must exceed 100 chars")

	long := types.ResumeDocument{Experience: []types.Experience{
		{Company: "Acme", Position: "Engineer", Description: strings.Repeat("x", 120)},
	}}
	assert.Equal(t, 10, ATSScore(long))
}

func TestATSScore_ExperienceAccumulatesUnboundedBeforeClamp(t *testing.T) {
	// Eleven qualified entries sum to 110 before the clamp.
	entries := make([]types.Experience, 11)
	for i := range entries {
		entries[i] = types.Experience{
			Company:     "Acme",
			Position:    "Engineer",
			Description: strings.Repeat("x", 120),
		}
	}
	doc := types.ResumeDocument{Experience: entries}

	assert.Equal(t, MaxScore, ATSScore(doc))
}

func TestATSScore_EducationAndSkills(t *testing.T) {
	doc := types.ResumeDocument{
		Education: []types.Education{
			{Institution: "MIT", Degree: "BSc"},
			{Institution: "CMU", Degree: "MSc"},
			{Institution: "no degree"},
		},
		Skills: []types.Skill{
			{Name: "a"}, {Name: "b"}, {Name: "c"}, {Name: "d"}, {Name: "e"},
		},
	}
	// Two qualified education entries; exactly 5 skills earns no bonus.
	assert.Equal(t, 10, ATSScore(doc))

	doc.Skills = append(doc.Skills, types.Skill{Name: "f"})
	assert.Equal(t, 20, ATSScore(doc))
}

func TestATSScore_ExampleScenario(t *testing.T) {
	doc := types.ResumeDocument{
		PersonalDetails: types.PersonalDetails{Name: "A", Email: "a@b.com"},
		Experience: []types.Experience{
			{Company: "Acme", Position: "Engineer", Description: strings.Repeat("x", 120)},
		},
		Skills: []types.Skill{
			{Name: "a"}, {Name: "b"}, {Name: "c"}, {Name: "d"}, {Name: "e"}, {Name: "f"},
		},
	}

	// 10 (name+email) + 10 (experience) + 10 (skills > 5) = 30.
	assert.Equal(t, 30, ATSScore(doc))
}

func TestATSScore_AlwaysWithinBounds(t *testing.T) {
	docs := []types.ResumeDocument{
		{},
		{Summary: strings.Repeat("x", 700)},
		{Experience: make([]types.Experience, 50)},
	}
	for _, doc := range docs {
		score := ATSScore(doc)
		assert.GreaterOrEqual(t, score, 0)
		assert.LessOrEqual(t, score, MaxScore)
	}
}

func TestScoreMessage_Bands(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{95, "Excellent! Your resume is highly ATS-friendly."},
		{80, "Excellent! Your resume is highly ATS-friendly."},
		{60, "Good. Your resume should pass most ATS scans."},
		{40, "Fair. Consider adding more relevant content."},
		{10, "Needs improvement. Add more content to pass ATS scans."},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ScoreMessage(tt.score))
	}
}
