package scoring

import (
	"unicode/utf8"

	"github.com/jonathan/resume-builder/internal/types"
)

// Score weights. The per-entry experience bonus accumulates without a cap
// before the final clamp; the arithmetic is kept exactly as shipped.
const (
	weightContactField    = 5
	weightSummary         = 10
	weightExperienceEntry = 10
	weightEducationEntry  = 5
	weightSkillBreadth    = 10

	// minSummaryLen is the summary length, in characters, the score bonus
	// requires.
	minSummaryLen = 50
	// minExperienceDescLen is the description length, in characters, a
	// qualified experience entry requires.
	minExperienceDescLen = 100
	// minSkillsForBonus is the skill count the breadth bonus requires
	// (strictly greater than).
	minSkillsForBonus = 5

	// MaxScore is the clamp ceiling.
	MaxScore = 100
)

// ATSScore computes the 0-100 ATS compatibility score for a document. It is a
// pure function: no persisted state, no smoothing across revisions.
func ATSScore(doc types.ResumeDocument) int {
	score := 0

	pd := doc.PersonalDetails
	for _, field := range []string{pd.Name, pd.Email, pd.Phone, pd.Location, pd.LinkedIn, pd.GitHub} {
		if field != "" {
			score += weightContactField
		}
	}

	if doc.Summary != "" && utf8.RuneCountInString(doc.Summary) > minSummaryLen {
		score += weightSummary
	}

	for _, exp := range doc.Experience {
		if exp.Company != "" && exp.Position != "" && exp.Description != "" && utf8.RuneCountInString(exp.Description) > minExperienceDescLen {
			score += weightExperienceEntry
		}
	}

	for _, edu := range doc.Education {
		if edu.Institution != "" && edu.Degree != "" {
			score += weightEducationEntry
		}
	}

	if len(doc.Skills) > minSkillsForBonus {
		score += weightSkillBreadth
	}

	if score > MaxScore {
		score = MaxScore
	}
	return score
}

// ScoreMessage returns the user-facing assessment for a score band.
func ScoreMessage(score int) string {
	switch {
	case score >= 80:
		return "Excellent! Your resume is highly ATS-friendly."
	case score >= 60:
		return "Good. Your resume should pass most ATS scans."
	case score >= 40:
		return "Fair. Consider adding more relevant content."
	default:
		return "Needs improvement. Add more content to pass ATS scans."
	}
}
