// Package scoring derives completion status and an ATS compatibility score
// from a resume document. Everything here is a pure function of the current
// document, recomputed from scratch on every change.
package scoring

import (
	"unicode/utf8"

	"github.com/jonathan/resume-builder/internal/types"
)

// Section identifies one of the eight top-level resume sections.
type Section string

// The eight fixed sections, in form order.
const (
	SectionPersonalDetails Section = "personal-details"
	SectionSummary         Section = "summary"
	SectionExperience      Section = "experience"
	SectionEducation       Section = "education"
	SectionSkills          Section = "skills"
	SectionProjects        Section = "projects"
	SectionCertifications  Section = "certifications"
	SectionActivities      Section = "activities"
)

// Sections lists all sections in form order. Its length is the fixed
// denominator of the completion percentage.
var Sections = []Section{
	SectionPersonalDetails,
	SectionSummary,
	SectionExperience,
	SectionEducation,
	SectionSkills,
	SectionProjects,
	SectionCertifications,
	SectionActivities,
}

// SummarySoftCap is the summary length, in characters, treated as "enough"
// for completion.
const SummarySoftCap = 50

// MinSkillsComplete is the skill count required for the skills section to
// count as complete.
const MinSkillsComplete = 3

// SectionComplete reports whether a single section meets its completion
// predicate. Certifications and activities are optional and always complete.
func SectionComplete(doc types.ResumeDocument, section Section) bool {
	switch section {
	case SectionPersonalDetails:
		return doc.PersonalDetails.Name != "" && doc.PersonalDetails.Email != ""
	case SectionSummary:
		return utf8.RuneCountInString(doc.Summary) >= SummarySoftCap
	case SectionExperience:
		for _, exp := range doc.Experience {
			if exp.Company != "" && exp.Position != "" {
				return true
			}
		}
		return false
	case SectionEducation:
		for _, edu := range doc.Education {
			if edu.Institution != "" && edu.Degree != "" {
				return true
			}
		}
		return false
	case SectionSkills:
		return len(doc.Skills) >= MinSkillsComplete
	case SectionProjects:
		for _, proj := range doc.Projects {
			if proj.Title != "" && proj.Description != "" {
				return true
			}
		}
		return false
	case SectionCertifications, SectionActivities:
		return true
	default:
		return false
	}
}

// CompletionStatus returns the completion flag for every section.
func CompletionStatus(doc types.ResumeDocument) map[Section]bool {
	status := make(map[Section]bool, len(Sections))
	for _, section := range Sections {
		status[section] = SectionComplete(doc, section)
	}
	return status
}

// CompletedCount returns how many of the eight sections are complete.
func CompletedCount(doc types.ResumeDocument) int {
	count := 0
	for _, section := range Sections {
		if SectionComplete(doc, section) {
			count++
		}
	}
	return count
}

// CompletionPercent returns completed/total as a percentage in [0,100].
// Callers round for display.
func CompletionPercent(doc types.ResumeDocument) float64 {
	return float64(CompletedCount(doc)) / float64(len(Sections)) * 100
}

// Tracker holds per-section completion flags for the editing session. A
// section's flag is evaluated when its editor submits an update, so the
// optional sections (certifications, activities) read as incomplete until the
// user has visited them, matching the form's behavior.
type Tracker struct {
	status map[Section]bool
}

// NewTracker returns a tracker with every section incomplete.
func NewTracker() *Tracker {
	return &Tracker{status: make(map[Section]bool, len(Sections))}
}

// Mark re-evaluates one section's predicate against the current document.
func (t *Tracker) Mark(section Section, doc types.ResumeDocument) {
	t.status[section] = SectionComplete(doc, section)
}

// MarkAll re-evaluates every section, e.g. after loading a snapshot.
func (t *Tracker) MarkAll(doc types.ResumeDocument) {
	for _, section := range Sections {
		t.Mark(section, doc)
	}
}

// Reset clears every flag back to incomplete.
func (t *Tracker) Reset() {
	t.status = make(map[Section]bool, len(Sections))
}

// Status returns a copy of the per-section flags.
func (t *Tracker) Status() map[Section]bool {
	out := make(map[Section]bool, len(Sections))
	for _, section := range Sections {
		out[section] = t.status[section]
	}
	return out
}

// Percent returns marked-complete/total as a percentage in [0,100].
func (t *Tracker) Percent() float64 {
	count := 0
	for _, section := range Sections {
		if t.status[section] {
			count++
		}
	}
	return float64(count) / float64(len(Sections)) * 100
}
