// Package document owns the in-session resume document and its mutation
// contract. Every update is a whole-value replacement of one top-level field;
// callers read-modify-write their own copy of a list and submit it back.
package document

import (
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-builder/internal/types"
)

// SummaryHardCap is the maximum summary length, in characters, accepted on
// input. Longer input is truncated; the soft cap used for scoring lives in
// the score engine.
const SummaryHardCap = 800

// Model holds the document for the active editing session. It is not safe for
// concurrent use; the session layer serializes access.
type Model struct {
	doc      types.ResumeDocument
	revision uint64
}

// New creates a model with the all-empty defaults a fresh session starts from:
// one blank experience entry and one blank education entry, everything else empty.
func New() *Model {
	return &Model{doc: InitialDocument()}
}

// InitialDocument returns the all-empty default document.
func InitialDocument() types.ResumeDocument {
	return types.ResumeDocument{
		Experience:     []types.Experience{{Highlights: []string{}}},
		Education:      []types.Education{{}},
		Skills:         []types.Skill{},
		Projects:       []types.Project{},
		Certifications: []types.Certification{},
		Activities:     []types.Activity{},
	}
}

// Document returns an independent copy of the current document.
func (m *Model) Document() types.ResumeDocument {
	return m.doc.Clone()
}

// Revision returns a counter incremented on every accepted mutation.
func (m *Model) Revision() uint64 {
	return m.revision
}

// Replace swaps the whole document, e.g. when hydrating from a snapshot.
// The model keeps its own copy.
func (m *Model) Replace(doc types.ResumeDocument) {
	m.doc = normalize(doc.Clone())
	m.revision++
}

// SetPersonalDetails replaces the personal details section.
func (m *Model) SetPersonalDetails(details types.PersonalDetails) {
	m.doc.PersonalDetails = details
	m.revision++
}

// SetSummary replaces the summary, truncating input beyond the hard cap.
func (m *Model) SetSummary(summary string) {
	m.doc.Summary = capSummary(summary)
	m.revision++
}

// SetExperience replaces the full experience list. Entries marked current get
// their end date cleared in the same update.
func (m *Model) SetExperience(entries []types.Experience) {
	m.doc.Experience = normalizeExperience(cloneExperience(entries))
	m.revision++
}

// SetEducation replaces the full education list, applying the same
// current/end-date rule as experience.
func (m *Model) SetEducation(entries []types.Education) {
	m.doc.Education = normalizeEducation(append([]types.Education(nil), entries...))
	m.revision++
}

// SetSkills replaces the full skills list.
func (m *Model) SetSkills(skills []types.Skill) {
	m.doc.Skills = append([]types.Skill(nil), skills...)
	m.revision++
}

// SetProjects replaces the full projects list.
func (m *Model) SetProjects(projects []types.Project) {
	m.doc.Projects = append([]types.Project(nil), projects...)
	m.revision++
}

// SetCertifications replaces the full certifications list.
func (m *Model) SetCertifications(certs []types.Certification) {
	m.doc.Certifications = append([]types.Certification(nil), certs...)
	m.revision++
}

// SetActivities replaces the full activities list.
func (m *Model) SetActivities(activities []types.Activity) {
	m.doc.Activities = append([]types.Activity(nil), activities...)
	m.revision++
}

// HasSkill reports whether the document already holds a skill with the given
// name, compared case-insensitively.
func (m *Model) HasSkill(name string) bool {
	for _, s := range m.doc.Skills {
		if strings.EqualFold(s.Name, name) {
			return true
		}
	}
	return false
}

func cloneExperience(entries []types.Experience) []types.Experience {
	out := make([]types.Experience, len(entries))
	for i, e := range entries {
		out[i] = e
		out[i].Highlights = append([]string(nil), e.Highlights...)
	}
	return out
}

func normalizeExperience(entries []types.Experience) []types.Experience {
	for i := range entries {
		if entries[i].Current {
			entries[i].EndDate = ""
		}
	}
	return entries
}

func normalizeEducation(entries []types.Education) []types.Education {
	for i := range entries {
		if entries[i].Current {
			entries[i].EndDate = ""
		}
	}
	return entries
}

// capSummary truncates to the hard cap counting characters, not bytes, so a
// multi-byte summary is never cut mid-rune.
func capSummary(summary string) string {
	if utf8.RuneCountInString(summary) <= SummaryHardCap {
		return summary
	}
	runes := []rune(summary)
	return string(runes[:SummaryHardCap])
}

func normalize(doc types.ResumeDocument) types.ResumeDocument {
	doc.Summary = capSummary(doc.Summary)
	doc.Experience = normalizeExperience(doc.Experience)
	doc.Education = normalizeEducation(doc.Education)
	return doc
}
