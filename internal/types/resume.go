// Package types provides type definitions for the resume document model shared
// across the resume-builder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Template identifies one of the fixed layout strategies.
type Template string

// Known layout strategies.
const (
	TemplateCleanMinimalist Template = "clean-minimalist"
	TemplateModernTech      Template = "modern-tech"
	TemplateAcademicFocus   Template = "academic-focus"
)

// Templates lists every known layout strategy in display order.
var Templates = []Template{TemplateCleanMinimalist, TemplateModernTech, TemplateAcademicFocus}

// Valid reports whether t names a known layout strategy.
func (t Template) Valid() bool {
	for _, known := range Templates {
		if t == known {
			return true
		}
	}
	return false
}

// ColorScheme holds the five named colors a layout renders with.
type ColorScheme struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Text       string `json:"text"`
	Background string `json:"background"`
	Accent     string `json:"accent"`
}

// DefaultColorScheme returns the scheme used before the user picks one.
func DefaultColorScheme() ColorScheme {
	return ColorScheme{
		Primary:    "#0f766e",
		Secondary:  "#f59e0b",
		Text:       "#1f2937",
		Background: "#ffffff",
		Accent:     "#e0f2fe",
	}
}

// PersonalDetails holds the contact header of a resume. Name and Email are the
// only fields required for the section to count as complete.
type PersonalDetails struct {
	Name     string `json:"name"`
	Title    string `json:"title"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Website  string `json:"website"`
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
}

// Experience represents a single work experience entry.
// When Current is true, EndDate is cleared.
type Experience struct {
	Company     string   `json:"company"`
	Position    string   `json:"position"`
	Location    string   `json:"location"`
	StartDate   string   `json:"start_date"`
	EndDate     string   `json:"end_date"`
	Current     bool     `json:"current"`
	Description string   `json:"description"`
	Highlights  []string `json:"highlights"`
}

// Education represents a single education entry.
// When Current is true, EndDate is cleared.
type Education struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	Location    string `json:"location"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Current     bool   `json:"current"`
	GPA         string `json:"gpa"`
	Description string `json:"description"`
}

// SkillCategory classifies a skill for grouped display.
type SkillCategory string

// Known skill categories.
const (
	CategoryLanguage  SkillCategory = "language"
	CategoryFramework SkillCategory = "framework"
	CategoryTool      SkillCategory = "tool"
	CategoryDatabase  SkillCategory = "database"
	CategoryCloud     SkillCategory = "cloud"
	CategorySoft      SkillCategory = "soft"
	CategoryOther     SkillCategory = "other"
)

// SkillCategories lists every known category.
var SkillCategories = []SkillCategory{
	CategoryLanguage, CategoryFramework, CategoryTool,
	CategoryDatabase, CategoryCloud, CategorySoft, CategoryOther,
}

// Valid reports whether c names a known skill category.
func (c SkillCategory) Valid() bool {
	for _, known := range SkillCategories {
		if c == known {
			return true
		}
	}
	return false
}

// Skill is a named skill. Names are unique case-insensitively within a document.
type Skill struct {
	Name     string        `json:"name"`
	Category SkillCategory `json:"category"`
}

// Project represents a single project entry. Technologies is a free-text
// comma-separated token list.
type Project struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Technologies string `json:"technologies"`
	Link         string `json:"link"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
}

// Certification represents a single certification entry.
type Certification struct {
	Name         string `json:"name"`
	Issuer       string `json:"issuer"`
	Date         string `json:"date"`
	Expiry       string `json:"expiry"`
	CredentialID string `json:"credential_id"`
	URL          string `json:"url"`
}

// Activity represents a single activity or interest entry.
type Activity struct {
	Title        string `json:"title"`
	Organization string `json:"organization"`
	Location     string `json:"location"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	Description  string `json:"description"`
}

// ResumeDocument is the aggregate every section editor mutates, the score
// engine reads, and every layout renders. It is the unit of persistence.
type ResumeDocument struct {
	PersonalDetails PersonalDetails `json:"personal_details"`
	Summary         string          `json:"summary"`
	Experience      []Experience    `json:"experience"`
	Education       []Education     `json:"education"`
	Skills          []Skill         `json:"skills"`
	Projects        []Project       `json:"projects"`
	Certifications  []Certification `json:"certifications"`
	Activities      []Activity      `json:"activities"`
}

// Clone returns an independent deep copy of the document. Mutating the copy
// never affects the original.
func (d ResumeDocument) Clone() ResumeDocument {
	out := d
	out.Experience = make([]Experience, len(d.Experience))
	for i, exp := range d.Experience {
		out.Experience[i] = exp
		out.Experience[i].Highlights = append([]string(nil), exp.Highlights...)
	}
	out.Education = append([]Education(nil), d.Education...)
	out.Skills = append([]Skill(nil), d.Skills...)
	out.Projects = append([]Project(nil), d.Projects...)
	out.Certifications = append([]Certification(nil), d.Certifications...)
	out.Activities = append([]Activity(nil), d.Activities...)
	return out
}
