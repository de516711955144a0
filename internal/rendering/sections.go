package rendering

import (
	"github.com/jonathan/resume-builder/internal/skills"
	"github.com/jonathan/resume-builder/internal/types"
)

// Canonical section headings. Every layout renders these labels verbatim so
// that the set of rendered sections is identical across strategies.
const (
	LabelSummary        = "Professional Summary"
	LabelExperience     = "Experience"
	LabelEducation      = "Education"
	LabelSkills         = "Skills"
	LabelProjects       = "Projects"
	LabelCertifications = "Certifications"
	LabelActivities     = "Activities & Interests"
)

// View is the layout-independent projection of a document that every template
// executes against. Layouts differ in arrangement and typography only; the
// facts come from here.
type View struct {
	Colors  types.ColorScheme
	Details types.PersonalDetails
	Contact []string

	Summary     string
	ShowSummary bool

	Experience     []ExperienceView
	ShowExperience bool

	Education     []EducationView
	ShowEducation bool

	SkillGroups []skills.Group
	ShowSkills  bool

	Projects     []ProjectView
	ShowProjects bool

	Certifications     []types.Certification
	ShowCertifications bool

	Activities     []ActivityView
	ShowActivities bool
}

// ExperienceView is an experience entry with its date range preformatted.
type ExperienceView struct {
	types.Experience
	DateRange string
}

// EducationView is an education entry with its date range preformatted.
type EducationView struct {
	types.Education
	DateRange string
}

// ProjectView is a project entry with its date range preformatted.
type ProjectView struct {
	types.Project
	DateRange string
}

// ActivityView is an activity entry with its date range preformatted.
type ActivityView struct {
	types.Activity
	DateRange string
}

// BuildView derives the shared view model. Section visibility is uniform
// across layouts: a list section renders only when it is non-empty and its
// first entry's identifying field is non-empty, so a list whose first entry is
// blank renders nothing even if later entries are populated.
func BuildView(doc types.ResumeDocument, scheme types.ColorScheme) View {
	v := View{
		Colors:  scheme,
		Details: doc.PersonalDetails,
		Summary: doc.Summary,
	}

	for _, field := range []string{
		doc.PersonalDetails.Email,
		doc.PersonalDetails.Phone,
		doc.PersonalDetails.Location,
		doc.PersonalDetails.LinkedIn,
		doc.PersonalDetails.GitHub,
		doc.PersonalDetails.Website,
	} {
		if field != "" {
			v.Contact = append(v.Contact, field)
		}
	}

	v.ShowSummary = doc.Summary != ""
	v.ShowExperience = len(doc.Experience) > 0 && doc.Experience[0].Company != ""
	v.ShowEducation = len(doc.Education) > 0 && doc.Education[0].Institution != ""
	v.ShowSkills = len(doc.Skills) > 0
	v.ShowProjects = len(doc.Projects) > 0 && doc.Projects[0].Title != ""
	v.ShowCertifications = len(doc.Certifications) > 0 && doc.Certifications[0].Name != ""
	v.ShowActivities = len(doc.Activities) > 0 && doc.Activities[0].Title != ""

	for _, exp := range doc.Experience {
		v.Experience = append(v.Experience, ExperienceView{
			Experience: exp,
			DateRange:  dateRange(exp.StartDate, exp.EndDate, exp.Current),
		})
	}
	for _, edu := range doc.Education {
		v.Education = append(v.Education, EducationView{
			Education: edu,
			DateRange: dateRange(edu.StartDate, edu.EndDate, edu.Current),
		})
	}
	v.SkillGroups = skills.GroupByCategory(doc.Skills)
	for _, proj := range doc.Projects {
		v.Projects = append(v.Projects, ProjectView{
			Project:   proj,
			DateRange: dateRange(proj.StartDate, proj.EndDate, false),
		})
	}
	v.Certifications = doc.Certifications
	for _, act := range doc.Activities {
		v.Activities = append(v.Activities, ActivityView{
			Activity:  act,
			DateRange: dateRange(act.StartDate, act.EndDate, false),
		})
	}

	return v
}

// VisibleLabels returns the headings a document renders under any layout, in
// canonical order. Layouts may arrange sections differently but never add or
// drop one.
func VisibleLabels(doc types.ResumeDocument) []string {
	v := BuildView(doc, types.ColorScheme{})
	var labels []string
	if v.ShowSummary {
		labels = append(labels, LabelSummary)
	}
	if v.ShowExperience {
		labels = append(labels, LabelExperience)
	}
	if v.ShowEducation {
		labels = append(labels, LabelEducation)
	}
	if v.ShowSkills {
		labels = append(labels, LabelSkills)
	}
	if v.ShowProjects {
		labels = append(labels, LabelProjects)
	}
	if v.ShowCertifications {
		labels = append(labels, LabelCertifications)
	}
	if v.ShowActivities {
		labels = append(labels, LabelActivities)
	}
	return labels
}

// dateRange formats "start - end", "start - Present" for current entries, or
// just the start when nothing else is set.
func dateRange(start, end string, current bool) string {
	switch {
	case end != "":
		return start + " - " + end
	case current:
		return start + " - Present"
	default:
		return start
	}
}
