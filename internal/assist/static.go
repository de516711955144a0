package assist

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// StaticOptimizer implements Optimizer with canned heuristics. It keeps the
// optimize endpoints functional when no provider is configured.
type StaticOptimizer struct{}

// NewStatic creates the offline optimizer.
func NewStatic() *StaticOptimizer {
	return &StaticOptimizer{}
}

// OptimizeSummary appends a stock closing sentence to the trimmed summary.
func (s *StaticOptimizer) OptimizeSummary(_ context.Context, summary string) (string, error) {
	return strings.TrimSpace(summary) +
		" Experienced in developing scalable solutions and collaborating in" +
		" cross-functional teams to deliver high-quality software products.", nil
}

// OptimizeExperience prepends stock bullet points when the description has
// none; bulleted text is returned unchanged.
func (s *StaticOptimizer) OptimizeExperience(_ context.Context, description, _, _ string) (string, error) {
	description = strings.TrimSpace(description)
	if strings.Contains(description, "•") {
		return description, nil
	}
	return "• Led development of key features, improving system performance by 30%\n" +
		"• Collaborated with cross-functional teams to deliver projects on time\n" +
		"• " + description, nil
}

// OptimizeProject prepends stock bullet points naming the project and its
// technology list when the description has none.
func (s *StaticOptimizer) OptimizeProject(_ context.Context, description, title, technologies string) (string, error) {
	description = strings.TrimSpace(description)
	if strings.Contains(description, "•") {
		return description, nil
	}

	var tech []string
	if technologies != "" {
		for _, t := range strings.Split(technologies, ",") {
			tech = append(tech, strings.TrimSpace(t))
		}
	}
	first := fmt.Sprintf("• Developed %s ", title)
	if len(tech) > 0 {
		first += "using " + strings.Join(tech, ", ")
	}
	return strings.TrimSpace(first) + "\n" +
		"• Implemented best practices for code quality and performance\n" +
		"• " + description, nil
}

// pairings maps a skill keyword to the suggestions it unlocks.
var pairings = []struct {
	keyword     string
	suggestions []types.Skill
}{
	{"react", []types.Skill{
		{Name: "Redux", Category: types.CategoryFramework},
		{Name: "Jest", Category: types.CategoryTool},
		{Name: "TypeScript", Category: types.CategoryLanguage},
	}},
	{"javascript", []types.Skill{
		{Name: "Node.js", Category: types.CategoryFramework},
		{Name: "Express", Category: types.CategoryFramework},
		{Name: "Webpack", Category: types.CategoryTool},
	}},
	{"python", []types.Skill{
		{Name: "Django", Category: types.CategoryFramework},
		{Name: "Flask", Category: types.CategoryFramework},
		{Name: "Pandas", Category: types.CategoryFramework},
	}},
	{"aws", []types.Skill{
		{Name: "Lambda", Category: types.CategoryCloud},
		{Name: "S3", Category: types.CategoryCloud},
		{Name: "EC2", Category: types.CategoryCloud},
	}},
	{"docker", []types.Skill{
		{Name: "Kubernetes", Category: types.CategoryTool},
		{Name: "CI/CD", Category: types.CategoryTool},
		{Name: "Microservices", Category: types.CategoryOther},
	}},
}

// SuggestSkills proposes complements from a fixed pairing table, skipping
// names already held, capped at five. With no pairing hit it falls back to a
// generic trio.
func (s *StaticOptimizer) SuggestSkills(_ context.Context, existing []string) ([]types.Skill, error) {
	have := make(map[string]bool, len(existing))
	for _, name := range existing {
		have[strings.ToLower(name)] = true
	}

	var out []types.Skill
	for _, name := range existing {
		lower := strings.ToLower(name)
		for _, pairing := range pairings {
			if !strings.Contains(lower, pairing.keyword) {
				continue
			}
			for _, suggestion := range pairing.suggestions {
				if have[strings.ToLower(suggestion.Name)] {
					continue
				}
				out = append(out, suggestion)
				have[strings.ToLower(suggestion.Name)] = true
			}
		}
	}

	if len(out) == 0 {
		return []types.Skill{
			{Name: "Git", Category: types.CategoryTool},
			{Name: "Agile", Category: types.CategorySoft},
			{Name: "REST API", Category: types.CategoryOther},
		}, nil
	}
	if len(out) > maxSuggestions {
		out = out[:maxSuggestions]
	}
	return out, nil
}

// Close is a no-op for the static optimizer.
func (s *StaticOptimizer) Close() error {
	return nil
}
