// Package assist rewrites resume text for ATS friendliness and suggests
// complementary skills. Two implementations exist: a Gemini-backed optimizer
// and a static one with canned heuristics, used when no API key is configured.
package assist

import (
	"context"

	"github.com/jonathan/resume-builder/internal/types"
)

// Optimizer is an abstraction over text optimization providers.
type Optimizer interface {
	// OptimizeSummary rewrites a professional summary.
	OptimizeSummary(ctx context.Context, summary string) (string, error)
	// OptimizeExperience rewrites one experience description.
	OptimizeExperience(ctx context.Context, description, position, company string) (string, error)
	// OptimizeProject rewrites one project description.
	OptimizeProject(ctx context.Context, description, title, technologies string) (string, error)
	// SuggestSkills proposes skills complementing the existing list.
	SuggestSkills(ctx context.Context, existing []string) ([]types.Skill, error)
	// Close releases any resources held by the optimizer.
	Close() error
}

// New creates an optimizer. With an API key it talks to Gemini; without one it
// falls back to the static optimizer so the feature keeps working offline.
func New(ctx context.Context, apiKey string) (Optimizer, error) {
	if apiKey == "" {
		return NewStatic(), nil
	}
	return NewGemini(ctx, apiKey)
}
