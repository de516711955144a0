package assist

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/tidwall/gjson"
	"google.golang.org/api/option"

	"github.com/jonathan/resume-builder/internal/types"
)

const geminiModel = "gemini-1.5-flash"

const maxSuggestions = 5

// GeminiOptimizer implements Optimizer over the Google Gemini API.
type GeminiOptimizer struct {
	client *genai.Client
}

// NewGemini creates a Gemini-backed optimizer.
func NewGemini(ctx context.Context, apiKey string) (*GeminiOptimizer, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiOptimizer{client: client}, nil
}

// OptimizeSummary rewrites a professional summary.
func (g *GeminiOptimizer) OptimizeSummary(ctx context.Context, summary string) (string, error) {
	return g.generate(ctx, "optimize_summary", map[string]string{"Summary": summary})
}

// OptimizeExperience rewrites one experience description.
func (g *GeminiOptimizer) OptimizeExperience(ctx context.Context, description, position, company string) (string, error) {
	return g.generate(ctx, "optimize_experience", map[string]string{
		"Description": description,
		"Position":    position,
		"Company":     company,
	})
}

// OptimizeProject rewrites one project description.
func (g *GeminiOptimizer) OptimizeProject(ctx context.Context, description, title, technologies string) (string, error) {
	return g.generate(ctx, "optimize_project", map[string]string{
		"Description":  description,
		"Title":        title,
		"Technologies": technologies,
	})
}

// SuggestSkills proposes complementary skills as a JSON response from the model.
func (g *GeminiOptimizer) SuggestSkills(ctx context.Context, existing []string) ([]types.Skill, error) {
	text, err := prompt("suggest_skills")
	if err != nil {
		return nil, err
	}

	model := g.client.GenerativeModel(geminiModel)
	model.SetTemperature(0.1)
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(formatPrompt(text, map[string]string{
		"Skills": strings.Join(existing, ", "),
	})))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	raw, err := extractText(resp)
	if err != nil {
		return nil, err
	}
	return parseSuggestions(cleanJSONBlock(raw), existing), nil
}

// Close releases resources held by the optimizer.
func (g *GeminiOptimizer) Close() error {
	if g.client != nil {
		return g.client.Close()
	}
	return nil
}

func (g *GeminiOptimizer) generate(ctx context.Context, key string, data map[string]string) (string, error) {
	text, err := prompt(key)
	if err != nil {
		return "", err
	}

	model := g.client.GenerativeModel(geminiModel)
	model.SetTemperature(0.3)

	resp, err := model.GenerateContent(ctx, genai.Text(formatPrompt(text, data)))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	out, err := extractText(resp)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// parseSuggestions reads the model's JSON array, dropping malformed entries,
// duplicates of existing skills, and anything beyond the suggestion cap.
func parseSuggestions(raw string, existing []string) []types.Skill {
	have := make(map[string]bool, len(existing))
	for _, name := range existing {
		have[strings.ToLower(name)] = true
	}

	var out []types.Skill
	for _, item := range gjson.Parse(raw).Array() {
		name := item.Get("name").String()
		if name == "" || have[strings.ToLower(name)] {
			continue
		}
		category := types.SkillCategory(item.Get("category").String())
		if !category.Valid() {
			category = types.CategoryOther
		}
		out = append(out, types.Skill{Name: name, Category: category})
		have[strings.ToLower(name)] = true
		if len(out) == maxSuggestions {
			break
		}
	}
	return out
}

// extractText extracts text from a Gemini API response.
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}
	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in response")
	}
	return strings.Join(parts, ""), nil
}

// cleanJSONBlock removes markdown code block wrappers from JSON.
func cleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}
