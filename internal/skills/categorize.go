// Package skills provides best-effort skill categorization and category-keyed
// grouping for display.
package skills

import (
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// keywordsByCategory maps each category to lowercase keywords matched as
// substrings of a skill name. The first category with a match wins, so a name
// containing "sql" lands in language before database ever gets a look.
var keywordsByCategory = []struct {
	category types.SkillCategory
	keywords []string
}{
	{types.CategoryLanguage, []string{
		"javascript", "typescript", "python", "java", "c#", "c++", "go", "rust",
		"swift", "kotlin", "php", "ruby", "scala", "perl", "html", "css", "sql",
		"r", "matlab",
	}},
	{types.CategoryFramework, []string{
		"react", "angular", "vue", "svelte", "next.js", "node.js", "express",
		"django", "flask", "spring", "asp.net", "laravel", "rails", "jquery",
		"bootstrap", "tailwind", "redux", "graphql", "apollo", "ember",
		"backbone", "meteor", "nuxt", "gatsby",
	}},
	{types.CategoryDatabase, []string{
		"mysql", "postgresql", "mongodb", "sqlite", "oracle", "sql server",
		"dynamodb", "cassandra", "redis", "elasticsearch", "firebase",
		"supabase", "neo4j", "couchdb",
	}},
	{types.CategoryTool, []string{
		"git", "docker", "kubernetes", "jenkins", "travis", "circleci",
		"webpack", "babel", "vite", "npm", "yarn", "jira", "confluence",
		"postman", "swagger", "figma", "sketch", "photoshop", "illustrator",
		"xd", "zeplin", "invision", "jest", "mocha", "cypress",
	}},
	{types.CategoryCloud, []string{
		"aws", "azure", "gcp", "google cloud", "heroku", "netlify", "vercel",
		"digitalocean", "lambda", "ec2", "s3", "cloudfront", "route53",
		"cloudflare", "firebase",
	}},
	{types.CategorySoft, []string{
		"leadership", "communication", "teamwork", "problem solving",
		"critical thinking", "time management", "adaptability", "creativity",
		"project management", "agile", "scrum", "kanban", "presentation",
		"negotiation", "mentoring", "coaching",
	}},
}

// Categorize guesses a category for a free-text skill name by matching its
// lowercase form against per-category keyword lists. The first matching
// category wins; no match defaults to "other". Keywords of one or two
// characters ("r", "go", "c#", "xd") only match whole tokens, so "Docker"
// does not land in language via the letter r. This is best-effort
// classification and is overridable by explicit user selection.
func Categorize(name string) types.SkillCategory {
	lower := strings.ToLower(name)
	tokens := strings.FieldsFunc(lower, func(r rune) bool {
		return r == ' ' || r == ',' || r == '/' || r == '(' || r == ')'
	})
	for _, group := range keywordsByCategory {
		for _, keyword := range group.keywords {
			if len(keyword) <= 2 {
				for _, token := range tokens {
					if token == keyword {
						return group.category
					}
				}
				continue
			}
			if strings.Contains(lower, keyword) {
				return group.category
			}
		}
	}
	return types.CategoryOther
}
