// Package imports pulls project entries from external sources into the
// document model. GitHub repositories map onto the projects section.
package imports

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-builder/internal/types"
)

const (
	defaultBaseURL = "https://api.github.com"

	// maxRepos bounds one import to a single API page.
	maxRepos = 100

	// languageFetchers bounds concurrent per-repo language lookups.
	languageFetchers = 4

	dateLayout = "01/2006"
)

// GitHubClient fetches public repositories and shapes them as project entries.
type GitHubClient struct {
	client *resty.Client
}

// NewGitHubClient creates a client. An empty token limits it to public data;
// baseURL is overridable for tests and GitHub Enterprise.
func NewGitHubClient(baseURL, token string) *GitHubClient {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/vnd.github+json").
		SetTimeout(30 * time.Second)
	if token != "" {
		client.SetHeader("Authorization", "Bearer "+token)
	}
	return &GitHubClient{client: client}
}

// FetchProjects lists a user's public repositories, newest push first,
// skipping forks and archived repos. Languages are fetched per repo with
// bounded concurrency and joined into the technologies field.
func (c *GitHubClient) FetchProjects(ctx context.Context, username string) ([]types.Project, error) {
	if username == "" {
		return nil, fmt.Errorf("username is empty")
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"sort":     "pushed",
			"per_page": fmt.Sprint(maxRepos),
		}).
		Get("/users/" + username + "/repos")
	if err != nil {
		return nil, fmt.Errorf("failed to list repositories for %s: %w", username, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("failed to list repositories for %s: %s", username, resp.Status())
	}

	type dated struct {
		project types.Project
		pushed  time.Time
	}
	var (
		mu      sync.Mutex
		entries []dated
	)

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(languageFetchers)
	for _, repo := range gjson.ParseBytes(resp.Body()).Array() {
		if repo.Get("fork").Bool() || repo.Get("archived").Bool() {
			continue
		}
		repo := repo
		group.Go(func() error {
			pushed, _ := time.Parse(time.RFC3339, repo.Get("pushed_at").String())
			entry := dated{project: c.toProject(ctx, repo), pushed: pushed}
			mu.Lock()
			entries = append(entries, entry)
			mu.Unlock()
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].pushed.After(entries[j].pushed) })
	projects := make([]types.Project, len(entries))
	for i, entry := range entries {
		projects[i] = entry.project
	}
	return projects, nil
}

func (c *GitHubClient) toProject(ctx context.Context, repo gjson.Result) types.Project {
	project := types.Project{
		Title:       repo.Get("name").String(),
		Description: repo.Get("description").String(),
		Link:        repo.Get("html_url").String(),
		StartDate:   monthYear(repo.Get("created_at").String()),
		EndDate:     monthYear(repo.Get("pushed_at").String()),
	}

	languages := c.fetchLanguages(ctx, repo.Get("full_name").String())
	if main := repo.Get("language").String(); len(languages) == 0 && main != "" {
		languages = []string{main}
	}
	project.Technologies = strings.Join(languages, ", ")
	return project
}

// fetchLanguages returns the repo's languages ordered by byte count. Failures
// degrade to an empty list; the caller falls back to the primary language.
func (c *GitHubClient) fetchLanguages(ctx context.Context, fullName string) []string {
	if fullName == "" {
		return nil
	}
	resp, err := c.client.R().SetContext(ctx).Get("/repos/" + fullName + "/languages")
	if err != nil || resp.IsError() {
		return nil
	}

	type lang struct {
		name  string
		bytes int64
	}
	var langs []lang
	gjson.ParseBytes(resp.Body()).ForEach(func(key, value gjson.Result) bool {
		langs = append(langs, lang{name: key.String(), bytes: value.Int()})
		return true
	})
	sort.Slice(langs, func(i, j int) bool { return langs[i].bytes > langs[j].bytes })

	names := make([]string, len(langs))
	for i, l := range langs {
		names[i] = l.name
	}
	return names
}

// Merge appends imported projects to the existing list, skipping any whose
// title is already present, compared case-insensitively.
func Merge(existing, imported []types.Project) []types.Project {
	have := make(map[string]bool, len(existing))
	for _, project := range existing {
		have[strings.ToLower(project.Title)] = true
	}

	out := append([]types.Project(nil), existing...)
	for _, project := range imported {
		if have[strings.ToLower(project.Title)] {
			continue
		}
		out = append(out, project)
		have[strings.ToLower(project.Title)] = true
	}
	return out
}

// monthYear converts an RFC 3339 timestamp to the MM/YYYY form the date
// fields use. Unparseable input becomes an empty date.
func monthYear(value string) string {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return ""
	}
	return t.Format(dateLayout)
}
