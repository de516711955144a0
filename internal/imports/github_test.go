package imports

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/types"
)

func newGitHubStub(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /users/octocat/repos", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{
				"name": "portfolio",
				"full_name": "octocat/portfolio",
				"description": "Personal portfolio site",
				"html_url": "https://github.com/octocat/portfolio",
				"language": "TypeScript",
				"created_at": "2023-01-10T00:00:00Z",
				"pushed_at": "2023-03-20T00:00:00Z",
				"fork": false,
				"archived": false
			},
			{
				"name": "old-fork",
				"full_name": "octocat/old-fork",
				"fork": true,
				"archived": false
			},
			{
				"name": "weather-app",
				"full_name": "octocat/weather-app",
				"description": "Weather dashboard",
				"html_url": "https://github.com/octocat/weather-app",
				"language": "JavaScript",
				"created_at": "2021-11-01T00:00:00Z",
				"pushed_at": "2021-12-15T00:00:00Z",
				"fork": false,
				"archived": false
			}
		]`))
	})
	mux.HandleFunc("GET /repos/octocat/portfolio/languages", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"TypeScript": 9000, "CSS": 1000, "HTML": 500}`))
	})
	mux.HandleFunc("GET /repos/octocat/weather-app/languages", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusForbidden)
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestFetchProjects(t *testing.T) {
	server := newGitHubStub(t)
	client := NewGitHubClient(server.URL, "")

	projects, err := client.FetchProjects(context.Background(), "octocat")
	require.NoError(t, err)
	require.Len(t, projects, 2, "forks are skipped")

	first := projects[0]
	assert.Equal(t, "portfolio", first.Title, "newest push first")
	assert.Equal(t, "Personal portfolio site", first.Description)
	assert.Equal(t, "TypeScript, CSS, HTML", first.Technologies, "languages by byte count")
	assert.Equal(t, "https://github.com/octocat/portfolio", first.Link)
	assert.Equal(t, "01/2023", first.StartDate)
	assert.Equal(t, "03/2023", first.EndDate)

	second := projects[1]
	assert.Equal(t, "weather-app", second.Title)
	assert.Equal(t, "JavaScript", second.Technologies,
		"language lookup failure falls back to the primary language")
}

func TestFetchProjects_EmptyUsername(t *testing.T) {
	client := NewGitHubClient("http://127.0.0.1:0", "")

	_, err := client.FetchProjects(context.Background(), "")
	assert.Error(t, err)
}

func TestFetchProjects_APIError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	client := NewGitHubClient(server.URL, "")
	_, err := client.FetchProjects(context.Background(), "octocat")
	assert.Error(t, err)
}

func TestMerge(t *testing.T) {
	existing := []types.Project{{Title: "Portfolio", Description: "kept as-is"}}
	imported := []types.Project{
		{Title: "portfolio", Description: "duplicate by case"},
		{Title: "weather-app"},
	}

	merged := Merge(existing, imported)
	require.Len(t, merged, 2)
	assert.Equal(t, "kept as-is", merged[0].Description, "existing entries win")
	assert.Equal(t, "weather-app", merged[1].Title)
}
