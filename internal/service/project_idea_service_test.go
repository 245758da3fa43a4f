package service

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"learnify_backend/internal/model"
	"learnify_backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newIdeaFixture(t *testing.T) *ProjectIdeaService {
	db := setupTestDB(t)
	svc := NewProjectIdeaService(repository.NewProjectIdeaRepository(db))

	ideas := []model.ProjectIdea{
		{
			Title:        "Inventory system",
			Technologies: []string{"Go", "MySQL", "Redis", "Docker", "React"},
		},
		{
			Title:        "Chat app",
			Technologies: []string{"Elixir", "Phoenix", "Postgres"},
		},
	}
	for i := range ideas {
		require.NoError(t, svc.AddIdea(&ideas[i]))
	}
	return svc
}

func TestSuggestIncludesNearMatches(t *testing.T) {
	svc := newIdeaFixture(t)

	// 2 of 5 technologies missing is exactly the 40% cutoff.
	got, err := svc.Suggest([]string{"go", "mysql", "redis"})
	require.NoError(t, err)
	require.Len(t, got, 1)

	assert.Equal(t, "Inventory system", got[0].Title)
	assert.ElementsMatch(t, []string{"Docker", "React"}, got[0].ExtraTechnologies)
}

func TestSuggestExcludesDistantIdeas(t *testing.T) {
	svc := newIdeaFixture(t)

	// Only 1 of 5 known: 4 missing, way past the cutoff. The chat stack is
	// entirely unknown too.
	got, err := svc.Suggest([]string{"go"})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSuggestMatchingIsCaseInsensitive(t *testing.T) {
	svc := newIdeaFixture(t)

	got, err := svc.Suggest([]string{"GO", "MySQL", "REDIS", "docker", "React"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Empty(t, got[0].ExtraTechnologies)
}

func newGitHubStub(t *testing.T, description string, readme string) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/repos/acme/widget", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"name":"widget","description":%q}`, description)
	})
	mux.HandleFunc("/repos/acme/widget/topics", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"names":["go","cli"]}`)
	})
	mux.HandleFunc("/acme/widget/main/README.md", func(w http.ResponseWriter, r *http.Request) {
		if readme == "" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, readme)
	})
	return httptest.NewServer(mux)
}

func TestImportFromGitHubParsesRoadmap(t *testing.T) {
	svc := newIdeaFixture(t)

	stub := newGitHubStub(t, "A widget maker", "# Widget\n\n## Roadmap\n- ship v1\n* add plugins\nnot a bullet\n- write docs\n")
	defer stub.Close()
	svc.apiBase = stub.URL
	svc.rawBase = stub.URL

	idea, err := svc.ImportFromGitHub("https://github.com/acme/widget")
	require.NoError(t, err)

	assert.Equal(t, "widget", idea.Title)
	assert.Equal(t, "A widget maker", idea.Summary)
	assert.Equal(t, []string{"go", "cli"}, idea.Technologies)
	assert.Equal(t, []string{"ship v1", "add plugins", "write docs"}, idea.Roadmap)
}

func TestImportFromGitHubDefaults(t *testing.T) {
	svc := newIdeaFixture(t)

	// No description and no README: the import still succeeds with a stock
	// summary and an empty roadmap.
	stub := newGitHubStub(t, "", "")
	defer stub.Close()
	svc.apiBase = stub.URL
	svc.rawBase = stub.URL

	idea, err := svc.ImportFromGitHub("https://github.com/acme/widget")
	require.NoError(t, err)

	assert.Equal(t, "Imported from GitHub", idea.Summary)
	assert.Empty(t, idea.Roadmap)
}

func TestGetAllListsEveryIdea(t *testing.T) {
	svc := newIdeaFixture(t)

	got, err := svc.GetAll()
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Empty(t, got[0].ExtraTechnologies)
}

func TestAddIdeaInvalidatesCache(t *testing.T) {
	svc := newIdeaFixture(t)

	before, err := svc.Suggest([]string{"elixir", "phoenix", "postgres"})
	require.NoError(t, err)
	require.Len(t, before, 1)

	require.NoError(t, svc.AddIdea(&model.ProjectIdea{
		Title:        "Forum",
		Technologies: []string{"Elixir", "Phoenix"},
	}))

	after, err := svc.Suggest([]string{"elixir", "phoenix", "postgres"})
	require.NoError(t, err)
	assert.Len(t, after, 2, "a fresh idea must show up despite the cache")
}
