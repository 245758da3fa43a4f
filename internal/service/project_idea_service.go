package service

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"learnify_backend/internal/model"
	"learnify_backend/internal/repository"
	"learnify_backend/internal/util"

	gocache "github.com/patrickmn/go-cache"
)

const ideaCacheKey = "project_ideas:all"

type ProjectIdeaService struct {
	IdeaRepo *repository.ProjectIdeaRepository
	cache    *gocache.Cache
	client   *http.Client
	apiBase  string
	rawBase  string
}

func NewProjectIdeaService(ideaRepo *repository.ProjectIdeaRepository) *ProjectIdeaService {
	return &ProjectIdeaService{
		IdeaRepo: ideaRepo,
		cache:    gocache.New(5*time.Minute, 10*time.Minute),
		client:   &http.Client{Timeout: 10 * time.Second},
		apiBase:  "https://api.github.com",
		rawBase:  "https://raw.githubusercontent.com",
	}
}

func (s *ProjectIdeaService) allIdeas() ([]model.ProjectIdea, error) {
	if cached, found := s.cache.Get(ideaCacheKey); found {
		return cached.([]model.ProjectIdea), nil
	}

	ideas, err := s.IdeaRepo.FindAll()
	if err != nil {
		return nil, err
	}

	s.cache.Set(ideaCacheKey, ideas, gocache.DefaultExpiration)
	return ideas, nil
}

// Suggest returns the ideas whose technology set is close enough to what
// the caller already knows: an idea stays in when the technologies the
// caller is missing are at most 40% of the idea's technologies. Each
// returned idea carries its missing list in ExtraTechnologies; nothing is
// persisted.
func (s *ProjectIdeaService) Suggest(userTechs []string) ([]model.ProjectIdea, error) {
	ideas, err := s.allIdeas()
	if err != nil {
		return nil, err
	}

	known := make(map[string]bool, len(userTechs))
	for _, t := range userTechs {
		known[strings.ToLower(t)] = true
	}

	suggested := make([]model.ProjectIdea, 0, len(ideas))
	for _, idea := range ideas {
		missing := make([]string, 0, len(idea.Technologies))
		for _, t := range idea.Technologies {
			if !known[strings.ToLower(t)] {
				missing = append(missing, t)
			}
		}

		if float64(len(missing)) > 0.4*float64(len(idea.Technologies)) {
			continue
		}

		idea.ExtraTechnologies = missing
		suggested = append(suggested, idea)
	}

	return suggested, nil
}

// GetAll lists every idea without any matching filter applied, reading
// through the same cache as Suggest.
func (s *ProjectIdeaService) GetAll() ([]model.ProjectIdea, error) {
	return s.allIdeas()
}

func (s *ProjectIdeaService) GetIdea(id uint) (*model.ProjectIdea, error) {
	idea, err := s.IdeaRepo.FindByID(id)
	if err != nil {
		return nil, util.ErrIdeaNotFound
	}
	return idea, nil
}

func (s *ProjectIdeaService) AddIdea(idea *model.ProjectIdea) error {
	idea.ID = 0
	if err := s.IdeaRepo.Create(idea); err != nil {
		return err
	}
	s.cache.Delete(ideaCacheKey)
	return nil
}

// ImportFromGitHub builds an idea from a repository's metadata, topics and
// README. The README fetch is best effort: any failure there leaves the
// roadmap empty without failing the import.
func (s *ProjectIdeaService) ImportFromGitHub(repoURL string) (*model.ProjectIdea, error) {
	path := strings.TrimPrefix(repoURL, "https://github.com/")
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if path == repoURL || len(parts) < 2 {
		return nil, util.ErrInvalidGitHubURL
	}
	owner, repo := parts[0], parts[1]

	var repoInfo struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := s.getJSON(fmt.Sprintf("%s/repos/%s/%s", s.apiBase, owner, repo), &repoInfo); err != nil {
		return nil, err
	}

	var topics struct {
		Names []string `json:"names"`
	}
	if err := s.getJSON(fmt.Sprintf("%s/repos/%s/%s/topics", s.apiBase, owner, repo), &topics); err != nil {
		return nil, err
	}

	summary := repoInfo.Description
	if summary == "" {
		summary = "Imported from GitHub"
	}

	idea := &model.ProjectIdea{
		Title:        repoInfo.Name,
		Summary:      summary,
		Technologies: topics.Names,
		Roadmap:      s.fetchRoadmap(owner, repo),
	}
	if err := s.IdeaRepo.Create(idea); err != nil {
		return nil, err
	}
	s.cache.Delete(ideaCacheKey)
	return idea, nil
}

// fetchRoadmap pulls the repository's README off the main branch and
// collects the bullet lines under its "## Roadmap" heading.
func (s *ProjectIdeaService) fetchRoadmap(owner, repo string) []string {
	resp, err := s.client.Get(fmt.Sprintf("%s/%s/%s/main/README.md", s.rawBase, owner, repo))
	if err != nil {
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil
	}
	readme, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil
	}
	return parseRoadmap(string(readme))
}

func parseRoadmap(readme string) []string {
	_, rest, found := strings.Cut(readme, "## Roadmap")
	if !found {
		return nil
	}

	var steps []string
	for _, line := range strings.Split(rest, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* ") {
			steps = append(steps, strings.TrimSpace(line[2:]))
		}
	}
	return steps
}

func (s *ProjectIdeaService) getJSON(url string, out interface{}) error {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("github api returned %d for %s", resp.StatusCode, url)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
