// Package fallback bundles a static repository dataset used whenever live
// retrieval fails, sliced and filtered with the same semantics as the live
// path so callers cannot tell the tiers apart by shape.
package fallback

import (
	_ "embed"
	"encoding/json"
	"log"
	"strings"
	"sync"

	"github.com/Shariq7739/GitExplore/internal/models"
)

//go:embed dataset.json
var rawDataset []byte

var (
	once  sync.Once
	repos []models.Repository
)

// Repositories returns a copy of the bundled dataset.
func Repositories() []models.Repository {
	once.Do(func() {
		if err := json.Unmarshal(rawDataset, &repos); err != nil {
			log.Printf("fallback: corrupt bundled dataset: %v", err)
			repos = nil
		}
	})
	out := make([]models.Repository, len(repos))
	copy(out, repos)
	return out
}

// Trending slices the dataset by page and perPage, mirroring the pagination
// the trending endpoint applies.
func Trending(page, perPage int) []models.Repository {
	return paginate(Repositories(), page, perPage)
}

// Search matches the query case-insensitively against name and description,
// then paginates. TotalCount counts all matches, not just the current page.
func Search(query string, page, perPage int) models.SearchResult {
	q := strings.ToLower(query)
	var matches []models.Repository
	for _, r := range Repositories() {
		if strings.Contains(strings.ToLower(r.Name), q) ||
			strings.Contains(strings.ToLower(r.Description), q) {
			matches = append(matches, r)
		}
	}

	items := paginate(matches, page, perPage)
	return models.SearchResult{
		TotalCount: len(matches),
		Items:      items,
	}
}

// Find looks up a single repository by exact full name (owner/repo).
func Find(owner, repo string) (models.Repository, bool) {
	fullName := owner + "/" + repo
	for _, r := range Repositories() {
		if r.FullName == fullName {
			return r, true
		}
	}
	return models.Repository{}, false
}

func paginate(in []models.Repository, page, perPage int) []models.Repository {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 9
	}
	start := (page - 1) * perPage
	if start >= len(in) {
		return []models.Repository{}
	}
	end := start + perPage
	if end > len(in) {
		end = len(in)
	}
	return in[start:end]
}
