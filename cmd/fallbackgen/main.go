// Command fallbackgen regenerates the bundled fallback dataset from the live
// GitHub search API. Run it from the repository root:
//
//	GITHUB_TOKEN=... go run ./cmd/fallbackgen
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"time"

	"github.com/google/go-github/v53/github"
	"golang.org/x/oauth2"

	"github.com/Shariq7739/GitExplore/internal/config"
	"github.com/Shariq7739/GitExplore/internal/models"
)

func main() {
	out := flag.String("out", "internal/fallback/dataset.json", "output path")
	count := flag.Int("count", 12, "number of repositories to fetch")
	flag.Parse()

	cfg := config.Load()

	var client *github.Client
	if cfg.GitHubToken == "" {
		log.Printf("Warning: GITHUB_TOKEN is not set; using anonymous rate limits")
		client = github.NewClient(nil)
	} else {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.GitHubToken})
		client = github.NewClient(oauth2.NewClient(context.Background(), ts))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	result, _, err := client.Search.Repositories(ctx, "stars:>50000", &github.SearchOptions{
		Sort:        "stars",
		Order:       "desc",
		ListOptions: github.ListOptions{PerPage: *count},
	})
	if err != nil {
		log.Fatalf("GitHub search failed: %v", err)
	}

	repos := make([]models.Repository, 0, len(result.Repositories))
	for _, item := range result.Repositories {
		repos = append(repos, convert(item))
	}

	raw, err := json.MarshalIndent(repos, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode dataset: %v", err)
	}
	raw = append(raw, '\n')

	if err := os.WriteFile(*out, raw, 0o644); err != nil {
		log.Fatalf("Failed to write %s: %v", *out, err)
	}
	log.Printf("Wrote %d repositories to %s", len(repos), *out)
}

// convert maps the go-github repository shape onto our model.
func convert(r *github.Repository) models.Repository {
	out := models.Repository{
		ID:       r.GetID(),
		Name:     r.GetName(),
		FullName: r.GetFullName(),
		Owner: models.Owner{
			Login:     r.GetOwner().GetLogin(),
			ID:        r.GetOwner().GetID(),
			AvatarURL: r.GetOwner().GetAvatarURL(),
			HTMLURL:   r.GetOwner().GetHTMLURL(),
		},
		HTMLURL:         r.GetHTMLURL(),
		Description:     r.GetDescription(),
		StargazersCount: r.GetStargazersCount(),
		WatchersCount:   r.GetWatchersCount(),
		ForksCount:      r.GetForksCount(),
		OpenIssuesCount: r.GetOpenIssuesCount(),
		Language:        r.GetLanguage(),
		CreatedAt:       r.GetCreatedAt().Format(time.RFC3339),
		UpdatedAt:       r.GetUpdatedAt().Format(time.RFC3339),
		PushedAt:        r.GetPushedAt().Format(time.RFC3339),
		Size:            r.GetSize(),
		Topics:          r.Topics,
	}
	if lic := r.GetLicense(); lic != nil {
		out.License = &models.License{
			Key:    lic.GetKey(),
			Name:   lic.GetName(),
			SpdxID: lic.GetSPDXID(),
			URL:    lic.GetURL(),
		}
	}
	return out
}
