package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/Shariq7739/GitExplore/internal/analytics"
	"github.com/Shariq7739/GitExplore/internal/models"
)

// CardLabel is the one-line form of a repository used in pickers.
func CardLabel(r models.Repository, bookmarked, hasNote bool) string {
	marks := ""
	if bookmarked {
		marks += " [bookmarked]"
	}
	if hasNote {
		marks += " [note]"
	}
	return fmt.Sprintf("%-40s ★ %-8d %s%s", r.FullName, r.StargazersCount, r.Language, marks)
}

// PrintCard renders one repository card.
func PrintCard(r models.Repository, note string, hasNote bool) {
	fmt.Println(strings.Repeat("-", 72))
	fmt.Printf("%s (%s)\n", r.FullName, r.HTMLURL)
	if r.Description != "" {
		fmt.Printf("  %s\n", r.Description)
	}
	license := "none"
	if r.License != nil {
		license = r.License.Key
	}
	fmt.Printf("  ★ %d   forks %d   issues %d   size %d KB\n",
		r.StargazersCount, r.ForksCount, r.OpenIssuesCount, r.Size)
	fmt.Printf("  language: %s   license: %s\n", orDash(r.Language), license)
	fmt.Printf("  created %s   updated %s   pushed %s\n",
		shortDate(r.CreatedAt), shortDate(r.UpdatedAt), shortDate(r.PushedAt))
	if len(r.Topics) > 0 {
		fmt.Printf("  topics: %s\n", strings.Join(r.Topics, ", "))
	}
	if hasNote {
		fmt.Printf("  note: %s\n", firstLine(note))
	}
}

// PrintList renders the composed list as numbered one-liners.
func PrintList(repos []models.Repository) {
	if len(repos) == 0 {
		fmt.Println("No repositories found. Try adjusting your filters.")
		return
	}
	for i, r := range repos {
		desc := r.Description
		if len(desc) > 60 {
			desc = desc[:57] + "..."
		}
		fmt.Printf("%2d. %-36s ★ %-8d %-12s %s\n", i+1, r.FullName, r.StargazersCount, orDash(r.Language), desc)
	}
}

// PrintAnalytics renders the three chart series as text.
func PrintAnalytics(repos []models.Repository) {
	if len(repos) == 0 {
		fmt.Println("Not enough data. Explore, search, or bookmark some repositories to see analytics.")
		return
	}

	fmt.Println("Language distribution:")
	for _, lc := range analytics.Languages(repos, 5) {
		fmt.Printf("  %-14s %s %d\n", lc.Language, strings.Repeat("#", lc.Count), lc.Count)
	}

	fmt.Println("\nTop repositories by stars:")
	for _, r := range analytics.TopByStars(repos, 10) {
		fmt.Printf("  %-36s %d\n", r.FullName, r.StargazersCount)
	}

	fmt.Println("\nRepository creations per month:")
	for _, mc := range analytics.CreationsByMonth(repos) {
		fmt.Printf("  %s  %s %d\n", mc.Month, strings.Repeat("#", mc.Count), mc.Count)
	}
}

func shortDate(iso string) string {
	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		return "-"
	}
	return t.Format("2006-01-02")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
