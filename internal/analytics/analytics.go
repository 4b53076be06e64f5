// Package analytics aggregates repository lists into the series the
// analytics view charts. All functions are pure and leave their input intact.
package analytics

import (
	"sort"
	"time"

	"github.com/Shariq7739/GitExplore/internal/models"
)

// LanguageCount is one slice of the language distribution.
type LanguageCount struct {
	Language string
	Count    int
}

// Languages tallies the language distribution: the top n languages by count,
// with everything beyond n folded into "Other". Repositories without a
// language count as "Other" as well.
func Languages(repos []models.Repository, n int) []LanguageCount {
	tally := map[string]int{}
	for _, r := range repos {
		lang := r.Language
		if lang == "" {
			lang = "Other"
		}
		tally[lang]++
	}

	counts := make([]LanguageCount, 0, len(tally))
	for lang, count := range tally {
		counts = append(counts, LanguageCount{Language: lang, Count: count})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Language < counts[j].Language
	})

	if n <= 0 || len(counts) <= n {
		return counts
	}
	other := LanguageCount{Language: "Other"}
	for _, c := range counts[n:] {
		other.Count += c.Count
	}
	return append(counts[:n:n], other)
}

// TopByStars returns the n most-starred repositories, descending.
func TopByStars(repos []models.Repository, n int) []models.Repository {
	out := append([]models.Repository(nil), repos...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StargazersCount > out[j].StargazersCount
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// MonthCount is the number of repositories created in one calendar month.
type MonthCount struct {
	Month string // YYYY-MM
	Count int
}

// CreationsByMonth buckets repositories by creation month, sorted
// chronologically. Unparseable timestamps are skipped.
func CreationsByMonth(repos []models.Repository) []MonthCount {
	tally := map[string]int{}
	for _, r := range repos {
		t, err := time.Parse(time.RFC3339, r.CreatedAt)
		if err != nil {
			continue
		}
		tally[t.Format("2006-01")]++
	}

	out := make([]MonthCount, 0, len(tally))
	for month, count := range tally {
		out = append(out, MonthCount{Month: month, Count: count})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}
