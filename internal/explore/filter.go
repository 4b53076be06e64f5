// Package explore composes the rendered repository list: one source list per
// active view, filtered and stably sorted by the current configuration.
package explore

import (
	"sort"
	"time"

	"github.com/Shariq7739/GitExplore/internal/models"
)

// SortField names the repository metric a comparator orders by.
type SortField string

const (
	SortStars   SortField = "stars"
	SortForks   SortField = "forks"
	SortUpdated SortField = "updated"
	SortCreated SortField = "created"
	SortSize    SortField = "size"
	SortIssues  SortField = "issues"
)

// SortOrder is ascending or descending.
type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

// SortFields lists the selectable sort fields in display order.
var SortFields = []SortField{SortStars, SortForks, SortUpdated, SortCreated, SortSize, SortIssues}

// KnownLanguages and KnownLicenses populate the filter pickers.
var (
	KnownLanguages = []string{
		"JavaScript", "TypeScript", "Python", "Java", "Go", "Rust", "C++",
		"C#", "PHP", "HTML", "CSS", "Shell", "C", "Ruby", "Scala", "Kotlin", "Swift",
	}
	KnownLicenses = []string{
		"mit", "apache-2.0", "gpl-3.0", "bsd-3-clause", "unlicense",
		"lgpl-3.0", "agpl-3.0", "mpl-2.0",
	}
)

// Filters is the transient filter/sort configuration. Empty Languages or
// License accept everything; the size range is inclusive at both ends.
type Filters struct {
	Sort      SortField
	Order     SortOrder
	Languages []string
	License   string
	SizeMin   int
	SizeMax   int
}

// DefaultFilters matches the UI's initial configuration.
func DefaultFilters() Filters {
	return Filters{
		Sort:    SortStars,
		Order:   OrderDesc,
		SizeMin: 0,
		SizeMax: 1_000_000,
	}
}

// Apply filters repos by the configuration, then sorts the survivors with a
// stable sort so equal keys keep their source order across re-renders. The
// input slice is not modified.
func Apply(repos []models.Repository, f Filters) []models.Repository {
	out := make([]models.Repository, 0, len(repos))
	for _, r := range repos {
		if f.accepts(r) {
			out = append(out, r)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := sortValue(out[i], f.Sort), sortValue(out[j], f.Sort)
		if f.Order == OrderAsc {
			return a < b
		}
		return a > b
	})
	return out
}

func (f Filters) accepts(r models.Repository) bool {
	if len(f.Languages) > 0 {
		found := false
		for _, lang := range f.Languages {
			if r.Language == lang {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if f.License != "" {
		if r.License == nil || r.License.Key != f.License {
			return false
		}
	}
	return r.Size >= f.SizeMin && r.Size <= f.SizeMax
}

// sortValue projects the field being sorted on to an int64. Timestamps that
// fail to parse sort as zero.
func sortValue(r models.Repository, field SortField) int64 {
	switch field {
	case SortForks:
		return int64(r.ForksCount)
	case SortUpdated:
		return parseTime(r.UpdatedAt)
	case SortCreated:
		return parseTime(r.CreatedAt)
	case SortSize:
		return int64(r.Size)
	case SortIssues:
		return int64(r.OpenIssuesCount)
	default:
		return int64(r.StargazersCount)
	}
}

func parseTime(iso string) int64 {
	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		return 0
	}
	return t.Unix()
}
