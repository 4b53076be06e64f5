package explore

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Shariq7739/GitExplore/internal/models"
)

func TestApplySortsByStarsDescending(t *testing.T) {
	repos := []models.Repository{
		{ID: 1, StargazersCount: 5},
		{ID: 2, StargazersCount: 50},
		{ID: 3, StargazersCount: 1},
	}

	got := Apply(repos, DefaultFilters())

	stars := []int{got[0].StargazersCount, got[1].StargazersCount, got[2].StargazersCount}
	assert.Equal(t, []int{50, 5, 1}, stars)
}

func TestApplySortsByStarsAscending(t *testing.T) {
	repos := []models.Repository{
		{ID: 1, StargazersCount: 5},
		{ID: 2, StargazersCount: 50},
		{ID: 3, StargazersCount: 1},
	}
	f := DefaultFilters()
	f.Order = OrderAsc

	got := Apply(repos, f)

	stars := []int{got[0].StargazersCount, got[1].StargazersCount, got[2].StargazersCount}
	assert.Equal(t, []int{1, 5, 50}, stars)
}

func TestApplyIsIdempotent(t *testing.T) {
	repos := []models.Repository{
		{ID: 1, StargazersCount: 10, Language: "Go", Size: 100},
		{ID: 2, StargazersCount: 20, Language: "Rust", Size: 200},
		{ID: 3, StargazersCount: 30, Language: "Go", Size: 5_000_000},
	}
	f := DefaultFilters()
	f.Languages = []string{"Go", "Rust"}

	once := Apply(repos, f)
	twice := Apply(once, f)

	assert.Equal(t, once, twice)
}

func TestApplyFiltersByLanguage(t *testing.T) {
	repos := []models.Repository{
		{ID: 1, Language: "Go"},
		{ID: 2, Language: "Rust"},
		{ID: 3, Language: ""},
	}
	f := DefaultFilters()
	f.Languages = []string{"Go"}

	got := Apply(repos, f)

	assert.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)
}

func TestApplyEmptyLanguageFilterAcceptsAll(t *testing.T) {
	repos := []models.Repository{
		{ID: 1, Language: "Go"},
		{ID: 2, Language: ""},
	}

	got := Apply(repos, DefaultFilters())

	assert.Len(t, got, 2)
}

func TestApplyFiltersByLicense(t *testing.T) {
	repos := []models.Repository{
		{ID: 1, License: &models.License{Key: "mit"}},
		{ID: 2, License: &models.License{Key: "apache-2.0"}},
		{ID: 3, License: nil},
	}
	f := DefaultFilters()
	f.License = "mit"

	got := Apply(repos, f)

	assert.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)
}

func TestApplyFiltersBySizeInclusive(t *testing.T) {
	repos := []models.Repository{
		{ID: 1, Size: 9},
		{ID: 2, Size: 10},
		{ID: 3, Size: 100},
		{ID: 4, Size: 101},
	}
	f := DefaultFilters()
	f.SizeMin = 10
	f.SizeMax = 100

	got := Apply(repos, f)

	assert.Len(t, got, 2)
	assert.Equal(t, int64(2), got[0].ID)
	assert.Equal(t, int64(3), got[1].ID)
}

func TestApplySortsByTimestamps(t *testing.T) {
	repos := []models.Repository{
		{ID: 1, CreatedAt: "2023-01-01T00:00:00Z", UpdatedAt: "2025-03-01T00:00:00Z"},
		{ID: 2, CreatedAt: "2025-01-01T00:00:00Z", UpdatedAt: "2024-01-01T00:00:00Z"},
	}
	f := DefaultFilters()
	f.Sort = SortCreated

	got := Apply(repos, f)
	assert.Equal(t, int64(2), got[0].ID)

	f.Sort = SortUpdated
	got = Apply(repos, f)
	assert.Equal(t, int64(1), got[0].ID)
}

func TestApplyStableOnEqualKeys(t *testing.T) {
	repos := []models.Repository{
		{ID: 1, StargazersCount: 10},
		{ID: 2, StargazersCount: 10},
		{ID: 3, StargazersCount: 10},
	}

	got := Apply(repos, DefaultFilters())

	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(2), got[1].ID)
	assert.Equal(t, int64(3), got[2].ID)
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	repos := []models.Repository{
		{ID: 1, StargazersCount: 1},
		{ID: 2, StargazersCount: 2},
	}

	Apply(repos, DefaultFilters())

	assert.Equal(t, int64(1), repos[0].ID)
	assert.Equal(t, int64(2), repos[1].ID)
}
