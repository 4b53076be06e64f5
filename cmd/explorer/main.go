package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/Shariq7739/GitExplore/internal/cli"
	"github.com/Shariq7739/GitExplore/internal/client"
	"github.com/Shariq7739/GitExplore/internal/config"
	"github.com/Shariq7739/GitExplore/internal/explore"
	"github.com/Shariq7739/GitExplore/internal/models"
	"github.com/Shariq7739/GitExplore/internal/notify"
	"github.com/Shariq7739/GitExplore/internal/store"
)

const perPage = 9

// app bundles the explorer's moving parts: data service, stores, composer
// state, pagination and search workers.
type app struct {
	svc       *client.Service
	state     *explore.State
	bookmarks *store.BookmarkStore
	notes     *store.NoteStore
	pager     *client.Pager
	searcher  *client.Searcher
	outcomes  chan client.Outcome
}

func main() {
	cfg := config.Load()

	db, err := store.Open(cfg.StorePath)
	if err != nil {
		log.Fatalf("Failed to open local storage: %v", err)
	}
	defer db.Close()

	notifier := notify.Console{}
	a := &app{
		svc:       client.NewService(cfg.APIBaseURL),
		state:     explore.NewState(),
		bookmarks: store.NewBookmarkStore(db, notifier),
		notes:     store.NewNoteStore(db, notifier),
		outcomes:  make(chan client.Outcome, 1),
	}
	a.pager = client.NewPager(a.svc.Trending, perPage)
	a.searcher = client.NewSearcher(a.svc.Search, client.DefaultDebounce, perPage, func(o client.Outcome) {
		a.outcomes <- o
	})
	defer a.searcher.Close()

	a.state.SetBookmarks(a.bookmarks.All())
	a.loadTrending()

	for {
		choice, err := cli.Choose("GitExplore", []string{
			"Explore", "Search", "Analytics", "Bookmarks", "Look up repository", "Filters", "Quit",
		})
		if err != nil || choice == "Quit" {
			return
		}

		switch choice {
		case "Explore":
			a.exploreView()
		case "Search":
			a.searchView()
		case "Analytics":
			a.analyticsView()
		case "Bookmarks":
			a.bookmarksView()
		case "Look up repository":
			a.lookupView()
		case "Filters":
			a.filtersView()
		}
	}
}

// loadTrending fetches the first trending page, with a retry prompt when even
// the fallback-backed service cannot be reached.
func (a *app) loadTrending() {
	for {
		a.pager.Reset()
		repos, err := a.pager.LoadMore(context.Background())
		if err == nil {
			a.state.SetTrending(repos)
			return
		}
		fmt.Printf("Failed to fetch trending repositories: %v\n", err)
		retry, cerr := cli.Confirm("Retry?", true)
		if cerr != nil || !retry {
			return
		}
	}
}

func (a *app) exploreView() {
	a.state.SetActiveView(explore.ViewExplore)
	for {
		cli.PrintList(a.state.Visible())

		options := []string{"Open repository", "Adjust filters", "Back"}
		if a.pager.HasMore() {
			options = append([]string{"Load more"}, options...)
		}
		choice, err := cli.Choose("Explore", options)
		if err != nil || choice == "Back" {
			return
		}
		switch choice {
		case "Load more":
			repos, err := a.pager.LoadMore(context.Background())
			if err != nil {
				fmt.Printf("Failed to load more: %v\n", err)
				continue
			}
			a.state.AppendTrending(repos)
		case "Open repository":
			a.openCard(a.state.Visible())
		case "Adjust filters":
			a.filtersView()
		}
	}
}

func (a *app) searchView() {
	a.state.SetActiveView(explore.ViewSearch)
	for {
		query, err := cli.Input("Search repositories (empty to go back):")
		if err != nil || query == "" {
			return
		}

		a.searcher.Query(query)
		select {
		case o := <-a.outcomes:
			if o.Err != nil {
				fmt.Printf("Failed to perform search: %v\n", o.Err)
				continue
			}
			a.state.SetSearchResults(o.Result.Items)
			fmt.Printf("%d repositories match %q\n", o.Result.TotalCount, o.Query)
		case <-time.After(15 * time.Second):
			fmt.Println("Search timed out.")
			continue
		}

		cli.PrintList(a.state.Visible())
		if len(a.state.Visible()) > 0 {
			a.openCard(a.state.Visible())
		}
	}
}

func (a *app) analyticsView() {
	a.state.SetActiveView(explore.ViewAnalytics)
	cli.PrintAnalytics(a.state.AnalyticsInput())
}

func (a *app) bookmarksView() {
	a.state.SetActiveView(explore.ViewBookmarks)
	a.state.SetBookmarks(a.bookmarks.All())

	visible := a.state.Visible()
	if len(visible) == 0 {
		fmt.Println("No bookmarks yet. Start bookmarking repositories to see them here.")
		return
	}
	cli.PrintList(visible)
	a.openCard(visible)
}

func (a *app) lookupView() {
	owner, err := cli.Input("Owner:")
	if err != nil || owner == "" {
		return
	}
	name, err := cli.Input("Repository:")
	if err != nil || name == "" {
		return
	}

	repo, err := a.svc.Repo(context.Background(), owner, name)
	if errors.Is(err, client.ErrNotFound) {
		fmt.Println("Repository not found.")
		return
	}
	if err != nil {
		fmt.Printf("Failed to fetch repository details: %v\n", err)
		return
	}
	a.cardMenu(repo)
}

// openCard lets the user pick one of the visible repositories.
func (a *app) openCard(repos []models.Repository) {
	if len(repos) == 0 {
		return
	}
	labels := make([]string, len(repos)+1)
	for i, r := range repos {
		labels[i] = cli.CardLabel(r, a.bookmarks.IsBookmarked(r.ID), a.notes.Has(r.ID))
	}
	labels[len(repos)] = "Back"

	choice, err := cli.Choose("Repository", labels)
	if err != nil || choice == "Back" {
		return
	}
	for i, label := range labels[:len(repos)] {
		if label == choice {
			a.cardMenu(repos[i])
			return
		}
	}
}

// cardMenu shows one repository and its bookmark/note actions.
func (a *app) cardMenu(repo models.Repository) {
	for {
		note, hasNote := a.notes.Get(repo.ID)
		cli.PrintCard(repo, note, hasNote)

		bookmarkAction := "Bookmark"
		if a.bookmarks.IsBookmarked(repo.ID) {
			bookmarkAction = "Remove bookmark"
		}
		noteAction := "Add note"
		options := []string{bookmarkAction, noteAction, "Back"}
		if hasNote {
			options = []string{bookmarkAction, "Edit note", "Delete note", "Back"}
		}

		choice, err := cli.Choose(repo.FullName, options)
		if err != nil || choice == "Back" {
			return
		}
		switch choice {
		case "Bookmark":
			a.bookmarks.Add(repo)
		case "Remove bookmark":
			a.bookmarks.Remove(repo.ID)
		case "Add note", "Edit note":
			content, err := cli.Multiline("Note (markdown):", note)
			if err != nil {
				continue
			}
			a.notes.Save(repo.ID, repo.Name, content)
		case "Delete note":
			a.notes.Delete(repo.ID, repo.Name)
		}
		a.state.SetBookmarks(a.bookmarks.All())
	}
}

// filtersView edits the transient filter/sort configuration.
func (a *app) filtersView() {
	f := a.state.Filters()

	sortOptions := make([]string, len(explore.SortFields))
	for i, s := range explore.SortFields {
		sortOptions[i] = string(s)
	}
	if choice, err := cli.Choose("Sort by", sortOptions); err == nil {
		f.Sort = explore.SortField(choice)
	}
	if choice, err := cli.Choose("Order", []string{"desc", "asc"}); err == nil {
		f.Order = explore.SortOrder(choice)
	}
	if langs, err := cli.MultiChoose("Languages (none = all)", explore.KnownLanguages, f.Languages); err == nil {
		f.Languages = langs
	}
	licenseOptions := append([]string{"any"}, explore.KnownLicenses...)
	if choice, err := cli.Choose("License", licenseOptions); err == nil {
		if choice == "any" {
			f.License = ""
		} else {
			f.License = choice
		}
	}
	f.SizeMin = askInt("Minimum size (KB):", f.SizeMin)
	f.SizeMax = askInt("Maximum size (KB):", f.SizeMax)

	a.state.SetFilters(f)
}

func askInt(prompt string, current int) int {
	raw, err := cli.InputWithDefault(prompt, strconv.Itoa(current))
	if err != nil {
		return current
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		fmt.Printf("Not a number: %q\n", raw)
		return current
	}
	return v
}
