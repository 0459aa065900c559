// Package search derives displayable restaurant lists from filter
// inputs. All functions are pure: they copy, they never mutate the
// source slice.
package search

import (
	"sort"
	"strings"

	"github.com/foodnow/foodnow-go/core"
)

// FilterAll is the default dropdown value meaning "no restriction"
const FilterAll = "ALL"

// Sort orders accepted by FilterAndSort
const (
	SortNameAsc  = "name_asc"
	SortNameDesc = "name_desc"
)

// Query carries the three independent filter inputs. The zero value
// (empty term, empty dropdowns) is the default query.
type Query struct {
	Term     string
	Dietary  string
	Category string
}

// IsDefault reports whether every input is at its default, in which
// case filtering is a pass-through.
func (q Query) IsDefault() bool {
	return strings.TrimSpace(q.Term) == "" && dropdownIsAll(q.Dietary) && dropdownIsAll(q.Category)
}

func dropdownIsAll(v string) bool {
	return v == "" || strings.EqualFold(v, FilterAll)
}

// Match is one restaurant surviving a Filter call. Items holds the menu
// after dropdown filtering; MatchingItems is populated only when the
// restaurant was kept because individual item names matched the term.
type Match struct {
	Restaurant    core.Restaurant
	Items         []core.MenuItem
	MatchingItems []core.MenuItem
}

// Filter applies q to restaurants and returns the surviving matches.
//
// Dropdown filters narrow each menu first. A restaurant whose name
// contains the term keeps all surviving items; otherwise only item-name
// matches keep it, with those items highlighted. With dropdown filters
// active but no term, any restaurant with surviving items is kept
// without highlighting. Everything else is excluded.
func Filter(restaurants []core.Restaurant, q Query) []Match {
	if q.IsDefault() {
		out := make([]Match, 0, len(restaurants))
		for _, r := range restaurants {
			out = append(out, Match{Restaurant: r, Items: copyItems(r.Menu)})
		}
		return out
	}

	term := strings.ToLower(strings.TrimSpace(q.Term))
	out := make([]Match, 0, len(restaurants))
	for _, r := range restaurants {
		surviving := filterMenu(r.Menu, q)
		if len(surviving) == 0 {
			continue
		}

		if term == "" {
			out = append(out, Match{Restaurant: r, Items: surviving})
			continue
		}

		if strings.Contains(strings.ToLower(r.Name), term) {
			out = append(out, Match{Restaurant: r, Items: surviving})
			continue
		}

		var matching []core.MenuItem
		for _, item := range surviving {
			if strings.Contains(strings.ToLower(item.Name), term) {
				matching = append(matching, item)
			}
		}
		if len(matching) > 0 {
			out = append(out, Match{Restaurant: r, Items: surviving, MatchingItems: matching})
		}
	}
	return out
}

func filterMenu(menu []core.MenuItem, q Query) []core.MenuItem {
	out := make([]core.MenuItem, 0, len(menu))
	for _, item := range menu {
		if !dropdownIsAll(q.Dietary) && !strings.EqualFold(item.DietaryType, q.Dietary) {
			continue
		}
		if !dropdownIsAll(q.Category) && !strings.EqualFold(item.Category, q.Category) {
			continue
		}
		out = append(out, item)
	}
	return out
}

func copyItems(items []core.MenuItem) []core.MenuItem {
	out := make([]core.MenuItem, len(items))
	copy(out, items)
	return out
}

// FilterAndSort is the legacy list filter: a single term matched
// against restaurant name or address, then an optional name ordering.
// An empty term keeps everything; an unknown sortBy leaves the incoming
// order untouched.
func FilterAndSort(restaurants []core.Restaurant, term, sortBy string) []core.Restaurant {
	needle := strings.ToLower(strings.TrimSpace(term))
	out := make([]core.Restaurant, 0, len(restaurants))
	for _, r := range restaurants {
		if needle == "" ||
			strings.Contains(strings.ToLower(r.Name), needle) ||
			strings.Contains(strings.ToLower(r.Address), needle) {
			out = append(out, r)
		}
	}

	switch sortBy {
	case SortNameAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
		})
	case SortNameDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return strings.ToLower(out[i].Name) > strings.ToLower(out[j].Name)
		})
	}
	return out
}
