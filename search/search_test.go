package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foodnow/foodnow-go/core"
)

func sampleRestaurants() []core.Restaurant {
	return []core.Restaurant{
		{
			ID:      1,
			Name:    "Pizza Palace",
			Address: "12 Via Roma",
			Menu: []core.MenuItem{
				{ID: 11, Name: "Margherita", DietaryType: "VEG", Category: "MAIN_COURSE"},
				{ID: 12, Name: "Pepperoni Special", DietaryType: "NON_VEG", Category: "MAIN_COURSE"},
			},
		},
		{
			ID:      2,
			Name:    "Curry Corner",
			Address: "4 Spice Lane",
			Menu: []core.MenuItem{
				{ID: 21, Name: "Paneer Pizza Wrap", DietaryType: "VEG", Category: "STARTER"},
				{ID: 22, Name: "Chicken Tikka", DietaryType: "NON_VEG", Category: "MAIN_COURSE"},
			},
		},
		{
			ID:      3,
			Name:    "Sushi Spot",
			Address: "9 Harbour Road",
			Menu: []core.MenuItem{
				{ID: 31, Name: "Salmon Nigiri", DietaryType: "NON_VEG", Category: "MAIN_COURSE"},
			},
		},
	}
}

func TestFilterDefaultQueryReturnsEverything(t *testing.T) {
	restaurants := sampleRestaurants()
	matches := Filter(restaurants, Query{})

	require.Len(t, matches, len(restaurants))
	for i, m := range matches {
		assert.Equal(t, restaurants[i].ID, m.Restaurant.ID)
		assert.Len(t, m.Items, len(restaurants[i].Menu))
		assert.Empty(t, m.MatchingItems, "default query must not highlight")
	}
}

func TestFilterTermMatchesNameAndItems(t *testing.T) {
	matches := Filter(sampleRestaurants(), Query{Term: "pizza"})

	require.Len(t, matches, 2)

	// Restaurant-name match keeps the whole menu, nothing highlighted.
	assert.Equal(t, 1, matches[0].Restaurant.ID)
	assert.Len(t, matches[0].Items, 2)
	assert.Empty(t, matches[0].MatchingItems)

	// Item-name match highlights only the matching item.
	assert.Equal(t, 2, matches[1].Restaurant.ID)
	require.Len(t, matches[1].MatchingItems, 1)
	assert.Equal(t, "Paneer Pizza Wrap", matches[1].MatchingItems[0].Name)
}

func TestFilterDropdownsNarrowMenuFirst(t *testing.T) {
	matches := Filter(sampleRestaurants(), Query{Dietary: "VEG"})

	// Sushi Spot has no veg items and drops out.
	require.Len(t, matches, 2)
	for _, m := range matches {
		require.NotEmpty(t, m.Items)
		for _, item := range m.Items {
			assert.Equal(t, "VEG", item.DietaryType)
		}
		assert.Empty(t, m.MatchingItems, "dropdown-only query must not highlight")
	}
}

func TestFilterDropdownPlusTerm(t *testing.T) {
	// NON_VEG narrows Curry Corner's menu to Chicken Tikka, so the
	// "pizza" item match disappears and only the name match survives.
	matches := Filter(sampleRestaurants(), Query{Term: "pizza", Dietary: "NON_VEG"})

	require.Len(t, matches, 1)
	assert.Equal(t, "Pizza Palace", matches[0].Restaurant.Name)
	require.Len(t, matches[0].Items, 1)
	assert.Equal(t, "Pepperoni Special", matches[0].Items[0].Name)
}

func TestFilterCategoryAll(t *testing.T) {
	matches := Filter(sampleRestaurants(), Query{Term: "sushi", Dietary: "ALL", Category: "ALL"})
	require.Len(t, matches, 1)
	assert.Equal(t, 3, matches[0].Restaurant.ID)
}

func TestFilterNoMatchExcludes(t *testing.T) {
	matches := Filter(sampleRestaurants(), Query{Term: "tacos"})
	assert.Empty(t, matches)
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	restaurants := sampleRestaurants()
	before := len(restaurants[0].Menu)

	Filter(restaurants, Query{Term: "pizza", Dietary: "VEG"})

	assert.Len(t, restaurants[0].Menu, before)
	assert.Equal(t, "Margherita", restaurants[0].Menu[0].Name)
}

func TestFilterAndSort(t *testing.T) {
	restaurants := sampleRestaurants()

	tests := []struct {
		name      string
		term      string
		sortBy    string
		wantNames []string
	}{
		{
			name:      "empty term keeps everything in order",
			wantNames: []string{"Pizza Palace", "Curry Corner", "Sushi Spot"},
		},
		{
			name:      "term matches name",
			term:      "curry",
			wantNames: []string{"Curry Corner"},
		},
		{
			name:      "term matches address",
			term:      "harbour",
			wantNames: []string{"Sushi Spot"},
		},
		{
			name:      "name ascending",
			sortBy:    SortNameAsc,
			wantNames: []string{"Curry Corner", "Pizza Palace", "Sushi Spot"},
		},
		{
			name:      "name descending",
			sortBy:    SortNameDesc,
			wantNames: []string{"Sushi Spot", "Pizza Palace", "Curry Corner"},
		},
		{
			name:      "unknown sort keeps incoming order",
			sortBy:    "rating",
			wantNames: []string{"Pizza Palace", "Curry Corner", "Sushi Spot"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterAndSort(restaurants, tt.term, tt.sortBy)
			names := make([]string, 0, len(got))
			for _, r := range got {
				names = append(names, r.Name)
			}
			assert.Equal(t, tt.wantNames, names)
		})
	}

	// Sorting never reorders the source slice.
	assert.Equal(t, "Pizza Palace", restaurants[0].Name)
}
