package briefing

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	gmaps "googlemaps.github.io/maps"
)

func TestRecommendDefaultQueriesForParis(t *testing.T) {
	api := &fakeAPI{}
	_, recommender, _ := newPipeline(t, api)

	recommender.Recommend(context.Background(), "Paris", nil, BudgetNone)

	want := []string{
		"best restaurants Paris",
		"local cuisine Paris",
		"popular restaurants Paris",
	}
	if !reflect.DeepEqual(api.textQueries, want) {
		t.Errorf("queries = %v, want %v", api.textQueries, want)
	}
}

func TestRecommendDeduplicatesByName(t *testing.T) {
	api := &fakeAPI{
		textSearch: func(r *gmaps.TextSearchRequest) (gmaps.PlacesSearchResponse, error) {
			// Every query returns the same bistro plus one unique hit.
			unique := searchResult("Unique "+r.Query, 4.3, 100)
			return gmaps.PlacesSearchResponse{Results: []gmaps.PlacesSearchResult{
				searchResult("Le Petit Bistro", 4.6, 2400),
				unique,
			}}, nil
		},
	}
	_, recommender, _ := newPipeline(t, api)

	got := recommender.Recommend(context.Background(), "Paris", []string{"vegan"}, BudgetMid)

	bistros := 0
	for _, r := range got {
		if r.Name == "Le Petit Bistro" {
			bistros++
		}
	}
	if bistros != 1 {
		t.Errorf("Le Petit Bistro appears %d times, want 1", bistros)
	}
	// First appearance wins, so the kept entry carries the first query's tag.
	for _, r := range got {
		if r.Name == "Le Petit Bistro" && r.CuisineTag != "vegan restaurant" {
			t.Errorf("CuisineTag = %q, want vegan restaurant", r.CuisineTag)
		}
	}
}

func TestRecommendFiltersCapsAndSorts(t *testing.T) {
	api := &fakeAPI{
		textSearch: func(r *gmaps.TextSearchRequest) (gmaps.PlacesSearchResponse, error) {
			if !strings.HasPrefix(r.Query, "halal restaurant") {
				return gmaps.PlacesSearchResponse{}, nil
			}
			return gmaps.PlacesSearchResponse{Results: []gmaps.PlacesSearchResult{
				searchResult("Saffron House", 4.2, 300),
				searchResult("Greasy Spoon", 2.9, 40), // below threshold
				searchResult("Cedar Grill", 4.9, 1200),
				searchResult("Olive Court", 4.2, 900),
				searchResult("Fourth Option", 4.7, 50), // over per-query cap
			}}, nil
		},
	}
	_, recommender, _ := newPipeline(t, api)

	got := recommender.Recommend(context.Background(), "Istanbul", []string{"halal"}, "")
	if len(got) != 3 {
		t.Fatalf("Recommend() = %d entries, want 3 (per-query cap)", len(got))
	}
	if got[0].Name != "Cedar Grill" || got[1].Name != "Olive Court" || got[2].Name != "Saffron House" {
		t.Errorf("unexpected order: %v", got)
	}
	for _, r := range got {
		if r.Rating < 4.0 {
			t.Errorf("restaurant %q below rating threshold: %.1f", r.Name, r.Rating)
		}
	}
}

func TestRecommendQueryFailureDoesNotAbort(t *testing.T) {
	api := &fakeAPI{
		textSearch: func(r *gmaps.TextSearchRequest) (gmaps.PlacesSearchResponse, error) {
			if strings.HasPrefix(r.Query, "vegan restaurant") {
				return gmaps.PlacesSearchResponse{}, errors.New("server error")
			}
			return gmaps.PlacesSearchResponse{Results: []gmaps.PlacesSearchResult{
				searchResult("Green Fork", 4.5, 800),
			}}, nil
		},
	}
	_, recommender, _ := newPipeline(t, api)

	got := recommender.Recommend(context.Background(), "Berlin", []string{"vegan", "vegetarian"}, "")
	if len(got) != 1 || got[0].Name != "Green Fork" {
		t.Errorf("Recommend() = %v, want the surviving query's result", got)
	}
}

func TestRecommendNeverExceedsTwelve(t *testing.T) {
	api := &fakeAPI{
		textSearch: func(r *gmaps.TextSearchRequest) (gmaps.PlacesSearchResponse, error) {
			results := make([]gmaps.PlacesSearchResult, 0, 5)
			for i := 0; i < 5; i++ {
				results = append(results, searchResult(r.Query+string(rune('A'+i)), 4.5, i))
			}
			return gmaps.PlacesSearchResponse{Results: results}, nil
		},
	}
	_, recommender, _ := newPipeline(t, api)

	got := recommender.Recommend(context.Background(), "Rome", []string{"vegetarian", "vegan", "halal"}, BudgetLuxury)
	if len(got) > 12 {
		t.Errorf("Recommend() = %d entries, cap is 12", len(got))
	}
	if len(api.textQueries) != 4 {
		t.Errorf("issued %d text searches, cap is 4: %v", len(api.textQueries), api.textQueries)
	}
}
