// README: Domain types for the destination context pipeline.
package briefing

import "wayfarer/internal/maps"

// Budget levels accepted in a DestinationQuery.
const (
	BudgetLow      = "budget"
	BudgetMid      = "mid"
	BudgetLuxury   = "luxury"
	BudgetFlexible = "flexible"
	BudgetNone     = "none"
)

// DestinationQuery is the immutable input to one pipeline invocation.
type DestinationQuery struct {
	Name      string
	Interests []string
	Dietary   []string
	Budget    string
}

// Attraction is one ranked nearby attraction, tagged with the category whose
// search produced it.
type Attraction struct {
	Name        string
	Category    string
	Rating      float32
	RatingCount int
	Vicinity    string
	PriceLevel  int
	HasPhotos   bool
}

// Restaurant is one ranked dining option, tagged with the query that found it.
type Restaurant struct {
	Name        string
	Rating      float32
	RatingCount int
	PriceLevel  int
	CuisineTag  string
	Address     string
}

// ContextBundle aggregates everything fetched for a single request. It is
// built fresh per request and never mutated after construction.
type ContextBundle struct {
	Place       *maps.PlaceRecord
	Attractions []Attraction
	Restaurants []Restaurant
}

// Limits holds the tuning constants of the pipeline. The values are product
// tuning artifacts, not invariants; override individual fields as needed.
type Limits struct {
	// RatingThreshold is the minimum provider rating for inclusion.
	RatingThreshold float32
	// RadiusMeters bounds nearby attraction searches around the destination.
	RadiusMeters uint
	// MaxPerCategory caps how many hits one attraction category contributes.
	MaxPerCategory int
	// MaxPerQuery caps how many hits one restaurant query contributes.
	MaxPerQuery int
	// MaxAttractions / MaxRestaurants cap the final list lengths.
	MaxAttractions int
	MaxRestaurants int
}

// DefaultLimits returns the standard pipeline tuning.
func DefaultLimits() Limits {
	return Limits{
		RatingThreshold: 4.0,
		RadiusMeters:    15000,
		MaxPerCategory:  4,
		MaxPerQuery:     3,
		MaxAttractions:  15,
		MaxRestaurants:  12,
	}
}

// sortByRatingDesc orders items descending by (rating, rating count) using an
// insertion sort, which is fine for the small bounded lists produced here.
func sortByRatingDesc[T any](items []T, key func(T) (float32, int)) {
	for i := 1; i < len(items); i++ {
		item := items[i]
		rating, count := key(item)
		j := i - 1
		for j >= 0 {
			r, c := key(items[j])
			if r > rating || (r == rating && c >= count) {
				break
			}
			items[j+1] = items[j]
			j--
		}
		items[j+1] = item
	}
}
