// README: Ranked restaurant recommendations driven by dietary and budget preferences.
package briefing

import (
	"context"

	"go.uber.org/zap"

	"wayfarer/internal/maps"
	"wayfarer/internal/modules/taxonomy"
)

// RestaurantRecommender searches dining options for a destination, one text
// search per expanded dietary/budget query.
type RestaurantRecommender struct {
	places *maps.PlacesService
	limits Limits
	logger *zap.Logger
}

// NewRestaurantRecommender creates a RestaurantRecommender.
func NewRestaurantRecommender(places *maps.PlacesService, limits Limits, logger *zap.Logger) *RestaurantRecommender {
	return &RestaurantRecommender{places: places, limits: limits, logger: logger}
}

// Recommend returns at most MaxRestaurants restaurants rated at or above the
// threshold, deduplicated by exact name across queries (first appearance wins)
// and sorted descending by (rating, rating count). One failing query degrades,
// not aborts, the whole operation.
func (r *RestaurantRecommender) Recommend(ctx context.Context, destination string, dietary []string, budget string) []Restaurant {
	seen := make(map[string]struct{})
	var found []Restaurant
	for _, query := range taxonomy.ExpandDiningQueries(dietary, budget) {
		hits, err := r.places.SearchRestaurants(ctx, query+" "+destination)
		if err != nil {
			r.logger.Warn("restaurant search failed",
				zap.String("destination", destination),
				zap.String("query", query),
				zap.Error(err))
			continue
		}

		kept := 0
		for _, h := range hits {
			if kept >= r.limits.MaxPerQuery {
				break
			}
			if h.Rating < r.limits.RatingThreshold {
				continue
			}
			if _, dup := seen[h.Name]; dup {
				continue
			}
			seen[h.Name] = struct{}{}
			found = append(found, Restaurant{
				Name:        h.Name,
				Rating:      h.Rating,
				RatingCount: h.RatingCount,
				PriceLevel:  h.PriceLevel,
				CuisineTag:  query,
				Address:     h.Address,
			})
			kept++
		}
	}

	sortByRatingDesc(found, func(r Restaurant) (float32, int) { return r.Rating, r.RatingCount })
	if len(found) > r.limits.MaxRestaurants {
		found = found[:r.limits.MaxRestaurants]
	}
	return found
}
