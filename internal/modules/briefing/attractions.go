// README: Ranked nearby attraction discovery driven by the interest taxonomy.
package briefing

import (
	"context"

	"go.uber.org/zap"

	"wayfarer/internal/maps"
	"wayfarer/internal/modules/taxonomy"
)

// AttractionFinder searches attractions around a destination, one nearby
// search per expanded interest category.
type AttractionFinder struct {
	geo    *maps.GeocodingService
	places *maps.PlacesService
	limits Limits
	logger *zap.Logger
}

// NewAttractionFinder creates an AttractionFinder.
func NewAttractionFinder(geo *maps.GeocodingService, places *maps.PlacesService, limits Limits, logger *zap.Logger) *AttractionFinder {
	return &AttractionFinder{geo: geo, places: places, limits: limits, logger: logger}
}

// Find returns at most MaxAttractions attractions rated at or above the
// threshold, sorted descending by (rating, rating count) and deduplicated by
// name. A destination that cannot be geocoded yields an empty list. A failure
// on one category's search is logged and skipped; the remaining categories
// still contribute. The category cap bounds outbound calls regardless of how
// many interests the caller supplies.
func (f *AttractionFinder) Find(ctx context.Context, destination string, interests []string) []Attraction {
	coords, ok := f.geo.Resolve(ctx, destination)
	if !ok {
		return nil
	}

	seen := make(map[string]struct{})
	var found []Attraction
	for _, category := range taxonomy.ExpandInterests(interests) {
		hits, err := f.places.SearchNearby(ctx, coords, category, f.limits.RadiusMeters)
		if err != nil {
			f.logger.Warn("nearby search failed",
				zap.String("destination", destination),
				zap.String("category", category),
				zap.Error(err))
			continue
		}

		kept := 0
		for _, h := range hits {
			if kept >= f.limits.MaxPerCategory {
				break
			}
			if h.Rating < f.limits.RatingThreshold {
				continue
			}
			if _, dup := seen[h.Name]; dup {
				continue
			}
			seen[h.Name] = struct{}{}
			found = append(found, Attraction{
				Name:        h.Name,
				Category:    category,
				Rating:      h.Rating,
				RatingCount: h.RatingCount,
				Vicinity:    h.Vicinity,
				PriceLevel:  h.PriceLevel,
				HasPhotos:   h.HasPhotos,
			})
			kept++
		}
	}

	sortByRatingDesc(found, func(a Attraction) (float32, int) { return a.Rating, a.RatingCount })
	if len(found) > f.limits.MaxAttractions {
		found = found[:f.limits.MaxAttractions]
	}
	return found
}
