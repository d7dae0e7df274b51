// README: Context compiler orchestrating place, attraction, and restaurant fetches.
package briefing

import (
	"context"

	"go.uber.org/zap"

	"wayfarer/internal/maps"
)

// NoProviderMessage is returned when no Maps credential is configured.
const NoProviderMessage = "Google Maps integration not available."

// Compiler turns a destination query into a ContextBundle and its rendered
// textual form. Each of the three fetches is independently fault-tolerant, so
// Compile is total: it always returns a usable (possibly empty) result.
type Compiler struct {
	places      *maps.PlacesService
	attractions *AttractionFinder
	restaurants *RestaurantRecommender
	logger      *zap.Logger
	enabled     bool
}

// NewCompiler creates a fully wired Compiler.
func NewCompiler(places *maps.PlacesService, attractions *AttractionFinder, restaurants *RestaurantRecommender, logger *zap.Logger) *Compiler {
	return &Compiler{
		places:      places,
		attractions: attractions,
		restaurants: restaurants,
		logger:      logger,
		enabled:     true,
	}
}

// NewUnconfiguredCompiler creates a Compiler for deployments without a Maps
// credential. Compile short-circuits before any network call.
func NewUnconfiguredCompiler(logger *zap.Logger) *Compiler {
	return &Compiler{logger: logger}
}

// Compile fetches the place record, nearby attractions, and restaurant
// recommendations for the query, sequentially and in that order, then renders
// the bundle. A failure in one branch never contaminates the others.
func (c *Compiler) Compile(ctx context.Context, q DestinationQuery) (ContextBundle, string) {
	if !c.enabled {
		return ContextBundle{}, NoProviderMessage
	}

	var bundle ContextBundle
	if place, ok := c.places.FetchPlace(ctx, q.Name); ok {
		bundle.Place = &place
	}
	bundle.Attractions = c.attractions.Find(ctx, q.Name, q.Interests)
	bundle.Restaurants = c.restaurants.Recommend(ctx, q.Name, q.Dietary, q.Budget)

	c.logger.Debug("compiled destination context",
		zap.String("destination", q.Name),
		zap.Bool("place", bundle.Place != nil),
		zap.Int("attractions", len(bundle.Attractions)),
		zap.Int("restaurants", len(bundle.Restaurants)))

	return bundle, bundle.Render()
}
