// README: Google Maps client construction and the narrow API surface the pipeline uses.
package maps

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"
)

// PlacesAPI is the subset of the Google Maps client consumed by the pipeline.
// *maps.Client satisfies it directly; tests substitute a deterministic fake.
type PlacesAPI interface {
	Geocode(ctx context.Context, r *maps.GeocodingRequest) ([]maps.GeocodingResult, error)
	TextSearch(ctx context.Context, r *maps.TextSearchRequest) (maps.PlacesSearchResponse, error)
	PlaceDetails(ctx context.Context, r *maps.PlaceDetailsRequest) (maps.PlaceDetailsResult, error)
	NearbySearch(ctx context.Context, r *maps.NearbySearchRequest) (maps.PlacesSearchResponse, error)
}

// NewClient creates the shared Google Maps client with the given API key.
func NewClient(apiKey string) (*maps.Client, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return client, nil
}
