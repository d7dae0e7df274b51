// README: Place lookups against the Places API.
package maps

import (
	"context"

	"go.uber.org/zap"
	"googlemaps.github.io/maps"
)

// PlaceRecord is the canonical identity of a destination. Only Name is
// guaranteed; everything else may be zero on a partial result.
type PlaceRecord struct {
	Name             string
	FormattedAddress string
	Rating           float32 // 0 means unrated / unknown
	RatingCount      int
	Website          string
	Phone            string
	OpeningHours     []string
	Categories       []string
}

// Hit is one raw search result, simplified to the fields the pipeline reads.
type Hit struct {
	PlaceID     string
	Name        string
	Address     string
	Vicinity    string
	Rating      float32
	RatingCount int
	PriceLevel  int
	HasPhotos   bool
	Categories  []string
}

// PlacesService handles interactions with the Google Places API.
type PlacesService struct {
	api    PlacesAPI
	logger *zap.Logger
}

// NewPlacesService creates a PlacesService on top of the shared client.
func NewPlacesService(api PlacesAPI, logger *zap.Logger) *PlacesService {
	return &PlacesService{api: api, logger: logger}
}

// FetchPlace builds the canonical record for a destination. It text-searches
// the destination first; when the top hit carries no place_id it degrades to a
// partial record built from the search result alone, which is a valid non-absent
// outcome. Any transport error at either step yields ok=false. At most two API
// calls are made.
func (s *PlacesService) FetchPlace(ctx context.Context, destination string) (PlaceRecord, bool) {
	resp, err := s.api.TextSearch(ctx, &maps.TextSearchRequest{Query: destination})
	if err != nil {
		s.logger.Warn("place text search failed", zap.String("destination", destination), zap.Error(err))
		return PlaceRecord{}, false
	}
	if len(resp.Results) == 0 {
		return PlaceRecord{}, false
	}

	top := resp.Results[0]
	if top.PlaceID == "" {
		return PlaceRecord{
			Name:             top.Name,
			FormattedAddress: top.FormattedAddress,
			Rating:           top.Rating,
			OpeningHours:     []string{},
			Categories:       top.Types,
		}, true
	}

	details, err := s.api.PlaceDetails(ctx, &maps.PlaceDetailsRequest{PlaceID: top.PlaceID})
	if err != nil {
		s.logger.Warn("place details failed", zap.String("place_id", top.PlaceID), zap.Error(err))
		return PlaceRecord{}, false
	}

	hours := []string{}
	if details.OpeningHours != nil {
		hours = details.OpeningHours.WeekdayText
	}
	return PlaceRecord{
		Name:             details.Name,
		FormattedAddress: details.FormattedAddress,
		Rating:           details.Rating,
		RatingCount:      details.UserRatingsTotal,
		Website:          details.Website,
		Phone:            details.InternationalPhoneNumber,
		OpeningHours:     hours,
		Categories:       details.Types,
	}, true
}

// SearchNearby runs one nearby search for a single category around the given
// coordinates. Results are returned unfiltered; ranking and thresholds belong
// to the caller.
func (s *PlacesService) SearchNearby(ctx context.Context, loc Coordinates, category string, radiusMeters uint) ([]Hit, error) {
	resp, err := s.api.NearbySearch(ctx, &maps.NearbySearchRequest{
		Location: &maps.LatLng{Lat: loc.Lat, Lng: loc.Lng},
		Radius:   radiusMeters,
		Type:     maps.PlaceType(category),
	})
	if err != nil {
		return nil, err
	}
	return simplify(resp.Results), nil
}

// SearchRestaurants runs one restaurant-typed text search for the given query.
func (s *PlacesService) SearchRestaurants(ctx context.Context, query string) ([]Hit, error) {
	resp, err := s.api.TextSearch(ctx, &maps.TextSearchRequest{
		Query: query,
		Type:  maps.PlaceType("restaurant"),
	})
	if err != nil {
		return nil, err
	}
	return simplify(resp.Results), nil
}

func simplify(results []maps.PlacesSearchResult) []Hit {
	hits := make([]Hit, 0, len(results))
	for _, r := range results {
		hits = append(hits, Hit{
			PlaceID:     r.PlaceID,
			Name:        r.Name,
			Address:     r.FormattedAddress,
			Vicinity:    r.Vicinity,
			Rating:      r.Rating,
			RatingCount: r.UserRatingsTotal,
			PriceLevel:  r.PriceLevel,
			HasPhotos:   len(r.Photos) > 0,
			Categories:  r.Types,
		})
	}
	return hits
}
