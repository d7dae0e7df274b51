package briefing

import (
	"context"
	"testing"

	"go.uber.org/zap"
	gmaps "googlemaps.github.io/maps"

	"wayfarer/internal/maps"
)

// fakeAPI scripts the Google Maps client for deterministic pipeline tests.
// Unset handlers return empty responses. Every call is counted so tests can
// assert on the number of outbound requests.
type fakeAPI struct {
	geocode    func(r *gmaps.GeocodingRequest) ([]gmaps.GeocodingResult, error)
	textSearch func(r *gmaps.TextSearchRequest) (gmaps.PlacesSearchResponse, error)
	nearby     func(r *gmaps.NearbySearchRequest) (gmaps.PlacesSearchResponse, error)
	details    func(r *gmaps.PlaceDetailsRequest) (gmaps.PlaceDetailsResult, error)

	calls       int
	nearbyTypes []string
	textQueries []string
}

func (f *fakeAPI) Geocode(_ context.Context, r *gmaps.GeocodingRequest) ([]gmaps.GeocodingResult, error) {
	f.calls++
	if f.geocode == nil {
		return nil, nil
	}
	return f.geocode(r)
}

func (f *fakeAPI) TextSearch(_ context.Context, r *gmaps.TextSearchRequest) (gmaps.PlacesSearchResponse, error) {
	f.calls++
	f.textQueries = append(f.textQueries, r.Query)
	if f.textSearch == nil {
		return gmaps.PlacesSearchResponse{}, nil
	}
	return f.textSearch(r)
}

func (f *fakeAPI) PlaceDetails(_ context.Context, r *gmaps.PlaceDetailsRequest) (gmaps.PlaceDetailsResult, error) {
	f.calls++
	if f.details == nil {
		return gmaps.PlaceDetailsResult{}, nil
	}
	return f.details(r)
}

func (f *fakeAPI) NearbySearch(_ context.Context, r *gmaps.NearbySearchRequest) (gmaps.PlacesSearchResponse, error) {
	f.calls++
	f.nearbyTypes = append(f.nearbyTypes, string(r.Type))
	if f.nearby == nil {
		return gmaps.PlacesSearchResponse{}, nil
	}
	return f.nearby(r)
}

// parisGeocode scripts a successful geocode of any destination.
func parisGeocode(_ *gmaps.GeocodingRequest) ([]gmaps.GeocodingResult, error) {
	return []gmaps.GeocodingResult{{
		FormattedAddress: "Paris, France",
		Geometry:         gmaps.AddressGeometry{Location: gmaps.LatLng{Lat: 48.8566, Lng: 2.3522}},
	}}, nil
}

func searchResult(name string, rating float32, count int) gmaps.PlacesSearchResult {
	return gmaps.PlacesSearchResult{Name: name, Rating: rating, UserRatingsTotal: count, PlaceID: "id-" + name}
}

func newPipeline(t *testing.T, api *fakeAPI) (*AttractionFinder, *RestaurantRecommender, *Compiler) {
	t.Helper()
	logger := zap.NewNop()
	geo := maps.NewGeocodingService(api, logger)
	places := maps.NewPlacesService(api, logger)
	limits := DefaultLimits()
	finder := NewAttractionFinder(geo, places, limits, logger)
	recommender := NewRestaurantRecommender(places, limits, logger)
	return finder, recommender, NewCompiler(places, finder, recommender, logger)
}
