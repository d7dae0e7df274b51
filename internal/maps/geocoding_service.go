// README: Geocoding of free-text destinations into coordinates.
package maps

import (
	"context"

	"go.uber.org/zap"
	"googlemaps.github.io/maps"
)

// Coordinates is a geocoded destination. It is owned by a single pipeline
// invocation and never cached across requests.
type Coordinates struct {
	Lat              float64
	Lng              float64
	FormattedAddress string
}

// GeocodingService resolves destination text against the Geocoding API.
type GeocodingService struct {
	api    PlacesAPI
	logger *zap.Logger
}

// NewGeocodingService creates a GeocodingService on top of the shared client.
func NewGeocodingService(api PlacesAPI, logger *zap.Logger) *GeocodingService {
	return &GeocodingService{api: api, logger: logger}
}

// Resolve geocodes the destination. It makes exactly one API call, no retries.
// Any transport error, non-OK provider status, or empty result set yields
// ok=false; the failure is logged and never propagated.
func (s *GeocodingService) Resolve(ctx context.Context, destination string) (Coordinates, bool) {
	results, err := s.api.Geocode(ctx, &maps.GeocodingRequest{Address: destination})
	if err != nil {
		s.logger.Warn("geocode failed", zap.String("destination", destination), zap.Error(err))
		return Coordinates{}, false
	}
	if len(results) == 0 {
		return Coordinates{}, false
	}

	top := results[0]
	return Coordinates{
		Lat:              top.Geometry.Location.Lat,
		Lng:              top.Geometry.Location.Lng,
		FormattedAddress: top.FormattedAddress,
	}, true
}
