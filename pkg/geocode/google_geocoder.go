package geocode

import (
	"context"
	"errors"
	"time"

	"googlemaps.github.io/maps"
)

// GoogleGeocoder uses the Google Maps API to reverse-geocode coordinates.
type GoogleGeocoder struct {
	client *maps.Client // Maps API client for making geocoding requests
}

// NewGoogleGeocoder creates a new GoogleGeocoder instance.
func NewGoogleGeocoder(apiKey string) (*GoogleGeocoder, error) {
	c, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}

	return &GoogleGeocoder{
		client: c,
	}, nil
}

// ResolveAddress looks up the formatted address nearest to the coordinates
// using the Google Maps Geocoding API.
func (g *GoogleGeocoder) ResolveAddress(ctx context.Context, lat, lon float64) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	req := &maps.GeocodingRequest{
		LatLng: &maps.LatLng{Lat: lat, Lng: lon},
	}

	results, err := g.client.ReverseGeocode(ctx, req) // Send the geocoding request
	if err != nil {
		return "", err
	}
	if len(results) == 0 {
		return "", errors.New("no address found for coordinates")
	}

	return results[0].FormattedAddress, nil
}
