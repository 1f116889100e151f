package providers

import (
	"errors"
	"fmt"

	"github.com/kelvins/geocoder"

	"github.com/i474232898/clothing-suggestor/internal/weather"
)

var errNoGeocoderKey = errors.New("location has no coordinates and no geocoder api key is configured")

// GeocodeFunc resolves an address to coordinates.
type GeocodeFunc func(geocoder.Address) (geocoder.Location, error)

// Resolver fills in missing coordinates using the Google geocoding API.
type Resolver struct {
	apiKey  string
	geocode GeocodeFunc
}

func NewResolver(apiKey string) *Resolver {
	return &Resolver{apiKey: apiKey, geocode: geocoder.Geocoding}
}

// NewResolverWith is NewResolver with a custom lookup, mainly for tests.
func NewResolverWith(apiKey string, fn GeocodeFunc) *Resolver {
	return &Resolver{apiKey: apiKey, geocode: fn}
}

// Resolve returns loc unchanged when it already has coordinates.
func (r *Resolver) Resolve(loc weather.Location) (weather.Location, error) {
	if loc.HasCoordinates() {
		return loc, nil
	}
	if r.apiKey == "" {
		return loc, errNoGeocoderKey
	}

	geocoder.ApiKey = r.apiKey
	res, err := r.geocode(geocoder.Address{
		City:    loc.City,
		Country: loc.Country,
	})
	if err != nil {
		return loc, fmt.Errorf("geocode %s: %w", loc.Key(), err)
	}

	lat, lon := res.Latitude, res.Longitude
	loc.Lat = &lat
	loc.Lon = &lon
	return loc, nil
}
