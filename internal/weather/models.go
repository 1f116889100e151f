package weather

import (
	"fmt"
	"time"
)

// Location is the single place recommendations are made for.
// Lat/Lon may be nil until resolved by geocoding.
type Location struct {
	City     string   `json:"city"`
	Country  string   `json:"country"`
	Lat      *float64 `json:"lat,omitempty"`
	Lon      *float64 `json:"lon,omitempty"`
	Timezone string   `json:"timezone,omitempty"`
}

// Key returns a canonical string key for indexing this location in stores.
func (l Location) Key() string {
	return l.City + ":" + l.Country
}

// HasCoordinates reports whether both latitude and longitude are known.
func (l Location) HasCoordinates() bool {
	return l.Lat != nil && l.Lon != nil
}

func (l Location) String() string {
	if l.HasCoordinates() {
		return fmt.Sprintf("%s (%.4f,%.4f)", l.Key(), *l.Lat, *l.Lon)
	}
	return l.Key()
}

// HourlySeries holds per-hour values indexed by hour of day (index 0 = 00:00).
type HourlySeries struct {
	Temperature              []float64 `json:"temperature" validate:"required,min=1"`
	PrecipitationProbability []float64 `json:"precipitationProbability" validate:"required,min=1"`
	Rain                     []float64 `json:"rain" validate:"required,min=1"`
	Showers                  []float64 `json:"showers" validate:"required,min=1"`
	Snowfall                 []float64 `json:"snowfall" validate:"required,min=1"`
	SnowDepth                []float64 `json:"snowDepth" validate:"required,min=1"`
	CloudCover               []float64 `json:"cloudCover" validate:"required,min=1"`
}

// Snapshot is one complete forecast for a day: the hourly series plus the
// daily UV index maximum (at least one entry).
type Snapshot struct {
	Location   Location     `json:"location"`
	FetchedAt  time.Time    `json:"fetchedAt"` // always UTC
	Hourly     HourlySeries `json:"hourly"`
	UVIndexMax []float64    `json:"uvIndexMax" validate:"required,min=1"`
}
