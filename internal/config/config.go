package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/i474232898/clothing-suggestor/internal/notify"
	"github.com/i474232898/clothing-suggestor/internal/wardrobe"
	"github.com/i474232898/clothing-suggestor/internal/weather"
)

var validate = validator.New()

type AppConfig struct {
	// Averaging window over the hourly forecast, [WindowStart, WindowEnd).
	WindowStart int `validate:"gte=0,lt=24"`
	WindowEnd   int `validate:"gt=0,lte=24,gtfield=WindowStart"`

	// GapPolicy is "noop" or "error".
	GapPolicy string `validate:"oneof=noop error"`

	City      string   `validate:"required"`
	Country   string   `validate:"required"`
	Latitude  *float64 `validate:"omitempty,latitude"`
	Longitude *float64 `validate:"omitempty,longitude"`
	Timezone  string   `validate:"required,timezone"`

	GeocoderAPIKey string

	// ScheduleAt is the daily trigger time, HH:MM in Timezone.
	ScheduleAt string `validate:"required,datetime=15:04"`

	HTTPTimeout time.Duration `validate:"gt=0"`

	// ResultMaxAge marks the stored result as stale (0 = never).
	ResultMaxAge time.Duration `validate:"gte=0"`

	Twilio notify.TwilioConfig

	Port      string `validate:"required,numeric"`
	LogLevel  string
	LogFormat string `validate:"oneof=json console"`
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Info().Err(err).Msg("no .env file found or error loading it")
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds and validates the configuration from a lookup function.
func FromEnv(getenv func(string) string) (*AppConfig, error) {
	e := env{getenv: getenv}
	cfg := &AppConfig{
		WindowStart:    e.integer("WINDOW_START_HOUR", 10),
		WindowEnd:      e.integer("WINDOW_END_HOUR", 18),
		GapPolicy:      e.str("TEMPERATURE_GAP_POLICY", "noop"),
		City:           e.str("WEATHER_LOCATION_CITY", "Vancouver"),
		Country:        e.str("WEATHER_LOCATION_COUNTRY", "CA"),
		Timezone:       e.str("WEATHER_TIMEZONE", "America/Los_Angeles"),
		GeocoderAPIKey: getenv("GEOCODER_API_KEY"),
		ScheduleAt:     e.str("SCHEDULE_AT", "10:00"),
		Twilio: notify.TwilioConfig{
			AccountSID: getenv("TWILIO_SID"),
			AuthToken:  getenv("AUTH_TOKEN"),
			From:       getenv("FROM_PHONE"),
			To:         getenv("TO_PHONE"),
		},
		Port:      e.str("PORT", "8080"),
		LogLevel:  e.str("LOG_LEVEL", "info"),
		LogFormat: e.str("LOG_FORMAT", "json"),
	}
	cfg.HTTPTimeout = e.duration("HTTP_TIMEOUT", 10*time.Second)
	cfg.ResultMaxAge = e.duration("RESULT_MAX_AGE", 36*time.Hour)

	// Coordinates default to Vancouver unless a geocoder is configured to resolve the city.
	defLat, defLon := "49.2497", "-123.1193"
	if cfg.GeocoderAPIKey != "" {
		defLat, defLon = "", ""
	}
	cfg.Latitude = e.float("WEATHER_LATITUDE", defLat)
	cfg.Longitude = e.float("WEATHER_LONGITUDE", defLon)

	if e.err != nil {
		return nil, e.err
	}
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if (cfg.Latitude == nil) != (cfg.Longitude == nil) {
		return nil, errors.New("invalid configuration: WEATHER_LATITUDE and WEATHER_LONGITUDE must be set together")
	}
	return cfg, nil
}

// Window returns the immutable averaging window.
func (c *AppConfig) Window() (wardrobe.Window, error) {
	return wardrobe.NewWindow(c.WindowStart, c.WindowEnd)
}

// Policy returns the parsed temperature gap policy.
func (c *AppConfig) Policy() wardrobe.GapPolicy {
	p, _ := wardrobe.ParseGapPolicy(c.GapPolicy)
	return p
}

// Location returns the configured location; coordinates may still be nil.
func (c *AppConfig) Location() weather.Location {
	return weather.Location{
		City:     c.City,
		Country:  c.Country,
		Lat:      c.Latitude,
		Lon:      c.Longitude,
		Timezone: c.Timezone,
	}
}

// TimeLocation loads the configured IANA zone.
func (c *AppConfig) TimeLocation() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

// env collects the first parse error so Load can report it with its key.
type env struct {
	getenv func(string) string
	err    error
}

func (e *env) str(key, def string) string {
	if v := e.getenv(key); v != "" {
		return v
	}
	return def
}

func (e *env) integer(key string, def int) int {
	v := e.getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		e.fail(key, err)
		return def
	}
	return n
}

func (e *env) duration(key string, def time.Duration) time.Duration {
	v := e.getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		e.fail(key, err)
		return def
	}
	return d
}

func (e *env) float(key, def string) *float64 {
	v := e.str(key, def)
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		e.fail(key, err)
		return nil
	}
	return &f
}

func (e *env) fail(key string, err error) {
	if e.err == nil {
		e.err = fmt.Errorf("invalid %s: %w", key, err)
	}
}
