package weather

import "context"

// Provider abstracts a forecast source (e.g. Open-Meteo).
type Provider interface {
	Name() string
	Fetch(ctx context.Context, loc Location) (Snapshot, error)
}
