package store

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/i474232898/clothing-suggestor/internal/wardrobe"
	"github.com/i474232898/clothing-suggestor/internal/weather"
)

var (
	// ErrNotFound is returned when no run is available for a given location.
	ErrNotFound = errors.New("no recommendation for location")
)

// Entry is the outcome of one successful recommendation run.
type Entry struct {
	ID             uuid.UUID               `json:"id"`
	Location       weather.Location        `json:"location"`
	GeneratedAt    time.Time               `json:"generatedAt"` // always UTC
	Window         string                  `json:"window"`
	Averages       wardrobe.Averages       `json:"averages"`
	Recommendation wardrobe.Recommendation `json:"recommendation"`
	Message        string                  `json:"message"`
	Sender         string                  `json:"sender,omitempty"`
	MessageID      string                  `json:"messageId,omitempty"`
	DryRun         bool                    `json:"dryRun"`
}

// MemoryStore keeps the latest entry per location. Older runs are replaced,
// not kept as history.
type MemoryStore struct {
	mu sync.RWMutex

	// key: location key
	data map[string]Entry

	// entries older than maxAge are reported as missing (0 = never stale)
	maxAge time.Duration
	now    func() time.Time
}

// NewMemoryStore creates a new MemoryStore.
func NewMemoryStore(maxAge time.Duration) *MemoryStore {
	return &MemoryStore{
		data:   make(map[string]Entry),
		maxAge: maxAge,
		now:    time.Now,
	}
}

// Save replaces the latest entry for the entry's location.
func (s *MemoryStore) Save(entry Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[entry.Location.Key()] = entry
}

// GetLatest returns the most recent entry for a location.
func (s *MemoryStore) GetLatest(loc weather.Location) (Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.data[loc.Key()]
	if !ok {
		return Entry{}, ErrNotFound
	}
	if s.maxAge > 0 && entry.GeneratedAt.Before(s.now().Add(-s.maxAge)) {
		return Entry{}, ErrNotFound
	}
	return entry, nil
}
