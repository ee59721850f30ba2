package shared

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/google/uuid"
)

// Supported identifier schemes.
const (
	IDSchemeTimestamp = "timestamp"
	IDSchemeUUID7     = "uuid7"
)

// IDGenerator hands out fresh entity identifiers.
type IDGenerator interface {
	NewID() string
}

// TimestampIDs issues millisecond timestamps, bumped so two ids never repeat
// within one process even when the clock stalls.
type TimestampIDs struct {
	clock Clock
	mu    sync.Mutex
	last  int64
}

// NewTimestampIDs builds a TimestampIDs on clock.
func NewTimestampIDs(clock Clock) *TimestampIDs {
	if clock == nil {
		clock = SystemClock{}
	}
	return &TimestampIDs{clock: clock}
}

// NewID returns the next id.
func (g *TimestampIDs) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	ms := g.clock.Now().UnixMilli()
	if ms <= g.last {
		ms = g.last + 1
	}
	g.last = ms
	return strconv.FormatInt(ms, 10)
}

// UUIDv7IDs issues time-ordered UUIDs.
type UUIDv7IDs struct{}

// NewID returns a UUIDv7, falling back to a random UUID.
func (UUIDv7IDs) NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// NewIDGenerator resolves a configured scheme.
func NewIDGenerator(scheme string, clock Clock) (IDGenerator, error) {
	switch scheme {
	case "", IDSchemeTimestamp:
		return NewTimestampIDs(clock), nil
	case IDSchemeUUID7:
		return UUIDv7IDs{}, nil
	default:
		return nil, fmt.Errorf("shared: unknown id scheme %q", scheme)
	}
}
