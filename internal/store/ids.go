package store

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Clock returns the current time. Swapped out in tests.
type Clock func() time.Time

// IDGenerator hands out ids that never repeat for the life of the process.
type IDGenerator interface {
	NewID() string
}

// UUIDs generates random v4 UUIDs.
type UUIDs struct{}

func (UUIDs) NewID() string { return uuid.NewString() }

// Sequence generates monotonically increasing decimal ids, starting after Last.
type Sequence struct {
	Last uint64
}

func (s *Sequence) NewID() string {
	s.Last++
	return strconv.FormatUint(s.Last, 10)
}

// Generator maps an id strategy name to a generator. Unknown names get UUIDs.
func Generator(strategy string) IDGenerator {
	if strategy == "sequence" {
		return &Sequence{}
	}
	return UUIDs{}
}
