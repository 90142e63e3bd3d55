package dice

import (
	"sort"
	"sync"
	"time"

	"golang.org/x/exp/rand"
)

const (
	D6  = 6
	D20 = 20
)

// Source is the randomness provider for dice rolls.
// Implementations must be safe for concurrent use.
type Source interface {
	// Intn returns a uniformly distributed int in [0, n).
	Intn(n int) int
}

// Roll draws count independent faces in [0, sides) from src and returns them
// sorted highest first. A count of zero or less returns an empty slice.
func Roll(src Source, count, sides int) []int {
	if count <= 0 {
		return []int{}
	}
	rolls := make([]int, count)
	for i := range rolls {
		rolls[i] = src.Intn(sides)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(rolls)))
	return rolls
}

type lockedSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSource returns a concurrency-safe source seeded from the clock.
func NewSource() Source {
	return NewSeededSource(uint64(time.Now().UnixNano()))
}

// NewSeededSource returns a concurrency-safe source with a fixed seed.
func NewSeededSource(seed uint64) Source {
	return &lockedSource{rng: rand.New(rand.NewSource(seed))}
}

func (s *lockedSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(n)
}

// Default is the process-wide source shared by every calculator that is not
// given one explicitly.
var Default = NewSource()
