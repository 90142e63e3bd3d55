package dice

import "sync"

// Sequence replays a fixed list of faces, wrapping around at the end. Each
// face is reduced modulo the requested number of sides. It is meant for tests
// that need to force specific rolls.
type Sequence struct {
	mu     sync.Mutex
	faces  []int
	next   int
	served int
}

func NewSequence(faces ...int) *Sequence {
	if len(faces) == 0 {
		faces = []int{0}
	}
	return &Sequence{faces: faces}
}

func (s *Sequence) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	face := s.faces[s.next] % n
	s.next = (s.next + 1) % len(s.faces)
	s.served++
	return face
}

// Draws reports how many faces have been handed out so far.
func (s *Sequence) Draws() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.served
}
