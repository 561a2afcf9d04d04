package store

import "sync"

// HashSet tracks content hashes seen across runs. Safe for concurrent
// use by the per-source workers.
type HashSet struct {
	mu     sync.Mutex
	hashes map[string]struct{}
}

func NewHashSet() *HashSet {
	return &HashSet{hashes: make(map[string]struct{})}
}

func (s *HashSet) Contains(hash string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.hashes[hash]
	return ok
}

func (s *HashSet) Add(hash string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hashes[hash] = struct{}{}
}

func (s *HashSet) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.hashes)
}
