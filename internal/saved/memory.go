package saved

import (
	"context"
	"sync"

	"github.com/nxtwatch/nxtwatch/internal/videoapi"
)

type MemoryStore struct {
	mu     sync.RWMutex
	videos map[string][]videoapi.Detail
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{videos: make(map[string][]videoapi.Detail)}
}

func (s *MemoryStore) List(_ context.Context, owner string) ([]videoapi.Detail, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := s.videos[owner]
	out := make([]videoapi.Detail, len(list))
	copy(out, list)
	return out, nil
}

func (s *MemoryStore) Add(_ context.Context, owner string, video videoapi.Detail) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if Contains(s.videos[owner], video.ID) {
		return nil
	}
	s.videos[owner] = append(s.videos[owner], video)
	return nil
}
