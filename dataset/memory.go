package dataset

import (
	"slices"
	"sync"
)

// Memory 인메모리 저장소
type Memory struct {
	mu     sync.Mutex
	trials map[int][]int
}

func NewMemory() *Memory {
	return &Memory{trials: make(map[int][]int)}
}

func (m *Memory) Put(trial int, data []int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := make([]int, len(data))
	copy(stored, data)
	m.trials[trial] = stored
	return nil
}

func (m *Memory) Load(trial int) ([]int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.trials[trial]
	if !ok {
		return nil, ErrNotFound
	}
	return slices.Clone(data), nil
}

func (m *Memory) Close() error { return nil }
