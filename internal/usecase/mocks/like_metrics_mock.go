package mocks

import "sync"

// MockLikeMetrics counts metric calls.
type MockLikeMetrics struct {
	mu            sync.Mutex
	LastTotal     int64
	Likes         int
	StorageErrors map[string]int
}

func NewMockLikeMetrics() *MockLikeMetrics {
	return &MockLikeMetrics{StorageErrors: map[string]int{}}
}

func (m *MockLikeMetrics) ObserveTotal(total int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastTotal = total
}

func (m *MockLikeMetrics) IncLikes() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Likes++
}

func (m *MockLikeMetrics) IncStorageErrors(op string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.StorageErrors[op]++
}
