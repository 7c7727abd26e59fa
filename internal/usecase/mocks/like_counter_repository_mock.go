package mocks

import (
	"context"
	"errors"
	"sync"

	"github.com/mikiasgoitom/likeboard/internal/domain/contract"
)

// MockLikeCounterRepository is an in-memory ILikeCounterRepository.
type MockLikeCounterRepository struct {
	ShouldFailInit      bool
	ShouldFailGet       bool
	ShouldFailIncrement bool

	mu    sync.Mutex
	total int64
}

var _ contract.ILikeCounterRepository = (*MockLikeCounterRepository)(nil)

func NewMockLikeCounterRepository(start int64) *MockLikeCounterRepository {
	return &MockLikeCounterRepository{total: start}
}

func (m *MockLikeCounterRepository) EnsureInitialized(ctx context.Context) error {
	if m.ShouldFailInit {
		return errors.New("init failed")
	}
	return nil
}

func (m *MockLikeCounterRepository) GetTotalLikes(ctx context.Context) (int64, error) {
	if m.ShouldFailGet {
		return 0, errors.New("read failed")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.total, nil
}

func (m *MockLikeCounterRepository) IncrementTotalLikes(ctx context.Context) (int64, error) {
	if m.ShouldFailIncrement {
		return 0, errors.New("write failed")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.total++
	return m.total, nil
}
