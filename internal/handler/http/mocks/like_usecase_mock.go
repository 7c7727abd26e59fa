package mocks

import (
	"context"
	"errors"
	"sync"

	"github.com/mikiasgoitom/likeboard/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/likeboard/internal/usecase/contract"
)

// MockLikeUsecase is a mock implementation of the ILikeUseCase interface
type MockLikeUsecase struct {
	// Control mock behavior
	ShouldFailGetLikes bool
	ShouldFailLike     bool

	mu         sync.Mutex
	TotalLikes int64
	LikeCalls  int
}

// Ensure MockLikeUsecase implements the correct interface for handler.NewLikesHandler
var _ usecasecontract.ILikeUseCase = (*MockLikeUsecase)(nil)

func NewMockLikeUsecase(total int64) *MockLikeUsecase {
	return &MockLikeUsecase{TotalLikes: total}
}

func (m *MockLikeUsecase) GetLikes(ctx context.Context) (*entity.LikeCounter, error) {
	if m.ShouldFailGetLikes {
		return nil, entity.NewStorageError(entity.StorageOpRead, errors.New("open likes-data.json: permission denied"))
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return &entity.LikeCounter{TotalLikes: m.TotalLikes}, nil
}

func (m *MockLikeUsecase) Like(ctx context.Context) (*entity.LikeCounter, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LikeCalls++
	if m.ShouldFailLike {
		return nil, entity.NewStorageError(entity.StorageOpIncrement, errors.New("write likes-data.json: no space left on device"))
	}
	m.TotalLikes++
	return &entity.LikeCounter{TotalLikes: m.TotalLikes}, nil
}
