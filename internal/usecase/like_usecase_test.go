package usecase_test

import (
	"context"
	"testing"

	"github.com/mikiasgoitom/likeboard/internal/domain/entity"
	"github.com/mikiasgoitom/likeboard/internal/usecase"
	"github.com/mikiasgoitom/likeboard/internal/usecase/mocks"
	"github.com/sourcegraph/conc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLikeUsecase(start int64) (*usecase.LikeUsecase, *mocks.MockLikeCounterRepository, *mocks.MockLogger, *mocks.MockLikeMetrics) {
	repo := mocks.NewMockLikeCounterRepository(start)
	logger := mocks.NewMockLogger()
	metrics := mocks.NewMockLikeMetrics()
	return usecase.NewLikeUsecase(repo, logger, metrics), repo, logger, metrics
}

func TestGetLikes(t *testing.T) {
	uc, _, _, metrics := newLikeUsecase(5)

	counter, err := uc.GetLikes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(5), counter.TotalLikes)
	assert.Equal(t, int64(5), metrics.LastTotal)
}

func TestGetLikes_RepeatedReadsAreStable(t *testing.T) {
	uc, _, _, _ := newLikeUsecase(3)
	ctx := context.Background()

	first, err := uc.GetLikes(ctx)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := uc.GetLikes(ctx)
		require.NoError(t, err)
		assert.Equal(t, first.TotalLikes, again.TotalLikes)
	}
}

func TestGetLikes_StorageFailure(t *testing.T) {
	uc, repo, logger, metrics := newLikeUsecase(0)
	repo.ShouldFailGet = true

	counter, err := uc.GetLikes(context.Background())
	assert.Nil(t, counter)
	require.Error(t, err)
	assert.True(t, entity.IsStorageError(err))
	assert.Len(t, logger.Errors, 1)
	assert.Equal(t, 1, metrics.StorageErrors[entity.StorageOpRead])
}

func TestLike(t *testing.T) {
	uc, _, _, metrics := newLikeUsecase(5)
	ctx := context.Background()

	counter, err := uc.Like(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(6), counter.TotalLikes)

	read, err := uc.GetLikes(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(6), read.TotalLikes)
	assert.Equal(t, 1, metrics.Likes)
}

func TestLike_SequentialIncrements(t *testing.T) {
	uc, _, _, _ := newLikeUsecase(10)
	ctx := context.Background()

	const n = 25
	for i := 0; i < n; i++ {
		_, err := uc.Like(ctx)
		require.NoError(t, err)
	}
	counter, err := uc.GetLikes(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(10+n), counter.TotalLikes)
}

func TestLike_ConcurrentIncrements(t *testing.T) {
	uc, _, _, metrics := newLikeUsecase(0)
	ctx := context.Background()

	const k = 100
	var wg conc.WaitGroup
	for i := 0; i < k; i++ {
		wg.Go(func() {
			_, err := uc.Like(ctx)
			assert.NoError(t, err)
		})
	}
	wg.Wait()

	counter, err := uc.GetLikes(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(k), counter.TotalLikes)
	assert.Equal(t, k, metrics.Likes)
}

func TestLike_StorageFailure(t *testing.T) {
	uc, repo, _, metrics := newLikeUsecase(7)
	repo.ShouldFailIncrement = true

	counter, err := uc.Like(context.Background())
	assert.Nil(t, counter)
	require.Error(t, err)
	assert.True(t, entity.IsStorageError(err))
	assert.Equal(t, 1, metrics.StorageErrors[entity.StorageOpIncrement])
	assert.Zero(t, metrics.Likes)
}

func TestLike_NilMetrics(t *testing.T) {
	repo := mocks.NewMockLikeCounterRepository(1)
	uc := usecase.NewLikeUsecase(repo, mocks.NewMockLogger(), nil)

	counter, err := uc.Like(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), counter.TotalLikes)
}
