package usecase

import (
	"context"

	"github.com/mikiasgoitom/likeboard/internal/domain/contract"
	"github.com/mikiasgoitom/likeboard/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/likeboard/internal/usecase/contract"
)

// LikeUsecase handles the business logic for the page-wide like counter.
type LikeUsecase struct {
	likeRepo contract.ILikeCounterRepository
	logger   usecasecontract.IAppLogger
	metrics  usecasecontract.ILikeMetrics
}

// NewLikeUsecase creates and returns a new LikeUsecase instance. metrics may be nil.
func NewLikeUsecase(likeRepo contract.ILikeCounterRepository, logger usecasecontract.IAppLogger, metrics usecasecontract.ILikeMetrics) *LikeUsecase {
	return &LikeUsecase{
		likeRepo: likeRepo,
		logger:   logger,
		metrics:  metrics,
	}
}

var _ usecasecontract.ILikeUseCase = (*LikeUsecase)(nil)

// GetLikes returns the current like total.
func (u *LikeUsecase) GetLikes(ctx context.Context) (*entity.LikeCounter, error) {
	total, err := u.likeRepo.GetTotalLikes(ctx)
	if err != nil {
		return nil, u.storageFailure(entity.StorageOpRead, err)
	}
	u.observe(total)
	return &entity.LikeCounter{TotalLikes: total}, nil
}

// Like increments the total by one and returns the new value.
// One like per visitor is a client-side convention; it is not enforced here.
func (u *LikeUsecase) Like(ctx context.Context) (*entity.LikeCounter, error) {
	total, err := u.likeRepo.IncrementTotalLikes(ctx)
	if err != nil {
		return nil, u.storageFailure(entity.StorageOpIncrement, err)
	}
	if u.metrics != nil {
		u.metrics.IncLikes()
	}
	u.observe(total)
	u.logger.Debugf("like recorded, total now %d", total)
	return &entity.LikeCounter{TotalLikes: total}, nil
}

func (u *LikeUsecase) storageFailure(op string, err error) error {
	u.logger.Errorf("like counter %s failed: %v", op, err)
	if u.metrics != nil {
		u.metrics.IncStorageErrors(op)
	}
	return entity.NewStorageError(op, err)
}

func (u *LikeUsecase) observe(total int64) {
	if u.metrics != nil {
		u.metrics.ObserveTotal(total)
	}
}
