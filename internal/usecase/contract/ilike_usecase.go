package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/likeboard/internal/domain/entity"
)

type ILikeUseCase interface {
	GetLikes(ctx context.Context) (*entity.LikeCounter, error)
	Like(ctx context.Context) (*entity.LikeCounter, error)
}
