package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/likeboard/internal/handler/http/dto"
	usecasecontract "github.com/mikiasgoitom/likeboard/internal/usecase/contract"
)

// Error bodies for the likes API. Storage details stay in the logs.
const (
	ErrMsgGetLikes    = "Failed to get likes"
	ErrMsgUpdateLikes = "Failed to update likes"
)

type LikesHandler struct {
	likeUsecase usecasecontract.ILikeUseCase
}

func NewLikesHandler(likeUsecase usecasecontract.ILikeUseCase) *LikesHandler {
	return &LikesHandler{
		likeUsecase: likeUsecase,
	}
}

// GetLikesHandler serves GET /api/likes.
func (h *LikesHandler) GetLikesHandler(c *gin.Context) {
	counter, err := h.likeUsecase.GetLikes(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		ErrorHandler(c, http.StatusInternalServerError, ErrMsgGetLikes)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToLikesResponse(counter))
}

// LikeHandler serves POST /api/likes. The request body is ignored.
func (h *LikesHandler) LikeHandler(c *gin.Context) {
	counter, err := h.likeUsecase.Like(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		ErrorHandler(c, http.StatusInternalServerError, ErrMsgUpdateLikes)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToLikesResponse(counter))
}
