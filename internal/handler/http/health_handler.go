package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/likeboard/internal/handler/http/dto"
	usecasecontract "github.com/mikiasgoitom/likeboard/internal/usecase/contract"
)

type HealthHandler struct {
	likeUsecase usecasecontract.ILikeUseCase
}

func NewHealthHandler(likeUsecase usecasecontract.ILikeUseCase) *HealthHandler {
	return &HealthHandler{likeUsecase: likeUsecase}
}

// HealthzHandler reports whether the counter store can be read.
func (h *HealthHandler) HealthzHandler(c *gin.Context) {
	if _, err := h.likeUsecase.GetLikes(c.Request.Context()); err != nil {
		_ = c.Error(err)
		ErrorHandler(c, http.StatusServiceUnavailable, "storage unavailable")
		return
	}
	SuccessHandler(c, http.StatusOK, dto.StatusResponse{Status: "ok"})
}
