package dto

import "github.com/mikiasgoitom/likeboard/internal/domain/entity"

// LikesResponse is the body of both GET and POST /api/likes.
type LikesResponse struct {
	TotalLikes int64 `json:"totalLikes"`
}

// converts an entity.LikeCounter to a LikesResponse DTO.
func ToLikesResponse(counter *entity.LikeCounter) LikesResponse {
	return LikesResponse{TotalLikes: counter.TotalLikes}
}

// StatusResponse is returned by the health endpoint.
type StatusResponse struct {
	Status string `json:"status"`
}

// ErrorResponse is a response for errors.
type ErrorResponse struct {
	Error string `json:"error"`
}
