package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/cinefeed/pkg/response"
)

// MostActiveUsers 按推荐数排序的用户榜
// @Summary 活跃用户榜
// @Tags 排行榜
// @Success 200 {object} response.Response
// @Router /api/v1/rankings/users [get]
func (h *Handler) MostActiveUsers(c *gin.Context) {
	rows, err := h.rankSvc.MostActiveUsers(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}
	response.Success(c, rows)
}

// MostRecommendedMovies 按推荐数排序的电影榜
// @Summary 热门电影榜
// @Tags 排行榜
// @Success 200 {object} response.Response
// @Router /api/v1/rankings/movies [get]
func (h *Handler) MostRecommendedMovies(c *gin.Context) {
	rows, err := h.rankSvc.MostRecommendedMovies(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}
	response.Success(c, rows)
}

// MostCommentedRecommendations 按评论数排序的推荐榜
// @Summary 热议推荐榜
// @Tags 排行榜
// @Success 200 {object} response.Response
// @Router /api/v1/rankings/recommendations [get]
func (h *Handler) MostCommentedRecommendations(c *gin.Context) {
	rows, err := h.rankSvc.MostCommentedRecommendations(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}
	response.Success(c, rows)
}
