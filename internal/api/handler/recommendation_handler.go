package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/cinefeed/internal/api/middleware"
	"github.com/d60-Lab/cinefeed/pkg/response"
)

type createRecommendationRequest struct {
	MovieID string `json:"movie_id" binding:"required"`
	Content string `json:"content" binding:"required,notblank"`
}

// CreateRecommendation 当前用户发布一条电影推荐
// @Summary 发布推荐
// @Tags 推荐
// @Accept json
// @Produce json
// @Param request body createRecommendationRequest true "推荐内容"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Security BearerAuth
// @Router /api/v1/recommendations/create [post]
func (h *Handler) CreateRecommendation(c *gin.Context) {
	var req createRecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	author := middleware.CurrentUserID(c)
	rec, err := h.recSvc.Create(c.Request.Context(), author, req.MovieID, req.Content)
	if err != nil {
		renderError(c, err)
		return
	}
	response.Created(c, rec)
}

// GetRecommendation 按 id 查询推荐
// @Summary 查询推荐
// @Tags 推荐
// @Param id path string true "推荐ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/recommendations/{id} [get]
func (h *Handler) GetRecommendation(c *gin.Context) {
	rec, err := h.recSvc.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		renderError(c, err)
		return
	}
	response.Success(c, rec)
}

// ListRecommendationsByUser 某用户发布的全部推荐，时间倒序
// @Summary 查询用户的推荐
// @Tags 推荐
// @Param user_id path string true "用户ID"
// @Success 200 {object} response.Response
// @Router /api/v1/recommendations/user/{user_id} [get]
func (h *Handler) ListRecommendationsByUser(c *gin.Context) {
	recs, err := h.recSvc.FindByUser(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		renderError(c, err)
		return
	}
	response.Success(c, recs)
}

// ListRecommendationsByMovie 某电影收到的全部推荐，时间倒序
// @Summary 查询电影的推荐
// @Tags 推荐
// @Param movie_id path string true "电影ID"
// @Success 200 {object} response.Response
// @Router /api/v1/recommendations/movie/{movie_id} [get]
func (h *Handler) ListRecommendationsByMovie(c *gin.Context) {
	recs, err := h.recSvc.FindByMovie(c.Request.Context(), c.Param("movie_id"))
	if err != nil {
		renderError(c, err)
		return
	}
	response.Success(c, recs)
}

// Feed 当前用户的个性化 feed：所有被关注者的推荐，时间倒序
// @Summary 个性化 feed
// @Tags 推荐
// @Success 200 {object} response.Response
// @Security BearerAuth
// @Router /api/v1/recommendations/feed [get]
func (h *Handler) Feed(c *gin.Context) {
	items, err := h.feedSvc.Compose(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		renderError(c, err)
		return
	}
	response.Success(c, items)
}
