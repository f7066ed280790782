package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/cinefeed/internal/api/middleware"
	"github.com/d60-Lab/cinefeed/pkg/response"
)

type createCommentRequest struct {
	RecommendationID string `json:"recommendation_id" binding:"required"`
	Content          string `json:"content" binding:"required,notblank"`
}

// CreateComment 当前用户评论一条推荐
// @Summary 发表评论
// @Tags 评论
// @Accept json
// @Produce json
// @Param request body createCommentRequest true "评论内容"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Security BearerAuth
// @Router /api/v1/comments/create [post]
func (h *Handler) CreateComment(c *gin.Context) {
	var req createCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	author := middleware.CurrentUserID(c)
	view, err := h.commentSvc.Create(c.Request.Context(), author, req.RecommendationID, req.Content)
	if err != nil {
		renderError(c, err)
		return
	}
	response.Created(c, view)
}

// ListCommentsByRecommendation 某推荐下的评论，时间倒序
// @Summary 查询推荐的评论
// @Tags 评论
// @Param recommendation_id path string true "推荐ID"
// @Success 200 {object} response.Response
// @Router /api/v1/comments/recommendation/{recommendation_id} [get]
func (h *Handler) ListCommentsByRecommendation(c *gin.Context) {
	views, err := h.commentSvc.ListByRecommendation(c.Request.Context(), c.Param("recommendation_id"))
	if err != nil {
		renderError(c, err)
		return
	}
	response.Success(c, views)
}

// ListCommentsByUser 某用户发表的评论，时间倒序
// @Summary 查询用户的评论
// @Tags 评论
// @Param user_id path string true "用户ID"
// @Success 200 {object} response.Response
// @Router /api/v1/comments/user/{user_id} [get]
func (h *Handler) ListCommentsByUser(c *gin.Context) {
	views, err := h.commentSvc.ListByUser(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		renderError(c, err)
		return
	}
	response.Success(c, views)
}

// CommentCount 某推荐的评论数；推荐不存在时返回 0
// @Summary 查询评论数
// @Tags 评论
// @Param recommendation_id path string true "推荐ID"
// @Success 200 {object} response.Response{data=int64}
// @Router /api/v1/comments/count/{recommendation_id} [get]
func (h *Handler) CommentCount(c *gin.Context) {
	cnt, err := h.commentSvc.CountFor(c.Request.Context(), c.Param("recommendation_id"))
	if err != nil {
		renderError(c, err)
		return
	}
	response.Success(c, cnt)
}
