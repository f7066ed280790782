package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/cinefeed/internal/api/middleware"
	"github.com/d60-Lab/cinefeed/pkg/response"
)

type followRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

// Follow 当前用户关注目标用户
// @Summary 关注用户
// @Tags 关系链
// @Accept json
// @Produce json
// @Param request body followRequest true "被关注者"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Security BearerAuth
// @Router /api/v1/relations/follow [post]
func (h *Handler) Follow(c *gin.Context) {
	var req followRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	follower := middleware.CurrentUserID(c)
	if err := h.relSvc.Follow(c.Request.Context(), follower, req.UserID); err != nil {
		renderError(c, err)
		return
	}
	response.Success(c, nil)
}

// Unfollow 当前用户取消关注目标用户
// @Summary 取消关注
// @Tags 关系链
// @Accept json
// @Produce json
// @Param request body followRequest true "被取关者"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Security BearerAuth
// @Router /api/v1/relations/unfollow [delete]
func (h *Handler) Unfollow(c *gin.Context) {
	var req followRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	follower := middleware.CurrentUserID(c)
	if err := h.relSvc.Unfollow(c.Request.Context(), follower, req.UserID); err != nil {
		renderError(c, err)
		return
	}
	response.Success(c, nil)
}

// ListFollowing 查询某用户关注的人
// @Summary 查询关注列表
// @Tags 关系链
// @Param user_id path string true "用户ID"
// @Success 200 {object} response.Response{data=[]string}
// @Router /api/v1/relations/{user_id}/following [get]
func (h *Handler) ListFollowing(c *gin.Context) {
	ids, err := h.relSvc.Following(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		renderError(c, err)
		return
	}
	response.Success(c, ids)
}

// ListFollowers 查询某用户的粉丝（冗余表读路径）
// @Summary 查询粉丝列表
// @Tags 关系链
// @Param user_id path string true "用户ID"
// @Success 200 {object} response.Response{data=[]string}
// @Router /api/v1/relations/{user_id}/followers [get]
func (h *Handler) ListFollowers(c *gin.Context) {
	ids, err := h.relSvc.Followers(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		renderError(c, err)
		return
	}
	response.Success(c, ids)
}

// IsFollowing 判断 from 是否关注 to
// @Summary 查询关注状态
// @Tags 关系链
// @Param from query string true "关注者ID"
// @Param to query string true "被关注者ID"
// @Success 200 {object} response.Response{data=bool}
// @Router /api/v1/relations/check [get]
func (h *Handler) IsFollowing(c *gin.Context) {
	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		response.BadRequest(c, "from and to are required")
		return
	}
	ok, err := h.relSvc.IsFollowing(c.Request.Context(), from, to)
	if err != nil {
		renderError(c, err)
		return
	}
	response.Success(c, ok)
}
