package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/cinefeed/internal/api/middleware"
	"github.com/d60-Lab/cinefeed/pkg/response"
)

type sendMessageRequest struct {
	ReceiverID string `json:"receiver_id" binding:"required"`
	Content    string `json:"content" binding:"required,notblank"`
}

// SendMessage 当前用户发私信
// @Summary 发送私信
// @Tags 私信
// @Accept json
// @Produce json
// @Param request body sendMessageRequest true "私信内容"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Security BearerAuth
// @Router /api/v1/messages/send [post]
func (h *Handler) SendMessage(c *gin.Context) {
	var req sendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	sender := middleware.CurrentUserID(c)
	view, err := h.msgSvc.Send(c.Request.Context(), sender, req.ReceiverID, req.Content)
	if err != nil {
		renderError(c, err)
		return
	}
	response.Created(c, view)
}

// Inbox 当前用户收到的全部私信，新的在前
// @Summary 收件箱
// @Tags 私信
// @Success 200 {object} response.Response
// @Security BearerAuth
// @Router /api/v1/messages/inbox [get]
func (h *Handler) Inbox(c *gin.Context) {
	views, err := h.msgSvc.Inbox(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		renderError(c, err)
		return
	}
	response.Success(c, views)
}

// Conversation 当前用户与对方的全部往来，升序；读取即把对方消息置为已读
// @Summary 查询会话
// @Tags 私信
// @Param with query string true "对方用户ID"
// @Success 200 {object} response.Response
// @Security BearerAuth
// @Router /api/v1/messages/conversation [get]
func (h *Handler) Conversation(c *gin.Context) {
	other := c.Query("with")
	if other == "" {
		response.BadRequest(c, "with is required")
		return
	}
	me := middleware.CurrentUserID(c)
	views, err := h.msgSvc.Conversation(c.Request.Context(), me, other)
	if err != nil {
		renderError(c, err)
		return
	}
	if err := h.msgSvc.MarkRead(c.Request.Context(), me, other); err != nil {
		renderError(c, err)
		return
	}
	response.Success(c, views)
}
