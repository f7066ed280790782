package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/cinefeed/internal/api/middleware"
	"github.com/d60-Lab/cinefeed/internal/service"
	"github.com/d60-Lab/cinefeed/pkg/response"
)

type registerRequest struct {
	Username    string `json:"username" binding:"required,notblank"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	Forename    string `json:"forename"`
	Surname     string `json:"surname"`
	Description string `json:"description"`
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type updateProfileRequest struct {
	Forename    *string `json:"forename"`
	Surname     *string `json:"surname"`
	Description *string `json:"description"`
}

// Register 注册新用户
// @Summary 注册
// @Tags 用户
// @Accept json
// @Produce json
// @Param request body registerRequest true "注册信息"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /api/v1/users/register [post]
func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	view, err := h.userSvc.Register(c.Request.Context(), service.RegisterInput{
		Username:    req.Username,
		Email:       req.Email,
		Password:    req.Password,
		Forename:    req.Forename,
		Surname:     req.Surname,
		Description: req.Description,
	})
	if err != nil {
		renderError(c, err)
		return
	}
	response.Created(c, view)
}

// Login 登录，成功返回 JWT
// @Summary 登录
// @Tags 用户
// @Accept json
// @Produce json
// @Param request body loginRequest true "登录信息"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /api/v1/users/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	token, view, err := h.userSvc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		renderError(c, err)
		return
	}
	response.Success(c, gin.H{"token": token, "user": view})
}

// GetUser 按 id 查询用户
// @Summary 查询用户
// @Tags 用户
// @Param id path string true "用户ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/users/{id} [get]
func (h *Handler) GetUser(c *gin.Context) {
	view, err := h.userSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		renderError(c, err)
		return
	}
	response.Success(c, view)
}

// ListUsers 全部用户
// @Summary 用户列表
// @Tags 用户
// @Success 200 {object} response.Response
// @Router /api/v1/users [get]
func (h *Handler) ListUsers(c *gin.Context) {
	views, err := h.userSvc.List(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}
	response.Success(c, views)
}

// UpdateProfile 修改当前用户资料
// @Summary 修改资料
// @Tags 用户
// @Accept json
// @Produce json
// @Param request body updateProfileRequest true "资料字段"
// @Success 200 {object} response.Response
// @Security BearerAuth
// @Router /api/v1/users/me [put]
func (h *Handler) UpdateProfile(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	view, err := h.userSvc.UpdateProfile(c.Request.Context(), middleware.CurrentUserID(c), service.UpdateProfileInput{
		Forename:    req.Forename,
		Surname:     req.Surname,
		Description: req.Description,
	})
	if err != nil {
		renderError(c, err)
		return
	}
	response.Success(c, view)
}
