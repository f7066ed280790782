package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/cinefeed/internal/service"
	"github.com/d60-Lab/cinefeed/pkg/response"
)

// Handler 聚合全部 HTTP 处理器的依赖
type Handler struct {
	relSvc     service.RelationshipService
	recSvc     service.RecommendationService
	feedSvc    service.FeedService
	rankSvc    service.RankingService
	commentSvc service.CommentService
	userSvc    service.UserService
	movieSvc   service.MovieService
	msgSvc     service.MessageService
}

func New(
	relSvc service.RelationshipService,
	recSvc service.RecommendationService,
	feedSvc service.FeedService,
	rankSvc service.RankingService,
	commentSvc service.CommentService,
	userSvc service.UserService,
	movieSvc service.MovieService,
	msgSvc service.MessageService,
) *Handler {
	return &Handler{
		relSvc:     relSvc,
		recSvc:     recSvc,
		feedSvc:    feedSvc,
		rankSvc:    rankSvc,
		commentSvc: commentSvc,
		userSvc:    userSvc,
		movieSvc:   movieSvc,
		msgSvc:     msgSvc,
	}
}

// renderError 领域错误 → HTTP 状态码（校验 400 / 不存在 404 / 冲突 409）
func renderError(c *gin.Context, err error) {
	switch {
	case service.IsValidation(err):
		response.BadRequest(c, err.Error())
	case service.IsNotFound(err):
		response.NotFound(c, err.Error())
	case service.IsConflict(err):
		response.Conflict(c, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		response.Unauthorized(c, err.Error())
	default:
		response.InternalError(c, err)
	}
}
