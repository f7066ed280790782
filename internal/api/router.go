package api

import (
	"strings"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	_ "github.com/d60-Lab/cinefeed/docs"

	"github.com/d60-Lab/cinefeed/config"
	"github.com/d60-Lab/cinefeed/internal/api/handler"
	"github.com/d60-Lab/cinefeed/internal/api/middleware"
)

// NewRouter 装配路由与通用中间件
func NewRouter(cfg *config.Config, h *handler.Handler) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)
	registerValidations()

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	r.Use(otelgin.Middleware("cinefeed"))
	r.Use(gzip.Gzip(gzip.DefaultCompression))
	r.Use(middleware.RateLimit(cfg.RateLimit.RPS, cfg.RateLimit.Burst))

	r.GET("/healthz", func(c *gin.Context) { c.String(200, "ok") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	auth := middleware.Auth(cfg.JWT.Secret)

	v1 := r.Group("/api/v1")
	{
		users := v1.Group("/users")
		{
			users.POST("/register", h.Register)
			users.POST("/login", h.Login)
			users.GET("", h.ListUsers)
			users.GET("/:id", h.GetUser)
			users.PUT("/me", auth, h.UpdateProfile)
		}

		relations := v1.Group("/relations")
		{
			relations.POST("/follow", auth, h.Follow)
			relations.DELETE("/unfollow", auth, h.Unfollow)
			relations.GET("/check", h.IsFollowing)
			relations.GET("/:user_id/following", h.ListFollowing)
			relations.GET("/:user_id/followers", h.ListFollowers)
		}

		recs := v1.Group("/recommendations")
		{
			recs.POST("/create", auth, h.CreateRecommendation)
			recs.GET("/feed", auth, h.Feed)
			recs.GET("/user/:user_id", h.ListRecommendationsByUser)
			recs.GET("/movie/:movie_id", h.ListRecommendationsByMovie)
			recs.GET("/:id", h.GetRecommendation)
		}

		comments := v1.Group("/comments")
		{
			comments.POST("/create", auth, h.CreateComment)
			comments.GET("/recommendation/:recommendation_id", h.ListCommentsByRecommendation)
			comments.GET("/user/:user_id", h.ListCommentsByUser)
			comments.GET("/count/:recommendation_id", h.CommentCount)
		}

		movies := v1.Group("/movies")
		{
			movies.POST("/create", auth, h.CreateMovie)
			movies.GET("", h.ListMovies)
			movies.GET("/:id", h.GetMovie)
			movies.PUT("/:id", auth, h.UpdateMovie)
		}

		messages := v1.Group("/messages")
		{
			messages.POST("/send", auth, h.SendMessage)
			messages.GET("/inbox", auth, h.Inbox)
			messages.GET("/conversation", auth, h.Conversation)
		}

		rankings := v1.Group("/rankings")
		{
			rankings.GET("/users", h.MostActiveUsers)
			rankings.GET("/movies", h.MostRecommendedMovies)
			rankings.GET("/recommendations", h.MostCommentedRecommendations)
		}
	}

	return r
}

// registerValidations 注册自定义 binding 规则
func registerValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
	}
}
