package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/cinefeed/internal/service"
	"github.com/d60-Lab/cinefeed/pkg/response"
)

type movieRequest struct {
	Title       string `json:"title" binding:"required,notblank"`
	Description string `json:"description"`
	Poster      string `json:"poster"`
	Trailer     string `json:"trailer"`
	Genres      string `json:"genres"`
	Director    string `json:"director"`
	Stars       string `json:"stars"`
	ReleaseYear int    `json:"release_year"`
	Runtime     int    `json:"runtime"`
}

func (r movieRequest) toInput() service.MovieInput {
	return service.MovieInput{
		Title:       r.Title,
		Description: r.Description,
		Poster:      r.Poster,
		Trailer:     r.Trailer,
		Genres:      r.Genres,
		Director:    r.Director,
		Stars:       r.Stars,
		ReleaseYear: r.ReleaseYear,
		Runtime:     r.Runtime,
	}
}

// CreateMovie 新建电影条目
// @Summary 新建电影
// @Tags 电影
// @Accept json
// @Produce json
// @Param request body movieRequest true "电影信息"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Security BearerAuth
// @Router /api/v1/movies/create [post]
func (h *Handler) CreateMovie(c *gin.Context) {
	var req movieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	m, err := h.movieSvc.Create(c.Request.Context(), req.toInput())
	if err != nil {
		renderError(c, err)
		return
	}
	response.Created(c, m)
}

// GetMovie 按 id 查询电影
// @Summary 查询电影
// @Tags 电影
// @Param id path string true "电影ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/movies/{id} [get]
func (h *Handler) GetMovie(c *gin.Context) {
	m, err := h.movieSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		renderError(c, err)
		return
	}
	response.Success(c, m)
}

// ListMovies 片库检索；title/genre/director 三个过滤条件取其一
// @Summary 电影列表
// @Tags 电影
// @Param title query string false "标题模糊匹配"
// @Param genre query string false "类型"
// @Param director query string false "导演"
// @Success 200 {object} response.Response
// @Router /api/v1/movies [get]
func (h *Handler) ListMovies(c *gin.Context) {
	ctx := c.Request.Context()
	var (
		movies interface{}
		err    error
	)
	switch {
	case c.Query("title") != "":
		movies, err = h.movieSvc.SearchByTitle(ctx, c.Query("title"))
	case c.Query("genre") != "":
		movies, err = h.movieSvc.ListByGenre(ctx, c.Query("genre"))
	case c.Query("director") != "":
		movies, err = h.movieSvc.ListByDirector(ctx, c.Query("director"))
	default:
		movies, err = h.movieSvc.List(ctx)
	}
	if err != nil {
		renderError(c, err)
		return
	}
	response.Success(c, movies)
}

// UpdateMovie 更新电影条目
// @Summary 更新电影
// @Tags 电影
// @Accept json
// @Produce json
// @Param id path string true "电影ID"
// @Param request body movieRequest true "电影信息"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Security BearerAuth
// @Router /api/v1/movies/{id} [put]
func (h *Handler) UpdateMovie(c *gin.Context) {
	var req movieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	m, err := h.movieSvc.Update(c.Request.Context(), c.Param("id"), req.toInput())
	if err != nil {
		renderError(c, err)
		return
	}
	response.Success(c, m)
}
