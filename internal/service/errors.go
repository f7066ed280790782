package service

import "errors"

// 校验类：调用方入参问题，立即返回，不重试
var (
	ErrSelfFollow    = errors.New("cannot follow self")
	ErrEmptyContent  = errors.New("content cannot be empty")
	ErrEmptyTitle    = errors.New("title cannot be empty")
	ErrMissingFields = errors.New("username, email and password are required")
)

// 不存在类：引用的实体查不到
var (
	ErrUserNotFound           = errors.New("user not found")
	ErrMovieNotFound          = errors.New("movie not found")
	ErrRecommendationNotFound = errors.New("recommendation not found")
)

// 冲突类：与当前持久状态冲突，重试无意义，由调用方自行处理
var (
	ErrAlreadyFollowing   = errors.New("already following")
	ErrNotFollowing       = errors.New("not following")
	ErrAlreadyRecommended = errors.New("movie already recommended by this user today")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrEmailTaken         = errors.New("email already exists")
)

var ErrInvalidCredentials = errors.New("invalid username or password")

// IsValidation 入参错误 → 400
func IsValidation(err error) bool {
	return errors.Is(err, ErrSelfFollow) ||
		errors.Is(err, ErrEmptyContent) ||
		errors.Is(err, ErrEmptyTitle) ||
		errors.Is(err, ErrMissingFields)
}

// IsNotFound 实体不存在 → 404
func IsNotFound(err error) bool {
	return errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrMovieNotFound) ||
		errors.Is(err, ErrRecommendationNotFound)
}

// IsConflict 状态冲突 → 409
func IsConflict(err error) bool {
	return errors.Is(err, ErrAlreadyFollowing) ||
		errors.Is(err, ErrNotFollowing) ||
		errors.Is(err, ErrAlreadyRecommended) ||
		errors.Is(err, ErrUsernameTaken) ||
		errors.Is(err, ErrEmailTaken)
}
