package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/d60-Lab/cinefeed/internal/model"
	"github.com/d60-Lab/cinefeed/internal/repository"
)

// RegisterInput 注册入参；边界处即要求结构化字段，不收开放 map
type RegisterInput struct {
	Username    string
	Email       string
	Password    string
	Forename    string
	Surname     string
	Description string
}

// UpdateProfileInput 可更新的资料字段
type UpdateProfileInput struct {
	Forename    *string
	Surname     *string
	Description *string
}

// UserView 对外的用户视图，永不携带密码
type UserView struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	Forename     string    `json:"forename,omitempty"`
	Surname      string    `json:"surname,omitempty"`
	Role         string    `json:"role"`
	Description  string    `json:"description,omitempty"`
	RegisteredOn time.Time `json:"registeredOn"`
}

type UserService interface {
	Register(ctx context.Context, in RegisterInput) (*UserView, error)
	// Login 成功返回 JWT 与用户视图
	Login(ctx context.Context, username, password string) (string, *UserView, error)
	Get(ctx context.Context, id string) (*UserView, error)
	List(ctx context.Context) ([]UserView, error)
	UpdateProfile(ctx context.Context, id string, in UpdateProfileInput) (*UserView, error)
}

type userService struct {
	userRepo  repository.UserRepository
	jwtSecret []byte
	jwtTTL    time.Duration
	cache     Cache
}

func NewUserService(userRepo repository.UserRepository, jwtSecret string, jwtTTL time.Duration, cache Cache) UserService {
	return &userService{userRepo: userRepo, jwtSecret: []byte(jwtSecret), jwtTTL: jwtTTL, cache: cache}
}

func (s *userService) Register(ctx context.Context, in RegisterInput) (*UserView, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)
	if in.Username == "" || in.Email == "" || in.Password == "" {
		return nil, ErrMissingFields
	}
	if _, err := s.userRepo.FindByUsername(ctx, in.Username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if _, err := s.userRepo.FindByEmail(ctx, in.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &model.User{
		Username:     in.Username,
		Email:        in.Email,
		Password:     string(hash),
		Forename:     in.Forename,
		Surname:      in.Surname,
		Role:         "USER",
		Description:  in.Description,
		RegisteredOn: model.Today(),
	}
	if err := s.userRepo.Create(ctx, u); err != nil {
		// 并发注册撞同名/同邮箱时兜底到唯一索引
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, s.registerConflict(ctx, in.Username)
		}
		return nil, err
	}
	// 活跃榜含零推荐用户，新用户会改变榜单内容
	if s.cache != nil {
		s.cache.Invalidate(ctx, CacheKeyMostActiveUsers)
	}
	return toUserView(u), nil
}

// registerConflict 区分唯一索引兜底时撞的是用户名还是邮箱
func (s *userService) registerConflict(ctx context.Context, username string) error {
	if _, err := s.userRepo.FindByUsername(ctx, username); err == nil {
		return ErrUsernameTaken
	}
	return ErrEmailTaken
}

func (s *userService) Login(ctx context.Context, username, password string) (string, *UserView, error) {
	u, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
		return "", nil, ErrInvalidCredentials
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":      u.ID,
		"username": u.Username,
		"role":     u.Role,
		"iat":      now.Unix(),
		"exp":      now.Add(s.jwtTTL).Unix(),
	})
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", nil, err
	}
	return signed, toUserView(u), nil
}

func (s *userService) Get(ctx context.Context, id string) (*UserView, error) {
	u, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translateUserLookup(err)
	}
	return toUserView(u), nil
}

func (s *userService) List(ctx context.Context) ([]UserView, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]UserView, 0, len(users))
	for _, u := range users {
		views = append(views, *toUserView(u))
	}
	return views, nil
}

func (s *userService) UpdateProfile(ctx context.Context, id string, in UpdateProfileInput) (*UserView, error) {
	u, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translateUserLookup(err)
	}
	if in.Forename != nil {
		u.Forename = *in.Forename
	}
	if in.Surname != nil {
		u.Surname = *in.Surname
	}
	if in.Description != nil {
		u.Description = *in.Description
	}
	if err := s.userRepo.Update(ctx, u); err != nil {
		return nil, err
	}
	return toUserView(u), nil
}

func toUserView(u *model.User) *UserView {
	return &UserView{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		Forename:     u.Forename,
		Surname:      u.Surname,
		Role:         u.Role,
		Description:  u.Description,
		RegisteredOn: u.RegisteredOn,
	}
}
