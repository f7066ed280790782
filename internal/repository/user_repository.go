package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/d60-Lab/cinefeed/internal/model"
)

// ActiveUserRow 用户 + 推荐数聚合行
type ActiveUserRow struct {
	ID                  string `json:"id"`
	Username            string `json:"username"`
	RecommendationCount int64  `json:"recommendationCount"`
}

type UserRepository interface {
	// Create 用户名 / 邮箱撞唯一索引时返回 gorm.ErrDuplicatedKey
	Create(ctx context.Context, u *model.User) error
	FindByID(ctx context.Context, id string) (*model.User, error)
	FindByIDs(ctx context.Context, ids []string) ([]*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context) ([]*model.User, error)
	Update(ctx context.Context, u *model.User) error
	// MostActive 按推荐数倒序、id 升序
	MostActive(ctx context.Context, limit int) ([]ActiveUserRow, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository { return &userRepository{db: db} }

func (r *userRepository) Create(ctx context.Context, u *model.User) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	var u model.User
	if err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) FindByIDs(ctx context.Context, ids []string) ([]*model.User, error) {
	if len(ids) == 0 {
		return []*model.User{}, nil
	}
	var res []*model.User
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&res).Error
	return res, err
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	var u model.User
	if err := r.db.WithContext(ctx).First(&u, "username = ?", username).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	if err := r.db.WithContext(ctx).First(&u, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) List(ctx context.Context) ([]*model.User, error) {
	var res []*model.User
	err := r.db.WithContext(ctx).Order("username ASC").Find(&res).Error
	return res, err
}

func (r *userRepository) Update(ctx context.Context, u *model.User) error {
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *userRepository) MostActive(ctx context.Context, limit int) ([]ActiveUserRow, error) {
	var rows []ActiveUserRow
	err := r.db.WithContext(ctx).
		Model(&model.User{}).
		Select("users.id, users.username, COUNT(recommendations.id) AS recommendation_count").
		Joins("LEFT JOIN recommendations ON recommendations.author_id = users.id").
		Group("users.id").
		Order("recommendation_count DESC, users.id ASC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}
