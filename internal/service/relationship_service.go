package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/d60-Lab/cinefeed/internal/repository"
)

// RelationshipService 关系链服务：关注边的唯一写入口
type RelationshipService interface {
	Follow(ctx context.Context, followerID, followeeID string) error
	Unfollow(ctx context.Context, followerID, followeeID string) error
	IsFollowing(ctx context.Context, followerID, followeeID string) (bool, error)
	// Following 出边：userID 关注了谁（follows 表直读）
	Following(ctx context.Context, userID string) ([]string, error)
	// Followers 入边：谁关注了 userID（fans 冗余表读，最终一致）
	Followers(ctx context.Context, userID string) ([]string, error)
}

type relationshipService struct {
	followRepo repository.FollowRepository
	fanRepo    repository.FanRepository
	userRepo   repository.UserRepository
	replicator *FanReplicator
}

func NewRelationshipService(followRepo repository.FollowRepository, fanRepo repository.FanRepository, userRepo repository.UserRepository, replicator *FanReplicator) RelationshipService {
	return &relationshipService{followRepo: followRepo, fanRepo: fanRepo, userRepo: userRepo, replicator: replicator}
}

func (s *relationshipService) Follow(ctx context.Context, followerID, followeeID string) error {
	if followerID == followeeID {
		return ErrSelfFollow
	}
	if _, err := s.userRepo.FindByID(ctx, followerID); err != nil {
		return translateUserLookup(err)
	}
	if _, err := s.userRepo.FindByID(ctx, followeeID); err != nil {
		return translateUserLookup(err)
	}
	// 并发 follow 同一对用户时由唯一键裁决，恰好一个成功
	if err := s.followRepo.Create(ctx, followerID, followeeID); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrAlreadyFollowing
		}
		return err
	}
	if s.replicator != nil {
		s.replicator.EnqueueAdd(followeeID, followerID)
	}
	return nil
}

func (s *relationshipService) Unfollow(ctx context.Context, followerID, followeeID string) error {
	if followerID == followeeID {
		return ErrSelfFollow
	}
	deleted, err := s.followRepo.Delete(ctx, followerID, followeeID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFollowing
	}
	if s.replicator != nil {
		s.replicator.EnqueueRemove(followeeID, followerID)
	}
	return nil
}

func (s *relationshipService) IsFollowing(ctx context.Context, followerID, followeeID string) (bool, error) {
	return s.followRepo.Exists(ctx, followerID, followeeID)
}

func (s *relationshipService) Following(ctx context.Context, userID string) ([]string, error) {
	ids, err := s.followRepo.ListFolloweeIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	if ids == nil {
		ids = []string{}
	}
	return ids, nil
}

func (s *relationshipService) Followers(ctx context.Context, userID string) ([]string, error) {
	ids, err := s.fanRepo.ListFanIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	if ids == nil {
		ids = []string{}
	}
	return ids, nil
}

func translateUserLookup(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrUserNotFound
	}
	return err
}
