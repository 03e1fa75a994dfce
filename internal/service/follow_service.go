package service

import (
	"context"
	"errors"

	"yatube/internal/repository/mysql"

	"gorm.io/gorm"
)

type FollowService struct {
	follows *mysql.FollowRepository
	users   *mysql.UserRepository
}

func NewFollowService(db *gorm.DB) *FollowService {
	return &FollowService{
		follows: &mysql.FollowRepository{DB: db},
		users:   &mysql.UserRepository{DB: db},
	}
}

// Follow 关注 username 对应的作者。自己关注自己直接拒绝；
// 已关注时是无副作用的成功（changed=false）
func (s *FollowService) Follow(ctx context.Context, viewerID uint64, username string) (bool, error) {
	author, err := s.users.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrNotFound
		}
		return false, err
	}
	if author.ID == viewerID {
		return false, ErrSelfFollow
	}
	return s.follows.Follow(ctx, viewerID, author.ID)
}

// Unfollow 取消关注。关注关系不存在时按 NotFound 处理
func (s *FollowService) Unfollow(ctx context.Context, viewerID uint64, username string) error {
	author, err := s.users.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	changed, err := s.follows.Unfollow(ctx, viewerID, author.ID)
	if err != nil {
		return err
	}
	if !changed {
		return ErrNotFollowing
	}
	return nil
}
