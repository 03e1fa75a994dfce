package service

import (
	"context"
	"errors"
	"strings"

	"yatube/internal/model"
	"yatube/internal/repository/mysql"

	"gorm.io/gorm"
)

type PostService struct {
	posts    *mysql.PostRepository
	groups   *mysql.GroupRepository
	comments *mysql.CommentRepository
	follows  *mysql.FollowRepository
}

func NewPostService(db *gorm.DB) *PostService {
	return &PostService{
		posts:    &mysql.PostRepository{DB: db},
		groups:   &mysql.GroupRepository{DB: db},
		comments: &mysql.CommentRepository{DB: db},
		follows:  &mysql.FollowRepository{DB: db},
	}
}

// PostDetail 单帖页：帖子本体、评论和作者的统计（帖子数/粉丝数/关注数）
type PostDetail struct {
	Post           *model.Post     `json:"post"`
	Comments       []model.Comment `json:"comments"`
	PostCount      int64           `json:"post_count"`
	FollowerCount  int64           `json:"follower_count"`
	FollowingCount int64           `json:"following_count"`
}

// CreatePost 发帖。文本必填，分组可选但必须存在；作者和发布时间由服务端指定
func (s *PostService) CreatePost(userID uint64, text string, groupID *uint64, image string) (*model.Post, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrTextRequired
	}
	if groupID != nil {
		if _, err := s.groups.FindByID(*groupID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrBadGroup
			}
			return nil, err
		}
	}

	post := &model.Post{
		Text:     text,
		Image:    image,
		AuthorID: userID,
		GroupID:  groupID,
	}
	if err := s.posts.Create(post); err != nil {
		return nil, err
	}
	return post, nil
}

// EditPost 只有作者本人可以改，且只能改文本/分组/图片。
// 非作者返回 ErrNotAuthor，由 handler 静默重定向回全局流（沿用原有策略）
func (s *PostService) EditPost(userID, postID uint64, text string, groupID *uint64, image string) (*model.Post, error) {
	post, err := s.posts.FindByID(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if post.AuthorID != userID {
		return nil, ErrNotAuthor
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrTextRequired
	}
	if groupID != nil {
		if _, err := s.groups.FindByID(*groupID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrBadGroup
			}
			return nil, err
		}
	}

	post.Text = text
	post.GroupID = groupID
	post.Image = image
	if err := s.posts.Update(post); err != nil {
		return nil, err
	}
	return post, nil
}

// GetDetail 单帖页数据
func (s *PostService) GetDetail(ctx context.Context, postID uint64) (*PostDetail, error) {
	post, err := s.posts.FindByID(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	comments, err := s.comments.ListByPost(post.ID)
	if err != nil {
		return nil, err
	}
	count, err := s.posts.CountByAuthor(post.AuthorID)
	if err != nil {
		return nil, err
	}
	followers, err := s.follows.CountFollowers(ctx, post.AuthorID)
	if err != nil {
		return nil, err
	}
	following, err := s.follows.CountFollowing(ctx, post.AuthorID)
	if err != nil {
		return nil, err
	}
	return &PostDetail{
		Post:           post,
		Comments:       comments,
		PostCount:      count,
		FollowerCount:  followers,
		FollowingCount: following,
	}, nil
}
