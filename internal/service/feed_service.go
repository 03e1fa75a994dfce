package service

import (
	"context"
	"errors"

	"yatube/internal/model"
	"yatube/internal/pkg"
	"yatube/internal/repository/mysql"

	"gorm.io/gorm"
)

// FeedService 四种信息流的查询入口：全局、分组、个人主页、关注流。
// 页码越界收敛到最近合法页，参见 pkg.Paginate
type FeedService struct {
	posts    *mysql.PostRepository
	groups   *mysql.GroupRepository
	users    *mysql.UserRepository
	follows  *mysql.FollowRepository
	pageSize int
}

func NewFeedService(db *gorm.DB, pageSize int) *FeedService {
	if pageSize <= 0 {
		pageSize = 10
	}
	return &FeedService{
		posts:    &mysql.PostRepository{DB: db},
		groups:   &mysql.GroupRepository{DB: db},
		users:    &mysql.UserRepository{DB: db},
		follows:  &mysql.FollowRepository{DB: db},
		pageSize: pageSize,
	}
}

// PostPage 一页帖子及分页元信息
type PostPage struct {
	Posts []model.Post `json:"posts"`
	pkg.Pagination
}

// Profile 个人主页：作者、其帖子分页、各项计数和当前观看者是否已关注
type Profile struct {
	Author         *model.User `json:"author"`
	Page           *PostPage   `json:"page"`
	PostCount      int64       `json:"post_count"`
	FollowerCount  int64       `json:"follower_count"`
	FollowingCount int64       `json:"following_count"`
	Following      bool        `json:"following"`
}

// GlobalFeed 全局信息流
func (s *FeedService) GlobalFeed(page int) (*PostPage, error) {
	count, err := s.posts.Count()
	if err != nil {
		return nil, err
	}
	p := pkg.Paginate(page, s.pageSize, count)
	list, err := s.posts.List(p.Offset(), p.Size)
	if err != nil {
		return nil, err
	}
	return &PostPage{Posts: list, Pagination: p}, nil
}

// GroupFeed 分组信息流，slug 不存在时 ErrNotFound
func (s *FeedService) GroupFeed(slug string, page int) (*model.Group, *PostPage, error) {
	group, err := s.groups.FindBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}
	count, err := s.posts.CountByGroup(group.ID)
	if err != nil {
		return nil, nil, err
	}
	p := pkg.Paginate(page, s.pageSize, count)
	list, err := s.posts.ListByGroup(group.ID, p.Offset(), p.Size)
	if err != nil {
		return nil, nil, err
	}
	return group, &PostPage{Posts: list, Pagination: p}, nil
}

// GetProfile 个人主页。viewerID=0 表示匿名访问，Following 恒为 false
func (s *FeedService) GetProfile(ctx context.Context, username string, viewerID uint64, page int) (*Profile, error) {
	author, err := s.users.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	count, err := s.posts.CountByAuthor(author.ID)
	if err != nil {
		return nil, err
	}
	p := pkg.Paginate(page, s.pageSize, count)
	list, err := s.posts.ListByAuthor(author.ID, p.Offset(), p.Size)
	if err != nil {
		return nil, err
	}

	followers, err := s.follows.CountFollowers(ctx, author.ID)
	if err != nil {
		return nil, err
	}
	following, err := s.follows.CountFollowing(ctx, author.ID)
	if err != nil {
		return nil, err
	}

	var viewerFollows bool
	if viewerID != 0 {
		viewerFollows, err = s.follows.IsFollowing(ctx, viewerID, author.ID)
		if err != nil {
			return nil, err
		}
	}

	return &Profile{
		Author:         author,
		Page:           &PostPage{Posts: list, Pagination: p},
		PostCount:      count,
		FollowerCount:  followers,
		FollowingCount: following,
		Following:      viewerFollows,
	}, nil
}

// FollowFeed 关注流：观看者关注的所有作者的帖子合并倒序。
// 一个人都没关注时返回空的第 1 页，不是错误
func (s *FeedService) FollowFeed(userID uint64, page int) (*PostPage, error) {
	count, err := s.posts.CountByFollowed(userID)
	if err != nil {
		return nil, err
	}
	p := pkg.Paginate(page, s.pageSize, count)
	list, err := s.posts.ListByFollowed(userID, p.Offset(), p.Size)
	if err != nil {
		return nil, err
	}
	return &PostPage{Posts: list, Pagination: p}, nil
}
