package service

import (
	"errors"
	"strings"

	"yatube/internal/model"
	"yatube/internal/repository/mysql"

	"gorm.io/gorm"
)

type GroupService struct {
	groups *mysql.GroupRepository
}

func NewGroupService(db *gorm.DB) *GroupService {
	return &GroupService{
		groups: &mysql.GroupRepository{DB: db},
	}
}

// CreateGroup slug 全局唯一且创建后不可变
func (s *GroupService) CreateGroup(title, slug, description string) (*model.Group, error) {
	title = strings.TrimSpace(title)
	slug = strings.TrimSpace(slug)
	if title == "" || slug == "" {
		return nil, ErrTextRequired
	}

	if _, err := s.groups.FindBySlug(slug); err == nil {
		return nil, ErrSlugTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	group := &model.Group{
		Title:       title,
		Slug:        slug,
		Description: description,
	}
	if err := s.groups.Create(group); err != nil {
		return nil, err
	}
	return group, nil
}

func (s *GroupService) ListGroups(page, size int) ([]model.Group, error) {
	if page <= 0 {
		page = 1
	}
	if size <= 0 || size > 50 {
		size = 20
	}
	offset := (page - 1) * size
	return s.groups.List(offset, size)
}
