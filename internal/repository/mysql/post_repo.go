package mysql

import (
	"yatube/internal/model"

	"gorm.io/gorm"
)

type PostRepository struct {
	DB *gorm.DB
}

// 所有信息流统一按发布时间倒序，同一时刻用 id 兜底保证稳定。
// 带表名前缀，避免 join follows 时列名歧义
const feedOrder = "posts.created_at DESC, posts.id DESC"

func (r *PostRepository) Create(post *model.Post) error {
	return r.DB.Create(post).Error
}

func (r *PostRepository) FindByID(id uint64) (*model.Post, error) {
	var post model.Post
	err := r.DB.Preload("Author").Preload("Group").First(&post, id).Error
	return &post, err
}

// Update 只允许改文本、分组和图片，作者与发布时间不动
func (r *PostRepository) Update(post *model.Post) error {
	return r.DB.Model(post).Select("text", "group_id", "image").
		Updates(map[string]any{
			"text":     post.Text,
			"group_id": post.GroupID,
			"image":    post.Image,
		}).Error
}

// List 全局信息流
func (r *PostRepository) List(offset, limit int) ([]model.Post, error) {
	var list []model.Post
	err := r.DB.Preload("Author").Preload("Group").
		Order(feedOrder).Offset(offset).Limit(limit).Find(&list).Error
	return list, err
}

func (r *PostRepository) Count() (int64, error) {
	var n int64
	err := r.DB.Model(&model.Post{}).Count(&n).Error
	return n, err
}

// ListByGroup 分组信息流
func (r *PostRepository) ListByGroup(groupID uint64, offset, limit int) ([]model.Post, error) {
	var list []model.Post
	err := r.DB.Preload("Author").Preload("Group").
		Where("group_id = ?", groupID).
		Order(feedOrder).Offset(offset).Limit(limit).Find(&list).Error
	return list, err
}

func (r *PostRepository) CountByGroup(groupID uint64) (int64, error) {
	var n int64
	err := r.DB.Model(&model.Post{}).Where("group_id = ?", groupID).Count(&n).Error
	return n, err
}

// ListByAuthor 个人主页信息流
func (r *PostRepository) ListByAuthor(authorID uint64, offset, limit int) ([]model.Post, error) {
	var list []model.Post
	err := r.DB.Preload("Author").Preload("Group").
		Where("author_id = ?", authorID).
		Order(feedOrder).Offset(offset).Limit(limit).Find(&list).Error
	return list, err
}

func (r *PostRepository) CountByAuthor(authorID uint64) (int64, error) {
	var n int64
	err := r.DB.Model(&model.Post{}).Where("author_id = ?", authorID).Count(&n).Error
	return n, err
}

// ListByFollowed 关注流：当前用户关注的所有作者的帖子合并倒序
func (r *PostRepository) ListByFollowed(userID uint64, offset, limit int) ([]model.Post, error) {
	var list []model.Post
	err := r.DB.Preload("Author").Preload("Group").
		Joins("JOIN follows ON follows.author_id = posts.author_id AND follows.user_id = ?", userID).
		Order(feedOrder).Offset(offset).Limit(limit).Find(&list).Error
	return list, err
}

func (r *PostRepository) CountByFollowed(userID uint64) (int64, error) {
	var n int64
	err := r.DB.Model(&model.Post{}).
		Joins("JOIN follows ON follows.author_id = posts.author_id AND follows.user_id = ?", userID).
		Count(&n).Error
	return n, err
}
