package service

import (
	"errors"
	"strings"

	"yatube/internal/model"
	"yatube/internal/repository/mysql"

	"gorm.io/gorm"
)

type CommentService struct {
	comments *mysql.CommentRepository
	posts    *mysql.PostRepository
}

func NewCommentService(db *gorm.DB) *CommentService {
	return &CommentService{
		comments: &mysql.CommentRepository{DB: db},
		posts:    &mysql.PostRepository{DB: db},
	}
}

// AddComment 给帖子添加评论。帖子必须存在，文本必填
func (s *CommentService) AddComment(userID, postID uint64, text string) (*model.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrTextRequired
	}
	if _, err := s.posts.FindByID(postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	comment := &model.Comment{
		Text:     text,
		PostID:   postID,
		AuthorID: userID,
	}
	if err := s.comments.Create(comment); err != nil {
		return nil, err
	}
	return comment, nil
}
