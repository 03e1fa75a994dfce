package model

import "time"

// Post 帖子。作者删除时级联删除，分组删除时 group_id 置空（帖子保留）
type Post struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	Image     string    `gorm:"size:255" json:"image,omitempty"`
	AuthorID  uint64    `gorm:"not null;index:idx_author_time" json:"author_id"`
	Author    *User     `gorm:"constraint:OnDelete:CASCADE" json:"author,omitempty"`
	GroupID   *uint64   `gorm:"index" json:"group_id"`
	Group     *Group    `gorm:"constraint:OnDelete:SET NULL" json:"group,omitempty"`
	CreatedAt time.Time `gorm:"index:idx_author_time" json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}
