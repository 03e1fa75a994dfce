package service

import "errors"

// 业务错误集合，handler 层据此映射状态码
var (
	ErrNotFound     = errors.New("not found")
	ErrTextRequired = errors.New("text required")
	ErrNotAuthor    = errors.New("not the author")
	ErrSelfFollow   = errors.New("cannot follow self")
	ErrNotFollowing = errors.New("not following")
	ErrSlugTaken    = errors.New("slug already taken")
	ErrBadCode      = errors.New("invalid verification code")
	ErrBadGroup     = errors.New("group does not exist")
)
