package mysql

import "errors"

// 账本类错误：调用方据此映射HTTP状态码，不在本层重试
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrCommunityNotFound = errors.New("community not found")
	ErrPostNotFound      = errors.New("post not found")

	ErrAlreadyMember = errors.New("already a member")
	ErrNotMember     = errors.New("not a member")

	ErrAlreadyReported = errors.New("already reported")
)
