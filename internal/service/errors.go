package service

import "errors"

// ErrNoPermission 操作者既不是资源作者也不是社区管理员
var ErrNoPermission = errors.New("no permission")
