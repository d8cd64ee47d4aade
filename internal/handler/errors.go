package handler

import (
	"errors"
	"net/http"

	"Tech_Circulo/internal/repository/mysql"
	"Tech_Circulo/internal/service"
)

// httpStatus 账本错误映射HTTP状态码；403 只给权限错误，其余一律按请求错误处理
func httpStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrNoPermission):
		return http.StatusForbidden
	case errors.Is(err, mysql.ErrUserNotFound),
		errors.Is(err, mysql.ErrCommunityNotFound),
		errors.Is(err, mysql.ErrPostNotFound):
		return http.StatusNotFound
	case errors.Is(err, mysql.ErrAlreadyMember),
		errors.Is(err, mysql.ErrNotMember),
		errors.Is(err, mysql.ErrAlreadyReported):
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}
