package handler

import (
	"errors"
	"net/http"
	"testing"

	"Tech_Circulo/internal/repository/mysql"
	"Tech_Circulo/internal/service"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatusMapping(t *testing.T) {
	assert.Equal(t, http.StatusForbidden, httpStatus(service.ErrNoPermission))
	assert.Equal(t, http.StatusNotFound, httpStatus(mysql.ErrPostNotFound))
	assert.Equal(t, http.StatusNotFound, httpStatus(mysql.ErrCommunityNotFound))
	assert.Equal(t, http.StatusConflict, httpStatus(mysql.ErrAlreadyMember))
	assert.Equal(t, http.StatusConflict, httpStatus(mysql.ErrAlreadyReported))
	assert.Equal(t, http.StatusBadRequest, httpStatus(errors.New("boom")))
}
