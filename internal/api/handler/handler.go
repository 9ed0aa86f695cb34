package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Pulse-Breakout/Backend/internal/identity"
	"github.com/Pulse-Breakout/Backend/internal/service"
	"github.com/Pulse-Breakout/Backend/pkg/response"
)

type Handler struct {
	userSvc      service.UserService
	communitySvc service.CommunityService
	contentSvc   service.ContentService
	depositorSvc service.DepositorService
}

func New(userSvc service.UserService, communitySvc service.CommunityService, contentSvc service.ContentService, depositorSvc service.DepositorService) *Handler {
	return &Handler{
		userSvc:      userSvc,
		communitySvc: communitySvc,
		contentSvc:   contentSvc,
		depositorSvc: depositorSvc,
	}
}

// pathID 校验路径参数是合法 uuid；不合法直接 400 并结束请求。
func pathID(c *gin.Context, name string) (string, bool) {
	raw := c.Param(name)
	if _, err := uuid.Parse(raw); err != nil {
		response.BadRequest(c, "invalid uuid format")
		return "", false
	}
	return raw, true
}

// writeServiceError 服务层错误到状态码的统一映射（NotFound→404、冲突→409、
// 身份格式→400、身份未注册→404，其余 500）。
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		response.NotFound(c, "user not found")
	case errors.Is(err, service.ErrCommunityNotFound):
		response.NotFound(c, "community not found")
	case errors.Is(err, service.ErrContentNotFound):
		response.NotFound(c, "content not found")
	case errors.Is(err, service.ErrEmailExists):
		response.Conflict(c, "email already exists")
	case errors.Is(err, service.ErrValidation):
		response.BadRequest(c, "missing required field")
	case errors.Is(err, identity.ErrMalformedIdentity):
		response.BadRequest(c, "malformed identity")
	case errors.Is(err, identity.ErrIdentityNotFound):
		response.NotFound(c, "identity not found")
	default:
		response.InternalError(c, err)
	}
}
