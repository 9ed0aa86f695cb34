package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Pulse-Breakout/Backend/internal/model"
	"github.com/Pulse-Breakout/Backend/pkg/response"
)

// ListUsers 用户列表；带 email 查询参数时按邮箱查单个用户
// @Summary 用户列表 / 按邮箱查询
// @Tags 用户
// @Produce json
// @Param email query string false "按邮箱查询单个用户"
// @Success 200 {array} model.User
// @Failure 404 {object} map[string]string
// @Router /api/users [get]
func (h *Handler) ListUsers(c *gin.Context) {
	if email := c.Query("email"); email != "" {
		u, err := h.userSvc.GetByEmail(c.Request.Context(), email)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		response.OK(c, u)
		return
	}
	users, err := h.userSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, users)
}

// GetUser 按内部 id 查用户
// @Summary 查询用户
// @Tags 用户
// @Produce json
// @Param id path string true "用户ID"
// @Success 200 {object} model.User
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/users/{id} [get]
func (h *Handler) GetUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	u, err := h.userSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.OK(c, u)
}

// CreateUser 注册用户；邮箱冲突返回 409
// @Summary 创建用户
// @Tags 用户
// @Accept json
// @Produce json
// @Param request body model.CreateUserDTO true "用户信息"
// @Success 201 {object} model.User
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/users [post]
func (h *Handler) CreateUser(c *gin.Context) {
	var dto model.CreateUserDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	u, err := h.userSvc.Create(c.Request.Context(), dto)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Created(c, u)
}

// UpdateUser 部分更新：只覆盖出现的字段
// @Summary 更新用户
// @Tags 用户
// @Accept json
// @Produce json
// @Param id path string true "用户ID"
// @Param request body model.UpdateUserDTO true "变更字段"
// @Success 200 {object} model.User
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/users/{id} [put]
func (h *Handler) UpdateUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var dto model.UpdateUserDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	u, err := h.userSvc.Update(c.Request.Context(), id, dto)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.OK(c, u)
}

// DeleteUser 删除用户
// @Summary 删除用户
// @Tags 用户
// @Param id path string true "用户ID"
// @Success 204 "no content"
// @Failure 404 {object} map[string]string
// @Router /api/users/{id} [delete]
func (h *Handler) DeleteUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.userSvc.Delete(c.Request.Context(), id); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(204)
}

// ListUserCommunities 某用户创建的社区
// @Summary 按创建人查社区
// @Tags 用户
// @Produce json
// @Param id path string true "用户ID"
// @Success 200 {array} model.Community
// @Router /api/users/{id}/communities [get]
func (h *Handler) ListUserCommunities(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	list, err := h.communitySvc.ListByCreator(c.Request.Context(), id)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, list)
}

// ListUserDeposits 某用户的入金记录
// @Summary 按用户查入金
// @Tags 用户
// @Produce json
// @Param id path string true "用户ID"
// @Success 200 {array} model.Depositor
// @Router /api/users/{id}/depositors [get]
func (h *Handler) ListUserDeposits(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	list, err := h.depositorSvc.ListByUser(c.Request.Context(), id)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, list)
}
