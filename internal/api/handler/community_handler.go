package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Pulse-Breakout/Backend/internal/model"
	"github.com/Pulse-Breakout/Backend/pkg/response"
)

// ListCommunities 社区列表
// @Summary 社区列表
// @Tags 社区
// @Produce json
// @Success 200 {array} model.Community
// @Router /api/communities [get]
func (h *Handler) ListCommunities(c *gin.Context) {
	list, err := h.communitySvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, list)
}

// GetCommunity 按 id 查社区
// @Summary 查询社区
// @Tags 社区
// @Produce json
// @Param id path string true "社区ID"
// @Success 200 {object} model.Community
// @Failure 404 {object} map[string]string
// @Router /api/communities/{id} [get]
func (h *Handler) GetCommunity(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	cm, err := h.communitySvc.GetByID(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.OK(c, cm)
}

// CreateCommunity 创建社区；creatorId 解析失败则拒绝
// @Summary 创建社区
// @Tags 社区
// @Accept json
// @Produce json
// @Param request body model.CreateCommunityDTO true "社区信息"
// @Success 201 {object} model.Community
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/communities [post]
func (h *Handler) CreateCommunity(c *gin.Context) {
	var dto model.CreateCommunityDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	cm, err := h.communitySvc.Create(c.Request.Context(), dto)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Created(c, cm)
}

// UpdateCommunity COALESCE 式部分更新
// @Summary 更新社区
// @Tags 社区
// @Accept json
// @Produce json
// @Param id path string true "社区ID"
// @Param request body model.UpdateCommunityDTO true "变更字段"
// @Success 200 {object} model.Community
// @Failure 404 {object} map[string]string
// @Router /api/communities/{id} [put]
func (h *Handler) UpdateCommunity(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var dto model.UpdateCommunityDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	cm, err := h.communitySvc.Update(c.Request.Context(), id, dto)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.OK(c, cm)
}

// DeleteCommunity 删除社区
// @Summary 删除社区
// @Tags 社区
// @Param id path string true "社区ID"
// @Success 204 "no content"
// @Failure 404 {object} map[string]string
// @Router /api/communities/{id} [delete]
func (h *Handler) DeleteCommunity(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.communitySvc.Delete(c.Request.Context(), id); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(204)
}

// ListCommunityContents 社区内消息，创建时间倒序
// @Summary 社区消息列表
// @Tags 社区
// @Produce json
// @Param id path string true "社区ID"
// @Success 200 {array} model.Content
// @Router /api/communities/{id}/contents [get]
func (h *Handler) ListCommunityContents(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	list, err := h.contentSvc.ListByCommunity(c.Request.Context(), id)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, list)
}

// CreateDeposit 向社区入金
// @Summary 记录入金
// @Tags 社区
// @Accept json
// @Produce json
// @Param id path string true "社区ID"
// @Param request body model.CreateDepositorDTO true "入金信息"
// @Success 201 {object} model.Depositor
// @Failure 400 {object} map[string]string
// @Router /api/communities/{id}/depositors [post]
func (h *Handler) CreateDeposit(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var dto model.CreateDepositorDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	d, err := h.depositorSvc.Deposit(c.Request.Context(), id, dto)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Created(c, d)
}

// ListCommunityDeposits 社区的入金记录
// @Summary 按社区查入金
// @Tags 社区
// @Produce json
// @Param id path string true "社区ID"
// @Success 200 {array} model.Depositor
// @Router /api/communities/{id}/depositors [get]
func (h *Handler) ListCommunityDeposits(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	list, err := h.depositorSvc.ListByCommunity(c.Request.Context(), id)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, list)
}
