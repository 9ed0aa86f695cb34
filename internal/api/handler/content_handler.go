package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Pulse-Breakout/Backend/internal/model"
	"github.com/Pulse-Breakout/Backend/pkg/response"
)

// ListContents 全部消息，创建时间倒序
// @Summary 消息列表
// @Tags 消息
// @Produce json
// @Success 200 {array} model.Content
// @Router /api/contents [get]
func (h *Handler) ListContents(c *gin.Context) {
	list, err := h.contentSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, list)
}

// GetContent 按 id 查消息
// @Summary 查询消息
// @Tags 消息
// @Produce json
// @Param id path string true "消息ID"
// @Success 200 {object} model.Content
// @Failure 404 {object} map[string]string
// @Router /api/contents/{id} [get]
func (h *Handler) GetContent(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	ct, err := h.contentSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.OK(c, ct)
}

// CreateContent 发消息；发送者身份由服务端解析回填
// @Summary 创建消息
// @Tags 消息
// @Accept json
// @Produce json
// @Param request body model.CreateContentDTO true "消息内容"
// @Success 201 {object} model.Content
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/contents [post]
func (h *Handler) CreateContent(c *gin.Context) {
	var dto model.CreateContentDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	ct, err := h.contentSvc.Create(c.Request.Context(), dto)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Created(c, ct)
}

// DeleteContent 删除消息
// @Summary 删除消息
// @Tags 消息
// @Param id path string true "消息ID"
// @Success 204 "no content"
// @Failure 404 {object} map[string]string
// @Router /api/contents/{id} [delete]
func (h *Handler) DeleteContent(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.contentSvc.Delete(c.Request.Context(), id); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(204)
}
