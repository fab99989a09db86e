package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"spacexdash/internal/model"
)

// StatusResponse 系统状态响应
type StatusResponse struct {
	Source        string             `json:"source"`        // 数据集路径
	Records       int                `json:"records"`       // 记录数
	Sites         []string           `json:"sites"`         // 数据集站点（首次出现顺序）
	PayloadBounds model.PayloadRange `json:"payloadBounds"` // 数据集载荷范围
	Sessions      int                `json:"sessions"`      // 活跃会话数
}

// GetStatus 获取系统状态
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, StatusResponse{
		Source:        h.store.Source(),
		Records:       h.store.Count(),
		Sites:         h.store.Sites(),
		PayloadBounds: h.store.PayloadBounds(),
		Sessions:      h.sessions.Len(),
	})
}
