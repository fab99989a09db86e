package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"spacexdash/internal/exporter"
)

// Export 导出当前选择下的记录
// GET /api/export?site=&low=&high=
func (h *Handler) Export(c *gin.Context) {
	sel, err := h.selectionFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	f, err := h.exporter.Export(sel)
	if err != nil {
		h.logger.Error("export failed", "site", sel.Site, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "导出失败: " + err.Error()})
		return
	}
	defer f.Close()

	c.Header("Content-Disposition", exporter.ContentDisposition(sel))
	c.Header("Content-Type", exporter.ContentType)
	if err := f.Write(c.Writer); err != nil {
		h.logger.Error("write export failed", "error", err)
	}
}
