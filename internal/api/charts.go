package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"spacexdash/internal/chart"
	"spacexdash/internal/model"
)

func (h *Handler) pieFigure(sel model.Selection) chart.Figure {
	return chart.NewPieFigure(sel.Site, h.calc.SiteOutcomes(sel.Site))
}

func (h *Handler) scatterFigure(sel model.Selection) chart.Figure {
	return chart.NewScatterFigure(sel.Site, sel.Payload, h.calc.PayloadScatter(sel.Site, sel.Payload))
}

// GetPieFigure 饼图数据
// GET /api/charts/pie?site=
func (h *Handler) GetPieFigure(c *gin.Context) {
	h.writeFigure(c, h.pieFigure)
}

// GetScatterFigure 散点图数据
// GET /api/charts/scatter?site=&low=&high=
func (h *Handler) GetScatterFigure(c *gin.Context) {
	h.writeFigure(c, h.scatterFigure)
}

// GetPieSVG 饼图 SVG
// GET /api/charts/pie.svg?site=
func (h *Handler) GetPieSVG(c *gin.Context) {
	h.writeSVG(c, h.pieFigure)
}

// GetScatterSVG 散点图 SVG
// GET /api/charts/scatter.svg?site=&low=&high=
func (h *Handler) GetScatterSVG(c *gin.Context) {
	h.writeSVG(c, h.scatterFigure)
}

func (h *Handler) writeFigure(c *gin.Context, build func(model.Selection) chart.Figure) {
	sel, err := h.selectionFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, build(sel))
}

func (h *Handler) writeSVG(c *gin.Context, build func(model.Selection) chart.Figure) {
	sel, err := h.selectionFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	svg, err := chart.RenderSVGString(build(sel))
	if err != nil {
		h.logger.Error("render svg failed", "site", sel.Site, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "渲染失败: " + err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/svg+xml; charset=utf-8", []byte(svg))
}
