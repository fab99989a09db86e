package api

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"spacexdash/internal/model"
)

// selectionFromQuery 解析 ?site=&low=&high=；缺省为全部站点与数据集载荷范围
func (h *Handler) selectionFromQuery(c *gin.Context) (model.Selection, error) {
	sel := h.store.InitialSelection()

	if site := strings.TrimSpace(c.Query("site")); site != "" {
		sel.Site = site
	}

	for _, p := range []struct {
		key string
		dst *float64
	}{
		{"low", &sel.Payload.Low},
		{"high", &sel.Payload.High},
	} {
		raw, ok := c.GetQuery(p.key)
		if !ok {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return model.Selection{}, fmt.Errorf("参数 %s 不是有效数字: %q", p.key, raw)
		}
		*p.dst = v
	}

	sel.Payload = sel.Payload.Normalize()
	return sel, nil
}
