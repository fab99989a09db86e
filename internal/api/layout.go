package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"spacexdash/internal/callback"
	"spacexdash/internal/chart"
	"spacexdash/internal/config"
	"spacexdash/internal/model"
	"spacexdash/internal/parser"
)

// Option 下拉框选项
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Dropdown 站点下拉框定义
type Dropdown struct {
	ID          string   `json:"id"`
	Options     []Option `json:"options"`
	Value       string   `json:"value"`
	Placeholder string   `json:"placeholder"`
	Searchable  bool     `json:"searchable"`
}

// Slider 载荷区间滑块定义
type Slider struct {
	ID    string             `json:"id"`
	Min   float64            `json:"min"`
	Max   float64            `json:"max"`
	Step  float64            `json:"step"`
	Marks []chart.Tick       `json:"marks"`
	Value model.PayloadRange `json:"value"`
}

// Layout 页面结构：标题、控件与图表面板
type Layout struct {
	Title    string   `json:"title"`
	Dropdown Dropdown `json:"dropdown"`
	Slider   Slider   `json:"slider"`
	Charts   []string `json:"charts"`
}

func (h *Handler) buildLayout(dash config.DashboardConfig) Layout {
	options := []Option{{Label: dash.AllLabel, Value: model.AllSites}}

	sites := dash.Sites
	if len(sites) == 0 {
		sites = h.store.SortedSites()
	}
	for _, site := range sites {
		if !h.store.HasSite(site) {
			h.logger.Warn("configured site not present in dataset", "site", site, "source", h.store.Source())
		}
		options = append(options, Option{Label: site, Value: site})
	}

	var marks []chart.Tick
	if dash.MarkStep > 0 {
		for v := dash.SliderMin; v <= dash.SliderMax; v += dash.MarkStep {
			marks = append(marks, chart.Tick{Value: v, Label: parser.FormatPayload(v)})
		}
	}

	initial := h.store.InitialSelection()
	return Layout{
		Title: dash.Title,
		Dropdown: Dropdown{
			ID:          callback.SiteDropdownID,
			Options:     options,
			Value:       initial.Site,
			Placeholder: "Select a Launch Site here",
			Searchable:  true,
		},
		Slider: Slider{
			ID:    callback.PayloadSliderID,
			Min:   dash.SliderMin,
			Max:   dash.SliderMax,
			Step:  dash.SliderStep,
			Marks: marks,
			Value: initial.Payload,
		},
		Charts: []string{chart.PieChartID, chart.ScatterChartID},
	}
}

// GetLayout 获取控件定义
// GET /api/layout
func (h *Handler) GetLayout(c *gin.Context) {
	c.JSON(http.StatusOK, h.layout)
}
