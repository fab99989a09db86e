package chart

import (
	"fmt"

	"spacexdash/internal/calculator"
	"spacexdash/internal/model"
)

// Kind 图表类型
type Kind string

const (
	KindPie     Kind = "pie"
	KindScatter Kind = "scatter"
)

// 输出位（页面上的图表面板 ID）
const (
	PieChartID     = "success-pie-chart"
	ScatterChartID = "success-payload-scatter-chart"
)

// 散点图坐标轴文案
const (
	ScatterXLabel = "Payload Mass (kg)"
	ScatterYLabel = "Launch Outcome (1=Success, 0=Failure)"
)

// Tick 坐标轴刻度
type Tick struct {
	Value float64 `json:"value"`
	Label string  `json:"label"`
}

// OutcomeTicks 散点图 y 轴刻度：0=Failure，1=Success
var OutcomeTicks = []Tick{
	{Value: float64(model.OutcomeFailure), Label: model.OutcomeFailure.Label()},
	{Value: float64(model.OutcomeSuccess), Label: model.OutcomeSuccess.Label()},
}

// Figure 图表描述，完全替换页面上对应面板的内容
type Figure struct {
	ID     string                `json:"id"`
	Kind   Kind                  `json:"kind"`
	Title  string                `json:"title"`
	XLabel string                `json:"xLabel,omitempty"`
	YLabel string                `json:"yLabel,omitempty"`
	Slices []model.OutcomeSlice  `json:"slices,omitempty"`
	Series []model.ScatterSeries `json:"series,omitempty"`
	XRange *model.PayloadRange   `json:"xRange,omitempty"`
	YTicks []Tick                `json:"yTicks,omitempty"`
	Total  int                   `json:"total"`
	Empty  bool                  `json:"empty"`
}

// PieTitle 饼图标题
func PieTitle(site string) string {
	if site == model.AllSites {
		return "Total Success Launches by Site"
	}
	return fmt.Sprintf("Success vs Failure for %s", site)
}

// ScatterTitle 散点图标题
func ScatterTitle(site string) string {
	if site == model.AllSites {
		return "Payload vs. Launch Outcome for All Sites"
	}
	return fmt.Sprintf("Payload vs. Launch Outcome for %s", site)
}

// NewPieFigure 由饼图扇区构建图表描述
func NewPieFigure(site string, slices []model.OutcomeSlice) Figure {
	total := calculator.TotalCount(slices)
	return Figure{
		ID:     PieChartID,
		Kind:   KindPie,
		Title:  PieTitle(site),
		Slices: slices,
		Total:  total,
		Empty:  total == 0,
	}
}

// NewScatterFigure 由过滤后的散点构建图表描述，按助推器版本分组着色
func NewScatterFigure(site string, rng model.PayloadRange, points []model.ScatterPoint) Figure {
	r := rng.Normalize()
	return Figure{
		ID:     ScatterChartID,
		Kind:   KindScatter,
		Title:  ScatterTitle(site),
		XLabel: ScatterXLabel,
		YLabel: ScatterYLabel,
		Series: calculator.GroupByBooster(points),
		XRange: &r,
		YTicks: OutcomeTicks,
		Total:  len(points),
		Empty:  len(points) == 0,
	}
}
