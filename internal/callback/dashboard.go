package callback

import (
	"spacexdash/internal/calculator"
	"spacexdash/internal/chart"
	"spacexdash/internal/model"
)

// NewDashboard 注册页面的两组回调
//
//	site-dropdown  -> success-pie-chart, success-payload-scatter-chart
//	payload-slider -> success-payload-scatter-chart
func NewDashboard(calc *calculator.Calculator) *Dispatcher {
	d := NewDispatcher()

	pie := func(sel model.Selection) (chart.Figure, error) {
		return chart.NewPieFigure(sel.Site, calc.SiteOutcomes(sel.Site)), nil
	}
	scatter := func(sel model.Selection) (chart.Figure, error) {
		points := calc.PayloadScatter(sel.Site, sel.Payload)
		return chart.NewScatterFigure(sel.Site, sel.Payload, points), nil
	}

	d.Register(SiteDropdownID, chart.PieChartID, pie)
	d.Register(SiteDropdownID, chart.ScatterChartID, scatter)
	d.Register(PayloadSliderID, chart.ScatterChartID, scatter)
	return d
}
