package chart

import (
	"bytes"
	"fmt"
	"html"
	"io"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// 渲染尺寸
const (
	DefaultWidth  = 720
	DefaultHeight = 420
)

// EmptyMessage 空图表提示
const EmptyMessage = "No data for current selection"

// palette 与常见交互式图表库一致的分类色
var palette = []drawing.Color{
	drawing.ColorFromHex("636EFA"),
	drawing.ColorFromHex("EF553B"),
	drawing.ColorFromHex("00CC96"),
	drawing.ColorFromHex("AB63FA"),
	drawing.ColorFromHex("FFA15A"),
	drawing.ColorFromHex("19D3F3"),
	drawing.ColorFromHex("FF6692"),
	drawing.ColorFromHex("B6E880"),
}

func colorAt(i int) drawing.Color {
	return palette[i%len(palette)]
}

// seriesPalette 单扇区饼图由 go-chart 按调色板绘制整圆，忽略扇区自身样式
type seriesPalette struct {
	gochart.ColorPalette
}

func (seriesPalette) GetSeriesColor(index int) drawing.Color {
	return colorAt(index)
}

// svgText go-chart 原样写入 <text> 内容，站点与助推器名称来自请求和数据文件
func svgText(s string) string {
	return html.EscapeString(s)
}

// pointStyle 只画点、不画连线
func pointStyle(col drawing.Color) gochart.Style {
	return gochart.Style{
		StrokeWidth: gochart.Disabled,
		DotWidth:    5,
		DotColor:    col,
	}
}

// RenderSVG 将图表描述渲染为 SVG；空图表渲染为带标题的占位图，不返回错误
func RenderSVG(fig Figure, w io.Writer) error {
	if fig.Empty {
		return renderPlaceholder(fig.Title, EmptyMessage, w)
	}
	switch fig.Kind {
	case KindPie:
		return renderPie(fig, w)
	case KindScatter:
		return renderScatter(fig, w)
	}
	return fmt.Errorf("unknown chart kind %q", fig.Kind)
}

// RenderSVGString 渲染为 SVG 字符串（用于回调响应内嵌）
func RenderSVGString(fig Figure) (string, error) {
	var buf bytes.Buffer
	if err := RenderSVG(fig, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func renderPie(fig Figure, w io.Writer) error {
	values := make([]gochart.Value, 0, len(fig.Slices))
	for i, s := range fig.Slices {
		pct := 100 * float64(s.Count) / float64(fig.Total)
		values = append(values, gochart.Value{
			Value: float64(s.Count),
			Label: svgText(fmt.Sprintf("%s: %d (%.1f%%)", s.Label, s.Count, pct)),
			Style: gochart.Style{
				FillColor:   colorAt(i),
				StrokeColor: drawing.ColorWhite,
				StrokeWidth: 2,
			},
		})
	}

	pie := gochart.PieChart{
		Title:        svgText(fig.Title),
		ColorPalette: seriesPalette{gochart.DefaultColorPalette},
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Background: gochart.Style{
			Padding: gochart.Box{Top: 48, Left: 16, Right: 16, Bottom: 16},
		},
		Values: values,
	}
	if err := pie.Render(gochart.SVG, w); err != nil {
		return fmt.Errorf("render pie chart: %w", err)
	}
	return nil
}

func renderScatter(fig Figure, w io.Writer) error {
	series := make([]gochart.Series, 0, len(fig.Series))
	for i, s := range fig.Series {
		xs := make([]float64, len(s.Points))
		ys := make([]float64, len(s.Points))
		for j, p := range s.Points {
			xs[j] = p.PayloadMassKg
			ys[j] = float64(p.OutcomeClass)
		}
		name := s.Name
		if name == "" {
			name = "(unknown)"
		}
		series = append(series, gochart.ContinuousSeries{
			Name:    svgText(name),
			XValues: xs,
			YValues: ys,
			Style:   pointStyle(colorAt(i)),
		})
	}

	lo, hi := 0.0, 1.0
	if fig.XRange != nil {
		lo, hi = fig.XRange.Low, fig.XRange.High
	}
	lo, hi = padRange(lo, hi)

	yTicks := make([]gochart.Tick, 0, len(fig.YTicks))
	for _, t := range fig.YTicks {
		yTicks = append(yTicks, gochart.Tick{Value: t.Value, Label: svgText(t.Label)})
	}

	ch := gochart.Chart{
		Title:  svgText(fig.Title),
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Background: gochart.Style{
			Padding: gochart.Box{Top: 48, Left: 16, Right: 16, Bottom: 16},
		},
		XAxis: gochart.XAxis{
			Name:  svgText(fig.XLabel),
			Range: &gochart.ContinuousRange{Min: lo, Max: hi},
		},
		YAxis: gochart.YAxis{
			Name:  svgText(fig.YLabel),
			Range: &gochart.ContinuousRange{Min: -0.25, Max: 1.25},
			Ticks: yTicks,
		},
		Series: series,
	}
	ch.Elements = []gochart.Renderable{gochart.Legend(&ch)}

	if err := ch.Render(gochart.SVG, w); err != nil {
		return fmt.Errorf("render scatter chart: %w", err)
	}
	return nil
}

// padRange 避免零宽度区间（单点或 low == high）导致坐标轴无法绘制
func padRange(lo, hi float64) (float64, float64) {
	if hi-lo >= 1 {
		return lo, hi
	}
	lo -= 500
	if lo < 0 {
		lo = 0
	}
	return lo, hi + 500
}

func renderPlaceholder(title, message string, w io.Writer) error {
	r, err := gochart.SVG(DefaultWidth, DefaultHeight)
	if err != nil {
		return fmt.Errorf("create svg renderer: %w", err)
	}
	font, err := gochart.GetDefaultFont()
	if err != nil {
		return fmt.Errorf("load default font: %w", err)
	}
	r.SetFont(font)

	r.SetFillColor(drawing.ColorWhite)
	r.SetStrokeColor(drawing.ColorWhite)
	r.MoveTo(0, 0)
	r.LineTo(DefaultWidth, 0)
	r.LineTo(DefaultWidth, DefaultHeight)
	r.LineTo(0, DefaultHeight)
	r.Close()
	r.FillStroke()

	r.SetFontColor(drawing.ColorBlack)
	r.SetFontSize(14)
	tb := r.MeasureText(title)
	r.Text(svgText(title), (DefaultWidth-tb.Width())/2, 32)

	r.SetFontColor(drawing.ColorFromHex("888888"))
	r.SetFontSize(12)
	mb := r.MeasureText(message)
	r.Text(svgText(message), (DefaultWidth-mb.Width())/2, DefaultHeight/2)

	return r.Save(w)
}
