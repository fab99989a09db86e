package exporter

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/xuri/excelize/v2"

	"spacexdash/internal/calculator"
	"spacexdash/internal/model"
	"spacexdash/internal/parser"
)

// 工作表名称
const (
	SheetLaunches = "Launches"
	SheetOutcomes = "Outcomes"
)

// ContentType xlsx 响应类型
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var launchHeaders = []string{"Launch Site", "Payload Mass (kg)", "Booster Version Category", "class"}

// Exporter 将当前选择下的发射记录导出为 Excel
type Exporter struct {
	calc *calculator.Calculator
}

// NewExporter 创建导出器
func NewExporter(calc *calculator.Calculator) *Exporter {
	return &Exporter{calc: calc}
}

// Export 生成工作簿：Launches 与散点图是同一组点，Outcomes 为饼图数据
func (e *Exporter) Export(sel model.Selection) (*excelize.File, error) {
	sel.Payload = sel.Payload.Normalize()
	points := e.calc.PayloadScatter(sel.Site, sel.Payload)

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetLaunches); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	header, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("header style: %w", err)
	}

	if err := writeLaunches(f, header, points); err != nil {
		_ = f.Close()
		return nil, err
	}

	if _, err := f.NewSheet(SheetOutcomes); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("create sheet %s: %w", SheetOutcomes, err)
	}
	if err := writeOutcomes(f, header, sel, e.calc.SiteOutcomes(sel.Site)); err != nil {
		_ = f.Close()
		return nil, err
	}

	f.SetActiveSheet(0)
	return f, nil
}

func writeLaunches(f *excelize.File, header int, points []model.ScatterPoint) error {
	if err := writeHeader(f, SheetLaunches, header, launchHeaders); err != nil {
		return err
	}
	for i, p := range points {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []interface{}{p.LaunchSite, p.PayloadMassKg, p.BoosterVersionCategory, int(p.OutcomeClass)}
		if err := f.SetSheetRow(SheetLaunches, cell, &row); err != nil {
			return fmt.Errorf("write %s row %d: %w", SheetLaunches, i+2, err)
		}
	}
	return f.SetColWidth(SheetLaunches, "A", "C", 24)
}

func writeOutcomes(f *excelize.File, header int, sel model.Selection, slices []model.OutcomeSlice) error {
	first := "Outcome"
	if sel.IsAllSites() {
		first = "Launch Site"
	}
	if err := writeHeader(f, SheetOutcomes, header, []string{first, "Count"}); err != nil {
		return err
	}
	for i, s := range slices {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []interface{}{s.Label, s.Count}
		if err := f.SetSheetRow(SheetOutcomes, cell, &row); err != nil {
			return fmt.Errorf("write %s row %d: %w", SheetOutcomes, i+2, err)
		}
	}
	return f.SetColWidth(SheetOutcomes, "A", "A", 24)
}

func writeHeader(f *excelize.File, sheet string, style int, headers []string) error {
	row := make([]interface{}, len(headers))
	for i, h := range headers {
		row[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &row); err != nil {
		return fmt.Errorf("write %s header: %w", sheet, err)
	}
	last, _ := excelize.CoordinatesToCellName(len(headers), 1)
	return f.SetCellStyle(sheet, "A1", last, style)
}

// FileName 导出文件名，例如 spacex-launches-ccafs-lc-40-0-10000.xlsx
func FileName(sel model.Selection) string {
	rng := sel.Payload.Normalize()
	return fmt.Sprintf("spacex-launches-%s-%s-%s.xlsx",
		slug(sel.Site),
		parser.FormatPayload(rng.Low),
		parser.FormatPayload(rng.High),
	)
}

// ContentDisposition 下载响应头，同时给出 ASCII 与 UTF-8 文件名
func ContentDisposition(sel model.Selection) string {
	name := FileName(sel)
	return fmt.Sprintf("attachment; filename=%q; filename*=UTF-8''%s", name, url.PathEscape(name))
}

func slug(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		default:
			if !dash && b.Len() > 0 {
				b.WriteByte('-')
				dash = true
			}
		}
	}
	out := strings.TrimSuffix(b.String(), "-")
	if out == "" {
		return "all"
	}
	return out
}
