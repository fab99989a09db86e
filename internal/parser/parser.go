package parser

import (
	"fmt"
	"path/filepath"
	"strings"

	"spacexdash/internal/model"
)

// Options 解析选项
type Options struct {
	// Sheet XLSX 工作表名，为空时读取第一个工作表
	Sheet string
}

// Result 解析结果
type Result struct {
	Source  string               `json:"source"`
	Format  Format               `json:"format"`
	Records []model.LaunchRecord `json:"-"`
	Skipped int                  `json:"skipped"` // 跳过的空行数
}

// DetectFormat 根据扩展名识别文件格式
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV, nil
	case ".xlsx", ".xlsm":
		return FormatXLSX, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
}

// ParseFile 读取数据文件；任何行错误都会使整个加载失败
func ParseFile(path string, opts Options) (*Result, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	var rows [][]string
	switch format {
	case FormatCSV:
		rows, err = readCSVFile(path)
	case FormatXLSX:
		rows, err = readXLSXFile(path, opts.Sheet)
	}
	if err != nil {
		return nil, err
	}

	records, skipped, err := ParseRows(rows)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}

	return &Result{
		Source:  path,
		Format:  format,
		Records: records,
		Skipped: skipped,
	}, nil
}

// ParseRows 解析表格行（第一行为表头）
func ParseRows(rows [][]string) ([]model.LaunchRecord, int, error) {
	if len(rows) == 0 {
		return nil, 0, ErrNoHeader
	}

	mapping, err := MapColumns(rows[0])
	if err != nil {
		return nil, 0, err
	}

	records := make([]model.LaunchRecord, 0, len(rows)-1)
	skipped := 0
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if isBlankRow(row) {
			skipped++
			continue
		}
		record, err := parseRow(row, mapping, i+1)
		if err != nil {
			return nil, skipped, err
		}
		records = append(records, record)
	}
	return records, skipped, nil
}

func parseRow(row []string, mapping ColumnMapping, rowNo int) (model.LaunchRecord, error) {
	site := mapping.cell(row, ColumnLaunchSite)
	if site == "" {
		return model.LaunchRecord{}, &RowError{RowNo: rowNo, Column: ColumnLaunchSite, Err: fmt.Errorf("empty launch site")}
	}

	payload, err := parsePayload(mapping.cell(row, ColumnPayloadMass))
	if err != nil {
		return model.LaunchRecord{}, &RowError{RowNo: rowNo, Column: ColumnPayloadMass, Err: err}
	}

	class, err := parseClass(mapping.cell(row, ColumnClass))
	if err != nil {
		return model.LaunchRecord{}, &RowError{RowNo: rowNo, Column: ColumnClass, Err: err}
	}

	return model.LaunchRecord{
		RowNo:                  rowNo,
		LaunchSite:             site,
		PayloadMassKg:          payload,
		BoosterVersionCategory: mapping.cell(row, ColumnBoosterVersion),
		OutcomeClass:           model.Outcome(class),
	}, nil
}
