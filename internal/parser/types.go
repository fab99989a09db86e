package parser

import (
	"errors"
	"fmt"
)

// Format 数据文件格式
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// 必需列（按规范化后的列名匹配）
const (
	ColumnLaunchSite     = "launch site"
	ColumnPayloadMass    = "payload mass (kg)"
	ColumnBoosterVersion = "booster version category"
	ColumnClass          = "class"
)

// RequiredColumns 数据文件必须包含的列
var RequiredColumns = []string{
	ColumnLaunchSite,
	ColumnPayloadMass,
	ColumnBoosterVersion,
	ColumnClass,
}

var (
	// ErrMissingColumn 表头缺少必需列
	ErrMissingColumn = errors.New("missing required column")
	// ErrUnsupportedFormat 不支持的文件扩展名
	ErrUnsupportedFormat = errors.New("unsupported dataset format")
	// ErrNoHeader 文件没有表头行
	ErrNoHeader = errors.New("dataset has no header row")
)

// ColumnMapping 列映射结果：必需列 -> 列索引
type ColumnMapping map[string]int

// RowError 行级解析错误
type RowError struct {
	RowNo  int
	Column string
	Err    error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d: column %q: %v", e.RowNo, e.Column, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }
