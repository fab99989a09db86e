package parser

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// NormalizeColumnName 规范化列名：去除首尾空白、BOM，压缩连续空白，统一小写
func NormalizeColumnName(name string) string {
	name = strings.TrimPrefix(name, "\ufeff")
	name = strings.TrimSpace(name)
	name = whitespaceRe.ReplaceAllString(name, " ")
	return strings.ToLower(name)
}

// parsePayload 解析载荷质量（kg），必须为非负有限数
func parsePayload(value string) (float64, error) {
	value = strings.ReplaceAll(strings.TrimSpace(value), ",", "")
	if value == "" {
		return 0, fmt.Errorf("empty payload")
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid payload %q: %w", value, err)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0, fmt.Errorf("payload out of range: %v", f)
	}
	return f, nil
}

// parseClass 解析结果列，只接受 0/1（兼容 "1.0" 这种表格导出的写法）
func parseClass(value string) (int, error) {
	value = strings.TrimSpace(value)
	switch value {
	case "0", "0.0":
		return 0, nil
	case "1", "1.0":
		return 1, nil
	}
	return 0, fmt.Errorf("class must be 0 or 1, got %q", value)
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// FormatPayload 载荷质量的文本形式，整数不带小数位
func FormatPayload(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
