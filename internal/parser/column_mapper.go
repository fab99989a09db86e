package parser

import (
	"fmt"
	"strconv"
	"strings"
)

// MapColumns 将表头映射到必需列；同名列以第一次出现为准
func MapColumns(headers []string) (ColumnMapping, error) {
	mapping := make(ColumnMapping, len(RequiredColumns))
	for idx, h := range headers {
		col := NormalizeColumnName(h)
		if col == "" {
			continue
		}
		for _, required := range RequiredColumns {
			if col != required {
				continue
			}
			if _, seen := mapping[required]; !seen {
				mapping[required] = idx
			}
		}
	}

	var missing []string
	for _, required := range RequiredColumns {
		if _, ok := mapping[required]; !ok {
			missing = append(missing, strconv.Quote(required))
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}
	return mapping, nil
}

// cell 按列映射取单元格，越界视为空
func (m ColumnMapping) cell(row []string, column string) string {
	idx, ok := m[column]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
