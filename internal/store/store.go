package store

import (
	"errors"
	"fmt"
	"sort"

	"spacexdash/internal/model"
	"spacexdash/internal/parser"
)

// ErrEmptyDataset 数据文件没有任何记录
var ErrEmptyDataset = errors.New("dataset has no records")

// Store 进程级只读数据集上下文
//
// 启动时构建一次，之后只读，可被任意数量的请求并发读取，无需加锁。
type Store struct {
	source     string
	records    []model.LaunchRecord
	minPayload float64
	maxPayload float64
	sites      []string // 首次出现顺序
}

// New 由已解析的记录构建数据集（会复制一份记录）
func New(source string, records []model.LaunchRecord) (*Store, error) {
	if len(records) == 0 {
		return nil, ErrEmptyDataset
	}

	s := &Store{
		source:     source,
		records:    append([]model.LaunchRecord(nil), records...),
		minPayload: records[0].PayloadMassKg,
		maxPayload: records[0].PayloadMassKg,
	}

	seen := make(map[string]struct{})
	for _, r := range s.records {
		if r.PayloadMassKg < s.minPayload {
			s.minPayload = r.PayloadMassKg
		}
		if r.PayloadMassKg > s.maxPayload {
			s.maxPayload = r.PayloadMassKg
		}
		if _, ok := seen[r.LaunchSite]; !ok {
			seen[r.LaunchSite] = struct{}{}
			s.sites = append(s.sites, r.LaunchSite)
		}
	}

	return s, nil
}

// Load 读取数据文件并构建数据集；任何错误都应终止启动
func Load(path string, opts parser.Options) (*Store, error) {
	res, err := parser.ParseFile(path, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset: %w", err)
	}
	s, err := New(path, res.Records)
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset %s: %w", path, err)
	}
	return s, nil
}

// Source 数据来源路径
func (s *Store) Source() string {
	return s.source
}

// Records 返回全部记录（调用方不得修改）
func (s *Store) Records() []model.LaunchRecord {
	return s.records
}

// Count 记录总数
func (s *Store) Count() int {
	return len(s.records)
}

// PayloadBounds 数据集中观测到的载荷最小/最大值
func (s *Store) PayloadBounds() model.PayloadRange {
	return model.PayloadRange{Low: s.minPayload, High: s.maxPayload}
}

// Sites 数据集中出现过的站点（首次出现顺序）
func (s *Store) Sites() []string {
	return append([]string(nil), s.sites...)
}

// SortedSites 按名称排序的站点列表
func (s *Store) SortedSites() []string {
	out := s.Sites()
	sort.Strings(out)
	return out
}

// HasSite 站点是否出现在数据集中
func (s *Store) HasSite(site string) bool {
	for _, v := range s.sites {
		if v == site {
			return true
		}
	}
	return false
}

// InitialSelection 会话初始选择：全部站点 + 数据集载荷范围
func (s *Store) InitialSelection() model.Selection {
	return model.Selection{
		Site:    model.AllSites,
		Payload: s.PayloadBounds(),
	}
}
