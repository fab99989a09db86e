package calculator

import (
	"sort"

	"spacexdash/internal/model"
	"spacexdash/internal/store"
)

// Calculator 基于只读数据集的聚合计算器
type Calculator struct {
	store *store.Store
}

// NewCalculator 创建计算器
func NewCalculator(store *store.Store) *Calculator {
	return &Calculator{
		store: store,
	}
}

// SiteOutcomes 饼图聚合（见 SiteOutcomes 函数）
func (c *Calculator) SiteOutcomes(site string) []model.OutcomeSlice {
	return SiteOutcomes(c.store.Records(), site)
}

// PayloadScatter 散点图聚合（见 PayloadScatter 函数）
func (c *Calculator) PayloadScatter(site string, rng model.PayloadRange) []model.ScatterPoint {
	return PayloadScatter(c.store.Records(), site, rng)
}

// SiteOutcomes 按站点选择计算饼图扇区
//
// site 为 ALL：统计每个站点的成功次数，只包含至少成功一次的站点，按次数降序、站点名升序排列。
// site 为具体站点：统计该站点的失败/成功次数，依次输出 Failure、Success，计数为 0 的标签省略。
// 未知站点返回空切片。
func SiteOutcomes(records []model.LaunchRecord, site string) []model.OutcomeSlice {
	if site == model.AllSites {
		return successesBySite(records)
	}

	var failures, successes int
	for _, r := range records {
		if r.LaunchSite != site {
			continue
		}
		if r.IsSuccess() {
			successes++
		} else {
			failures++
		}
	}

	out := make([]model.OutcomeSlice, 0, 2)
	if failures > 0 {
		out = append(out, model.OutcomeSlice{Label: model.OutcomeFailure.Label(), Count: failures})
	}
	if successes > 0 {
		out = append(out, model.OutcomeSlice{Label: model.OutcomeSuccess.Label(), Count: successes})
	}
	return out
}

func successesBySite(records []model.LaunchRecord) []model.OutcomeSlice {
	counts := make(map[string]int)
	for _, r := range records {
		if r.IsSuccess() {
			counts[r.LaunchSite]++
		}
	}

	out := make([]model.OutcomeSlice, 0, len(counts))
	for site, n := range counts {
		out = append(out, model.OutcomeSlice{Label: site, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Label < out[j].Label
	})
	return out
}

// PayloadScatter 按载荷区间（闭区间）和站点过滤记录，保持数据集原有顺序
//
// 两个谓词作用于不同字段，先后顺序不影响结果。
func PayloadScatter(records []model.LaunchRecord, site string, rng model.PayloadRange) []model.ScatterPoint {
	out := make([]model.ScatterPoint, 0)
	for _, r := range records {
		if !rng.Contains(r.PayloadMassKg) {
			continue
		}
		if !r.MatchesSite(site) {
			continue
		}
		out = append(out, model.ScatterPoint{
			PayloadMassKg:          r.PayloadMassKg,
			OutcomeClass:           r.OutcomeClass,
			BoosterVersionCategory: r.BoosterVersionCategory,
			LaunchSite:             r.LaunchSite,
		})
	}
	return out
}

// GroupByBooster 按助推器版本分组，分组顺序为首次出现顺序
func GroupByBooster(points []model.ScatterPoint) []model.ScatterSeries {
	index := make(map[string]int)
	var out []model.ScatterSeries
	for _, p := range points {
		i, ok := index[p.BoosterVersionCategory]
		if !ok {
			i = len(out)
			index[p.BoosterVersionCategory] = i
			out = append(out, model.ScatterSeries{Name: p.BoosterVersionCategory})
		}
		out[i].Points = append(out[i].Points, p)
	}
	return out
}

// TotalCount 扇区计数之和
func TotalCount(slices []model.OutcomeSlice) int {
	total := 0
	for _, s := range slices {
		total += s.Count
	}
	return total
}
