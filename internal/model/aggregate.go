package model

// OutcomeSlice 饼图的一个扇区（标签 + 计数）
type OutcomeSlice struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// ScatterPoint 散点图的一个点
type ScatterPoint struct {
	PayloadMassKg          float64 `json:"payloadMassKg"`
	OutcomeClass           Outcome `json:"class"`
	BoosterVersionCategory string  `json:"boosterVersionCategory"`
	LaunchSite             string  `json:"launchSite"`
}

// ScatterSeries 按助推器版本分组后的散点序列
type ScatterSeries struct {
	Name   string         `json:"name"`
	Points []ScatterPoint `json:"points"`
}
