package model

// PayloadRange 载荷区间，闭区间 [Low, High]
type PayloadRange struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

// Normalize 保证 Low <= High（反向区间交换端点）
func (r PayloadRange) Normalize() PayloadRange {
	if r.Low > r.High {
		return PayloadRange{Low: r.High, High: r.Low}
	}
	return r
}

// Contains 判断载荷是否落在闭区间内
func (r PayloadRange) Contains(v float64) bool {
	return r.Low <= v && v <= r.High
}

// Selection 一个会话当前的控件取值
type Selection struct {
	Site    string       `json:"site"`
	Payload PayloadRange `json:"payload"`
}

// IsAllSites 是否未选择具体站点
func (s Selection) IsAllSites() bool {
	return s.Site == AllSites
}
