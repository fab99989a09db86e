package model

// AllSites 站点下拉框中表示“不过滤站点”的取值
const AllSites = "ALL"

// Outcome 发射结果（class 列：1=成功，0=失败）
type Outcome int

const (
	OutcomeFailure Outcome = 0
	OutcomeSuccess Outcome = 1
)

// Label 结果标签（饼图/坐标轴使用）
func (o Outcome) Label() string {
	if o == OutcomeSuccess {
		return "Success"
	}
	return "Failure"
}

// LaunchRecord 一次发射记录，加载后不可变
type LaunchRecord struct {
	RowNo                  int     `json:"rowNo"` // 源文件行号（1-based，含表头）
	LaunchSite             string  `json:"launchSite"`
	PayloadMassKg          float64 `json:"payloadMassKg"`
	BoosterVersionCategory string  `json:"boosterVersionCategory"`
	OutcomeClass           Outcome `json:"class"`
}

// IsSuccess 是否发射成功
func (r LaunchRecord) IsSuccess() bool {
	return r.OutcomeClass == OutcomeSuccess
}

// MatchesSite 站点过滤谓词（ALL 匹配全部）
func (r LaunchRecord) MatchesSite(site string) bool {
	return site == AllSites || r.LaunchSite == site
}
