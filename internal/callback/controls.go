package callback

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"spacexdash/internal/model"
)

// 页面控件 ID
const (
	SiteDropdownID  = "site-dropdown"
	PayloadSliderID = "payload-slider"
)

// ErrInvalidValue 控件取值格式错误
var ErrInvalidValue = errors.New("invalid control value")

// ApplyControl 将控件原始取值写入选择
//
// 站点取值不做枚举校验：未知站点只会得到空图表。
// 载荷区间必须是两个数字，反向区间会被交换。
func ApplyControl(sel *model.Selection, control string, raw json.RawMessage) error {
	switch control {
	case SiteDropdownID:
		var site string
		if err := json.Unmarshal(raw, &site); err != nil {
			return fmt.Errorf("%w: %s expects a string: %v", ErrInvalidValue, control, err)
		}
		site = strings.TrimSpace(site)
		if site == "" {
			site = model.AllSites
		}
		sel.Site = site
		return nil
	case PayloadSliderID:
		var bounds []float64
		if err := json.Unmarshal(raw, &bounds); err != nil {
			return fmt.Errorf("%w: %s expects [low, high]: %v", ErrInvalidValue, control, err)
		}
		if len(bounds) != 2 {
			return fmt.Errorf("%w: %s expects 2 values, got %d", ErrInvalidValue, control, len(bounds))
		}
		sel.Payload = model.PayloadRange{Low: bounds[0], High: bounds[1]}.Normalize()
		return nil
	}
	return fmt.Errorf("%w: %s", ErrUnknownControl, control)
}
