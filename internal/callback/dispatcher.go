package callback

import (
	"errors"
	"fmt"

	"spacexdash/internal/chart"
	"spacexdash/internal/model"
)

// ErrUnknownControl 未注册的控件
var ErrUnknownControl = errors.New("unknown control")

// Handler 由当前选择计算一个输出位的图表
type Handler func(sel model.Selection) (chart.Figure, error)

// Output 一个输出位的完整替换内容
type Output struct {
	Figure chart.Figure `json:"figure"`
	SVG    string       `json:"svg"`
}

type binding struct {
	slot    string
	handler Handler
}

// Dispatcher 控件 -> 处理函数 -> 输出位 的显式绑定表
type Dispatcher struct {
	controls []string
	bindings map[string][]binding
	slots    []string
	handlers map[string]Handler
}

// NewDispatcher 创建空绑定表
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		bindings: make(map[string][]binding),
		handlers: make(map[string]Handler),
	}
}

// Register 将处理函数绑定到控件，结果写入 slot；同一 slot 只保留一个处理函数
func (d *Dispatcher) Register(control, slot string, h Handler) {
	if _, ok := d.bindings[control]; !ok {
		d.controls = append(d.controls, control)
	}
	d.bindings[control] = append(d.bindings[control], binding{slot: slot, handler: h})

	if _, ok := d.handlers[slot]; !ok {
		d.slots = append(d.slots, slot)
	}
	d.handlers[slot] = h
}

// Controls 已注册的控件（注册顺序）
func (d *Dispatcher) Controls() []string {
	return append([]string(nil), d.controls...)
}

// Slots 已注册的输出位（注册顺序）
func (d *Dispatcher) Slots() []string {
	return append([]string(nil), d.slots...)
}

// SlotsFor 控件变更时会被刷新的输出位
func (d *Dispatcher) SlotsFor(control string) []string {
	var out []string
	for _, b := range d.bindings[control] {
		out = append(out, b.slot)
	}
	return out
}

// Dispatch 同步执行绑定到 control 的全部处理函数
func (d *Dispatcher) Dispatch(control string, sel model.Selection) (map[string]Output, error) {
	bs, ok := d.bindings[control]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownControl, control)
	}
	out := make(map[string]Output, len(bs))
	for _, b := range bs {
		o, err := run(b.handler, sel)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", b.slot, err)
		}
		out[b.slot] = o
	}
	return out, nil
}

// DispatchAll 执行全部输出位（首次渲染）
func (d *Dispatcher) DispatchAll(sel model.Selection) (map[string]Output, error) {
	out := make(map[string]Output, len(d.slots))
	for _, slot := range d.slots {
		o, err := run(d.handlers[slot], sel)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", slot, err)
		}
		out[slot] = o
	}
	return out, nil
}

func run(h Handler, sel model.Selection) (Output, error) {
	fig, err := h(sel)
	if err != nil {
		return Output{}, err
	}
	svg, err := chart.RenderSVGString(fig)
	if err != nil {
		return Output{}, err
	}
	return Output{Figure: fig, SVG: svg}, nil
}
