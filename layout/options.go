package layout

import (
	"github.com/ByLCY/manifesto/content"
	"github.com/ByLCY/manifesto/fonts"
)

// BuildOptions 是 Build 的可选输入。零值可用：没有内容表时所有
// content 键都解析为空串，没有字体表时字宽比取族类默认值。
type BuildOptions struct {
	// Content 为渲染期注入的内容表（文案与图片 data URI）。
	Content content.Map

	// Background 为整幅背景与配色基调；MainColor 会作为若干组件的默认底色。
	Background Background

	// Fonts 提供字体族的字宽校准；传 nil 时使用内置默认比例。
	Fonts *fonts.Table
}

func (o BuildOptions) estimator() *Estimator {
	if o.Fonts == nil {
		return &Estimator{}
	}
	return &Estimator{Ratios: o.Fonts.Calibration()}
}
