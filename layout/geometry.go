package layout

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ByLCY/manifesto/template"
)

// ResolveBox 把组件的原始几何解析为绝对像素盒。
// 数值按像素直取；字符串支持 "N%"（相对对应画布轴）与 "Npx" 两种后缀。
// x/y 缺省为 0，width/height 缺省为整条画布轴——这样未写几何的组件
// 自然铺满画布。无法解析的字符串是模板错误，立即报错而不是悄悄取零。
func ResolveBox(g template.Geometry, canvasW, canvasH float64) (Box, error) {
	x, err := resolveDim(g.X, canvasW, 0)
	if err != nil {
		return Box{}, fmt.Errorf("x: %w", err)
	}
	y, err := resolveDim(g.Y, canvasH, 0)
	if err != nil {
		return Box{}, fmt.Errorf("y: %w", err)
	}
	w, err := resolveDim(g.Width, canvasW, canvasW)
	if err != nil {
		return Box{}, fmt.Errorf("width: %w", err)
	}
	h, err := resolveDim(g.Height, canvasH, canvasH)
	if err != nil {
		return Box{}, fmt.Errorf("height: %w", err)
	}
	return Box{X: x, Y: y, Width: w, Height: h}, nil
}

// resolveDim 解析单个维度。reference 是该维度对应的画布轴长，
// fallback 是维度缺省时的取值。
func resolveDim(d template.Dimension, reference, fallback float64) (float64, error) {
	if !d.Set {
		return fallback, nil
	}
	if d.Number != nil {
		return *d.Number, nil
	}
	text := strings.TrimSpace(d.Text)
	if text == "" {
		return fallback, nil
	}
	if strings.HasSuffix(text, "%") {
		pct, err := strconv.ParseFloat(strings.TrimSuffix(text, "%"), 64)
		if err != nil {
			return 0, fmt.Errorf("无法解析百分比维度 %q", d.Text)
		}
		return reference * pct / 100, nil
	}
	if strings.HasSuffix(text, "px") {
		px, err := strconv.ParseFloat(strings.TrimSuffix(text, "px"), 64)
		if err != nil {
			return 0, fmt.Errorf("无法解析像素维度 %q", d.Text)
		}
		return px, nil
	}
	if v, err := strconv.ParseFloat(text, 64); err == nil {
		return v, nil
	}
	return 0, fmt.Errorf("无法解析维度 %q（仅支持数字、N%% 或 Npx）", d.Text)
}
