package layout

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/ByLCY/manifesto/fonts"
)

// heightFraction 是高度方向的可用比例：字号不超过可用高度的 0.8，
// 给上伸部与下降部留出余量。
const heightFraction = 0.8

// Estimator 用经验字宽比估算文本占宽，并据此选字号或算缩放。
// 不做真实字形度量：估算只依赖 字符数 x 字号 x 每族宽度比，
// 结果对同一输入完全确定。
type Estimator struct {
	// Ratios 为 小写字体族名→字宽比 的校准表，通常来自 fonts.Table.Calibration。
	// 查不到的字体族按族类默认值处理。
	Ratios map[string]float64
}

// Ratio 返回 family 的字宽比。
func (e *Estimator) Ratio(family string) float64 {
	if e != nil && e.Ratios != nil {
		if r, ok := e.Ratios[strings.ToLower(family)]; ok && r > 0 {
			return r
		}
	}
	return fonts.RatioForFamily(family)
}

// TextWidth 估算 text 以 size 字号、family 字体排版时的像素宽度。
func (e *Estimator) TextWidth(text string, size float64, family string) float64 {
	return float64(utf8.RuneCountInString(text)) * size * e.Ratio(family)
}

// FitSize 为单行文本选取能放进 availW x availH 的最大整数字号。
// paddingRatio 是宽度方向的可用比例（如 0.9 表示两侧各留 5%）。
// 宽高两个上界取较小者，再收进 [minSize, maxSize]；空文本直接取 maxSize。
func (e *Estimator) FitSize(text string, availW, availH float64, family string, minSize, maxSize int, paddingRatio float64) int {
	n := utf8.RuneCountInString(text)
	if n == 0 {
		return maxSize
	}
	byWidth := math.Floor(availW * paddingRatio / (float64(n) * e.Ratio(family)))
	byHeight := math.Floor(availH * heightFraction)
	size := int(math.Min(byWidth, byHeight))
	if size > maxSize {
		return maxSize
	}
	if size < minSize {
		return minSize
	}
	return size
}

// Span 是组内的一段文本：字号与字体族可以各不相同（如价格的三段式）。
type Span struct {
	Text   string
	Size   float64
	Family string
}

// SpanWidth 估算单段文本的像素宽度。
func (e *Estimator) SpanWidth(s Span) float64 {
	return e.TextWidth(s.Text, s.Size, s.Family)
}

// GroupScale 计算把整组 spans 放进 availW 所需的统一缩放系数。
// marginRatio 是宽度方向的可用比例。组内各段比例关系不变，
// 放得下时返回 1（只缩不放）。
func (e *Estimator) GroupScale(spans []Span, availW, marginRatio float64) float64 {
	total := 0.0
	for _, s := range spans {
		total += e.SpanWidth(s)
	}
	if total <= 0 {
		return 1
	}
	scale := availW * marginRatio / total
	if scale >= 1 {
		return 1
	}
	return scale
}

// WrapText 按估算宽度对 text 做贪心折行：逐词累加，放不下另起一行。
// 单词本身超宽时独占一行（不拆词）。空白折叠由 strings.Fields 完成。
func (e *Estimator) WrapText(text string, maxWidth, size float64, family string) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		candidate := current + " " + word
		if e.TextWidth(candidate, size, family) <= maxWidth {
			current = candidate
			continue
		}
		lines = append(lines, current)
		current = word
	}
	return append(lines, current)
}
