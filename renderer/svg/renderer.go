// Package svg 实现 renderer.Renderer，把布局结果合成为单个 SVG 文档。
// 合成顺序固定：字体定义 → 整幅背景 → 元素（按布局给定顺序）→ 调试参考线。
// 同一布局结果多次渲染产出逐字节相同的文档。
package svg

import (
	"bytes"
	"fmt"

	svgo "github.com/ajstarks/svgo/float"
	"github.com/tdewolff/minify/v2"
	svgmin "github.com/tdewolff/minify/v2/svg"

	"github.com/ByLCY/manifesto/fonts"
	"github.com/ByLCY/manifesto/layout"
)

// Options 控制渲染器行为。
type Options struct {
	// Fonts 为待内嵌的字体表；nil 时不输出任何 @font-face。
	Fonts *fonts.Table

	// Minify 为 true 时对产出的 SVG 做压缩。
	Minify bool
}

// Renderer 把 layout.Result 渲染为 SVG 字节。可安全地并发使用。
type Renderer struct {
	fonts    *fonts.Table
	minifier *minify.M
}

// NewRenderer 创建使用指定字体表的渲染器。
func NewRenderer(table *fonts.Table) *Renderer {
	return NewRendererWithOptions(Options{Fonts: table})
}

// NewRendererWithOptions 按选项创建渲染器。
func NewRendererWithOptions(opts Options) *Renderer {
	r := &Renderer{fonts: opts.Fonts}
	if opts.Minify {
		m := minify.New()
		m.AddFunc("image/svg+xml", svgmin.Minify)
		r.minifier = m
	}
	return r
}

// Render 实现 renderer.Renderer。首次渲染时冻结字体表，
// 此后字体注册即报错，保证所有产出引用同一组字体。
func (r *Renderer) Render(res *layout.Result) ([]byte, error) {
	if res == nil {
		return nil, fmt.Errorf("布局结果不能为空")
	}
	if res.Width <= 0 || res.Height <= 0 {
		return nil, fmt.Errorf("画布尺寸无效: %gx%g", res.Width, res.Height)
	}
	if r.fonts != nil {
		r.fonts.Freeze()
	}

	buf := new(bytes.Buffer)
	c := svgo.New(buf)
	c.Start(res.Width, res.Height, fmt.Sprintf(`viewBox="0 0 %g %g"`, res.Width, res.Height))
	r.writeFontDefs(c)
	r.drawBackground(c, res)
	for i, el := range res.Elements {
		r.drawElement(c, res, el, i)
	}
	if res.DebugGuides {
		r.drawGuides(c, res)
	}
	c.End()

	out := buf.Bytes()
	if r.minifier != nil {
		min, err := r.minifier.Bytes("image/svg+xml", out)
		if err != nil {
			return nil, fmt.Errorf("压缩 SVG 失败: %w", err)
		}
		out = min
	}
	return out, nil
}

// writeFontDefs 输出 @font-face 声明。DataURI 为空的字体是上游加载失败的
// 条目，跳过其声明即回落到系统字体，渲染本身不失败。
func (r *Renderer) writeFontDefs(c *svgo.SVG) {
	if r.fonts == nil {
		return
	}
	var rules []string
	for _, f := range r.fonts.Faces() {
		if f.DataURI == "" {
			continue
		}
		rules = append(rules, fmt.Sprintf(
			"@font-face { font-family: '%s'; src: url(%s); font-weight: %s; }",
			f.Family, f.DataURI, f.Weight))
	}
	if len(rules) == 0 {
		return
	}
	c.Def()
	c.Style("text/css", rules...)
	c.DefEnd()
}

// drawBackground 绘制整幅底色，背景图存在时再整幅覆盖一层图片。
func (r *Renderer) drawBackground(c *svgo.SVG, res *layout.Result) {
	c.Rect(0, 0, res.Width, res.Height, fill(res.Background.Color))
	if res.Background.Image != "" {
		imageElem(c, 0, 0, res.Width, res.Height, res.Background.Image,
			`preserveAspectRatio="xMidYMid slice"`)
	}
}

// drawGuides 为每个元素叠加品红色虚线外框与中心十字，便于核对几何。
func (r *Renderer) drawGuides(c *svgo.SVG, res *layout.Result) {
	const guideStyle = `fill="none" stroke="#FF00FF" stroke-width="1" stroke-dasharray="4,4"`
	for _, el := range res.Elements {
		b := el.Bounds()
		c.Rect(b.X, b.Y, b.Width, b.Height, guideStyle)
		cx, cy := b.X+b.Width/2, b.Y+b.Height/2
		c.Line(cx-6, cy, cx+6, cy, `stroke="#FF00FF" stroke-width="1"`)
		c.Line(cx, cy-6, cx, cy+6, `stroke="#FF00FF" stroke-width="1"`)
	}
}

func fill(color string) string {
	return fmt.Sprintf(`fill="%s"`, color)
}
