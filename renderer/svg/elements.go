package svg

import (
	"encoding/xml"
	"fmt"

	svgo "github.com/ajstarks/svgo/float"

	"github.com/ByLCY/manifesto/layout"
)

// imageElem 直接写出 <image> 元素。svgo 的 Image 以整数接收宽高，
// 会把百分比几何算出的小数像素截断，这里保留 float64 原值；
// href 经 encoding/xml 转义后嵌入属性，与 svgo 的文本转义同一套路。
func imageElem(c *svgo.SVG, x, y, w, h float64, href string, attrs ...string) {
	fmt.Fprintf(c.Writer, `<image x="%g" y="%g" width="%g" height="%g"`, x, y, w, h)
	for _, a := range attrs {
		fmt.Fprint(c.Writer, " ", a)
	}
	fmt.Fprint(c.Writer, ` xlink:href="`)
	xml.EscapeText(c.Writer, []byte(href))
	fmt.Fprintln(c.Writer, `"/>`)
}

// 文本基线的垂直居中近似：基线落在中线下方 1/3 字号处。
// 这与宽度估算一样是经验值，不依赖真实字形度量。
const baselineShift = 3.0

// lineHeightFactor 为多行文本的行高系数。
const lineHeightFactor = 1.2

// drawElement 按元素类型分派到各绘制函数。分派是穷尽的：
// 布局阶段只会产出这十种元素。idx 是元素在文档内的序号，
// 供无 id 组件派生唯一的裁剪路径名。
func (r *Renderer) drawElement(c *svgo.SVG, res *layout.Result, el layout.Element, idx int) {
	switch e := el.(type) {
	case layout.Layer:
		r.drawLayer(c, res, e, idx)
	case layout.Text:
		r.drawText(c, e)
	case layout.TextBlock:
		r.drawTextBlock(c, e)
	case layout.Image:
		r.drawImage(c, e)
	case layout.Mockup:
		r.drawMockup(c, e, idx)
	case layout.Button:
		r.drawButton(c, e)
	case layout.Logo:
		r.drawLogo(c, e)
	case layout.Price:
		r.drawPrice(c, e)
	case layout.LogoText:
		r.drawLogoText(c, e)
	case layout.Bullets:
		r.drawBullets(c, e)
	}
}

// drawLayer 绘制背景层。带图片时把整幅背景图裁剪到本层的盒内，
// 使各层露出背景图的对应区域；否则按不透明度填纯色。
func (r *Renderer) drawLayer(c *svgo.SVG, res *layout.Result, e layout.Layer, idx int) {
	b := e.Rect
	if e.Image != "" {
		clip := "bg-clip-" + clipID(e.ID, idx)
		c.ClipPath(fmt.Sprintf(`id="%s"`, clip))
		c.Rect(b.X, b.Y, b.Width, b.Height)
		c.ClipEnd()
		imageElem(c, 0, 0, res.Width, res.Height, e.Image,
			fmt.Sprintf(`clip-path="url(#%s)"`, clip),
			`preserveAspectRatio="xMidYMid slice"`)
		return
	}
	c.Rect(b.X, b.Y, b.Width, b.Height, fill(e.Fill),
		fmt.Sprintf(`fill-opacity="%g"`, e.Opacity))
}

func (r *Renderer) drawText(c *svgo.SVG, e layout.Text) {
	drawLines(c, e.Rect, e.Lines, e.Family, e.Size, e.Color, e.Align)
}

// drawLines 在盒内垂直居中地绘制若干行文本。
func drawLines(c *svgo.SVG, b layout.Box, lines []string, family string, size float64, color, align string) {
	if len(lines) == 0 {
		return
	}
	lineHeight := size * lineHeightFactor
	startY := b.Y + (b.Height-lineHeight*float64(len(lines)))/2
	x, anchor := anchorX(b, align)
	for i, line := range lines {
		y := startY + lineHeight*float64(i) + lineHeight/2 + size/baselineShift
		c.Text(x, y, line, textAttrs(family, size, color, anchor))
	}
}

// drawTextBlock 绘制面板与 标题/正文。分区与布局阶段一致：
// 两段俱在时标题占上方 40%，否则在场的一段独享整个盒。
func (r *Renderer) drawTextBlock(c *svgo.SVG, e layout.TextBlock) {
	b := e.Rect
	c.Rect(b.X, b.Y, b.Width, b.Height, fill(e.Fill))
	headerH, bodyH := b.Height*0.4, b.Height*0.6
	if e.Header == "" {
		bodyH = b.Height
	}
	if e.Body == "" {
		headerH = b.Height
	}
	if e.Header != "" {
		area := layout.Box{X: b.X, Y: b.Y, Width: b.Width, Height: headerH}
		drawLines(c, area, []string{e.Header}, e.HeaderFamily, e.HeaderSize, e.HeaderColor, e.Align)
	}
	if e.Body != "" {
		area := layout.Box{X: b.X, Y: b.Y + b.Height - bodyH, Width: b.Width, Height: bodyH}
		drawLines(c, area, []string{e.Body}, e.BodyFamily, e.BodySize, e.BodyColor, e.Align)
	}
}

func (r *Renderer) drawImage(c *svgo.SVG, e layout.Image) {
	aspect := `preserveAspectRatio="xMidYMid slice"`
	if e.Fit == "contain" {
		aspect = `preserveAspectRatio="xMidYMid meet"`
	}
	b := e.Rect
	imageElem(c, b.X, b.Y, b.Width, b.Height, e.Href, aspect)
}

// drawMockup 绘制手机样机：机身圆角矩形、裁剪到圆角屏幕区的截图
// （无截图时填黑）、以及可选的标签条与品牌角标。屏幕内所有内容共用
// 同一个裁剪路径，溢出部分被圆角裁掉。
func (r *Renderer) drawMockup(c *svgo.SVG, e layout.Mockup, idx int) {
	b := e.Rect
	c.Roundrect(b.X, b.Y, b.Width, b.Height, e.Radius, e.Radius, fill(e.FrameColor))

	s := e.Screen
	clip := "screen-clip-" + clipID(e.ID, idx)
	c.ClipPath(fmt.Sprintf(`id="%s"`, clip))
	c.Roundrect(s.X, s.Y, s.Width, s.Height, e.ScreenRadius, e.ScreenRadius)
	c.ClipEnd()

	c.Group(fmt.Sprintf(`clip-path="url(#%s)"`, clip))
	if e.Image != "" {
		imageElem(c, s.X, s.Y, s.Width, s.Height, e.Image, `preserveAspectRatio="xMidYMid slice"`)
	} else {
		c.Rect(s.X, s.Y, s.Width, s.Height, `fill="#000000"`)
	}
	if e.Label != "" {
		barY := s.Y + s.Height - 60
		c.Rect(s.X, barY, s.Width, 25, fill(e.Accent))
		c.Text(s.X+s.Width/2, barY+17, e.Label, textAttrs("Oswald Bold", 14, "#FFFFFF", "middle"))
	}
	if e.Badge {
		badgeY := s.Y + s.Height - 30
		c.Rect(s.X, badgeY, s.Width, 30, fill(e.Accent))
		c.Text(s.X+10, badgeY+21, e.BadgeMark, textAttrs("Oswald Bold", 18, "#FFFFFF", "start"))
		for i, line := range e.BadgeLines {
			c.Text(s.X+44, badgeY+12+float64(i)*9, line, textAttrs("Roboto Bold", 7, "#FFFFFF", "start"))
		}
	}
	c.Gend()
}

// drawButton 绘制圆角按钮。标签以按钮中心为原点统一缩放，
// 保证长文案收进按钮而不改变字距比例。
func (r *Renderer) drawButton(c *svgo.SVG, e layout.Button) {
	b := e.Rect
	c.Roundrect(b.X, b.Y, b.Width, b.Height, e.Radius, e.Radius, fill(e.Fill))
	cx, cy := b.X+b.Width/2, b.Y+b.Height/2
	c.Gtransform(fmt.Sprintf("translate(%g %g) scale(%g)", cx, cy, e.Scale))
	c.Text(0, e.Size/baselineShift, e.Label, textAttrs(e.Family, e.Size, e.Color, "middle"))
	c.Gend()
}

// drawLogo 绘制标识。有图片时直接放置；否则输出确定性的回退标识：
// 底色块 + 标识文字，副标题行存在时标识上移让位。
func (r *Renderer) drawLogo(c *svgo.SVG, e layout.Logo) {
	b := e.Rect
	if e.Image != "" {
		imageElem(c, b.X, b.Y, b.Width, b.Height, e.Image, `preserveAspectRatio="xMidYMid meet"`)
		return
	}
	c.Roundrect(b.X, b.Y, b.Width, b.Height, 4, 4, fill(e.Fill))
	cx := b.X + b.Width/2
	markY := b.Y + b.Height/2 + e.MarkSize/baselineShift
	if len(e.Subtitle) > 0 {
		markY = b.Y + b.Height*0.38 + e.MarkSize/baselineShift
	}
	c.Text(cx, markY, e.Mark, textAttrs("Oswald Bold", e.MarkSize, "#FFFFFF", "middle"))
	subSize := e.MarkSize * 0.3
	for i, line := range e.Subtitle {
		y := b.Y + b.Height*0.62 + float64(i)*subSize*1.3 + subSize/baselineShift
		c.Text(cx, y, line, textAttrs("Roboto Bold", subSize, "#FFFFFF", "middle"))
	}
}

// drawPrice 以一个 text 元素内的三个 tspan 绘制三段式价格，
// 段间衔接交给查看器的文本排版，无需估宽定位。整体缩放以
// 对齐点为原点，不破坏对齐。
func (r *Renderer) drawPrice(c *svgo.SVG, e layout.Price) {
	b := e.Rect
	x, anchor := anchorX(b, e.Align)
	y := b.Y + b.Height/2 + e.Size/baselineShift
	c.Gtransform(fmt.Sprintf("translate(%g %g) scale(%g)", x, y, e.Scale))
	c.Textspan(0, 0, e.Integer, textAttrs(e.Family, e.Size, e.Color, anchor))
	if e.Decimal != "" {
		c.Span(e.Decimal, fmt.Sprintf(`font-size="%gpx"`, e.Size*0.5))
	}
	if e.Period != "" {
		c.Span(" "+e.Period, fmt.Sprintf(`font-size="%gpx"`, e.Size*0.35))
	}
	c.TextEnd()
	c.Gend()
}

// drawLogoText 绘制水平的 标识+文字 组合，整组从盒左上角起按
// 统一系数缩放。标识可按需重着色（仅对 SVG data URI 生效）。
func (r *Renderer) drawLogoText(c *svgo.SVG, e layout.LogoText) {
	b := e.Rect
	c.Gtransform(fmt.Sprintf("translate(%g %g) scale(%g)", b.X, b.Y, e.Scale))
	if e.Image != "" {
		href := e.Image
		if e.Recolor != "" {
			href = recolorDataURI(href, e.Recolor)
		}
		imageElem(c, 0, 0, e.LogoDim, e.LogoDim, href, `preserveAspectRatio="xMidYMid meet"`)
	} else {
		c.Roundrect(0, 0, e.LogoDim, e.LogoDim, 4, 4, fill(e.Fill))
		markSize := e.LogoDim * 0.4
		c.Text(e.LogoDim/2, e.LogoDim/2+markSize/baselineShift, e.Mark,
			textAttrs("Oswald Bold", markSize, "#FFFFFF", "middle"))
	}
	if e.Text != "" {
		c.Text(e.LogoDim+e.Gap, e.LogoDim/2+e.Size/baselineShift, e.Text,
			textAttrs(e.Family, e.Size, e.Color, "start"))
	}
	c.Gend()
}

// drawBullets 绘制勾选清单。每行一个勾选符，折行的后续行只缩进不带符号；
// 行距在布局阶段已定。
func (r *Renderer) drawBullets(c *svgo.SVG, e layout.Bullets) {
	b := e.Rect
	indent := e.Size * 1.5
	y := b.Y + e.Size
	for _, row := range e.Rows {
		for i, line := range row.Lines {
			if i == 0 {
				c.Text(b.X, y, "✓", textAttrs(e.Family, e.Size, e.Color, "start"))
			}
			c.Text(b.X+indent, y, line, textAttrs(e.Family, e.Size, e.Color, "start"))
			y += e.Spacing
		}
	}
}

// anchorX 把对齐方式换算为文本锚点与横坐标。
func anchorX(b layout.Box, align string) (float64, string) {
	switch align {
	case "left":
		return b.X, "start"
	case "right":
		return b.X + b.Width, "end"
	default:
		return b.X + b.Width/2, "middle"
	}
}

func textAttrs(family string, size float64, color, anchor string) string {
	return fmt.Sprintf(`font-family="%s" font-size="%gpx" fill="%s" text-anchor="%s"`,
		family, size, color, anchor)
}

// clipID 保证裁剪路径 id 非空且文档内唯一：
// 无 id 的组件按元素序号派生，避免两个匿名组件互相裁剪。
func clipID(id string, idx int) string {
	if id == "" {
		return fmt.Sprintf("c%d", idx)
	}
	return id
}
