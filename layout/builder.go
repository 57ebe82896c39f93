package layout

import (
	"fmt"
	"strings"

	"github.com/ByLCY/manifesto/template"
)

// 各组件的缺省样式。模板未写样式键时按此回填，
// 颜色基调与原版宣传图一致。
const (
	defaultPanelColor  = "#223047"
	defaultAccentColor = "#E4087C"
	defaultTextColor   = "#FFFFFF"
	defaultFrameColor  = "#1a1a1a"
	defaultButtonFill  = "#FFD700"
	defaultButtonText  = "#000000"

	defaultHeaderFamily = "Oswald Bold"
	defaultBodyFamily   = "Roboto Regular"
	defaultButtonFamily = "Roboto Bold"

	defaultMinFontSize = 10
	defaultMaxFontSize = 64

	// 文本组件宽度方向的可用比例缺省值。
	defaultPadding = 0.9

	// 三类成组文本的缩放余量：按钮更紧，价格与标识组稍宽。
	buttonMargin = 0.8
	groupMargin  = 0.9

	defaultMark  = "G+"
	defaultLabel = "SPECIALE"
)

// defaultSubtitle 是回退标识的副标题行。
var defaultSubtitle = []string{"CONTENUTI", "PREMIUM"}

type builder struct {
	opts BuildOptions
	est  *Estimator
	w, h float64
}

// Build 把模板与渲染期输入合成为已定位的元素列表。
// 组件按数组顺序逐个处理，顺序原样进入 Result.Elements（即绘制顺序）；
// 未知组件种类静默跳过，几何无法解析则整体报错。
func Build(doc *template.Document, opts BuildOptions) (*Result, error) {
	if doc == nil {
		return nil, fmt.Errorf("模板不能为空")
	}
	b := &builder{
		opts: opts,
		est:  opts.estimator(),
		w:    float64(doc.Width),
		h:    float64(doc.Height),
	}
	bg := opts.Background
	if bg.MainColor == "" {
		bg.MainColor = defaultPanelColor
	}
	if bg.Color == "" {
		bg.Color = bg.MainColor
	}
	result := &Result{
		Width:       b.w,
		Height:      b.h,
		DebugGuides: doc.DebugGuides,
		Background:  bg,
	}
	for i, comp := range doc.Components {
		if !comp.Type.Known() {
			continue
		}
		box, err := ResolveBox(comp.Geometry, b.w, b.h)
		if err != nil {
			return nil, fmt.Errorf("组件 %d（%s）几何无效: %w", i, comp.Type, err)
		}
		if el := b.buildComponent(comp, box, bg); el != nil {
			result.Elements = append(result.Elements, el)
		}
	}
	return result, nil
}

func (b *builder) buildComponent(comp template.Component, box Box, bg Background) Element {
	switch comp.Type {
	case template.KindBackgroundLayer:
		return b.buildLayer(comp, box, bg)
	case template.KindTextOnly:
		return b.buildText(comp, box)
	case template.KindTextBlock:
		return b.buildTextBlock(comp, box, bg)
	case template.KindImage:
		return b.buildImage(comp, box)
	case template.KindSmartphoneMockup:
		return b.buildMockup(comp, box)
	case template.KindCTAButton:
		return b.buildButton(comp, box)
	case template.KindLogo:
		return b.buildLogo(comp, box)
	case template.KindPriceDisplay:
		return b.buildPrice(comp, box)
	case template.KindLogoTextGroup:
		return b.buildLogoText(comp, box)
	case template.KindBulletList:
		return b.buildBullets(comp, box)
	}
	return nil
}

// resolve 取 source 对应的内容并完成插值；source 或内容缺失均得空串。
func (b *builder) resolve(source string) string {
	return b.opts.Content.Resolve(source)
}

func pick(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func (b *builder) buildLayer(comp template.Component, box Box, bg Background) Element {
	opacity := 1.0
	if comp.Style.Opacity != nil {
		opacity = *comp.Style.Opacity
	}
	layer := Layer{
		ID:      comp.ID,
		Rect:    box,
		Fill:    pick(comp.Style.Background, bg.MainColor),
		Opacity: opacity,
	}
	if comp.Style.UseBackgroundImage && bg.Image != "" {
		layer.Image = bg.Image
	}
	return layer
}

func (b *builder) buildText(comp template.Component, box Box) Element {
	text := b.resolve(comp.ContentSource)
	if text == "" {
		return nil
	}
	family := pick(comp.Style.FontFamily, defaultHeaderFamily)
	size := comp.Style.FontSize
	if size <= 0 {
		size = 24
	}
	if comp.Style.AutoSize {
		size = float64(b.est.FitSize(longestLine(text), box.Width, box.Height,
			family, b.minSize(comp.Style), b.maxSize(comp.Style), b.padding(comp.Style)))
	}
	return Text{
		ID:     comp.ID,
		Rect:   box,
		Lines:  strings.Split(text, "\n"),
		Family: family,
		Size:   size,
		Color:  pick(comp.Style.TextColor, defaultTextColor),
		Align:  pick(comp.Style.Alignment, "center"),
	}
}

// buildTextBlock 构造 标题+正文 面板。两段各自在自己的分区内自适应字号：
// 标题占上方 40%，正文占下方 60%；缺某一段时另一段独享整个盒。
func (b *builder) buildTextBlock(comp template.Component, box Box, bg Background) Element {
	header := b.resolve(comp.HeaderSource)
	body := b.resolve(comp.ContentSource)
	block := TextBlock{
		ID:    comp.ID,
		Rect:  box,
		Fill:  pick(comp.Style.Background, bg.MainColor),
		Align: pick(comp.Style.Alignment, "center"),
	}
	headerH, bodyH := box.Height*0.4, box.Height*0.6
	if header == "" {
		bodyH = box.Height
	}
	if body == "" {
		headerH = box.Height
	}
	if header != "" {
		block.Header = header
		block.HeaderFamily = pick(comp.Style.HeaderFamily, defaultHeaderFamily)
		block.HeaderColor = pick(comp.Style.HeaderColor, defaultTextColor)
		block.HeaderSize = float64(b.est.FitSize(longestLine(header), box.Width, headerH,
			block.HeaderFamily, b.minSize(comp.Style), b.maxSize(comp.Style), b.padding(comp.Style)))
	}
	if body != "" {
		block.Body = body
		block.BodyFamily = pick(comp.Style.FontFamily, defaultBodyFamily)
		block.BodyColor = pick(comp.Style.TextColor, defaultTextColor)
		block.BodySize = float64(b.est.FitSize(longestLine(body), box.Width, bodyH,
			block.BodyFamily, b.minSize(comp.Style), b.maxSize(comp.Style), b.padding(comp.Style)))
	}
	return block
}

func (b *builder) buildImage(comp template.Component, box Box) Element {
	href := b.resolve(comp.ContentSource)
	if href == "" {
		return nil
	}
	return Image{
		ID:   comp.ID,
		Rect: box,
		Href: href,
		Fit:  pick(comp.Style.Fit, "cover"),
	}
}

// buildMockup 构造手机样机：机身圆角矩形内缩 8px 得到屏幕区，
// 屏幕圆角比机身小 5px。标签条与品牌角标按样式开关叠加。
func (b *builder) buildMockup(comp template.Component, box Box) Element {
	radius := 30.0
	if comp.Style.BorderRadius != nil {
		radius = *comp.Style.BorderRadius
	}
	const inset = 8.0
	m := Mockup{
		ID:         comp.ID,
		Rect:       box,
		FrameColor: pick(comp.Style.FrameColor, defaultFrameColor),
		Radius:     radius,
		Screen: Box{
			X:      box.X + inset,
			Y:      box.Y + inset,
			Width:  box.Width - 2*inset,
			Height: box.Height - 2*inset,
		},
		ScreenRadius: radius - 5,
		Image:        b.resolve(comp.ContentSource),
		Accent:       pick(comp.Style.AccentColor, defaultAccentColor),
	}
	if comp.Style.ShowLabel {
		m.Label = pick(comp.Style.LabelText, b.resolve(comp.HeaderSource), defaultLabel)
	}
	if comp.Style.ShowBadge {
		m.Badge = true
		m.BadgeMark = pick(comp.Style.MarkText, defaultMark)
		m.BadgeLines = defaultSubtitle
		if len(comp.Style.SubtitleLines) > 0 {
			m.BadgeLines = comp.Style.SubtitleLines
		}
	}
	return m
}

func (b *builder) buildButton(comp template.Component, box Box) Element {
	label := b.resolve(comp.ContentSource)
	if label == "" {
		return nil
	}
	radius := 25.0
	if comp.Style.BorderRadius != nil {
		radius = *comp.Style.BorderRadius
	}
	family := pick(comp.Style.FontFamily, defaultButtonFamily)
	size := comp.Style.FontSize
	if size <= 0 {
		size = 18
	}
	return Button{
		ID:     comp.ID,
		Rect:   box,
		Fill:   pick(comp.Style.Background, defaultButtonFill),
		Radius: radius,
		Label:  label,
		Family: family,
		Size:   size,
		Color:  pick(comp.Style.TextColor, defaultButtonText),
		Scale:  b.est.GroupScale([]Span{{Text: label, Size: size, Family: family}}, box.Width, buttonMargin),
	}
}

func (b *builder) buildLogo(comp template.Component, box Box) Element {
	logo := Logo{
		ID:       comp.ID,
		Rect:     box,
		Image:    b.resolve(pick(comp.LogoSource, comp.ContentSource)),
		Fill:     pick(comp.Style.Background, defaultAccentColor),
		Mark:     pick(comp.Style.MarkText, defaultMark),
		MarkSize: 24,
	}
	if comp.Style.FontSize > 0 {
		logo.MarkSize = comp.Style.FontSize
	}
	if comp.Style.ShowSubtitle {
		logo.Subtitle = defaultSubtitle
		if len(comp.Style.SubtitleLines) > 0 {
			logo.Subtitle = comp.Style.SubtitleLines
		}
	}
	return logo
}

// buildPrice 把价格文本切成三段并计算整组缩放。
// 小数固定为整数字号的 0.5 倍、周期 0.35 倍，缩放时比例关系不变。
func (b *builder) buildPrice(comp template.Component, box Box) Element {
	raw := b.resolve(pick(comp.PriceSource, comp.ContentSource))
	if raw == "" {
		return nil
	}
	integer, decimal := ParsePrice(raw)
	family := pick(comp.Style.FontFamily, defaultHeaderFamily)
	size := comp.Style.FontSize
	if size <= 0 {
		size = 36
	}
	period := b.resolve(comp.PeriodSource)
	spans := []Span{
		{Text: integer, Size: size, Family: family},
		{Text: decimal, Size: size * 0.5, Family: family},
		{Text: period, Size: size * 0.35, Family: family},
	}
	return Price{
		ID:      comp.ID,
		Rect:    box,
		Integer: integer,
		Decimal: decimal,
		Period:  period,
		Family:  family,
		Size:    size,
		Color:   pick(comp.Style.TextColor, defaultTextColor),
		Align:   pick(comp.Style.Alignment, "left"),
		Scale:   b.est.GroupScale(spans, box.Width, groupMargin),
	}
}

// buildLogoText 构造水平的 标识+文字 组合：标识取盒高见方，
// 文字字号为盒高的 0.4 倍，间距 0.15 倍；整组按可用宽度统一缩放。
func (b *builder) buildLogoText(comp template.Component, box Box) Element {
	text := b.resolve(pick(comp.TextSource, comp.ContentSource))
	family := pick(comp.Style.FontFamily, defaultHeaderFamily)
	size := box.Height * 0.4
	logoDim := box.Height
	gap := box.Height * 0.15
	total := logoDim + gap + b.est.TextWidth(text, size, family)
	scale := 1.0
	if total > 0 {
		if s := box.Width * groupMargin / total; s < 1 {
			scale = s
		}
	}
	return LogoText{
		ID:      comp.ID,
		Rect:    box,
		Image:   b.resolve(comp.LogoSource),
		Fill:    pick(comp.Style.Background, defaultAccentColor),
		Mark:    pick(comp.Style.MarkText, defaultMark),
		Text:    text,
		Family:  family,
		Size:    size,
		Color:   pick(comp.Style.TextColor, defaultTextColor),
		LogoDim: logoDim,
		Gap:     gap,
		Scale:   scale,
		Recolor: comp.Style.Recolor,
	}
}

// buildBullets 逐项解析清单内容；解析为空的行直接剔除，
// 开启折行时按估算宽度做贪心折行（为勾选符预留缩进）。
func (b *builder) buildBullets(comp template.Component, box Box) Element {
	family := pick(comp.Style.FontFamily, defaultBodyFamily)
	size := comp.Style.FontSize
	if size <= 0 {
		size = 16
	}
	lineSpacing := comp.Style.LineSpacing
	if lineSpacing <= 0 {
		lineSpacing = 1.5
	}
	var rows []BulletRow
	for _, item := range comp.Items {
		text := b.opts.Content.Resolve(item)
		if strings.TrimSpace(text) == "" {
			continue
		}
		if comp.Style.Wrap {
			rows = append(rows, BulletRow{Lines: b.est.WrapText(text, box.Width-size*1.5, size, family)})
		} else {
			rows = append(rows, BulletRow{Lines: []string{text}})
		}
	}
	if len(rows) == 0 {
		return nil
	}
	return Bullets{
		ID:      comp.ID,
		Rect:    box,
		Rows:    rows,
		Family:  family,
		Size:    size,
		Color:   pick(comp.Style.TextColor, defaultTextColor),
		Spacing: size * lineSpacing,
	}
}

func (b *builder) minSize(s template.Style) int {
	if s.MinFontSize > 0 {
		return int(s.MinFontSize)
	}
	return defaultMinFontSize
}

func (b *builder) maxSize(s template.Style) int {
	if s.MaxFontSize > 0 {
		return int(s.MaxFontSize)
	}
	return defaultMaxFontSize
}

func (b *builder) padding(s template.Style) float64 {
	if s.Padding != nil && *s.Padding > 0 {
		return *s.Padding
	}
	return defaultPadding
}

// longestLine 返回多行文本中最长的一行（按字符数），自适应字号以它为准。
func longestLine(text string) string {
	lines := strings.Split(text, "\n")
	longest := lines[0]
	for _, l := range lines[1:] {
		if len([]rune(l)) > len([]rune(longest)) {
			longest = l
		}
	}
	return longest
}
