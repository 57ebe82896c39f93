package layout

// 该文件定义布局结果模型：模板经 Build 解析后得到的、可直接渲染的元素集。
// 所有坐标与尺寸均为画布像素（float64），由布局阶段一次性算出，
// 渲染阶段不再做任何布局决策。

// Result 保存一次布局的完整输出。Elements 的顺序即绘制顺序
// （背景最先绘制，之后严格按模板组件数组顺序叠放）。
type Result struct {
	Width       float64    `json:"width"`
	Height      float64    `json:"height"`
	DebugGuides bool       `json:"debugGuides,omitempty"`
	Background  Background `json:"background"`
	Elements    []Element  `json:"elements"`
}

// Background 描述整幅背景：可选的图片 data URI 与回退纯色，
// 以及供组件默认值引用的主色/深色。
type Background struct {
	Image     string `json:"image,omitempty"`
	Color     string `json:"color,omitempty"`
	MainColor string `json:"mainColor,omitempty"`
	DarkColor string `json:"darkColor,omitempty"`
}

// Box 是解析后的绝对像素盒。
type Box struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Element 是十种组件解析结果的封闭集合。渲染器对其做穷尽类型分派。
type Element interface {
	Bounds() Box
}

// Layer 对应 background_layer：纯色填充，或把共享背景图裁剪到本盒。
type Layer struct {
	ID      string  `json:"id,omitempty"`
	Rect    Box     `json:"rect"`
	Fill    string  `json:"fill"`
	Opacity float64 `json:"opacity"`
	Image   string  `json:"image,omitempty"` // 非空时裁剪该图片而非纯色填充
}

// Text 对应 text_only：若干行文本，整块在盒内垂直居中。
type Text struct {
	ID     string   `json:"id,omitempty"`
	Rect   Box      `json:"rect"`
	Lines  []string `json:"lines"`
	Family string   `json:"family"`
	Size   float64  `json:"size"`
	Color  string   `json:"color"`
	Align  string   `json:"align"` // left / center / right
}

// TextBlock 对应 text_block：带底色面板的 标题+正文 组合。
// 两者均可缺省；同时存在时标题占上方 40%、正文占下方 60%。
type TextBlock struct {
	ID           string  `json:"id,omitempty"`
	Rect         Box     `json:"rect"`
	Fill         string  `json:"fill"`
	Header       string  `json:"header,omitempty"`
	HeaderSize   float64 `json:"headerSize,omitempty"`
	HeaderFamily string  `json:"headerFamily,omitempty"`
	HeaderColor  string  `json:"headerColor,omitempty"`
	Body         string  `json:"body,omitempty"`
	BodySize     float64 `json:"bodySize,omitempty"`
	BodyFamily   string  `json:"bodyFamily,omitempty"`
	BodyColor    string  `json:"bodyColor,omitempty"`
	Align        string  `json:"align"`
}

// Image 对应 image：按 cover/contain 策略放置的引用图片。
type Image struct {
	ID   string `json:"id,omitempty"`
	Rect Box    `json:"rect"`
	Href string `json:"href"`
	Fit  string `json:"fit"` // cover / contain
}

// Mockup 对应 smartphone_mockup：圆角机身 + 内缩屏幕区，
// 外加按样式开关叠加的标签条与品牌角标。
type Mockup struct {
	ID           string   `json:"id,omitempty"`
	Rect         Box      `json:"rect"`
	FrameColor   string   `json:"frameColor"`
	Radius       float64  `json:"radius"`
	Screen       Box      `json:"screen"`
	ScreenRadius float64  `json:"screenRadius"`
	Image        string   `json:"image,omitempty"` // 空则屏幕填黑
	Accent       string   `json:"accent"`
	Label        string   `json:"label,omitempty"` // 非空时绘制标签条
	Badge        bool     `json:"badge,omitempty"`
	BadgeMark    string   `json:"badgeMark,omitempty"`
	BadgeLines   []string `json:"badgeLines,omitempty"`
}

// Button 对应 cta_button：圆角按钮 + 居中标签。
// Scale 为标签的统一缩放系数（见 Estimator.GroupScale），<=1。
type Button struct {
	ID     string  `json:"id,omitempty"`
	Rect   Box     `json:"rect"`
	Fill   string  `json:"fill"`
	Radius float64 `json:"radius"`
	Label  string  `json:"label"`
	Family string  `json:"family"`
	Size   float64 `json:"size"`
	Color  string  `json:"color"`
	Scale  float64 `json:"scale"`
}

// Logo 对应 logo：外部图片，或无输入时的确定性回退标识
// （底色块 + 标识文字 + 可选副标题行）。
type Logo struct {
	ID       string   `json:"id,omitempty"`
	Rect     Box      `json:"rect"`
	Image    string   `json:"image,omitempty"` // 非空时直接绘制图片
	Fill     string   `json:"fill"`
	Mark     string   `json:"mark"`
	MarkSize float64  `json:"markSize"`
	Subtitle []string `json:"subtitle,omitempty"`
}

// Price 对应 price_display：整数/小数/周期 三段式价格，
// 大-中-小三级字号，整体按 Scale 统一缩放以保持比例。
type Price struct {
	ID      string  `json:"id,omitempty"`
	Rect    Box     `json:"rect"`
	Integer string  `json:"integer"`
	Decimal string  `json:"decimal,omitempty"`
	Period  string  `json:"period,omitempty"`
	Family  string  `json:"family"`
	Size    float64 `json:"size"` // 整数部分字号；小数 0.5x、周期 0.35x
	Color   string  `json:"color"`
	Align   string  `json:"align"`
	Scale   float64 `json:"scale"`
}

// LogoText 对应 logo_text_group：水平排布的 标识+文字，整组统一缩放。
type LogoText struct {
	ID      string  `json:"id,omitempty"`
	Rect    Box     `json:"rect"`
	Image   string  `json:"image,omitempty"` // 空则绘制回退标识块
	Fill    string  `json:"fill"`
	Mark    string  `json:"mark"`
	Text    string  `json:"text"`
	Family  string  `json:"family"`
	Size    float64 `json:"size"`
	Color   string  `json:"color"`
	LogoDim float64 `json:"logoDim"` // 标识边长（正方形，取盒高）
	Gap     float64 `json:"gap"`
	Scale   float64 `json:"scale"`
	Recolor string  `json:"recolor,omitempty"` // 对单色 SVG 标识的重着色
}

// BulletRow 是一条清单行；Lines 为折行结果（不折行时恰一行）。
type BulletRow struct {
	Lines []string `json:"lines"`
}

// Bullets 对应 bullet_list：勾选符 + 文本的竖排清单。
// 内容为空的行在布局阶段即被剔除，不占据行距。
type Bullets struct {
	ID      string      `json:"id,omitempty"`
	Rect    Box         `json:"rect"`
	Rows    []BulletRow `json:"rows"`
	Family  string      `json:"family"`
	Size    float64     `json:"size"`
	Color   string      `json:"color"`
	Spacing float64     `json:"spacing"`
}

func (e Layer) Bounds() Box     { return e.Rect }
func (e Text) Bounds() Box      { return e.Rect }
func (e TextBlock) Bounds() Box { return e.Rect }
func (e Image) Bounds() Box     { return e.Rect }
func (e Mockup) Bounds() Box    { return e.Rect }
func (e Button) Bounds() Box    { return e.Rect }
func (e Logo) Bounds() Box      { return e.Rect }
func (e Price) Bounds() Box     { return e.Rect }
func (e LogoText) Bounds() Box  { return e.Rect }
func (e Bullets) Bounds() Box   { return e.Rect }
