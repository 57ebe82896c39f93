package svg

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ByLCY/manifesto/content"
	"github.com/ByLCY/manifesto/fonts"
	"github.com/ByLCY/manifesto/layout"
	"github.com/ByLCY/manifesto/template"
)

// renderBanner 是测试辅助：模板 JSON + 内容表 → SVG 文本。
func renderBanner(t *testing.T, src string, cm content.Map, table *fonts.Table) string {
	t.Helper()
	doc, err := template.ParseBytes([]byte(src))
	if err != nil {
		t.Fatalf("解析模板失败: %v", err)
	}
	result, err := layout.Build(doc, layout.BuildOptions{Content: cm, Fonts: table})
	if err != nil {
		t.Fatalf("构建布局失败: %v", err)
	}
	out, err := NewRenderer(table).Render(result)
	if err != nil {
		t.Fatalf("渲染失败: %v", err)
	}
	return string(out)
}

const ctaTemplate = `{
	"width": 1080, "height": 1350,
	"components": [
		{"type": "background_layer", "id": "base"},
		{"type": "cta_button", "id": "cta", "content_source": "cta",
		 "geometry": {"x": "10%", "y": 1200, "width": "80%", "height": 80}}
	]
}`

// TestRenderEndToEnd 验证完整流水线：模板与文案进、含画布与文案的 SVG 出。
func TestRenderEndToEnd(t *testing.T) {
	out := renderBanner(t, ctaTemplate, content.Map{"cta": "ABBONATI ORA"}, nil)
	if !strings.Contains(out, "<svg") || !strings.Contains(out, "</svg>") {
		t.Fatalf("输出不是完整的 SVG 文档:\n%s", out)
	}
	if !strings.Contains(out, `viewBox="0 0 1080 1350"`) {
		t.Fatalf("缺少 viewBox:\n%s", out)
	}
	if !strings.Contains(out, "ABBONATI ORA") {
		t.Fatalf("缺少按钮文案:\n%s", out)
	}
	// svgo 的浮点输出保留两位小数。
	if !strings.Contains(out, `rx="25.00"`) {
		t.Fatalf("缺少圆角按钮矩形:\n%s", out)
	}
}

// TestRenderImageFractionalGeometry 验证百分比几何算出的小数像素
// 原样进入 <image> 属性，不被取整截断。
func TestRenderImageFractionalGeometry(t *testing.T) {
	src := `{"width": 1350, "height": 600, "components": [
		{"type": "image", "content_source": "pic",
		 "geometry": {"width": "25%", "height": 200}}
	]}`
	out := renderBanner(t, src, content.Map{"pic": "data:image/png;base64,AAAA"}, nil)
	if !strings.Contains(out, `width="337.5"`) {
		t.Fatalf("小数宽度被截断:\n%s", out)
	}
	if !strings.Contains(out, `xlink:href="data:image/png;base64,AAAA"`) {
		t.Fatalf("缺少图片引用:\n%s", out)
	}
}

// TestRenderDeterministic 验证同一布局结果两次渲染逐字节相同。
func TestRenderDeterministic(t *testing.T) {
	doc, err := template.ParseBytes([]byte(ctaTemplate))
	if err != nil {
		t.Fatalf("解析模板失败: %v", err)
	}
	result, err := layout.Build(doc, layout.BuildOptions{Content: content.Map{"cta": "ABBONATI ORA"}})
	if err != nil {
		t.Fatalf("构建布局失败: %v", err)
	}
	r := NewRenderer(nil)
	a, err := r.Render(result)
	if err != nil {
		t.Fatalf("首次渲染失败: %v", err)
	}
	b, err := r.Render(result)
	if err != nil {
		t.Fatalf("二次渲染失败: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Fatalf("两次渲染结果不一致")
	}
}

// TestRenderPreservesOrder 验证元素按布局顺序出现在文档中。
func TestRenderPreservesOrder(t *testing.T) {
	src := `{"width": 400, "height": 400, "components": [
		{"type": "text_only", "content_source": "a"},
		{"type": "text_only", "content_source": "b"},
		{"type": "text_only", "content_source": "c"}
	]}`
	out := renderBanner(t, src, content.Map{"a": "PRIMO", "b": "SECONDO", "c": "TERZO"}, nil)
	i, j, k := strings.Index(out, "PRIMO"), strings.Index(out, "SECONDO"), strings.Index(out, "TERZO")
	if i < 0 || j < 0 || k < 0 || !(i < j && j < k) {
		t.Fatalf("文案顺序不符: %d %d %d", i, j, k)
	}
}

// TestRenderEscapesText 验证文案中的 XML 特殊字符被转义。
func TestRenderEscapesText(t *testing.T) {
	src := `{"width": 400, "height": 400, "components": [
		{"type": "text_only", "content_source": "a"}
	]}`
	out := renderBanner(t, src, content.Map{"a": "Fibra & TV <subito>"}, nil)
	if !strings.Contains(out, "Fibra &amp; TV &lt;subito&gt;") {
		t.Fatalf("特殊字符未转义:\n%s", out)
	}
	if strings.Contains(out, "<subito>") {
		t.Fatalf("原始尖括号泄漏进文档")
	}
}

// TestRenderMockupClipIDs 验证屏幕裁剪路径按组件 id 命名，
// 无 id 的组件按元素序号取名且互不相同。
func TestRenderMockupClipIDs(t *testing.T) {
	src := `{"width": 1200, "height": 800, "components": [
		{"type": "smartphone_mockup", "id": "phone",
		 "geometry": {"x": 100, "y": 100, "width": 300, "height": 600}},
		{"type": "smartphone_mockup",
		 "geometry": {"x": 450, "y": 100, "width": 300, "height": 600}},
		{"type": "smartphone_mockup",
		 "geometry": {"x": 800, "y": 100, "width": 300, "height": 600}}
	]}`
	out := renderBanner(t, src, nil, nil)
	for _, id := range []string{"screen-clip-phone", "screen-clip-c1", "screen-clip-c2"} {
		attr := `id="` + id + `"`
		if strings.Count(out, attr) != 1 {
			t.Fatalf("裁剪路径 %s 应恰好出现一次:\n%s", id, out)
		}
	}
}

// TestRenderMockupDefaultLabel 验证只开 show_label 的样机渲染出默认标签条。
func TestRenderMockupDefaultLabel(t *testing.T) {
	src := `{"width": 800, "height": 800, "components": [
		{"type": "smartphone_mockup", "style": {"show_label": true},
		 "geometry": {"x": 100, "y": 100, "width": 300, "height": 600}}
	]}`
	out := renderBanner(t, src, nil, nil)
	if !strings.Contains(out, "SPECIALE") {
		t.Fatalf("缺少默认标签文案:\n%s", out)
	}
}

// TestRenderFontDefs 验证 @font-face 只为加载成功的字体输出，
// 且首次渲染后字体表被冻结。
func TestRenderFontDefs(t *testing.T) {
	table := fonts.NewTable()
	_ = table.Register(testFace("Oswald-Bold", "data:font/woff2;base64,AA=="))
	_ = table.Register(testFace("Broken-Face", ""))
	out := renderBanner(t, ctaTemplate, content.Map{"cta": "VAI"}, table)
	if strings.Count(out, "@font-face") != 1 {
		t.Fatalf("期望恰一条 @font-face，实际:\n%s", out)
	}
	if !strings.Contains(out, "Oswald Bold") {
		t.Fatalf("缺少已加载字体的声明")
	}
	if strings.Contains(out, "Broken Face") {
		t.Fatalf("未加载字体不应出现在文档中")
	}
	if !table.Frozen() {
		t.Fatalf("首次渲染后字体表应已冻结")
	}
	if err := table.Register(testFace("Late-Font", "x")); err == nil {
		t.Fatalf("渲染后注册字体期望报错")
	}
}

// testFace 是测试辅助：快速构造一个字体条目。
func testFace(name, uri string) fonts.Face {
	return fonts.Face{Name: name, DataURI: uri}
}

// TestRenderDebugGuides 验证调试开关输出虚线参考框。
func TestRenderDebugGuides(t *testing.T) {
	src := `{"width": 400, "height": 400, "debug_guides": true, "components": [
		{"type": "text_only", "content_source": "a"}
	]}`
	out := renderBanner(t, src, content.Map{"a": "X"}, nil)
	if !strings.Contains(out, "stroke-dasharray") {
		t.Fatalf("缺少调试参考线:\n%s", out)
	}
}

// TestRenderMinify 验证压缩产出仍是 SVG 且不大于原始产出。
func TestRenderMinify(t *testing.T) {
	doc, err := template.ParseBytes([]byte(ctaTemplate))
	if err != nil {
		t.Fatalf("解析模板失败: %v", err)
	}
	result, err := layout.Build(doc, layout.BuildOptions{Content: content.Map{"cta": "ABBONATI"}})
	if err != nil {
		t.Fatalf("构建布局失败: %v", err)
	}
	plain, err := NewRenderer(nil).Render(result)
	if err != nil {
		t.Fatalf("渲染失败: %v", err)
	}
	min, err := NewRendererWithOptions(Options{Minify: true}).Render(result)
	if err != nil {
		t.Fatalf("压缩渲染失败: %v", err)
	}
	if len(min) > len(plain) {
		t.Fatalf("压缩产出不应更大: %d > %d", len(min), len(plain))
	}
	if !strings.Contains(string(min), "<svg") {
		t.Fatalf("压缩产出不是 SVG")
	}
}

// TestRenderNilResult 验证空布局结果报错。
func TestRenderNilResult(t *testing.T) {
	if _, err := NewRenderer(nil).Render(nil); err == nil {
		t.Fatalf("空结果期望报错")
	}
}
