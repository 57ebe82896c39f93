package template

import (
	"strings"
	"testing"
)

// TestParseDocument 验证最小模板能解析出画布尺寸与组件序列。
func TestParseDocument(t *testing.T) {
	src := `{
		"width": 1080,
		"height": 1350,
		"components": [
			{"type": "text_only", "id": "title", "content_source": "headline",
			 "geometry": {"x": "10%", "y": 100, "width": "80%", "height": "200px"},
			 "style": {"auto_size": true, "max_font_size": 72}},
			{"type": "cta_button", "content_source": "cta"}
		]
	}`
	doc, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("解析模板失败: %v", err)
	}
	if doc.Width != 1080 || doc.Height != 1350 {
		t.Fatalf("画布尺寸不符: %dx%d", doc.Width, doc.Height)
	}
	if len(doc.Components) != 2 {
		t.Fatalf("组件数量不符: %d", len(doc.Components))
	}
	title := doc.Components[0]
	if title.Type != KindTextOnly || title.ContentSource != "headline" {
		t.Fatalf("首组件解析不符: %+v", title)
	}
	if !title.Geometry.X.Set || title.Geometry.X.Text != "10%" {
		t.Fatalf("字符串维度应原样保留: %+v", title.Geometry.X)
	}
	if title.Geometry.Y.Number == nil || *title.Geometry.Y.Number != 100 {
		t.Fatalf("数字维度应保留为数字: %+v", title.Geometry.Y)
	}
	if !title.Style.AutoSize || title.Style.MaxFontSize != 72 {
		t.Fatalf("样式解析不符: %+v", title.Style)
	}
	if doc.Components[1].Geometry.X.Set {
		t.Fatalf("未声明的维度不应置位")
	}
}

// TestParseRejectsBadDimension 验证几何维度既非数字又非字符串时在解码期报错。
func TestParseRejectsBadDimension(t *testing.T) {
	src := `{"width": 100, "height": 100, "components": [
		{"type": "text_only", "geometry": {"x": true}}
	]}`
	if _, err := Parse(strings.NewReader(src)); err == nil {
		t.Fatalf("布尔维度期望解码报错")
	}
}

// TestParseRejectsBadCanvas 验证非正画布尺寸被拒绝。
func TestParseRejectsBadCanvas(t *testing.T) {
	for _, src := range []string{
		`{"width": 0, "height": 100, "components": []}`,
		`{"width": 100, "height": -5, "components": []}`,
		`{"components": []}`,
	} {
		if _, err := Parse(strings.NewReader(src)); err == nil {
			t.Fatalf("模板 %s 期望报错", src)
		}
	}
}

// TestKindKnown 验证封闭组件集的判定。
func TestKindKnown(t *testing.T) {
	for _, k := range []Kind{
		KindBackgroundLayer, KindTextBlock, KindTextOnly, KindImage,
		KindSmartphoneMockup, KindCTAButton, KindLogo, KindPriceDisplay,
		KindLogoTextGroup, KindBulletList,
	} {
		if !k.Known() {
			t.Fatalf("%s 应属于已知组件集", k)
		}
	}
	if Kind("hologram").Known() {
		t.Fatalf("未知种类不应判定为已知")
	}
}
