package layout

import (
	"math"
	"testing"

	"github.com/ByLCY/manifesto/template"
)

func num(v float64) template.Dimension {
	return template.Dimension{Set: true, Number: &v}
}

func str(s string) template.Dimension {
	return template.Dimension{Set: true, Text: s}
}

// TestResolveBoxPercent 验证百分比维度各自相对于对应的画布轴解析。
func TestResolveBoxPercent(t *testing.T) {
	g := template.Geometry{
		X:      str("10%"),
		Y:      str("10%"),
		Width:  str("50%"),
		Height: str("25%"),
	}
	box, err := ResolveBox(g, 1080, 1350)
	if err != nil {
		t.Fatalf("解析几何失败: %v", err)
	}
	want := Box{X: 108, Y: 135, Width: 540, Height: 337.5}
	if box != want {
		t.Fatalf("百分比解析结果不符: 期望 %+v，实际 %+v", want, box)
	}
}

// TestResolveBoxMixed 验证数字、px 后缀与纯数字字符串混用。
func TestResolveBoxMixed(t *testing.T) {
	g := template.Geometry{
		X:      num(100),
		Y:      str("200px"),
		Width:  str("300"),
		Height: num(400.5),
	}
	box, err := ResolveBox(g, 1080, 1350)
	if err != nil {
		t.Fatalf("解析几何失败: %v", err)
	}
	if box.X != 100 || box.Y != 200 || box.Width != 300 || math.Abs(box.Height-400.5) > 1e-9 {
		t.Fatalf("混合维度解析结果不符: %+v", box)
	}
}

// TestResolveBoxDefaults 验证缺省维度：x/y 取 0，width/height 取整条画布轴。
func TestResolveBoxDefaults(t *testing.T) {
	box, err := ResolveBox(template.Geometry{}, 1080, 1350)
	if err != nil {
		t.Fatalf("解析缺省几何失败: %v", err)
	}
	want := Box{X: 0, Y: 0, Width: 1080, Height: 1350}
	if box != want {
		t.Fatalf("缺省几何不符: 期望 %+v，实际 %+v", want, box)
	}
}

// TestResolveBoxMalformed 验证无法解析的维度字符串必须报错而非取零。
func TestResolveBoxMalformed(t *testing.T) {
	for _, bad := range []string{"abc", "10vw", "%", "px", "12%%"} {
		g := template.Geometry{Width: str(bad)}
		if _, err := ResolveBox(g, 1080, 1350); err == nil {
			t.Fatalf("维度 %q 期望报错，实际通过", bad)
		}
	}
}
