package content

import "testing"

// TestGetMissing 验证缺失键与 nil 表都解析为空串。
func TestGetMissing(t *testing.T) {
	var nilMap Map
	if got := nilMap.Get("x"); got != "" {
		t.Fatalf("nil 表期望空串，实际 %q", got)
	}
	m := Map{"a": "1"}
	if got := m.Get("b"); got != "" {
		t.Fatalf("缺失键期望空串，实际 %q", got)
	}
	if got := m.Get("a"); got != "1" {
		t.Fatalf("存在键取值不符: %q", got)
	}
}

// TestResolve 验证 source 为空与内容插值。
func TestResolve(t *testing.T) {
	m := Map{"cta": "Solo ${price} al mese", "price": "9,99€"}
	if got := m.Resolve(""); got != "" {
		t.Fatalf("空 source 期望空串，实际 %q", got)
	}
	if got := m.Resolve("cta"); got != "Solo 9,99€ al mese" {
		t.Fatalf("插值结果不符: %q", got)
	}
}

// TestInterpolateKeepsUnknown 验证未知占位符原样保留，便于排查漏项。
func TestInterpolateKeepsUnknown(t *testing.T) {
	m := Map{"a": "A"}
	if got := Interpolate("${a} ${missing} ${ }", m); got != "A ${missing} ${ }" {
		t.Fatalf("占位符处理不符: %q", got)
	}
	if got := Interpolate("plain", nil); got != "plain" {
		t.Fatalf("无占位符文本应原样返回: %q", got)
	}
}
