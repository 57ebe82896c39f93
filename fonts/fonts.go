package fonts

import (
	"fmt"
	"strings"
	"sync"
)

// 字宽估算的经验常数：窄体（condensed 类）字体每字符约 0.55 倍字号宽，
// 其余约 0.60 倍。这是按字体族类别给出的默认校准值，可在注册 Face 时
// 用 Ratio 字段按字体覆盖。
const (
	CondensedRatio = 0.55
	DefaultRatio   = 0.60
)

// Face 描述一款已由上游加载完成的字体：引擎只消费 data URI，
// 不做任何文件 I/O。DataURI 为空表示该字体加载失败，渲染时静默跳过
// 其 @font-face 声明并回落到系统字体。
type Face struct {
	Name    string  // 资源名，如 "Oswald-Bold"
	Family  string  // CSS font-family，如 "Oswald Bold"
	Weight  string  // "normal" / "bold"
	DataURI string  // data:font/woff2;base64,...；空表示未加载成功
	Ratio   float64 // 每字符宽度与字号之比；<=0 时按字体族类别取默认值
}

// Table 保存一次性注入、随后冻结的字体表。冻结后可被多个渲染并发只读；
// 冻结前的 Register 不保证并发安全（约定：填充必须在首次渲染前完成）。
type Table struct {
	mu     sync.Mutex
	faces  []Face
	index  map[string]int // by Family
	frozen bool
}

// NewTable 创建空字体表。
func NewTable() *Table {
	return &Table{index: map[string]int{}}
}

// Register 注册一款字体。重复的 Family 后注册者生效；冻结后注册返回错误。
func (t *Table) Register(face Face) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.frozen {
		return fmt.Errorf("字体表已冻结，无法再注册 %s", face.Name)
	}
	if face.Family == "" {
		face.Family = familyFromName(face.Name)
	}
	if face.Weight == "" {
		face.Weight = weightFromName(face.Name)
	}
	if face.Ratio <= 0 {
		face.Ratio = RatioForFamily(face.Family)
	}
	if i, ok := t.index[face.Family]; ok {
		t.faces[i] = face
		return nil
	}
	t.index[face.Family] = len(t.faces)
	t.faces = append(t.faces, face)
	return nil
}

// RegisterAssets 以 名称→data URI 的映射批量注册（CLI/服务端的便捷入口）。
func (t *Table) RegisterAssets(assets map[string]string) error {
	for name, uri := range assets {
		if err := t.Register(Face{Name: name, DataURI: uri}); err != nil {
			return err
		}
	}
	return nil
}

// Freeze 冻结字体表；幂等。
func (t *Table) Freeze() {
	t.mu.Lock()
	t.frozen = true
	t.mu.Unlock()
}

// Frozen 报告字体表是否已冻结。
func (t *Table) Frozen() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.frozen
}

// Faces 返回注册顺序下的字体副本（包含未加载成功的条目，由调用方甄别）。
func (t *Table) Faces() []Face {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Face, len(t.faces))
	copy(out, t.faces)
	return out
}

// Calibration 导出 字体族→字宽比 的校准表，供布局估算器使用。
func (t *Table) Calibration() map[string]float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make(map[string]float64, len(t.faces))
	for _, f := range t.faces {
		out[strings.ToLower(f.Family)] = f.Ratio
	}
	return out
}

// RatioForFamily 按字体族名称给出默认字宽比：
// 名称含 condensed/oswald 的按窄体处理，其余按常规。
func RatioForFamily(family string) float64 {
	lower := strings.ToLower(family)
	if strings.Contains(lower, "condensed") || strings.Contains(lower, "oswald") {
		return CondensedRatio
	}
	return DefaultRatio
}

// familyFromName 把资源名转为 CSS font-family（"Oswald-Bold" → "Oswald Bold"）。
func familyFromName(name string) string {
	return strings.ReplaceAll(name, "-", " ")
}

// weightFromName 从资源名推断字重（含 "bold" 视为粗体）。
func weightFromName(name string) string {
	if strings.Contains(strings.ToLower(name), "bold") {
		return "bold"
	}
	return "normal"
}
