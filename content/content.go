package content

import (
	"regexp"
	"strings"
)

var exprPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// Map 是渲染期注入的扁平内容表：键为模板中声明的 content key，
// 值为文本或 data URI。缺失的键一律解析为空串——这是刻意的宽松策略，
// 不是错误（不完整的内容应当降级渲染，而非整体失败）。
type Map map[string]string

// Get 返回 key 对应的内容；key 不存在时返回空串。
func (m Map) Get(key string) string {
	if m == nil {
		return ""
	}
	return m[key]
}

// Resolve 按组件声明的 source 取内容，并做一层 ${key} 插值，
// 让文案可以引用同一张表里的其他值（例如 "ABBONATI a ${price}"）。
// source 为空时返回空串。
func (m Map) Resolve(source string) string {
	if source == "" {
		return ""
	}
	return Interpolate(m.Get(source), m)
}

// Interpolate 将文本中的 ${key} 替换为 m 中的值。
// 键不存在时保留原占位符，便于排查内容表漏项。
func Interpolate(text string, m Map) string {
	if m == nil || !strings.Contains(text, "${") {
		return text
	}
	return exprPattern.ReplaceAllStringFunc(text, func(match string) string {
		groups := exprPattern.FindStringSubmatch(match)
		if len(groups) < 2 {
			return match
		}
		key := strings.TrimSpace(groups[1])
		if key == "" {
			return match
		}
		if val, ok := m[key]; ok {
			return val
		}
		return match
	})
}
