package svg

import (
	"encoding/base64"
	"regexp"
	"strings"
)

const svgDataPrefix = "data:image/svg+xml;base64,"

var fillAttrPattern = regexp.MustCompile(`fill="#[0-9a-fA-F]{3,8}"`)

// recolorDataURI 把 base64 编码的 SVG data URI 里的所有 fill 颜色
// 改写为 color，用于单色标识适配不同底色。非 SVG 或无法解码的
// URI 原样返回，绝不让重着色失败影响渲染。
func recolorDataURI(uri, color string) string {
	if !strings.HasPrefix(uri, svgDataPrefix) {
		return uri
	}
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, svgDataPrefix))
	if err != nil {
		return uri
	}
	recolored := fillAttrPattern.ReplaceAllString(string(raw), `fill="`+color+`"`)
	return svgDataPrefix + base64.StdEncoding.EncodeToString([]byte(recolored))
}
