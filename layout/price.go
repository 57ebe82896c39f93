package layout

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// 价格文本的词法：数字串、小数分隔符（. 或 ,）、其余字符。
// 用词法器而非正则，是为了拿到带偏移的 token，按偏移原样截取剩余部分。
var priceLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Digits", Pattern: `[0-9]+`},
	{Name: "Sep", Pattern: `[.,]`},
	{Name: "Other", Pattern: `[^0-9.,]+`},
})

// ParsePrice 把原始价格文本拆成 整数部分 与 小数部分：
//
//	"14,99€" → ("14", ",99€")   分隔符及其后全部字符原样归入小数部分
//	"20€"    → ("20", "")       数字后不是分隔符，后缀丢弃
//	"Gratis" → ("Gratis", "")   无前导数字时整串作为整数部分
//
// 两段的字号差异由布局阶段决定，这里只做切分。
func ParsePrice(raw string) (integer, decimal string) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", ""
	}
	lx, err := priceLexer.LexString("", trimmed)
	if err != nil {
		return trimmed, ""
	}
	symbols := priceLexer.Symbols()
	digits := symbols["Digits"]
	sep := symbols["Sep"]

	var toks []lexer.Token
	for {
		tok, err := lx.Next()
		if err != nil {
			return trimmed, ""
		}
		if tok.EOF() {
			break
		}
		toks = append(toks, tok)
	}
	if len(toks) == 0 || toks[0].Type != digits {
		return trimmed, ""
	}
	integer = toks[0].Value
	if len(toks) >= 2 && toks[1].Type == sep {
		return integer, trimmed[toks[1].Pos.Offset:]
	}
	return integer, ""
}
