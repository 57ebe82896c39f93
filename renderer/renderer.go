package renderer

import "github.com/ByLCY/manifesto/layout"

// Renderer 将布局结果输出为最终图像标记，例如 SVG。
// Render 返回生成的字节切片以及可能的错误。
type Renderer interface {
	Render(result *layout.Result) ([]byte, error)
}
