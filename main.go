package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/ByLCY/manifesto/content"
	"github.com/ByLCY/manifesto/fonts"
	"github.com/ByLCY/manifesto/layout"
	"github.com/ByLCY/manifesto/renderer"
	svgrenderer "github.com/ByLCY/manifesto/renderer/svg"
	"github.com/ByLCY/manifesto/server"
	"github.com/ByLCY/manifesto/template"
)

func main() {
	input := flag.String("template", "examples/banner.json", "模板 JSON 文件路径")
	output := flag.String("out", "output/banner.svg", "SVG 输出路径")
	contentJSON := flag.String("content", "", "内容表 JSON 文件路径（键→文案或 data URI）")
	backgroundJSON := flag.String("background", "", "背景配置 JSON 文件路径")
	fontsJSON := flag.String("fonts", "", "字体表 JSON 文件路径（名称→data URI）")
	debug := flag.String("debug", "", "布局调试 JSON 输出路径")
	doMinify := flag.Bool("minify", false, "压缩产出的 SVG")
	serveAddr := flag.String("serve", "", "以 HTTP 服务运行并监听该地址（如 :8080）")
	flag.Parse()

	table := fonts.NewTable()
	if *fontsJSON != "" {
		assets := map[string]string{}
		if err := readJSONFile(*fontsJSON, &assets); err != nil {
			log.Fatalf("读取字体表失败: %v", err)
		}
		if err := table.RegisterAssets(assets); err != nil {
			log.Fatalf("注册字体失败: %v", err)
		}
	}

	if *serveAddr != "" {
		logger, err := zap.NewProduction()
		if err != nil {
			log.Fatalf("初始化日志失败: %v", err)
		}
		defer logger.Sync()
		if err := server.New(logger, table).Run(*serveAddr); err != nil {
			log.Fatalf("HTTP 服务退出: %v", err)
		}
		return
	}

	cm := content.Map{}
	if *contentJSON != "" {
		if err := readJSONFile(*contentJSON, &cm); err != nil {
			log.Fatalf("读取内容表失败: %v", err)
		}
	}
	var bg layout.Background
	if *backgroundJSON != "" {
		if err := readJSONFile(*backgroundJSON, &bg); err != nil {
			log.Fatalf("读取背景配置失败: %v", err)
		}
	}

	var r renderer.Renderer = svgrenderer.NewRendererWithOptions(svgrenderer.Options{
		Fonts:  table,
		Minify: *doMinify,
	})
	if err := run(*input, *output, *debug, cm, bg, table, r); err != nil {
		log.Fatalf("生成 SVG 失败: %v", err)
	}
	fmt.Printf("已生成 SVG：%s\n", *output)
}

// run 串联解析、布局与渲染。
func run(inputPath, outputPath, debugPath string, cm content.Map, bg layout.Background, table *fonts.Table, r renderer.Renderer) error {
	if r == nil {
		return fmt.Errorf("renderer 不能为空")
	}
	file, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("无法打开模板文件 %s: %w", inputPath, err)
	}
	defer file.Close()

	doc, err := template.Parse(file)
	if err != nil {
		return fmt.Errorf("解析模板失败: %w", err)
	}

	result, err := layout.Build(doc, layout.BuildOptions{
		Content:    cm,
		Background: bg,
		Fonts:      table,
	})
	if err != nil {
		return fmt.Errorf("布局失败: %w", err)
	}

	if debugPath != "" {
		if err := layout.WriteDebugJSON(result, debugPath); err != nil {
			return fmt.Errorf("输出调试 JSON 失败: %w", err)
		}
	}

	data, err := r.Render(result)
	if err != nil {
		return fmt.Errorf("渲染失败: %w", err)
	}
	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return fmt.Errorf("写出 %s 失败: %w", outputPath, err)
	}
	return nil
}

func readJSONFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}
