package template

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// Kind identifies a component variant. The set is closed: the layout stage
// dispatches over it exhaustively and skips anything it does not know,
// which keeps old engines forward-compatible with newer templates.
type Kind string

const (
	KindBackgroundLayer  Kind = "background_layer"
	KindTextBlock        Kind = "text_block"
	KindTextOnly         Kind = "text_only"
	KindImage            Kind = "image"
	KindSmartphoneMockup Kind = "smartphone_mockup"
	KindCTAButton        Kind = "cta_button"
	KindLogo             Kind = "logo"
	KindPriceDisplay     Kind = "price_display"
	KindLogoTextGroup    Kind = "logo_text_group"
	KindBulletList       Kind = "bullet_list"
)

// Known reports whether the kind belongs to the closed component set.
func (k Kind) Known() bool {
	switch k {
	case KindBackgroundLayer, KindTextBlock, KindTextOnly, KindImage,
		KindSmartphoneMockup, KindCTAButton, KindLogo, KindPriceDisplay,
		KindLogoTextGroup, KindBulletList:
		return true
	}
	return false
}

// Document is the root template node: canvas size plus an ordered component
// list. Array order is paint order; the layout stage must preserve it.
type Document struct {
	Width       int         `json:"width"`
	Height      int         `json:"height"`
	DebugGuides bool        `json:"debug_guides"`
	Components  []Component `json:"components"`
}

// Component is one visual element. Content fields hold *keys* into the
// content map, not literal values, so a template can be reused with
// different copy and assets.
type Component struct {
	Type     Kind     `json:"type"`
	ID       string   `json:"id"`
	Geometry Geometry `json:"geometry"`
	Style    Style    `json:"style"`

	ContentSource string   `json:"content_source"`
	HeaderSource  string   `json:"header_source"`
	LogoSource    string   `json:"logo_source"`
	TextSource    string   `json:"text_source"`
	PriceSource   string   `json:"price_source"`
	PeriodSource  string   `json:"period_source"`
	Items         []string `json:"items"`
}

// Geometry keeps the four dimensions exactly as authored (number, "N%" or
// "Npx"); resolution against the canvas happens in the layout stage.
type Geometry struct {
	X      Dimension `json:"x"`
	Y      Dimension `json:"y"`
	Width  Dimension `json:"width"`
	Height Dimension `json:"height"`
}

// Dimension preserves a raw geometry value. A JSON number is kept as a
// number; a JSON string is kept verbatim for the layout stage to parse.
// Any other JSON type is rejected at decode time.
type Dimension struct {
	Set    bool
	Number *float64
	Text   string
}

func (d *Dimension) UnmarshalJSON(data []byte) error {
	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		d.Set = true
		d.Number = &num
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		d.Set = true
		d.Text = s
		return nil
	}
	return fmt.Errorf("geometry 维度必须是数字或字符串: %s", string(data))
}

func (d Dimension) MarshalJSON() ([]byte, error) {
	if !d.Set {
		return []byte("null"), nil
	}
	if d.Number != nil {
		return json.Marshal(*d.Number)
	}
	return json.Marshal(d.Text)
}

// Style lists every option any kind recognizes. Typed fields (instead of a
// loose map) make style-key typos a decode-time no-op on a named field
// rather than a silently ignored stranger; absent fields fall back to the
// per-kind defaults documented in the layout stage.
type Style struct {
	Background   string `json:"background,omitempty"`
	TextColor    string `json:"text_color,omitempty"`
	HeaderColor  string `json:"header_color,omitempty"`
	AccentColor  string `json:"accent_color,omitempty"`
	FrameColor   string `json:"frame_color,omitempty"`
	FontFamily   string `json:"font_family,omitempty"`
	HeaderFamily string `json:"header_family,omitempty"`

	FontSize    float64 `json:"font_size,omitempty"`
	MinFontSize float64 `json:"min_font_size,omitempty"`
	MaxFontSize float64 `json:"max_font_size,omitempty"`
	AutoSize    bool    `json:"auto_size,omitempty"`

	Alignment    string   `json:"alignment,omitempty"`
	Fit          string   `json:"fit,omitempty"`
	Opacity      *float64 `json:"opacity,omitempty"`
	BorderRadius *float64 `json:"border_radius,omitempty"`
	Padding      *float64 `json:"padding,omitempty"`
	LineSpacing  float64  `json:"line_spacing,omitempty"`
	Wrap         bool     `json:"wrap,omitempty"`

	UseBackgroundImage bool     `json:"use_background_image,omitempty"`
	ShowLabel          bool     `json:"show_label,omitempty"`
	LabelText          string   `json:"label_text,omitempty"`
	ShowBadge          bool     `json:"show_badge,omitempty"`
	ShowSubtitle       bool     `json:"show_subtitle,omitempty"`
	MarkText           string   `json:"mark_text,omitempty"`
	SubtitleLines      []string `json:"subtitle_lines,omitempty"`
	Recolor            string   `json:"recolor,omitempty"`
}

// Parse decodes a template document from r. Only structural JSON problems
// fail here; semantic fallbacks (missing geometry, missing styles) are the
// layout stage's business.
func Parse(r io.Reader) (*Document, error) {
	dec := json.NewDecoder(r)
	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("解析模板 JSON 失败: %w", err)
	}
	if doc.Width <= 0 || doc.Height <= 0 {
		return nil, fmt.Errorf("模板画布尺寸无效: %dx%d", doc.Width, doc.Height)
	}
	return &doc, nil
}

// ParseBytes is a convenience wrapper over Parse.
func ParseBytes(data []byte) (*Document, error) {
	return Parse(bytes.NewReader(data))
}
