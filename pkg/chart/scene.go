package chart

import (
	"math"
	"sort"

	"github.com/golang/freetype/truetype"
	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/c9s/currentprice/pkg/priceindicator"
)

// text is drawn above the paths of the same group
const textZIndex = 2

var _ priceindicator.Drawer = &Scene{}

// Scene is the retained set of overlay elements drawn on top of the chart.
// Elements keep their identity between redraws and are mutated in place.
type Scene struct {
	measurer TextMeasurer
	root     *SceneGroup
	groups   []*SceneGroup
}

func NewScene(measurer TextMeasurer) *Scene {
	return &Scene{
		measurer: measurer,
		root:     &SceneGroup{visible: true},
	}
}

func (s *Scene) Groups() []*SceneGroup {
	return s.groups
}

func (s *Scene) Group(zIndex int) priceindicator.Group {
	g := &SceneGroup{ZIndex: zIndex, visible: true}
	s.groups = append(s.groups, g)
	return g
}

func (s *Scene) Text(parent priceindicator.Group, text string, x, y float64, style priceindicator.TextStyle) priceindicator.Label {
	t := &SceneText{
		Text:     text,
		X:        x,
		Y:        y,
		Style:    style,
		measurer: s.measurer,
	}

	g := s.groupOf(parent)
	g.texts = append(g.texts, t)
	return t
}

func (s *Scene) Path(parent priceindicator.Group, path priceindicator.Path, style priceindicator.PathStyle) priceindicator.Shape {
	p := &ScenePath{
		Path:  path,
		Style: style,
	}

	g := s.groupOf(parent)
	g.paths = append(g.paths, p)
	return p
}

func (s *Scene) groupOf(parent priceindicator.Group) *SceneGroup {
	if g, ok := parent.(*SceneGroup); ok && g != nil {
		return g
	}
	return s.root
}

// Draw renders the visible groups ordered by z-index.
func (s *Scene) Draw(r gochart.Renderer, font *truetype.Font) {
	groups := append([]*SceneGroup{s.root}, s.groups...)
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].ZIndex < groups[j].ZIndex
	})

	for _, g := range groups {
		if !g.visible {
			continue
		}
		g.draw(r, font)
	}
}

type SceneGroup struct {
	ZIndex int

	visible bool
	texts   []*SceneText
	paths   []*ScenePath
}

func (g *SceneGroup) Show() {
	g.visible = true
}

func (g *SceneGroup) Hide() {
	g.visible = false
}

func (g *SceneGroup) Visible() bool {
	return g.visible
}

func (g *SceneGroup) Texts() []*SceneText {
	return g.texts
}

func (g *SceneGroup) Paths() []*ScenePath {
	return g.paths
}

func (g *SceneGroup) draw(r gochart.Renderer, font *truetype.Font) {
	paths := make([]*ScenePath, len(g.paths))
	copy(paths, g.paths)
	sort.SliceStable(paths, func(i, j int) bool {
		return paths[i].Style.ZIndex < paths[j].Style.ZIndex
	})

	for _, p := range paths {
		if p.Style.ZIndex <= textZIndex {
			p.draw(r)
		}
	}

	for _, t := range g.texts {
		t.draw(r, font)
	}

	for _, p := range paths {
		if p.Style.ZIndex > textZIndex {
			p.draw(r)
		}
	}
}

type SceneText struct {
	Text  string
	X, Y  float64
	Style priceindicator.TextStyle

	measurer TextMeasurer
}

func (t *SceneText) SetText(text string) {
	t.Text = text
}

func (t *SceneText) Move(x, y float64) {
	t.X, t.Y = x, y
}

func (t *SceneText) BBox() priceindicator.BBox {
	if t.measurer == nil {
		return priceindicator.BBox{}
	}
	return t.measurer.MeasureText(t.Text, t.Style)
}

func (t *SceneText) draw(r gochart.Renderer, font *truetype.Font) {
	if font != nil {
		r.SetFont(font)
	}
	r.SetFontColor(parseColor(t.Style.Color, drawing.ColorBlack))
	r.SetFontSize(FontSizePoints(t.Style.FontSize, r.GetDPI()))
	r.Text(t.Text, round(t.X), round(t.Y))
}

type ScenePath struct {
	Path  priceindicator.Path
	Style priceindicator.PathStyle
}

func (p *ScenePath) SetPath(path priceindicator.Path) {
	p.Path = path
}

func (p *ScenePath) draw(r gochart.Renderer) {
	if len(p.Path) == 0 {
		return
	}

	r.ResetStyle()
	r.SetStrokeColor(withOpacity(parseColor(p.Style.Stroke, drawing.ColorTransparent), p.Style.Opacity))
	r.SetStrokeWidth(p.Style.StrokeWidth)
	r.SetStrokeDashArray(priceindicator.DashArray(p.Style.DashArray))

	for _, cmd := range p.Path {
		switch cmd.Op {
		case priceindicator.PathOpMoveTo:
			r.MoveTo(round(cmd.X), round(cmd.Y))
		case priceindicator.PathOpLineTo:
			r.LineTo(round(cmd.X), round(cmd.Y))
		case priceindicator.PathOpClose:
			r.Close()
		}
	}

	if p.Style.Fill == "" {
		r.Stroke()
		return
	}

	r.SetFillColor(withOpacity(parseColor(p.Style.Fill, drawing.ColorTransparent), p.Style.Opacity))
	r.FillStroke()
}

func round(v float64) int {
	return int(math.Round(v))
}
