package render

import (
	"math"

	"github.com/lixenwraith/scrollway/phase"
)

// Scene draws the visual driven by the smoothed progress value
type Scene interface {
	Draw(buf *RenderBuffer, area Rect, progress float64)
}

// OrbitScene is the default terminal scene: a core that gains orbit rings as progress crosses each phase cut
// Ring k fades in over FadeBand after the k-th cut and the whole system zooms with progress
type OrbitScene struct {
	Mapper   phase.Mapper
	Max      float64
	FadeBand float64
}

// NewOrbitScene creates a scene for the given mapper and progress ceiling
func NewOrbitScene(mapper phase.Mapper, maxProgress float64) *OrbitScene {
	return &OrbitScene{Mapper: mapper, Max: maxProgress, FadeBand: 0.05}
}

// ringNodes is the number of satellites per ring
var ringNodes = [phase.Count - 1]int{0, 6, 9}

var ringGlyphs = [phase.Count - 1]rune{'·', 'o', '▪'}

// Draw renders the scene into area; it only writes inside area
func (s *OrbitScene) Draw(buf *RenderBuffer, area Rect, progress float64) {
	if area.Empty() {
		return
	}
	if math.IsNaN(progress) || progress < 0 {
		progress = 0
	}
	t := 0.0
	if s.Max > 0 {
		t = math.Min(progress/s.Max, 1)
	}

	buf.Fill(area, RgbBackground, 1)
	s.drawStars(buf, area, t)

	cx := float64(area.X) + float64(area.W)/2
	cy := float64(area.Y) + float64(area.H)/2
	cuts := s.Mapper.Cuts()
	// Terminal cells are twice as tall as wide; the outer ring just fits at full zoom
	const maxZoom = 1.6
	zoom := 1 + (maxZoom-1)*t
	unit := math.Min(float64(area.W)/2, float64(area.H)) / 2 * 0.95 / (float64(len(cuts)) * maxZoom)

	current := s.Mapper.Of(progress)
	tint := phaseColors[current.Index()]
	if current < phase.Ecosystem {
		next := phase.FromIndex(current.Index() + 1)
		span := s.Mapper.Start(next) - s.Mapper.Start(current)
		if span > 0 {
			tint = tint.Gradient(phaseColors[next.Index()], (progress-s.Mapper.Start(current))/span*0.5)
		}
	}

	for k := range cuts {
		alpha := 0.0
		if s.FadeBand > 0 {
			alpha = math.Min(math.Max((progress-cuts[k])/s.FadeBand, 0), 1)
		} else if progress >= cuts[k] {
			alpha = 1
		}
		if alpha <= 0 {
			continue
		}
		r := unit * float64(k+1) * zoom
		color := phaseColors[k+1]
		s.drawRing(buf, area, cx, cy, r, color, alpha)
		if n := ringNodes[k]; n > 0 {
			spin := t * 2 * math.Pi * float64(k%2*2-1)
			for i := 0; i < n; i++ {
				a := spin + 2*math.Pi*float64(i)/float64(n)
				x, y := project(cx, cy, r, a)
				if area.Contains(x, y) {
					buf.Set(x, y, ringGlyphs[k], color, RgbBackground, BlendAlpha, alpha)
				}
			}
		}
	}

	x, y := int(cx), int(cy)
	if area.Contains(x, y) {
		buf.Set(x, y, '◆', tint, RgbBackground, BlendReplace, 1)
		buf.SetBold(x, y, true)
	}
}

func (s *OrbitScene) drawRing(buf *RenderBuffer, area Rect, cx, cy, r float64, color RGB, alpha float64) {
	steps := int(r*8) + 8
	dim := RgbSceneDim.Blend(color, 0.35)
	for i := 0; i < steps; i++ {
		x, y := project(cx, cy, r, 2*math.Pi*float64(i)/float64(steps))
		if area.Contains(x, y) {
			buf.Set(x, y, '·', dim, RgbBackground, BlendAlpha, alpha)
		}
	}
}

// drawStars scatters a fixed pseudo-random field that brightens as progress advances
func (s *OrbitScene) drawStars(buf *RenderBuffer, area Rect, t float64) {
	star := RgbBackground.Blend(RgbSceneDim, 0.4+0.6*t)
	for y := area.Y; y < area.Y+area.H; y++ {
		for x := area.X; x < area.X+area.W; x++ {
			if hash(x, y)%61 == 0 {
				buf.Set(x, y, '.', star, RgbBackground, BlendReplace, 1)
			}
		}
	}
}

func project(cx, cy, r, angle float64) (int, int) {
	return int(math.Round(cx + 2*r*math.Cos(angle))), int(math.Round(cy + r*math.Sin(angle)))
}

func hash(x, y int) uint32 {
	h := uint32(x)*73856093 ^ uint32(y)*19349663
	h ^= h >> 13
	h *= 0x5bd1e995
	return h ^ h>>15
}
