package tui

import (
	"math"
	"strings"

	"github.com/akyairhashvil/dialtimer/internal/config"
	"github.com/akyairhashvil/dialtimer/internal/engine"
	"github.com/akyairhashvil/dialtimer/internal/models"
	"github.com/akyairhashvil/dialtimer/internal/util"
	"github.com/charmbracelet/x/ansi"
)

const (
	marginLeft = 2 // matches Theme.Base horizontal margin
	headerRows = 2 // header line plus one blank line above the dial
	tickEvery  = 30.0
)

// dialGeometry locates the dial on screen in cell coordinates.
type dialGeometry struct {
	cx, cy int // center cell
	r      int // radius in rows
	rx     int // radius in columns
}

func (m Model) dialGeometry() dialGeometry {
	r := config.DialRadius
	if m.height > 0 {
		fit := (m.height - headerRows - 8) / 2
		if fit < r {
			r = fit
		}
		if r < config.MinDialRadius {
			r = config.MinDialRadius
		}
	}
	rx := int(math.Round(float64(r) * config.CellAspect))
	return dialGeometry{
		cx: marginLeft + rx,
		cy: headerRows + r,
		r:  r,
		rx: rx,
	}
}

// toDial converts a screen cell into dial space where one unit is one row
// in both directions, relative to the dial center.
func (g dialGeometry) toDial(x, y int) engine.Point {
	return engine.Point{
		X: float64(x-g.cx) / config.CellAspect,
		Y: float64(y - g.cy),
	}
}

// distance from the center in rows.
func (g dialGeometry) distance(p engine.Point) float64 {
	return math.Hypot(p.X, p.Y)
}

// onRing reports whether p is close enough to the rim to start a drag.
func (g dialGeometry) onRing(p engine.Point) bool {
	return math.Abs(g.distance(p)-float64(g.r)) <= 1.5
}

// inFace reports whether p is inside the rim, where a press is a tap.
func (g dialGeometry) inFace(p engine.Point) bool {
	return g.distance(p) < float64(g.r)-1.5
}

type dialState struct {
	timer    models.Timer
	progress float64
	running  bool
	dragging bool
}

// renderDial draws the ring with the elapsed part in the timer color, the
// remaining time in the middle, and the title below it.
func renderDial(g dialGeometry, s dialState) string {
	theme := CurrentTheme
	fill := colorStyle(s.timer.Color)
	showTicks := s.timer.TicksAlwaysVisible || s.dragging
	sweep := s.progress * 360
	origin := engine.Point{}

	rows := make([][]string, 2*g.r+1)
	for dy := -g.r; dy <= g.r; dy++ {
		row := make([]string, 2*g.rx+1)
		for dx := -g.rx; dx <= g.rx; dx++ {
			p := engine.Point{X: float64(dx) / config.CellAspect, Y: float64(dy)}
			d := math.Hypot(p.X, p.Y)
			cell := " "
			switch {
			case math.Abs(d-float64(g.r)) < 0.5:
				if s.progress > 0 && engine.AngleOf(origin, p) <= sweep {
					cell = fill.Render("█")
				} else {
					cell = theme.Track.Render("░")
				}
			case showTicks && g.r > 2 && math.Abs(d-float64(g.r-1)) < 0.5 && nearTick(engine.AngleOf(origin, p), g.r-1):
				cell = theme.TickMark.Render("·")
			}
			row[dx+g.rx] = cell
		}
		rows[dy+g.r] = row
	}

	inner := 2*g.rx - 6
	overlay(rows[g.r], theme.Clock.Render(util.FormatClock(s.timer.RemainingTime)), len(util.FormatClock(s.timer.RemainingTime)))
	if s.timer.TitleAlwaysVisible || !s.running || s.dragging {
		title := truncateLabel(s.timer.Title, inner)
		if title != "" && g.r+2 < len(rows) {
			overlay(rows[g.r+2], theme.Title.Render(title), ansi.StringWidth(title))
		}
	}
	if s.running && g.r-2 >= 0 {
		overlay(rows[g.r-2], fill.Render("▶"), 1)
	}

	lines := make([]string, len(rows))
	for i, row := range rows {
		lines[i] = strings.Join(row, "")
	}
	return strings.Join(lines, "\n")
}

// overlay centers a pre-rendered string of the given visible width on row.
func overlay(row []string, rendered string, width int) {
	if width <= 0 || width > len(row) {
		return
	}
	start := (len(row) - width) / 2
	row[start] = rendered
	for i := start + 1; i < start+width; i++ {
		row[i] = ""
	}
}

// nearTick reports whether angle falls on a tick mark at the given radius.
func nearTick(angle float64, radius int) bool {
	tol := 28.0 / float64(radius)
	m := math.Mod(angle, tickEvery)
	return m < tol || tickEvery-m < tol
}
