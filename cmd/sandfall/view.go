package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/sandfall/core"
	"github.com/lixenwraith/sandfall/engine"
	"github.com/lixenwraith/sandfall/grid"
	"github.com/lixenwraith/sandfall/vmath"
)

// Each terminal cell shows two grid rows: upper half as foreground, lower as background
const halfBlock = '▀'

var (
	colorPlayer = core.RGBA{R: 230, G: 200, B: 60, A: 255}
	colorHeld   = core.RGBA{R: 200, G: 120, B: 90, A: 255}
	colorLoose  = core.RGBA{R: 160, G: 150, B: 140, A: 255}
)

// view draws the grid and physics bodies centered on the keyboard player
type view struct {
	screen tcell.Screen
	world  *engine.World

	// Per-frame color buffer in grid coordinates, transparent where empty
	buf    []core.RGBA
	bufW   int
	bufH   int
	status string
}

func newView(screen tcell.Screen, world *engine.World) *view {
	return &view{screen: screen, world: world}
}

// draw renders one frame; caller holds the step lock
func (v *view) draw() {
	w := v.world
	g := w.Resources.Grid
	m := w.Resources.Mapper

	v.resize(g.Width(), g.Height())
	for y := 0; y < v.bufH; y++ {
		for x := 0; x < v.bufW; x++ {
			p, ok := g.Get(x, y)
			if ok {
				v.buf[y*v.bufW+x] = p.Color
			} else {
				v.buf[y*v.bufW+x] = core.RGBA{}
			}
		}
	}

	for _, rock := range w.Components.Rock.All() {
		pos, ok := w.Resources.Physics.Position(rock)
		if !ok {
			continue
		}
		c := colorLoose
		if r, ok := w.Components.Rock.Get(rock); ok && r.Color.Opaque() {
			c = r.Color
		}
		if member, ok := w.Components.Member.Get(rock); ok && w.Components.Held.Has(member.Cluster) {
			c = colorHeld
		}
		v.plot(m, pos, c)
	}

	camX, camY := v.bufW/2, v.bufH/2
	v.status = "no player"
	if player, ok := w.Resources.Devices.Player(keyboardDevice); ok {
		if pos, ok := w.Resources.Physics.Position(player); ok {
			camX, camY = m.WorldToCell(pos)
			v.plot(m, pos, colorPlayer)
		}
		v.status = v.playerStatus(player)
	}

	v.blit(camX, camY)
}

func (v *view) playerStatus(player core.Entity) string {
	w := v.world
	health, _ := w.Components.Health.Get(player)
	carve, _ := w.Components.Carve.Get(player)
	parry, _ := w.Components.Parry.Get(player)
	return fmt.Sprintf(" hp %.0f/%.0f | carve %.0f | parry %.0f | %s | frame %d | q quits ",
		health.Current, health.Max, carve.Current, parry.Radius,
		w.Resources.Hold.State, w.Resources.Time.Frame)
}

func (v *view) resize(width, height int) {
	if v.bufW == width && v.bufH == height {
		return
	}
	v.bufW, v.bufH = width, height
	v.buf = make([]core.RGBA, width*height)
}

func (v *view) plot(m grid.Mapper, pos vmath.Vec2, c core.RGBA) {
	cx, cy := m.WorldToCell(pos)
	if cx < 0 || cy < 0 || cx >= v.bufW || cy >= v.bufH {
		return
	}
	v.buf[cy*v.bufW+cx] = c
}

func (v *view) at(x, y int) (core.RGBA, bool) {
	if x < 0 || y < 0 || x >= v.bufW || y >= v.bufH {
		return core.RGBA{}, false
	}
	c := v.buf[y*v.bufW+x]
	return c, c.Opaque()
}

// blit copies the buffer to the screen, grid y up mapped to screen y down
func (v *view) blit(camX, camY int) {
	v.screen.Clear()
	sw, sh := v.screen.Size()
	rows := sh - 1
	if rows <= 0 || sw <= 0 {
		return
	}

	left := camX - sw/2
	top := camY + rows // grid row shown in the upper half of screen row 0

	for sy := 0; sy < rows; sy++ {
		upper := top - 2*sy
		lower := upper - 1
		for sx := 0; sx < sw; sx++ {
			gx := left + sx
			up, upOK := v.at(gx, upper)
			lo, loOK := v.at(gx, lower)
			if !upOK && !loOK {
				continue
			}
			style := tcell.StyleDefault
			if upOK {
				style = style.Foreground(toTcell(up))
			} else {
				style = style.Foreground(tcell.ColorBlack)
			}
			if loOK {
				style = style.Background(toTcell(lo))
			}
			v.screen.SetContent(sx, sy, halfBlock, nil, style)
		}
	}

	hud := tcell.StyleDefault.Reverse(true)
	for i, r := range []rune(v.status) {
		if i >= sw {
			break
		}
		v.screen.SetContent(i, sh-1, r, nil, hud)
	}
}

func toTcell(c core.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
