//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"falling-sand/internal/core"
)

// HUD renders the parameter panel to the right of the simulation view: one
// row of -/+ buttons per control and a reset button underneath.
type HUD struct {
	sim      core.Sim
	width    int
	panel    *ebiten.Image
	snapshot core.ParameterSnapshot

	controls    []hudControlState
	intSetter   core.IntParameterSetter
	floatSetter core.FloatParameterSetter
	resetRect   image.Rectangle
	onReset     func()
	offsetX     int
	title       string

	pixel *ebiten.Image
}

type hudControlState struct {
	control core.ParameterControl
	value   float64
	text    string
	ok      bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

// NewHUD constructs a HUD for the provided simulation and panel width.
// onReset runs when the reset button is clicked.
func NewHUD(sim core.Sim, width int, onReset func()) *HUD {
	h := &HUD{sim: sim, width: max(width, 0), onReset: onReset}
	if h.width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	h.title = fmt.Sprintf("%s Controls", strings.ToUpper(sim.Name()[:1])+sim.Name()[1:])
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		for _, ctrl := range provider.ParameterControls() {
			h.controls = append(h.controls, hudControlState{control: ctrl, text: "--"})
		}
	}
	h.intSetter, _ = sim.(core.IntParameterSetter)
	h.floatSetter, _ = sim.(core.FloatParameterSetter)
	h.layout()
	return h
}

// Update refreshes the displayed values and handles clicks. offsetX is the
// screen x coordinate of the panel's left edge.
func (h *HUD) Update(offsetX int) {
	if h == nil || h.width <= 0 {
		return
	}
	h.offsetX = offsetX
	if provider, ok := h.sim.(core.ParameterProvider); ok {
		h.snapshot = provider.Parameters()
	}
	h.refresh()
	h.handleInput()
}

// Draw paints the HUD panel at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int) {
	if h == nil || h.width <= 0 {
		return
	}
	height := screen.Bounds().Dy()
	if height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawControls()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) refresh() {
	for i := range h.controls {
		state := &h.controls[i]
		param, ok := h.snapshot.Lookup(state.control.Key)
		if !ok {
			state.ok, state.text = false, "--"
			continue
		}
		v, err := strconv.ParseFloat(param.Value, 64)
		if err != nil {
			state.ok, state.text = false, "--"
			continue
		}
		state.ok, state.value = true, v
		state.text = formatValue(state.control, v)
	}
}

func (h *HUD) handleInput() {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	px := mx - h.offsetX
	if px < 0 {
		return
	}
	if pointInRect(px, my, h.resetRect) {
		if h.onReset != nil {
			h.onReset()
		}
		return
	}
	for i := range h.controls {
		state := &h.controls[i]
		if !state.ok {
			continue
		}
		switch {
		case pointInRect(px, my, state.minusRect):
			h.adjust(state, -1)
			return
		case pointInRect(px, my, state.plusRect):
			h.adjust(state, 1)
			return
		}
	}
}

func (h *HUD) adjust(state *hudControlState, direction int) {
	target, ok := h.target(state, direction)
	if !ok {
		return
	}
	switch state.control.Type {
	case core.ParamTypeInt:
		if h.intSetter != nil && h.intSetter.SetIntParameter(state.control.Key, int(target)) {
			state.value = target
		}
	case core.ParamTypeFloat:
		if h.floatSetter != nil && h.floatSetter.SetFloatParameter(state.control.Key, target) {
			state.value = target
		}
	}
	state.text = formatValue(state.control, state.value)
}

// target returns the value one step away, or false when the control is
// already pinned at that bound.
func (h *HUD) target(state *hudControlState, direction int) (float64, bool) {
	step := state.control.Step
	if step <= 0 {
		step = 1
	}
	next := state.control.Clamp(state.value + float64(direction)*step)
	return next, math.Abs(next-state.value) > 1e-9
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	text.Draw(h.panel, h.title, face, panelPadding, panelPadding+headerBaseline, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	for i := range h.controls {
		state := &h.controls[i]
		labelY := state.top + labelBaseline
		text.Draw(h.panel, state.control.Label, face, panelPadding, labelY, color.RGBA{R: 220, G: 220, B: 230, A: 255})
		valueColor := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		if !state.ok {
			valueColor = color.RGBA{R: 160, G: 160, B: 170, A: 255}
		}
		valueX := state.minusRect.Min.X - buttonGap - text.BoundString(face, state.text).Dx()
		text.Draw(h.panel, state.text, face, valueX, labelY, valueColor)

		_, canDec := h.target(state, -1)
		_, canInc := h.target(state, 1)
		h.drawButton(state.minusRect, "-", state.ok && canDec)
		h.drawButton(state.plusRect, "+", state.ok && canInc)
	}
	h.drawButton(h.resetRect, "Reset", h.onReset != nil)
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func (h *HUD) layout() {
	if h.width <= 0 {
		return
	}
	for i := range h.controls {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		h.controls[i].top = top
		h.controls[i].minusRect = minusRect
		h.controls[i].plusRect = plusRect
	}
	resetTop := controlsTop + len(h.controls)*lineHeight + buttonGap
	h.resetRect = image.Rect(panelPadding, resetTop, h.width-panelPadding, resetTop+buttonSize)
}

func formatValue(ctrl core.ParameterControl, value float64) string {
	if ctrl.Type == core.ParamTypeInt {
		return strconv.Itoa(int(math.Round(value)))
	}
	precision := 1
	switch {
	case ctrl.Step < 0.001:
		precision = 4
	case ctrl.Step < 0.01:
		precision = 3
	case ctrl.Step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	controlsTop    = panelPadding + headerBaseline + 14
)
