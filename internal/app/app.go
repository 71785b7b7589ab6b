//go:build ebiten

package app

import (
	"image/color"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"falling-sand/internal/core"
	"falling-sand/internal/render"
	"falling-sand/internal/sims/sand"
	"falling-sand/internal/ui"
)

// Game adapts a sandbox to the ebiten.Game interface. The sandbox is drawn
// in the viewport on the left and the HUD panel sits to its right.
type Game struct {
	sim     *sand.Sandbox
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	clock   *core.FixedStep
	logger  *log.Logger

	hudWidth int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided sandbox.
func New(sim *sand.Sandbox, cfg *Config, logger *log.Logger) *Game {
	size := sim.Size()
	g := &Game{
		sim:      sim,
		painter:  render.NewGridPainter(size.W, size.H),
		overlay:  ui.NewOverlay(sim),
		clock:    core.NewFixedStep(cfg.TPS),
		logger:   logger,
		hudWidth: cfg.HUDWidth,
		seed:     cfg.Sand.Seed,
	}
	g.hud = ui.NewHUD(sim, cfg.HUDWidth, g.reset)
	return g
}

func (g *Game) reset() {
	g.Reset(g.seed)
}

// Reset clears the sandbox and rewinds its random stream to seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
	g.logger.Info("reset", "seed", seed)
}

// Update handles per-frame input, paints under the pointer and advances the
// simulation by however many ticks are due.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	before := g.sim.Size()
	g.overlay.Update()
	g.hud.Update(g.viewportWidth())
	if after := g.sim.Size(); after != before {
		g.logger.Info("resized", "cols", after.W, "rows", after.H, "cell_size", g.sim.Config().CellSize)
	}

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if x < g.viewportWidth() {
			g.sim.PaintPixel(x, y)
		}
	}

	pending := g.clock.Pending()
	if g.paused {
		pending = 0
	}
	if g.tickOnce {
		pending = max(pending, 1)
		g.tickOnce = false
	}
	for i := 0; i < pending; i++ {
		g.sim.Step()
	}
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	size := g.sim.Size()
	g.painter.Blit(screen, size.W, size.H, g.sim.Cells(), g.sim.Palette(), g.sim.Config().CellSize)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.viewportWidth())
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	cfg := g.sim.Config()
	return cfg.ViewportW + g.hudWidth, cfg.ViewportH
}

func (g *Game) viewportWidth() int { return g.sim.Config().ViewportW }
