//go:build ebiten

package app

import (
	"time"

	"cascade-ca/internal/core"
	"cascade-ca/internal/render"
	"cascade-ca/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"
)

const hudWidth = 180

type syncReporter interface {
	SyncStep() int
}

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	hud     *ui.HUD
	pacer   *core.FixedStep
	log     logrus.FieldLogger

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
	synced   bool
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cfg ViewerConfig, seed int64, log logrus.FieldLogger) *Game {
	size := sim.Size()
	return &Game{
		sim:     sim,
		painter: render.NewGridPainter(size.W, size.H, render.EnergyPalette()),
		hud:     ui.NewHUD(sim, hudWidth),
		pacer:   core.NewFixedStep(cfg.StepsPerSecond),
		log:     log,
		scale:   cfg.Scale,
		seed:    seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
	g.synced = false
	g.log.WithField("seed", seed).Info("reset")
}

// Update handles per-frame logic and advances the simulation.
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

	if (!g.paused && g.pacer.ShouldStep()) || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
		g.reportSync()
	}
	g.hud.Update(g.paused)
	return nil
}

func (g *Game) reportSync() {
	r, ok := g.sim.(syncReporter)
	if !ok || g.synced || r.SyncStep() == 0 {
		return
	}
	g.synced = true
	g.log.WithField("step", r.SyncStep()).Info("all cells flashed together")
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.scale)
	s := g.sim.Size()
	g.hud.Draw(screen, s.W*g.scale, s.H*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + g.hud.Width(), s.H * g.scale
}
