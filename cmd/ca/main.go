//go:build ebiten

package main

import (
	"errors"
	"flag"
	"os"

	"cascade-ca/internal/app"
	"cascade-ca/internal/core"
	"cascade-ca/internal/sims/cascade"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg := app.NewConfig()
	cfg.BindViewer(flag.CommandLine)
	flag.Parse()

	if err := cfg.Load(flag.CommandLine); err != nil {
		logrus.Fatal(err)
	}
	log, err := app.NewLogger(cfg.LogLevel, os.Stderr)
	if err != nil {
		logrus.Fatal(err)
	}

	sim, seed, err := buildSim(cfg)
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(sim, cfg.Viewer, seed, log)

	ebiten.SetWindowTitle("cascade-ca: " + sim.Name())
	ebiten.SetTPS(cfg.Viewer.TPS)
	ebiten.SetWindowSize(game.Layout(0, 0))

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

// buildSim loads the input grid when one is given and otherwise draws a
// random grid from the registry. The returned seed is what "r" resets to.
func buildSim(cfg *app.Config) (core.Sim, int64, error) {
	if cfg.Input != "" {
		f, err := os.Open(cfg.Input)
		if err != nil {
			return nil, 0, err
		}
		defer f.Close()
		g, err := cascade.Load(f)
		if err != nil {
			return nil, 0, err
		}
		c := cascade.DefaultConfig()
		c.MaxSyncSteps = cfg.MaxSync
		return cascade.NewSimFromGrid(g, c), 0, nil
	}

	factory, ok := core.Sims()[cfg.Viewer.Sim]
	if !ok {
		return nil, 0, errors.New("unknown sim " + cfg.Viewer.Sim)
	}
	return factory(cfg.SimConfig()), cfg.Viewer.Seed, nil
}
