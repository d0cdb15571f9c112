package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"cascade-ca/internal/app"
	"cascade-ca/internal/report"
	"cascade-ca/internal/sims/cascade"

	"github.com/sirupsen/logrus"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := cfg.Load(flag.CommandLine); err != nil {
		logrus.Fatal(err)
	}
	log, err := app.NewLogger(cfg.LogLevel, os.Stderr)
	if err != nil {
		logrus.Fatal(err)
	}
	if err := run(cfg, log, os.Stdin, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(cfg *app.Config, log logrus.FieldLogger, stdin io.Reader, stdout io.Writer) error {
	in := stdin
	if cfg.Input != "-" {
		f, err := os.Open(cfg.Input)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	start := time.Now()
	g, err := cascade.Load(in)
	if err != nil {
		return fmt.Errorf("load %s: %w", cfg.Input, err)
	}
	g.SetMaxSyncSteps(cfg.MaxSync)
	log.WithFields(logrus.Fields{
		"width":  g.Width(),
		"height": g.Height(),
		"setup":  time.Since(start),
	}).Debug("grid loaded")

	var history []int
	g.Observe(func(step, flashes int) {
		history = append(history, flashes)
		if flashes == g.Cells() {
			log.WithField("step", step).Debug("all cells flashed")
		}
	})

	start = time.Now()
	ans, err := cascade.Solve(g, cfg.Steps)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"steps":   g.Steps(),
		"elapsed": time.Since(start),
	}).Info("solved")

	fmt.Fprintf(stdout, "part1=%d\npart2=%d\n", ans.Flashes, ans.SyncStep)

	if cfg.Chart != "" {
		if err := writeChart(cfg.Chart, history, g.Cells()); err != nil {
			return err
		}
		log.WithField("path", cfg.Chart).Info("wrote flash chart")
	}
	return nil
}

func writeChart(path string, history []int, cells int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := report.WriteFlashChart(f, history, cells); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
