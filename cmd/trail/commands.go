// cmd/trail/commands.go
package main

import (
	"fmt"
	"os"

	"ambient-trail/internal/config"
	"ambient-trail/internal/loop"
	"ambient-trail/internal/term"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

var (
	simMoves  int
	simWidth  int
	simHeight int
	simSeed   int64
)

// termCmd рисует след прямо в терминале.
var termCmd = &cobra.Command{
	Use:   "term",
	Short: "Draw the trail in the terminal (needs mouse motion reporting)",
	Long: `Renders the trail with background colours of terminal cells.
Move the mouse over the terminal; t toggles the trail, q or Esc quits.`,
	RunE: runTerm,
}

// simulateCmd гоняет след без окна по заданному сценарию.
var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the trail headless with a scripted pointer sweep",
	RunE:  runSimulate,
}

// configCmd печатает итоговую конфигурацию.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("marshal config: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}

func init() {
	simulateCmd.Flags().IntVar(&simMoves, "moves", 10, "Pointer-move events to send")
	simulateCmd.Flags().IntVar(&simWidth, "width", 0, "Logical surface width (default: window width)")
	simulateCmd.Flags().IntVar(&simHeight, "height", 0, "Logical surface height (default: window height)")
	simulateCmd.Flags().Int64Var(&simSeed, "seed", 0, "Random seed (0: time based)")
}

func runTerm(cmd *cobra.Command, args []string) error {
	ctx, cancel := signalContext()
	defer cancel()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()

	t := term.New(screen, cfg, logger)
	// правки конфига применяет цикл Run между кадрами
	tuning := make(chan config.TrailConfig, 1)
	stop, err := watchConfig(func(c *config.Config) {
		select {
		case tuning <- c.Trail:
		default:
			logger.Warn("config reload dropped, previous one still pending")
		}
	})
	if err != nil {
		return err
	}
	defer stop()

	return t.Run(ctx, tuning)
}

func runSimulate(cmd *cobra.Command, args []string) error {
	ctx, cancel := signalContext()
	defer cancel()

	if simSeed != 0 {
		cfg.Trail.Seed = simSeed
	}
	sum, err := loop.Simulate(ctx, cfg, loop.SimulationOptions{
		Moves:  simMoves,
		Width:  simWidth,
		Height: simHeight,
	}, logger)
	if err != nil {
		return err
	}
	logger.Debug("simulation summary", zap.Any("summary", sum))
	fmt.Fprintf(os.Stdout, "moves=%d spawned=%d peak=%d remaining=%d frames=%d elapsed=%s\n",
		sum.Moves, sum.Spawned, sum.Peak, sum.Remaining, sum.Frames, sum.Elapsed)
	return nil
}
