// cmd/trail/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"

	"ambient-trail/internal/app"
	"ambient-trail/internal/config"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Глобальные флаги
	configPath string
	verbose    bool
	pprofAddr  string
	watch      bool
	windowed   bool
	showHUD    bool

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "trail",
	Short: "Ambient particle trail that follows the pointer",
	Long: `trail draws small glowing particles behind the pointer in a transparent,
click-through window on top of everything else.

Keys (windowed mode or focused overlay): T toggles the trail, H toggles the HUD,
Esc quits the windowed mode.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if windowed {
			cfg.Window.Overlay = false
		}
		if showHUD {
			cfg.Window.HUD = true
		}

		zc := zap.NewProductionConfig()
		level, err := zapcore.ParseLevel(cfg.Log.Level)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", cfg.Log.Level, err)
		}
		if verbose {
			level = zapcore.DebugLevel
		}
		zc.Level = zap.NewAtomicLevelAt(level)
		logger, err = zc.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		if pprofAddr != "" {
			go func() {
				logger.Info("pprof listening", zap.String("addr", pprofAddr))
				if err := http.ListenAndServe(pprofAddr, nil); err != nil {
					logger.Warn("pprof server stopped", zap.Error(err))
				}
			}()
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runWindow,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML config file (TRAIL_* env vars override it)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&pprofAddr, "pprof", "", "Serve net/http/pprof on this address, e.g. localhost:6060")
	rootCmd.PersistentFlags().BoolVar(&watch, "watch", false, "Reload trail tuning when the config file changes")
	rootCmd.Flags().BoolVar(&windowed, "windowed", false, "Open a normal window instead of a click-through overlay")
	rootCmd.Flags().BoolVar(&showHUD, "hud", false, "Show particle count and TPS")

	rootCmd.AddCommand(termCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// signalContext отменяется по SIGINT/SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}

// watchConfig запускает наблюдение за файлом, если оно запрошено.
func watchConfig(onChange func(*config.Config)) (func(), error) {
	if !watch {
		return func() {}, nil
	}
	if configPath == "" {
		return nil, fmt.Errorf("--watch requires --config")
	}
	w, err := config.Watch(configPath, logger, onChange)
	if err != nil {
		return nil, err
	}
	return func() { _ = w.Close() }, nil
}

func runWindow(cmd *cobra.Command, args []string) error {
	ctx, cancel := signalContext()
	defer cancel()

	game, err := app.NewGame(ctx, cfg, logger)
	if err != nil {
		return err
	}
	stop, err := watchConfig(func(c *config.Config) { game.Retune(c.Trail) })
	if err != nil {
		return err
	}
	defer stop()

	return game.Run()
}
