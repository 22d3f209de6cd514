package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"lifefb/internal/app"
	"lifefb/internal/framebuffer"
	"lifefb/internal/sims/life"
	"lifefb/internal/surface/bubble"
	"lifefb/internal/surface/headless"
	_ "lifefb/internal/surface/raylib"
	_ "lifefb/internal/surface/sdl"
	"lifefb/internal/surface/term"
	_ "lifefb/internal/surface/window"
	"lifefb/internal/ui"
)

const summaryWidth = 72

var (
	configFile   string
	fractalSteps int
	cfg          = app.DefaultConfig()
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "lifefb",
		Short:        "Conway's Game of Life on a software framebuffer",
		SilenceUsage: true,
		RunE:         runLife,
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cfg.Bind(rootCmd.PersistentFlags())

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run the simulation (default)",
		Args:  cobra.NoArgs,
		RunE:  runLife,
	}

	fractalCmd := &cobra.Command{
		Use:   "fractal",
		Short: "draw the recursive squares demo",
		Args:  cobra.NoArgs,
		RunE:  runFractal,
	}
	fractalCmd.Flags().IntVar(&fractalSteps, "steps", 6, "recursion depth")

	patternsCmd := &cobra.Command{
		Use:   "patterns",
		Short: "list built-in and loaded patterns",
		Args:  cobra.NoArgs,
		RunE:  listPatterns,
	}

	backendsCmd := &cobra.Command{
		Use:   "backends",
		Short: "list surface backends",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range framebuffer.Backends() {
				fmt.Println(name)
			}
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "print the effective configuration as yaml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return c.WriteYAML(os.Stdout)
		},
	}

	rootCmd.AddCommand(runCmd, fractalCmd, patternsCmd, backendsCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig layers the config file, when given, under the flags the user set.
func loadConfig(cmd *cobra.Command) (*app.Config, error) {
	if configFile == "" {
		return cfg, nil
	}
	fileCfg, err := app.Load(configFile)
	if err != nil {
		return nil, err
	}
	if err := fileCfg.ApplyChanged(cmd.Flags()); err != nil {
		return nil, err
	}
	return fileCfg, nil
}

// newLogger keeps diagnostics off the screen of terminal backends unless a
// log file is configured.
func newLogger(c *app.Config) (*log.Logger, io.Closer, error) {
	if c.LogFile == "" && (c.Backend == term.Name || c.Backend == bubble.Name) {
		return log.New(io.Discard, "", 0), io.NopCloser(nil), nil
	}
	return app.OpenLog(c.LogFile)
}

func runLife(cmd *cobra.Command, args []string) error {
	c, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, closer, err := newLogger(c)
	if err != nil {
		return err
	}
	defer closer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var progress io.Writer
	if c.Backend == headless.Name {
		progress = os.Stderr
	}
	stats, err := app.Run(ctx, c, logger, progress)
	if err != nil {
		return err
	}
	if c.Summary {
		fmt.Println(stats.Summary(summaryWidth))
	}
	return nil
}

func runFractal(cmd *cobra.Command, args []string) error {
	c, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, closer, err := newLogger(c)
	if err != nil {
		return err
	}
	defer closer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return app.RunFractal(ctx, c, fractalSteps, logger)
}

func listPatterns(cmd *cobra.Command, args []string) error {
	c, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if c.PatternFile != "" {
		if _, err := life.LoadPatternFile(c.PatternFile); err != nil {
			return err
		}
	}
	var rows []ui.PatternRow
	for _, name := range life.PatternNames() {
		p, err := life.Lookup(name)
		if err != nil {
			return err
		}
		rows = append(rows, ui.PatternRow{Name: p.Name, Width: p.Size.W, Height: p.Size.H, Cells: len(p.Cells)})
	}
	fmt.Println(ui.PatternTable(rows))
	return nil
}
