package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jorge-barreto/carve/internal/config"
	"github.com/jorge-barreto/carve/internal/docs"
	"github.com/jorge-barreto/carve/internal/report"
	"github.com/jorge-barreto/carve/internal/runner"
	"github.com/jorge-barreto/carve/internal/scaffold"
	"github.com/jorge-barreto/carve/internal/ux"
	"github.com/jorge-barreto/carve/internal/watch"
	cli "github.com/urfave/cli/v3"
)

const stateDir = ".carve"

func main() {
	app := &cli.Command{
		Name:        "carve",
		Usage:       "Materialize code files from assistant transcripts",
		Description: "Run 'carve docs' for documentation on declaration syntax, artifact spans, and config.",
		Commands: []*cli.Command{
			extractCmd(),
			watchCmd(),
			reportCmd(),
			initCmd(),
			docsCmd(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%serror:%s %v\n", ux.Red, ux.Reset, err)
		os.Exit(1)
	}
}

func sharedFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "config", Value: ".carve.yaml", Usage: "Path to config file"},
		&cli.StringFlag{Name: "out", Usage: "Output directory (overrides config)"},
		&cli.BoolFlag{Name: "force", Usage: "Overwrite existing files without asking"},
		&cli.BoolFlag{Name: "skip-existing", Usage: "Never touch existing files"},
	}
}

// loadConfig resolves the effective config for a command: file first, then
// flag overrides.
func loadConfig(cmd *cli.Command) (*config.Config, error) {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if out := cmd.String("out"); out != "" {
		cfg.OutputDir = out
	}
	force := cmd.Bool("force")
	skip := cmd.Bool("skip-existing")
	if force && skip {
		return nil, fmt.Errorf("--force and --skip-existing are mutually exclusive")
	}
	if force {
		cfg.OnExisting = config.OnExistingOverwrite
	}
	if skip {
		cfg.OnExisting = config.OnExistingSkip
	}
	return cfg, nil
}

func extractCmd() *cli.Command {
	return &cli.Command{
		Name:      "extract",
		Usage:     "Extract embedded code files from a transcript",
		ArgsUsage: "<transcript>",
		Flags:     sharedFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			input := cmd.Args().First()
			if input == "" {
				return fmt.Errorf("transcript argument is required")
			}

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			r := &runner.Runner{
				Config:   cfg,
				Input:    input,
				StateDir: stateDir,
			}
			return r.Run(ctx)
		},
	}
}

func watchCmd() *cli.Command {
	return &cli.Command{
		Name:      "watch",
		Usage:     "Re-extract whenever the transcript changes",
		ArgsUsage: "<transcript>",
		Flags:     sharedFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			input := cmd.Args().First()
			if input == "" {
				return fmt.Errorf("transcript argument is required")
			}

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if cfg.OnExisting == config.OnExistingPrompt {
				return fmt.Errorf("watch mode cannot prompt about existing files; pass --force or --skip-existing (or set on-existing in .carve.yaml)")
			}

			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			r := &runner.Runner{
				Config:   cfg,
				Input:    input,
				StateDir: stateDir,
			}

			// Initial pass, then re-run on each debounced change. A failing
			// pass keeps the watch alive: the next save may fix it.
			if err := r.Run(ctx); err != nil {
				fmt.Fprintf(os.Stderr, "%serror:%s %v\n", ux.Red, ux.Reset, err)
			}

			ux.WatchStarted(input)
			debounce := time.Duration(cfg.DebounceMS) * time.Millisecond
			err = watch.Watch(ctx, input, debounce, func() {
				ux.WatchTriggered(input)
				if err := r.Run(ctx); err != nil {
					fmt.Fprintf(os.Stderr, "%serror:%s %v\n", ux.Red, ux.Reset, err)
				}
			})
			if err == context.Canceled {
				return nil
			}
			return err
		},
	}
}

func reportCmd() *cli.Command {
	return &cli.Command{
		Name:  "report",
		Usage: "Show the last extraction run's report",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			rep, err := report.LoadLatest(stateDir)
			if err != nil {
				return fmt.Errorf("loading report: %w", err)
			}
			if rep == nil {
				return fmt.Errorf("no runs recorded yet; run 'carve extract <transcript>' first")
			}
			ux.RenderReport(rep)
			return nil
		},
	}
}

func initCmd() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Write an example .carve.yaml to the current directory",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			dir, err := os.Getwd()
			if err != nil {
				return err
			}
			return scaffold.Init(dir)
		},
	}
}

func docsCmd() *cli.Command {
	return &cli.Command{
		Name:      "docs",
		Usage:     "Show documentation",
		ArgsUsage: "[topic]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			name := cmd.Args().First()
			if name == "" {
				fmt.Print("\nAvailable topics:\n\n")
				for _, t := range docs.All() {
					fmt.Printf("  %-14s %s\n", t.Name, t.Summary)
				}
				fmt.Println("\nRun 'carve docs <topic>' to read a topic.")
				return nil
			}
			t, err := docs.Get(name)
			if err != nil {
				return err
			}
			fmt.Print(t.Content)
			return nil
		},
	}
}
