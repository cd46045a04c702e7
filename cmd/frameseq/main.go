// Package main provides the CLI entry point for frameseq.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/user/frameseq/pkg/adapters/logger"
	"github.com/user/frameseq/pkg/adapters/osfilesystem"
	"github.com/user/frameseq/pkg/config"
	"github.com/user/frameseq/pkg/manifest"
	"github.com/user/frameseq/pkg/orchestrator"
	"github.com/user/frameseq/pkg/ports"
	"github.com/user/frameseq/pkg/stages/list"
	"github.com/user/frameseq/pkg/stages/plan"
)

var version = "dev"

// runner holds what commands need from the process, swapped in tests.
type runner struct {
	stdout    io.Writer
	fs        ports.FileSystem
	newLogger func(level ports.LogLevel) ports.Logger
}

func main() {
	r := &runner{
		stdout: os.Stdout,
		fs:     osfilesystem.New(),
		newLogger: func(level ports.LogLevel) ports.Logger {
			return logger.NewStderrConsole(level)
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, l10n.T("Interrupted, shutting down..."))
		cancel()
	}()

	if err := r.app().RunContext(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func (r *runner) app() *cli.App {
	listFlags := []cli.Flag{
		&cli.StringSliceFlag{
			Name:    "ext",
			Aliases: []string{"e"},
			Usage:   l10n.T("Only list files with this extension (repeatable)"),
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   l10n.T("Manifest format (text, tsv, yaml, json)"),
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   l10n.T("Write the manifest to this file instead of stdout"),
		},
	}

	return &cli.App{
		Name:      "frameseq",
		Usage:     l10n.T("List and plan frame files in natural order"),
		Version:   version,
		Writer:    r.stdout,
		ErrWriter: os.Stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   l10n.T("YAML configuration file"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   l10n.T("Log level (debug, info, warn, error)"),
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"Q"},
				Usage:   l10n.T("Suppress all log output"),
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "list",
				Usage:     l10n.T("List the regular files of a directory in natural order"),
				ArgsUsage: "DIR",
				Flags:     listFlags,
				Action:    r.runList,
			},
			{
				Name:      "plan",
				Usage:     l10n.T("Map every file of a directory to an output file"),
				ArgsUsage: "DIR",
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name:    "to",
						Aliases: []string{"t"},
						Usage:   l10n.T("Output directory"),
					},
					&cli.StringFlag{
						Name:  "image-format",
						Usage: l10n.T("Output extension (default: keep the input extension)"),
					},
					&cli.StringFlag{
						Name:  "sequence",
						Usage: l10n.T("Name outputs by index instead of stem, e.g. %08d"),
					},
				}, listFlags...),
				Action: r.runPlan,
			},
			{
				Name:  "version",
				Usage: l10n.T("Show version information"),
				Action: func(c *cli.Context) error {
					fmt.Fprintln(r.stdout, l10n.F("frameseq version %s", version))
					return nil
				},
			},
		},
	}
}

func (r *runner) runList(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	cfg.OutputDir = ""
	return r.run(c, cfg)
}

func (r *runner) runPlan(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	if c.IsSet("to") {
		cfg.OutputDir = c.String("to")
	}
	if c.IsSet("image-format") {
		cfg.ImageFormat = c.String("image-format")
	}
	if c.IsSet("sequence") {
		cfg.Sequence = c.String("sequence")
	}
	if cfg.OutputDir == "" {
		return errors.New(l10n.T("An output directory is required (--to or output_dir)"))
	}
	if !c.IsSet("format") && cfg.ManifestFormat == "text" {
		cfg.ManifestFormat = "tsv"
	}
	return r.run(c, cfg)
}

func (r *runner) run(c *cli.Context, cfg config.Config) error {
	if c.NArg() != 1 {
		return errors.New(l10n.T("Exactly one directory argument is required"))
	}
	dir := c.Args().First()

	var log ports.Logger
	if c.Bool("quiet") {
		log = logger.NewNoop()
	} else {
		log = r.newLogger(ports.ParseLogLevel(cfg.LogLevel))
	}

	formatter, err := manifest.FormatterFor(cfg.ManifestFormat)
	if err != nil {
		return err
	}

	orch := orchestrator.New(
		list.NewStage(r.fs, log),
		plan.NewStage(log),
		log,
	)
	result, err := orch.Run(c.Context, cfg.ToOrchestratorConfig(dir))
	if err != nil {
		return err
	}

	m := manifest.FromResult(result)
	w := manifest.NewWriter(formatter, r.fs)
	if cfg.ManifestPath == "" {
		return w.Print(r.stdout, m)
	}
	if err := w.Write(cfg.ManifestPath, m); err != nil {
		return err
	}
	log.Info("Manifest saved to %s", cfg.ManifestPath)
	return nil
}

// loadConfig reads --config when given and applies the flags shared by all
// commands on top.
func loadConfig(c *cli.Context) (config.Config, error) {
	cfg := config.Defaults()
	if path := c.String("config"); path != "" {
		loaded, err := config.LoadFromFile(path)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	if c.IsSet("ext") {
		cfg.Extensions = c.StringSlice("ext")
	}
	if c.IsSet("format") {
		cfg.ManifestFormat = c.String("format")
	}
	if c.IsSet("output") {
		cfg.ManifestPath = c.String("output")
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	return cfg, cfg.Validate()
}
