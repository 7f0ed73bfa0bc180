// Package command wires the kvfile CLI: global flags, config layering and
// the subcommands that operate on a store file.
package command

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/stevemurr/kvfile/config"
)

// NewApp builds the kvfile cli application.
func NewApp() *cli.App {
	return &cli.App{
		Name:    "kvfile",
		Usage:   "keep a small key/value store in a YAML, JSON, TOML, CSV or SQLite file",
		Version: "0.2.0",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "path of the store file",
				EnvVars: []string{"KVFILE_PATH"},
			},
			&cli.StringFlag{
				Name:    "format",
				Usage:   "store format, detected from the file extension when unset",
				EnvVars: []string{"KVFILE_FORMAT"},
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path of an optional config file with defaults",
				EnvVars: []string{"KVFILE_CONFIG"},
			},
			&cli.BoolFlag{
				Name:    "debug",
				Usage:   "enable debug logging",
				EnvVars: []string{"KVFILE_DEBUG"},
			},
		},
		Before:   setup,
		Commands: Commands(),
	}
}

// setup configures logging and folds config file defaults into any flag
// that was not set on the command line or through the environment.
func setup(ctx *cli.Context) error {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(zerolog.InfoLevel).
		With().Timestamp().Logger()

	cfg, err := config.Load(ctx.String("config"))
	if err != nil {
		return err
	}
	if !ctx.IsSet("file") && cfg.File != "" {
		if err := ctx.Set("file", cfg.File); err != nil {
			return err
		}
	}
	if !ctx.IsSet("format") && cfg.Format != "" {
		if err := ctx.Set("format", cfg.Format); err != nil {
			return err
		}
	}
	if !ctx.IsSet("debug") && cfg.Debug {
		if err := ctx.Set("debug", "true"); err != nil {
			return err
		}
	}

	if ctx.Bool("debug") {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	}
	return nil
}
