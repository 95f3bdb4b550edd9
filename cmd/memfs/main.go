package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/urfave/cli/v2"
	"github.com/weberc2/memfs/pkg/filesystem"
	"github.com/weberc2/memfs/pkg/logger"
)

func main() {
	app := cli.App{
		Name:  appName,
		Usage: "an in-memory filesystem shell",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to a YAML config file",
			},
			&cli.IntFlag{Name: "block-size", Usage: "bytes per block"},
			&cli.IntFlag{Name: "blocks", Usage: "number of blocks"},
			&cli.IntFlag{
				Name:  "entries",
				Usage: "entry table capacity, the root included",
			},
			&cli.IntFlag{Name: "name-max", Usage: "longest name in bytes"},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "debug, info, warn or error",
			},
			&cli.BoolFlag{Name: "no-prompt", Usage: "don't print prompts"},
		},
		Action: func(c *cli.Context) error {
			return run(c, os.Stdin, true)
		},
		Commands: []*cli.Command{{
			Name:  "shell",
			Usage: "run the interactive shell",
			Action: func(c *cli.Context) error {
				return run(c, os.Stdin, true)
			},
		}, {
			Name:      "exec",
			Usage:     "run the commands in FILE (`-` for stdin)",
			ArgsUsage: "FILE",
			Action: func(c *cli.Context) error {
				path := c.Args().First()
				if path == "" {
					return fmt.Errorf("exec: missing required argument: FILE")
				}
				if path == "-" {
					return run(c, os.Stdin, false)
				}
				f, err := os.Open(path)
				if err != nil {
					return fmt.Errorf("exec: %w", err)
				}
				defer f.Close()
				return run(c, f, false)
			},
		}},
	}

	if err := app.RunContext(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context, in io.Reader, interactive bool) error {
	config, err := LoadConfig(c.String("config"))
	if err != nil {
		return err
	}
	applyFlags(c, config)
	if err := config.Validate(); err != nil {
		return err
	}

	l, err := logger.New(os.Stderr, config.LogLevel)
	if err != nil {
		return err
	}
	params := config.Params(l)
	fs, err := filesystem.New(&params)
	if err != nil {
		return err
	}

	shell := Shell{
		FS:     fs,
		Out:    os.Stdout,
		Prompt: interactive && config.Prompt,
	}
	return shell.Run(logger.Set(c.Context, l), in)
}

func applyFlags(c *cli.Context, config *Config) {
	if c.IsSet("block-size") {
		config.BlockSize = c.Int("block-size")
	}
	if c.IsSet("blocks") {
		config.Blocks = c.Int("blocks")
	}
	if c.IsSet("entries") {
		config.Entries = c.Int("entries")
	}
	if c.IsSet("name-max") {
		config.NameMax = c.Int("name-max")
	}
	if c.IsSet("log-level") {
		config.LogLevel = c.String("log-level")
	}
	if c.Bool("no-prompt") {
		config.Prompt = false
	}
}
