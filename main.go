package main

import (
	"os"

	"github.com/MixinNetwork/ratnum/config"
	"github.com/MixinNetwork/ratnum/logger"
	"github.com/urfave/cli/v2"
)

func main() {
	app := newApp()
	err := app.Run(os.Args)
	if err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "ratnum"
	app.Usage = "Exact rational number arithmetic, parsing and formatting."
	app.Version = config.BuildVersion
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "the TOML configuration file",
		},
		&cli.IntFlag{
			Name:    "log",
			Aliases: []string{"l"},
			Usage:   "the log level, overrides the configuration",
		},
		&cli.StringFlag{
			Name:  "filter",
			Usage: "the RE2 regex pattern to filter log",
		},
	}
	app.Before = setupCmd
	app.EnableBashCompletion = true
	app.Commands = []*cli.Command{
		{
			Name:   "demo",
			Usage:  "Print sample values and every operation on them",
			Action: demoCmd,
		},
		{
			Name:   "eval",
			Usage:  "Evaluate a binary operation on two rational numbers",
			Action: evalCmd,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "a",
					Usage:    "the left operand, `n` or `n/d`",
					Required: true,
				},
				&cli.StringFlag{
					Name:     "b",
					Usage:    "the right operand, `n` or `n/d`",
					Required: true,
				},
				&cli.StringFlag{
					Name:    "op",
					Aliases: []string{"o"},
					Value:   "add",
					Usage:   "the operation, one of add, sub, mul and div",
				},
			},
		},
		{
			Name:   "compare",
			Usage:  "Compare two rational numbers",
			Action: compareCmd,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "a",
					Usage:    "the left operand",
					Required: true,
				},
				&cli.StringFlag{
					Name:     "b",
					Usage:    "the right operand",
					Required: true,
				},
			},
		},
		{
			Name:      "parse",
			Usage:     "Parse literals and print the canonical forms",
			ArgsUsage: "LITERAL [LITERAL...]",
			Action:    parseCmd,
		},
		{
			Name:   "decimal",
			Usage:  "Convert between rational and fixed decimal",
			Action: decimalCmd,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "value",
					Aliases:  []string{"v"},
					Usage:    "the rational literal, or a decimal literal with --reverse",
					Required: true,
				},
				&cli.IntFlag{
					Name:    "places",
					Aliases: []string{"p"},
					Usage:   "the decimal places, defaults to the configuration",
				},
				&cli.BoolFlag{
					Name:  "reverse",
					Usage: "read a decimal literal and print the rational number",
				},
			},
		},
	}
	return app
}
