// Copyright (c) 2025 The greetbox authors.
// SPDX-License-Identifier: MIT

package command

import (
	"os/exec"

	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/greetbox/greetbox/internal/config"
)

func init() {
	cfg, _ = config.Load("")
}

var (
	cfg config.Type

	tldrFlag *cli.BoolFlag = &cli.BoolFlag{
		Name:        "tldr",
		Usage:       "show tldr page",
		Hidden:      !pathHas("tldr"),
		HideDefault: true,
	}
)

// NewColorFlag constructs the color override flag. ns is the config
// namespace (command name) used to resolve namespaced YAML keys ahead of
// global ones. The root command carries only this flag; it renders no
// tables, so the rest of the global set does not apply there.
func NewColorFlag(ns string) *cli.BoolWithInverseFlag {
	return &cli.BoolWithInverseFlag{
		Name:    "color",
		Aliases: []string{"c"},
		Usage:   "force decorated output on or off, overriding terminal detection",
		Sources: cli.NewValueSourceChain(
			yaml.YAML(ns+"."+"color", altsrc.StringSourcer(cfg.Source)),
			yaml.YAML("color", altsrc.StringSourcer(cfg.Source)),
		),
	}
}

// NewGlobalFlags builds the flags shared by the table-rendering
// subcommands. params[0] is the config namespace.
func NewGlobalFlags(params ...string) (flags []cli.Flag) {
	flags = []cli.Flag{
		NewColorFlag(params[0]),
		&cli.BoolWithInverseFlag{
			Name:    "titles",
			Aliases: []string{"t"},
			Usage:   "show titles with tabular output",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(params[0]+"."+"titles", altsrc.StringSourcer(cfg.Source)),
				yaml.YAML("titles", altsrc.StringSourcer(cfg.Source)),
			),
			Value: false,
		},
	}

	return
}

// NewStyleFlag constructs the border style flag for the box subcommand,
// with a namespaced config source and value validation.
func NewStyleFlag(ns string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "style",
		Aliases: []string{"s"},
		Usage:   "border style",
		Sources: cli.NewValueSourceChain(
			yaml.YAML(ns+"."+"style", altsrc.StringSourcer(cfg.Source)),
			yaml.YAML("style", altsrc.StringSourcer(cfg.Source)),
		),
		Value: "sharp",
		Validator: func(value string) error {
			return FlagValidators(value, JammedFlagValidator, StyleValidator)
		},
	}
}

// pathHas checks if the given executable exists on PATH.
func pathHas(target string) bool {
	_, err := exec.LookPath(target)
	return err == nil
}
