// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package climaker

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"
)

// ErrMissingArgument is returned when a required positional argument is not
// supplied.
var ErrMissingArgument = errors.New("missing required argument")

// CLI renders the command's surface into a urfave/cli command whose action
// collects the parsed values and calls Invoke.
func (c *Command) CLI() *cli.Command {
	return NewCLICommand(c.surface, func(ctx context.Context, parsed *cli.Command) error {
		vals, err := CollectValues(c.surface, parsed)
		if err != nil {
			return err
		}

		_, err = c.Invoke(ctx, vals)

		return err
	})
}

// NewCLICommand renders a surface into a urfave/cli command with the given
// action. The batch layer uses it to render its own derived surface.
func NewCLICommand(s Surface, action func(context.Context, *cli.Command) error) *cli.Command {
	return &cli.Command{
		Name:        s.Name,
		Description: s.Doc,
		Usage:       s.Doc,
		Arguments:   argumentsFor(s),
		Flags:       flagsFor(s),
		Action:      action,
	}
}

// argumentsFor renders the surface's positional arguments.
func argumentsFor(s Surface) []cli.Argument {
	args := make([]cli.Argument, 0, len(s.Positionals))

	for _, a := range s.Positionals {
		args = append(args, &cli.StringArg{
			Name:      a.Name,
			UsageText: strings.ToUpper(a.Name),
			Config: cli.StringConfig{
				TrimSpace: true,
			},
		})
	}

	return args
}

// flagsFor renders the surface's named options plus the verbose and force
// flags when the surface carries them.
func flagsFor(s Surface) []cli.Flag {
	var flags []cli.Flag

	for _, o := range s.Options {
		flags = append(flags, flagFor(o))
	}

	if s.Verbose {
		flags = append(flags, &cli.BoolFlag{
			Name:    VerboseFlagName,
			Aliases: []string{"v"},
			Usage:   "Increase verbosity (-v for info, -vv for debug)",
			Config: cli.BoolConfig{
				Count: new(int),
			},
		})
	}

	if s.Force {
		flags = append(flags, &cli.BoolFlag{
			Name:        ForceFlagName,
			Aliases:     []string{"f"},
			Usage:       "Force overwrite of existing output files",
			Value:       false,
			DefaultText: "false",
		})
	}

	return flags
}

// flagFor renders one option spec into a cli flag.
func flagFor(o OptSpec) cli.Flag {
	switch o.Value {
	case ValueInt:
		f := &cli.IntFlag{
			Name:     o.Name,
			Usage:    o.Usage,
			Required: o.Required,
		}
		if v, ok := o.Default.(int); ok {
			f.Value = v
		}

		return f
	case ValueFloat:
		f := &cli.FloatFlag{
			Name:     o.Name,
			Usage:    o.Usage,
			Required: o.Required,
		}
		if v, ok := o.Default.(float64); ok {
			f.Value = v
		}

		return f
	case ValueBool:
		f := &cli.BoolFlag{
			Name:  o.Name,
			Usage: o.Usage,
		}
		if v, ok := o.Default.(bool); ok {
			f.Value = v
		}

		return f
	default:
		f := &cli.StringFlag{
			Name:      o.Name,
			Usage:     o.Usage,
			Required:  o.Required,
			TakesFile: o.Value == ValuePath,
		}
		if v, ok := o.Default.(string); ok {
			f.Value = v
		}

		return f
	}
}

// CollectValues reads the parsed argument and flag values for a surface out
// of a cli command invocation.
func CollectValues(s Surface, parsed *cli.Command) (Values, error) {
	vals := make(Values)

	for _, a := range s.Positionals {
		v := parsed.StringArg(a.Name)
		if v == "" {
			return nil, fmt.Errorf("%w: %s", ErrMissingArgument, strings.ToUpper(a.Name))
		}

		vals[a.Name] = v
	}

	for _, o := range s.Options {
		if !parsed.IsSet(o.Name) && o.Default == nil && !o.Required {
			continue
		}

		switch o.Value {
		case ValueInt:
			vals[o.Name] = parsed.Int(o.Name)
		case ValueFloat:
			vals[o.Name] = parsed.Float(o.Name)
		case ValueBool:
			vals[o.Name] = parsed.Bool(o.Name)
		default:
			vals[o.Name] = parsed.String(o.Name)
		}
	}

	if s.Verbose {
		vals[VerboseFlagName] = parsed.Count(VerboseFlagName)
	}

	if s.Force {
		vals[ForceFlagName] = parsed.Bool(ForceFlagName)
	}

	return vals, nil
}
