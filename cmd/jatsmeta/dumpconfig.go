package main

import (
	"context"
	"fmt"
	"os"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"jatsmeta/config"
	"jatsmeta/state"
)

func outputConfiguration(ctx context.Context, cmd *cli.Command) error {

	env := state.EnvFromContext(ctx)
	if cmd.Args().Len() > 1 {
		env.Log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	var (
		err  error
		data []byte
		kind = "actual"
	)
	if cmd.Bool("default") {
		kind = "default"
		data, err = config.Prepare()
	} else {
		data, err = config.Dump(env.Cfg)
	}
	if err != nil {
		return fmt.Errorf("unable to get configuration: %w", err)
	}

	fname := cmd.Args().Get(0)
	if len(fname) == 0 {
		// configuration is the result, keep stdout clean
		env.Console.Redirect(os.Stderr)
		env.Log.Info("Outputing configuration", zap.String("state", kind), zap.String("file", "STDOUT"))
		if _, err = os.Stdout.Write(data); err != nil {
			return fmt.Errorf("unable to write configuration: %w", err)
		}
		return nil
	}

	env.Log.Info("Outputing configuration", zap.String("state", kind), zap.String("file", fname))
	if err := os.WriteFile(fname, data, 0644); err != nil {
		return fmt.Errorf("unable to write configuration to '%s': %w", fname, err)
	}
	return nil
}
