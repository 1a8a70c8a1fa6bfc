package main

import (
	"context"
	"fmt"
	"io"
	"os"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"jatsmeta/jats"
	"jatsmeta/raw"
	"jatsmeta/state"
)

func listFields(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)
	env.Console.Redirect(os.Stderr)

	var err error
	if cmd.Bool("locations") {
		err = writeLocations(os.Stdout)
	} else {
		err = writeFields(os.Stdout)
	}
	if err != nil {
		return fmt.Errorf("unable to list fields: %w", err)
	}
	env.Log.Debug("Fields listed", zap.Bool("locations", cmd.Bool("locations")))
	return nil
}

// writeFields prints output field names in canonical order.
func writeFields(w io.Writer) error {
	for _, f := range jats.Fields() {
		if _, err := fmt.Fprintln(w, f.Name); err != nil {
			return err
		}
	}
	return nil
}

// writeLocations prints every raw field with the locations tried, in order.
func writeLocations(w io.Writer) error {
	for _, f := range raw.Known() {
		locs, err := raw.Resolve(f)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, f); err != nil {
			return err
		}
		for _, l := range locs {
			line := fmt.Sprintf("    %-10s %s", l.Dialect, l.Path)
			if l.Attr != "" {
				line += " @" + l.Attr
			}
			if l.Without != "" {
				line += " without @" + l.Without
			}
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
	}
	return nil
}
