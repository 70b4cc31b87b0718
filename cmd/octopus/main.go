// Command octopus simulates a grid of flashing energy levels and reports the
// flash count after 100 ticks and the first tick in which every cell flashes.
//
// Usage:
//
//	octopus <input-file>
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridprop/internal/cli"
	"github.com/katalvlaran/gridprop/octopus"
)

const (
	fixedTicks = 100
	// syncLimit bounds the search for a synchronized tick.
	syncLimit = 1_000_000
)

func main() {
	log := cli.NewLogger(os.Stderr)
	if err := run(os.Args[1:], os.Stdout, log); err != nil {
		log.WithError(err).Error("octopus failed")
		os.Exit(cli.ExitCode(err))
	}
}

// run computes both answers before writing anything to stdout.
func run(args []string, stdout io.Writer, log *logrus.Logger) error {
	path, err := cli.InputPath("octopus", args)
	if err != nil {
		return err
	}
	values, err := cli.LoadGrid(path)
	if err != nil {
		return err
	}
	e, err := octopus.New(values)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	log.WithFields(logrus.Fields{
		"path":   path,
		"width":  e.Width(),
		"height": e.Height(),
	}).Info("grid loaded")

	rep, err := e.Report(fixedTicks, syncLimit)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	log.WithFields(logrus.Fields{
		"ticks":   e.Tick(),
		"flashes": e.Total(),
	}).Info("simulation complete")

	_, err = fmt.Fprintf(stdout, "Flash count at tick %d: %d\nAll flash tick: %d\n",
		rep.FixedTicks, rep.FixedTotal, rep.SyncTick)
	return err
}
