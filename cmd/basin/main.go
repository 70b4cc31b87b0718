// Command basin reads a height map and reports the risk sum of its low points
// and the product of its three largest basins.
//
// Usage:
//
//	basin <input-file>
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridprop/basin"
	"github.com/katalvlaran/gridprop/internal/cli"
)

const largest = 3

func main() {
	log := cli.NewLogger(os.Stderr)
	if err := run(os.Args[1:], os.Stdout, log); err != nil {
		log.WithError(err).Error("basin failed")
		os.Exit(cli.ExitCode(err))
	}
}

func run(args []string, stdout io.Writer, log *logrus.Logger) error {
	path, err := cli.InputPath("basin", args)
	if err != nil {
		return err
	}
	values, err := cli.LoadGrid(path)
	if err != nil {
		return err
	}
	hm, err := basin.New(values)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	log.WithFields(logrus.Fields{
		"path":   path,
		"width":  hm.Width(),
		"height": hm.Height(),
	}).Info("height map loaded")

	risk := hm.RiskSum()
	product, err := hm.LargestProduct(largest)
	if err != nil {
		return err
	}
	log.WithField("low_points", len(hm.LowPoints())).Info("basins measured")

	_, err = fmt.Fprintf(stdout, "Risk sum: %d\nBasin product: %d\n", risk, product)
	return err
}
