/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/urfave/cli/v3"

	"github.com/humaidq/cardioviz/analysis"
)

var CmdSummary = &cli.Command{
	Name:   "summary",
	Usage:  "Print the risk factor counts and the filtered correlation matrix",
	Flags:  []cli.Flag{inputFlag()},
	Action: summary,
}

var heading = color.New(color.Bold)

func summary(ctx context.Context, cmd *cli.Command) error {
	input := cmd.String("input")
	if input == "" {
		return errInputRequired
	}

	logger := appLogger.With("run", uuid.New().String())
	res, err := runPipeline(ctx, logger, input)
	if err != nil {
		return err
	}

	w := cmd.Root().Writer
	if err := writeCounts(w, res.counts); err != nil {
		return err
	}
	fmt.Fprintf(w, "\nRows kept for correlation: %d of %d\n\n", res.filter.Kept, res.filter.Total)
	return writeCorrelation(w, res.correlation)
}

func writeCounts(w io.Writer, counts []analysis.FactorCount) error {
	heading.Fprintln(w, "Risk factor counts")

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "cardio\tvariable\tvalue\ttotal")
	for _, c := range counts {
		fmt.Fprintf(tw, "%g\t%s\t%g\t%d\n", c.Cardio, c.Variable, c.Value, c.Total)
	}
	return tw.Flush()
}

// writeCorrelation prints the lower triangle of the matrix, matching what
// the heatmap shows.
func writeCorrelation(w io.Writer, corr analysis.CorrelationMatrix) error {
	heading.Fprintln(w, "Correlation (lower triangle)")

	mask := analysis.UpperTriangleMask(corr.Size())
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)

	fmt.Fprint(tw, "\t")
	for _, name := range corr.Names {
		fmt.Fprintf(tw, "%s\t", name)
	}
	fmt.Fprintln(tw)

	for i, name := range corr.Names {
		fmt.Fprintf(tw, "%s\t", name)
		for j := range corr.Names {
			if mask[i][j] {
				fmt.Fprint(tw, "\t")
				continue
			}
			fmt.Fprintf(tw, "%s\t", analysis.FormatValue(corr.At(i, j)))
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}
