/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package main

import (
	"context"
	"log"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/humaidq/cardioviz/cmd"
)

func main() {
	app := &cli.Command{
		Name:   "cardioviz",
		Usage:  "Cardiovascular examination charts",
		Flags:  cmd.RenderFlags(),
		Action: cmd.Render,
		Commands: []*cli.Command{
			cmd.CmdRender,
			cmd.CmdSummary,
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
