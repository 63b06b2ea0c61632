// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"cogentcore.org/sgview/base/errors"
	"cogentcore.org/sgview/present"
	"cogentcore.org/sgview/scene"
	"github.com/spf13/cobra"
)

func (a *app) buildCmd() *cobra.Command {
	format := "yaml"
	cmd := &cobra.Command{
		Use:   "build [file]",
		Short: "Build a scene graph and print a summary of it",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := os.ReadFile(a.scenePath(args))
			if err != nil {
				return errors.Log(err)
			}
			g, err := scene.Build(text, a.cfg.Source, a.cfg.BuildOptions()...)
			if err != nil {
				return errors.Log(err)
			}
			return errors.Log(writeSummary(cmd.OutOrStdout(), g, format))
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", format, "output format: yaml or text")
	return cmd
}

func writeSummary(w io.Writer, g *scene.Graph, format string) error {
	switch format {
	case "yaml":
		return present.WriteYAML(w, g)
	case "text":
		fmt.Fprintf(w, "%v: %d nodes, %d edges, %d dropped\n", g.Source, g.NumNodes(), g.NumEdges(), len(g.Dropped))
		for _, nd := range g.Nodes() {
			fmt.Fprintf(w, "%v at %v out %v in %v\n", nd, nd.Pose.Pos, nd.Out, nd.In)
		}
		for _, ed := range g.Edges() {
			fmt.Fprintf(w, "%v %v\n", ed, ed.Gradient)
		}
		for _, d := range g.Dropped {
			fmt.Fprintf(w, "dropped %v\n", d)
		}
		return nil
	}
	return fmt.Errorf("unknown format %q", format)
}
