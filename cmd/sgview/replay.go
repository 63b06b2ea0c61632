// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"cogentcore.org/sgview/base/errors"
	"cogentcore.org/sgview/highlight"
	"cogentcore.org/sgview/present"
	"cogentcore.org/sgview/session"
	"github.com/spf13/cobra"
)

func (a *app) replayCmd() *cobra.Command {
	var script string
	var realtime bool
	cmd := &cobra.Command{
		Use:   "replay [file] --hits 1,1,2,-",
		Short: "Replay a scripted sequence of ray samples and print the highlight changes",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			evs, err := parseScript(script)
			if err != nil {
				return errors.Log(err)
			}
			text, err := os.ReadFile(a.scenePath(args))
			if err != nil {
				return errors.Log(err)
			}
			ss := session.New(a.cfg, &present.Logger{Style: a.cfg.Style()})
			if _, err := ss.Load(text); err != nil {
				return errors.Log(err)
			}
			tick := time.Duration(0)
			if realtime {
				tick = a.cfg.Tick()
			}
			replay(cmd.OutOrStdout(), ss, evs, tick)
			return nil
		},
	}
	cmd.Flags().StringVar(&script, "hits", "", "comma separated ray samples: node ids, or - for no hit")
	cmd.Flags().BoolVar(&realtime, "realtime", false, "wait the configured tick interval between samples")
	return cmd
}

// replay feeds the events to the session one per tick, writing each
// resulting delta to w. A zero tick runs without waiting.
func replay(w io.Writer, ss *session.Session, evs []highlight.Event, tick time.Duration) {
	var tk *time.Ticker
	if tick > 0 {
		tk = time.NewTicker(tick)
		defer tk.Stop()
	}
	for i, ev := range evs {
		if tk != nil {
			<-tk.C
		}
		for _, d := range ss.Tick(ev) {
			fmt.Fprintf(w, "%d %v %v\n", i, ev, d)
		}
	}
}
