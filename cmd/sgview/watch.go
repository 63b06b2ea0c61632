// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"cogentcore.org/sgview/base/errors"
	"cogentcore.org/sgview/present"
	"cogentcore.org/sgview/session"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

func (a *app) watchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch [file]",
		Short: "Reload the scene graph when its file changes, reading ray samples from stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer cancel()
			ss := session.New(a.cfg, &present.Logger{Style: a.cfg.Style()})
			return errors.Log(watch(ctx, ss, a.scenePath(args), cmd.InOrStdin(), cmd.OutOrStdout()))
		},
	}
}

// reload reads the scene file and loads it into the session, reporting
// the result to out. A file that fails to build leaves the current graph
// in place.
func reload(ss *session.Session, path string, out io.Writer) error {
	text, err := os.ReadFile(path)
	if err == nil {
		_, err = ss.Load(text)
	}
	if err != nil {
		fmt.Fprintf(out, "reload failed: %v\n", err)
		return err
	}
	g := ss.Graph()
	fmt.Fprintf(out, "loaded %v: %d nodes, %d edges\n", g.Source, g.NumNodes(), g.NumEdges())
	return nil
}

// watch loads the scene file, then serves file change events and ray
// samples read line by line from in, on a single goroutine, until ctx
// is done or in is exhausted. Load results and highlight deltas are
// written to out.
func watch(ctx context.Context, ss *session.Session, path string, in io.Reader, out io.Writer) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	// editors often replace the file, so watch the directory
	if err := w.Add(filepath.Dir(path)); err != nil {
		return err
	}
	if err := reload(ss, path, out); err != nil {
		return err
	}

	lines := make(chan string)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	name := filepath.Clean(path)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != name || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
				continue
			}
			if err := reload(ss, path, out); err != nil {
				slog.Warn("reload failed, keeping current scene graph", "file", path, "err", err)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			slog.Error("watch", "err", err)
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			hev, err := parseEvent(line)
			if err != nil {
				slog.Warn(err.Error())
				continue
			}
			for _, d := range ss.Tick(hev) {
				fmt.Fprintln(out, d)
			}
		}
	}
}
