// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"cogentcore.org/viewshot/base/errors"
	"cogentcore.org/viewshot/bridge"
	"cogentcore.org/viewshot/view"
)

// watchFile calls onChange every time the given file is written or
// created, until the context is done.
func watchFile(ctx context.Context, file string, ready func(), onChange func()) error {
	abs, err := filepath.Abs(file)
	if err != nil {
		return err
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	// watch the directory, since editors often replace the file
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return err
	}
	if ready != nil {
		ready()
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
				slog.Info("viewshot: scene changed", "file", file)
				onChange()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			errors.Log(err)
		}
	}
}

func (a *app) watchCmd() *cobra.Command {
	opts := &captureOptions{}
	cmd := &cobra.Command{
		Use:   "watch scene-file",
		Short: "Capture a view of the scene file every time it changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			capture := func() {
				results, err := a.captureScenes(ctx, opts, args)
				if errors.Log(err) != nil {
					return
				}
				fmt.Fprintln(cmd.OutOrStdout(), results[0])
			}
			capture()
			return watchFile(ctx, args[0], nil, capture)
		},
	}
	addCaptureFlags(cmd, opts)
	return cmd
}

func (a *app) serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve scene-file",
		Short: "Serve capture requests for the scene file over a WebSocket at /ws",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			sc, err := view.Open(args[0])
			if err != nil {
				return err
			}
			srv := bridge.NewServer(sc)
			srv.TempDir = a.cfg.TempDir
			srv.OutDir = a.cfg.OutDir
			mux := http.NewServeMux()
			mux.Handle("/ws", srv)
			hs := &http.Server{Addr: a.cfg.Addr, Handler: mux}

			go func() {
				errors.Log(watchFile(ctx, args[0], nil, func() {
					sc, err := view.Open(args[0])
					if errors.Log(err) == nil {
						srv.SetScene(sc)
					}
				}))
			}()
			go func() {
				<-ctx.Done()
				sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				errors.Log(hs.Shutdown(sctx))
			}()
			fmt.Fprintf(cmd.OutOrStdout(), "serving %s at ws://%s/ws\n", args[0], a.cfg.Addr)
			err = hs.ListenAndServe()
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err
		},
	}
	cmd.Flags().String("addr", "", "address to listen on (default from config: localhost:8081)")
	return cmd
}
