// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"cogentcore.org/viewshot/base/logx"
	"cogentcore.org/viewshot/host"
	"cogentcore.org/viewshot/view"
	"cogentcore.org/viewshot/viewshot"
)

// app is the state shared by all of the commands.
type app struct {
	cfg *Config

	configFile string
	vv, v, q   bool

	// flag values that override the config file when set
	format, result, outDir, tempDir string
	quality                         float64
}

// captureOptions are the per-capture flags.
type captureOptions struct {
	Target        string
	Width, Height int
	Area          []int
	Content       bool
	FullWebView   bool
	Out           string
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:          "viewshot",
		Short:        "Capture views of scene files as PNG, JPEG, or WebP images",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	pf := root.PersistentFlags()
	pf.StringVarP(&a.configFile, "config", "c", "", "config file (default: "+ConfigFile+" in "+strings.Join(ConfigPaths, " or ")+")")
	pf.BoolVar(&a.vv, "vv", false, "very verbose: show debug messages")
	pf.BoolVarP(&a.v, "verbose", "v", false, "verbose: show info messages")
	pf.BoolVarP(&a.q, "quiet", "q", false, "quiet: only show errors")
	pf.StringVarP(&a.format, "format", "f", "", "image format: png, jpg, jpeg, or webp")
	pf.Float64Var(&a.quality, "quality", 1, "encoding quality in [0,1] for jpg and webp")
	pf.StringVarP(&a.result, "result", "r", "", "result: file, base64, or data-uri")
	pf.StringVar(&a.outDir, "out-dir", "", "directory for file results")
	pf.StringVar(&a.tempDir, "temp-dir", "", "directory for temp files")

	root.AddCommand(a.captureCmd(), a.watchCmd(), a.serveCmd(), a.releaseCmd(), a.cleanCmd())
	return root
}

// setup sets the log level and loads the config, with flags
// that are set overriding the config file.
func (a *app) setup(cmd *cobra.Command) error {
	logx.UserLevel = logx.LevelFromFlags(a.vv, a.v, a.q)
	logx.SetDefaultLogger()
	cfg, err := LoadConfig(a.configFile)
	if err != nil {
		return err
	}
	fl := cmd.Flags()
	if fl.Changed("format") {
		cfg.Format = a.format
	}
	if fl.Changed("quality") {
		cfg.Quality = a.quality
	}
	if fl.Changed("result") {
		cfg.Result = a.result
	}
	if fl.Changed("out-dir") {
		cfg.OutDir = a.outDir
	}
	if fl.Changed("temp-dir") {
		cfg.TempDir = a.tempDir
	}
	if fl.Changed("addr") {
		addr, _ := fl.GetString("addr")
		cfg.Addr = addr
	}
	a.cfg = cfg
	return cfg.Validate()
}

func addCaptureFlags(cmd *cobra.Command, opts *captureOptions) {
	fl := cmd.Flags()
	fl.StringVarP(&opts.Target, "target", "t", "", "id or path of the view to capture (default: the scene root)")
	fl.IntVar(&opts.Width, "width", 0, "width to scale the image to (with --height)")
	fl.IntVar(&opts.Height, "height", 0, "height to scale the image to (with --width)")
	fl.IntSliceVar(&opts.Area, "area", nil, "area to crop to, as x,y,width,height")
	fl.BoolVar(&opts.Content, "content", false, "capture the full content of a scroll container")
	fl.BoolVar(&opts.FullWebView, "full-web-view", false, "capture the full content of the web view in the target")
}

func (a *app) captureCmd() *cobra.Command {
	opts := &captureOptions{}
	cmd := &cobra.Command{
		Use:   "capture scene-file...",
		Short: "Capture a view of each scene file, printing the results",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.Out != "" && len(args) > 1 {
				return errors.New("--out can only be used with one scene file")
			}
			results, err := a.captureScenes(cmd.Context(), opts, args)
			for _, r := range results {
				if r != "" {
					fmt.Fprintln(cmd.OutOrStdout(), r)
				}
			}
			return err
		},
	}
	addCaptureFlags(cmd, opts)
	cmd.Flags().StringVarP(&opts.Out, "out", "o", "", "output file for a file result")
	return cmd
}

// captureScenes captures the given scene files in parallel, and
// returns the results in the same order as the files.
func (a *app) captureScenes(ctx context.Context, opts *captureOptions, files []string) ([]string, error) {
	results := make([]string, len(files))
	g, ctx := errgroup.WithContext(ctx)
	for i, fn := range files {
		g.Go(func() error {
			sc, err := view.Open(fn)
			if err != nil {
				return err
			}
			res, err := a.captureScene(ctx, sc, opts)
			if err != nil {
				return fmt.Errorf("%s: %w", fn, err)
			}
			results[i] = res
			return nil
		})
	}
	return results, g.Wait()
}

// captureScene captures the scene with the given options.
func (a *app) captureScene(ctx context.Context, sc *view.Scene, opts *captureOptions) (string, error) {
	req, err := a.request(sc, opts)
	if err != nil {
		return "", err
	}
	h := host.New(sc)
	h.TempDir = a.cfg.TempDir
	defer h.Close()
	target := opts.Target
	if target == "" {
		target = sc.Root.AsTree().Path()
	}
	return h.Capture(target, req).Wait(ctx)
}

// request returns the capture request for the given scene and options.
func (a *app) request(sc *view.Scene, opts *captureOptions) (*viewshot.Request, error) {
	req, err := a.cfg.Request()
	if err != nil {
		return nil, err
	}
	if opts.Width > 0 && opts.Height > 0 {
		req.Width, req.Height = viewshot.Ptr(opts.Width), viewshot.Ptr(opts.Height)
	}
	switch len(opts.Area) {
	case 0:
	case 4:
		req.Area = viewshot.Area{X: &opts.Area[0], Y: &opts.Area[1], Width: &opts.Area[2], Height: &opts.Area[3]}
	default:
		return nil, fmt.Errorf("--area needs 4 values, x,y,width,height; got %d", len(opts.Area))
	}
	req.SnapshotContentContainer = opts.Content
	req.FullWebView = opts.FullWebView
	if req.Result == viewshot.ResultFile {
		switch {
		case opts.Out != "":
			req.Path = opts.Out
		case a.cfg.OutDir != "" && sc.Source != "":
			stem := strings.TrimSuffix(filepath.Base(sc.Source), filepath.Ext(sc.Source))
			req.Path = filepath.Join(a.cfg.OutDir, stem+"."+req.Extension)
		}
	}
	return req, nil
}

func (a *app) releaseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "release uri...",
		Short: "Delete the temp files of file captures",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var errs []error
			for _, uri := range args {
				errs = append(errs, viewshot.ReleaseCapture(uri, a.cfg.TempDir))
			}
			return errors.Join(errs...)
		},
	}
}

func (a *app) cleanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Delete all of the capture temp files left in the temp directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := viewshot.CleanTempFiles(a.cfg.TempDir)
			fmt.Fprintf(cmd.OutOrStdout(), "removed %d temp files\n", n)
			return err
		},
	}
}
