// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package viewshot captures views as PNG, JPEG, or WebP images,
// delivered as a file URI, a base64 string, or a data URI.
package viewshot

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"reflect"

	errs "cogentcore.org/viewshot/base/errors"
	"cogentcore.org/viewshot/view"
)

// States are the states of a capture. A capture moves through them
// strictly in order, and moves to Failed from any state on failure.
type States int32

const (
	Idle States = iota
	Resolving
	Rendering
	Cropping
	Scaling
	Encoding
	Delivering
	Succeeded
	Failed
)

var stateNames = [...]string{"Idle", "Resolving", "Rendering", "Cropping", "Scaling", "Encoding", "Delivering", "Succeeded", "Failed"}

func (s States) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("States(%d)", int32(s))
	}
	return stateNames[s]
}

// Orchestrator runs one capture of a view: it resolves the crop region,
// renders the view, crops, scales, and encodes the result, and delivers
// it through a [Sink]. An Orchestrator must only be run once.
type Orchestrator struct {

	// Request is the capture request, which is not modified.
	Request *Request

	// TempDir is the directory for temp files of file results;
	// see [TempDir].
	TempDir string

	// OnState is called, if non-nil, on every state change.
	OnState func(s States)

	// State is the current state of the capture.
	State States
}

// Capture captures the given view with the given request
// and returns the delivered result.
func Capture(v view.View, req *Request) (string, error) {
	o := &Orchestrator{Request: req}
	return o.Run(v)
}

func (o *Orchestrator) setState(v view.View, s States) {
	o.State = s
	if !isNil(v) {
		slog.Debug("viewshot: capture", "view", v.AsTree().Path(), "state", s)
	}
	if o.OnState != nil {
		o.OnState(s)
	}
}

// Run runs the capture of the given view. On any failure it stops,
// discards anything written, and returns an [*Error]. Nothing is
// written to a file result path unless the capture succeeds.
func (o *Orchestrator) Run(v view.View) (result string, err error) {
	if o.State != Idle {
		return "", failure(RenderFailure, errors.New("viewshot.Orchestrator can only be run once"))
	}
	req := o.Request
	defer func() {
		if err != nil {
			var ce *Error
			if !errors.As(err, &ce) {
				err = failure(RenderFailure, err)
			}
			o.setState(v, Failed)
			return
		}
		o.setState(v, Succeeded)
	}()

	o.setState(v, Resolving)
	if isNil(v) || v.AsTree().This == nil {
		return "", &Error{Kind: ViewNotFound, Message: "No view found"}
	}
	sink, err := OpenSink(req, TempDir(o.TempDir))
	if err != nil {
		return "", err
	}
	defer func() {
		if err != nil {
			errs.Log(sink.Discard())
		}
	}()
	size := v.AsView().Geom.Size
	if err := checkSize(size); err != nil {
		return "", err
	}
	region := ResolveRegion(req.Area, size)

	o.setState(v, Rendering)
	buf, err := Render(v, req.SnapshotContentContainer, req.FullWebView)
	if err != nil {
		return "", err
	}
	if buf == nil {
		return "", failure(RenderFailure, errors.New("impossible to snapshot the view: no content was rendered"))
	}

	o.setState(v, Cropping)
	buf, err = Crop(buf, region)
	if err != nil {
		return "", err
	}

	o.setState(v, Scaling)
	buf = Scale(buf, req.Width, req.Height)

	o.setState(v, Encoding)
	var enc bytes.Buffer
	if err := Encode(&enc, buf, req.Format, req.Quality); err != nil {
		return "", err
	}

	o.setState(v, Delivering)
	if _, err := sink.Write(enc.Bytes()); err != nil {
		return "", failure(IOFailure, err)
	}
	if err := sink.Close(); err != nil {
		return "", failure(IOFailure, err)
	}
	slog.Debug("viewshot: captured", "view", v.AsTree().Path(), "size", buf.Bounds().Size(), "bytes", enc.Len(), "result", req.Result)
	return sink.Result(), nil
}

// isNil returns whether v is nil, including a nil pointer
// of a concrete view type.
func isNil(v view.View) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
