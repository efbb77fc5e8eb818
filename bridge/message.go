// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bridge

import (
	"errors"
	"fmt"
	"strings"

	"cogentcore.org/viewshot/base/iox/imagex"
	"cogentcore.org/viewshot/viewshot"
)

// Ops are the operations that can be requested over the bridge.
type Ops string

const (
	// OpCapture captures the target view.
	OpCapture Ops = "capture"

	// OpRelease deletes the temp file of a previous file capture,
	// given its URI in Path.
	OpRelease Ops = "release"

	// OpClean deletes all of the capture temp files.
	OpClean Ops = "clean"
)

// Request is a request sent to the bridge as a JSON message.
type Request struct {

	// ID is echoed in the response, to match it to the request.
	ID string `json:"id"`

	// Op is the operation, which defaults to [OpCapture].
	Op Ops `json:"op,omitempty"`

	// Target is the id of the view to capture.
	Target string `json:"target,omitempty"`

	// Format is png, jpg, jpeg, or webp. It defaults to png.
	Format string `json:"format,omitempty"`

	// Quality is in [0,1], defaulting to 1.
	Quality *float64 `json:"quality,omitempty"`

	Width  *int `json:"width,omitempty"`
	Height *int `json:"height,omitempty"`

	viewshot.Area

	SnapshotContentContainer bool `json:"snapshotContentContainer,omitempty"`
	FullWebView              bool `json:"fullWebView,omitempty"`

	// Result is file, base64, or data-uri. It defaults to file.
	Result string `json:"result,omitempty"`

	// Path is the output file for file results, or the URI to release.
	Path string `json:"path,omitempty"`
}

// Response is the JSON response to a [Request]. On failure,
// Code, Kind, and Message are set instead of Result.
type Response struct {
	ID      string `json:"id"`
	Result  string `json:"result,omitempty"`
	Code    string `json:"code,omitempty"`
	Kind    string `json:"kind,omitempty"`
	Message string `json:"message,omitempty"`
}

// CaptureRequest returns the capture request for the bridge request.
func (r *Request) CaptureRequest() (*viewshot.Request, error) {
	format := r.Format
	if format == "" {
		format = "png"
	}
	req, err := viewshot.NewRequest(format)
	if err != nil {
		return nil, &viewshot.Error{Kind: viewshot.EncodeFailure, Err: err,
			Message: fmt.Sprintf("Unsupported format: %s. Try one of: %s", r.Format, strings.Join(imagex.EncodableFormats, " | "))}
	}
	if r.Quality != nil {
		req.Quality = *r.Quality
	}
	req.Width, req.Height = r.Width, r.Height
	req.Area = r.Area
	req.SnapshotContentContainer = r.SnapshotContentContainer
	req.FullWebView = r.FullWebView
	if r.Result != "" {
		req.Result = viewshot.ResultModes(r.Result)
	}
	req.Path = r.Path
	return req, nil
}

// NewResponse returns the response for the given result and error.
func NewResponse(id, result string, err error) *Response {
	if err == nil {
		return &Response{ID: id, Result: result}
	}
	rs := &Response{ID: id, Code: viewshot.Code, Message: err.Error()}
	var ce *viewshot.Error
	if errors.As(err, &ce) {
		rs.Kind = ce.Kind.String()
		rs.Message = ce.Message
	}
	return rs
}

// Err returns the error of a failed response, or nil.
func (r *Response) Err() error {
	if r.Code == "" {
		return nil
	}
	return &viewshot.Error{Kind: viewshot.ParseKind(r.Kind), Message: r.Message}
}
