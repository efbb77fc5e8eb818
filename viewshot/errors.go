// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viewshot

import (
	"fmt"
	"strings"
)

// Code is the error code shared by all capture failures.
const Code = "E_UNABLE_TO_SNAPSHOT"

// Kinds are the kinds of capture failures.
type Kinds int32

const (
	// ViewNotFound is when the requested view id does not resolve.
	ViewNotFound Kinds = iota + 1

	// InvalidDimensions is when the rendered width or height is <= 0.
	InvalidDimensions

	// UnsupportedResultMode is when the result mode is not one of [ResultModesValues].
	UnsupportedResultMode

	// RenderFailure is when the rendering strategy could not produce a buffer.
	RenderFailure

	// RegionOutOfBounds is when a crop region passes the crop check
	// but does not fit inside the rendered buffer.
	RegionOutOfBounds

	// EncodeFailure is when the buffer could not be encoded.
	EncodeFailure

	// IOFailure is when writing or closing the output sink failed.
	IOFailure
)

var kindNames = map[Kinds]string{
	ViewNotFound:          "ViewNotFound",
	InvalidDimensions:     "InvalidDimensions",
	UnsupportedResultMode: "UnsupportedResultMode",
	RenderFailure:         "RenderFailure",
	RegionOutOfBounds:     "RegionOutOfBounds",
	EncodeFailure:         "EncodeFailure",
	IOFailure:             "IOFailure",
}

func (k Kinds) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kinds(%d)", int32(k))
}

// ParseKind returns the kind with the given name, or 0 if there is none.
func ParseKind(s string) Kinds {
	for k, n := range kindNames {
		if n == s {
			return k
		}
	}
	return 0
}

// Error is the error returned by a failed capture. All capture errors
// have the same [Code]; Kind distinguishes them, and Message is the
// human-readable message delivered to the caller.
type Error struct {

	// Kind is the kind of failure.
	Kind Kinds

	// Message is the message delivered to the caller.
	Message string

	// Err is the underlying cause, if any.
	Err error
}

// Code returns [Code].
func (e *Error) Code() string {
	return Code
}

func (e *Error) Error() string {
	var sb strings.Builder
	sb.WriteString(Code)
	sb.WriteString(": ")
	if e.Message != "" {
		sb.WriteString(e.Message)
	} else {
		sb.WriteString(e.Kind.String())
	}
	if e.Err != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Err.Error())
	}
	return sb.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same kind, so that the
// Err* values can be used with [errors.Is].
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Sentinel errors for use with [errors.Is].
var (
	ErrViewNotFound          = &Error{Kind: ViewNotFound}
	ErrInvalidDimensions     = &Error{Kind: InvalidDimensions}
	ErrUnsupportedResultMode = &Error{Kind: UnsupportedResultMode}
	ErrRenderFailure         = &Error{Kind: RenderFailure}
	ErrRegionOutOfBounds     = &Error{Kind: RegionOutOfBounds}
	ErrEncodeFailure         = &Error{Kind: EncodeFailure}
	ErrIOFailure             = &Error{Kind: IOFailure}
)

// failedMessage is the message for failures during the capture itself.
const failedMessage = "Failed to capture view snapshot"

// NewViewNotFound returns the error for a view id that does not resolve.
func NewViewNotFound(id string) *Error {
	return &Error{Kind: ViewNotFound, Message: "No view found with id: " + id}
}

func newUnsupportedResult(result ResultModes) *Error {
	return &Error{Kind: UnsupportedResultMode, Message: fmt.Sprintf("Unsupported result: %s. Try one of: %s", result, strings.Join(ResultModesStrings(), " | "))}
}

// failure returns an error of the given kind with the generic
// capture failure message and the given cause.
func failure(kind Kinds, err error) *Error {
	return &Error{Kind: kind, Message: failedMessage, Err: err}
}
