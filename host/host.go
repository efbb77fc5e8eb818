// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package host owns a scene on a single main goroutine, on which all
// captures and all changes to the view tree run, and delivers capture
// results asynchronously.
package host

import (
	"errors"
	"log/slog"
	"sync"

	"cogentcore.org/viewshot/view"
	"cogentcore.org/viewshot/viewshot"
)

// ErrClosed is returned for work sent to a host after [Host.Close].
var ErrClosed = errors.New("host: closed")

// Host owns a [view.Scene] and runs a main loop goroutine
// that all access to the scene goes through.
type Host struct {

	// Scene is the scene of the host. It must only be accessed
	// on the main goroutine, through [Host.RunOnMain] and related methods.
	Scene *view.Scene

	// TempDir is the directory for temp files of file results;
	// see [viewshot.TempDir].
	TempDir string

	mu       sync.Mutex
	queue    []funcRun
	closed   bool
	wake     chan struct{}
	loopDone chan struct{}
}

// funcRun is a function queued to run on the main goroutine.
// done, if non-nil, receives whether f was run.
type funcRun struct {
	f        func()
	done     chan bool
	onClosed func()
}

// New returns a new host for the given scene, with its main loop running.
func New(sc *view.Scene) *Host {
	h := &Host{
		Scene:    sc,
		wake:     make(chan struct{}, 1),
		loopDone: make(chan struct{}),
	}
	go h.mainLoop()
	return h
}

// mainLoop runs queued functions one at a time, in the order they
// were queued, until the host is closed.
func (h *Host) mainLoop() {
	defer close(h.loopDone)
	for {
		h.mu.Lock()
		if h.closed {
			h.mu.Unlock()
			return
		}
		if len(h.queue) == 0 {
			h.mu.Unlock()
			<-h.wake
			continue
		}
		fr := h.queue[0]
		h.queue[0] = funcRun{}
		h.queue = h.queue[1:]
		h.mu.Unlock()
		fr.f()
		if fr.done != nil {
			fr.done <- true
		}
	}
}

// enqueue adds fr to the end of the main queue, returning false
// if the host is closed.
func (h *Host) enqueue(fr funcRun) bool {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return false
	}
	h.queue = append(h.queue, fr)
	h.mu.Unlock()
	select {
	case h.wake <- struct{}{}:
	default:
	}
	return true
}

// Close stops the main loop, after any function it is running returns.
// Functions still queued are dropped: their onClosed functions are called
// and waiting [Host.RunOnMain] calls return [ErrClosed].
func (h *Host) Close() {
	h.mu.Lock()
	dropped := h.queue
	h.queue = nil
	h.closed = true
	h.mu.Unlock()
	select {
	case h.wake <- struct{}{}:
	default:
	}
	<-h.loopDone
	for _, fr := range dropped {
		if fr.onClosed != nil {
			fr.onClosed()
		}
		if fr.done != nil {
			fr.done <- false
		}
	}
}

// RunOnMain runs given function on the main goroutine and waits for it
// to return. It must not be called from the main goroutine itself.
// It returns [ErrClosed] if the host is closed before the function runs.
func (h *Host) RunOnMain(f func()) error {
	done := make(chan bool, 1)
	if !h.enqueue(funcRun{f: f, done: done}) {
		return ErrClosed
	}
	if !<-done {
		return ErrClosed
	}
	return nil
}

// GoRunOnMain queues given function to run on the main goroutine and
// returns immediately. Functions run in the order they are queued,
// together with those of [Host.RunOnMain]. If the host is closed before
// the function runs, onClosed is called instead, if it is non-nil.
func (h *Host) GoRunOnMain(f func(), onClosed func()) {
	if !h.enqueue(funcRun{f: f, onClosed: onClosed}) && onClosed != nil {
		onClosed()
	}
}

// Mutate runs the given function on the scene on the main goroutine,
// and then lays out the scene again.
func (h *Host) Mutate(f func(sc *view.Scene)) error {
	return h.RunOnMain(func() {
		f(h.Scene)
		h.Scene.Layout()
	})
}

// Capture queues a capture of the view with the given id on the main
// goroutine, and returns a promise that is settled with the result.
// The capture sees the tree as changed by every [Host.Mutate] issued
// before it, and none issued after it.
// The request is not modified, and must not be modified until
// the promise is settled.
func (h *Host) Capture(id string, req *viewshot.Request) *Promise {
	p := NewPromise()
	h.GoRunOnMain(func() {
		p.Settle(h.capture(id, req))
	}, func() {
		p.Settle("", ErrClosed)
	})
	return p
}

func (h *Host) capture(id string, req *viewshot.Request) (string, error) {
	v := h.Scene.ViewByID(id)
	if v == nil {
		return "", viewshot.NewViewNotFound(id)
	}
	o := &viewshot.Orchestrator{Request: req, TempDir: h.TempDir}
	res, err := o.Run(v)
	if err != nil {
		slog.Debug("host: capture failed", "id", id, "err", err)
	}
	return res, err
}

// Release deletes the temp file of a file capture made by the host.
func (h *Host) Release(uri string) error {
	return viewshot.ReleaseCapture(uri, h.TempDir)
}
