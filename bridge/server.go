// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bridge serves capture requests over a WebSocket connection,
// with JSON requests and responses.
package bridge

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/gorilla/websocket"

	"cogentcore.org/viewshot/base/errors"
	"cogentcore.org/viewshot/host"
	"cogentcore.org/viewshot/view"
	"cogentcore.org/viewshot/viewshot"
)

// Server is an [http.Handler] that upgrades requests to WebSocket
// connections and serves capture requests on them. Each connection
// gets its own copy of the scene, owned by its own [host.Host].
type Server struct {

	// TempDir is the directory for temp files of file results.
	TempDir string

	// OutDir is the directory that file results with a path are written
	// to. Paths must be local to it; if it is empty, capture requests
	// with a path are rejected.
	OutDir string

	// Upgrader is used to upgrade connections.
	Upgrader websocket.Upgrader

	mu    sync.Mutex
	scene *view.Scene
}

// NewServer returns a new server for the given scene.
func NewServer(sc *view.Scene) *Server {
	return &Server{scene: sc}
}

// SetScene sets the scene that is copied for new connections.
// Existing connections keep their copy.
func (s *Server) SetScene(sc *view.Scene) {
	s.mu.Lock()
	s.scene = sc
	s.mu.Unlock()
}

// Scene returns the scene that is copied for new connections.
func (s *Server) Scene() *view.Scene {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scene
}

// conn is one bridge connection.
type conn struct {
	srv  *Server
	ws   *websocket.Conn
	host *host.Host
	mu   sync.Mutex
}

func (c *conn) send(rs *Response) {
	c.mu.Lock()
	defer c.mu.Unlock()
	errors.Log(c.ws.WriteJSON(rs))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ws, err := s.Upgrader.Upgrade(w, r, nil)
	if errors.Log(err) != nil {
		return
	}
	defer ws.Close()
	h := host.New(s.Scene().Clone())
	h.TempDir = s.TempDir
	defer h.Close()
	c := &conn{srv: s, ws: ws, host: h}
	slog.Info("bridge: connected", "remote", r.RemoteAddr)

	var pending sync.WaitGroup
	defer pending.Wait()
	for {
		_, msg, err := ws.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				errors.Log(err)
			}
			slog.Info("bridge: disconnected", "remote", r.RemoteAddr)
			return
		}
		var req Request
		if err := json.Unmarshal(msg, &req); err != nil {
			c.send(NewResponse("", "", fmt.Errorf("bridge: invalid request: %w", err)))
			continue
		}
		wait := c.handle(&req)
		pending.Add(1)
		go func() {
			defer pending.Done()
			c.send(wait())
		}()
	}
}

// handle starts the operation of the request, and returns a function
// that waits for its response. Captures are queued on the host before
// handle returns, so they run in the order they were received.
func (c *conn) handle(req *Request) func() *Response {
	slog.Debug("bridge: request", "id", req.ID, "op", req.Op, "target", req.Target)
	switch req.Op {
	case "", OpCapture:
		creq, err := req.CaptureRequest()
		if err == nil && creq.Path != "" {
			creq.Path, err = c.srv.outPath(creq.Path)
		}
		if err != nil {
			return respond(NewResponse(req.ID, "", err))
		}
		p := c.host.Capture(req.Target, creq)
		return func() *Response {
			res, err := p.Wait(context.Background())
			return NewResponse(req.ID, res, err)
		}
	case OpRelease:
		return respond(NewResponse(req.ID, "", c.host.Release(req.Path)))
	case OpClean:
		n, err := viewshot.CleanTempFiles(c.host.TempDir)
		return respond(NewResponse(req.ID, strconv.Itoa(n), err))
	}
	return respond(NewResponse(req.ID, "", fmt.Errorf("bridge: unknown op %q", req.Op)))
}

func respond(rs *Response) func() *Response {
	return func() *Response { return rs }
}

// outPath returns the path in [Server.OutDir] of the given
// request path, which must be local to it.
func (s *Server) outPath(p string) (string, error) {
	if s.OutDir == "" || !filepath.IsLocal(p) {
		return "", &viewshot.Error{Kind: viewshot.IOFailure,
			Message: fmt.Sprintf("Path must be relative to the output directory: %s", p)}
	}
	return filepath.Join(s.OutDir, p), nil
}
