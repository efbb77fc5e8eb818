// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bridge

import (
	"context"
	"strconv"
	"sync"

	"github.com/gorilla/websocket"

	"cogentcore.org/viewshot/base/errors"
)

// Client is a bridge client connection.
// You can use [Connect] to create a new Client.
type Client struct {

	// conn is the underlying WebSocket connection.
	conn *websocket.Conn

	// done is a channel that is closed when the connection is closed.
	done chan struct{}

	mu      sync.Mutex
	pending map[string]chan *Response
	nextID  uint64
	err     error
}

// Connect connects to a bridge server and returns a [Client].
func Connect(ctx context.Context, url string) (*Client, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, err
	}
	c := &Client{conn: conn, done: make(chan struct{}), pending: map[string]chan *Response{}}
	go c.readLoop()
	return c, nil
}

func (c *Client) readLoop() {
	defer close(c.done)
	for {
		rs := &Response{}
		if err := c.conn.ReadJSON(rs); err != nil {
			c.mu.Lock()
			c.err = err
			c.mu.Unlock()
			return
		}
		c.mu.Lock()
		ch := c.pending[rs.ID]
		delete(c.pending, rs.ID)
		c.mu.Unlock()
		if ch != nil {
			ch <- rs
		}
	}
}

// Do sends the given request and waits for its response.
// The request ID is set by Do.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	ch := make(chan *Response, 1)
	c.mu.Lock()
	if c.err != nil {
		err := c.err
		c.mu.Unlock()
		return nil, err
	}
	c.nextID++
	req.ID = strconv.FormatUint(c.nextID, 10)
	c.pending[req.ID] = ch
	err := c.conn.WriteJSON(req)
	if err != nil {
		delete(c.pending, req.ID)
	}
	c.mu.Unlock()
	if err != nil {
		return nil, err
	}
	select {
	case rs := <-ch:
		return rs, nil
	case <-ctx.Done():
		c.mu.Lock()
		delete(c.pending, req.ID)
		c.mu.Unlock()
		return nil, ctx.Err()
	case <-c.done:
		c.mu.Lock()
		defer c.mu.Unlock()
		return nil, c.err
	}
}

// Capture sends the given capture request and returns its result.
// A failed capture returns a [*viewshot.Error].
func (c *Client) Capture(ctx context.Context, req *Request) (string, error) {
	req.Op = OpCapture
	rs, err := c.Do(ctx, req)
	if err != nil {
		return "", err
	}
	return rs.Result, rs.Err()
}

// Release deletes the temp file of a file capture with the given URI.
func (c *Client) Release(ctx context.Context, uri string) error {
	rs, err := c.Do(ctx, &Request{Op: OpRelease, Path: uri})
	if err != nil {
		return err
	}
	return rs.Err()
}

// Close cleanly closes the connection.
func (c *Client) Close() error {
	c.mu.Lock()
	err := c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	c.mu.Unlock()
	errors.Log(err)
	return c.conn.Close()
}
