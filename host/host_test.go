// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package host

import (
	"context"
	"encoding/base64"
	"image"
	"image/color"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/viewshot/base/iox/imagex"
	"cogentcore.org/viewshot/view"
	"cogentcore.org/viewshot/viewshot"
)

func newTestHost(t *testing.T) *Host {
	root := &view.Frame{}
	root.Name = "frame"
	root.SetGeom(image.Point{}, image.Pt(200, 100))
	sc := view.NewScene(root)
	bx := &view.Box{}
	bx.Name = "target"
	bx.SetGeom(image.Pt(10, 10), image.Pt(80, 60))
	bx.Background = color.RGBA{0, 0, 255, 255}
	root.AddChild(bx)
	h := New(sc)
	h.TempDir = t.TempDir()
	t.Cleanup(h.Close)
	return h
}

func base64Request(t *testing.T) *viewshot.Request {
	req, err := viewshot.NewRequest("png")
	require.NoError(t, err)
	req.Result = viewshot.ResultBase64
	return req
}

func decodedSize(t *testing.T, s string) image.Point {
	b, err := base64.StdEncoding.DecodeString(s)
	require.NoError(t, err)
	img, _, err := imagex.ReadBytes(b)
	require.NoError(t, err)
	return img.Bounds().Size()
}

func TestCapture(t *testing.T) {
	h := newTestHost(t)
	res, err := h.Capture("target", base64Request(t)).Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, image.Pt(80, 60), decodedSize(t, res))

	res, err = h.Capture("/frame/target", base64Request(t)).Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, image.Pt(80, 60), decodedSize(t, res))
}

func TestCaptureNotFound(t *testing.T) {
	h := newTestHost(t)
	_, err := h.Capture("missing", base64Request(t)).Wait(context.Background())
	require.ErrorIs(t, err, viewshot.ErrViewNotFound)
	assert.Equal(t, "E_UNABLE_TO_SNAPSHOT: No view found with id: missing", err.Error())
}

func TestCaptureFileRelease(t *testing.T) {
	h := newTestHost(t)
	req, err := viewshot.NewRequest("jpg")
	require.NoError(t, err)
	res, err := h.Capture("target", req).Wait(context.Background())
	require.NoError(t, err)
	assert.Contains(t, res, "viewshot-")
	assert.NoError(t, h.Release(res))
}

func TestMutate(t *testing.T) {
	h := newTestHost(t)
	require.NoError(t, h.Mutate(func(sc *view.Scene) {
		sc.ViewByID("target").AsView().Geom.Size = image.Pt(40, 20)
	}))
	res, err := h.Capture("target", base64Request(t)).Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, image.Pt(40, 20), decodedSize(t, res))
}

func TestCaptureBeforeMutate(t *testing.T) {
	h := newTestHost(t)
	for range 50 {
		p := h.Capture("target", base64Request(t))
		require.NoError(t, h.Mutate(func(sc *view.Scene) {
			sc.ViewByID("target").AsTree().Name = "renamed"
		}))
		res, err := p.Wait(context.Background())
		require.NoError(t, err)
		assert.Equal(t, image.Pt(80, 60), decodedSize(t, res))

		_, err = h.Capture("target", base64Request(t)).Wait(context.Background())
		require.ErrorIs(t, err, viewshot.ErrViewNotFound)
		require.NoError(t, h.Mutate(func(sc *view.Scene) {
			sc.ViewByID("renamed").AsTree().Name = "target"
		}))
	}
}

func TestQueueOrder(t *testing.T) {
	h := newTestHost(t)
	block := make(chan struct{})
	h.GoRunOnMain(func() { <-block }, nil)
	var got []int
	for i := range 20 {
		h.GoRunOnMain(func() { got = append(got, i) }, nil)
	}
	close(block)
	require.NoError(t, h.RunOnMain(func() {}))
	want := make([]int, 20)
	for i := range want {
		want[i] = i
	}
	assert.Equal(t, want, got)
}

func TestCloseDropsQueued(t *testing.T) {
	h := newTestHost(t)
	block := make(chan struct{})
	h.GoRunOnMain(func() { <-block }, nil)
	p := h.Capture("target", base64Request(t))
	closed := make(chan struct{})
	go func() {
		h.Close()
		close(closed)
	}()
	assert.Eventually(t, func() bool {
		h.mu.Lock()
		defer h.mu.Unlock()
		return h.closed
	}, time.Second, time.Millisecond)
	close(block)
	<-closed
	_, err := p.Wait(context.Background())
	assert.ErrorIs(t, err, ErrClosed)
}

func TestConcurrentCaptures(t *testing.T) {
	h := newTestHost(t)
	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			assert.NoError(t, h.Mutate(func(sc *view.Scene) {
				sc.ViewByID("target").AsView().Background.R = uint8(i * 10)
			}))
		}()
		go func() {
			defer wg.Done()
			res, err := h.Capture("target", base64Request(t)).Wait(context.Background())
			assert.NoError(t, err)
			assert.NotEmpty(t, res)
		}()
	}
	wg.Wait()
}

func TestWaitContext(t *testing.T) {
	h := newTestHost(t)
	block := make(chan struct{})
	h.GoRunOnMain(func() { <-block }, nil)
	p := h.Capture("target", base64Request(t))
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := p.Wait(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	close(block)
	res, err := p.Wait(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, res)
}

func TestClosed(t *testing.T) {
	h := newTestHost(t)
	h.Close()
	_, err := h.Capture("target", base64Request(t)).Wait(context.Background())
	assert.ErrorIs(t, err, ErrClosed)
	assert.ErrorIs(t, h.RunOnMain(func() {}), ErrClosed)
}

func TestPromise(t *testing.T) {
	p := NewPromise()
	got := make(chan string, 1)
	p.Then(func(result string, err error) {
		assert.NoError(t, err)
		got <- result
	})
	p.Settle("a", nil)
	p.Settle("b", nil)
	assert.Equal(t, "a", <-got)
	<-p.Done()
	res, err := p.Wait(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "a", res)
}
