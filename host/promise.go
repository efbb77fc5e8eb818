// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package host

import (
	"context"
	"sync"
)

// Promise is the eventual result of an asynchronous capture.
// It is settled exactly once, with either a result or an error.
type Promise struct {
	once   sync.Once
	done   chan struct{}
	result string
	err    error
}

// NewPromise returns a new unsettled promise.
func NewPromise() *Promise {
	return &Promise{done: make(chan struct{})}
}

// Settle settles the promise. Only the first call has any effect.
func (p *Promise) Settle(result string, err error) {
	p.once.Do(func() {
		p.result, p.err = result, err
		close(p.done)
	})
}

// Done returns a channel that is closed when the promise is settled.
func (p *Promise) Done() <-chan struct{} {
	return p.done
}

// Wait waits for the promise to be settled and returns its result,
// or returns the context error if the context is done first.
func (p *Promise) Wait(ctx context.Context) (string, error) {
	select {
	case <-p.done:
		return p.result, p.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// Then calls the given function with the result in a new goroutine
// once the promise is settled.
func (p *Promise) Then(f func(result string, err error)) {
	go func() {
		<-p.done
		f(p.result, p.err)
	}()
}
