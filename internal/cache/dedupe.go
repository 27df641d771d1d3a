// Modfolio - Mod Platform Stat Cards and Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/modfolio

package cache

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/singleflight"
)

// Deduplicator coalesces concurrent work for the same key into a single
// producer call. The key is released as soon as the producer settles, so a
// failure is never remembered and the next caller starts a fresh attempt.
type Deduplicator struct {
	group singleflight.Group

	// OnShared, when set, is called for every caller whose result was
	// shared with at least one other caller of the same key.
	OnShared func(key string)
	// OnExecute, when set, is called once per producer invocation.
	OnExecute func(key string)
}

// NewDeduplicator creates an empty Deduplicator.
func NewDeduplicator() *Deduplicator {
	return &Deduplicator{}
}

// ErrProducerPanic marks a producer that panicked instead of returning.
var ErrProducerPanic = errors.New("producer panicked")

// SharedError wraps a failure that was produced for another caller of the
// same key. errors.Is and errors.As see through it to the original error.
type SharedError struct {
	Key string
	Err error
}

func (e *SharedError) Error() string {
	return fmt.Sprintf("coalesced %s: %v", e.Key, e.Err)
}

func (e *SharedError) Unwrap() error {
	return e.Err
}

// Do runs producer for key unless a call for the same key is already in
// flight, in which case it waits for that call and returns its outcome.
//
// The producer receives a context detached from the caller's cancellation so
// one waiter going away does not fail the others. A caller whose own ctx is
// done stops waiting and gets ctx.Err().
//
// A panicking producer is reported to every waiter as an error wrapping
// ErrProducerPanic.
//
// Go methods cannot carry type parameters, hence the package-level function.
func Do[T any](ctx context.Context, d *Deduplicator, key string, producer func(context.Context) (T, error)) (T, error) {
	var zero T

	producerCtx := context.WithoutCancel(ctx)
	ch := d.group.DoChan(key, func() (val interface{}, err error) {
		// DoChan re-panics on a goroutine of its own, out of reach of any
		// HTTP recoverer.
		defer func() {
			if r := recover(); r != nil {
				val, err = nil, fmt.Errorf("dedupe %s: %w: %v", key, ErrProducerPanic, r)
			}
		}()
		if d.OnExecute != nil {
			d.OnExecute(key)
		}
		return producer(producerCtx)
	})

	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res := <-ch:
		if res.Shared && d.OnShared != nil {
			d.OnShared(key)
		}
		if res.Err != nil {
			if res.Shared {
				return zero, &SharedError{Key: key, Err: res.Err}
			}
			return zero, res.Err
		}
		value, ok := res.Val.(T)
		if !ok && res.Val != nil {
			return zero, fmt.Errorf("dedupe %s: unexpected result type %T", key, res.Val)
		}
		return value, nil
	}
}
