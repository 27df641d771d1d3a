// Modfolio - Mod Platform Stat Cards and Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/modfolio

// Package parallel runs independent tasks with a cap on how many are in
// flight at once.
package parallel

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Task is one unit of work. A task that can fail is expected to absorb the
// failure and return its own fallback value.
type Task[T any] func(ctx context.Context) T

// Run executes tasks with at most limit running concurrently and returns
// their results in input order. A slow or failing task never aborts its
// siblings. A limit below 1 is treated as 1.
func Run[T any](ctx context.Context, tasks []Task[T], limit int) []T {
	results := make([]T, len(tasks))
	if len(tasks) == 0 {
		return results
	}
	if limit < 1 {
		limit = 1
	}

	var g errgroup.Group
	g.SetLimit(limit)

	for i, task := range tasks {
		g.Go(func() error {
			results[i] = task(ctx)
			return nil
		})
	}

	// Tasks never return errors, so Wait only blocks until all are done.
	_ = g.Wait()
	return results
}

// Map applies fn to every item through Run.
func Map[S, T any](ctx context.Context, items []S, limit int, fn func(ctx context.Context, item S) T) []T {
	tasks := make([]Task[T], len(items))
	for i, item := range items {
		tasks[i] = func(ctx context.Context) T {
			return fn(ctx, item)
		}
	}
	return Run(ctx, tasks, limit)
}
