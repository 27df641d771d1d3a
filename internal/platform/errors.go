// Modfolio - Mod Platform Stat Cards and Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/modfolio

package platform

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound is returned when the platform reports that the entity does not
// exist. It is a normal result, not an upstream failure.
var ErrNotFound = errors.New("not found")

// ErrInvalidID is returned without any network call when an identifier cannot
// exist on the platform (non-numeric CurseForge or Spigot IDs). It matches
// ErrNotFound with errors.Is.
var ErrInvalidID = fmt.Errorf("invalid identifier: %w", ErrNotFound)

// UpstreamError is any platform API failure other than not-found: a non-2xx
// status, an undecodable body, a transport error or an open circuit.
type UpstreamError struct {
	Platform   string
	StatusCode int // 0 when no response was received
	Message    string
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%s API error: %s", e.Platform, e.Message)
	}
	return fmt.Sprintf("%s API error: %d: %s", e.Platform, e.StatusCode, e.Message)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err means the entity does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsRateLimited reports whether the platform rejected the request with 429.
func IsRateLimited(err error) bool {
	var ue *UpstreamError
	return errors.As(err, &ue) && ue.StatusCode == http.StatusTooManyRequests
}

// IsUpstream reports whether err is a platform failure.
func IsUpstream(err error) bool {
	var ue *UpstreamError
	return errors.As(err, &ue)
}
