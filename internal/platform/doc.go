// Modfolio - Mod Platform Stat Cards and Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/modfolio

/*
Package platform provides read-only clients for the mod hosting platforms.

Supported platforms and entity kinds:

	modrinth    user, project, organization, collection
	curseforge  project (requires an API key)
	hangar      user, project
	spigot      author, resource (numeric IDs, via Spiget)

Every client maps the platform's native JSON into the shapes in
internal/models and reports failures in one vocabulary:

  - ErrNotFound: the entity does not exist (HTTP 404 upstream)
  - ErrInvalidID: the identifier cannot exist; no request is sent
  - *UpstreamError: any other non-2xx status, transport failure, decode
    failure or open circuit

Requests carry the configured User-Agent, wait on a per-platform token
bucket (golang.org/x/time/rate) and run through a per-platform circuit
breaker (sony/gobreaker). Not-found answers do not count against the
breaker.

Usage:

	reg := platform.NewRegistryFromConfig(cfg)
	client, ok := reg.Get(models.PlatformModrinth)
	entity, err := client.FetchEntity(ctx, models.KindProject, "sodium")
*/
package platform
