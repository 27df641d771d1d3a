// Modfolio - Mod Platform Stat Cards and Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/modfolio

package platform

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/tomtom215/modfolio/internal/config"
	"github.com/tomtom215/modfolio/internal/models"
)

// spigotListSize bounds how many resources or versions one Spiget call returns.
const spigotListSize = 100

// SpigotClient talks to the Spiget API, the read-only mirror of SpigotMC.
// SpigotMC calls users authors and projects resources; both are numeric.
type SpigotClient struct {
	api          apiClient
	baseURL      string
	iconFallback string
}

// NewSpigotClient creates a Spigot client.
func NewSpigotClient(cfg config.SpigotConfig, opts Options) *SpigotClient {
	return &SpigotClient{
		api:          newAPIClient(models.PlatformSpigot, "Spigot", opts),
		baseURL:      cfg.APIURL,
		iconFallback: cfg.IconFallbackURL,
	}
}

type spigotRating struct {
	Count   int     `json:"count"`
	Average float64 `json:"average"`
}

type spigotResource struct {
	ID             int64        `json:"id"`
	Name           string       `json:"name"`
	Tag            string       `json:"tag"`
	Downloads      uint64       `json:"downloads"`
	Likes          uint64       `json:"likes"`
	Rating         spigotRating `json:"rating"`
	ReleaseDate    int64        `json:"releaseDate"`
	UpdateDate     int64        `json:"updateDate"`
	TestedVersions []string     `json:"testedVersions"`
	Author         struct {
		ID int64 `json:"id"`
	} `json:"author"`
	Versions []struct {
		ID int64 `json:"id"`
	} `json:"versions"`
}

type spigotVersion struct {
	ID          int64        `json:"id"`
	Name        string       `json:"name"`
	ReleaseDate int64        `json:"releaseDate"`
	Downloads   uint64       `json:"downloads"`
	Rating      spigotRating `json:"rating"`
}

type spigotAuthor struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Icon struct {
		URL string `json:"url"`
	} `json:"icon"`
}

func (c *SpigotClient) Platform() models.Platform { return models.PlatformSpigot }

func (c *SpigotClient) Supports(kind models.EntityKind) bool {
	return kind == models.KindAuthor || kind == models.KindResource
}

func (c *SpigotClient) FetchEntity(ctx context.Context, kind models.EntityKind, id string) (*models.Entity, error) {
	if !c.Supports(kind) {
		return nil, fmt.Errorf("spigot does not serve %s: %w", kind, ErrNotFound)
	}
	if _, err := strconv.ParseUint(id, 10, 64); err != nil {
		return nil, ErrInvalidID
	}

	if kind == models.KindAuthor {
		var a spigotAuthor
		if err := c.api.getJSON(ctx, joinURL(c.baseURL, "authors", id), &a); err != nil {
			return nil, err
		}
		icon := a.Icon.URL
		if icon != "" && !strings.HasPrefix(icon, "http") {
			icon = "https://www.spigotmc.org/" + strings.TrimPrefix(icon, "/")
		}
		return &models.Entity{
			Platform: models.PlatformSpigot,
			Kind:     kind,
			ID:       strconv.FormatInt(a.ID, 10),
			Slug:     strconv.FormatInt(a.ID, 10),
			Name:     a.Name,
			IconURL:  icon,
			Stats:    map[string]float64{},
		}, nil
	}

	var r spigotResource
	if err := c.api.getJSON(ctx, joinURL(c.baseURL, "resources", id), &r); err != nil {
		return nil, err
	}
	p := c.toProject(r)
	return &models.Entity{
		Platform:        models.PlatformSpigot,
		Kind:            kind,
		ID:              p.ID,
		Slug:            p.ID,
		Name:            r.Name,
		Description:     r.Tag,
		IconURL:         p.IconURL,
		IconFallbackURL: p.IconFallbackURL,
		DateCreated:     p.DateCreated,
		GameVersions:    r.TestedVersions,
		Stats: map[string]float64{
			models.StatDownloads: float64(r.Downloads),
			models.StatLikes:     float64(r.Likes),
			models.StatRating:    r.Rating.Average,
			models.StatVersions:  float64(len(r.Versions)),
		},
	}, nil
}

func (c *SpigotClient) FetchProjectList(ctx context.Context, kind models.EntityKind, id string, limit int) ([]models.Project, error) {
	if kind != models.KindAuthor {
		return nil, fmt.Errorf("spigot has no project list for %s: %w", kind, ErrNotFound)
	}
	if _, err := strconv.ParseUint(id, 10, 64); err != nil {
		return nil, ErrInvalidID
	}

	size := limit
	if size <= 0 || size > spigotListSize {
		size = spigotListSize
	}
	var raw []spigotResource
	q := url.Values{"size": {strconv.Itoa(size)}, "sort": {"-downloads"}}
	if err := c.api.getJSON(ctx, withQuery(joinURL(c.baseURL, "authors", id, "resources"), q), &raw); err != nil {
		return nil, err
	}

	projects := make([]models.Project, len(raw))
	for i, r := range raw {
		projects[i] = c.toProject(r)
	}
	return truncate(projects, limit), nil
}

func (c *SpigotClient) FetchVersionList(ctx context.Context, projectID string, limit int) ([]models.Version, error) {
	if _, err := strconv.ParseUint(projectID, 10, 64); err != nil {
		return nil, ErrInvalidID
	}

	size := limit
	if size <= 0 || size > spigotListSize {
		size = spigotListSize
	}
	var raw []spigotVersion
	q := url.Values{"size": {strconv.Itoa(size)}, "sort": {"-releaseDate"}}
	if err := c.api.getJSON(ctx, withQuery(joinURL(c.baseURL, "resources", projectID, "versions"), q), &raw); err != nil {
		return nil, err
	}

	versions := make([]models.Version, len(raw))
	for i, v := range raw {
		versions[i] = models.Version{
			Number:        v.Name,
			Name:          v.Name,
			DatePublished: unixTime(v.ReleaseDate),
			Downloads:     v.Downloads,
		}
	}
	sort.SliceStable(versions, func(i, j int) bool {
		return versions[i].DatePublished.After(versions[j].DatePublished)
	})
	return truncate(versions, limit), nil
}

func (c *SpigotClient) toProject(r spigotResource) models.Project {
	id := strconv.FormatInt(r.ID, 10)
	return models.Project{
		ID:              id,
		Slug:            id,
		Title:           r.Name,
		Description:     r.Tag,
		Downloads:       r.Downloads,
		Followers:       r.Likes,
		Rating:          r.Rating.Average,
		DateCreated:     unixTime(r.ReleaseDate),
		IconURL:         c.IconURL(r.ID),
		IconFallbackURL: c.IconFallbackURL(r.ID),
		GameVersions:    r.TestedVersions,
	}
}

// IconURL returns the Spiget icon endpoint for a resource.
func (c *SpigotClient) IconURL(resourceID int64) string {
	return joinURL(c.baseURL, "resources", strconv.FormatInt(resourceID, 10), "icon")
}

// IconFallbackURL returns the SpigotMC static icon path, bucketed by
// thousands of resource IDs.
func (c *SpigotClient) IconFallbackURL(resourceID int64) string {
	if c.iconFallback == "" {
		return ""
	}
	return fmt.Sprintf("%s/%d/%d.jpg", strings.TrimRight(c.iconFallback, "/"), resourceID/1000, resourceID)
}

// unixTime converts Spiget's epoch seconds; zero stays the zero time.
func unixTime(sec int64) time.Time {
	if sec <= 0 {
		return time.Time{}
	}
	return time.Unix(sec, 0).UTC()
}
