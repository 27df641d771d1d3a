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

	"github.com/tomtom215/modfolio/internal/config"
	"github.com/tomtom215/modfolio/internal/models"
)

const (
	hangarPageSize = 25
	// hangarMaxPages bounds owner listings to hangarPageSize*hangarMaxPages projects.
	hangarMaxPages = 8
)

// HangarClient talks to the PaperMC Hangar API.
type HangarClient struct {
	api     apiClient
	baseURL string
}

// NewHangarClient creates a Hangar client.
func NewHangarClient(cfg config.HangarConfig, opts Options) *HangarClient {
	return &HangarClient{
		api:     newAPIClient(models.PlatformHangar, "Hangar", opts),
		baseURL: cfg.APIURL,
	}
}

type hangarPagination struct {
	Count  int `json:"count"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

type hangarProject struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Namespace struct {
		Owner string `json:"owner"`
		Slug  string `json:"slug"`
	} `json:"namespace"`
	Stats struct {
		Views           uint64 `json:"views"`
		Downloads       uint64 `json:"downloads"`
		RecentViews     uint64 `json:"recentViews"`
		RecentDownloads uint64 `json:"recentDownloads"`
		Stars           uint64 `json:"stars"`
		Watchers        uint64 `json:"watchers"`
	} `json:"stats"`
	Category    string `json:"category"`
	Description string `json:"description"`
	CreatedAt   string `json:"createdAt"`
	AvatarURL   string `json:"avatarUrl"`
}

type hangarUser struct {
	Name         string `json:"name"`
	Tagline      string `json:"tagline"`
	CreatedAt    string `json:"createdAt"`
	AvatarURL    string `json:"avatarUrl"`
	ProjectCount int    `json:"projectCount"`
}

type hangarVersion struct {
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt"`
	Stats     struct {
		TotalDownloads uint64 `json:"totalDownloads"`
	} `json:"stats"`
	PlatformDependencies map[string][]string `json:"platformDependencies"`
}

type hangarProjectsResponse struct {
	Pagination hangarPagination `json:"pagination"`
	Result     []hangarProject  `json:"result"`
}

type hangarVersionsResponse struct {
	Pagination hangarPagination `json:"pagination"`
	Result     []hangarVersion  `json:"result"`
}

func (c *HangarClient) Platform() models.Platform { return models.PlatformHangar }

func (c *HangarClient) Supports(kind models.EntityKind) bool {
	return kind == models.KindUser || kind == models.KindProject
}

func (c *HangarClient) FetchEntity(ctx context.Context, kind models.EntityKind, id string) (*models.Entity, error) {
	switch kind {
	case models.KindUser:
		var u hangarUser
		if err := c.api.getJSON(ctx, joinURL(c.baseURL, "users", id), &u); err != nil {
			return nil, err
		}
		return &models.Entity{
			Platform:    models.PlatformHangar,
			Kind:        kind,
			ID:          u.Name,
			Slug:        u.Name,
			Name:        u.Name,
			Description: u.Tagline,
			IconURL:     u.AvatarURL,
			DateCreated: parseTime(u.CreatedAt),
			Stats:       map[string]float64{models.StatProjects: float64(u.ProjectCount)},
		}, nil

	case models.KindProject:
		var p hangarProject
		if err := c.api.getJSON(ctx, joinURL(c.baseURL, "projects", id), &p); err != nil {
			return nil, err
		}
		versions, err := c.fetchVersions(ctx, id, 1)
		if err != nil {
			return nil, err
		}
		return &models.Entity{
			Platform:    models.PlatformHangar,
			Kind:        kind,
			ID:          strconv.FormatInt(p.ID, 10),
			Slug:        p.Namespace.Slug,
			Name:        p.Name,
			Description: p.Description,
			IconURL:     p.AvatarURL,
			DateCreated: parseTime(p.CreatedAt),
			Stats: map[string]float64{
				models.StatDownloads: float64(p.Stats.Downloads),
				models.StatFollowers: float64(p.Stats.Stars),
				models.StatViews:     float64(p.Stats.Views),
				"watchers":           float64(p.Stats.Watchers),
				models.StatVersions:  float64(versions.Pagination.Count),
			},
		}, nil
	}
	return nil, fmt.Errorf("hangar does not serve %s: %w", kind, ErrNotFound)
}

func (c *HangarClient) FetchProjectList(ctx context.Context, kind models.EntityKind, id string, limit int) ([]models.Project, error) {
	if kind != models.KindUser {
		return nil, fmt.Errorf("hangar has no project list for %s: %w", kind, ErrNotFound)
	}

	var projects []models.Project
	for page := 0; page < hangarMaxPages; page++ {
		q := url.Values{
			"owner":  {id},
			"limit":  {strconv.Itoa(hangarPageSize)},
			"offset": {strconv.Itoa(page * hangarPageSize)},
		}
		var resp hangarProjectsResponse
		if err := c.api.getJSON(ctx, withQuery(joinURL(c.baseURL, "projects"), q), &resp); err != nil {
			return nil, err
		}
		for _, p := range resp.Result {
			projects = append(projects, models.Project{
				ID:          p.Namespace.Slug,
				Slug:        p.Namespace.Slug,
				Title:       p.Name,
				Description: p.Description,
				Downloads:   p.Stats.Downloads,
				Followers:   p.Stats.Stars,
				DateCreated: parseTime(p.CreatedAt),
				IconURL:     p.AvatarURL,
				ProjectType: p.Category,
			})
		}
		if len(resp.Result) < hangarPageSize || len(projects) >= resp.Pagination.Count {
			break
		}
	}
	if projects == nil {
		projects = []models.Project{}
	}
	return truncate(projects, limit), nil
}

func (c *HangarClient) FetchVersionList(ctx context.Context, projectID string, limit int) ([]models.Version, error) {
	pageSize := limit
	if pageSize <= 0 || pageSize > hangarPageSize {
		pageSize = hangarPageSize
	}
	resp, err := c.fetchVersions(ctx, projectID, pageSize)
	if err != nil {
		return nil, err
	}

	versions := make([]models.Version, len(resp.Result))
	for i, v := range resp.Result {
		loaders := make([]string, 0, len(v.PlatformDependencies))
		var gameVersions []string
		for platform, deps := range v.PlatformDependencies {
			loaders = append(loaders, platform)
			gameVersions = append(gameVersions, deps...)
		}
		sort.Strings(loaders)
		versions[i] = models.Version{
			Number:        v.Name,
			Name:          v.Name,
			DatePublished: parseTime(v.CreatedAt),
			Loaders:       loaders,
			GameVersions:  gameVersions,
			Downloads:     v.Stats.TotalDownloads,
		}
	}
	sort.SliceStable(versions, func(i, j int) bool {
		return versions[i].DatePublished.After(versions[j].DatePublished)
	})
	return truncate(versions, limit), nil
}

func (c *HangarClient) fetchVersions(ctx context.Context, slug string, limit int) (*hangarVersionsResponse, error) {
	var resp hangarVersionsResponse
	q := url.Values{"limit": {strconv.Itoa(limit)}, "offset": {"0"}}
	if err := c.api.getJSON(ctx, withQuery(joinURL(c.baseURL, "projects", slug, "versions"), q), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
