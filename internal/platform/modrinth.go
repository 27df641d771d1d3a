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

	"github.com/goccy/go-json"

	"github.com/tomtom215/modfolio/internal/config"
	"github.com/tomtom215/modfolio/internal/models"
)

// ModrinthClient talks to the Modrinth v2 API, and to v3 for organizations
// and collections which v2 does not expose.
type ModrinthClient struct {
	api   apiClient
	v2URL string
	v3URL string
}

// NewModrinthClient creates a Modrinth client.
func NewModrinthClient(cfg config.ModrinthConfig, opts Options) *ModrinthClient {
	return &ModrinthClient{
		api:   newAPIClient(models.PlatformModrinth, "Modrinth", opts),
		v2URL: cfg.APIURL,
		v3URL: cfg.APIV3URL,
	}
}

type modrinthUser struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Name      string `json:"name"`
	Bio       string `json:"bio"`
	AvatarURL string `json:"avatar_url"`
	Created   string `json:"created"`
}

type modrinthProject struct {
	ID           string   `json:"id"`
	Slug         string   `json:"slug"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	ProjectType  string   `json:"project_type"`
	Downloads    uint64   `json:"downloads"`
	Followers    uint64   `json:"followers"`
	IconURL      string   `json:"icon_url"`
	Published    string   `json:"published"`
	Loaders      []string `json:"loaders"`
	GameVersions []string `json:"game_versions"`
	Versions     []string `json:"versions"`
}

// modrinthV3Project is the v3 shape, normalized into modrinthProject.
type modrinthV3Project struct {
	ID           string   `json:"id"`
	Slug         string   `json:"slug"`
	Name         string   `json:"name"`
	Summary      string   `json:"summary"`
	ProjectTypes []string `json:"project_types"`
	Downloads    uint64   `json:"downloads"`
	Followers    uint64   `json:"followers"`
	IconURL      string   `json:"icon_url"`
	Published    string   `json:"published"`
	Loaders      []string `json:"loaders"`
	GameVersions []string `json:"game_versions"`
	Versions     []string `json:"versions"`
}

func (p modrinthV3Project) normalize() modrinthProject {
	out := modrinthProject{
		ID:           p.ID,
		Slug:         p.Slug,
		Title:        p.Name,
		Description:  p.Summary,
		Downloads:    p.Downloads,
		Followers:    p.Followers,
		IconURL:      p.IconURL,
		Published:    p.Published,
		Loaders:      p.Loaders,
		GameVersions: p.GameVersions,
		Versions:     p.Versions,
	}
	if len(p.ProjectTypes) > 0 {
		out.ProjectType = p.ProjectTypes[0]
	}
	return out
}

type modrinthOrganization struct {
	ID          string `json:"id"`
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Description string `json:"description"`
	IconURL     string `json:"icon_url"`
	Members     []struct {
		User modrinthUser `json:"user"`
	} `json:"members"`
}

type modrinthCollection struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	IconURL     string   `json:"icon_url"`
	Created     string   `json:"created"`
	Projects    []string `json:"projects"`
}

type modrinthVersion struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	VersionNumber string   `json:"version_number"`
	DatePublished string   `json:"date_published"`
	Downloads     uint64   `json:"downloads"`
	Loaders       []string `json:"loaders"`
	GameVersions  []string `json:"game_versions"`
}

func (c *ModrinthClient) Platform() models.Platform { return models.PlatformModrinth }

func (c *ModrinthClient) Supports(kind models.EntityKind) bool {
	switch kind {
	case models.KindUser, models.KindProject, models.KindOrganization, models.KindCollection:
		return true
	}
	return false
}

func (c *ModrinthClient) FetchEntity(ctx context.Context, kind models.EntityKind, id string) (*models.Entity, error) {
	switch kind {
	case models.KindUser:
		var u modrinthUser
		if err := c.api.getJSON(ctx, joinURL(c.v2URL, "user", id), &u); err != nil {
			return nil, err
		}
		name := u.Username
		if name == "" {
			name = u.Name
		}
		return &models.Entity{
			Platform:    models.PlatformModrinth,
			Kind:        kind,
			ID:          u.ID,
			Slug:        u.Username,
			Name:        name,
			Description: u.Bio,
			IconURL:     u.AvatarURL,
			DateCreated: parseTime(u.Created),
			Stats:       map[string]float64{},
		}, nil

	case models.KindProject:
		var p modrinthProject
		if err := c.api.getJSON(ctx, joinURL(c.v2URL, "project", id), &p); err != nil {
			return nil, err
		}
		return projectEntity(p), nil

	case models.KindOrganization:
		var o modrinthOrganization
		if err := c.api.getJSON(ctx, joinURL(c.v3URL, "organization", id), &o); err != nil {
			return nil, err
		}
		return &models.Entity{
			Platform:    models.PlatformModrinth,
			Kind:        kind,
			ID:          o.ID,
			Slug:        o.Slug,
			Name:        o.Name,
			Description: o.Description,
			IconURL:     o.IconURL,
			Stats:       map[string]float64{"members": float64(len(o.Members))},
		}, nil

	case models.KindCollection:
		col, err := c.fetchCollection(ctx, id)
		if err != nil {
			return nil, err
		}
		return &models.Entity{
			Platform:    models.PlatformModrinth,
			Kind:        kind,
			ID:          col.ID,
			Slug:        col.ID,
			Name:        col.Name,
			Description: col.Description,
			IconURL:     col.IconURL,
			DateCreated: parseTime(col.Created),
			Stats:       map[string]float64{models.StatProjects: float64(len(col.Projects))},
		}, nil
	}
	return nil, fmt.Errorf("modrinth does not serve %s: %w", kind, ErrNotFound)
}

func (c *ModrinthClient) FetchProjectList(ctx context.Context, kind models.EntityKind, id string, limit int) ([]models.Project, error) {
	var raw []modrinthProject

	switch kind {
	case models.KindUser:
		if err := c.api.getJSON(ctx, joinURL(c.v2URL, "user", id, "projects"), &raw); err != nil {
			return nil, err
		}

	case models.KindOrganization:
		var v3 []modrinthV3Project
		if err := c.api.getJSON(ctx, joinURL(c.v3URL, "organization", id, "projects"), &v3); err != nil {
			return nil, err
		}
		raw = make([]modrinthProject, len(v3))
		for i, p := range v3 {
			raw[i] = p.normalize()
		}

	case models.KindCollection:
		col, err := c.fetchCollection(ctx, id)
		if err != nil {
			return nil, err
		}
		if len(col.Projects) == 0 {
			return []models.Project{}, nil
		}
		ids, err := json.Marshal(col.Projects)
		if err != nil {
			return nil, err
		}
		u := withQuery(joinURL(c.v2URL, "projects"), url.Values{"ids": {string(ids)}})
		if err := c.api.getJSON(ctx, u, &raw); err != nil {
			return nil, err
		}

	default:
		return nil, fmt.Errorf("modrinth has no project list for %s: %w", kind, ErrNotFound)
	}

	projects := make([]models.Project, len(raw))
	for i, p := range raw {
		projects[i] = toProject(p)
	}
	return truncate(projects, limit), nil
}

func (c *ModrinthClient) FetchVersionList(ctx context.Context, projectID string, limit int) ([]models.Version, error) {
	var raw []modrinthVersion
	u := withQuery(joinURL(c.v2URL, "project", projectID, "version"), url.Values{"include_changelog": {"false"}})
	if err := c.api.getJSON(ctx, u, &raw); err != nil {
		return nil, err
	}

	versions := make([]models.Version, len(raw))
	for i, v := range raw {
		versions[i] = models.Version{
			Number:        v.VersionNumber,
			Name:          v.Name,
			DatePublished: parseTime(v.DatePublished),
			Loaders:       v.Loaders,
			GameVersions:  v.GameVersions,
			Downloads:     v.Downloads,
		}
	}
	sort.SliceStable(versions, func(i, j int) bool {
		return versions[i].DatePublished.After(versions[j].DatePublished)
	})
	return truncate(versions, limit), nil
}

func (c *ModrinthClient) fetchCollection(ctx context.Context, id string) (*modrinthCollection, error) {
	var col modrinthCollection
	if err := c.api.getJSON(ctx, joinURL(c.v3URL, "collection", id), &col); err != nil {
		return nil, err
	}
	return &col, nil
}

func projectEntity(p modrinthProject) *models.Entity {
	return &models.Entity{
		Platform:     models.PlatformModrinth,
		Kind:         models.KindProject,
		ID:           p.ID,
		Slug:         p.Slug,
		Name:         p.Title,
		Description:  p.Description,
		IconURL:      p.IconURL,
		DateCreated:  parseTime(p.Published),
		Loaders:      p.Loaders,
		GameVersions: p.GameVersions,
		Stats: map[string]float64{
			models.StatDownloads: float64(p.Downloads),
			models.StatFollowers: float64(p.Followers),
			models.StatVersions:  float64(len(p.Versions)),
		},
	}
}

func toProject(p modrinthProject) models.Project {
	return models.Project{
		ID:           p.ID,
		Slug:         p.Slug,
		Title:        p.Title,
		Description:  p.Description,
		Downloads:    p.Downloads,
		Followers:    p.Followers,
		DateCreated:  parseTime(p.Published),
		IconURL:      p.IconURL,
		Loaders:      p.Loaders,
		ProjectType:  p.ProjectType,
		GameVersions: p.GameVersions,
	}
}
