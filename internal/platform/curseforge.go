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

// CurseForge returns at most 50 files per page.
const curseForgeMaxPageSize = 50

// neoForgeVersionTypeID marks a NeoForge entry in sortableGameVersions.
const neoForgeVersionTypeID = 68441

// curseForgeLoaders are gameVersions entries that name a mod loader rather
// than a Minecraft version.
var curseForgeLoaders = map[string]bool{
	"Forge": true, "Fabric": true, "NeoForge": true, "Quilt": true,
	"Rift": true, "LiteLoader": true, "Cauldron": true, "ModLoader": true,
	"Canvas": true, "Iris": true, "OptiFine": true, "Sodium": true,
}

// curseForgeTags are gameVersions entries that are neither loaders nor
// game versions.
var curseForgeTags = map[string]bool{
	"Client": true, "Server": true, "Singleplayer": true, "Java": true,
}

// CurseForgeClient talks to the CurseForge Core API. Only projects are
// served; CurseForge has no public user endpoint.
type CurseForgeClient struct {
	api     apiClient
	baseURL string
	gameID  int
}

// NewCurseForgeClient creates a CurseForge client authenticated by the
// configured API key.
func NewCurseForgeClient(cfg config.CurseForgeConfig, opts Options) *CurseForgeClient {
	api := newAPIClient(models.PlatformCurseForge, "CurseForge", opts)
	api.headers["x-api-key"] = cfg.APIKey
	return &CurseForgeClient{api: api, baseURL: cfg.APIURL, gameID: cfg.GameID}
}

type curseForgeMod struct {
	ID                 int    `json:"id"`
	GameID             int    `json:"gameId"`
	Name               string `json:"name"`
	Slug               string `json:"slug"`
	Summary            string `json:"summary"`
	DownloadCount      uint64 `json:"downloadCount"`
	ThumbsUpCount      uint64 `json:"thumbsUpCount"`
	GamePopularityRank int    `json:"gamePopularityRank"`
	DateCreated        string `json:"dateCreated"`
	Logo               *struct {
		URL          string `json:"url"`
		ThumbnailURL string `json:"thumbnailUrl"`
	} `json:"logo"`
	LatestFilesIndexes []struct {
		GameVersion string `json:"gameVersion"`
		ModLoader   *int   `json:"modLoader"`
	} `json:"latestFilesIndexes"`
}

type curseForgeFile struct {
	ID                   int      `json:"id"`
	DisplayName          string   `json:"displayName"`
	FileName             string   `json:"fileName"`
	FileDate             string   `json:"fileDate"`
	DownloadCount        uint64   `json:"downloadCount"`
	GameVersions         []string `json:"gameVersions"`
	SortableGameVersions []struct {
		GameVersionName   string `json:"gameVersionName"`
		GameVersion       string `json:"gameVersion"`
		GameVersionTypeID int    `json:"gameVersionTypeId"`
	} `json:"sortableGameVersions"`
}

type curseForgePagination struct {
	Index       int `json:"index"`
	PageSize    int `json:"pageSize"`
	ResultCount int `json:"resultCount"`
	TotalCount  int `json:"totalCount"`
}

type curseForgeFilesResponse struct {
	Data       []curseForgeFile     `json:"data"`
	Pagination curseForgePagination `json:"pagination"`
}

func (c *CurseForgeClient) Platform() models.Platform { return models.PlatformCurseForge }

func (c *CurseForgeClient) Supports(kind models.EntityKind) bool {
	return kind == models.KindProject
}

func (c *CurseForgeClient) FetchEntity(ctx context.Context, kind models.EntityKind, id string) (*models.Entity, error) {
	if kind != models.KindProject {
		return nil, fmt.Errorf("curseforge does not serve %s: %w", kind, ErrNotFound)
	}
	if _, err := strconv.ParseUint(id, 10, 64); err != nil {
		return nil, ErrInvalidID
	}

	var resp struct {
		Data curseForgeMod `json:"data"`
	}
	if err := c.api.getJSON(ctx, joinURL(c.baseURL, "v1", "mods", id), &resp); err != nil {
		return nil, err
	}
	mod := resp.Data
	if c.gameID != 0 && mod.GameID != 0 && mod.GameID != c.gameID {
		return nil, ErrNotFound
	}

	// A single-file page is enough to learn the total file count.
	files, err := c.fetchFiles(ctx, id, 1)
	if err != nil {
		return nil, err
	}

	loaders, gameVersions := modIndexes(mod)
	entity := &models.Entity{
		Platform:     models.PlatformCurseForge,
		Kind:         kind,
		ID:           strconv.Itoa(mod.ID),
		Slug:         mod.Slug,
		Name:         mod.Name,
		Description:  mod.Summary,
		DateCreated:  parseTime(mod.DateCreated),
		Loaders:      loaders,
		GameVersions: gameVersions,
		Stats: map[string]float64{
			models.StatDownloads: float64(mod.DownloadCount),
			models.StatLikes:     float64(mod.ThumbsUpCount),
			models.StatRank:      float64(mod.GamePopularityRank),
			models.StatVersions:  float64(files.Pagination.TotalCount),
		},
	}
	if mod.Logo != nil {
		entity.IconURL = mod.Logo.ThumbnailURL
		entity.IconFallbackURL = mod.Logo.URL
		if entity.IconURL == "" {
			entity.IconURL = mod.Logo.URL
			entity.IconFallbackURL = ""
		}
	}
	return entity, nil
}

func (c *CurseForgeClient) FetchProjectList(ctx context.Context, kind models.EntityKind, id string, limit int) ([]models.Project, error) {
	return nil, fmt.Errorf("curseforge has no project list for %s: %w", kind, ErrNotFound)
}

func (c *CurseForgeClient) FetchVersionList(ctx context.Context, projectID string, limit int) ([]models.Version, error) {
	if _, err := strconv.ParseUint(projectID, 10, 64); err != nil {
		return nil, ErrInvalidID
	}
	pageSize := limit
	if pageSize <= 0 || pageSize > curseForgeMaxPageSize {
		pageSize = curseForgeMaxPageSize
	}

	files, err := c.fetchFiles(ctx, projectID, pageSize)
	if err != nil {
		return nil, err
	}

	versions := make([]models.Version, len(files.Data))
	for i, f := range files.Data {
		loaders, gameVersions := splitGameVersions(f)
		name := f.DisplayName
		if name == "" {
			name = f.FileName
		}
		versions[i] = models.Version{
			Number:        name,
			Name:          name,
			DatePublished: parseTime(f.FileDate),
			Loaders:       loaders,
			GameVersions:  gameVersions,
			Downloads:     f.DownloadCount,
		}
	}
	sort.SliceStable(versions, func(i, j int) bool {
		return versions[i].DatePublished.After(versions[j].DatePublished)
	})
	return truncate(versions, limit), nil
}

func (c *CurseForgeClient) fetchFiles(ctx context.Context, id string, pageSize int) (*curseForgeFilesResponse, error) {
	var resp curseForgeFilesResponse
	u := withQuery(joinURL(c.baseURL, "v1", "mods", id, "files"), url.Values{"pageSize": {strconv.Itoa(pageSize)}})
	if err := c.api.getJSON(ctx, u, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// splitGameVersions separates loader names from Minecraft versions and drops
// environment tags.
func splitGameVersions(f curseForgeFile) (loaders, gameVersions []string) {
	seen := make(map[string]bool)
	for _, v := range f.GameVersions {
		switch {
		case curseForgeLoaders[v]:
			if !seen[v] {
				seen[v] = true
				loaders = append(loaders, v)
			}
		case curseForgeTags[v]:
		default:
			gameVersions = append(gameVersions, v)
		}
	}
	for _, sv := range f.SortableGameVersions {
		if sv.GameVersionTypeID == neoForgeVersionTypeID && !seen["NeoForge"] {
			seen["NeoForge"] = true
			loaders = append(loaders, "NeoForge")
		}
	}
	return loaders, gameVersions
}

// modLoaderNames maps CurseForge's numeric ModLoaderType.
var modLoaderNames = map[int]string{
	1: "Forge", 2: "Cauldron", 3: "LiteLoader", 4: "Fabric", 5: "Quilt", 6: "NeoForge",
}

func modIndexes(mod curseForgeMod) (loaders, gameVersions []string) {
	seenLoader := make(map[string]bool)
	seenVersion := make(map[string]bool)
	for _, idx := range mod.LatestFilesIndexes {
		if idx.ModLoader != nil {
			if name, ok := modLoaderNames[*idx.ModLoader]; ok && !seenLoader[name] {
				seenLoader[name] = true
				loaders = append(loaders, name)
			}
		}
		if idx.GameVersion != "" && !seenVersion[idx.GameVersion] {
			seenVersion[idx.GameVersion] = true
			gameVersions = append(gameVersions, idx.GameVersion)
		}
	}
	return loaders, gameVersions
}
