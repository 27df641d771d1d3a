// Modfolio - Mod Platform Stat Cards and Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/modfolio

package platform

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"sync/atomic"
	"testing"

	"github.com/tomtom215/modfolio/internal/config"
	"github.com/tomtom215/modfolio/internal/models"
)

func newCurseForgeTestServer(t *testing.T) (*CurseForgeClient, *int32) {
	t.Helper()
	var hits int32

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/mods/238222", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		if r.Header.Get("x-api-key") != "test-key" {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		_, _ = w.Write([]byte(`{"data":{"id":238222,"gameId":432,"name":"Just Enough Items","slug":"jei","summary":"items",
			"downloadCount":300000000,"thumbsUpCount":42,"gamePopularityRank":3,"dateCreated":"2015-11-22T00:00:00Z",
			"logo":{"url":"https://cdn/jei.png","thumbnailUrl":"https://cdn/jei-thumb.png"},
			"latestFilesIndexes":[{"gameVersion":"1.20.1","modLoader":1},{"gameVersion":"1.20.1","modLoader":6},{"gameVersion":"1.19.2","modLoader":1}]}}`))
	})
	mux.HandleFunc("/v1/mods/238222/files", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		_, _ = w.Write([]byte(`{"data":[
			{"id":1,"displayName":"jei-1.20.1-15.0.0","fileDate":"2023-06-01T00:00:00Z","gameVersions":["1.20.1","Forge","Client","Server"],
			 "sortableGameVersions":[{"gameVersionName":"NeoForge","gameVersionTypeId":68441}]},
			{"id":2,"displayName":"jei-1.19.2-11.0.0","fileDate":"2022-06-01T00:00:00Z","gameVersions":["1.19.2","Fabric","Java"]}
		],"pagination":{"index":0,"pageSize":50,"resultCount":2,"totalCount":180}}`))
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	client := NewCurseForgeClient(config.CurseForgeConfig{
		APIURL: server.URL,
		APIKey: "test-key",
		GameID: 432,
	}, Options{})
	return client, &hits
}

func TestCurseForgeFetchProject(t *testing.T) {
	c, _ := newCurseForgeTestServer(t)

	entity, err := c.FetchEntity(context.Background(), models.KindProject, "238222")
	if err != nil {
		t.Fatalf("FetchEntity() error = %v", err)
	}

	if entity.Name != "Just Enough Items" {
		t.Errorf("Name = %q", entity.Name)
	}
	if entity.Stat(models.StatRank) != 3 {
		t.Errorf("rank = %v, want 3", entity.Stat(models.StatRank))
	}
	if entity.Stat(models.StatVersions) != 180 {
		t.Errorf("versions = %v, want pagination total 180", entity.Stat(models.StatVersions))
	}
	if entity.IconURL != "https://cdn/jei-thumb.png" || entity.IconFallbackURL != "https://cdn/jei.png" {
		t.Errorf("Unexpected icons %q / %q", entity.IconURL, entity.IconFallbackURL)
	}
	if !reflect.DeepEqual(entity.Loaders, []string{"Forge", "NeoForge"}) {
		t.Errorf("Loaders = %v", entity.Loaders)
	}
	if !reflect.DeepEqual(entity.GameVersions, []string{"1.20.1", "1.19.2"}) {
		t.Errorf("GameVersions = %v", entity.GameVersions)
	}
}

func TestCurseForgeInvalidIDSkipsNetwork(t *testing.T) {
	c, hits := newCurseForgeTestServer(t)

	for _, id := range []string{"jei", "12a", "-1", ""} {
		if _, err := c.FetchEntity(context.Background(), models.KindProject, id); !errors.Is(err, ErrInvalidID) {
			t.Errorf("FetchEntity(%q): expected ErrInvalidID, got %v", id, err)
		}
		if _, err := c.FetchVersionList(context.Background(), id, 5); !errors.Is(err, ErrNotFound) {
			t.Errorf("FetchVersionList(%q): expected not found, got %v", id, err)
		}
	}

	if got := atomic.LoadInt32(hits); got != 0 {
		t.Errorf("Expected no upstream calls, got %d", got)
	}
}

func TestCurseForgeVersionLoaders(t *testing.T) {
	c, _ := newCurseForgeTestServer(t)

	versions, err := c.FetchVersionList(context.Background(), "238222", 5)
	if err != nil {
		t.Fatalf("FetchVersionList() error = %v", err)
	}
	if len(versions) != 2 {
		t.Fatalf("Expected 2 versions, got %d", len(versions))
	}

	newest := versions[0]
	if newest.Number != "jei-1.20.1-15.0.0" {
		t.Errorf("Expected newest first, got %s", newest.Number)
	}
	if !reflect.DeepEqual(newest.Loaders, []string{"Forge", "NeoForge"}) {
		t.Errorf("Loaders = %v", newest.Loaders)
	}
	if !reflect.DeepEqual(newest.GameVersions, []string{"1.20.1"}) {
		t.Errorf("Expected environment tags filtered, got %v", newest.GameVersions)
	}
	if !reflect.DeepEqual(versions[1].GameVersions, []string{"1.19.2"}) {
		t.Errorf("Expected Java tag filtered, got %v", versions[1].GameVersions)
	}
}

func TestCurseForgeOnlyServesProjects(t *testing.T) {
	c, _ := newCurseForgeTestServer(t)

	if c.Supports(models.KindUser) {
		t.Error("CurseForge must not support user")
	}
	if _, err := c.FetchProjectList(context.Background(), models.KindUser, "x", 5); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}
