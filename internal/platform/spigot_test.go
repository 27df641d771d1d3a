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
	"testing"
	"time"

	"github.com/tomtom215/modfolio/internal/config"
	"github.com/tomtom215/modfolio/internal/models"
)

func newSpigotTestServer(t *testing.T) (*SpigotClient, string) {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/v2/resources/19254", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":19254,"name":"ViaVersion","tag":"Allow newer clients","downloads":5000,"likes":300,
			"rating":{"count":100,"average":4.8},"releaseDate":1458000000,"testedVersions":["1.8","1.20"],
			"author":{"id":49225},"versions":[{"id":1},{"id":2},{"id":3},{"id":4}]}`))
	})
	mux.HandleFunc("/v2/resources/19254/versions", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("sort") != "-releaseDate" || q.Get("size") != "3" {
			t.Errorf("Unexpected version query %q", r.URL.RawQuery)
		}
		_, _ = w.Write([]byte(`[{"id":3,"name":"4.9.2","releaseDate":1700000000},{"id":4,"name":"4.10.0","releaseDate":1710000000}]`))
	})
	mux.HandleFunc("/v2/authors/49225", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":49225,"name":"_MylesC","icon":{"url":"data/avatars/l/49/49225.jpg"}}`))
	})
	mux.HandleFunc("/v2/authors/49225/resources", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("sort") != "-downloads" {
			t.Errorf("Expected sort=-downloads, got %q", r.URL.RawQuery)
		}
		_, _ = w.Write([]byte(`[{"id":19254,"name":"ViaVersion","downloads":5000,"rating":{"average":4.8}},{"id":27448,"name":"ViaBackwards","downloads":2000,"rating":{"average":4.6}}]`))
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	c := NewSpigotClient(config.SpigotConfig{
		APIURL:          server.URL + "/v2",
		IconFallbackURL: "https://www.spigotmc.org/data/resource_icons",
	}, Options{})
	return c, server.URL
}

func TestSpigotFetchResource(t *testing.T) {
	c, base := newSpigotTestServer(t)

	entity, err := c.FetchEntity(context.Background(), models.KindResource, "19254")
	if err != nil {
		t.Fatalf("FetchEntity() error = %v", err)
	}
	if entity.Stat(models.StatVersions) != 4 || entity.Stat(models.StatRating) != 4.8 {
		t.Errorf("Unexpected stats %v", entity.Stats)
	}
	if entity.IconURL != base+"/v2/resources/19254/icon" {
		t.Errorf("IconURL = %q", entity.IconURL)
	}
	if entity.IconFallbackURL != "https://www.spigotmc.org/data/resource_icons/19/19254.jpg" {
		t.Errorf("IconFallbackURL = %q", entity.IconFallbackURL)
	}
	if !entity.DateCreated.Equal(time.Unix(1458000000, 0)) {
		t.Errorf("DateCreated = %v", entity.DateCreated)
	}
}

func TestSpigotVersionsUseSeconds(t *testing.T) {
	c, _ := newSpigotTestServer(t)

	versions, err := c.FetchVersionList(context.Background(), "19254", 3)
	if err != nil {
		t.Fatalf("FetchVersionList() error = %v", err)
	}
	if len(versions) != 2 {
		t.Fatalf("Expected 2 versions, got %d", len(versions))
	}
	if versions[0].Number != "4.10.0" {
		t.Errorf("Expected newest first, got %s", versions[0].Number)
	}
	if versions[0].DatePublished.Year() != 2024 {
		t.Errorf("Expected epoch seconds parsed, got %v", versions[0].DatePublished)
	}
}

func TestSpigotAuthorResources(t *testing.T) {
	c, _ := newSpigotTestServer(t)

	entity, err := c.FetchEntity(context.Background(), models.KindAuthor, "49225")
	if err != nil {
		t.Fatalf("FetchEntity() error = %v", err)
	}
	if entity.IconURL != "https://www.spigotmc.org/data/avatars/l/49/49225.jpg" {
		t.Errorf("IconURL = %q", entity.IconURL)
	}

	projects, err := c.FetchProjectList(context.Background(), models.KindAuthor, "49225", 0)
	if err != nil {
		t.Fatalf("FetchProjectList() error = %v", err)
	}
	if len(projects) != 2 || projects[1].Rating != 4.6 {
		t.Errorf("Unexpected projects %+v", projects)
	}
}

func TestSpigotNonNumericID(t *testing.T) {
	c, _ := newSpigotTestServer(t)

	if _, err := c.FetchEntity(context.Background(), models.KindResource, "viaversion"); !errors.Is(err, ErrInvalidID) {
		t.Errorf("Expected ErrInvalidID, got %v", err)
	}
	if _, err := c.FetchProjectList(context.Background(), models.KindAuthor, "myles", 5); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected not found, got %v", err)
	}
}
