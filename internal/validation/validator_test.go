// Modfolio - Mod Platform Stat Cards and Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/modfolio

package validation

import (
	"strings"
	"testing"
)

type testRequest struct {
	Identifier string `validate:"required,identifier"`
	Theme      string `validate:"oneof=dark light"`
	Color      string `validate:"omitempty,hexcolor"`
	Max        int    `validate:"min=1,max=50"`
}

func TestGetValidatorSingleton(t *testing.T) {
	if GetValidator() != GetValidator() {
		t.Error("GetValidator() should return the same instance")
	}
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name       string
		input      testRequest
		wantFields []string
	}{
		{
			name:  "valid",
			input: testRequest{Identifier: "jellysquid_", Theme: "dark", Color: "#1bd96a", Max: 5},
		},
		{
			name:  "valid dotted slug without color",
			input: testRequest{Identifier: "fabric-api.v2", Theme: "light", Max: 50},
		},
		{
			name:       "bad identifier",
			input:      testRequest{Identifier: "../etc/passwd", Theme: "dark", Max: 5},
			wantFields: []string{"Identifier"},
		},
		{
			name:       "bad color and theme",
			input:      testRequest{Identifier: "a", Theme: "neon", Color: "#zzzzzz", Max: 5},
			wantFields: []string{"Theme", "Color"},
		},
		{
			name:       "max out of range",
			input:      testRequest{Identifier: "a", Theme: "dark", Max: 51},
			wantFields: []string{"Max"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verr := ValidateStruct(tt.input)
			if len(tt.wantFields) == 0 {
				if verr != nil {
					t.Fatalf("unexpected error: %v", verr)
				}
				return
			}
			if verr == nil {
				t.Fatalf("expected errors on %v", tt.wantFields)
			}
			for _, f := range tt.wantFields {
				if !verr.Has(f) {
					t.Errorf("expected %s to fail, got %v", f, verr.Fields())
				}
			}
			if len(verr.Errors()) != len(tt.wantFields) {
				t.Errorf("expected %d errors, got %v", len(tt.wantFields), verr.Fields())
			}
		})
	}
}

func TestErrorMessages(t *testing.T) {
	verr := ValidateStruct(testRequest{Identifier: "", Theme: "neon", Color: "red", Max: 0})
	if verr == nil {
		t.Fatal("expected validation errors")
	}

	msg := verr.Error()
	for _, want := range []string{
		"Identifier is required",
		"Theme must be one of: dark light",
		"Color must be a hex color",
		"Max must be at least 1",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("expected %q in %q", want, msg)
		}
	}
}

func TestValidateVar(t *testing.T) {
	if err := ValidateVar("238222", "numeric"); err != nil {
		t.Errorf("expected numeric to pass, got %v", err)
	}
	if err := ValidateVar("sodium", "numeric"); err == nil {
		t.Error("expected non-numeric to fail")
	}
}
