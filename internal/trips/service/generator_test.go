package service

import (
	"context"
	"fmt"
	"testing"

	"trip_planner_backend/platform/apperr"
	"trip_planner_backend/platform/logger"
	"trip_planner_backend/platform/validator"
)

func newTestGenerator(ai *stubAI) *Generator {
	return NewGenerator(ai, validator.New(), logger.New("development"))
}

func TestGenerateCandidates_ParsesArray(t *testing.T) {
	ai := &stubAI{generateResponse: parisRecommendations}
	gen := newTestGenerator(ai)

	candidates, err := gen.GenerateCandidates(context.Background(), "2 places in Paris", "Paris, France")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(candidates) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(candidates))
	}
	if candidates[0].Name != "Eiffel Tower" {
		t.Fatalf("expected first candidate Eiffel Tower, got %s", candidates[0].Name)
	}
	if candidates[0].Latitude != 0 || candidates[0].Longitude != 0 {
		t.Fatalf("expected placeholder coordinates, got (%v, %v)", candidates[0].Latitude, candidates[0].Longitude)
	}
}

func TestGenerateCandidates_StripsCodeFences(t *testing.T) {
	ai := &stubAI{generateResponse: "```json\n" + parisRecommendations + "\n```"}
	gen := newTestGenerator(ai)

	candidates, err := gen.GenerateCandidates(context.Background(), "2 places in Paris", "Paris, France")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(candidates) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(candidates))
	}
}

func TestGenerateCandidates_SanitizesText(t *testing.T) {
	ai := &stubAI{generateResponse: `[{"name": "<b>Eiffel Tower</b>", "description": "Iconic <script>x()</script>tower.", "latitude": 0, "longitude": 0}]`}
	gen := newTestGenerator(ai)

	candidates, err := gen.GenerateCandidates(context.Background(), "1 place in Paris", "Paris, France")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if candidates[0].Name != "Eiffel Tower" {
		t.Fatalf("expected HTML stripped from name, got %q", candidates[0].Name)
	}
	if candidates[0].Description != "Iconic x()tower." {
		t.Fatalf("expected HTML stripped from description, got %q", candidates[0].Description)
	}
}

func TestGenerateCandidates_MalformedJSON(t *testing.T) {
	ai := &stubAI{generateResponse: "You should definitely see the Eiffel Tower!"}
	gen := newTestGenerator(ai)

	_, err := gen.GenerateCandidates(context.Background(), "2 places in Paris", "Paris, France")
	if !apperr.Is(err, apperr.KindUpstream) {
		t.Fatalf("expected Upstream for malformed payload, got %v", err)
	}
}

func TestGenerateCandidates_EmptyArray(t *testing.T) {
	ai := &stubAI{generateResponse: "[]"}
	gen := newTestGenerator(ai)

	_, err := gen.GenerateCandidates(context.Background(), "2 places in Paris", "Paris, France")
	if !apperr.Is(err, apperr.KindUpstream) {
		t.Fatalf("expected Upstream for empty recommendations, got %v", err)
	}
}

func TestGenerateCandidates_MissingFields(t *testing.T) {
	ai := &stubAI{generateResponse: `[{"name": "", "description": "no name", "latitude": 0, "longitude": 0}]`}
	gen := newTestGenerator(ai)

	_, err := gen.GenerateCandidates(context.Background(), "2 places in Paris", "Paris, France")
	if !apperr.Is(err, apperr.KindUpstream) {
		t.Fatalf("expected Upstream for candidate without name, got %v", err)
	}
}

func TestGenerateCandidates_ModelError(t *testing.T) {
	ai := &stubAI{generateErr: fmt.Errorf("model unavailable")}
	gen := newTestGenerator(ai)

	_, err := gen.GenerateCandidates(context.Background(), "2 places in Paris", "Paris, France")
	if !apperr.Is(err, apperr.KindUpstream) {
		t.Fatalf("expected Upstream for failed generation, got %v", err)
	}
}
