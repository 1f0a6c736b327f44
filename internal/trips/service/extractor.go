package service

import (
	"context"
	"strings"

	"trip_planner_backend/platform/apperr"
	"trip_planner_backend/platform/logger"

	"google.golang.org/genai"
)

// ContentGenerator is the language model surface the trips module depends on.
// Satisfied by *gemini.Client.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, system, prompt string, cfg *genai.GenerateContentConfig) (string, error)
}

const extractorSystemPrompt = "Extract only the main location (city/region/country) from the travel query. Respond with ONLY the location name, nothing else."

// Extractor isolates the destination name from a free-text travel query.
type Extractor struct {
	ai  ContentGenerator
	log *logger.Logger
}

func NewExtractor(ai ContentGenerator, log *logger.Logger) *Extractor {
	return &Extractor{ai: ai, log: log}
}

// ExtractLocation asks the model for the destination named by the query.
// Temperature 0 keeps the answer deterministic. A failed call or an empty
// answer aborts the whole planning request.
func (e *Extractor) ExtractLocation(ctx context.Context, query string) (string, error) {
	text, err := e.ai.GenerateContent(ctx, extractorSystemPrompt, query, &genai.GenerateContentConfig{
		Temperature: genai.Ptr[float32](0),
	})
	if err != nil {
		e.log.UpstreamError("gemini", "extract_location", err)
		return "", apperr.Wrap(apperr.KindUpstream, "could not determine the destination from the query", err).WithOp("trips.ExtractLocation")
	}

	location := strings.TrimSpace(text)
	if location == "" {
		return "", apperr.Upstream("could not determine the destination from the query").WithOp("trips.ExtractLocation")
	}

	e.log.Debug("location extracted", "query", query, "location", location)
	return location, nil
}
