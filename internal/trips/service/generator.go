package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"trip_planner_backend/internal/trips/transport"
	"trip_planner_backend/platform/apperr"
	"trip_planner_backend/platform/logger"
	"trip_planner_backend/platform/sanitize"
	"trip_planner_backend/platform/validator"

	"google.golang.org/genai"
)

const generatorPromptTemplate = `You are a travel expert specializing in accurate location recommendations worldwide. For a query about %[1]s:

1. Recommend only places that actually exist in %[1]s
2. For each place:
   - Provide the EXACT official name of the place as it appears on Google Maps
   - Focus on well-known, easily findable locations
   - Include famous landmarks, attractions, or historically significant places
   - Make sure to use the full official name with location (e.g., "Statue of Liberty National Monument, Liberty Island, New York Harbor")
3. Write engaging descriptions that highlight unique features

Respond with a JSON array containing exactly the number of places requested.
Format: [{
    "name": "Full Official Place Name with Location",
    "description": "Description (2-3 sentences about history, significance, or attractions)",
    "latitude": 0,
    "longitude": 0
}, ...]

Note: You can set latitude and longitude to 0 as they will be automatically populated with accurate coordinates.`

const generatorTemperature float32 = 0.7

// Generator produces an unvalidated list of candidate places for a location.
type Generator struct {
	ai  ContentGenerator
	val *validator.Validator
	log *logger.Logger
}

func NewGenerator(ai ContentGenerator, val *validator.Validator, log *logger.Logger) *Generator {
	return &Generator{ai: ai, val: val, log: log}
}

// GenerateCandidates asks the model for place recommendations in the fixed
// JSON-array shape. The response is untrusted text: it is stripped of
// markdown fences and strictly unmarshalled, and every candidate must carry
// a name and description. Any deviation is fatal for the request.
func (g *Generator) GenerateCandidates(ctx context.Context, query, location string) ([]transport.CandidatePlace, error) {
	system := fmt.Sprintf(generatorPromptTemplate, location)

	text, err := g.ai.GenerateContent(ctx, system, query, &genai.GenerateContentConfig{
		Temperature:      genai.Ptr[float32](generatorTemperature),
		ResponseMIMEType: "application/json",
	})
	if err != nil {
		g.log.UpstreamError("gemini", "generate_candidates", err)
		return nil, apperr.Wrap(apperr.KindUpstream, "could not generate recommendations", err).WithOp("trips.GenerateCandidates")
	}

	var candidates []transport.CandidatePlace
	if err := json.Unmarshal([]byte(stripCodeFences(text)), &candidates); err != nil {
		g.log.Error("malformed recommendation payload", "error", err)
		return nil, apperr.Wrap(apperr.KindUpstream, "recommendations were malformed", err).WithOp("trips.GenerateCandidates")
	}

	if len(candidates) == 0 {
		return nil, apperr.Upstream("recommendations were malformed").WithOp("trips.GenerateCandidates")
	}

	for i := range candidates {
		candidates[i].Name = sanitize.Text(candidates[i].Name)
		candidates[i].Description = sanitize.Text(candidates[i].Description)
		if err := g.val.Struct(candidates[i]); err != nil {
			g.log.Error("malformed recommendation entry", "error", err)
			return nil, apperr.Wrap(apperr.KindUpstream, "recommendations were malformed", err).WithOp("trips.GenerateCandidates")
		}
	}

	g.log.Debug("candidates generated", "location", location, "count", len(candidates))
	return candidates, nil
}

// stripCodeFences removes a surrounding markdown code fence from a model
// response, if present.
func stripCodeFences(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}

	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}
