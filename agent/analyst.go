// Package agent writes short commentaries on a position with Gemini.
package agent

import (
	"context"
	"errors"
	"strings"

	"github.com/etnz/spot"
	"github.com/etnz/spot/locale"
	"github.com/rs/zerolog"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used for insights.
const DefaultModel = "gemini-3-flash-preview"

// ErrNoAPIKey is returned when no Gemini API key is configured.
var ErrNoAPIKey = errors.New("no Gemini API key, set GEMINI_API_KEY")

// Generator is the subset of the genai models service used by the Analyst.
type Generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Analyst generates insights on a position.
type Analyst struct {
	gen    Generator
	model  string
	config *genai.GenerateContentConfig
	log    zerolog.Logger
}

// New creates an Analyst backed by the Gemini API.
func New(ctx context.Context, apiKey, model string, log zerolog.Logger) (*Analyst, error) {
	if apiKey == "" {
		return nil, ErrNoAPIKey
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return NewWithGenerator(client.Models, model, log), nil
}

// NewWithGenerator creates an Analyst over any generator.
func NewWithGenerator(gen Generator, model string, log zerolog.Logger) *Analyst {
	if model == "" {
		model = DefaultModel
	}
	return &Analyst{
		gen:   gen,
		model: model,
		config: &genai.GenerateContentConfig{
			Temperature: genai.Ptr[float32](0.7),
			TopP:        genai.Ptr[float32](0.9),
		},
		log: log.With().Str("component", "agent").Logger(),
	}
}

// Insights returns a 2 to 3 sentences commentary on the position of alias.
//
// It never fails: when the commentary cannot be generated the fallback
// message of lang is returned and the error is logged.
func (a *Analyst) Insights(ctx context.Context, alias string, stats spot.Stats, quote spot.Quote, lang locale.Language) string {
	fallback := locale.For(lang).InsightFallback
	if a == nil || a.gen == nil {
		return fallback
	}
	resp, err := a.gen.GenerateContent(ctx, a.model, genai.Text(Prompt(alias, stats, quote, lang)), a.config)
	if err != nil {
		a.log.Warn().Err(err).Str("symbol", alias).Msg("insight generation failed")
		return fallback
	}
	text := strings.TrimSpace(resp.Text())
	if text == "" {
		a.log.Warn().Str("symbol", alias).Msg("empty insight")
		return fallback
	}
	return text
}
