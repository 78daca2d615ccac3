// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-calcufit/internal/config"
	"github.com/MKhiriev/go-calcufit/internal/logger"
	"github.com/MKhiriev/go-calcufit/internal/utils"
	"github.com/MKhiriev/go-calcufit/models"
)

const (
	promptPT  = "Analise este alimento e estime os valores nutricionais para uma porção média padrão."
	contextPT = ` Contexto adicional do usuário: "%s".`
	namePT    = "Short, descriptive name of the food in Portuguese"

	promptEN  = "Analyze this food and estimate the nutritional values for a standard average portion."
	contextEN = ` Additional user context: "%s".`
	nameEN    = "Short, descriptive name of the food in English"
)

type geminiEstimator struct {
	client *utils.HTTPClient
	apiKey string
	model  string
	locale string

	logger *logger.Logger
}

// NewGeminiEstimator constructs an [Estimator] backed by the Gemini
// generateContent REST endpoint. An empty cfg.APIKey yields a disabled
// estimator whose calls fail with [ErrEstimatorDisabled].
//
// Returns an error if cfg.BaseURL cannot be parsed as an absolute URL.
func NewGeminiEstimator(cfg config.Estimator, locale string, logger *logger.Logger) (Estimator, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		logger.Info().Msg("estimator API key not set, AI estimation disabled")
		return disabledEstimator{}, nil
	}

	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid estimator base url: %w", err)
	}

	client := utils.NewHTTPClient(
		utils.WithBaseURL(baseURL),
		utils.WithTimeout(cfg.Timeout),
	)

	return &geminiEstimator{
		client: client,
		apiKey: cfg.APIKey,
		model:  cfg.Model,
		locale: locale,
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (g *geminiEstimator) Enabled() bool {
	return true
}

// Estimate implements [Estimator]. It POSTs a single-turn request to
// /v1beta/models/{model}:generateContent with a JSON response schema and
// decodes the first candidate's text.
func (g *geminiEstimator) Estimate(ctx context.Context, req models.EstimateRequest) (models.NutritionEstimate, error) {
	var out generateContentResponse

	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("x-goog-api-key", g.apiKey).
		SetPathParam("model", g.model).
		SetBody(g.buildRequest(req)).
		SetResult(&out).
		Post("/v1beta/models/{model}:generateContent")
	if err != nil {
		g.logger.Err(err).Str("func", "*geminiEstimator.Estimate").Msg("estimation request failed")
		return models.NutritionEstimate{}, fmt.Errorf("estimate request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		g.logger.Err(err).Str("func", "*geminiEstimator.Estimate").Int("status", resp.StatusCode()).Msg("estimation rejected")
		return models.NutritionEstimate{}, err
	}

	text := out.text()
	if text == "" {
		return models.NutritionEstimate{}, ErrEmptyResponse
	}

	estimate, err := decodeEstimate(text)
	if err != nil {
		g.logger.Err(err).Str("func", "*geminiEstimator.Estimate").Str("text", text).Msg("cannot decode estimate")
		return models.NutritionEstimate{}, err
	}

	g.logger.Debug().Str("func", "*geminiEstimator.Estimate").Str("name", estimate.Name).Float64("kcal", estimate.Kcal).Msg("estimate received")
	return estimate, nil
}

func (g *geminiEstimator) buildRequest(req models.EstimateRequest) generateContentRequest {
	prompt, contextFmt, nameDesc := promptPT, contextPT, namePT
	if strings.HasPrefix(strings.ToLower(g.locale), "en") {
		prompt, contextFmt, nameDesc = promptEN, contextEN, nameEN
	}

	text := prompt
	if d := strings.TrimSpace(req.Description); d != "" {
		text += fmt.Sprintf(contextFmt, d)
	}

	parts := []part{{Text: text}}
	if req.Image != nil && len(req.Image.Data) > 0 {
		parts = append(parts, part{InlineData: &inlineData{
			MIMEType: req.Image.MIMEType,
			Data:     base64.StdEncoding.EncodeToString(req.Image.Data),
		}})
	}

	return generateContentRequest{
		Contents: []content{{Parts: parts}},
		GenerationConfig: generationConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema: schema{
				Type: "OBJECT",
				Properties: map[string]schema{
					"name":    {Type: "STRING", Description: nameDesc},
					"kcal":    {Type: "NUMBER"},
					"carbs":   {Type: "NUMBER", Description: "Carbohydrates in grams"},
					"protein": {Type: "NUMBER", Description: "Protein in grams"},
					"fat":     {Type: "NUMBER", Description: "Fat in grams"},
				},
			},
		},
	}
}

// decodeEstimate parses the candidate text. Models occasionally wrap JSON in
// a markdown code fence, which is stripped first.
func decodeEstimate(text string) (models.NutritionEstimate, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")

	var estimate models.NutritionEstimate
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &estimate); err != nil {
		return models.NutritionEstimate{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return estimate, nil
}

type disabledEstimator struct{}

func (disabledEstimator) Enabled() bool { return false }

func (disabledEstimator) Estimate(context.Context, models.EstimateRequest) (models.NutritionEstimate, error) {
	return models.NutritionEstimate{}, ErrEstimatorDisabled
}
