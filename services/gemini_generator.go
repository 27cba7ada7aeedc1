package services

import (
	"context"
	"net/http"
	"time"

	"github.com/fenilmodi00/ipo-pulse/shared"
	"github.com/sirupsen/logrus"
	"google.golang.org/genai"
)

// TextGenerator produces a text completion for a prompt
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GeminiGenerator calls the Gemini generateContent API
type GeminiGenerator struct {
	client   *genai.Client
	config   shared.GeneratorConfig
	throttle *shared.RequestThrottle
	logger   *logrus.Entry
}

// NewGeminiGenerator creates a generator bound to an API key. The HTTP client and
// throttle are optional.
func NewGeminiGenerator(ctx context.Context, apiKey string, config shared.GeneratorConfig, httpClient *http.Client, throttle *shared.RequestThrottle) (*GeminiGenerator, error) {
	if apiKey == "" {
		return nil, shared.NewServiceError(shared.ErrorCategoryConfiguration, shared.CodeGeneratorUnavailable,
			"no API key configured for the generative service", "GeminiGenerator", "NewGeminiGenerator", false, nil)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: httpClient,
	})
	if err != nil {
		return nil, shared.NewServiceError(shared.ErrorCategoryConfiguration, shared.CodeGeneratorUnavailable,
			"failed to create Gemini client", "GeminiGenerator", "NewGeminiGenerator", false, err)
	}

	return &GeminiGenerator{
		client:   client,
		config:   config,
		throttle: throttle,
		logger: logrus.WithFields(logrus.Fields{
			"component": "GeminiGenerator",
			"model":     config.Model,
		}),
	}, nil
}

// Generate sends a single generateContent request. There is no retry.
func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	if g.throttle != nil {
		if err := g.throttle.Wait(ctx); err != nil {
			return "", shared.NewServiceError(shared.ErrorCategoryTimeout, shared.CodeGeneratorTimeout,
				"request throttle wait aborted", "GeminiGenerator", "Generate", true, err)
		}
	}

	requestConfig := &genai.GenerateContentConfig{}
	if g.config.JSONMode {
		requestConfig.ResponseMIMEType = "application/json"
	}
	if g.config.SearchGrounding {
		requestConfig.Tools = []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}}
	}

	startTime := time.Now()
	g.logger.WithFields(logrus.Fields{
		"json_mode":        g.config.JSONMode,
		"search_grounding": g.config.SearchGrounding,
	}).Debug("Sending generateContent request")

	response, err := g.client.Models.GenerateContent(ctx, g.config.Model, genai.Text(prompt), requestConfig)
	if err != nil {
		category := shared.CategorizeTransportError(err)
		code := shared.CodeGeneratorFailed
		if category == shared.ErrorCategoryTimeout {
			code = shared.CodeGeneratorTimeout
		}
		return "", shared.NewServiceError(category, code, "generateContent request failed",
			"GeminiGenerator", "Generate", true, err)
	}

	text := response.Text()
	g.logger.WithFields(logrus.Fields{
		"duration":    time.Since(startTime),
		"text_length": len(text),
	}).Info("Received generateContent response")

	return text, nil
}
