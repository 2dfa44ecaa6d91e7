package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"atelier-service/internal/models"
	"atelier-service/internal/util"

	"go.uber.org/zap"
)

// GeneratorClient calls the hosted text-generation endpoint. Every request
// is bounded by the configured timeout and the caller's context; any
// failure is reported as ErrExternalUnavailable so callers can degrade to
// fallback text instead of surfacing an error.
type GeneratorClient struct {
	endpoint string
	client   *http.Client
	logger   *zap.Logger
}

// NewGeneratorClient creates a new generator client.
func NewGeneratorClient(endpoint string, timeout time.Duration) *GeneratorClient {
	return &GeneratorClient{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
		logger:   util.GetLogger(),
	}
}

type generateRequest struct {
	Prompt string `json:"prompt"`
	Image  string `json:"image,omitempty"`
}

type generateResponse struct {
	Text string `json:"text"`
}

// Generate requests text for a prompt.
func (gc *GeneratorClient) Generate(ctx context.Context, prompt string) (string, error) {
	return gc.send(ctx, generateRequest{Prompt: prompt})
}

// GenerateWithImage requests text for a prompt plus a single still frame.
func (gc *GeneratorClient) GenerateWithImage(ctx context.Context, prompt string, frame []byte) (string, error) {
	return gc.send(ctx, generateRequest{
		Prompt: prompt,
		Image:  base64.StdEncoding.EncodeToString(frame),
	})
}

func (gc *GeneratorClient) send(ctx context.Context, payload generateRequest) (string, error) {
	start := time.Now()
	defer func() {
		util.GeneratorLatency.Observe(time.Since(start).Seconds())
	}()

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal generate request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, gc.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build generate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := gc.client.Do(req)
	if err != nil {
		gc.logger.Warn("Generator request failed", zap.Error(err))
		return "", fmt.Errorf("generator request: %w", models.ErrExternalUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		gc.logger.Warn("Generator returned non-200", zap.Int("status", resp.StatusCode))
		return "", fmt.Errorf("generator status %d: %w", resp.StatusCode, models.ErrExternalUnavailable)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("read generator response: %w", models.ErrExternalUnavailable)
	}

	var out generateResponse
	if err := json.Unmarshal(raw, &out); err != nil || out.Text == "" {
		gc.logger.Warn("Generator returned unusable body")
		return "", fmt.Errorf("decode generator response: %w", models.ErrExternalUnavailable)
	}

	return out.Text, nil
}
