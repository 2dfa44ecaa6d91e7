package service

import (
	"context"
	"fmt"

	"atelier-service/internal/models"
	"atelier-service/internal/util"

	"go.uber.org/zap"
)

// FrameSource supplies one still frame on demand. The camera integration
// behind it is opaque to this service.
type FrameSource interface {
	Capture(ctx context.Context) ([]byte, error)
}

// NoFrameSource is wired when no camera integration is available; Capture
// always fails, so Describe degrades to the fallback string.
type NoFrameSource struct{}

// Capture implements FrameSource.
func (NoFrameSource) Capture(context.Context) ([]byte, error) {
	return nil, fmt.Errorf("no frame source configured: %w", models.ErrExternalUnavailable)
}

// TryOnService drives the virtual try-on flow: capture one still frame,
// forward it with a prompt to the generator, and degrade to the fallback
// string when either step fails.
type TryOnService struct {
	generator    *GeneratorClient
	frames       FrameSource
	fallbackText string
	logger       *zap.Logger
}

// NewTryOnService creates a new try-on service.
func NewTryOnService(generator *GeneratorClient, frames FrameSource, fallbackText string) *TryOnService {
	return &TryOnService{
		generator:    generator,
		frames:       frames,
		fallbackText: fallbackText,
		logger:       util.GetLogger(),
	}
}

// Describe captures a frame and asks the generator how the product looks on
// the wearer. Capture or generation failure yields the fallback string.
func (ts *TryOnService) Describe(ctx context.Context, prompt string) *models.GeneratedCopy {
	ctx, span := util.StartSpan(ctx, "TryOnService.Describe")
	defer span.End()

	frame, err := ts.frames.Capture(ctx)
	if err != nil {
		util.GeneratorFailuresTotal.Inc()
		ts.logger.Warn("Frame capture failed, using fallback", zap.Error(err))
		return &models.GeneratedCopy{Text: ts.fallbackText, Source: models.CopySourceFallback}
	}

	text, err := ts.generator.GenerateWithImage(ctx, prompt, frame)
	if err != nil {
		util.GeneratorFailuresTotal.Inc()
		ts.logger.Warn("Try-on generation degraded to fallback", zap.Error(err))
		return &models.GeneratedCopy{Text: ts.fallbackText, Source: models.CopySourceFallback}
	}

	return &models.GeneratedCopy{Text: text, Source: models.CopySourceModel}
}

// DescribeFrame is the variant used by the HTTP API, where the caller
// uploads the captured frame instead of owning a FrameSource.
func (ts *TryOnService) DescribeFrame(ctx context.Context, prompt string, frame []byte) *models.GeneratedCopy {
	ctx, span := util.StartSpan(ctx, "TryOnService.DescribeFrame")
	defer span.End()

	text, err := ts.generator.GenerateWithImage(ctx, prompt, frame)
	if err != nil {
		util.GeneratorFailuresTotal.Inc()
		ts.logger.Warn("Try-on generation degraded to fallback", zap.Error(err))
		return &models.GeneratedCopy{Text: ts.fallbackText, Source: models.CopySourceFallback}
	}

	return &models.GeneratedCopy{Text: text, Source: models.CopySourceModel}
}
