package service

import (
	"context"
	"time"

	"atelier-service/internal/broker"
	"atelier-service/internal/models"
	"atelier-service/internal/redisclient"
	"atelier-service/internal/util"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CopyService produces AI-generated marketing copy with a designed
// degradation path: generated text when the model answers, cached text when
// it answered recently, and the fixed fallback string otherwise. It never
// returns an error to the caller for a generator failure.
type CopyService struct {
	generator      *GeneratorClient
	cache          *redisclient.Client
	eventPublisher *broker.EventPublisher
	fallbackText   string
	cacheTTL       time.Duration
	logger         *zap.Logger
}

// NewCopyService creates a new copy service. cache may be nil, in which
// case every request goes to the generator.
func NewCopyService(
	generator *GeneratorClient,
	cache *redisclient.Client,
	eventPublisher *broker.EventPublisher,
	fallbackText string,
	cacheTTL time.Duration,
) *CopyService {
	return &CopyService{
		generator:      generator,
		cache:          cache,
		eventPublisher: eventPublisher,
		fallbackText:   fallbackText,
		cacheTTL:       cacheTTL,
		logger:         util.GetLogger(),
	}
}

// Generate returns marketing copy for the prompt. Cache errors count as a
// miss; generator errors degrade to the fallback string.
func (cs *CopyService) Generate(ctx context.Context, prompt string) *models.GeneratedCopy {
	ctx, span := util.StartSpan(ctx, "CopyService.Generate")
	defer span.End()

	if cs.cache != nil {
		if text, err := cs.cache.GetCopy(ctx, prompt); err == nil && text != "" {
			util.CopyRequestsTotal.WithLabelValues(models.CopySourceCache).Inc()
			cs.publish(ctx, models.CopySourceCache, prompt)
			return &models.GeneratedCopy{Text: text, Source: models.CopySourceCache}
		}
	}

	text, err := cs.generator.Generate(ctx, prompt)
	if err != nil {
		util.GeneratorFailuresTotal.Inc()
		util.CopyRequestsTotal.WithLabelValues(models.CopySourceFallback).Inc()
		cs.logger.Warn("Copy generation degraded to fallback", zap.Error(err))
		cs.publish(ctx, models.CopySourceFallback, prompt)
		return &models.GeneratedCopy{Text: cs.fallbackText, Source: models.CopySourceFallback}
	}

	if cs.cache != nil {
		if err := cs.cache.SetCopy(ctx, prompt, text, cs.cacheTTL); err != nil {
			cs.logger.Warn("Failed to cache generated copy", zap.Error(err))
		}
	}

	util.CopyRequestsTotal.WithLabelValues(models.CopySourceModel).Inc()
	cs.publish(ctx, models.CopySourceModel, prompt)
	return &models.GeneratedCopy{Text: text, Source: models.CopySourceModel}
}

func (cs *CopyService) publish(ctx context.Context, source, prompt string) {
	if cs.eventPublisher == nil {
		return
	}
	event := &models.CopyGeneratedEvent{
		BaseEvent: models.BaseEvent{
			EventID:   uuid.New().String(),
			EventType: models.EventTypeCopyGenerated,
			Timestamp: time.Now(),
		},
		Source:    source,
		PromptLen: len(prompt),
	}
	if err := cs.eventPublisher.PublishCopyGenerated(ctx, event); err != nil {
		cs.logger.Error("Failed to publish CopyGenerated event", zap.Error(err))
	}
}
