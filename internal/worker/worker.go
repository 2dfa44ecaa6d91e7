package worker

import (
	"context"
	"log"

	"atelier-service/internal/broker"
	"atelier-service/internal/models"
	"atelier-service/internal/util"

	"go.uber.org/zap"
)

// EngagementWorker consumes engagement events and turns them into
// structured logs. Play and offer counters are recorded at the source; the
// worker gives operators a single ordered feed of what the storefront did.
type EngagementWorker struct {
	consumer     *broker.Consumer
	eventHandler *broker.EventHandler
	logger       *zap.Logger
}

// NewEngagementWorker creates a new engagement worker
func NewEngagementWorker(consumer *broker.Consumer) *EngagementWorker {
	logger := util.GetLogger()
	eventHandler := broker.NewEventHandler()

	eventHandler.OnOfferCreated(func(_ context.Context, event *models.OfferCreatedEvent) error {
		logger.Info("Engagement: offer created",
			zap.String("offer_id", event.OfferID),
			zap.String("product_id", event.ProductID),
			zap.Int("discount_percent", event.DiscountPercent))
		return nil
	})

	eventHandler.OnOfferExpired(func(_ context.Context, event *models.OfferExpiredEvent) error {
		logger.Info("Engagement: offer expired",
			zap.String("offer_id", event.OfferID),
			zap.String("product_id", event.ProductID))
		return nil
	})

	eventHandler.OnOfferPurchased(func(_ context.Context, event *models.OfferPurchasedEvent) error {
		logger.Info("Engagement: offer purchased",
			zap.String("offer_id", event.OfferID),
			zap.Int64("price", event.Price),
			zap.Int("remaining_seconds", event.RemainingSeconds))
		return nil
	})

	eventHandler.OnPlayResolved(func(_ context.Context, event *models.PlayResolvedEvent) error {
		logger.Info("Engagement: play resolved",
			zap.String("session_id", event.SessionID),
			zap.String("game", string(event.Kind)),
			zap.Int64("stake", event.Stake),
			zap.Int64("payout", event.Payout),
			zap.Bool("won", event.Won))
		return nil
	})

	eventHandler.OnRewardRedeemed(func(_ context.Context, event *models.RewardRedeemedEvent) error {
		logger.Info("Engagement: reward redeemed",
			zap.String("session_id", event.SessionID),
			zap.String("product_id", event.ProductID),
			zap.Int64("cost", event.Cost))
		return nil
	})

	return &EngagementWorker{
		consumer:     consumer,
		eventHandler: eventHandler,
		logger:       logger,
	}
}

// Start starts the worker
func (w *EngagementWorker) Start(ctx context.Context) error {
	log.Println("Starting engagement worker...")
	return w.consumer.StartConsuming(ctx, w.eventHandler.HandleMessage)
}

// Stop stops the worker
func (w *EngagementWorker) Stop() error {
	log.Println("Stopping engagement worker...")
	return w.consumer.Close()
}
