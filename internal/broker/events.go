package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"atelier-service/internal/models"

	"github.com/segmentio/kafka-go"
)

// EventPublisher handles publishing engagement events
type EventPublisher struct {
	producer *Producer
}

// NewEventPublisher creates a new event publisher
func NewEventPublisher(producer *Producer) *EventPublisher {
	return &EventPublisher{producer: producer}
}

// PublishOfferCreated publishes OfferCreated event
func (ep *EventPublisher) PublishOfferCreated(ctx context.Context, event *models.OfferCreatedEvent) error {
	key := fmt.Sprintf("offer-%s", event.OfferID)
	return ep.producer.PublishEvent(ctx, key, event)
}

// PublishOfferExpired publishes OfferExpired event
func (ep *EventPublisher) PublishOfferExpired(ctx context.Context, event *models.OfferExpiredEvent) error {
	key := fmt.Sprintf("offer-%s", event.OfferID)
	return ep.producer.PublishEvent(ctx, key, event)
}

// PublishOfferPurchased publishes OfferPurchased event
func (ep *EventPublisher) PublishOfferPurchased(ctx context.Context, event *models.OfferPurchasedEvent) error {
	key := fmt.Sprintf("offer-%s", event.OfferID)
	return ep.producer.PublishEvent(ctx, key, event)
}

// PublishPlayResolved publishes PlayResolved event
func (ep *EventPublisher) PublishPlayResolved(ctx context.Context, event *models.PlayResolvedEvent) error {
	key := fmt.Sprintf("session-%s", event.SessionID)
	return ep.producer.PublishEvent(ctx, key, event)
}

// PublishRewardRedeemed publishes RewardRedeemed event
func (ep *EventPublisher) PublishRewardRedeemed(ctx context.Context, event *models.RewardRedeemedEvent) error {
	key := fmt.Sprintf("session-%s", event.SessionID)
	return ep.producer.PublishEvent(ctx, key, event)
}

// PublishCopyGenerated publishes CopyGenerated event
func (ep *EventPublisher) PublishCopyGenerated(ctx context.Context, event *models.CopyGeneratedEvent) error {
	return ep.producer.PublishEvent(ctx, "copy", event)
}

// EventHandler routes consumed engagement events
type EventHandler struct {
	onOfferCreated   func(context.Context, *models.OfferCreatedEvent) error
	onOfferExpired   func(context.Context, *models.OfferExpiredEvent) error
	onOfferPurchased func(context.Context, *models.OfferPurchasedEvent) error
	onPlayResolved   func(context.Context, *models.PlayResolvedEvent) error
	onRewardRedeemed func(context.Context, *models.RewardRedeemedEvent) error
}

// NewEventHandler creates a new event handler
func NewEventHandler() *EventHandler {
	return &EventHandler{}
}

// OnOfferCreated registers a handler for OfferCreated events
func (eh *EventHandler) OnOfferCreated(handler func(context.Context, *models.OfferCreatedEvent) error) {
	eh.onOfferCreated = handler
}

// OnOfferExpired registers a handler for OfferExpired events
func (eh *EventHandler) OnOfferExpired(handler func(context.Context, *models.OfferExpiredEvent) error) {
	eh.onOfferExpired = handler
}

// OnOfferPurchased registers a handler for OfferPurchased events
func (eh *EventHandler) OnOfferPurchased(handler func(context.Context, *models.OfferPurchasedEvent) error) {
	eh.onOfferPurchased = handler
}

// OnPlayResolved registers a handler for PlayResolved events
func (eh *EventHandler) OnPlayResolved(handler func(context.Context, *models.PlayResolvedEvent) error) {
	eh.onPlayResolved = handler
}

// OnRewardRedeemed registers a handler for RewardRedeemed events
func (eh *EventHandler) OnRewardRedeemed(handler func(context.Context, *models.RewardRedeemedEvent) error) {
	eh.onRewardRedeemed = handler
}

// HandleMessage routes messages to appropriate handlers
func (eh *EventHandler) HandleMessage(ctx context.Context, msg kafka.Message) error {
	var baseEvent models.BaseEvent
	if err := json.Unmarshal(msg.Value, &baseEvent); err != nil {
		return fmt.Errorf("failed to unmarshal base event: %w", err)
	}

	log.Printf("Handling event: type=%s, id=%s", baseEvent.EventType, baseEvent.EventID)

	switch baseEvent.EventType {
	case models.EventTypeOfferCreated:
		if eh.onOfferCreated != nil {
			var event models.OfferCreatedEvent
			if err := json.Unmarshal(msg.Value, &event); err != nil {
				return fmt.Errorf("failed to unmarshal OfferCreated event: %w", err)
			}
			return eh.onOfferCreated(ctx, &event)
		}

	case models.EventTypeOfferExpired:
		if eh.onOfferExpired != nil {
			var event models.OfferExpiredEvent
			if err := json.Unmarshal(msg.Value, &event); err != nil {
				return fmt.Errorf("failed to unmarshal OfferExpired event: %w", err)
			}
			return eh.onOfferExpired(ctx, &event)
		}

	case models.EventTypeOfferPurchased:
		if eh.onOfferPurchased != nil {
			var event models.OfferPurchasedEvent
			if err := json.Unmarshal(msg.Value, &event); err != nil {
				return fmt.Errorf("failed to unmarshal OfferPurchased event: %w", err)
			}
			return eh.onOfferPurchased(ctx, &event)
		}

	case models.EventTypePlayResolved:
		if eh.onPlayResolved != nil {
			var event models.PlayResolvedEvent
			if err := json.Unmarshal(msg.Value, &event); err != nil {
				return fmt.Errorf("failed to unmarshal PlayResolved event: %w", err)
			}
			return eh.onPlayResolved(ctx, &event)
		}

	case models.EventTypeRewardRedeemed:
		if eh.onRewardRedeemed != nil {
			var event models.RewardRedeemedEvent
			if err := json.Unmarshal(msg.Value, &event); err != nil {
				return fmt.Errorf("failed to unmarshal RewardRedeemed event: %w", err)
			}
			return eh.onRewardRedeemed(ctx, &event)
		}

	default:
		log.Printf("Unhandled event type: %s", baseEvent.EventType)
	}

	return nil
}
