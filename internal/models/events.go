package models

import "time"

// Event types
const (
	EventTypeOfferCreated   = "OFFER_CREATED"
	EventTypeOfferExpired   = "OFFER_EXPIRED"
	EventTypeOfferPurchased = "OFFER_PURCHASED"
	EventTypePlayResolved   = "PLAY_RESOLVED"
	EventTypeRewardRedeemed = "REWARD_REDEEMED"
	EventTypeCopyGenerated  = "COPY_GENERATED"
)

// BaseEvent contains common fields for all events
type BaseEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	Timestamp time.Time `json:"timestamp"`
}

// OfferCreatedEvent published when a timed offer is created
type OfferCreatedEvent struct {
	BaseEvent
	OfferID         string `json:"offer_id"`
	ProductID       string `json:"product_id"`
	DiscountPercent int    `json:"discount_percent"`
	TotalSeconds    int    `json:"total_seconds"`
}

// OfferExpiredEvent published when an offer's countdown reaches zero
type OfferExpiredEvent struct {
	BaseEvent
	OfferID   string `json:"offer_id"`
	ProductID string `json:"product_id"`
}

// OfferPurchasedEvent published when a purchase is accepted before expiry
type OfferPurchasedEvent struct {
	BaseEvent
	OfferID          string `json:"offer_id"`
	ProductID        string `json:"product_id"`
	Price            int64  `json:"price"`
	RemainingSeconds int    `json:"remaining_seconds"`
}

// PlayResolvedEvent published when a reward play resolves
type PlayResolvedEvent struct {
	BaseEvent
	SessionID string   `json:"session_id"`
	Kind      GameKind `json:"kind"`
	Stake     int64    `json:"stake"`
	Payout    int64    `json:"payout"`
	Won       bool     `json:"won"`
}

// RewardRedeemedEvent published when Credits are exchanged for a product
type RewardRedeemedEvent struct {
	BaseEvent
	SessionID string `json:"session_id"`
	ProductID string `json:"product_id"`
	Cost      int64  `json:"cost"`
}

// CopyGeneratedEvent published after a marketing-copy request completes,
// whether the text came from the model, the cache, or the fallback.
type CopyGeneratedEvent struct {
	BaseEvent
	Source    string `json:"source"`
	PromptLen int    `json:"prompt_len"`
}
