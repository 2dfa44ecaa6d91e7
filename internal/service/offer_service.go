package service

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"atelier-service/internal/broker"
	"atelier-service/internal/models"
	"atelier-service/internal/store"
	"atelier-service/internal/util"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// OfferService creates and ticks timed flash-sale offers. Each active offer
// owns one ticker goroutine; cancelling the service context or expiry stops
// it and releases the ticker.
type OfferService struct {
	store          *store.Store
	eventPublisher *broker.EventPublisher
	rng            Rand
	logger         *zap.Logger

	minSeconds  int
	maxSeconds  int
	minDiscount int
	maxDiscount int

	mu      sync.Mutex
	baseCtx context.Context
	offers  map[string]*models.TimedOffer
	stops   map[string]context.CancelFunc
}

// NewOfferService creates a new offer service. Duration bounds are in
// seconds; discount bounds are percentages, steepest at the shortest window.
func NewOfferService(
	store *store.Store,
	eventPublisher *broker.EventPublisher,
	rng Rand,
	minSeconds, maxSeconds, minDiscount, maxDiscount int,
) *OfferService {
	return &OfferService{
		store:          store,
		eventPublisher: eventPublisher,
		rng:            rng,
		logger:         util.GetLogger(),
		minSeconds:     minSeconds,
		maxSeconds:     maxSeconds,
		minDiscount:    minDiscount,
		maxDiscount:    maxDiscount,
		offers:         make(map[string]*models.TimedOffer),
		stops:          make(map[string]context.CancelFunc),
	}
}

// Start enables the one-second countdown cadence for offers created from
// now on, scoped to ctx. Before Start, offers only move via Tick/Advance,
// which is how tests drive the clock deterministically.
func (os *OfferService) Start(ctx context.Context) {
	os.mu.Lock()
	os.baseCtx = ctx
	os.mu.Unlock()
}

// DiscountForDuration maps an offer duration onto its discount percentage:
// linear interpolation from maxDiscount at the shortest window down to
// minDiscount at the longest. Shorter windows carry steeper discounts.
func (os *OfferService) DiscountForDuration(totalSeconds int) int {
	span := float64(os.maxSeconds - os.minSeconds)
	frac := float64(totalSeconds-os.minSeconds) / span
	return int(math.Round(float64(os.maxDiscount) - frac*float64(os.maxDiscount-os.minDiscount)))
}

// Create picks a product uniformly at random from the combined catalog,
// draws a duration in [minSeconds, maxSeconds] and starts the countdown.
func (os *OfferService) Create(ctx context.Context) (*models.TimedOffer, error) {
	ctx, span := util.StartSpan(ctx, "OfferService.Create")
	defer span.End()

	products := os.store.AllProducts()
	if len(products) == 0 {
		return nil, fmt.Errorf("catalog is empty: %w", models.ErrNotFound)
	}

	os.mu.Lock()
	product := products[os.rng.Intn(len(products))]
	total := os.minSeconds + os.rng.Intn(os.maxSeconds-os.minSeconds+1)

	offer := &models.TimedOffer{
		ID:               uuid.New().String(),
		Product:          product,
		DiscountPercent:  os.DiscountForDuration(total),
		TotalSeconds:     total,
		RemainingSeconds: total,
		Status:           models.OfferStatusActive,
	}
	os.offers[offer.ID] = offer
	baseCtx := os.baseCtx
	snapshot := *offer
	os.mu.Unlock()

	util.OffersCreatedTotal.Inc()
	os.logger.Info("Timed offer created",
		zap.String("offer_id", snapshot.ID),
		zap.String("product_id", product.ID),
		zap.Int("discount_percent", snapshot.DiscountPercent),
		zap.Int("total_seconds", total))

	event := &models.OfferCreatedEvent{
		BaseEvent: models.BaseEvent{
			EventID:   uuid.New().String(),
			EventType: models.EventTypeOfferCreated,
			Timestamp: time.Now(),
		},
		OfferID:         snapshot.ID,
		ProductID:       product.ID,
		DiscountPercent: snapshot.DiscountPercent,
		TotalSeconds:    total,
	}
	if os.eventPublisher != nil {
		if err := os.eventPublisher.PublishOfferCreated(ctx, event); err != nil {
			os.logger.Error("Failed to publish OfferCreated event", zap.Error(err))
		}
	}

	if baseCtx != nil {
		os.StartCountdown(baseCtx, snapshot.ID)
	}

	return &snapshot, nil
}

// Get returns a snapshot of an offer.
func (os *OfferService) Get(offerID string) (*models.TimedOffer, error) {
	os.mu.Lock()
	defer os.mu.Unlock()

	offer, ok := os.offers[offerID]
	if !ok {
		return nil, fmt.Errorf("offer %s: %w", offerID, models.ErrNotFound)
	}
	snapshot := *offer
	return &snapshot, nil
}

// Tick decrements the offer's remaining seconds by one, floored at zero.
// Once expired, ticks are no-ops.
func (os *OfferService) Tick(ctx context.Context, offerID string) error {
	return os.Advance(ctx, offerID, 1)
}

// Advance applies n elapsed seconds in one step, for callers that coalesce
// missed ticks after a suspension.
func (os *OfferService) Advance(ctx context.Context, offerID string, n int) error {
	os.mu.Lock()
	offer, ok := os.offers[offerID]
	if !ok {
		os.mu.Unlock()
		return fmt.Errorf("offer %s: %w", offerID, models.ErrNotFound)
	}

	if offer.RemainingSeconds == 0 || n <= 0 {
		os.mu.Unlock()
		return nil
	}

	offer.RemainingSeconds -= n
	if offer.RemainingSeconds <= 0 {
		offer.RemainingSeconds = 0
		offer.Status = models.OfferStatusExpired
	}
	expired := offer.Status == models.OfferStatusExpired
	productID := offer.Product.ID
	os.mu.Unlock()

	if expired {
		util.OffersExpiredTotal.Inc()
		os.logger.Info("Timed offer expired", zap.String("offer_id", offerID))

		event := &models.OfferExpiredEvent{
			BaseEvent: models.BaseEvent{
				EventID:   uuid.New().String(),
				EventType: models.EventTypeOfferExpired,
				Timestamp: time.Now(),
			},
			OfferID:   offerID,
			ProductID: productID,
		}
		if os.eventPublisher != nil {
			if err := os.eventPublisher.PublishOfferExpired(ctx, event); err != nil {
				os.logger.Error("Failed to publish OfferExpired event", zap.Error(err))
			}
		}
	}
	return nil
}

// CurrentPrice returns the discounted price, floored to whole units.
func (os *OfferService) CurrentPrice(offerID string) (int64, error) {
	offer, err := os.Get(offerID)
	if err != nil {
		return 0, err
	}
	return offer.Product.Price * int64(100-offer.DiscountPercent) / 100, nil
}

// IsPurchasable reports whether the offer's countdown is still running.
func (os *OfferService) IsPurchasable(offerID string) (bool, error) {
	offer, err := os.Get(offerID)
	if err != nil {
		return false, err
	}
	return offer.RemainingSeconds > 0, nil
}

// Purchase accepts a purchase against a live offer at the discounted price.
// Purchases against an expired offer are rejected, never silently accepted.
func (os *OfferService) Purchase(ctx context.Context, offerID string) (*models.TimedOffer, int64, error) {
	ctx, span := util.StartSpan(ctx, "OfferService.Purchase")
	defer span.End()

	os.mu.Lock()
	offer, ok := os.offers[offerID]
	if !ok {
		os.mu.Unlock()
		util.OfferPurchasesTotal.WithLabelValues("not_found").Inc()
		return nil, 0, fmt.Errorf("offer %s: %w", offerID, models.ErrNotFound)
	}
	if offer.RemainingSeconds == 0 {
		os.mu.Unlock()
		util.OfferPurchasesTotal.WithLabelValues("expired").Inc()
		return nil, 0, fmt.Errorf("offer %s: %w", offerID, models.ErrExpiredOffer)
	}
	snapshot := *offer
	os.mu.Unlock()

	price := snapshot.Product.Price * int64(100-snapshot.DiscountPercent) / 100
	util.OfferPurchasesTotal.WithLabelValues("accepted").Inc()
	os.logger.Info("Offer purchase accepted",
		zap.String("offer_id", offerID),
		zap.Int64("price", price),
		zap.Int("remaining_seconds", snapshot.RemainingSeconds))

	event := &models.OfferPurchasedEvent{
		BaseEvent: models.BaseEvent{
			EventID:   uuid.New().String(),
			EventType: models.EventTypeOfferPurchased,
			Timestamp: time.Now(),
		},
		OfferID:          offerID,
		ProductID:        snapshot.Product.ID,
		Price:            price,
		RemainingSeconds: snapshot.RemainingSeconds,
	}
	if os.eventPublisher != nil {
		if err := os.eventPublisher.PublishOfferPurchased(ctx, event); err != nil {
			os.logger.Error("Failed to publish OfferPurchased event", zap.Error(err))
		}
	}

	return &snapshot, price, nil
}

// StartCountdown runs the offer's one-second tick cadence until the offer
// expires or ctx is cancelled. The ticker is always released.
func (os *OfferService) StartCountdown(ctx context.Context, offerID string) {
	tickCtx, cancel := context.WithCancel(ctx)

	os.mu.Lock()
	os.stops[offerID] = cancel
	os.mu.Unlock()

	go func() {
		defer os.StopCountdown(offerID)

		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()

		for {
			select {
			case <-tickCtx.Done():
				return
			case <-ticker.C:
				if err := os.Tick(tickCtx, offerID); err != nil {
					os.logger.Error("Offer tick failed",
						zap.String("offer_id", offerID),
						zap.Error(err))
					return
				}
				if purchasable, err := os.IsPurchasable(offerID); err != nil || !purchasable {
					return
				}
			}
		}
	}()
}

// StopCountdown cancels the offer's tick cadence, if one is running. Safe
// to call more than once.
func (os *OfferService) StopCountdown(offerID string) {
	os.mu.Lock()
	cancel, ok := os.stops[offerID]
	if ok {
		delete(os.stops, offerID)
	}
	os.mu.Unlock()

	if ok {
		cancel()
	}
}

// Shutdown stops every running countdown.
func (os *OfferService) Shutdown() {
	os.mu.Lock()
	stops := make([]context.CancelFunc, 0, len(os.stops))
	for id, cancel := range os.stops {
		stops = append(stops, cancel)
		delete(os.stops, id)
	}
	os.mu.Unlock()

	for _, cancel := range stops {
		cancel()
	}
}
