package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"atelier-service/internal/broker"
	"atelier-service/internal/models"
	"atelier-service/internal/store"
	"atelier-service/internal/util"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// wheelPayouts are the six fixed wheel slots. Order is fixed for
// presentation; each slot is drawn with equal probability.
var wheelPayouts = [6]int64{500, 0, 100, 25, 1000, 0}

// RewardService resolves stake-for-payout plays against per-session Shard
// and Credit balances. The stake is debited before the draw resolves, and
// the payout is credited only after it does, so a partial failure can never
// produce a win without its stake having been taken.
type RewardService struct {
	store          *store.Store
	eventPublisher *broker.EventPublisher
	rng            Rand
	logger         *zap.Logger

	startingShards int64
	redemptionCost int64

	mu       sync.Mutex
	sessions map[string]*models.RewardSession
	claimed  map[string]map[string]bool
}

// NewRewardService creates a new reward service.
func NewRewardService(
	store *store.Store,
	eventPublisher *broker.EventPublisher,
	rng Rand,
	startingShards, redemptionCost int64,
) *RewardService {
	return &RewardService{
		store:          store,
		eventPublisher: eventPublisher,
		rng:            rng,
		logger:         util.GetLogger(),
		startingShards: startingShards,
		redemptionCost: redemptionCost,
		sessions:       make(map[string]*models.RewardSession),
		claimed:        make(map[string]map[string]bool),
	}
}

// CreateSession opens a session with the starting Shard grant and zero
// Credits.
func (rs *RewardService) CreateSession() *models.RewardSession {
	session := &models.RewardSession{
		ID:           uuid.New().String(),
		SpendBalance: rs.startingShards,
	}

	rs.mu.Lock()
	rs.sessions[session.ID] = session
	rs.claimed[session.ID] = make(map[string]bool)
	rs.mu.Unlock()

	rs.logger.Info("Reward session created",
		zap.String("session_id", session.ID),
		zap.Int64("spend_balance", session.SpendBalance))

	snapshot := *session
	return &snapshot
}

// GetSession returns a snapshot of a session, including its claim set.
func (rs *RewardService) GetSession(sessionID string) (*models.RewardSession, error) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	return rs.snapshotLocked(sessionID)
}

func (rs *RewardService) snapshotLocked(sessionID string) (*models.RewardSession, error) {
	session, ok := rs.sessions[sessionID]
	if !ok {
		return nil, fmt.Errorf("session %s: %w", sessionID, models.ErrNotFound)
	}
	snapshot := *session
	snapshot.ClaimedIDs = make([]string, 0, len(rs.claimed[sessionID]))
	for _, p := range rs.store.Archive() {
		if rs.claimed[sessionID][p.ID] {
			snapshot.ClaimedIDs = append(snapshot.ClaimedIDs, p.ID)
		}
	}
	return &snapshot, nil
}

// PlayNumberMatch plays the number-match game: the caller guesses an
// integer in [1,10] against a uniformly drawn secret; payout 100 on match.
func (rs *RewardService) PlayNumberMatch(ctx context.Context, sessionID string, guess int) (*models.PlayOutcome, error) {
	ctx, span := util.StartSpan(ctx, "RewardService.PlayNumberMatch")
	defer span.End()

	if guess < 1 || guess > 10 {
		return nil, fmt.Errorf("guess must be in [1,10], got %d", guess)
	}

	return rs.resolve(ctx, sessionID, models.GameNumberMatch, models.StakeNumberMatch,
		func() ([]int, int64) {
			secret := 1 + rs.rng.Intn(10)
			var payout int64
			if secret == guess {
				payout = 100
			}
			return []int{guess, secret}, payout
		})
}

// PlayPairedDraw plays the paired-draw ("dice") game: two independent
// uniform draws in [1,6]; 300 for a pair, 150 for a sum of 7 or 11.
func (rs *RewardService) PlayPairedDraw(ctx context.Context, sessionID string) (*models.PlayOutcome, error) {
	ctx, span := util.StartSpan(ctx, "RewardService.PlayPairedDraw")
	defer span.End()

	return rs.resolve(ctx, sessionID, models.GamePairedDraw, models.StakePairedDraw,
		func() ([]int, int64) {
			a := 1 + rs.rng.Intn(6)
			b := 1 + rs.rng.Intn(6)
			var payout int64
			switch {
			case a == b:
				payout = 300
			case a+b == 7 || a+b == 11:
				payout = 150
			}
			return []int{a, b}, payout
		})
}

// PlayWheel plays the wheel game: one uniform draw among the six fixed
// slots; the payout is the drawn slot's value.
func (rs *RewardService) PlayWheel(ctx context.Context, sessionID string) (*models.PlayOutcome, error) {
	ctx, span := util.StartSpan(ctx, "RewardService.PlayWheel")
	defer span.End()

	return rs.resolve(ctx, sessionID, models.GameWheel, models.StakeWheel,
		func() ([]int, int64) {
			slot := rs.rng.Intn(len(wheelPayouts))
			return []int{slot}, wheelPayouts[slot]
		})
}

// resolve applies the shared play protocol: reject if the stake exceeds the
// Shard balance, debit, draw, then credit on a win.
func (rs *RewardService) resolve(ctx context.Context, sessionID string, kind models.GameKind, stake int64, draw func() ([]int, int64)) (*models.PlayOutcome, error) {
	rs.mu.Lock()

	session, ok := rs.sessions[sessionID]
	if !ok {
		rs.mu.Unlock()
		return nil, fmt.Errorf("session %s: %w", sessionID, models.ErrNotFound)
	}

	if stake > session.SpendBalance {
		rs.mu.Unlock()
		util.PlaysRejectedTotal.WithLabelValues("insufficient_balance").Inc()
		return nil, fmt.Errorf("stake %d exceeds balance %d: %w",
			stake, session.SpendBalance, models.ErrInsufficientBalance)
	}

	session.SpendBalance -= stake

	draws, payout := draw()
	if payout > 0 {
		session.RewardBalance += payout
	}

	outcome := &models.PlayOutcome{
		Kind:          kind,
		Stake:         stake,
		Draws:         draws,
		Payout:        payout,
		Won:           payout > 0,
		SpendBalance:  session.SpendBalance,
		RewardBalance: session.RewardBalance,
	}
	rs.mu.Unlock()

	util.PlaysTotal.WithLabelValues(string(kind)).Inc()
	if outcome.Won {
		util.PlaysWonTotal.WithLabelValues(string(kind)).Inc()
	}

	rs.logger.Info("Play resolved",
		zap.String("session_id", sessionID),
		zap.String("game", string(kind)),
		zap.Ints("draws", draws),
		zap.Int64("payout", payout))

	event := &models.PlayResolvedEvent{
		BaseEvent: models.BaseEvent{
			EventID:   uuid.New().String(),
			EventType: models.EventTypePlayResolved,
			Timestamp: time.Now(),
		},
		SessionID: sessionID,
		Kind:      kind,
		Stake:     stake,
		Payout:    payout,
		Won:       outcome.Won,
	}
	if rs.eventPublisher != nil {
		if err := rs.eventPublisher.PublishPlayResolved(ctx, event); err != nil {
			rs.logger.Error("Failed to publish PlayResolved event", zap.Error(err))
		}
	}

	return outcome, nil
}

// Redeem exchanges Credits for one archive product at the fixed redemption
// cost. The product is marked claimed in the session for display; the
// catalog itself stays immutable.
func (rs *RewardService) Redeem(ctx context.Context, sessionID, productID string) (*models.RewardSession, error) {
	ctx, span := util.StartSpan(ctx, "RewardService.Redeem")
	defer span.End()

	product, err := rs.store.ArchiveByID(productID)
	if err != nil {
		util.RedemptionsTotal.WithLabelValues("not_found").Inc()
		return nil, err
	}

	rs.mu.Lock()
	session, ok := rs.sessions[sessionID]
	if !ok {
		rs.mu.Unlock()
		util.RedemptionsTotal.WithLabelValues("not_found").Inc()
		return nil, fmt.Errorf("session %s: %w", sessionID, models.ErrNotFound)
	}

	if session.RewardBalance < rs.redemptionCost {
		rs.mu.Unlock()
		util.RedemptionsTotal.WithLabelValues("insufficient_balance").Inc()
		return nil, fmt.Errorf("redemption costs %d, balance %d: %w",
			rs.redemptionCost, session.RewardBalance, models.ErrInsufficientBalance)
	}

	session.RewardBalance -= rs.redemptionCost
	rs.claimed[sessionID][product.ID] = true
	snapshot, _ := rs.snapshotLocked(sessionID)
	rs.mu.Unlock()

	util.RedemptionsTotal.WithLabelValues("accepted").Inc()
	rs.logger.Info("Reward redeemed",
		zap.String("session_id", sessionID),
		zap.String("product_id", product.ID))

	event := &models.RewardRedeemedEvent{
		BaseEvent: models.BaseEvent{
			EventID:   uuid.New().String(),
			EventType: models.EventTypeRewardRedeemed,
			Timestamp: time.Now(),
		},
		SessionID: sessionID,
		ProductID: product.ID,
		Cost:      rs.redemptionCost,
	}
	if rs.eventPublisher != nil {
		if err := rs.eventPublisher.PublishRewardRedeemed(ctx, event); err != nil {
			rs.logger.Error("Failed to publish RewardRedeemed event", zap.Error(err))
		}
	}

	return snapshot, nil
}
