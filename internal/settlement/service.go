package settlement

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/oakfield/trackside/internal/concurrency"
	"github.com/oakfield/trackside/internal/domain"
	"github.com/oakfield/trackside/internal/event"
	"github.com/oakfield/trackside/internal/logger"
	"github.com/oakfield/trackside/internal/metrics"
	"github.com/oakfield/trackside/internal/repository"
)

// Service defines the interface for race settlement
type Service interface {
	// SettleRace records the finishing order and settles every pending wager
	// on the race in a single transaction. finishingOrder lists horse IDs by
	// position, winner first, and must cover every entered horse exactly once.
	SettleRace(ctx context.Context, raceID int64, finishingOrder []int64) (*domain.SettlementSummary, error)

	// CancelRace voids every pending wager on the race, refunds the stakes
	// and moves the race to cancelled, all in a single transaction. Flagged
	// wagers are still pending and are refunded like any other.
	CancelRace(ctx context.Context, raceID int64) (*domain.CancellationSummary, error)
}

type service struct {
	repo        repository.Settlement
	publisher   *event.ResilientPublisher
	lockManager *concurrency.LockManager
}

// NewService creates a new settlement service
func NewService(repo repository.Settlement, publisher *event.ResilientPublisher, lockManager *concurrency.LockManager) Service {
	return &service{
		repo:        repo,
		publisher:   publisher,
		lockManager: lockManager,
	}
}

// flaggedWager carries what the post-commit flagged event needs
type flaggedWager struct {
	wagerID int64
	reason  string
}

func (s *service) SettleRace(ctx context.Context, raceID int64, finishingOrder []int64) (*domain.SettlementSummary, error) {
	log := logger.FromContext(ctx)
	started := time.Now()

	log.Info(LogMsgSettlementStarted, "raceID", raceID, "horses", len(finishingOrder))

	// Serialize in-process settlement attempts for the same race so a losing
	// caller fails fast on the completed-state check instead of queueing on
	// the database row lock.
	lock := s.lockManager.GetLock(fmt.Sprintf("race:%d", raceID))
	lock.Lock()
	defer lock.Unlock()

	tx, err := s.repo.BeginSettlementTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	race, err := tx.GetRaceForUpdate(ctx, raceID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToLockRace, err)
	}
	if race.State != domain.RaceStateActive {
		return nil, fmt.Errorf("%w: race %d is %s, expected %s",
			domain.ErrInvalidRaceState, raceID, race.State, domain.RaceStateActive)
	}

	horseIDs, err := tx.GetHorseIDs(ctx, raceID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToLoadHorses, err)
	}
	if err := validateFinishingOrder(horseIDs, finishingOrder); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	results := make([]domain.RaceResult, len(finishingOrder))
	for i, horseID := range finishingOrder {
		results[i] = domain.RaceResult{
			RaceID:     raceID,
			HorseID:    horseID,
			Position:   i + 1,
			RecordedAt: now,
		}
	}
	if err := tx.InsertResults(ctx, results); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToInsertResults, err)
	}

	wagers, err := tx.ListPendingWagersForUpdate(ctx, raceID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToLoadWagers, err)
	}

	summary := &domain.SettlementSummary{RaceID: raceID, SettledAt: now}
	outcomes := make(map[int64]*domain.RaceOutcome)
	var flagged []flaggedWager

	for _, wager := range wagers {
		resolution, resolveErr := ResolveWager(wager, finishingOrder)

		if resolveErr != nil {
			// A malformed selection settles as lost and is audited; it never
			// aborts the batch.
			log.Warn(LogMsgMalformedSelection,
				"wagerID", wager.ID, "betType", wager.BetType, "selection", wager.Selection, "error", resolveErr)
			if err := s.settleLost(ctx, tx, wager, now, outcomes, summary); err != nil {
				return nil, err
			}
			wagerID := wager.ID
			if err := tx.RecordAudit(ctx, domain.AuditEntry{
				RaceID:  raceID,
				WagerID: &wagerID,
				Action:  domain.AuditActionMalformedSelection,
				Detail:  fmt.Sprintf(AuditDetailMalformedSelection, wager.Selection, wager.BetType, resolveErr),
			}); err != nil {
				return nil, fmt.Errorf("%s %d: %w", ErrContextFailedToSettleWager, wager.ID, err)
			}
			continue
		}

		switch resolution {
		case domain.ResolutionWon:
			if err := s.settleWon(ctx, tx, wager, now, outcomes, summary); err != nil {
				return nil, err
			}
		case domain.ResolutionLost:
			if err := s.settleLost(ctx, tx, wager, now, outcomes, summary); err != nil {
				return nil, err
			}
		case domain.ResolutionUnresolvable:
			// The wager stays pending for manual review. It is excluded from
			// the stats fold until it is actually settled.
			reason := fmt.Sprintf(AuditDetailFlagged, wager.BetType,
				fmt.Sprintf("%d finisher(s), need %d", len(finishingOrder), domain.SelectionArity[wager.BetType]))
			log.Warn(LogMsgWagerFlagged, "wagerID", wager.ID, "betType", wager.BetType, "reason", reason)
			if err := tx.FlagWagerForReview(ctx, wager.ID, reason); err != nil {
				return nil, fmt.Errorf("%s %d: %w", ErrContextFailedToSettleWager, wager.ID, err)
			}
			wagerID := wager.ID
			if err := tx.RecordAudit(ctx, domain.AuditEntry{
				RaceID:  raceID,
				WagerID: &wagerID,
				Action:  domain.AuditActionWagerFlagged,
				Detail:  reason,
			}); err != nil {
				return nil, fmt.Errorf("%s %d: %w", ErrContextFailedToSettleWager, wager.ID, err)
			}
			summary.WagersFlagged++
			flagged = append(flagged, flaggedWager{wagerID: wager.ID, reason: reason})
		}
	}

	// Stats are folded per user in deterministic order to keep lock
	// acquisition stable across concurrent settlements.
	userIDs := make([]int64, 0, len(outcomes))
	for userID := range outcomes {
		userIDs = append(userIDs, userID)
	}
	sort.Slice(userIDs, func(i, j int) bool { return userIDs[i] < userIDs[j] })
	for _, userID := range userIDs {
		if err := tx.ApplyRaceOutcome(ctx, *outcomes[userID]); err != nil {
			return nil, fmt.Errorf("%s for user %d: %w", ErrContextFailedToApplyStats, userID, err)
		}
	}

	rows, err := tx.CompleteRaceIfActive(ctx, raceID, now)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCommit, err)
	}
	if rows == 0 {
		metrics.SettlementConflicts.Inc()
		log.Warn(LogMsgSettlementConflict, "raceID", raceID)
		return nil, fmt.Errorf("%w: race %d already completed", domain.ErrSettlementConflict, raceID)
	}

	if err := tx.RecordAudit(ctx, domain.AuditEntry{
		RaceID: raceID,
		Action: domain.AuditActionRaceSettled,
		Detail: fmt.Sprintf(AuditDetailRaceSettled,
			summary.WagersSettled, summary.WagersWon, summary.WagersFlagged, summary.TotalPaidOut),
	}); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCommit, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCommit, err)
	}

	s.recordMetrics(started)
	s.publishEvents(ctx, *summary, finishingOrder, flagged)

	log.Info(LogMsgSettlementCompleted,
		"raceID", raceID,
		"settled", summary.WagersSettled,
		"won", summary.WagersWon,
		"lost", summary.WagersLost,
		"flagged", summary.WagersFlagged,
		"totalPaidOut", summary.TotalPaidOut,
		"duration", time.Since(started))

	return summary, nil
}

func (s *service) CancelRace(ctx context.Context, raceID int64) (*domain.CancellationSummary, error) {
	log := logger.FromContext(ctx)

	lock := s.lockManager.GetLock(fmt.Sprintf("race:%d", raceID))
	lock.Lock()
	defer lock.Unlock()

	tx, err := s.repo.BeginSettlementTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	race, err := tx.GetRaceForUpdate(ctx, raceID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToLockRace, err)
	}
	if !race.State.CanTransitionTo(domain.RaceStateCancelled) {
		return nil, fmt.Errorf("%w: race %d is %s and cannot be cancelled",
			domain.ErrInvalidStateChange, raceID, race.State)
	}

	wagers, err := tx.ListPendingWagersForUpdate(ctx, raceID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToLoadWagers, err)
	}

	now := time.Now().UTC()
	summary := &domain.CancellationSummary{RaceID: raceID, CancelledAt: now}

	for _, wager := range wagers {
		if err := tx.VoidWager(ctx, wager.ID, now); err != nil {
			return nil, fmt.Errorf("%s %d: %w", ErrContextFailedToVoidWager, wager.ID, err)
		}

		correlationID := fmt.Sprintf("wager-refund:%d", wager.ID)
		reason := fmt.Sprintf("refund for %s wager on cancelled race %d", wager.BetType, wager.RaceID)
		applied, err := tx.RefundStake(ctx, wager.UserID, wager.Stake, reason, correlationID)
		if err != nil {
			return nil, fmt.Errorf("%s %d: %w: %w", ErrContextFailedToRefundStake, wager.ID, domain.ErrLedgerFailure, err)
		}
		if !applied {
			log.Warn(LogMsgDuplicateRefund, "wagerID", wager.ID, "correlationID", correlationID)
		} else {
			summary.StakesRefunded += wager.Stake
		}
		summary.WagersVoided++
	}

	rows, err := tx.CancelRaceIfState(ctx, raceID, race.State)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCancelRace, err)
	}
	if rows == 0 {
		return nil, fmt.Errorf("%w: race %d left state %s concurrently",
			domain.ErrSettlementConflict, raceID, race.State)
	}

	if err := tx.RecordAudit(ctx, domain.AuditEntry{
		RaceID: raceID,
		Action: domain.AuditActionRaceCancelled,
		Detail: fmt.Sprintf(AuditDetailRaceCancelled, summary.WagersVoided, summary.StakesRefunded),
	}); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCommit, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCommit, err)
	}

	if s.publisher != nil {
		s.publisher.PublishWithRetry(ctx, event.NewRaceStateChangedEvent(raceID, race.State, domain.RaceStateCancelled))
	}

	log.Info(LogMsgRaceCancelled,
		"raceID", raceID,
		"voided", summary.WagersVoided,
		"refunded", summary.StakesRefunded)

	return summary, nil
}

func (s *service) settleWon(ctx context.Context, tx repository.SettlementTx, wager domain.Wager, settledAt time.Time, outcomes map[int64]*domain.RaceOutcome, summary *domain.SettlementSummary) error {
	payout := wager.PotentialPayout
	if err := tx.MarkWagerWon(ctx, wager.ID, payout, settledAt); err != nil {
		return fmt.Errorf("%s %d: %w", ErrContextFailedToSettleWager, wager.ID, err)
	}

	correlationID := fmt.Sprintf("wager:%d", wager.ID)
	reason := fmt.Sprintf("payout for %s wager on race %d", wager.BetType, wager.RaceID)
	applied, err := tx.CreditWinner(ctx, wager.UserID, payout, reason, correlationID)
	if err != nil {
		return fmt.Errorf("%s %d: %w: %w", ErrContextFailedToCreditWinner, wager.ID, domain.ErrLedgerFailure, err)
	}
	if !applied {
		logger.FromContext(ctx).Warn(LogMsgDuplicatePayout, "wagerID", wager.ID, "correlationID", correlationID)
	} else {
		summary.TotalPaidOut += payout
	}

	summary.WagersSettled++
	summary.WagersWon++

	outcome := outcomeFor(outcomes, wager.UserID)
	outcome.WagersPlaced++
	outcome.WagersWon++
	outcome.TotalWagered += wager.Stake
	outcome.TotalWon += payout
	if payout > outcome.LargestWin {
		outcome.LargestWin = payout
	}
	return nil
}

func (s *service) settleLost(ctx context.Context, tx repository.SettlementTx, wager domain.Wager, settledAt time.Time, outcomes map[int64]*domain.RaceOutcome, summary *domain.SettlementSummary) error {
	if err := tx.MarkWagerLost(ctx, wager.ID, settledAt); err != nil {
		return fmt.Errorf("%s %d: %w", ErrContextFailedToSettleWager, wager.ID, err)
	}

	summary.WagersSettled++
	summary.WagersLost++

	outcome := outcomeFor(outcomes, wager.UserID)
	outcome.WagersPlaced++
	outcome.TotalWagered += wager.Stake
	return nil
}

func outcomeFor(outcomes map[int64]*domain.RaceOutcome, userID int64) *domain.RaceOutcome {
	outcome, ok := outcomes[userID]
	if !ok {
		outcome = &domain.RaceOutcome{UserID: userID}
		outcomes[userID] = outcome
	}
	return outcome
}

// validateFinishingOrder checks the order is a permutation of the entered
// horses: every horse placed, no horse placed twice, no outsiders.
func validateFinishingOrder(horseIDs, finishingOrder []int64) error {
	if len(finishingOrder) != len(horseIDs) {
		return fmt.Errorf("%w: got %d position(s) for %d horse(s)",
			domain.ErrIncompleteOrder, len(finishingOrder), len(horseIDs))
	}

	entered := make(map[int64]struct{}, len(horseIDs))
	for _, id := range horseIDs {
		entered[id] = struct{}{}
	}

	seen := make(map[int64]struct{}, len(finishingOrder))
	for _, id := range finishingOrder {
		if _, ok := entered[id]; !ok {
			return fmt.Errorf("%w: horse %d is not entered in the race", domain.ErrIncompleteOrder, id)
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: horse %d placed twice", domain.ErrIncompleteOrder, id)
		}
		seen[id] = struct{}{}
	}
	return nil
}

// Business counters (races settled, payouts, stakes) are recorded by the
// EventMetricsCollector from the published events, so only the duration is
// observed here.
func (s *service) recordMetrics(started time.Time) {
	metrics.SettlementDuration.Observe(time.Since(started).Seconds())
}

func (s *service) publishEvents(ctx context.Context, summary domain.SettlementSummary, finishingOrder []int64, flagged []flaggedWager) {
	if s.publisher == nil {
		return
	}

	s.publisher.PublishWithRetry(ctx, event.NewRaceSettledEvent(summary, finishingOrder))
	for _, f := range flagged {
		s.publisher.PublishWithRetry(ctx, event.NewWagerFlaggedEvent(f.wagerID, summary.RaceID, f.reason))
	}
}
