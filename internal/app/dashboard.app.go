package app

import (
	"cambio/internal/calculator"
	"cambio/internal/domain"
	"cambio/internal/logger"
	"cambio/internal/repository"
	"cambio/internal/service"
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// SnapshotTTL is how long a cached snapshot set may be used for the
// initial paint. The cache never suppresses a refresh.
const SnapshotTTL = 2 * time.Minute

type RateSource interface {
	GetLatestRate(ctx context.Context) (*domain.ReferenceRate, error)
}

// DashboardApp owns all mutable dashboard state behind one mutex. The
// UI layer reads derived views; sources write through the refresh
// methods. Nothing here is global.
type DashboardApp struct {
	RateSource        RateSource
	MarketDataService service.MarketDataService
	QuoteService      service.QuoteService
	AlertRepository   repository.AlertRepository
	HistoryRepository repository.HistoryRepository
	QuoteCache        repository.QuoteCacheRepository
	PollInterval      time.Duration

	mu            sync.Mutex
	referenceRate domain.ReferenceRate
	manualP2P     *decimal.Decimal
	snapshots     map[string]domain.AssetSnapshot
	snapshotsAsOf time.Time
	notification  *domain.Notification

	// monotonic fetch sequencing so a late, out-of-order snapshot
	// response cannot overwrite a newer one
	nextSeq    uint64
	appliedSeq uint64
}

func NewDashboardApp(
	rateSource RateSource,
	marketDataService service.MarketDataService,
	quoteService service.QuoteService,
	alertRepository repository.AlertRepository,
	historyRepository repository.HistoryRepository,
	quoteCache repository.QuoteCacheRepository,
	pollInterval time.Duration,
) *DashboardApp {
	return &DashboardApp{
		RateSource:        rateSource,
		MarketDataService: marketDataService,
		QuoteService:      quoteService,
		AlertRepository:   alertRepository,
		HistoryRepository: historyRepository,
		QuoteCache:        quoteCache,
		PollInterval:      pollInterval,
		snapshots:         map[string]domain.AssetSnapshot{},
	}
}

// Seed paints initial state from the cache, then refreshes everything.
// The cached snapshot set is only used when younger than SnapshotTTL;
// the network refresh always runs regardless. Per-source failures are
// isolated: a failed reference-rate fetch does not block snapshots.
func (a *DashboardApp) Seed(ctx context.Context) {
	if cached, age, ok := a.QuoteCache.GetSnapshots(); ok && age < SnapshotTTL {
		a.mu.Lock()
		a.snapshots = cached
		a.snapshotsAsOf = time.Now().UTC().Add(-age)
		a.mu.Unlock()
	}

	a.RefreshReferenceRate(ctx)
	a.RefreshSnapshots(ctx)
}

// RefreshReferenceRate replaces the current rate wholesale on success.
// On failure the previous rate is kept; a decision can still be derived
// from the hardcoded default if none was ever fetched.
func (a *DashboardApp) RefreshReferenceRate(ctx context.Context) {
	log := logger.FromContext(ctx)

	rate, err := a.RateSource.GetLatestRate(ctx)
	if err != nil {
		log.Warnf("reference rate fetch failed, keeping previous: %v", err)
		return
	}

	a.mu.Lock()
	a.referenceRate = *rate
	a.mu.Unlock()
}

// RefreshSnapshots fetches the market snapshot set and applies it unless
// a newer fetch already finished. On success the set replaces the old
// one atomically, the cache is updated and alerts are re-evaluated. On
// failure the stale set is retained.
func (a *DashboardApp) RefreshSnapshots(ctx context.Context) {
	log := logger.FromContext(ctx)

	a.mu.Lock()
	a.nextSeq++
	seq := a.nextSeq
	a.mu.Unlock()

	snapshots, err := a.MarketDataService.GetSnapshots(ctx)
	if err != nil {
		log.Warnf("snapshot fetch failed, keeping stale set: %v", err)
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if seq < a.appliedSeq {
		log.Infof("discarding out-of-order snapshot response (seq %d < %d)", seq, a.appliedSeq)
		return
	}
	a.appliedSeq = seq
	a.snapshots = snapshots
	a.snapshotsAsOf = time.Now().UTC()
	a.notification = service.Evaluate(a.AlertRepository.List(), snapshots)

	a.QuoteCache.SetSnapshots(snapshots)
}

// RunPoller refreshes snapshots on a fixed interval until ctx is
// cancelled. Binding the poller to the server's context guarantees
// teardown.
func (a *DashboardApp) RunPoller(ctx context.Context) {
	ticker := time.NewTicker(a.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			a.RefreshSnapshots(ctx)
		}
	}
}

// FetchQuote runs the aggregation pipeline and caches a successful
// result for the next initial paint.
func (a *DashboardApp) FetchQuote(ctx context.Context) service.QuoteOutcome {
	outcome := a.QuoteService.GetQuote(ctx)
	if outcome.Status == service.QuoteStatusOK {
		a.QuoteCache.SetQuote(*outcome.Quote)
	}
	return outcome
}

// CachedQuote returns the last good quote and its age, for painting a
// view before a live fetch completes.
func (a *DashboardApp) CachedQuote() (*domain.P2PQuote, time.Duration, bool) {
	return a.QuoteCache.GetQuote()
}

// SetManualP2P stores a manual override. Invalid or non-positive input
// is ignored and the previous value kept.
func (a *DashboardApp) SetManualP2P(input string) error {
	price, err := decimal.NewFromString(input)
	if err != nil {
		return fmt.Errorf("invalid p2p price %q: %w", input, err)
	}
	if !price.IsPositive() {
		return fmt.Errorf("p2p price must be positive, got %s", price)
	}

	a.mu.Lock()
	a.manualP2P = &price
	a.mu.Unlock()
	return nil
}

// ClearManualP2P drops the override; the estimate takes over.
func (a *DashboardApp) ClearManualP2P() {
	a.mu.Lock()
	a.manualP2P = nil
	a.mu.Unlock()
}

// Decision derives the current decision state. Never fails.
func (a *DashboardApp) Decision() domain.DecisionState {
	a.mu.Lock()
	defer a.mu.Unlock()
	return calculator.ComputeDecision(a.referenceRate.Value, a.manualP2P)
}

// ReferenceRate returns the current official rate as fetched.
func (a *DashboardApp) ReferenceRate() domain.ReferenceRate {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.referenceRate
}

// ConfirmP2PEntry validates the manual price, makes it the active
// override and appends a history entry capturing the rate and spread at
// confirmation time. This is the only path that writes history.
func (a *DashboardApp) ConfirmP2PEntry(input string) ([]domain.HistoryEntry, error) {
	if err := a.SetManualP2P(input); err != nil {
		return nil, err
	}

	decision := a.Decision()
	entries := a.HistoryRepository.Append(domain.HistoryEntry{
		P2PPrice:      decision.P2PValue,
		ReferenceRate: decision.ReferenceRate,
		SpreadPercent: decision.SpreadPercent,
		Timestamp:     time.Now().UTC(),
	})
	return entries, nil
}

// SnapshotView is one tracked asset with its derived series summary, in
// configured display order.
type SnapshotView struct {
	domain.AssetSnapshot
	Summary domain.SeriesSummary `json:"summary"`
}

// Snapshots returns the current set in tracked order, with holes for
// assets missing upstream, plus the set's age.
func (a *DashboardApp) Snapshots() ([]SnapshotView, time.Time) {
	a.mu.Lock()
	defer a.mu.Unlock()

	views := []SnapshotView{}
	for _, tracked := range domain.TrackedAssets {
		snapshot, ok := a.snapshots[tracked.ID]
		if !ok {
			continue
		}
		summary, err := calculator.SummarizeSeries(snapshot.RecentPrices)
		if err != nil {
			summary = domain.SeriesSummary{}
		}
		views = append(views, SnapshotView{
			AssetSnapshot: snapshot,
			Summary:       summary,
		})
	}
	return views, a.snapshotsAsOf
}

// Notification returns the active alert notification, if any.
func (a *DashboardApp) Notification() *domain.Notification {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.notification
}

// PortfolioValue values the submitted holdings at current prices, using
// the decision P2P rate for COP conversion.
func (a *DashboardApp) PortfolioValue(holdings domain.Holdings) domain.PortfolioValuation {
	decision := a.Decision()

	a.mu.Lock()
	snapshots := a.snapshots
	a.mu.Unlock()

	return calculator.ComputePortfolioValue(holdings, snapshots, decision.P2PValue)
}
