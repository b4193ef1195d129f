package settlement

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/questx-lab/concierge/internal/common"
	"github.com/questx-lab/concierge/internal/entity"
	"github.com/questx-lab/concierge/internal/model"
	"github.com/questx-lab/concierge/internal/repository"
	"github.com/questx-lab/concierge/pkg/dateutil"
	"github.com/questx-lab/concierge/pkg/errorx"
	"github.com/questx-lab/concierge/pkg/pubsub"
	"github.com/questx-lab/concierge/pkg/xcontext"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// Summary reports one sweep run.
type Summary struct {
	RunID     string
	StartedAt time.Time
	Duration  time.Duration

	Eligible int
	Settled  int

	// Skipped orders were found already settled when they were saved. The
	// total of orders skipped by a run is Skipped + MissingDraw.
	Skipped int

	// MissingDraw orders have no verified draw result yet. They are not
	// included in Skipped and are retried by the next sweep.
	MissingDraw int

	Failed         int
	FailedOrderIDs []string
}

type result int

const (
	resultSettled result = iota
	resultSkipped
	resultMissingDraw
	resultFailed
)

// Sweep settles every order whose draw is old enough and has a result.
type Sweep struct {
	orderRepo      repository.OrderRepository
	drawResultRepo repository.DrawResultRepository
	publisher      pubsub.Publisher
	aggregator     *Aggregator
	node           *snowflake.Node
	now            func() time.Time

	// Runs in the same process never overlap.
	mutex sync.Mutex
}

// NewSweep returns a Sweep. Settled orders are announced on
// model.OrderSettledTopic if publisher is not nil.
func NewSweep(
	orderRepo repository.OrderRepository,
	drawResultRepo repository.DrawResultRepository,
	publisher pubsub.Publisher,
	node *snowflake.Node,
) *Sweep {
	return &Sweep{
		orderRepo:      orderRepo,
		drawResultRepo: drawResultRepo,
		publisher:      publisher,
		aggregator:     NewAggregator(time.Now),
		node:           node,
		now:            time.Now,
	}
}

// WithClock replaces the clock used for the cutoff and settlement times.
func (s *Sweep) WithClock(now func() time.Time) *Sweep {
	s.now = now
	s.aggregator = NewAggregator(now)
	return s
}

// Run executes one sweep. It only fails if the eligible orders cannot be
// loaded; failures of single orders are reported in the summary.
func (s *Sweep) Run(ctx context.Context) (summary Summary, err error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	start := time.Now()
	summary = Summary{
		RunID:          s.node.Generate().String(),
		StartedAt:      s.now(),
		FailedOrderIDs: []string{},
	}

	defer func() {
		summary.Duration = time.Since(start)
		common.PromHistograms[common.SettlementSweepDurationSeconds].
			WithLabelValues().Observe(summary.Duration.Seconds())
	}()

	cfg := xcontext.Configs(ctx).Settlement
	loc, err := cfg.Location()
	if err != nil {
		return summary, errorx.New(errorx.InvalidInput, "Invalid settlement timezone: %v", err)
	}

	cutoff := dateutil.SettlementCutoff(summary.StartedAt, loc)
	orders, err := s.orderRepo.GetEligibleForSettlement(ctx, cutoff)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Sweep %s cannot get eligible orders: %v", summary.RunID, err)
		return summary, errorx.New(errorx.PersistenceFailure, "Cannot get eligible orders")
	}

	summary.Eligible = len(orders)
	xcontext.Logger(ctx).Infof("Sweep %s started with %d eligible orders before %s",
		summary.RunID, len(orders), cutoff.Format("2006-01-02"))

	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}

	var mutex sync.Mutex
	g := errgroup.Group{}
	g.SetLimit(workers)
	for i := range orders {
		order := &orders[i]
		g.Go(func() error {
			r := s.settleOrder(ctx, order)

			mutex.Lock()
			defer mutex.Unlock()

			switch r {
			case resultSettled:
				summary.Settled++
			case resultSkipped:
				summary.Skipped++
			case resultMissingDraw:
				summary.MissingDraw++
			case resultFailed:
				summary.Failed++
				summary.FailedOrderIDs = append(summary.FailedOrderIDs, order.ID)
			}

			return nil
		})
	}

	// Order goroutines never return an error.
	_ = g.Wait()

	slices.Sort(summary.FailedOrderIDs)
	common.PromGauges[common.SettlementLastSweepTimestamp].
		WithLabelValues().Set(float64(summary.StartedAt.Unix()))
	xcontext.Logger(ctx).Infof(
		"Sweep %s done: %d settled, %d skipped, %d missing draw, %d failed",
		summary.RunID, summary.Settled, summary.Skipped, summary.MissingDraw, summary.Failed)

	return summary, nil
}

func (s *Sweep) settleOrder(ctx context.Context, order *entity.Order) result {
	r := s.doSettleOrder(ctx, order)

	var outcome string
	switch r {
	case resultSettled:
		outcome = common.OutcomeSettled
	case resultSkipped:
		outcome = common.OutcomeSkipped
	case resultMissingDraw:
		outcome = common.OutcomeMissingDraw
	default:
		outcome = common.OutcomeFailed
	}

	common.PromCounters[common.SettlementOrdersTotal].
		WithLabelValues(string(order.Game), outcome).Inc()

	return r
}

func (s *Sweep) doSettleOrder(ctx context.Context, order *entity.Order) result {
	draw, err := s.drawResultRepo.GetByGameAndDate(ctx, order.Game, order.DrawDate)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			xcontext.Logger(ctx).Debugf("No draw result of %s on %s for order %s",
				order.Game, order.DrawDate.Format("2006-01-02"), order.ID)
			return resultMissingDraw
		}

		xcontext.Logger(ctx).Errorf("Cannot get draw result for order %s: %v", order.ID, err)
		return resultFailed
	}

	if !draw.IsVerified {
		xcontext.Logger(ctx).Debugf("Draw result %s is not verified yet, order %s waits",
			draw.ID, order.ID)
		return resultMissingDraw
	}

	if err := s.aggregator.Settle(order, draw); err != nil {
		if errorx.Is(err, errorx.AlreadySettled) {
			xcontext.Logger(ctx).Warnf("Selected an already settled order: %v", err)
			return resultSkipped
		}

		xcontext.Logger(ctx).Errorf("Cannot settle order %s of user %s (%s %s) against draw %s: %v",
			order.ID, order.UserID, order.Game, order.DrawDate.Format("2006-01-02"), draw.ID, err)
		return resultFailed
	}

	if err := s.orderRepo.SaveSettlement(ctx, order); err != nil {
		if errorx.Is(err, errorx.AlreadySettled) {
			xcontext.Logger(ctx).Warnf("Order %s was settled by another run: %v", order.ID, err)
			return resultSkipped
		}

		xcontext.Logger(ctx).Errorf("Cannot save settlement of order %s: %v", order.ID, err)
		return resultFailed
	}

	common.PromCounters[common.SettlementWinningsUSDTotal].
		WithLabelValues(string(order.Game), string(order.Status)).
		Add(order.TotalWinningUSD.InexactFloat64())

	xcontext.Logger(ctx).Infof("Settled order %s as %s with %s USD",
		order.ID, order.Status, order.TotalWinningUSD.StringFixed(2))

	s.publishSettled(ctx, order)
	return resultSettled
}

func (s *Sweep) publishSettled(ctx context.Context, order *entity.Order) {
	if s.publisher == nil {
		return
	}

	b, err := json.Marshal(model.ConvertOrderSettledEvent(order))
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot marshal settled event of order %s: %v", order.ID, err)
		return
	}

	err = s.publisher.Publish(ctx, model.OrderSettledTopic, &pubsub.Pack{
		Key: []byte(order.ID),
		Msg: b,
	})
	if err != nil {
		common.PromCounters[common.SettlementEventPublishFailTotal].
			WithLabelValues(model.OrderSettledTopic).Inc()
		xcontext.Logger(ctx).Errorf("Cannot publish settled event of order %s: %v", order.ID, err)
	}
}

func ConvertSummary(summary Summary) model.SweepSummary {
	return model.SweepSummary{
		RunID:          summary.RunID,
		StartedAt:      summary.StartedAt.UTC().Format(model.DefaultTimeLayout),
		DurationMillis: summary.Duration.Milliseconds(),
		Eligible:       summary.Eligible,
		Settled:        summary.Settled,
		Skipped:        summary.Skipped,
		MissingDraw:    summary.MissingDraw,
		Failed:         summary.Failed,
		FailedOrderIDs: summary.FailedOrderIDs,
	}
}
