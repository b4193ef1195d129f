package repository

import (
	"context"
	"time"

	"github.com/questx-lab/concierge/internal/entity"
	"github.com/questx-lab/concierge/pkg/errorx"
	"github.com/questx-lab/concierge/pkg/xcontext"
	"gorm.io/gorm"
)

type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)

	// GetEligibleForSettlement returns orders waiting for a draw held strictly
	// before cutoff, with their tickets.
	GetEligibleForSettlement(ctx context.Context, cutoff time.Time) ([]entity.Order, error)

	// SaveSettlement writes the settlement fields of the order and all of its
	// tickets in one transaction. It fails with errorx.AlreadySettled if the
	// order is no longer waiting for its draw.
	SaveSettlement(ctx context.Context, order *entity.Order) error

	UpdateStatus(ctx context.Context, id string, from, to entity.OrderStatus) error
}

type orderRepository struct{}

func NewOrderRepository() *orderRepository {
	return &orderRepository{}
}

func (r *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	return xcontext.DB(ctx).Create(order).Error
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	var result entity.Order
	if err := xcontext.DB(ctx).Preload("Tickets").Take(&result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *orderRepository) GetEligibleForSettlement(
	ctx context.Context, cutoff time.Time,
) ([]entity.Order, error) {
	var result []entity.Order
	err := xcontext.DB(ctx).
		Preload("Tickets").
		Where("status=? AND draw_date<?", entity.OrderWaitingDraw, cutoff).
		Order("draw_date ASC").
		Order("id ASC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *orderRepository) SaveSettlement(ctx context.Context, order *entity.Order) error {
	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	tx := xcontext.DB(ctx).Model(&entity.Order{}).
		Where("id=? AND status=?", order.ID, entity.OrderWaitingDraw).
		Updates(map[string]any{
			"status":            order.Status,
			"total_winning_usd": order.TotalWinningUSD,
			"total_winning_thb": order.TotalWinningTHB,
			"draw_checked_at":   order.DrawCheckedAt,
		})
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return errorx.New(errorx.AlreadySettled, "Order %s is not waiting for its draw", order.ID)
	}

	for _, ticket := range order.Tickets {
		tx := xcontext.DB(ctx).Model(&entity.Ticket{}).
			Where("id=? AND order_id=? AND settled_at IS NULL", ticket.ID, order.ID).
			Updates(map[string]any{
				"matched_main":     ticket.MatchedMain,
				"matched_special":  ticket.MatchedSpecial,
				"prize_tier":       ticket.PrizeTier,
				"prize_amount":     ticket.PrizeAmount,
				"multiplier_value": ticket.MultiplierValue,
				"settled_at":       ticket.SettledAt,
			})
		if tx.Error != nil {
			return tx.Error
		}

		if tx.RowsAffected == 0 {
			return errorx.New(errorx.AlreadySettled, "Ticket %s of order %s is already settled",
				ticket.ID, order.ID)
		}
	}

	return xcontext.WithCommitDBTransaction(ctx)
}

func (r *orderRepository) UpdateStatus(
	ctx context.Context, id string, from, to entity.OrderStatus,
) error {
	tx := xcontext.DB(ctx).Model(&entity.Order{}).
		Where("id=? AND status=?", id, from).
		Update("status", to)
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
