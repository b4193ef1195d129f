package domain

import (
	"context"
	"errors"

	"github.com/questx-lab/concierge/internal/entity"
	"github.com/questx-lab/concierge/internal/model"
	"github.com/questx-lab/concierge/internal/repository"
	"github.com/questx-lab/concierge/pkg/enum"
	"github.com/questx-lab/concierge/pkg/errorx"
	"github.com/questx-lab/concierge/pkg/xcontext"
	"gorm.io/gorm"
)

type OrderDomain interface {
	Get(context.Context, *model.GetOrderRequest) (*model.GetOrderResponse, error)
	UpdatePayoutStatus(context.Context, *model.UpdateOrderPayoutStatusRequest) (*model.UpdateOrderPayoutStatusResponse, error)
}

type orderDomain struct {
	orderRepo repository.OrderRepository
}

func NewOrderDomain(orderRepo repository.OrderRepository) *orderDomain {
	return &orderDomain{orderRepo: orderRepo}
}

func (d *orderDomain) Get(
	ctx context.Context, req *model.GetOrderRequest,
) (*model.GetOrderResponse, error) {
	if req.ID == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty id")
	}

	order, err := d.orderRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found order")
		}

		xcontext.Logger(ctx).Errorf("Cannot get order: %v", err)
		return nil, errorx.Unknown
	}

	return &model.GetOrderResponse{Order: model.ConvertOrder(order)}, nil
}

// UpdatePayoutStatus moves a winning order through the payout workflow.
func (d *orderDomain) UpdatePayoutStatus(
	ctx context.Context, req *model.UpdateOrderPayoutStatusRequest,
) (*model.UpdateOrderPayoutStatusResponse, error) {
	next, err := enum.ToEnum[entity.OrderStatus](req.Status)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid status %q", req.Status)
	}

	order, err := d.orderRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found order")
		}

		xcontext.Logger(ctx).Errorf("Cannot get order: %v", err)
		return nil, errorx.Unknown
	}

	if !order.Status.CanPayoutTransition(next) {
		return nil, errorx.New(errorx.BadRequest,
			"Cannot change order status from %s to %s", order.Status, next)
	}

	if err := d.orderRepo.UpdateStatus(ctx, order.ID, order.Status, next); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.Unavailable, "Order status has been changed, try again")
		}

		xcontext.Logger(ctx).Errorf("Cannot update order status: %v", err)
		return nil, errorx.Unknown
	}

	xcontext.Logger(ctx).Infof("Order %s moved from %s to %s", order.ID, order.Status, next)
	return &model.UpdateOrderPayoutStatusResponse{}, nil
}
