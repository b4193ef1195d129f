package domain

import (
	"context"

	"github.com/questx-lab/concierge/internal/domain/settlement"
	"github.com/questx-lab/concierge/internal/model"
	"github.com/questx-lab/concierge/pkg/errorx"
	"github.com/questx-lab/concierge/pkg/xcontext"
)

type SettlementDomain interface {
	SettleNow(context.Context, *model.SettleNowRequest) (*model.SettleNowResponse, error)
}

type settlementDomain struct {
	sweep *settlement.Sweep
}

func NewSettlementDomain(sweep *settlement.Sweep) *settlementDomain {
	return &settlementDomain{sweep: sweep}
}

func (d *settlementDomain) SettleNow(
	ctx context.Context, req *model.SettleNowRequest,
) (*model.SettleNowResponse, error) {
	summary, err := d.sweep.Run(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot run settlement sweep: %v", err)
		return nil, errorx.New(errorx.Internal, "Cannot run settlement sweep")
	}

	return &model.SettleNowResponse{Summary: settlement.ConvertSummary(summary)}, nil
}
