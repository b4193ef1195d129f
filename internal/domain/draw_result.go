package domain

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/questx-lab/concierge/internal/domain/prizetable"
	"github.com/questx-lab/concierge/internal/entity"
	"github.com/questx-lab/concierge/internal/model"
	"github.com/questx-lab/concierge/internal/repository"
	"github.com/questx-lab/concierge/pkg/dateutil"
	"github.com/questx-lab/concierge/pkg/enum"
	"github.com/questx-lab/concierge/pkg/errorx"
	"github.com/questx-lab/concierge/pkg/xcontext"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type DrawResultDomain interface {
	Create(context.Context, *model.CreateDrawResultRequest) (*model.CreateDrawResultResponse, error)
	Get(context.Context, *model.GetDrawResultRequest) (*model.GetDrawResultResponse, error)
	Verify(context.Context, *model.VerifyDrawResultRequest) (*model.VerifyDrawResultResponse, error)
}

type drawResultDomain struct {
	drawResultRepo repository.DrawResultRepository
}

func NewDrawResultDomain(drawResultRepo repository.DrawResultRepository) *drawResultDomain {
	return &drawResultDomain{drawResultRepo: drawResultRepo}
}

func (d *drawResultDomain) Create(
	ctx context.Context, req *model.CreateDrawResultRequest,
) (*model.CreateDrawResultResponse, error) {
	game, err := enum.ToEnum[entity.GameType](req.Game)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid game %q", req.Game)
	}

	drawDate, err := dateutil.ParseDate(req.DrawDate)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid draw date %q", req.DrawDate)
	}

	table, err := prizetable.ForGame(game)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Game %s is not supported", game)
	}

	if err := table.ValidateNumbers(req.WinningNumbers, req.SpecialNumber); err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid winning numbers: %v", err)
	}

	if req.Multiplier < 0 || req.Multiplier == 1 {
		return nil, errorx.New(errorx.BadRequest, "Multiplier must be zero or at least 2")
	}

	jackpot, err := decimal.NewFromString(req.JackpotAmount)
	if err != nil || !jackpot.IsPositive() {
		return nil, errorx.New(errorx.BadRequest, "Jackpot amount must be a positive number")
	}

	_, err = d.drawResultRepo.GetByGameAndDate(ctx, game, drawDate)
	if err == nil {
		return nil, errorx.New(errorx.AlreadyExists,
			"Draw result of %s on %s already exists", game, req.DrawDate)
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		xcontext.Logger(ctx).Errorf("Cannot get draw result: %v", err)
		return nil, errorx.Unknown
	}

	verified := req.IsVerified == nil || *req.IsVerified
	draw := &entity.DrawResult{
		Base:           entity.Base{ID: uuid.NewString()},
		Game:           game,
		DrawDate:       drawDate,
		DrawTime:       req.DrawTime,
		DrawNumber:     req.DrawNumber,
		WinningNumbers: req.WinningNumbers,
		SpecialNumber:  req.SpecialNumber,
		Multiplier:     req.Multiplier,
		JackpotAmount:  jackpot,
		IsVerified:     verified,
		Source:         req.Source,
	}

	if verified {
		draw.VerifiedAt = sql.NullTime{Time: time.Now().UTC(), Valid: true}
	}

	if err := d.drawResultRepo.Create(ctx, draw); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create draw result: %v", err)
		return nil, errorx.Unknown
	}

	return &model.CreateDrawResultResponse{ID: draw.ID}, nil
}

func (d *drawResultDomain) Get(
	ctx context.Context, req *model.GetDrawResultRequest,
) (*model.GetDrawResultResponse, error) {
	game, err := enum.ToEnum[entity.GameType](req.Game)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid game %q", req.Game)
	}

	drawDate, err := dateutil.ParseDate(req.DrawDate)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid draw date %q", req.DrawDate)
	}

	draw, err := d.drawResultRepo.GetByGameAndDate(ctx, game, drawDate)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found draw result")
		}

		xcontext.Logger(ctx).Errorf("Cannot get draw result: %v", err)
		return nil, errorx.Unknown
	}

	return &model.GetDrawResultResponse{DrawResult: model.ConvertDrawResult(draw)}, nil
}

// Verify releases a staged draw result for settlement. A verified draw is
// never changed again.
func (d *drawResultDomain) Verify(
	ctx context.Context, req *model.VerifyDrawResultRequest,
) (*model.VerifyDrawResultResponse, error) {
	if req.ID == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty id")
	}

	draw, err := d.drawResultRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found draw result")
		}

		xcontext.Logger(ctx).Errorf("Cannot get draw result: %v", err)
		return nil, errorx.Unknown
	}

	if draw.IsVerified {
		return nil, errorx.New(errorx.AlreadyExists, "Draw result %s is already verified", draw.ID)
	}

	if err := d.drawResultRepo.Verify(ctx, draw.ID, time.Now().UTC()); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.AlreadyExists, "Draw result %s is already verified", draw.ID)
		}

		xcontext.Logger(ctx).Errorf("Cannot verify draw result: %v", err)
		return nil, errorx.Unknown
	}

	// Reading it back by game and date puts the verified result in the cache.
	verified, err := d.drawResultRepo.GetByGameAndDate(ctx, draw.Game, draw.DrawDate)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot reload verified draw result: %v", err)
		return nil, errorx.Unknown
	}

	xcontext.Logger(ctx).Infof("Draw result %s of %s on %s is verified",
		verified.ID, verified.Game, verified.DrawDate.Format("2006-01-02"))

	return &model.VerifyDrawResultResponse{DrawResult: model.ConvertDrawResult(verified)}, nil
}
