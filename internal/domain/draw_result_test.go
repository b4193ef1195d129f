package domain

import (
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/questx-lab/concierge/internal/domain/settlement"
	"github.com/questx-lab/concierge/internal/entity"
	"github.com/questx-lab/concierge/internal/model"
	"github.com/questx-lab/concierge/internal/repository"
	"github.com/questx-lab/concierge/pkg/errorx"
	"github.com/questx-lab/concierge/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func validCreateDrawResultRequest() *model.CreateDrawResultRequest {
	return &model.CreateDrawResultRequest{
		Game:           "Powerball",
		DrawDate:       "2026-10-14",
		DrawTime:       "22:59",
		DrawNumber:     1578,
		WinningNumbers: []int{5, 12, 23, 34, 69},
		SpecialNumber:  7,
		Multiplier:     3,
		JackpotAmount:  "120000000",
		Source:         "powerball.com",
	}
}

func Test_drawResultDomain_CreateAndGet(t *testing.T) {
	ctx := testutil.MockContext()
	domain := NewDrawResultDomain(repository.NewDrawResultRepository(testutil.NewMemoryRedisClient()))

	resp, err := domain.Create(ctx, validCreateDrawResultRequest())
	require.NoError(t, err)
	require.NotEmpty(t, resp.ID)

	got, err := domain.Get(ctx, &model.GetDrawResultRequest{Game: "Powerball", DrawDate: "2026-10-14"})
	require.NoError(t, err)
	require.Equal(t, resp.ID, got.DrawResult.ID)
	require.Equal(t, []int{5, 12, 23, 34, 69}, got.DrawResult.WinningNumbers)
	require.Equal(t, "120000000.00", got.DrawResult.JackpotAmount)
	require.Equal(t, 3, got.DrawResult.Multiplier)
	require.True(t, got.DrawResult.IsVerified)
	require.NotEmpty(t, got.DrawResult.VerifiedAt)

	_, err = domain.Create(ctx, validCreateDrawResultRequest())
	require.True(t, errorx.Is(err, errorx.AlreadyExists))

	_, err = domain.Get(ctx, &model.GetDrawResultRequest{Game: "Powerball", DrawDate: "2026-10-15"})
	require.True(t, errorx.Is(err, errorx.NotFound))
}

func Test_drawResultDomain_Create_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*model.CreateDrawResultRequest)
	}{
		{
			name:   "unknown game",
			modify: func(req *model.CreateDrawResultRequest) { req.Game = "EuroMillions" },
		},
		{
			name:   "invalid date",
			modify: func(req *model.CreateDrawResultRequest) { req.DrawDate = "14/10/2026" },
		},
		{
			name:   "four numbers",
			modify: func(req *model.CreateDrawResultRequest) { req.WinningNumbers = []int{1, 2, 3, 4} },
		},
		{
			name:   "special out of range",
			modify: func(req *model.CreateDrawResultRequest) { req.SpecialNumber = 27 },
		},
		{
			name:   "multiplier one",
			modify: func(req *model.CreateDrawResultRequest) { req.Multiplier = 1 },
		},
		{
			name:   "no jackpot",
			modify: func(req *model.CreateDrawResultRequest) { req.JackpotAmount = "0" },
		},
		{
			name:   "jackpot not a number",
			modify: func(req *model.CreateDrawResultRequest) { req.JackpotAmount = "a lot" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := testutil.MockContext()
			domain := NewDrawResultDomain(repository.NewDrawResultRepository(nil))

			req := validCreateDrawResultRequest()
			tt.modify(req)

			_, err := domain.Create(ctx, req)
			require.True(t, errorx.Is(err, errorx.BadRequest), err.Error())
		})
	}
}

func Test_drawResultDomain_Verify_ReleasesOrders(t *testing.T) {
	ctx := testutil.MockContext()
	redisClient := testutil.NewMemoryRedisClient()
	drawResultRepo := repository.NewDrawResultRepository(redisClient)
	orderRepo := repository.NewOrderRepository()
	domain := NewDrawResultDomain(drawResultRepo)

	order := testutil.SampleOrder(nil, testutil.SampleTicket([]int{1, 2, 3, 4, 5}, 7))
	testutil.InsertOrder(ctx, order)

	staged := false
	req := validCreateDrawResultRequest()
	req.IsVerified = &staged
	created, err := domain.Create(ctx, req)
	require.NoError(t, err)

	got, err := domain.Get(ctx, &model.GetDrawResultRequest{Game: "Powerball", DrawDate: "2026-10-14"})
	require.NoError(t, err)
	require.False(t, got.DrawResult.IsVerified)
	require.Empty(t, got.DrawResult.VerifiedAt)

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)
	sweep := settlement.NewSweep(orderRepo, drawResultRepo, nil, node).
		WithClock(func() time.Time { return time.Date(2026, 10, 19, 3, 0, 0, 0, time.UTC) })

	summary, err := sweep.Run(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, summary.MissingDraw)
	require.Equal(t, 0, summary.Settled)

	verified, err := domain.Verify(ctx, &model.VerifyDrawResultRequest{ID: created.ID})
	require.NoError(t, err)
	require.True(t, verified.DrawResult.IsVerified)
	require.NotEmpty(t, verified.DrawResult.VerifiedAt)

	summary, err = sweep.Run(ctx)
	require.NoError(t, err)
	require.Equal(t, 0, summary.MissingDraw)
	require.Equal(t, 1, summary.Settled)

	saved, err := orderRepo.GetByID(ctx, order.ID)
	require.NoError(t, err)
	require.Equal(t, entity.OrderPartialWin, saved.Status)

	_, err = domain.Verify(ctx, &model.VerifyDrawResultRequest{ID: created.ID})
	require.True(t, errorx.Is(err, errorx.AlreadyExists))

	_, err = domain.Verify(ctx, &model.VerifyDrawResultRequest{ID: "unknown"})
	require.True(t, errorx.Is(err, errorx.NotFound))

	_, err = domain.Verify(ctx, &model.VerifyDrawResultRequest{})
	require.True(t, errorx.Is(err, errorx.BadRequest))
}
