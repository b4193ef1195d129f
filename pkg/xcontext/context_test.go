package xcontext_test

import (
	"context"
	"errors"
	"testing"

	"github.com/questx-lab/concierge/config"
	"github.com/questx-lab/concierge/internal/entity"
	"github.com/questx-lab/concierge/pkg/testutil"
	"github.com/questx-lab/concierge/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func countDrawResults(t *testing.T, ctx context.Context) int64 {
	var count int64
	require.NoError(t, xcontext.DB(ctx).Model(&entity.DrawResult{}).Count(&count).Error)
	return count
}

func TestDBTransaction_Commit(t *testing.T) {
	ctx := testutil.MockContext()

	txCtx := xcontext.WithDBTransaction(ctx)
	require.NoError(t, xcontext.DB(txCtx).Create(testutil.SampleDrawResult(nil)).Error)
	require.NoError(t, xcontext.WithCommitDBTransaction(txCtx))

	// Rollback after commit has no effect.
	xcontext.WithRollbackDBTransaction(txCtx)

	require.Equal(t, int64(1), countDrawResults(t, ctx))
}

func TestDBTransaction_Rollback(t *testing.T) {
	ctx := testutil.MockContext()

	txCtx := xcontext.WithDBTransaction(ctx)
	require.NoError(t, xcontext.DB(txCtx).Create(testutil.SampleDrawResult(nil)).Error)
	xcontext.WithRollbackDBTransaction(txCtx)

	require.Equal(t, int64(0), countDrawResults(t, ctx))
}

func TestDefaults(t *testing.T) {
	ctx := context.Background()

	require.Nil(t, xcontext.DB(ctx))
	require.NotNil(t, xcontext.Logger(ctx))
	require.Equal(t, config.Default(), xcontext.Configs(ctx))
	require.Nil(t, xcontext.HTTPRequest(ctx))
	require.True(t, xcontext.StartTime(ctx).IsZero())
	require.NoError(t, xcontext.Error(ctx))

	err := errors.New("failed")
	require.Equal(t, err, xcontext.Error(xcontext.WithError(ctx, err)))
}
