package migration

import (
	"io/fs"
	"testing"

	"github.com/questx-lab/concierge/internal/entity"
	"github.com/questx-lab/concierge/pkg/testutil"
	"github.com/questx-lab/concierge/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func TestMigrate_Sqlite(t *testing.T) {
	ctx := testutil.MockContext()
	cfg := xcontext.Configs(ctx)
	cfg.Database.Type = "sqlite"
	ctx = xcontext.WithConfigs(ctx, cfg)

	require.NoError(t, Migrate(ctx))
	for _, table := range []any{&entity.DrawResult{}, &entity.Order{}, &entity.Ticket{}} {
		require.True(t, xcontext.DB(ctx).Migrator().HasTable(table))
	}

	require.Error(t, Rollback(ctx))
}

func TestEmbeddedScripts(t *testing.T) {
	files, err := fs.Glob(mysqlFS, "mysql/*.sql")
	require.NoError(t, err)
	require.Contains(t, files, "mysql/000001_create_settlement_tables.up.sql")
	require.Contains(t, files, "mysql/000001_create_settlement_tables.down.sql")
	require.Zero(t, len(files)%2)
}
