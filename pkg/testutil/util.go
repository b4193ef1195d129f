package testutil

import (
	"context"
	"time"

	"github.com/questx-lab/concierge/config"
	"github.com/questx-lab/concierge/internal/entity"
	"github.com/questx-lab/concierge/pkg/logger"
	"github.com/questx-lab/concierge/pkg/xcontext"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func MockContext() context.Context {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		panic(err)
	}

	// Every connection to ":memory:" opens a distinct database.
	sqlDB, err := db.DB()
	if err != nil {
		panic(err)
	}
	sqlDB.SetMaxOpenConns(1)

	cfg := config.Default()
	cfg.Env = "test"
	cfg.Settlement.Timezone = "UTC"
	cfg.Settlement.Workers = 1
	cfg.Redis.DrawResultTTL = config.Duration{Duration: time.Hour}
	cfg.Admin.Token = "admin-token"

	ctx := context.Background()
	ctx = xcontext.WithConfigs(ctx, cfg)
	ctx = xcontext.WithLogger(ctx, logger.NewLogger(logger.SILENCE))
	ctx = xcontext.WithDB(ctx, db)

	if err := entity.MigrateTable(ctx); err != nil {
		panic(err)
	}

	return ctx
}

// WithSettlementWorkers returns a copy of ctx whose configs use n settlement
// workers.
func WithSettlementWorkers(ctx context.Context, n int) context.Context {
	cfg := xcontext.Configs(ctx)
	cfg.Settlement.Workers = n
	return xcontext.WithConfigs(ctx, cfg)
}
