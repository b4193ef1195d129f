package entity

import (
	"context"

	"github.com/questx-lab/concierge/pkg/xcontext"
)

func MigrateTable(ctx context.Context) error {
	return xcontext.DB(ctx).AutoMigrate(
		&DrawResult{},
		&Order{},
		&Ticket{},
	)
}
