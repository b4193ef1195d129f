package migration

import (
	"context"
	"embed"
	"errors"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/mysql"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/questx-lab/concierge/internal/entity"
	"github.com/questx-lab/concierge/pkg/xcontext"
)

//go:embed mysql/*.sql
var mysqlFS embed.FS

// Migrate brings the database schema to the latest version. MySQL databases
// run the versioned scripts embedded in the binary, sqlite databases are
// auto-migrated from the entities.
func Migrate(ctx context.Context) error {
	if xcontext.Configs(ctx).Database.Type == "sqlite" {
		return entity.MigrateTable(ctx)
	}

	m, err := newMigrate(ctx)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	version, dirty, err := m.Version()
	if err != nil {
		return err
	}

	xcontext.Logger(ctx).Infof("Database schema is at version %d (dirty=%v)", version, dirty)
	return nil
}

// Rollback reverts the last applied version.
func Rollback(ctx context.Context) error {
	if xcontext.Configs(ctx).Database.Type == "sqlite" {
		return errors.New("rollback is not supported by sqlite databases")
	}

	m, err := newMigrate(ctx)
	if err != nil {
		return err
	}

	return m.Steps(-1)
}

func newMigrate(ctx context.Context) (*migrate.Migrate, error) {
	db, err := xcontext.DB(ctx).DB()
	if err != nil {
		return nil, err
	}

	source, err := iofs.New(mysqlFS, "mysql")
	if err != nil {
		return nil, err
	}

	driver, err := mysql.WithInstance(db, &mysql.Config{})
	if err != nil {
		return nil, err
	}

	return migrate.NewWithInstance("iofs", source, xcontext.Configs(ctx).Database.Database, driver)
}
