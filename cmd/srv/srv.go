package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/bwmarrin/snowflake"
	"github.com/joho/godotenv"
	"github.com/questx-lab/concierge/config"
	"github.com/questx-lab/concierge/internal/domain"
	"github.com/questx-lab/concierge/internal/domain/settlement"
	"github.com/questx-lab/concierge/internal/repository"
	"github.com/questx-lab/concierge/pkg/kafka"
	"github.com/questx-lab/concierge/pkg/logger"
	"github.com/questx-lab/concierge/pkg/pubsub"
	"github.com/questx-lab/concierge/pkg/router"
	"github.com/questx-lab/concierge/pkg/xcontext"
	"github.com/questx-lab/concierge/pkg/xredis"
	"github.com/urfave/cli/v2"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const kafkaClientID = "concierge-settlement"

type srv struct {
	app *cli.App
	ctx context.Context

	redisClient xredis.Client
	publisher   pubsub.Publisher
	node        *snowflake.Node

	orderRepo      repository.OrderRepository
	drawResultRepo repository.DrawResultRepository

	sweep *settlement.Sweep

	drawResultDomain domain.DrawResultDomain
	orderDomain      domain.OrderDomain
	settlementDomain domain.SettlementDomain

	router *router.Router
}

func (s *srv) loadConfig(cctx *cli.Context) error {
	envFile := cctx.String("env-file")
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("cannot load %s: %w", envFile, err)
	}

	cfg, err := config.Load(cctx.String("config"))
	if err != nil {
		return err
	}

	level, err := logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}

	var log logger.Logger
	if cfg.Log.JSON {
		log = logger.NewJSONLogger(level, os.Stdout)
	} else {
		log = logger.NewLogger(level)
	}

	s.node, err = snowflake.NewNode(cctx.Int64("node"))
	if err != nil {
		return err
	}

	s.ctx = context.Background()
	s.ctx = xcontext.WithConfigs(s.ctx, cfg)
	s.ctx = xcontext.WithLogger(s.ctx, log)
	return nil
}

func (s *srv) newDatabase() (*gorm.DB, error) {
	cfg := xcontext.Configs(s.ctx).Database

	var dialector gorm.Dialector
	switch cfg.Type {
	case "mysql":
		dialector = mysql.Open(cfg.ConnectionString())
	case "sqlite":
		dialector = sqlite.Open(cfg.File)
	default:
		return nil, fmt.Errorf("unsupported database type %q", cfg.Type)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormLogLevel(cfg.LogLevel)),
	})
	if err != nil {
		return nil, err
	}

	if cfg.Type == "sqlite" {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}

		// sqlite allows only one writer at a time.
		sqlDB.SetMaxOpenConns(1)
	}

	return db, nil
}

func gormLogLevel(level string) gormlogger.LogLevel {
	switch level {
	case "silent":
		return gormlogger.Silent
	case "warn":
		return gormlogger.Warn
	case "info":
		return gormlogger.Info
	default:
		return gormlogger.Error
	}
}

func (s *srv) loadDatabase() error {
	db, err := s.newDatabase()
	if err != nil {
		return err
	}

	s.ctx = xcontext.WithDB(s.ctx, db)
	return nil
}

// loadRedisClient leaves the draw result cache disabled if redis is not
// configured or cannot be reached.
func (s *srv) loadRedisClient() {
	if xcontext.Configs(s.ctx).Redis.Addr == "" {
		return
	}

	client, err := xredis.NewClient(s.ctx)
	if err != nil {
		xcontext.Logger(s.ctx).Warnf("Cannot connect to redis, draw results are not cached: %v", err)
		return
	}

	s.redisClient = client
}

func (s *srv) loadPublisher() error {
	cfg := xcontext.Configs(s.ctx)
	if !cfg.Settlement.PublishEvents {
		return nil
	}

	publisher, err := kafka.NewPublisher(kafkaClientID, cfg.Kafka.Brokers())
	if err != nil {
		return err
	}

	s.publisher = publisher
	return nil
}

func (s *srv) loadRepos() {
	s.orderRepo = repository.NewOrderRepository()
	s.drawResultRepo = repository.NewDrawResultRepository(s.redisClient)
}

func (s *srv) loadSweep() {
	s.sweep = settlement.NewSweep(s.orderRepo, s.drawResultRepo, s.publisher, s.node)
}

func (s *srv) loadDomains() {
	s.drawResultDomain = domain.NewDrawResultDomain(s.drawResultRepo)
	s.orderDomain = domain.NewOrderDomain(s.orderRepo)
	s.settlementDomain = domain.NewSettlementDomain(s.sweep)
}

// loadSettlement wires everything a sweep needs.
func (s *srv) loadSettlement() error {
	if err := s.loadDatabase(); err != nil {
		return err
	}

	s.loadRedisClient()
	if err := s.loadPublisher(); err != nil {
		return err
	}

	s.loadRepos()
	s.loadSweep()
	return nil
}

// stopClients releases the redis and kafka connections opened by
// loadSettlement.
func (s *srv) stopClients() {
	if closer, ok := s.redisClient.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			xcontext.Logger(s.ctx).Errorf("Cannot close redis client: %v", err)
		}
	}

	if stopper, ok := s.publisher.(interface{ Stop(context.Context) error }); ok {
		if err := stopper.Stop(s.ctx); err != nil {
			xcontext.Logger(s.ctx).Errorf("Cannot stop publisher: %v", err)
		}
	}
}
