package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/questx-lab/concierge/internal/domain/cron"
	"github.com/questx-lab/concierge/pkg/xcontext"
	"github.com/urfave/cli/v2"
)

func (s *srv) startCron(*cli.Context) error {
	if err := s.loadSettlement(); err != nil {
		return err
	}
	defer s.stopClients()

	cronJobManager := cron.NewCronJobManager()
	cronJobManager.Register(cron.NewSettlementSweepCronJob(s.ctx, s.sweep))

	go func() {
		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
		<-sigs

		xcontext.Logger(s.ctx).Infof("Stopping settlement scheduler")
		cronJobManager.Cancel(s.ctx)
	}()

	cronJobManager.Start(s.ctx)
	return nil
}
