package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/questx-lab/concierge/internal/middleware"
	"github.com/questx-lab/concierge/pkg/prometheus"
	"github.com/questx-lab/concierge/pkg/router"
	"github.com/questx-lab/concierge/pkg/xcontext"
	"github.com/urfave/cli/v2"
)

func (s *srv) startApi(*cli.Context) error {
	if err := s.loadSettlement(); err != nil {
		return err
	}
	defer s.stopClients()

	s.loadDomains()
	s.loadRouter()

	cfg := xcontext.Configs(s.ctx)
	httpSrv := &http.Server{
		Addr:    cfg.ApiServer.Address(),
		Handler: s.router.Handler(),
	}

	go func() {
		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
		<-sigs

		ctx, cancel := context.WithTimeout(s.ctx, 10*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(ctx); err != nil {
			xcontext.Logger(s.ctx).Errorf("Cannot shutdown api server: %v", err)
		}
	}()

	xcontext.Logger(s.ctx).Infof("Starting api server on %s", cfg.ApiServer.Address())
	if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	xcontext.Logger(s.ctx).Infof("Api server stopped")
	return nil
}

func (s *srv) loadRouter() {
	if xcontext.Configs(s.ctx).Env != "local" {
		gin.SetMode(gin.ReleaseMode)
	}

	s.router = router.New(s.ctx)
	s.router.Before(middleware.WithStartTime())
	s.router.After(middleware.Logger())
	s.router.After(middleware.Prometheus())

	s.router.Handle(http.MethodGet, "/metrics", prometheus.NewHandler())

	adminRouter := s.router.Group("")
	adminRouter.Before(middleware.OnlyAdmin())
	{
		// Draw result API
		router.POST(adminRouter, "/createDrawResult", s.drawResultDomain.Create)
		router.GET(adminRouter, "/getDrawResult", s.drawResultDomain.Get)
		router.POST(adminRouter, "/verifyDrawResult", s.drawResultDomain.Verify)

		// Order API
		router.GET(adminRouter, "/getOrder", s.orderDomain.Get)
		router.POST(adminRouter, "/updateOrderPayoutStatus", s.orderDomain.UpdatePayoutStatus)

		// Settlement API
		router.POST(adminRouter, "/settleNow", s.settlementDomain.SettleNow)
	}
}
