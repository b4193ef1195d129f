package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/questx-lab/concierge/internal/domain/settlement"
	"github.com/urfave/cli/v2"
)

func (s *srv) startSettle(*cli.Context) error {
	if err := s.loadSettlement(); err != nil {
		return err
	}
	defer s.stopClients()

	summary, err := s.sweep.Run(s.ctx)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(settlement.ConvertSummary(summary)); err != nil {
		return err
	}

	if summary.Failed > 0 {
		return fmt.Errorf("%d orders could not be settled", summary.Failed)
	}

	return nil
}
