package main

import "github.com/urfave/cli/v2"

func (s *srv) loadApp() {
	app := cli.NewApp()
	app.Action = cli.ShowAppHelp
	app.Name = "concierge"
	app.Usage = "Lottery draw settlement service"
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to a TOML config file",
			EnvVars: []string{"CONFIG_FILE"},
		},
		&cli.StringFlag{
			Name:  "env-file",
			Usage: "Path to a .env file loaded before reading the environment",
			Value: ".env",
		},
		&cli.Int64Flag{
			Name:    "node",
			Usage:   "Node id of this instance, used to generate sweep run ids",
			Value:   1,
			EnvVars: []string{"NODE_ID"},
		},
	}
	app.Before = s.loadConfig
	app.Commands = []*cli.Command{
		{
			Action:      s.startApi,
			Name:        "api",
			Usage:       "Start the admin api",
			Category:    "Service",
			Description: `Serves draw result entry, order lookup, payout transitions, manual settlement and metrics.`,
		},
		{
			Action:      s.startCron,
			Name:        "cron",
			Usage:       "Start the settlement scheduler",
			Category:    "Service",
			Description: `Runs a settlement sweep every settlement interval until the process is stopped.`,
		},
		{
			Action:      s.startSettle,
			Name:        "settle",
			Usage:       "Run one settlement sweep and exit",
			Category:    "Tool",
			Description: `Settles every eligible order once and prints the summary. Exits with an error if any order failed.`,
		},
		{
			Action:   s.startMigrate,
			Name:     "migrate",
			Usage:    "Migrate the database schema",
			Category: "Tool",
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:  "down",
					Usage: "Revert the last applied version instead",
				},
			},
		},
	}

	s.app = app
}
