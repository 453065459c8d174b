package cli

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/example/revtrack/internal/config"
	"github.com/example/revtrack/internal/notify"
	"github.com/example/revtrack/internal/scheduler"
	"github.com/example/revtrack/internal/spaced_repetition"
	"github.com/example/revtrack/internal/tracker"
)

func remindCommand() *cli.Command {
	return &cli.Command{
		Name:  "remind",
		Usage: "run the reminder daemon, sending a daily digest of due topics",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "once",
				Usage: "send a single digest now and exit",
			},
		},
		Action: func(c *cli.Context) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			store, closer, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer closer()

			tr := tracker.New(store, spaced_repetition.Policy{})

			var notifier scheduler.Notifier
			if cfg.TelegramToken != "" && cfg.TelegramChatID != 0 {
				notifier, err = notify.NewTelegram(cfg.TelegramToken, cfg.TelegramChatID)
				if err != nil {
					return err
				}
			} else {
				notifier = notify.NewConsole(c.App.Writer)
			}

			sched := scheduler.New(tr, notifier, cfg.ReminderHour)

			if c.Bool("once") {
				return sched.RunManualCheck(c.Context)
			}

			if err := sched.Start(); err != nil {
				return err
			}
			defer sched.Stop()

			log.Printf("Reminder daemon started, digests go out daily at %02d:00. Press Ctrl+C to stop.", cfg.ReminderHour)

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
			sig := <-sigChan
			log.Printf("Received signal: %v, stopping reminder daemon", sig)

			return nil
		},
	}
}
