package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jask/winstack/core"
	"github.com/jask/winstack/internal/config"
	"github.com/jask/winstack/internal/journal"
	"github.com/jask/winstack/internal/logging"
	"github.com/jask/winstack/internal/terminal"
	"github.com/jask/winstack/screens"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := config.New()
	var countdown int
	var hideCursor bool

	root := &cobra.Command{
		Use:           "winstack",
		Short:         "Run the modal window stack demo",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("hide-cursor") {
				v.Set("show_cursor", !hideCursor)
			}
			cfg, err := config.FromViper(v)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg, countdown)
		},
	}

	f := root.Flags()
	f.Int("tick-rate-ms", 250, "tick interval in milliseconds")
	f.Bool("raw-mode", false, "put the terminal in raw mode")
	f.Bool("alternate-screen", false, "draw on the alternate screen")
	f.BoolVar(&hideCursor, "hide-cursor", false, "hide the cursor while running")
	f.String("backend", config.BackendANSI, "terminal backend: ansi or tcell")
	f.Bool("journal", false, "record stack transitions to the journal database")
	f.IntVar(&countdown, "countdown", 8, "ticks counted by the countdown window")
	mustBind(v, root, map[string]string{
		"tick_rate_ms":     "tick-rate-ms",
		"raw_mode":         "raw-mode",
		"alternate_screen": "alternate-screen",
		"backend":          "backend",
		"journal.enabled":  "journal",
	})

	root.AddCommand(newJournalCmd(v))
	return root
}

func mustBind(v *viper.Viper, cmd *cobra.Command, keys map[string]string) {
	for key, flag := range keys {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
			panic(fmt.Sprintf("bind flag %s: %v", flag, err))
		}
	}
}

func run(ctx context.Context, cfg config.Config, countdown int) error {
	log, logCloser, err := logging.New(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		return err
	}
	defer logCloser.Close()

	backend, source, err := newBackend(cfg)
	if err != nil {
		return err
	}

	clock := &screens.Clock{}
	menu := screens.NewMenu(countdown, screens.DemoCommands(clock, countdown))
	opts := []core.Option{core.WithLogger(log), core.WithSource(source)}
	if reg := cfg.KeyRegistry(); reg != nil {
		opts = append(opts, core.WithEscapeKey(reg.Matcher(core.ActionClose)))
	}
	if cfg.Journal.Enabled {
		j, err := journal.Open(cfg.Journal.Path)
		if err != nil {
			return err
		}
		defer j.Close()
		j.SetLogger(log)
		opts = append(opts, core.WithObserver(j))
		log.WithField("session", j.SessionID()).Info("journal session started")
	}

	m, err := core.Open(backend, cfg.Settings(), menu, opts...)
	if err != nil {
		return err
	}
	clock.Bind(m)

	err = m.Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// newBackend picks the render target and the input source that matches it.
func newBackend(cfg config.Config) (core.Backend, core.Source, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Backend)) {
	case config.BackendTcell:
		b, err := terminal.NewTcellBackend()
		if err != nil {
			return nil, nil, err
		}
		return b, b.Source(), nil
	default:
		return terminal.NewANSIBackend(os.Stdout, int(os.Stdin.Fd())), terminal.NewReaderSource(os.Stdin), nil
	}
}
