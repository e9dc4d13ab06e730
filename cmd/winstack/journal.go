package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jask/winstack/internal/config"
	"github.com/jask/winstack/internal/journal"
)

func newJournalCmd(v *viper.Viper) *cobra.Command {
	var prune int
	cmd := &cobra.Command{
		Use:   "journal [session]",
		Short: "List recorded sessions, or the transitions of one session",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.FromViper(v)
			if err != nil {
				return err
			}
			j, err := journal.Inspect(cfg.Journal.Path)
			if err != nil {
				return err
			}
			defer j.Close()

			out := cmd.OutOrStdout()
			if cmd.Flags().Changed("prune") {
				n, err := j.Prune(cmd.Context(), prune)
				if err != nil {
					return fmt.Errorf("prune journal: %w", err)
				}
				fmt.Fprintf(out, "pruned %d sessions\n", n)
				return nil
			}
			if len(args) == 1 {
				return printEntries(cmd, j, args[0])
			}
			sessions, err := j.Sessions(cmd.Context())
			if err != nil {
				return fmt.Errorf("list sessions: %w", err)
			}
			printSessions(out, sessions)
			return nil
		},
	}
	cmd.Flags().IntVar(&prune, "prune", 0, "delete all but the newest N sessions")
	return cmd
}

func printSessions(out io.Writer, sessions []journal.Session) {
	if len(sessions) == 0 {
		fmt.Fprintln(out, "no sessions recorded")
		return
	}
	for _, s := range sessions {
		fmt.Fprintf(out, "%s  %s  %d transitions\n", s.ID, s.StartedAt.Local().Format(time.DateTime), s.Entries)
	}
}

func printEntries(cmd *cobra.Command, j *journal.Journal, session string) error {
	entries, err := j.Entries(cmd.Context(), session)
	if err != nil {
		return fmt.Errorf("list transitions: %w", err)
	}
	out := cmd.OutOrStdout()
	if len(entries) == 0 {
		fmt.Fprintf(out, "no transitions for session %s\n", session)
		return nil
	}
	for _, e := range entries {
		fmt.Fprintf(out, "%4d  %-4s  depth %-2d  %s\n", e.Seq, e.Op, e.Depth, e.Window)
	}
	return nil
}
