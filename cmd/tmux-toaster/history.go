package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/cristianoliveira/tmux-toaster/cmd"
	"github.com/cristianoliveira/tmux-toaster/internal/colors"
	"github.com/cristianoliveira/tmux-toaster/internal/format"
	"github.com/spf13/cobra"
)

// errHistoryDisabled is returned when no history database is configured.
var errHistoryDisabled = errors.New("history: no database configured (set history_db)")

const historyCommandLong = `List toasts archived in the history database.

Toasts are archived when they close or are discarded. Entries are listed most
recent first.

USAGE:
    tmux-toaster history [OPTIONS]

OPTIONS:
    --limit <n>          Maximum number of entries, 0 for all (default 20)
    --session <id>       Only list entries recorded by one session
    --format=<format>    Output format: simple (default), compact, table, json
    --prune <n>          Keep the n most recent entries and delete the rest
    -h, --help           Show this help`

type historyFlags struct {
	limit   int
	session string
	format  string
	prune   int
}

// NewHistoryCmd creates the history command with explicit dependencies.
func NewHistoryCmd(open historyOpener) *cobra.Command {
	if open == nil {
		panic("NewHistoryCmd: history opener dependency cannot be nil")
	}

	var flags historyFlags

	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "List archived toasts",
		Long:  historyCommandLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flag("prune").Changed {
				flags.prune = -1
			}
			return runHistory(cmd.OutOrStdout(), open, flags)
		},
	}

	historyCmd.Flags().IntVar(&flags.limit, "limit", 20, "Maximum number of entries, 0 for all")
	historyCmd.Flags().StringVar(&flags.session, "session", "", "Only list entries recorded by one session")
	historyCmd.Flags().StringVar(&flags.format, "format", string(format.FormatterTypeSimple), "Output format: simple, compact, table, json")
	historyCmd.Flags().IntVar(&flags.prune, "prune", 0, "Keep the n most recent entries and delete the rest")

	return historyCmd
}

func runHistory(w io.Writer, open historyOpener, flags historyFlags) error {
	ft := format.FormatterType(flags.format)
	if !ft.IsValid() {
		return fmt.Errorf("history: invalid format %q", flags.format)
	}

	store, err := open()
	if err != nil {
		return fmt.Errorf("history: open: %w", err)
	}
	if store == nil {
		return errHistoryDisabled
	}
	defer store.Close()

	if flags.prune >= 0 {
		deleted, err := store.Prune(flags.prune)
		if err != nil {
			return err
		}
		colors.Success(fmt.Sprintf("pruned %d history entries", deleted))
		return nil
	}

	entries, err := store.ListSession(flags.session, flags.limit)
	if err != nil {
		return err
	}
	if len(entries) == 0 && ft != format.FormatterTypeJSON {
		colors.Info("No archived toasts")
		return nil
	}
	return format.NewFormatter(ft).FormatEntries(entries, w)
}

func init() {
	cmd.RootCmd.AddCommand(NewHistoryCmd(openConfiguredHistory))
}
