package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/tmux-toaster/cmd"
	"github.com/cristianoliveira/tmux-toaster/internal/tui/render"
	"github.com/cristianoliveira/tmux-toaster/internal/tui/state"
	"github.com/spf13/cobra"
)

const demoCommandLong = `Interactive toast playground.

Toasts auto-hide after their timeout. Closing a toast lets the next queued
toast in. Closed and discarded toasts are archived when history_db is set.

USAGE:
    tmux-toaster demo

KEY BINDINGS:
    n           Show a new sample toast
    c, Enter    Click the newest toast
    a           Click the first action of the newest toast
    x           Hide the newest toast
    X           Hide all toasts
    p           Toggle the overflow policy (queue/discard)
    +, -        Change the maximum number of open toasts
    h           Toggle between toasts and history
    q, Esc      Quit`

// programRunner runs a bubbletea model until it quits.
type programRunner func(m tea.Model) error

func runProgram(m tea.Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

// NewDemoCmd creates the demo command with explicit dependencies.
func NewDemoCmd(open historyOpener, run programRunner) *cobra.Command {
	if open == nil {
		panic("NewDemoCmd: history opener dependency cannot be nil")
	}
	if run == nil {
		panic("NewDemoCmd: program runner dependency cannot be nil")
	}

	return &cobra.Command{
		Use:   "demo",
		Short: "Interactive toast playground",
		Long:  demoCommandLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := open()
			if err != nil {
				return fmt.Errorf("demo: open history: %w", err)
			}
			if store != nil {
				defer store.Close()
			}
			recorder, runner := lifecycleRecorder(store)
			defer runner.Wait()

			p := render.NewPresenter()
			m := state.NewModel(newToaster(p, recorder), p)
			if err := run(m); err != nil {
				return fmt.Errorf("demo: %w", err)
			}
			return nil
		},
	}
}

func init() {
	cmd.RootCmd.AddCommand(NewDemoCmd(openConfiguredHistory, runProgram))
}
