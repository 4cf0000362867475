package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/cristianoliveira/tmux-toaster/cmd"
	"github.com/cristianoliveira/tmux-toaster/internal/toast"
	"github.com/cristianoliveira/tmux-toaster/internal/tui/render"
	"github.com/spf13/cobra"
)

const showCommandLong = `Submit toasts through the toast manager without a terminal UI.

Each submission prints the id and status the toast got from admission control
(opened, queued or discarded). Configuration supplies the limits, the overflow
policy and the default options; flags override them for this run.

USAGE:
    tmux-toaster show [OPTIONS] TITLE [LABEL...]

OPTIONS:
    --type <name>            Toast type: default, success, info, warning, error, dark or a custom type
    --progress-bar <name>    Progress bar type
    --timeout <ms>           Auto-hide timeout in milliseconds
    --icon <text>            Icon shown before the title
    --repeat <n>             Submit the toast n times (default 1)
    --max-open <n>           Maximum number of open toasts (1-100)
    --policy <policy>        Overflow policy: queue, discard
    --history <n>            In-memory history capacity
    --drain                  Close open toasts oldest first until none remain
    --render                 Print the rendered toast stack
    --no-archive             Do not record toasts in the history database
    --width <n>              Toast width for --render
    -h, --help               Show this help`

// showOptions collects the flags of the show command.
type showOptions struct {
	typ         string
	progressBar string
	timeout     int
	icon        string
	repeat      int
	maxOpen     int
	policy      string
	history     int
	drain       bool
	render      bool
	noArchive   bool
	width       int
}

// NewShowCmd creates the show command with explicit dependencies.
func NewShowCmd(open historyOpener) *cobra.Command {
	if open == nil {
		panic("NewShowCmd: history opener dependency cannot be nil")
	}

	var opts showOptions

	showCmd := &cobra.Command{
		Use:   "show TITLE [LABEL...]",
		Short: "Submit toasts headlessly and print their status",
		Long:  showCommandLong,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flag("timeout").Changed {
				opts.timeout = -1
			}
			if !cmd.Flag("history").Changed {
				opts.history = -1
			}
			return runShow(cmd.OutOrStdout(), open, opts, args[0], args[1:])
		},
	}

	showCmd.Flags().StringVar(&opts.typ, "type", "", "Toast type")
	showCmd.Flags().StringVar(&opts.progressBar, "progress-bar", "", "Progress bar type")
	showCmd.Flags().IntVar(&opts.timeout, "timeout", 0, "Auto-hide timeout in milliseconds")
	showCmd.Flags().StringVar(&opts.icon, "icon", "", "Icon shown before the title")
	showCmd.Flags().IntVar(&opts.repeat, "repeat", 1, "Submit the toast n times")
	showCmd.Flags().IntVar(&opts.maxOpen, "max-open", 0, "Maximum number of open toasts (1-100)")
	showCmd.Flags().StringVar(&opts.policy, "policy", "", "Overflow policy: queue, discard")
	showCmd.Flags().IntVar(&opts.history, "history", 0, "In-memory history capacity")
	showCmd.Flags().BoolVar(&opts.drain, "drain", false, "Close open toasts oldest first until none remain")
	showCmd.Flags().BoolVar(&opts.render, "render", false, "Print the rendered toast stack")
	showCmd.Flags().BoolVar(&opts.noArchive, "no-archive", false, "Do not record toasts in the history database")
	showCmd.Flags().IntVar(&opts.width, "width", 0, "Toast width for --render")

	return showCmd
}

func runShow(w io.Writer, open historyOpener, opts showOptions, title string, label []string) error {
	if opts.repeat < 1 {
		return fmt.Errorf("show: --repeat must be >= 1, got %d", opts.repeat)
	}

	var extra []toast.Option
	if opts.maxOpen != 0 {
		extra = append(extra, toast.WithMaxOpenItems(opts.maxOpen))
	}
	if opts.policy != "" {
		policy := toast.Policy(strings.ToLower(opts.policy))
		if !policy.IsValid() {
			return fmt.Errorf("show: invalid policy %q: expected %s or %s", opts.policy, toast.PolicyQueue, toast.PolicyDiscard)
		}
		extra = append(extra, toast.WithPolicy(policy))
	}
	if opts.history >= 0 {
		extra = append(extra, toast.WithMaxHistoryItems(opts.history))
	}

	var store historyStore
	if !opts.noArchive {
		var err error
		if store, err = open(); err != nil {
			return fmt.Errorf("show: open history: %w", err)
		}
		if store != nil {
			defer store.Close()
		}
	}
	recorder, runner := lifecycleRecorder(store)
	defer runner.Wait()

	var presenterOpts []render.PresenterOption
	if opts.width > 0 {
		presenterOpts = append(presenterOpts, render.WithWidth(opts.width))
	}
	p := render.NewPresenter(presenterOpts...)
	t := newToaster(p, recorder, extra...)

	toastOpts, err := buildShowOptions(t, opts)
	if err != nil {
		return err
	}

	for i := 0; i < opts.repeat; i++ {
		item, status := t.Submit(nil, toastOpts, title, label...)
		fmt.Fprintf(w, "toast %d: %s\n", item.ID(), status)
	}

	if opts.render {
		fmt.Fprintln(w, p.Render(time.Now()))
	}

	if opts.drain {
		drain(w, t)
	}

	fmt.Fprintf(w, "open: %d/%d, queued: %d, history: %d, policy: %s\n",
		t.OpenCount(), t.MaxOpenItems(), len(t.QueuedItems()), len(t.HistoryItems()), t.Policy())

	if items := t.HistoryItems(); len(items) > 0 {
		now := time.Now()
		fmt.Fprintln(w, render.Header(0))
		for _, item := range items {
			fmt.Fprintln(w, render.Row(render.RowState{Item: item, Now: now}))
		}
	}
	return nil
}

// buildShowOptions applies the flags on top of the configured defaults.
func buildShowOptions(t *toast.Toaster, opts showOptions) (*toast.Options, error) {
	b := toast.NewOptionsBuilderFrom(t.Defaults())
	if opts.typ != "" {
		typ, ok := t.Registry().LookupType(opts.typ)
		if !ok {
			return nil, fmt.Errorf("show: unknown type %q", opts.typ)
		}
		b.Type(typ)
	}
	if opts.progressBar != "" {
		pb, ok := t.Registry().LookupProgressBarType(opts.progressBar)
		if !ok {
			return nil, fmt.Errorf("show: unknown progress bar type %q", opts.progressBar)
		}
		b.ProgressBarType(pb)
	}
	if opts.timeout >= 0 {
		b.Timeout(opts.timeout)
	}
	if opts.icon != "" {
		b.Icon(opts.icon)
	}
	return b.Build(), nil
}

// drain closes open toasts oldest first, which lets queued toasts in, until
// nothing is open.
func drain(w io.Writer, t *toast.Toaster) {
	for {
		items := t.OpenItems()
		if len(items) == 0 {
			return
		}
		item := items[0]
		if !t.Hide(item.ID()) {
			return
		}
		fmt.Fprintf(w, "toast %d: %s\n", item.ID(), item.Status())
	}
}

func init() {
	cmd.RootCmd.AddCommand(NewShowCmd(openConfiguredHistory))
}
