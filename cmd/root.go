// Package cmd holds the root command shared by the tmux-toaster binary.
package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/cristianoliveira/tmux-toaster/internal/colors"
	"github.com/cristianoliveira/tmux-toaster/internal/config"
	"github.com/cristianoliveira/tmux-toaster/internal/logging"
	"github.com/cristianoliveira/tmux-toaster/internal/version"
	"github.com/spf13/cobra"
)

const description = "Toast notifications for the terminal, with an overflow queue and history."

// commandOrder is the order commands are listed in the help text.
var commandOrder = []string{
	"demo",
	"show",
	"history",
	"config",
	"version",
	"help",
}

// outputWriter overrides the help destination. nil means the command's stdout.
var outputWriter io.Writer

// RootCmd represents the base command when called without any subcommands.
var RootCmd = NewRootCmd()

// NewRootCmd creates a root command that loads configuration and logging
// before any subcommand runs.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "tmux-toaster",
		Short:         description,
		Long:          description,
		Version:       version.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			Bootstrap()
			return nil
		},
	}

	root.CompletionOptions.HiddenDefaultCmd = true
	root.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		PrintHelp(cmd.Root())
	})
	root.SetHelpCommand(newHelpCmd())

	return root
}

// Bootstrap loads configuration and starts the global logger. A logger that
// cannot be started is reported and the command keeps running without it.
func Bootstrap() {
	config.Load()
	colors.SetDebug(config.GetBool("debug", false))
	if err := logging.InitGlobal(); err != nil {
		colors.Warning(fmt.Sprintf("logging disabled: %v", err))
	}
}

// Execute runs RootCmd with args.
func Execute(args []string) error {
	RootCmd.SetArgs(args)
	return RootCmd.Execute()
}

// PrintHelp writes the command summary of root.
func PrintHelp(root *cobra.Command) {
	w := outputWriter
	if w == nil {
		w = root.OutOrStdout()
	}

	var cmdLines []string
	for _, name := range commandOrder {
		var found *cobra.Command
		for _, c := range root.Commands() {
			if c.Name() == name {
				found = c
				break
			}
		}
		if found == nil {
			continue
		}
		cmdLines = append(cmdLines, fmt.Sprintf("    %-16s %s", found.Use, found.Short))
	}

	fmt.Fprintf(w, `tmux-toaster v%s

%s

USAGE:
    tmux-toaster [COMMAND] [OPTIONS]

COMMANDS:
%s

OPTIONS:
    -h, --help      Show help message

CONFIGURATION:
    %s or %s
`, root.Version, description, strings.Join(cmdLines, "\n"), configHint(), config.EnvConfigPath)
}

func configHint() string {
	if p := config.ConfigPath(); p != "" {
		return p
	}
	return "$XDG_CONFIG_HOME/tmux-toaster/config.toml"
}

func newHelpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "help",
		Short: "Show this help message",
		Long:  `Show this help message.`,
		Run: func(cmd *cobra.Command, args []string) {
			PrintHelp(cmd.Root())
		},
	}
}
