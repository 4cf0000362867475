package main

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"

	"github.com/cristianoliveira/tmux-toaster/cmd"
	"github.com/cristianoliveira/tmux-toaster/internal/colors"
	"github.com/cristianoliveira/tmux-toaster/internal/config"
	"github.com/spf13/cobra"
)

type configClient interface {
	All() map[string]string
	Path() string
	WriteSample(path string) error
}

type loadedConfig struct{}

func (loadedConfig) All() map[string]string        { return config.All() }
func (loadedConfig) Path() string                  { return config.ConfigPath() }
func (loadedConfig) WriteSample(path string) error { return config.WriteSample(path) }

const configCommandLong = `Inspect and create the configuration file.

USAGE:
    tmux-toaster config <subcommand>

SUBCOMMANDS:
    show     Display the effective configuration
    init     Write a configuration file with the defaults

EXAMPLES:
    # Show the effective configuration (defaults, file and TOASTER_* overrides)
    tmux-toaster config show

    # Create $XDG_CONFIG_HOME/tmux-toaster/config.toml
    tmux-toaster config init`

// NewConfigCmd creates the config command with explicit dependencies.
func NewConfigCmd(client configClient) *cobra.Command {
	if client == nil {
		panic("NewConfigCmd: client dependency cannot be nil")
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and create the configuration file",
		Long:  configCommandLong,
	}

	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Display the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigShow(cmd.OutOrStdout(), client)
		},
	})

	var initPath string
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a configuration file with the defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigInit(client, initPath)
		},
	}
	initCmd.Flags().StringVar(&initPath, "path", "", "Destination file (default: config_dir/config.toml)")
	configCmd.AddCommand(initCmd)

	return configCmd
}

func runConfigShow(w io.Writer, client configClient) error {
	if path := client.Path(); path != "" {
		fmt.Fprintf(w, "# %s\n", path)
	} else {
		fmt.Fprintln(w, "# no configuration file, showing defaults and environment overrides")
	}
	values := client.All()
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(w, "%s = %q\n", k, values[k])
	}
	return nil
}

func runConfigInit(client configClient, path string) error {
	if path == "" {
		dir := client.All()["config_dir"]
		if dir == "" {
			return fmt.Errorf("config: config_dir is not set")
		}
		path = filepath.Join(dir, "config"+config.FileExtTOML)
	}
	if err := client.WriteSample(path); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	colors.Success("Wrote " + path)
	return nil
}

func init() {
	cmd.RootCmd.AddCommand(NewConfigCmd(loadedConfig{}))
}
