package main

import (
	"fmt"
	"os"

	"github.com/cristianoliveira/tmux-toaster/cmd"
	"github.com/cristianoliveira/tmux-toaster/internal/colors"
	"github.com/cristianoliveira/tmux-toaster/internal/logging"
)

func main() {
	os.Exit(run(os.Args[1:], cmd.Execute))
}

// run executes the CLI and returns the process exit code.
func run(args []string, execute func([]string) error) int {
	defer func() {
		if err := logging.ShutdownGlobal(); err != nil {
			colors.Debug(fmt.Sprintf("logger shutdown: %v", err))
		}
	}()

	logging.Debug("command started", "args", args)
	if err := execute(args); err != nil {
		colors.Error(err.Error())
		logging.Error("command failed", "args", args, "error", err)
		return 1
	}
	logging.Debug("command completed", "args", args)
	return 0
}
