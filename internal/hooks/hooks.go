// Package hooks runs user scripts when toasts reach a terminal status.
//
// Scripts live in <hooks_dir>/<hook point>/ and run in name order. A script
// receives the toast as TOAST_* environment variables.
package hooks

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/cristianoliveira/tmux-toaster/internal/config"
	"github.com/cristianoliveira/tmux-toaster/internal/logging"
)

// FailureMode decides what a failing synchronous script does to the run.
type FailureMode string

const (
	// FailureAbort stops at the first failing script and returns its error.
	FailureAbort FailureMode = "abort"
	// FailureWarn reports the failure and keeps going.
	FailureWarn FailureMode = "warn"
	// FailureIgnore keeps going silently.
	FailureIgnore FailureMode = "ignore"
)

// Config controls how hook scripts run.
type Config struct {
	Dir          string
	FailureMode  FailureMode
	Async        bool
	AsyncTimeout time.Duration
	MaxAsync     int
}

// DefaultConfig returns the default hook settings. Dir is empty, which
// disables hooks.
func DefaultConfig() Config {
	return Config{
		FailureMode:  FailureWarn,
		AsyncTimeout: 30 * time.Second,
		MaxAsync:     10,
	}
}

// FromGlobalConfig reads the hooks_* keys of the loaded configuration.
func FromGlobalConfig() Config {
	cfg := DefaultConfig()
	cfg.Dir = config.Get("hooks_dir", "")
	cfg.FailureMode = FailureMode(config.Get("hooks_failure_mode", string(cfg.FailureMode)))
	cfg.Async = config.GetBool("hooks_async", cfg.Async)
	cfg.AsyncTimeout = time.Duration(config.GetInt("hooks_async_timeout", int(cfg.AsyncTimeout/time.Second))) * time.Second
	cfg.MaxAsync = config.GetInt("hooks_max_async", cfg.MaxAsync)
	return cfg
}

// Runner executes hook scripts. It is safe for concurrent use.
type Runner struct {
	cfg    Config
	output io.Writer
	logger logging.Logger

	mu      sync.Mutex
	pending int
	wg      sync.WaitGroup
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithOutput sets where script output and warnings are written.
func WithOutput(w io.Writer) RunnerOption {
	return func(r *Runner) {
		if w != nil {
			r.output = w
		}
	}
}

// NewRunner creates a Runner.
func NewRunner(cfg Config, opts ...RunnerOption) *Runner {
	if cfg.AsyncTimeout <= 0 {
		cfg.AsyncTimeout = DefaultConfig().AsyncTimeout
	}
	if cfg.MaxAsync <= 0 {
		cfg.MaxAsync = DefaultConfig().MaxAsync
	}
	switch cfg.FailureMode {
	case FailureAbort, FailureWarn, FailureIgnore:
	default:
		cfg.FailureMode = FailureWarn
	}
	r := &Runner{
		cfg:    cfg,
		output: os.Stderr,
		logger: logging.With("component", "hooks"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Config returns the effective settings.
func (r *Runner) Config() Config { return r.cfg }

// Scripts returns the executable scripts of a hook point in run order.
func (r *Runner) Scripts(point string) []string {
	if r.cfg.Dir == "" {
		return nil
	}
	dir := filepath.Join(r.cfg.Dir, point)
	files, err := os.ReadDir(dir)
	if err != nil {
		// Directory doesn't exist -> no hooks
		return nil
	}
	var scripts []string
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		path := filepath.Join(dir, f.Name())
		info, err := os.Stat(path)
		if err != nil || info.Mode()&0o111 == 0 {
			continue
		}
		scripts = append(scripts, path)
	}
	sort.Strings(scripts)
	return scripts
}

// Run executes the scripts of a hook point with env added to the process
// environment. In async mode it returns once the scripts are started.
func (r *Runner) Run(point string, env map[string]string) error {
	scripts := r.Scripts(point)
	if len(scripts) == 0 {
		return nil
	}

	vars := r.environment(point, env)
	r.logger.Debug("running hooks", "point", point, "scripts", len(scripts), "async", r.cfg.Async)

	for _, script := range scripts {
		if r.cfg.Async {
			r.startAsync(script, vars)
			continue
		}
		if err := r.runSync(script, vars); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) environment(point string, env map[string]string) []string {
	vars := os.Environ()
	vars = append(vars,
		"HOOK_POINT="+point,
		"HOOK_TIMESTAMP="+time.Now().UTC().Format(time.RFC3339),
		"TOASTER_HOOKS_FAILURE_MODE="+string(r.cfg.FailureMode),
	)
	if exe, err := os.Executable(); err == nil {
		vars = append(vars, "TOASTER_BINARY="+exe)
	}
	keys := make([]string, 0, len(env))
	for k := range env {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		vars = append(vars, k+"="+env[k])
	}
	return vars
}

func (r *Runner) runSync(script string, vars []string) error {
	name := filepath.Base(script)
	start := time.Now()
	cmd := exec.Command(script)
	cmd.Env = vars
	output, err := cmd.CombinedOutput()
	if len(output) > 0 {
		_, _ = r.output.Write(output)
	}
	if err == nil {
		r.logger.Debug("hook completed", "script", name, "duration", time.Since(start))
		return nil
	}

	r.logger.Warn("hook failed", "script", name, "error", err)
	switch r.cfg.FailureMode {
	case FailureAbort:
		return fmt.Errorf("hook %s failed: %w", name, err)
	case FailureWarn:
		fmt.Fprintf(r.output, "warning: hook %s failed: %v\n", name, err)
	}
	return nil
}

func (r *Runner) startAsync(script string, vars []string) {
	name := filepath.Base(script)

	r.mu.Lock()
	if r.pending >= r.cfg.MaxAsync {
		r.mu.Unlock()
		r.logger.Warn("too many async hooks pending, skipping", "script", name, "max", r.cfg.MaxAsync)
		if r.cfg.FailureMode != FailureIgnore {
			fmt.Fprintf(r.output, "warning: too many async hooks pending (max: %d), skipping %s\n", r.cfg.MaxAsync, name)
		}
		return
	}
	r.pending++
	r.wg.Add(1)
	r.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), r.cfg.AsyncTimeout)
	cmd := exec.CommandContext(ctx, script)
	cmd.Env = vars
	cmd.Stdout = r.output
	cmd.Stderr = r.output
	if err := cmd.Start(); err != nil {
		cancel()
		r.done()
		r.logger.Warn("async hook failed to start", "script", name, "error", err)
		return
	}

	go func() {
		defer r.done()
		defer cancel()
		err := cmd.Wait()
		switch {
		case ctx.Err() == context.DeadlineExceeded:
			r.logger.Warn("async hook timed out", "script", name, "timeout", r.cfg.AsyncTimeout)
		case err != nil:
			r.logger.Warn("async hook failed", "script", name, "error", err)
		default:
			r.logger.Debug("async hook completed", "script", name)
		}
	}()
}

func (r *Runner) done() {
	r.mu.Lock()
	r.pending--
	r.mu.Unlock()
	r.wg.Done()
}

// Pending returns the number of async scripts still running.
func (r *Runner) Pending() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pending
}

// Wait blocks until every async script has finished.
func (r *Runner) Wait() {
	r.wg.Wait()
}

// EnvKey turns a name into an environment variable suffix.
func EnvKey(name string) string {
	return strings.ToUpper(strings.Map(func(c rune) rune {
		if c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' {
			return c
		}
		return '_'
	}, name))
}
