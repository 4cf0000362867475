package toast

import (
	"strings"

	"github.com/cristianoliveira/tmux-toaster/internal/config"
	"github.com/cristianoliveira/tmux-toaster/internal/logging"
	"github.com/cristianoliveira/tmux-toaster/internal/style"
)

// OptionsFromConfig returns the Toaster options described by the loaded
// configuration.
func OptionsFromConfig() []Option {
	return []Option{
		WithMaxOpenItems(config.GetInt("max_open_items", DefaultMaxOpenItems)),
		WithMaxHistoryItems(config.GetInt("max_history_items", 0)),
		WithPolicy(Policy(config.Get("overflow_policy", string(PolicyQueue)))),
		WithDefaults(applyConfigDefaults),
	}
}

func applyConfigDefaults(d *Options, r *Registry) {
	registerCustomTypes(r, config.Get("custom_types", ""))
	name := config.Get("default_type", string(TypeDefault))
	if t, ok := r.LookupType(name); ok {
		d.SetType(t)
	} else {
		logging.Warn("unknown default type, using default", "type", name)
	}
	name = config.Get("default_progress_bar_type", string(ProgressBarDefault))
	if p, ok := r.LookupProgressBarType(name); ok {
		d.SetProgressBarType(p)
	} else {
		logging.Warn("unknown default progress bar type, using default", "progress_bar_type", name)
	}
	d.SetTimeout(config.GetInt("default_timeout", d.Timeout()))
	d.SetAutoHide(config.GetBool("default_auto_hide", d.AutoHide()))
	d.SetBorderRadius(config.GetInt("default_border_radius", d.BorderRadius()))
	d.SetHideShadow(config.GetBool("default_hide_shadow", d.HideShadow()))
	d.SetHideProgressBar(config.GetBool("default_hide_progress_bar", d.HideProgressBar()))
}

// registerCustomTypes parses "name:background[:color],..." and builds each
// entry. Malformed entries are logged and skipped.
func registerCustomTypes(r *Registry, raw string) {
	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		parts := strings.Split(entry, ":")
		if len(parts) < 2 || len(parts) > 3 {
			logging.Warn("malformed custom type entry", "entry", entry)
			continue
		}
		bg, err := style.ParseColor(parts[1])
		if err != nil {
			logging.Warn("invalid custom type background", "entry", entry, "error", err)
			continue
		}
		fg := TypeDefault.Color()
		if len(parts) == 3 {
			if fg, err = style.ParseColor(parts[2]); err != nil {
				logging.Warn("invalid custom type color", "entry", entry, "error", err)
				continue
			}
		}
		b, err := r.NewTypeBuilderWithColor(strings.TrimSpace(parts[0]), fg, bg)
		if err != nil {
			logging.Warn("invalid custom type", "entry", entry, "error", err)
			continue
		}
		b.Build()
	}
}
