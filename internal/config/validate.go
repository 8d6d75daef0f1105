package config

import (
	"fmt"
	"strings"

	"earn-recycle-engine/internal/domain"
	"earn-recycle-engine/internal/tracking"
)

type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate returns a normalized copy of cfg along with
// everything wrong (errors) or suspicious (warnings) about it.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	var out = cfg
	var res Validation

	// labels: trim, drop empties, lower-case keys
	if len(cfg.Labels) > 0 {
		out.Labels = make(map[string]string, len(cfg.Labels))
		for k, v := range cfg.Labels {
			k = strings.ToLower(strings.TrimSpace(k))
			v = strings.TrimSpace(v)
			if k == "" || v == "" {
				continue
			}
			out.Labels[k] = v
		}
	}

	if tab, ok := tracking.ParseTab(out.Tracking.DefaultTab); ok {
		out.Tracking.DefaultTab = string(tab)
	} else {
		res.addErr("tracking.default_tab must be one of %q, %q, %q", tracking.TabOnTheWay, tracking.TabCollected, tracking.TabProcessed)
	}

	if out.App.Port <= 0 || out.App.Port > 65535 {
		res.addErr("app.port must be 1..65535")
	}

	if out.History.PageSize <= 0 {
		res.addErr("history.page_size must be > 0")
	} else if out.History.PageSize > 50 {
		res.addWarn("history.page_size is large (%d); the history table is designed for a handful of rows.", out.History.PageSize)
	}

	if out.Catalog.RefreshSeconds < 0 {
		res.addErr("catalog.refresh_seconds must be >= 0")
	} else if out.Catalog.RefreshSeconds == 0 {
		res.addWarn("catalog.refresh_seconds is 0; the catalog is only loaded at startup and on demand.")
	} else if out.Catalog.RefreshSeconds < 5 {
		res.addWarn("catalog.refresh_seconds is very low (%d).", out.Catalog.RefreshSeconds)
	}

	if out.RateLimit.PerSecond < 0 {
		res.addErr("rate_limit.per_second must be >= 0")
	} else if out.RateLimit.PerSecond > 0 && out.RateLimit.Burst <= 0 {
		res.addErr("rate_limit.burst must be > 0 when rate_limit.per_second is set")
	} else if out.RateLimit.PerSecond == 0 {
		res.addWarn("rate_limit.per_second is 0; rate limiting is disabled.")
	}

	for k := range out.Labels {
		if k != "all" && !domain.Status(k).Valid() {
			res.addWarn("labels.%s does not match any status and will be ignored.", k)
		}
	}

	return out, res
}
