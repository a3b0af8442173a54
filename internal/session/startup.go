package session

import (
	"time"

	"github.com/RacoonMediaServer/rms-catalog/internal/model"
)

// StartupState carries the session-scoped refresh bookkeeping. It is passed
// explicitly into the decision so nothing ambient leaks between sessions.
type StartupState struct {
	RefreshedOnStart bool
}

// ShouldRefresh decides whether the catalog must be re-imported before the
// first load of a session. The returned reason is user-visible.
func ShouldRefresh(state *StartupState, settings *model.Settings, now time.Time) (string, bool) {
	if settings.RefreshOnStart && !state.RefreshedOnStart {
		if settings.LastRefresh.IsZero() {
			return "initial import", true
		}
		return "refresh on start enabled", true
	}

	if settings.RefreshIntervalHours > 0 {
		interval := time.Duration(settings.RefreshIntervalHours) * time.Hour
		if now.Sub(settings.LastRefresh) >= interval {
			return "content is stale", true
		}
	}

	return "", false
}
