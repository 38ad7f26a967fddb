package authorize

import (
	"context"
	"log/slog"
	"sync/atomic"

	psqlwatcher "github.com/IguteChung/casbin-psql-watcher"
	casbin "github.com/casbin/casbin/v2"
	entadapter "github.com/casbin/ent-adapter"
)

// policyLoadHealthy flips to false when a watcher-triggered policy reload
// fails, so the health endpoint can report a stale policy set.
var policyLoadHealthy atomic.Bool

func init() {
	policyLoadHealthy.Store(true)
}

// IsPolicyHealthy reports whether the last policy reload succeeded.
func IsPolicyHealthy() bool {
	return policyLoadHealthy.Load()
}

// CleanupFunc releases enforcer resources on shutdown.
type CleanupFunc func(ctx context.Context)

// NewEnforcer builds a DistributedEnforcer backed by PostgreSQL, with a
// LISTEN/NOTIFY watcher so policy changes made by one instance propagate to
// the others immediately.
func NewEnforcer(modelPath string, dsn string) (*casbin.DistributedEnforcer, CleanupFunc, error) {
	adapter, err := entadapter.NewAdapter("postgres", dsn)
	if err != nil {
		return nil, nil, err
	}

	e, err := casbin.NewDistributedEnforcer(modelPath, adapter)
	if err != nil {
		return nil, nil, err
	}

	watcher, err := psqlwatcher.NewWatcherWithConnString(context.Background(), dsn, psqlwatcher.Option{
		Channel: "casbin_policy_update",
	})
	if err != nil {
		return nil, nil, err
	}

	err = watcher.SetUpdateCallback(func(msg string) {
		slog.Debug("casbin policy update received", "message", msg)
		if err := e.LoadPolicy(); err != nil {
			slog.Error("failed to reload policy after watcher notification", "error", err)
			policyLoadHealthy.Store(false)
			return
		}
		policyLoadHealthy.Store(true)
	})
	if err != nil {
		return nil, nil, err
	}
	if err := e.SetWatcher(watcher); err != nil {
		return nil, nil, err
	}

	e.EnableAutoSave(true)
	e.EnableEnforce(true)

	cleanup := func(ctx context.Context) {
		slog.Info("closing casbin policy watcher")
		watcher.Close()
		e.StopAutoLoadPolicy()
	}
	return e, cleanup, nil
}
