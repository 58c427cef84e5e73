package controllers

import (
	"context"
	"net/http"

	"github.com/addisavenue/storefront-backend/api/responses"
	"github.com/addisavenue/storefront-backend/pkg/config"
	pkgerrors "github.com/addisavenue/storefront-backend/pkg/errors"
	"github.com/addisavenue/storefront-backend/pkg/logger"
)

const envHeader = "X-Storefront-Env"

// Pinger is the health-check surface every backing dependency exposes.
type Pinger interface {
	Ping(context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady reports readiness of the database and, when wired, Redis.
// Nil pingers are skipped so optional dependencies never fail readiness.
func HealthReady(cfg *config.Config, logg *logger.Logger, pingers map[string]Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)

		checks := map[string]string{}
		for name, p := range pingers {
			if p == nil {
				continue
			}
			if err := p.Ping(r.Context()); err != nil {
				checks[name] = "down"
				err = pkgerrors.Wrap(pkgerrors.CodeDependency, err, name+" unavailable").
					WithDetails(map[string]any{"checks": checks})
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
			checks[name] = "up"
		}

		responses.WriteSuccess(w, map[string]any{"status": "ready", "checks": checks})
	}
}
