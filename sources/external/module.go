package external

import (
	"context"
	"declension/sources/tracing"

	"go.uber.org/fx"
)

var Module = fx.Module("external",
	fx.Provide(
		NewOutsidersConfig,
		NewApiHandler,
		NewOutsiders,
	),

	fx.Invoke(func(outsiders *Outsiders, lc fx.Lifecycle) {
		lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				outsiders.log.I("Starting outsiders services")
				go outsiders.serve(outsiders.as, "api", outsiders.config.ApiPort)
				go outsiders.serve(outsiders.ss, "startup", outsiders.config.StartupPort)
				go outsiders.serve(outsiders.sms, "system_metrics", outsiders.config.SystemMetricsPort)
				go outsiders.serve(outsiders.ams, "application_metrics", outsiders.config.ApplicationMetricsPort)
				return nil
			},
			OnStop: func(ctx context.Context) error {
				outsiders.log.I("Stopping outsiders services")
				for kind, server := range map[string]interface{ Shutdown(context.Context) error }{
					"api":                 outsiders.as,
					"startup":             outsiders.ss,
					"system_metrics":      outsiders.sms,
					"application_metrics": outsiders.ams,
				} {
					if err := server.Shutdown(ctx); err != nil {
						outsiders.log.E("Failed to shutdown server", tracing.OutsiderKind, kind, tracing.InnerError, err)
					}
				}
				return nil
			},
		})
	}),
)
