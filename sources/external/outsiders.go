package external

import (
	"declension/sources/platform"
	"declension/sources/tracing"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Outsiders struct {
	log    *tracing.Logger
	config *OutsidersConfig
	as     *http.Server
	ss     *http.Server
	sms    *http.Server
	ams    *http.Server
}

func NewOutsiders(log *tracing.Logger, config *OutsidersConfig, api *ApiHandler) *Outsiders {
	systemRegistry := prometheus.NewRegistry()

	systemRegistry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewBuildInfoCollector(),
	)

	return &Outsiders{
		log:    log,
		config: config,
		as: &http.Server{
			Addr:    fmt.Sprintf(":%d", config.ApiPort),
			Handler: api,
		},
		ss: &http.Server{
			Addr: fmt.Sprintf(":%d", config.StartupPort),
			Handler: platform.Curry(http.NewServeMux, func(m *http.ServeMux) {
				m.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
					startuphandler(log, w, r)
				})
			}),
		},
		sms: &http.Server{
			Addr: fmt.Sprintf(":%d", config.SystemMetricsPort),
			Handler: platform.Curry(http.NewServeMux, func(m *http.ServeMux) {
				m.Handle("/metrics", promhttp.HandlerFor(systemRegistry, promhttp.HandlerOpts{}))
			}),
		},
		ams: &http.Server{
			Addr: fmt.Sprintf(":%d", config.ApplicationMetricsPort),
			Handler: platform.Curry(http.NewServeMux, func(m *http.ServeMux) {
				m.Handle("/metrics", promhttp.Handler())
			}),
		},
	}
}

func (x *Outsiders) serve(server *http.Server, kind string, port int) {
	x.log.I("Outsider server is starting", tracing.OutsiderKind, kind, "port", port)

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		x.log.F("Failed to start outsider server", tracing.OutsiderKind, kind, tracing.InnerError, err)
	}
}

func startuphandler(log *tracing.Logger, w http.ResponseWriter, r *http.Request) {
	log.D("Outsider service got a ping", "method", r.Method, "path", r.URL.Path, "remote", r.RemoteAddr)

	writeJson(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "declension",
		"version": platform.GetAppVersion(),
		"uptime":  platform.GetAppUptime().String(),
	})
}
