package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/2beens/gymtrack/internal/telemetry/metrics"
	"github.com/2beens/gymtrack/internal/telemetry/tracing"
	"github.com/2beens/gymtrack/pkg"

	log "github.com/sirupsen/logrus"
)

func PanicRecovery(metricsManager *metrics.Manager) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(respWriter http.ResponseWriter, req *http.Request) {
			defer func() {
				if r := recover(); r != nil {
					log.Errorf("http: panic serving %s: %v\n%s", req.URL.Path, r, debug.Stack())
					if metricsManager != nil {
						metricsManager.CounterHandleRequestPanic.Inc()
					}
					details := pkg.InternalErrorDetails(tracing.TraceID(req.Context()))
					pkg.WriteErrorResponse(respWriter, http.StatusInternalServerError, "internal server error", details)
				}
			}()

			// handler call
			next.ServeHTTP(respWriter, req)
		})
	}
}
