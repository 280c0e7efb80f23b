package middleware

import (
	"net/http"
	"runtime"

	"github.com/vfg2006/meta-sync-agent/pkg/log"
)

// LogPanicMiddleware captura panics não tratados e devolve o envelope de erro
// padrão do agente em vez de derrubar o processo
func LogPanicMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					// Captura a pilha de chamadas
					stack := make([]byte, 4096)
					stackSize := runtime.Stack(stack, false)

					correlationID := log.GetCorrelationID(r.Context())

					logger := log.L.WithFields(log.Fields{
						"correlation_id": correlationID,
						"panic_error":    err,
						"method":         r.Method,
						"path":           r.URL.Path,
					})

					logger.Error("Erro não tratado na aplicação")
					logger.WithField("stack_trace", string(stack[:stackSize])).Error("Stack trace do erro")

					w.Header().Set("Content-Type", "application/json")
					_, _ = w.Write([]byte(`{"status":"error","message":"internal error"}`))
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
